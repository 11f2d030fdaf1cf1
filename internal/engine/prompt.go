package engine

// LLM prompt templates: data only, no logic.

// Section headings requested by notesPrompt. Consumers of the notes may split on them.
const (
	HeadingSummary       = "📌 Summary"
	HeadingKeyPoints     = "🎯 Key Points"
	HeadingDetailedNotes = "📝 Detailed Notes"
	HeadingKeyConcepts   = "💡 Key Concepts"
	HeadingActionItems   = "✅ Action Items"
	HeadingRelatedTopics = "🔗 Related Topics"
)

// NoteHeadings lists the section headings in prompt order.
var NoteHeadings = []string{
	HeadingSummary,
	HeadingKeyPoints,
	HeadingDetailedNotes,
	HeadingKeyConcepts,
	HeadingActionItems,
	HeadingRelatedTopics,
}

// notesPrompt asks for six Markdown sections of study notes.
// Args: video title, full transcript.
const notesPrompt = `You are an expert note-taker and educator. Analyze the following YouTube video transcript and create comprehensive, well-structured notes.

Video Title: %s

Transcript:
%s

Please provide:
1. **` + HeadingSummary + `** - A brief 2-3 sentence overview of the video content
2. **` + HeadingKeyPoints + `** - Main takeaways in bullet points
3. **` + HeadingDetailedNotes + `** - Organized notes with headings and subheadings
4. **` + HeadingKeyConcepts + `** - Important terms or concepts explained
5. **` + HeadingActionItems + `** - Any actionable advice or steps mentioned
6. **` + HeadingRelatedTopics + `** - Suggested topics for further learning

Format the response in clean Markdown for easy reading.`
