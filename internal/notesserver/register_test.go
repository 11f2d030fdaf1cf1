package notesserver

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
)

// connectNotesTool serves youtube_notes backed by a over in-memory transports.
func connectNotesTool(t *testing.T, a Analyzer) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	server := mcp.NewServer(&mcp.Implementation{Name: "go_ytnotes", Version: "test"}, nil)
	RegisterTools(server, a)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	ss, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = ss.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	cs, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cs.Close() })
	return cs
}

func callNotes(t *testing.T, cs *mcp.ClientSession, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := cs.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "youtube_notes",
		Arguments: args,
	})
	require.NoError(t, err)
	return res
}

func TestYouTubeNotesTool_Listed(t *testing.T) {
	cs := connectNotesTool(t, &stubAnalyzer{res: okResult()})

	tools, err := cs.ListTools(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, tools.Tools, 1)
	assert.Equal(t, "youtube_notes", tools.Tools[0].Name)
	require.NotNil(t, tools.Tools[0].Annotations)
	assert.True(t, tools.Tools[0].Annotations.ReadOnlyHint)
}

func TestYouTubeNotesTool_Success(t *testing.T) {
	a := &stubAnalyzer{res: okResult()}
	cs := connectNotesTool(t, a)

	res := callNotes(t, cs, map[string]any{"url": "https://youtu.be/dQw4w9WgXcQ", "format": "html"})
	require.False(t, res.IsError)
	assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", a.gotURL)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	var got engine.AnalysisResult
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, got.Success)
	assert.Equal(t, "dQw4w9WgXcQ", got.VideoID)
	assert.Equal(t, "## 📌 Summary\n<b>Rick</b> & friends", got.Notes)
	assert.Equal(t, 42, got.TranscriptLength)
	assert.Contains(t, got.NotesHTML, "<h2>📌 Summary</h2>")
}

func TestYouTubeNotesTool_ErrorMessage(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantMsg string
	}{
		{"invalid url", engine.NewInvalidURL("nope"), "Invalid YouTube URL"},
		{
			"transcript unavailable",
			engine.NewTranscriptUnavailable(engine.ErrNoTranscripts),
			"Could not get transcript: no transcripts available for this video. Make sure the video has captions/subtitles available.",
		},
		{"analysis failed", engine.NewAnalysisFailed(engine.ErrEmptyCompletion), "Analysis failed: model returned an empty response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cs := connectNotesTool(t, &stubAnalyzer{err: tt.err})

			res := callNotes(t, cs, map[string]any{"url": "nope"})
			require.True(t, res.IsError)
			require.Len(t, res.Content, 1)
			text, ok := res.Content[0].(*mcp.TextContent)
			require.True(t, ok, "content is %T", res.Content[0])
			assert.Equal(t, tt.wantMsg, text.Text)
		})
	}
}
