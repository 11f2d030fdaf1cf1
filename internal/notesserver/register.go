package notesserver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
	"github.com/anatolykoptev/go_ytnotes/internal/toolutil"
)

// NotesInput is the input for youtube_notes.
type NotesInput struct {
	URL    string `json:"url" jsonschema:"YouTube video URL (watch, youtu.be, embed or shorts link)"`
	Format string `json:"format,omitempty" jsonschema:"set to html to also return notes_html"`
}

// RegisterTools registers youtube_notes on the given MCP server.
func RegisterTools(server *mcp.Server, a Analyzer) {
	registerYouTubeNotes(server, a)
}

func registerYouTubeNotes(server *mcp.Server, a Analyzer) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_notes",
		Description: "Turn a YouTube video into structured study notes. Fetches the caption transcript (English preferred, otherwise the first available language) and returns Markdown notes with Summary, Key Points, Detailed Notes, Key Concepts, Action Items and Related Topics sections.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, _ *mcp.CallToolRequest, input NotesInput) (*mcp.CallToolResult, *engine.AnalysisResult, error) {
		res, err := a.Analyze(ctx, input.URL)
		if err != nil {
			pErr := engine.AsPipelineError(err)
			slog.Warn("youtube_notes failed",
				slog.String("url", engine.TruncateRunes(input.URL, maxLoggedURL, "...")),
				slog.String("code", string(pErr.Code)),
				slog.Any("error", err))
			return nil, nil, errors.New(pErr.Message)
		}
		if err := toolutil.ApplyFormat(res, input.Format); err != nil {
			slog.Warn("youtube_notes: html render failed", slog.Any("error", err))
		}
		return nil, res, nil
	})
}
