// Package toolutil provides helpers shared by the HTTP, MCP and CLI front ends.
package toolutil

import (
	"bytes"
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/yuin/goldmark"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
)

// FormatHTML is the output format that adds rendered notes to a result.
const FormatHTML = "html"

// NewRequestID returns a new ULID string.
func NewRequestID() string {
	return ulid.Make().String()
}

// RenderHTML converts Markdown notes to an HTML fragment.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", fmt.Errorf("render notes: %w", err)
	}
	return buf.String(), nil
}

// ApplyFormat fills res.NotesHTML when format asks for HTML.
// Unknown formats leave res untouched.
func ApplyFormat(res *engine.AnalysisResult, format string) error {
	if format != FormatHTML {
		return nil
	}
	html, err := RenderHTML(res.Notes)
	if err != nil {
		return err
	}
	res.NotesHTML = html
	return nil
}
