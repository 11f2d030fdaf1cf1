package toolutil

import (
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
)

func TestNewRequestID(t *testing.T) {
	id := NewRequestID()
	_, err := ulid.Parse(id)
	require.NoError(t, err)
	assert.NotEqual(t, id, NewRequestID())
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML("## 🎯 Key Points\n\n- **one**\n- two\n")
	require.NoError(t, err)
	assert.Contains(t, html, "<h2>🎯 Key Points</h2>")
	assert.Contains(t, html, "<li><strong>one</strong></li>")
	assert.Contains(t, html, "<li>two</li>")
}

func TestApplyFormat(t *testing.T) {
	res := &engine.AnalysisResult{Notes: "# Title"}

	require.NoError(t, ApplyFormat(res, ""))
	assert.Empty(t, res.NotesHTML)

	require.NoError(t, ApplyFormat(res, "markdown"))
	assert.Empty(t, res.NotesHTML)

	require.NoError(t, ApplyFormat(res, FormatHTML))
	assert.Equal(t, "<h1>Title</h1>\n", res.NotesHTML)
}
