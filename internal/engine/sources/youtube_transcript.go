package sources

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
)

// maxTimedText bounds one timedtext document. Multi-hour captions run to a few MiB.
const maxTimedText = 16 * 1024 * 1024

// timedTextTrack is one caption track listed in a player response.
type timedTextTrack struct {
	lang    string
	baseURL string
	client  *http.Client
}

// LanguageCode implements engine.Track.
func (t *timedTextTrack) LanguageCode() string { return t.lang }

// Fetch downloads the timedtext XML of the track and parses it into segments.
func (t *timedTextTrack) Fetch(ctx context.Context) ([]engine.Segment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch timedtext: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch timedtext: HTTP %d", resp.StatusCode)
	}

	body, err := readTimedText(resp.Body, maxTimedText)
	if err != nil {
		return nil, err
	}
	return parseTimedText(body)
}

// readTimedText reads r whole, failing instead of truncating past limit bytes.
func readTimedText(r io.Reader, limit int64) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read timedtext: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("timedtext exceeds %d bytes", limit)
	}
	return body, nil
}

// --- Timedtext XML types ---

type ytTimedText struct {
	Lines []ytLine `xml:"text"`
}

type ytLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// parseTimedText converts <transcript><text start="" dur="">…</text></transcript>
// into segments, in document order. Lines that are empty after cleanup are dropped.
func parseTimedText(body []byte) ([]engine.Segment, error) {
	var tt ytTimedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("parse timedtext XML: %w", err)
	}

	segments := make([]engine.Segment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := engine.CleanHTML(line.Text)
		if text == "" {
			continue
		}
		segments = append(segments, engine.Segment{
			Text:     text,
			Start:    line.Start,
			Duration: line.Dur,
		})
	}
	return segments, nil
}
