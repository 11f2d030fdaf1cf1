package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// Segment is one timed caption unit. Start and Duration are in seconds.
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

// Track is one caption stream of a video.
type Track interface {
	LanguageCode() string
	Fetch(ctx context.Context) ([]Segment, error)
}

// TrackList is the set of caption tracks a provider found for a video, in provider order.
type TrackList struct {
	Title  string // video title, empty when unknown
	Tracks []Track
}

// TranscriptProvider lists the caption tracks of a video.
type TranscriptProvider interface {
	ListTracks(ctx context.Context, videoID string) (TrackList, error)
}

// Transcript is the flattened text of the selected track.
type Transcript struct {
	Text     string
	Language string
	Title    string
}

// TranscriptFetcher turns a video ID into transcript text.
type TranscriptFetcher struct {
	provider TranscriptProvider
}

// NewTranscriptFetcher creates a fetcher backed by the given provider.
func NewTranscriptFetcher(p TranscriptProvider) *TranscriptFetcher {
	return &TranscriptFetcher{provider: p}
}

// Fetch lists the tracks of videoID, picks one with SelectTrack and joins its segments.
func (f *TranscriptFetcher) Fetch(ctx context.Context, videoID string) (Transcript, error) {
	metrics.TranscriptRequests.Add(1)
	t, err := f.fetch(ctx, videoID)
	if err != nil {
		metrics.TranscriptErrors.Add(1)
	}
	return t, err
}

func (f *TranscriptFetcher) fetch(ctx context.Context, videoID string) (Transcript, error) {
	list, err := f.provider.ListTracks(ctx, videoID)
	if err != nil {
		return Transcript{}, err
	}

	track, err := SelectTrack(list.Tracks)
	if err != nil {
		return Transcript{}, err
	}
	slog.Info("transcript: language selected",
		slog.String("id", videoID),
		slog.String("lang", track.LanguageCode()),
		slog.Int("available", len(list.Tracks)))

	segments, err := track.Fetch(ctx)
	if err != nil {
		return Transcript{}, fmt.Errorf("fetch %s track: %w", track.LanguageCode(), err)
	}

	text := JoinSegments(segments)
	if strings.TrimSpace(text) == "" {
		return Transcript{}, ErrEmptyTranscript
	}
	return Transcript{Text: text, Language: track.LanguageCode(), Title: list.Title}, nil
}

// SelectTrack picks the first track whose language code starts with "en",
// falling back to the first track in collection order.
func SelectTrack(tracks []Track) (Track, error) {
	if len(tracks) == 0 {
		return nil, ErrNoTranscripts
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.LanguageCode(), "en") {
			return t, nil
		}
	}
	return tracks[0], nil
}

// JoinSegments concatenates segment texts with single spaces, in order.
func JoinSegments(segments []Segment) string {
	var sb strings.Builder
	for i, s := range segments {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(s.Text)
	}
	return sb.String()
}
