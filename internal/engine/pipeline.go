package engine

import (
	"context"
	"log/slog"
	"unicode/utf8"
)

// AnalysisResult is the success payload of one analysis.
type AnalysisResult struct {
	Success          bool   `json:"success"`
	VideoID          string `json:"video_id"`
	Notes            string `json:"notes"`
	TranscriptLength int    `json:"transcript_length"`
	Language         string `json:"language"`
	Title            string `json:"title,omitempty"`
	NotesHTML        string `json:"notes_html,omitempty"`
}

// Analyzer drives URL -> video id -> transcript -> notes.
// It holds no per-request state and is safe for concurrent use.
type Analyzer struct {
	fetcher *TranscriptFetcher
	synth   *NoteSynthesizer
}

// NewAnalyzer wires the pipeline stages together.
func NewAnalyzer(provider TranscriptProvider, gen Generator) *Analyzer {
	return &Analyzer{
		fetcher: NewTranscriptFetcher(provider),
		synth:   NewNoteSynthesizer(gen),
	}
}

// Analyze runs the three stages in order. The first failing stage stops the
// run; its error is a *PipelineError carrying the user-facing message and status.
// Failures are counted here and logged by the caller.
func (a *Analyzer) Analyze(ctx context.Context, rawURL string) (*AnalysisResult, error) {
	metrics.AnalyzeRequests.Add(1)
	res, err := a.analyze(ctx, rawURL)
	if err != nil {
		metrics.AnalyzeErrors.Add(1)
		return nil, err
	}
	return res, nil
}

func (a *Analyzer) analyze(ctx context.Context, rawURL string) (*AnalysisResult, error) {
	if rawURL == "" {
		return nil, NewMissingURL()
	}

	videoID, matcher, ok := matchVideoID(rawURL)
	if !ok {
		return nil, NewInvalidURL(rawURL)
	}
	slog.Debug("analyze: video id extracted",
		slog.String("id", videoID), slog.String("matcher", matcher))

	var tr Transcript
	err := TrackOperation(ctx, "transcript:"+videoID, func(ctx context.Context) error {
		var err error
		tr, err = a.fetcher.Fetch(ctx, videoID)
		return err
	})
	if err != nil {
		return nil, NewTranscriptUnavailable(err)
	}
	length := utf8.RuneCountInString(tr.Text)
	slog.Info("analyze: transcript fetched",
		slog.String("id", videoID), slog.Int("length", length))

	var notes string
	err = TrackOperation(ctx, "notes:"+videoID, func(ctx context.Context) error {
		var err error
		notes, err = a.synth.Synthesize(ctx, tr.Text, tr.Title)
		return err
	})
	if err != nil {
		return nil, NewAnalysisFailed(err)
	}
	slog.Info("analyze: notes generated",
		slog.String("id", videoID), slog.Int("notes_chars", len(notes)))

	return &AnalysisResult{
		Success:          true,
		VideoID:          videoID,
		Notes:            notes,
		TranscriptLength: length,
		Language:         tr.Language,
		Title:            tr.Title,
	}, nil
}
