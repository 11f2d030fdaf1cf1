package engine

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNoTranscripts is returned when a video exposes no caption tracks.
	ErrNoTranscripts = errors.New("no transcripts available for this video")
	// ErrEmptyTranscript is returned when the selected track has no text.
	ErrEmptyTranscript = errors.New("transcript is empty")
	// ErrEmptyCompletion is returned when the model answers with no text.
	ErrEmptyCompletion = errors.New("model returned an empty response")
)

// ErrorCode identifies which pipeline edge failed.
type ErrorCode string

const (
	ErrMissingURL            ErrorCode = "MISSING_URL"            // 400
	ErrInvalidURL            ErrorCode = "INVALID_URL"            // 400
	ErrTranscriptUnavailable ErrorCode = "TRANSCRIPT_UNAVAILABLE" // 400
	ErrAnalysisFailed        ErrorCode = "ANALYSIS_FAILED"        // 500
)

// PipelineError is the user-facing failure of one pipeline stage.
type PipelineError struct {
	Code    ErrorCode
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the upstream cause, if any.
func (e *PipelineError) Unwrap() error { return e.Err }

// NewMissingURL creates a 400 error for an empty URL.
func NewMissingURL() *PipelineError {
	return &PipelineError{
		Code:    ErrMissingURL,
		Status:  http.StatusBadRequest,
		Message: "Please provide a YouTube URL",
	}
}

// NewInvalidURL creates a 400 error for a URL with no recognizable video id.
func NewInvalidURL(rawURL string) *PipelineError {
	return &PipelineError{
		Code:    ErrInvalidURL,
		Status:  http.StatusBadRequest,
		Message: "Invalid YouTube URL",
		Err:     fmt.Errorf("no video id in %q", rawURL),
	}
}

// NewTranscriptUnavailable creates a 400 error for a transcript fetch failure.
// The video is treated as the caller's problem: no captions, private, region locked.
func NewTranscriptUnavailable(err error) *PipelineError {
	return &PipelineError{
		Code:    ErrTranscriptUnavailable,
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf("Could not get transcript: %v. Make sure the video has captions/subtitles available.", err),
		Err:     err,
	}
}

// NewAnalysisFailed creates a 500 error for a generative-text provider failure.
func NewAnalysisFailed(err error) *PipelineError {
	return &PipelineError{
		Code:    ErrAnalysisFailed,
		Status:  http.StatusInternalServerError,
		Message: fmt.Sprintf("Analysis failed: %v", err),
		Err:     err,
	}
}

// IsCode checks if err is a PipelineError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr.Code == code
	}
	return false
}

// AsPipelineError returns err as a PipelineError. Unknown errors become ANALYSIS_FAILED.
func AsPipelineError(err error) *PipelineError {
	var pErr *PipelineError
	if errors.As(err, &pErr) {
		return pErr
	}
	return NewAnalysisFailed(err)
}
