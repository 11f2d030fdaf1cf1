package engine

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestFormatMetrics(t *testing.T) {
	out := FormatMetrics()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(metricKeys) {
		t.Fatalf("FormatMetrics() has %d lines, want %d", len(lines), len(metricKeys))
	}
	for i, k := range metricKeys {
		if !strings.HasPrefix(lines[i], k+" ") {
			t.Errorf("line %d = %q, want key %q", i, lines[i], k)
		}
	}
}

func TestTrackOperation(t *testing.T) {
	want := errors.New("stage failed")
	got := TrackOperation(context.Background(), "test", func(context.Context) error { return want })
	if !errors.Is(got, want) {
		t.Errorf("TrackOperation() = %v, want %v", got, want)
	}
}
