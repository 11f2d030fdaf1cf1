package sources

// YouTube caption provider, split across three files by responsibility:
//   youtube.go            : provider type and track listing (watch page, ANDROID player fallback)
//   youtube_innertube.go  : player response types, constants, and low-level HTTP primitives
//   youtube_transcript.go : caption track fetching and timedtext XML parsing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
)

// YouTube lists and fetches caption tracks without an API key.
type YouTube struct {
	client  *http.Client
	browser *engine.BrowserClient // optional, used for the watch page only

	watchURL  string
	playerURL string
}

// NewYouTube creates a provider. browser may be nil.
func NewYouTube(client *http.Client, browser *engine.BrowserClient) *YouTube {
	if client == nil {
		client = http.DefaultClient
	}
	return &YouTube{
		client:    client,
		browser:   browser,
		watchURL:  ytWatchURL,
		playerURL: ytInnertubeURL,
	}
}

// ListTracks returns the usable caption tracks of videoID in YouTube's order.
// Primary:  scrape watch page ytInitialPlayerResponse (works from most IPs)
// Fallback: ANDROID Innertube /player
func (y *YouTube) ListTracks(ctx context.Context, videoID string) (engine.TrackList, error) {
	list, err := y.listFromWatchPage(ctx, videoID)
	if err == nil {
		return list, nil
	}
	slog.Warn("youtube: watch page failed, trying android player",
		slog.String("id", videoID), slog.Any("error", err))

	alt, altErr := y.listFromPlayer(ctx, videoID)
	if altErr != nil {
		if errors.Is(err, engine.ErrNoTranscripts) && errors.Is(altErr, engine.ErrNoTranscripts) {
			return engine.TrackList{}, altErr
		}
		return engine.TrackList{}, fmt.Errorf("%w; %w", err, altErr)
	}
	if alt.Title == "" {
		alt.Title = list.Title
	}
	return alt, nil
}

func (y *YouTube) listFromWatchPage(ctx context.Context, videoID string) (engine.TrackList, error) {
	body, err := y.fetchWatchPage(ctx, videoID)
	if err != nil {
		return engine.TrackList{}, fmt.Errorf("watch page: %w", err)
	}
	pr, err := parseWatchPage(body)
	if err != nil {
		return engine.TrackList{}, err
	}
	return y.trackList(pr)
}

func (y *YouTube) listFromPlayer(ctx context.Context, videoID string) (engine.TrackList, error) {
	pr, err := y.postPlayer(ctx, videoID)
	if err != nil {
		return engine.TrackList{}, fmt.Errorf("android player: %w", err)
	}
	return y.trackList(pr)
}

// trackList binds the usable caption tracks of pr to this provider's HTTP client.
// The title is kept even when no track is usable.
func (y *YouTube) trackList(pr innertubePlayerResp) (engine.TrackList, error) {
	list := engine.TrackList{Title: pr.title()}
	tracks, err := usableTracks(pr)
	if err != nil {
		return list, err
	}
	for _, t := range tracks {
		list.Tracks = append(list.Tracks, &timedTextTrack{
			lang:    t.LanguageCode,
			baseURL: t.BaseURL,
			client:  y.client,
		})
	}
	return list, nil
}
