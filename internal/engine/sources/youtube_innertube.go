package sources

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/anatolykoptev/go_ytnotes/internal/engine"
)

// YouTube player response: low-level constants, types and HTTP primitives.

const (
	ytWatchURL       = "https://www.youtube.com/watch?v="
	ytInnertubeURL   = "https://www.youtube.com/youtubei/v1/player"
	ytAndroidVersion = "20.10.38"
	ytAndroidUA      = "com.google.android.youtube/" + ytAndroidVersion + " (Linux; U; Android 11) gzip"

	maxWatchPage  = 6 * 1024 * 1024
	maxPlayerResp = 3 * 1024 * 1024
)

// ytInitialPlayerResponseMarker marks the start of the player response JSON in watch page HTML.
const ytInitialPlayerResponseMarker = "ytInitialPlayerResponse = "

var errAllTracksNeedPoToken = errors.New("all caption tracks require PoToken")

// --- ANDROID client types (/player endpoint) ---

type innertubeReq struct {
	VideoID        string       `json:"videoId"`
	Context        innertubeCtx `json:"context"`
	RacyCheckOk    bool         `json:"racyCheckOk"`
	ContentCheckOk bool         `json:"contentCheckOk"`
}

type innertubeCtx struct {
	Client innertubeClient `json:"client"`
}

type innertubeClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

// innertubePlayerResp is shared by the watch page and the /player endpoint.
type innertubePlayerResp struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	VideoDetails *struct {
		Title string `json:"title"`
	} `json:"videoDetails"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

func (r innertubePlayerResp) title() string {
	if r.VideoDetails == nil {
		return ""
	}
	return r.VideoDetails.Title
}

func (r innertubePlayerResp) reason() string {
	if r.PlayabilityStatus == nil {
		return ""
	}
	return r.PlayabilityStatus.Reason
}

// usableTracks returns the caption tracks of r that can be fetched server-side.
// A response without captions yields engine.ErrNoTranscripts, annotated with
// the playability reason when YouTube gives one.
func usableTracks(r innertubePlayerResp) ([]captionTrack, error) {
	var tracks []captionTrack
	if r.Captions != nil {
		tracks = r.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	}
	if len(tracks) == 0 {
		if reason := r.reason(); reason != "" {
			return nil, fmt.Errorf("%w: %s", engine.ErrNoTranscripts, reason)
		}
		return nil, engine.ErrNoTranscripts
	}

	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return nil, errAllTracksNeedPoToken
	}
	return usable, nil
}

// needsPoToken reports whether a caption track URL requires a PoToken (browser-only).
// Tracks with &exp=xpe cannot be fetched server-side.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// fetchWatchPage GETs the watch page HTML, through the stealth client when configured.
func (y *YouTube) fetchWatchPage(ctx context.Context, videoID string) ([]byte, error) {
	watchURL := y.watchURL + videoID

	if y.browser != nil {
		headers := engine.ChromeHeaders()
		headers["accept-language"] = "en-US,en;q=0.9"
		data, _, status, err := y.browser.Do(http.MethodGet, watchURL, headers, nil)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("HTTP %d", status)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, watchURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", engine.RandomUserAgent())
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := y.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxWatchPage))
}

// parseWatchPage extracts ytInitialPlayerResponse from watch page HTML.
func parseWatchPage(body []byte) (innertubePlayerResp, error) {
	var pr innertubePlayerResp
	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return pr, errors.New("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return pr, errors.New("failed to extract ytInitialPlayerResponse JSON")
	}
	if err := json.Unmarshal(jsonData, &pr); err != nil {
		return pr, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return pr, nil
}

// postPlayer asks the ANDROID Innertube /player endpoint for the player response.
// Works from non-blocked (residential/cloud) IP addresses.
func (y *YouTube) postPlayer(ctx context.Context, videoID string) (innertubePlayerResp, error) {
	var pr innertubePlayerResp
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return pr, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, y.playerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
	if err != nil {
		return pr, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", ytAndroidUA)
	req.Header.Set("X-Youtube-Client-Name", "3")
	req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)

	resp, err := y.client.Do(req)
	if err != nil {
		return pr, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return pr, fmt.Errorf("HTTP %d: %s", resp.StatusCode, snippet)
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPlayerResp)).Decode(&pr); err != nil {
		return pr, fmt.Errorf("decode player: %w", err)
	}
	return pr, nil
}

// extractJSON returns the balanced JSON object at the start of b, or nil.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr, escaped := false, false
	for i, c := range b {
		if inStr {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}
