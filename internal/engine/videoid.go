package engine

import (
	"regexp"
	"strings"
)

// videoIDMatcher recognises one YouTube URL shape.
type videoIDMatcher struct {
	name  string
	match func(string) (string, bool)
}

// regexMatcher returns a matcher yielding the first capture group of the leftmost match.
func regexMatcher(pattern string) func(string) (string, bool) {
	re := regexp.MustCompile(pattern)
	return func(s string) (string, bool) {
		m := re.FindStringSubmatch(s)
		if len(m) < 2 {
			return "", false
		}
		return m[1], true
	}
}

// videoIDMatchers are tried in order; first match wins.
// "watch" already covers "watch_query"; both are kept so the precedence stays explicit.
var videoIDMatchers = []videoIDMatcher{
	{name: "watch", match: regexMatcher(`(?:v=|/)([0-9A-Za-z_-]{11})`)},
	{name: "embed", match: regexMatcher(`(?:embed/)([0-9A-Za-z_-]{11})`)},
	{name: "short", match: regexMatcher(`(?:youtu\.be/)([0-9A-Za-z_-]{11})`)},
	{name: "watch_query", match: regexMatcher(`(?:watch\?v=)([0-9A-Za-z_-]{11})`)},
}

// ExtractVideoID pulls the 11-char video ID from a YouTube URL.
// Everything from the first '&' on is dropped before matching (&list=, &index=, &t=).
// Reports false when no known URL shape matches.
func ExtractVideoID(rawURL string) (string, bool) {
	id, _, ok := matchVideoID(rawURL)
	return id, ok
}

func matchVideoID(rawURL string) (id, matcher string, ok bool) {
	s, _, _ := strings.Cut(rawURL, "&")
	for _, m := range videoIDMatchers {
		if id, ok := m.match(s); ok {
			return cleanVideoID(id), m.name, true
		}
	}
	return "", "", false
}

// cleanVideoID cuts anything after a stray '?' or '&'.
func cleanVideoID(id string) string {
	id, _, _ = strings.Cut(id, "?")
	id, _, _ = strings.Cut(id, "&")
	return id
}
