package engine

import "testing"

func TestExtractVideoID(t *testing.T) {
	const id = "dQw4w9WgXcQ"
	tests := []struct {
		name string
		url  string
	}{
		{"canonical watch", "https://www.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"watch with list", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123"},
		{"watch with index and time", "https://www.youtube.com/watch?v=dQw4w9WgXcQ&index=3&t=42s"},
		{"mobile watch", "https://m.youtube.com/watch?v=dQw4w9WgXcQ"},
		{"no scheme", "youtube.com/watch?v=dQw4w9WgXcQ"},
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ"},
		{"embed with query", "https://www.youtube.com/embed/dQw4w9WgXcQ?autoplay=1"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ"},
		{"short link with time", "https://youtu.be/dQw4w9WgXcQ?t=42"},
		{"shorts", "https://www.youtube.com/shorts/dQw4w9WgXcQ"},
		{"live", "https://www.youtube.com/live/dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractVideoID(tt.url)
			if !ok {
				t.Fatalf("ExtractVideoID(%q) reported no match", tt.url)
			}
			if got != id {
				t.Errorf("ExtractVideoID(%q) = %q, want %q", tt.url, got, id)
			}
		})
	}
}

func TestExtractVideoID_NoMatch(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"plain text", "not a url"},
		{"channel page", "https://www.youtube.com/@channel"},
		{"id too short", "https://youtu.be/abc"},
		{"v after ampersand", "https://www.youtube.com/watch?feature=share&v=dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, ok := ExtractVideoID(tt.url); ok {
				t.Errorf("ExtractVideoID(%q) = %q, want no match", tt.url, got)
			}
		})
	}
}

func TestMatchVideoID_Matcher(t *testing.T) {
	tests := []struct {
		url         string
		wantMatcher string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "watch"},
		{"https://youtu.be/dQw4w9WgXcQ", "watch"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "watch"},
	}
	for _, tt := range tests {
		_, matcher, ok := matchVideoID(tt.url)
		if !ok {
			t.Fatalf("matchVideoID(%q) reported no match", tt.url)
		}
		if matcher != tt.wantMatcher {
			t.Errorf("matchVideoID(%q) matcher = %q, want %q", tt.url, matcher, tt.wantMatcher)
		}
	}
}

func TestVideoIDMatchers_Individually(t *testing.T) {
	tests := []struct {
		matcher string
		input   string
		want    string
		wantOK  bool
	}{
		{"embed", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"embed", "https://youtu.be/dQw4w9WgXcQ", "", false},
		{"short", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "", false},
		{"watch_query", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch_query", "https://www.youtube.com/embed/dQw4w9WgXcQ", "", false},
	}
	byName := make(map[string]videoIDMatcher, len(videoIDMatchers))
	for _, m := range videoIDMatchers {
		byName[m.name] = m
	}
	for _, tt := range tests {
		m, found := byName[tt.matcher]
		if !found {
			t.Fatalf("matcher %q not registered", tt.matcher)
		}
		got, ok := m.match(tt.input)
		if ok != tt.wantOK || got != tt.want {
			t.Errorf("%s(%q) = (%q, %v), want (%q, %v)", tt.matcher, tt.input, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestCleanVideoID(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ?t=1", "dQw4w9WgXcQ"},
		{"dQw4w9WgXcQ&x=1", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		if got := cleanVideoID(tt.in); got != tt.want {
			t.Errorf("cleanVideoID(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
