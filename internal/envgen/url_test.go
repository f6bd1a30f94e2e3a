package envgen

import (
	"strings"
	"testing"
)

func TestNormalizeURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"   ", ""},
		{"/", ""},
		{"https://example.com/", "https://example.com"},
		{"  https://example.com  ", "https://example.com"},
		{"https://example.com//", "https://example.com/"},
		{"\thttps://example.com/api/\n", "https://example.com/api"},
		{"http://127.0.0.1:9001", "http://127.0.0.1:9001"},
		{"https://example.com/ ", "https://example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := NormalizeURL(tt.in); got != tt.want {
				t.Errorf("NormalizeURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeURL_StripsAtMostOneSlash(t *testing.T) {
	inputs := []string{
		"https://example.com///",
		"  a/b/  ",
		"////",
		"no-slash",
		" x ",
	}
	for _, in := range inputs {
		trimmed := strings.TrimSpace(in)
		got := NormalizeURL(in)
		if got != trimmed && got+"/" != trimmed {
			t.Errorf("NormalizeURL(%q) = %q, not the trimmed input with at most one slash removed", in, got)
		}
	}
}

func TestNormalizeURL_RepeatedCallsStripOneEach(t *testing.T) {
	s := "https://example.com///"
	for _, want := range []string{"https://example.com//", "https://example.com/", "https://example.com", "https://example.com"} {
		s = NormalizeURL(s)
		if s != want {
			t.Fatalf("got %q, want %q", s, want)
		}
	}
}
