package envgen

import "strings"

// NormalizeURL trims surrounding whitespace and removes a single trailing
// slash. Only one slash is stripped per call: "https://a//" becomes "https://a/".
func NormalizeURL(raw string) string {
	s := strings.TrimSpace(raw)
	return strings.TrimSuffix(s, "/")
}
