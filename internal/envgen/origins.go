package envgen

import "strings"

// AnyOrigin is the CORS value that allows every origin.
const AnyOrigin = "*"

// BuildOrigins assembles a CORS origin string from raw entries. Entries may
// themselves be comma-separated. Each origin is normalized, empties are dropped
// and duplicates removed in first-seen order. A "*" anywhere wins.
func BuildOrigins(entries ...string) string {
	seen := make(map[string]struct{})
	var origins []string

	for _, entry := range entries {
		for _, part := range strings.Split(entry, ",") {
			origin := NormalizeURL(part)
			if origin == "" {
				continue
			}
			if origin == AnyOrigin {
				return AnyOrigin
			}
			if _, ok := seen[origin]; ok {
				continue
			}
			seen[origin] = struct{}{}
			origins = append(origins, origin)
		}
	}

	return strings.Join(origins, ",")
}

// WebSocketURL converts an http(s) base URL into the matching ws(s) endpoint
// at path. Other schemes are returned with path appended unchanged.
func WebSocketURL(base, path string) string {
	base = NormalizeURL(base)
	if base == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return base + path
}
