package envfile

import "strings"

// secretMarkers are substrings that flag a variable as holding a credential.
var secretMarkers = []string{"SECRET", "KEY", "TOKEN", "PASSWORD"}

// IsSecret reports whether key names a credential.
func IsSecret(key string) bool {
	upper := strings.ToUpper(key)
	for _, m := range secretMarkers {
		if strings.Contains(upper, m) {
			return true
		}
	}
	return false
}

// Mask hides all but the first four characters of a secret value.
func Mask(value string) string {
	if value == "" {
		return ""
	}
	if len(value) <= 8 {
		return strings.Repeat("*", len(value))
	}
	return value[:4] + strings.Repeat("*", 8)
}
