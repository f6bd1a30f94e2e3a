// Package envgen holds the value generators behind every env file fleetenv
// writes: API key generation, URL normalization and CORS origin assembly.
package envgen

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
)

// Alphabet is the set of symbols a generated key is drawn from.
// Its length must divide 256 so that byte%len(Alphabet) stays uniform.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789-_"

// DefaultKeyLength is the key length used when none is configured.
const DefaultKeyLength = 48

// ErrInvalidLength is returned when a negative key length is requested.
var ErrInvalidLength = errors.New("key length must not be negative")

func init() {
	if 256%len(Alphabet) != 0 {
		panic(fmt.Sprintf("envgen: alphabet size %d does not divide 256", len(Alphabet)))
	}
}

// Generator produces random keys from a byte source.
// The zero value reads from crypto/rand.
type Generator struct {
	// Rand is the byte source. It must be cryptographically secure outside of tests.
	Rand io.Reader
}

// Key returns a random string of exactly n characters from Alphabet.
// An error from the byte source is returned as is (wrapped); there is no fallback.
func (g Generator) Key(n int) (string, error) {
	if n < 0 {
		return "", fmt.Errorf("envgen: %w (got %d)", ErrInvalidLength, n)
	}
	if n == 0 {
		return "", nil
	}

	src := g.Rand
	if src == nil {
		src = rand.Reader
	}

	buf := make([]byte, n)
	if _, err := io.ReadFull(src, buf); err != nil {
		return "", fmt.Errorf("envgen: secure random source unavailable: %w", err)
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%len(Alphabet)]
	}
	return string(buf), nil
}

// GenerateKey returns a random key of n characters read from crypto/rand.
func GenerateKey(n int) (string, error) {
	return Generator{Rand: rand.Reader}.Key(n)
}
