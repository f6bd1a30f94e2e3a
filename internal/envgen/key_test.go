package envgen

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// errorReader is a byte source that always fails.
type errorReader struct{}

func (r *errorReader) Read([]byte) (n int, err error) {
	return 0, errors.New("mocked random source failure")
}

func TestGenerateKey(t *testing.T) {
	t.Run("Length", func(t *testing.T) {
		for _, n := range []int{0, 1, 16, 48, 64, 255, 1024} {
			key, err := GenerateKey(n)
			require.NoError(t, err)
			assert.Len(t, key, n)
		}
	})

	t.Run("Alphabet", func(t *testing.T) {
		key, err := GenerateKey(4096)
		require.NoError(t, err)
		for _, c := range key {
			assert.Contains(t, Alphabet, string(c), "unexpected character %q", c)
		}
	})

	t.Run("No Collisions", func(t *testing.T) {
		const trials = 10000
		seen := make(map[string]struct{}, trials)
		for i := 0; i < trials; i++ {
			key, err := GenerateKey(DefaultKeyLength)
			require.NoError(t, err)
			_, dup := seen[key]
			require.False(t, dup, "duplicate key after %d trials: %s", i, key)
			seen[key] = struct{}{}
		}
	})

	t.Run("Negative Length", func(t *testing.T) {
		_, err := GenerateKey(-1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidLength))
	})
}

func TestGenerator_Key(t *testing.T) {
	t.Run("Source Failure", func(t *testing.T) {
		g := Generator{Rand: &errorReader{}}
		key, err := g.Key(8)
		require.Error(t, err)
		assert.Empty(t, key)
		assert.Contains(t, err.Error(), "mocked random source failure")
	})

	t.Run("Short Source", func(t *testing.T) {
		g := Generator{Rand: bytes.NewReader([]byte{1, 2, 3})}
		_, err := g.Key(8)
		require.Error(t, err, "a source that runs dry must not yield a short key")
	})

	t.Run("Byte Mapping", func(t *testing.T) {
		src := []byte{0, 1, 25, 26, 51, 52, 61, 62, 63, 64, 127, 128, 255}
		g := Generator{Rand: bytes.NewReader(src)}
		key, err := g.Key(len(src))
		require.NoError(t, err)
		assert.Equal(t, "abzAZ09-_a_a_", key)
	})

	t.Run("Zero Value Uses Crypto Source", func(t *testing.T) {
		key, err := Generator{}.Key(32)
		require.NoError(t, err)
		assert.Len(t, key, 32)
	})

	t.Run("Zero Length Skips Source", func(t *testing.T) {
		key, err := Generator{Rand: &errorReader{}}.Key(0)
		require.NoError(t, err)
		assert.Equal(t, "", key)
	})
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 64)
	assert.Zero(t, 256%len(Alphabet))

	seen := make(map[rune]bool)
	for _, c := range Alphabet {
		assert.False(t, seen[c], "duplicate symbol %q", c)
		seen[c] = true
	}
}

// BenchmarkGenerateKey measures key generation at the default length.
func BenchmarkGenerateKey(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := GenerateKey(DefaultKeyLength); err != nil {
			b.Fatal(err)
		}
	}
}
