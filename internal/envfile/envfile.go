// Package envfile writes and reads KEY=VALUE environment files.
package envfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ErrFileExists is returned when a target file exists and overwriting was not requested.
var ErrFileExists = errors.New("env file already exists")

// File is a single env file to write, relative to the output directory.
type File struct {
	Name    string
	Content string
}

// WriteAll writes every file into dir, creating dir if needed. Each file is
// written with mode 0600 through a temp file and rename. Existing files are
// left alone and ErrFileExists is returned unless force is set.
func WriteAll(ctx context.Context, dir string, files []File, force bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("envfile: failed to create directory %s: %w", dir, err)
	}

	paths := make([]string, len(files))
	for i, f := range files {
		if f.Name == "" || filepath.Base(f.Name) != f.Name {
			return nil, fmt.Errorf("envfile: invalid file name %q", f.Name)
		}
		paths[i] = filepath.Join(dir, f.Name)
	}

	// Check every target before writing any so a refusal leaves nothing half-written.
	if !force {
		for _, p := range paths {
			if _, err := os.Stat(p); err == nil {
				return nil, fmt.Errorf("envfile: %w: %s (use --force to overwrite)", ErrFileExists, p)
			} else if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("envfile: failed to stat %s: %w", p, err)
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, f := range files {
		path := paths[i]
		content := f.Content
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := writeAtomic(path, []byte(content)); err != nil {
				return err
			}
			zap.L().Debug("wrote env file", zap.String("path", path), zap.Int("bytes", len(content)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return paths, nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("envfile: failed to create temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("envfile: failed to chmod %s: %w", tmpName, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("envfile: failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("envfile: failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("envfile: failed to write %s: %w", path, err)
	}
	return nil
}

// Entry is one KEY=VALUE assignment.
type Entry struct {
	Key   string
	Value string
}

// Parse reads KEY=VALUE lines from r. Blank lines and lines starting with '#'
// are skipped. A line without '=' is an error.
func Parse(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("envfile: line %d: missing '='", lineNo)
		}
		key = strings.TrimSpace(key)
		if key == "" {
			return nil, fmt.Errorf("envfile: line %d: empty key", lineNo)
		}
		entries = append(entries, Entry{Key: key, Value: value})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("envfile: read failed: %w", err)
	}
	return entries, nil
}

// ParseFile opens path and parses it with Parse.
func ParseFile(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("envfile: %w", err)
	}
	defer f.Close()
	return Parse(f)
}

// ToMap collects entries into a map. Later keys win.
func ToMap(entries []Entry) map[string]string {
	m := make(map[string]string, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Value
	}
	return m
}
