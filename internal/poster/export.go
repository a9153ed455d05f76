package poster

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/gofrs/flock"
)

// ErrExportLocked is returned when another export holds the directory lock.
var ErrExportLocked = errors.New("poster export already running in directory")

const lockFileName = ".reelmatch.lock"

// Export writes each image as NN-<slug>.png in dir, numbered from 01 in the
// given order, and returns the written paths.
func Export(dir string, results []Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create poster dir: %w", err)
	}
	lock := flock.New(filepath.Join(dir, lockFileName))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire export lock: %w", err)
	}
	if !locked {
		return nil, ErrExportLocked
	}
	defer func() { _ = lock.Unlock() }()

	paths := make([]string, 0, len(results))
	for i, res := range results {
		path := filepath.Join(dir, fmt.Sprintf("%02d-%s.png", i+1, Slug(res.Title)))
		img := res.Image
		if img == nil {
			img = Placeholder(res.Title)
		}
		if err := WritePNG(path, img); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// WritePNG encodes img to path via a temporary file.
func WritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create poster dir: %w", err)
	}
	tmp, err := os.CreateTemp(filepath.Dir(path), ".poster-*.png")
	if err != nil {
		return fmt.Errorf("create temp poster: %w", err)
	}
	tmpName := tmp.Name()
	if err := png.Encode(tmp, img); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("encode poster: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close poster: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename poster: %w", err)
	}
	return nil
}

// Slug lowercases a title and keeps letters and digits, joining the rest
// with single dashes.
func Slug(title string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if b.Len() > 0 && !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		return "untitled"
	}
	if runes := []rune(slug); len(runes) > 60 {
		slug = strings.TrimRight(string(runes[:60]), "-")
	}
	return slug
}
