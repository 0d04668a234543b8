// Package library lists the playable tracks of the music folder.
package library

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/lofi/internal/tags"
)

// Track is one playable file. Name is both its identifier and sort key.
type Track struct {
	Name string
	Path string
}

// Scan lists the music files directly inside dir, sorted by name.
// Subdirectories, hidden files and unknown extensions are skipped.
func Scan(dir string) ([]Track, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	tracks := make([]Track, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || !tags.IsMusicFile(name) {
			continue
		}
		path := filepath.Join(abs, name)
		if !isRegular(e, path) {
			continue
		}
		tracks = append(tracks, Track{Name: name, Path: path})
	}

	slices.SortFunc(tracks, func(a, b Track) int {
		return strings.Compare(a.Name, b.Name)
	})
	return tracks, nil
}

// isRegular accepts regular files and symlinks that resolve to one.
func isRegular(e os.DirEntry, path string) bool {
	if e.Type().IsRegular() {
		return true
	}
	if e.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Summary describes the music folder for the settings page.
type Summary struct {
	Tracks int
	Bytes  int64
}

func (s Summary) String() string {
	noun := "tracks"
	if s.Tracks == 1 {
		noun = "track"
	}
	return fmt.Sprintf("%d %s, %s", s.Tracks, noun, humanize.Bytes(uint64(max(s.Bytes, 0)))) //nolint:gosec // clamped
}

// Summarize counts the tracks Scan would return and their total size.
func Summarize(dir string) (Summary, error) {
	tracks, err := Scan(dir)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Tracks: len(tracks)}
	for _, t := range tracks {
		if info, err := os.Stat(t.Path); err == nil {
			sum.Bytes += info.Size()
		}
	}
	return sum, nil
}

// Names returns the track names in order.
func Names(tracks []Track) []string {
	out := make([]string, len(tracks))
	for i, t := range tracks {
		out[i] = t.Name
	}
	return out
}
