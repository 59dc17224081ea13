// Package manifest maintains the _fileList.json index of a music directory.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

const FileName = "_fileList.json"

// Entries lists the track files in dir: every regular file that is not JSON,
// sorted by name.
func Entries(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", dir, err)
	}

	tracks := lo.FilterMap(files, func(f fs.DirEntry, _ int) (string, bool) {
		if f.IsDir() {
			return "", false
		}
		return f.Name(), !strings.EqualFold(filepath.Ext(f.Name()), ".json")
	})
	sort.Strings(tracks)
	return tracks, nil
}

// Generate creates dir when missing and writes its manifest.
func Generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("manifest: create %s: %w", dir, err)
	}

	tracks, err := Entries(dir)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(tracks)
	if err != nil {
		return nil, fmt.Errorf("manifest: encode: %w", err)
	}

	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, fmt.Errorf("manifest: write %s: %w", path, err)
	}
	return tracks, nil
}

// Load reads the manifest of dir. A missing manifest is an empty list.
func Load(dir string) ([]string, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	var tracks []string
	if err := json.Unmarshal(data, &tracks); err != nil {
		return nil, fmt.Errorf("manifest: decode %s: %w", path, err)
	}
	if tracks == nil {
		tracks = []string{}
	}
	return tracks, nil
}
