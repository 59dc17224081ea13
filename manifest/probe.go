package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Probe decodes the header of an audio file and reports its length.
func Probe(path string) (time.Duration, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("manifest: open %s: %w", path, err)
	}
	defer f.Close()

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		return 0, fmt.Errorf("manifest: unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		return 0, fmt.Errorf("manifest: decode %s: %w", path, err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// Row is one manifest entry paired with its probed duration.
type Row struct {
	Name     string
	Duration time.Duration
	Err      error
}

func ProbeAll(dir string, names []string) []Row {
	rows := make([]Row, 0, len(names))
	for _, name := range names {
		d, err := Probe(filepath.Join(dir, name))
		rows = append(rows, Row{Name: name, Duration: d, Err: err})
	}
	return rows
}
