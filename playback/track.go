package playback

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrNoTracks is the only failure the transport recognises: the playlist
	// came up empty.
	ErrNoTracks        = errors.New("playback: no track found")
	ErrNotStarted      = errors.New("playback: session not started")
	ErrIndexOutOfRange = errors.New("playback: index out of range")
)

// NoTrackTitle is shown instead of a title when the playlist is empty.
const NoTrackTitle = "No track found."

// LoadingTitle is shown until the controller is initialised.
const LoadingTitle = "Loading..."

// Track is an immutable playlist entry.
type Track struct {
	Name     string
	Duration time.Duration
}

// Playlist is an ordered list of tracks.
type Playlist []Track

func NewPlaylist(names []string) Playlist {
	out := make(Playlist, 0, len(names))
	for _, name := range names {
		out = append(out, Track{Name: name})
	}
	return out
}

func (p Playlist) Len() int { return len(p) }

func (p Playlist) Empty() bool { return len(p) == 0 }

func (p Playlist) At(i int) (Track, error) {
	if i < 0 || i >= len(p) {
		return Track{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(p))
	}
	return p[i], nil
}

// FormatTrackDuration renders whole seconds as MM:SS, zero padded.
func FormatTrackDuration(totalSeconds float64) string {
	if totalSeconds < 0 || math.IsNaN(totalSeconds) {
		totalSeconds = 0
	}
	minutes := int(math.Floor(totalSeconds / 60))
	seconds := int(math.Floor(math.Mod(totalSeconds, 60)))
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatDuration is FormatTrackDuration for a time.Duration.
func FormatDuration(d time.Duration) string {
	return FormatTrackDuration(d.Seconds())
}
