package playback

import "time"

// Handle is one opened track on the audio backend.
type Handle interface {
	Play()
	Pause()
	// Stop pauses and rewinds to the start.
	Stop()
	IsPlaying() bool
	Position() time.Duration
	SetPosition(time.Duration) error
	Duration() time.Duration
	SetVolume(volume float64)
	Close() error
}

// Loader opens tracks by playlist name.
type Loader interface {
	Open(name string) (Handle, error)
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(name string) (Handle, error)

func (f LoaderFunc) Open(name string) (Handle, error) {
	return f(name)
}
