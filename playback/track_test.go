package playback

import (
	"errors"
	"testing"
	"time"
)

func TestFormatTrackDuration(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59.9, "00:59"},
		{65, "01:05"},
		{600, "10:00"},
		{3725, "62:05"},
		{-3, "00:00"},
	}
	for _, tt := range tests {
		if got := FormatTrackDuration(tt.in); got != tt.want {
			t.Errorf("FormatTrackDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
	if got := FormatDuration(65 * time.Second); got != "01:05" {
		t.Errorf("FormatDuration(65s) = %q", got)
	}
}

func TestPlaylistAt(t *testing.T) {
	p := NewPlaylist([]string{"a", "b"})
	if tr, err := p.At(1); err != nil || tr.Name != "b" {
		t.Fatalf("At(1) = %v, %v", tr, err)
	}
	for _, i := range []int{-1, 2} {
		if _, err := p.At(i); !errors.Is(err, ErrIndexOutOfRange) {
			t.Fatalf("At(%d) err = %v", i, err)
		}
	}
}
