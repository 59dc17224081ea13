package playback

import (
	"errors"
	"fmt"
	"testing"
	"time"
)

type fakeHandle struct {
	name     string
	playing  bool
	pos      time.Duration
	dur      time.Duration
	volume   float64
	closed   bool
	seekErr  error
	playHits int
}

func (h *fakeHandle) Play()                   { h.playing = true; h.playHits++ }
func (h *fakeHandle) Pause()                  { h.playing = false }
func (h *fakeHandle) Stop()                   { h.playing = false; h.pos = 0 }
func (h *fakeHandle) IsPlaying() bool         { return h.playing }
func (h *fakeHandle) Position() time.Duration { return h.pos }
func (h *fakeHandle) Duration() time.Duration { return h.dur }
func (h *fakeHandle) SetVolume(v float64)     { h.volume = v }
func (h *fakeHandle) Close() error            { h.closed = true; return nil }
func (h *fakeHandle) SetPosition(d time.Duration) error {
	if h.seekErr != nil {
		return h.seekErr
	}
	h.pos = d
	return nil
}

// finish simulates the backend reaching the end of the stream.
func (h *fakeHandle) finish() {
	h.pos = h.dur
	h.playing = false
}

type fakeLoader struct {
	opened []*fakeHandle
	fail   map[string]error
}

func (l *fakeLoader) Open(name string) (Handle, error) {
	if err := l.fail[name]; err != nil {
		return nil, err
	}
	h := &fakeHandle{name: name, dur: 100 * time.Second}
	l.opened = append(l.opened, h)
	return h, nil
}

func (l *fakeLoader) last() *fakeHandle {
	return l.opened[len(l.opened)-1]
}

func newStarted(t *testing.T, n int) (*TrackController, *fakeLoader) {
	t.Helper()
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("track-%d.mp3", i)
	}
	loader := &fakeLoader{}
	c := NewTrackController(loader, NewPlaylist(names))
	if err := c.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if err := c.Toggle(); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	return c, loader
}

func TestInitialState(t *testing.T) {
	loader := &fakeLoader{}
	c := NewTrackController(loader, NewPlaylist([]string{"a.mp3", "b.mp3"}))
	if c.Title() != LoadingTitle {
		t.Fatalf("title before init = %q", c.Title())
	}
	if err := c.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if c.Title() != "a.mp3" || c.TotalText() != "01:40" || c.ElapsedText() != "00:00" {
		t.Fatalf("labels = %q %q %q", c.Title(), c.TotalText(), c.ElapsedText())
	}
	if c.Started() || c.Playing() || c.Icon() != IconPlay {
		t.Fatalf("init must not start playback")
	}
	if loader.last().volume != DefaultVolume {
		t.Fatalf("volume = %v, want %v", loader.last().volume, DefaultVolume)
	}
	if err := c.Next(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("next before start = %v, want ErrNotStarted", err)
	}
}

func TestEmptyPlaylistDisablesTransport(t *testing.T) {
	c := NewTrackController(&fakeLoader{}, nil)

	ops := []struct {
		name string
		run  func() error
	}{
		{"init", c.Init},
		{"toggle", c.Toggle},
		{"play", c.Play},
		{"pause", c.Pause},
		{"next", c.Next},
		{"previous", c.Previous},
		{"restart", c.Restart},
		{"seek", func() error { return c.SeekToFraction(0.5) }},
		{"select", func() error { return c.SelectTrack(0) }},
	}
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			if err := op.run(); !errors.Is(err, ErrNoTracks) {
				t.Fatalf("err = %v, want ErrNoTracks", err)
			}
			if c.Title() != NoTrackTitle {
				t.Fatalf("title = %q", c.Title())
			}
			if c.Started() {
				t.Fatalf("empty playlist must never start")
			}
		})
	}
}

func TestToggle(t *testing.T) {
	c, loader := newStarted(t, 2)
	h := loader.last()
	if !c.Started() || !h.playing || c.Icon() != IconPause {
		t.Fatalf("first toggle should start playing track 0")
	}

	if err := c.Toggle(); err != nil {
		t.Fatal(err)
	}
	if h.playing || c.Icon() != IconPlay {
		t.Fatalf("second toggle should pause")
	}

	if err := c.Toggle(); err != nil {
		t.Fatal(err)
	}
	if !h.playing || c.Icon() != IconPause {
		t.Fatalf("third toggle should resume")
	}
}

func TestNext(t *testing.T) {
	tests := []struct {
		name        string
		tracks      int
		start       int
		wantIndex   int
		wantPlaying bool
		wantIcon    Icon
	}{
		{"middle_advances", 3, 1, 2, true, IconPause},
		{"first_advances", 3, 0, 1, true, IconPause},
		{"last_wraps_paused", 3, 2, 0, false, IconPlay},
		{"single_track_wraps_paused", 1, 0, 0, false, IconPlay},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, loader := newStarted(t, tc.tracks)
			if err := c.SelectTrack(tc.start); err != nil {
				t.Fatal(err)
			}
			if err := c.Play(); err != nil {
				t.Fatal(err)
			}

			if err := c.Next(); err != nil {
				t.Fatalf("next: %v", err)
			}
			if c.Index() != tc.wantIndex {
				t.Fatalf("index = %d, want %d", c.Index(), tc.wantIndex)
			}
			if c.Playing() != tc.wantPlaying {
				t.Fatalf("playing = %v, want %v", c.Playing(), tc.wantPlaying)
			}
			if c.Icon() != tc.wantIcon {
				t.Fatalf("icon = %v, want %v", c.Icon(), tc.wantIcon)
			}
			if c.Position() != 0 {
				t.Fatalf("position = %v, want 0", c.Position())
			}
			if got := loader.last().name; got != fmt.Sprintf("track-%d.mp3", tc.wantIndex) {
				t.Fatalf("opened %q", got)
			}
		})
	}
}

func TestPrevious(t *testing.T) {
	t.Run("first_restarts", func(t *testing.T) {
		c, loader := newStarted(t, 3)
		h := loader.last()
		h.pos = 42 * time.Second

		if err := c.Previous(); err != nil {
			t.Fatal(err)
		}
		if c.Index() != 0 || loader.last() != h {
			t.Fatalf("previous at 0 must keep the same track")
		}
		if h.pos != 0 || !h.playing {
			t.Fatalf("expected restart from 0, pos=%v playing=%v", h.pos, h.playing)
		}
	})

	t.Run("later_goes_back", func(t *testing.T) {
		c, loader := newStarted(t, 3)
		if err := c.SelectTrack(2); err != nil {
			t.Fatal(err)
		}
		if err := c.Previous(); err != nil {
			t.Fatal(err)
		}
		if c.Index() != 1 || !c.Playing() || c.Icon() != IconPause {
			t.Fatalf("index=%d playing=%v icon=%v", c.Index(), c.Playing(), c.Icon())
		}
		if loader.last().name != "track-1.mp3" {
			t.Fatalf("opened %q", loader.last().name)
		}
	})
}

func TestThreeTrackWalkthrough(t *testing.T) {
	c, _ := newStarted(t, 3)
	if err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if c.Index() != 1 || !c.Playing() {
		t.Fatalf("expected index 1 playing")
	}
	if err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if c.Index() != 2 || !c.Playing() {
		t.Fatalf("expected index 2 playing")
	}
	if err := c.Next(); err != nil {
		t.Fatal(err)
	}
	if c.Index() != 0 || c.Playing() || c.Icon() != IconPlay {
		t.Fatalf("expected wrap to 0 paused")
	}
}

func TestSeekClamps(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want time.Duration
	}{
		{"left_of_bar", -500, 0},
		{"bar_start", 120, 0},
		{"middle", 400, 50 * time.Second},
		{"bar_end", 680, 100 * time.Second},
		{"right_of_bar", 5000, 100 * time.Second},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, loader := newStarted(t, 1)
			if err := c.SeekToPointer(tc.x, 120, 560); err != nil {
				t.Fatal(err)
			}
			if got := loader.last().pos; got != tc.want {
				t.Fatalf("pos = %v, want %v", got, tc.want)
			}
			f := PointerFraction(tc.x, 120, 560)
			if f < 0 || f > 1 {
				t.Fatalf("fraction %v out of range", f)
			}
		})
	}
}

func TestSeekRequiresStart(t *testing.T) {
	c := NewTrackController(&fakeLoader{}, NewPlaylist([]string{"a.mp3"}))
	_ = c.Init()
	if err := c.SeekToFraction(0.5); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("err = %v, want ErrNotStarted", err)
	}
}

func TestSeekErrorWrapped(t *testing.T) {
	c, loader := newStarted(t, 1)
	boom := errors.New("boom")
	loader.last().seekErr = boom
	if err := c.SeekToFraction(0.2); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped boom", err)
	}
}

func TestTickAdvancesOnCompletion(t *testing.T) {
	c, loader := newStarted(t, 2)
	first := loader.last()

	c.Tick()
	if c.Index() != 0 {
		t.Fatalf("tick while playing must not advance")
	}

	first.finish()
	c.Tick()
	if c.Index() != 1 || !c.Playing() {
		t.Fatalf("completion should advance and play, index=%d", c.Index())
	}
	if !first.closed {
		t.Fatalf("previous handle should be closed")
	}
}

func TestTickIgnoresPause(t *testing.T) {
	c, _ := newStarted(t, 2)
	_ = c.Pause()
	c.Tick()
	if c.Index() != 0 {
		t.Fatalf("paused track must not count as complete")
	}
}

func TestRestart(t *testing.T) {
	c, loader := newStarted(t, 2)
	h := loader.last()
	h.pos = 30 * time.Second
	_ = c.Pause()

	if err := c.Restart(); err != nil {
		t.Fatal(err)
	}
	if h.pos != 0 || !h.playing || c.Icon() != IconPause {
		t.Fatalf("restart pos=%v playing=%v icon=%v", h.pos, h.playing, c.Icon())
	}
}

func TestSelectTrackErrors(t *testing.T) {
	boom := errors.New("decode failed")
	loader := &fakeLoader{fail: map[string]error{"bad.mp3": boom}}
	c := NewTrackController(loader, NewPlaylist([]string{"good.mp3", "bad.mp3"}))
	if err := c.Init(); err != nil {
		t.Fatal(err)
	}

	if err := c.SelectTrack(1); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped loader error", err)
	}
	if c.Index() != 0 || c.Title() != "good.mp3" {
		t.Fatalf("failed select must keep previous track")
	}
	if err := c.SelectTrack(7); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestRefreshElapsed(t *testing.T) {
	c, loader := newStarted(t, 1)
	h := loader.last()
	h.pos = 65 * time.Second

	c.RefreshElapsed()
	if c.ElapsedText() != "01:05" {
		t.Fatalf("elapsed = %q", c.ElapsedText())
	}

	_ = c.Pause()
	h.pos = 70 * time.Second
	c.RefreshElapsed()
	if c.ElapsedText() != "01:05" {
		t.Fatalf("paused refresh changed label to %q", c.ElapsedText())
	}
	if c.Fraction() != 0.7 {
		t.Fatalf("fraction = %v", c.Fraction())
	}
}
