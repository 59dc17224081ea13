package playback

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"
)

const DefaultVolume = 0.5

// Icon is the glyph the play/pause button should currently show.
type Icon int

const (
	IconPlay Icon = iota
	IconPause
)

func (i Icon) String() string {
	if i == IconPause {
		return "pause"
	}
	return "play"
}

// TrackController owns the playlist cursor and the active audio handle.
//
// Every transport operation checks for an empty playlist first and returns
// ErrNoTracks without touching anything else. Operations other than Toggle
// and Init are no-ops until the first Toggle starts the session.
type TrackController struct {
	loader   Loader
	playlist Playlist
	volume   float64
	logger   *slog.Logger

	index   int
	handle  Handle
	started bool
	// playing is the requested state; a handle that stops on its own while
	// this is set has reached the end of the track.
	playing bool

	icon    Icon
	title   string
	elapsed string
	total   string
}

type Option func(*TrackController)

func WithVolume(volume float64) Option {
	return func(c *TrackController) {
		c.volume = lo.Clamp(volume, 0, 1)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(c *TrackController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewTrackController(loader Loader, playlist Playlist, opts ...Option) *TrackController {
	c := &TrackController{
		loader:   loader,
		playlist: append(Playlist(nil), playlist...),
		volume:   DefaultVolume,
		logger:   slog.Default(),
		icon:     IconPlay,
		title:    LoadingTitle,
		elapsed:  FormatTrackDuration(0),
		total:    FormatTrackDuration(0),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With("system", "playback")
	return c
}

// Init selects the first track without playing it, or shows the empty
// playlist message.
func (c *TrackController) Init() error {
	if c.playlist.Empty() {
		c.title = NoTrackTitle
		return ErrNoTracks
	}
	return c.SelectTrack(0)
}

// SelectTrack makes index current, resetting position, title and time labels.
// The previous handle is closed once the new one opened.
func (c *TrackController) SelectTrack(index int) error {
	if c.playlist.Empty() {
		c.title = NoTrackTitle
		return ErrNoTracks
	}
	track, err := c.playlist.At(index)
	if err != nil {
		return err
	}
	if c.loader == nil {
		return fmt.Errorf("playback: open %q: no loader", track.Name)
	}
	handle, err := c.loader.Open(track.Name)
	if err != nil {
		return fmt.Errorf("playback: open %q: %w", track.Name, err)
	}

	if c.handle != nil {
		c.handle.Stop()
		if err := c.handle.Close(); err != nil {
			c.logger.Warn("close previous track", "track", c.playlist[c.index].Name, "error", err)
		}
	}

	handle.SetVolume(c.volume)
	c.handle = handle
	c.index = index
	c.playing = false
	c.title = track.Name
	c.total = FormatDuration(handle.Duration())
	c.elapsed = FormatTrackDuration(0)
	c.logger.Debug("track selected", "index", index, "track", track.Name, "duration", handle.Duration())
	return nil
}

// Toggle is the play/pause button. The first press starts the session from
// track 0; later presses pause or resume.
func (c *TrackController) Toggle() error {
	if c.playlist.Empty() {
		c.title = NoTrackTitle
		return ErrNoTracks
	}
	if !c.started {
		if err := c.SelectTrack(0); err != nil {
			return err
		}
		c.started = true
		c.play()
		c.logger.Info("session started", "tracks", c.playlist.Len())
		return nil
	}
	if c.handle == nil {
		return ErrNotStarted
	}
	if c.handle.IsPlaying() {
		c.Pause()
	} else {
		c.Resume()
	}
	return nil
}

func (c *TrackController) Play() error {
	if err := c.ready(); err != nil {
		return err
	}
	c.play()
	return nil
}

func (c *TrackController) Pause() error {
	if err := c.ready(); err != nil {
		return err
	}
	c.handle.Pause()
	c.playing = false
	c.icon = IconPlay
	return nil
}

func (c *TrackController) Resume() error {
	return c.Play()
}

// Next advances one track and plays it. From the last track it wraps to the
// first and stays paused.
func (c *TrackController) Next() error {
	if err := c.ready(); err != nil {
		return err
	}
	c.handle.Stop()
	c.playing = false

	if c.index == c.playlist.Len()-1 {
		if err := c.SelectTrack(0); err != nil {
			return err
		}
		c.icon = IconPlay
		return nil
	}
	if err := c.SelectTrack(c.index + 1); err != nil {
		return err
	}
	c.play()
	return nil
}

// Previous goes back one track and plays it. On the first track it restarts
// that track instead.
func (c *TrackController) Previous() error {
	if err := c.ready(); err != nil {
		return err
	}
	c.handle.Stop()
	c.playing = false

	if c.index > 0 {
		if err := c.SelectTrack(c.index - 1); err != nil {
			return err
		}
	}
	c.elapsed = FormatTrackDuration(0)
	c.play()
	return nil
}

// Restart plays the current track again from the start.
func (c *TrackController) Restart() error {
	if err := c.ready(); err != nil {
		return err
	}
	c.handle.Stop()
	c.elapsed = FormatTrackDuration(0)
	c.play()
	return nil
}

// SeekToFraction moves playback to fraction*duration, fraction clamped to [0,1].
func (c *TrackController) SeekToFraction(fraction float64) error {
	if err := c.ready(); err != nil {
		return err
	}
	fraction = lo.Clamp(fraction, 0, 1)
	pos := time.Duration(fraction * float64(c.handle.Duration()))
	if err := c.handle.SetPosition(pos); err != nil {
		return fmt.Errorf("playback: seek %q: %w", c.playlist[c.index].Name, err)
	}
	return nil
}

// SeekToPointer maps a pointer x inside a bar of barWidth pixels starting at
// barX to a playback position.
func (c *TrackController) SeekToPointer(x, barX, barWidth float64) error {
	return c.SeekToFraction(PointerFraction(x, barX, barWidth))
}

// PointerFraction converts a pointer x into a [0,1] fraction of the bar.
func PointerFraction(x, barX, barWidth float64) float64 {
	if barWidth <= 0 {
		return 0
	}
	return lo.Clamp((x-barX)/barWidth, 0, 1)
}

// Tick detects natural completion of the current track and advances.
func (c *TrackController) Tick() {
	if !c.started || c.handle == nil || !c.playing {
		return
	}
	if c.handle.IsPlaying() {
		return
	}
	c.playing = false
	c.logger.Debug("track complete", "track", c.playlist[c.index].Name)
	if err := c.Next(); err != nil {
		c.logger.Error("advance after completion", "error", err)
	}
}

// RefreshElapsed updates the elapsed label from the playback position. The
// label is left alone while paused.
func (c *TrackController) RefreshElapsed() {
	if c.handle == nil || !c.handle.IsPlaying() {
		return
	}
	c.elapsed = FormatDuration(c.Position())
}

func (c *TrackController) play() {
	c.handle.Play()
	c.playing = true
	c.icon = IconPause
}

func (c *TrackController) ready() error {
	if c.playlist.Empty() {
		c.title = NoTrackTitle
		return ErrNoTracks
	}
	if !c.started || c.handle == nil {
		return ErrNotStarted
	}
	return nil
}

func (c *TrackController) Started() bool { return c.started }

// Playing reports whether audio is audible right now.
func (c *TrackController) Playing() bool {
	return c.handle != nil && c.handle.IsPlaying()
}

func (c *TrackController) Index() int { return c.index }

func (c *TrackController) Playlist() Playlist { return c.playlist }

func (c *TrackController) Icon() Icon { return c.icon }

func (c *TrackController) Title() string { return c.title }

func (c *TrackController) ElapsedText() string { return c.elapsed }

func (c *TrackController) TotalText() string { return c.total }

// Current returns the selected track with its decoded duration.
func (c *TrackController) Current() (Track, bool) {
	if c.handle == nil || c.playlist.Empty() {
		return Track{}, false
	}
	return Track{Name: c.playlist[c.index].Name, Duration: c.handle.Duration()}, true
}

// Position is the playback position clamped to [0, duration].
func (c *TrackController) Position() time.Duration {
	if c.handle == nil {
		return 0
	}
	return lo.Clamp(c.handle.Position(), 0, c.handle.Duration())
}

// PositionSeconds is Position in seconds.
func (c *TrackController) PositionSeconds() float64 {
	return c.Position().Seconds()
}

// Fraction is position/duration, 0 when nothing is loaded.
func (c *TrackController) Fraction() float64 {
	if c.handle == nil || c.handle.Duration() <= 0 {
		return 0
	}
	return lo.Clamp(float64(c.Position())/float64(c.handle.Duration()), 0, 1)
}

// NowPlaying renders a single status line for the clipboard.
func (c *TrackController) NowPlaying() string {
	return fmt.Sprintf("%s [%s/%s]", c.title, FormatDuration(c.Position()), c.total)
}

// Close releases the active handle.
func (c *TrackController) Close() error {
	if c.handle == nil {
		return nil
	}
	c.handle.Stop()
	err := c.handle.Close()
	c.handle = nil
	c.playing = false
	return err
}
