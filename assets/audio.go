package assets

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/milk9111/trackrunner/playback"
)

const SampleRate = 44100

// decoded streams are 16 bit stereo
const bytesPerFrame = 4

var (
	audioOnce    sync.Once
	audioContext *audio.Context
)

// AudioContext returns the process wide context, creating it on first use.
func AudioContext() *audio.Context {
	audioOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	return audioContext
}

type stream interface {
	io.ReadSeeker
	Length() int64
}

func decode(name string, data []byte) (stream, error) {
	r := bytes.NewReader(data)
	switch strings.ToLower(path.Ext(name)) {
	case ".mp3":
		return mp3.DecodeWithSampleRate(SampleRate, r)
	case ".ogg":
		return vorbis.DecodeWithSampleRate(SampleRate, r)
	case ".wav":
		return wav.DecodeWithSampleRate(SampleRate, r)
	default:
		return nil, fmt.Errorf("unsupported audio format %q", path.Ext(name))
	}
}

// AudioLoader opens playlist tracks from a music directory.
type AudioLoader struct {
	FS fs.FS
}

func NewAudioLoader(fsys fs.FS) *AudioLoader {
	return &AudioLoader{FS: fsys}
}

func (l *AudioLoader) Open(name string) (playback.Handle, error) {
	if l == nil || l.FS == nil {
		return nil, fmt.Errorf("assets: no music directory")
	}
	data, err := fs.ReadFile(l.FS, name)
	if err != nil {
		return nil, err
	}
	s, err := decode(name, data)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", name, err)
	}
	player, err := AudioContext().NewPlayer(s)
	if err != nil {
		return nil, err
	}
	return &playerHandle{
		player:   player,
		duration: streamDuration(s.Length()),
	}, nil
}

func streamDuration(length int64) time.Duration {
	if length <= 0 {
		return 0
	}
	return time.Duration(length) * time.Second / (SampleRate * bytesPerFrame)
}

// playerHandle adapts an ebiten audio player to playback.Handle.
type playerHandle struct {
	player   *audio.Player
	duration time.Duration
}

func (h *playerHandle) Play()  { h.player.Play() }
func (h *playerHandle) Pause() { h.player.Pause() }

func (h *playerHandle) Stop() {
	h.player.Pause()
	_ = h.player.Rewind()
}

func (h *playerHandle) IsPlaying() bool         { return h.player.IsPlaying() }
func (h *playerHandle) Position() time.Duration { return h.player.Position() }
func (h *playerHandle) Duration() time.Duration { return h.duration }
func (h *playerHandle) SetVolume(v float64)     { h.player.SetVolume(v) }

func (h *playerHandle) SetPosition(d time.Duration) error {
	return h.player.SetPosition(d)
}

func (h *playerHandle) Close() error {
	return h.player.Close()
}
