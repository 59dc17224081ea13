package assets

import (
	"image"
	"testing"
	"testing/fstest"
	"time"
)

func TestGenerateSheetSize(t *testing.T) {
	tests := []struct {
		name   string
		frames int
		w, h   int
	}{
		{name: "player-run", frames: 6, w: 32, h: 32},
		{name: "eagle-attack", frames: 4, w: 40, h: 41},
		{name: "enemy-death", frames: 5, w: 40, h: 41},
		{name: "unknown", frames: 0, w: 8, h: 8},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := GenerateSheet(tt.name, tt.frames, tt.w, tt.h)
			frames := max(tt.frames, 1)
			want := image.Rect(0, 0, frames*tt.w, tt.h)
			if img.Bounds() != want {
				t.Fatalf("expected bounds %v, got %v", want, img.Bounds())
			}
		})
	}
}

func TestGenerateSheetDrawsSomething(t *testing.T) {
	for _, name := range SheetNames() {
		img := GenerateSheet(name, 2, 32, 32)
		opaque := false
		for i := 3; i < len(img.Pix); i += 4 {
			if img.Pix[i] != 0 {
				opaque = true
				break
			}
		}
		if !opaque {
			t.Fatalf("sheet %q is empty", name)
		}
	}
}

func TestIconsDiffer(t *testing.T) {
	play := GenerateIcon(IconPlay, 32)
	pause := GenerateIcon(IconPause, 32)
	if string(play.Pix) == string(pause.Pix) {
		t.Fatalf("play and pause icons are identical")
	}
}

func TestStreamDuration(t *testing.T) {
	if got := streamDuration(SampleRate * bytesPerFrame * 65); got != 65*time.Second {
		t.Fatalf("expected 65s, got %v", got)
	}
	if got := streamDuration(-1); got != 0 {
		t.Fatalf("expected 0 for unknown length, got %v", got)
	}
}

func TestAudioLoaderErrors(t *testing.T) {
	loader := NewAudioLoader(fstest.MapFS{
		"notes.txt": &fstest.MapFile{Data: []byte("hi")},
	})
	if _, err := loader.Open("missing.mp3"); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := loader.Open("notes.txt"); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
	var nilLoader *AudioLoader
	if _, err := nilLoader.Open("x.mp3"); err == nil {
		t.Fatalf("expected error from nil loader")
	}
}
