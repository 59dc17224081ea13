package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

type AnimationDef struct {
	Name       string
	Sheet      *ebiten.Image
	FrameCount int
	FrameW     int
	FrameH     int
	FPS        float64
	Loop       bool
}

type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer int
	Playing    bool
	// Finished is set once a non-looping clip shows its last frame.
	Finished bool
}

// Play switches to name unless it is already the running clip.
func (a *Animation) Play(name string) {
	if a == nil {
		return
	}
	if a.Current == name && a.Playing {
		return
	}
	a.Restart(name)
}

// Restart starts name from its first frame.
func (a *Animation) Restart(name string) {
	if a == nil {
		return
	}
	a.Current = name
	a.Frame = 0
	a.FrameTimer = 0
	a.Playing = true
	a.Finished = false
}

var AnimationComponent = NewComponent[Animation]()
