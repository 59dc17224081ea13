package entity

import (
	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/prefabs"
)

// Layout resolves the fractional positions of the scene spec into pixels.
type Layout struct {
	Width, Height float64
	Scale         float64

	BarX, BarY          float64
	BarWidth, BarHeight float64
}

func NewLayout(scene prefabs.SceneSpec) Layout {
	l := Layout{
		Width:  scene.Width,
		Height: scene.Height,
		Scale:  scene.ObjectScale,
	}
	if l.Width <= 0 {
		l.Width = common.BaseWidth
	}
	if l.Height <= 0 {
		l.Height = common.BaseHeight
	}
	if l.Scale <= 0 {
		l.Scale = 1
	}
	bar := scene.ProgressBar
	l.BarX = bar.X * l.Width
	l.BarY = bar.Y * l.Height
	l.BarWidth = bar.Width * l.Width
	l.BarHeight = bar.Height
	return l
}

// X and Y scale a fraction of the screen.
func (l Layout) X(f float64) float64 { return f * l.Width }
func (l Layout) Y(f float64) float64 { return f * l.Height }
