package component

import "image/color"

// ProgressBar doubles as the platform the player stands on.
type ProgressBar struct {
	X, Y          float64
	Width, Height float64
	// Fill is the drawn fraction, refreshed by the progress timer.
	Fill       float64
	TrackColor color.Color
	FillColor  color.Color
}

func (b ProgressBar) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.Width && y >= b.Y && y <= b.Y+b.Height
}

var ProgressBarComponent = NewComponent[ProgressBar]()
