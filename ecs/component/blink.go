package component

import "time"

// Blink fades a sprite out and back in Cycles times. Alpha is written by the
// blink system and read by the renderer.
type Blink struct {
	HalfPeriod time.Duration
	Cycles     int
	Elapsed    time.Duration
	Alpha      float64
}

var BlinkComponent = NewComponent[Blink]()
