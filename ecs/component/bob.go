package component

import "time"

// Bob moves an entity up by Amplitude and back with a sine ease, forever.
type Bob struct {
	Amplitude  float64
	HalfPeriod time.Duration
	Elapsed    time.Duration
	Offset     float64
}

var BobComponent = NewComponent[Bob]()
