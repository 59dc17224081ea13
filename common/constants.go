package common

import "time"

const (
	BaseWidth  = 800
	BaseHeight = 600

	// TPS is the fixed update rate; every timer and integrator derives its
	// step from it.
	TPS = 60

	TickDuration = time.Second / TPS
	TickSeconds  = 1.0 / TPS
)
