package component

import "time"

type Player struct {
	MoveSpeed    float64
	JumpSpeed    float64
	PushFactor   float64
	PushRecovery time.Duration
	SpawnX       float64
	SpawnY       float64
	RespawnBlink Blink
}

var PlayerComponent = NewComponent[Player]()
