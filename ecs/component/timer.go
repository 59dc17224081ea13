package component

import "time"

type TimerKind int

const (
	TimerElapsedLabel TimerKind = iota + 1
	TimerProgressFill
	TimerEnemyRespawn
)

// Timer lives on its own entity and fires after Delay of frame time. One-shot
// timers are destroyed after firing. Target and Token identify what a one-shot
// applies to (an entity and the token it captured when scheduled).
type Timer struct {
	Kind    TimerKind
	Delay   time.Duration
	Elapsed time.Duration
	Repeat  bool
	Target  uint64
	Token   uint64
	Paused  bool
}

var TimerComponent = NewComponent[Timer]()
