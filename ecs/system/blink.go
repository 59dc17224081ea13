package system

import (
	"time"

	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

// BlinkSystem fades blinking sprites linearly to transparent and back, once
// per cycle, and removes the effect when all cycles have run.
type BlinkSystem struct{}

func NewBlinkSystem() *BlinkSystem { return &BlinkSystem{} }

func (s *BlinkSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.BlinkComponent.Kind()) {
		b, ok := ecs.Get(w, e, component.BlinkComponent.Kind())
		if !ok {
			continue
		}
		b.Elapsed += common.TickDuration
		if b.HalfPeriod <= 0 || b.Elapsed >= 2*b.HalfPeriod*time.Duration(b.Cycles) {
			_ = ecs.Remove(w, e, component.BlinkComponent.Kind())
			continue
		}
		b.Alpha = BlinkAlpha(b.Elapsed, b.HalfPeriod)
	}
}

// BlinkAlpha is 1 at the start of each cycle, 0 half way through.
func BlinkAlpha(elapsed, half time.Duration) float64 {
	if half <= 0 {
		return 1
	}
	phase := elapsed % (2 * half)
	if phase < half {
		return 1 - float64(phase)/float64(half)
	}
	return float64(phase-half) / float64(half)
}
