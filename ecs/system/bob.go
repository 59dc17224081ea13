package system

import (
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

type BobSystem struct{}

func NewBobSystem() *BobSystem { return &BobSystem{} }

func (s *BobSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.BobComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, bob *component.Bob, t *component.Transform) {
		bob.Elapsed += common.TickDuration
		next := BobOffset(bob.Elapsed, bob.HalfPeriod, bob.Amplitude)
		delta := next - bob.Offset
		bob.Offset = next
		if delta == 0 {
			return
		}

		if body, ok := bodyOf(w, e); ok {
			pos := body.Position()
			body.SetPosition(cp.Vector{X: pos.X, Y: pos.Y + delta})
			t.Y = pos.Y + delta
			return
		}
		t.Y += delta
	})
}

// BobOffset rises to -amplitude over one half period and sinks back over the
// next, easing in and out.
func BobOffset(elapsed, half time.Duration, amplitude float64) float64 {
	if half <= 0 {
		return 0
	}
	phase := elapsed % (2 * half)
	p := float64(phase) / float64(half)
	if p > 1 {
		p = 2 - p
	}
	return -amplitude * common.SineInOut(p)
}
