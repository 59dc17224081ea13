package system

import (
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/playback"
)

// TransportSystem maps the pointer onto the transport buttons and the
// progress bar. A press on a button tints it and triggers its action; the
// release clears the tint. A release over the bar seeks.
type TransportSystem struct{}

func NewTransportSystem() *TransportSystem { return &TransportSystem{} }

func (s *TransportSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, pointer, ok := ecs.FirstValue(w, component.PointerComponent.Kind())
	if !ok {
		return
	}

	if pointer.Pressed {
		ecs.ForEach(w, component.ButtonComponent.Kind(), func(_ ecs.Entity, b *component.Button) {
			if !b.Contains(pointer.X, pointer.Y) {
				return
			}
			b.Pressed = true
			RequestTransport(w, component.TransportRequest{Action: b.Action})
		})
	}

	if !pointer.Released {
		return
	}
	ecs.ForEach(w, component.ButtonComponent.Kind(), func(_ ecs.Entity, b *component.Button) {
		b.Pressed = false
	})
	ecs.ForEach(w, component.ProgressBarComponent.Kind(), func(_ ecs.Entity, bar *component.ProgressBar) {
		if !bar.Contains(pointer.X, pointer.Y) {
			return
		}
		RequestTransport(w, component.TransportRequest{
			Action:   component.TransportSeek,
			Fraction: playback.PointerFraction(pointer.X, bar.X, bar.Width),
		})
	})
}
