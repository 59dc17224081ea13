package system

import (
	"testing"

	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

func addPointer(t *testing.T, w *ecs.World) *component.Pointer {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PointerComponent.Kind(), &component.Pointer{})
	p, _ := ecs.Get(w, e, component.PointerComponent.Kind())
	return p
}

func addButton(t *testing.T, w *ecs.World, action component.TransportAction, x float64) *component.Button {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.ButtonComponent.Kind(), &component.Button{Action: action, X: x, Y: 540, Size: 32})
	b, _ := ecs.Get(w, e, component.ButtonComponent.Kind())
	return b
}

func pendingTransport(w *ecs.World) []component.TransportRequest {
	var out []component.TransportRequest
	ecs.ForEach(w, component.TransportRequestComponent.Kind(), func(_ ecs.Entity, r *component.TransportRequest) {
		out = append(out, *r)
	})
	return out
}

func TestTransportButtonPressAndRelease(t *testing.T) {
	w := ecs.NewWorld()
	pointer := addPointer(t, w)
	next := addButton(t, w, component.TransportNext, 520)
	prev := addButton(t, w, component.TransportPrevious, 280)
	sys := NewTransportSystem()

	*pointer = component.Pointer{X: 525, Y: 545, Down: true, Pressed: true}
	sys.Update(w)
	if !next.Pressed || prev.Pressed {
		t.Fatalf("pressed next=%v prev=%v", next.Pressed, prev.Pressed)
	}
	reqs := pendingTransport(w)
	if len(reqs) != 1 || reqs[0].Action != component.TransportNext {
		t.Fatalf("requests = %+v, want one next", reqs)
	}

	// releasing anywhere clears the tint
	*pointer = component.Pointer{X: 10, Y: 10, Released: true}
	sys.Update(w)
	if next.Pressed {
		t.Fatalf("tint not cleared on release")
	}
	if len(pendingTransport(w)) != 1 {
		t.Fatalf("release outside the bar should not add requests")
	}
}

func TestTransportSeekOnBarRelease(t *testing.T) {
	tests := []struct {
		name         string
		x, y         float64
		wantSeek     bool
		wantFraction float64
	}{
		{name: "quarter", x: 260, y: 465, wantSeek: true, wantFraction: 0.25},
		{name: "left edge", x: 120, y: 465, wantSeek: true, wantFraction: 0},
		{name: "right edge", x: 680, y: 465, wantSeek: true, wantFraction: 1},
		{name: "above bar", x: 260, y: 400},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ecs.NewWorld()
			pointer := addPointer(t, w)
			addBar(t, w)

			*pointer = component.Pointer{X: tt.x, Y: tt.y, Released: true}
			NewTransportSystem().Update(w)

			reqs := pendingTransport(w)
			if !tt.wantSeek {
				if len(reqs) != 0 {
					t.Fatalf("unexpected requests %+v", reqs)
				}
				return
			}
			if len(reqs) != 1 || reqs[0].Action != component.TransportSeek {
				t.Fatalf("requests = %+v, want one seek", reqs)
			}
			if reqs[0].Fraction != tt.wantFraction {
				t.Fatalf("fraction = %v, want %v", reqs[0].Fraction, tt.wantFraction)
			}
		})
	}
}
