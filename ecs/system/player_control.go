package system

import (
	"log/slog"

	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

// PlayerControlSystem turns key edges into player operations. A key press
// moves, jumps or crouches; a release stops. Nothing gets through while the
// player is being pushed.
type PlayerControlSystem struct {
	logger *slog.Logger
}

func NewPlayerControlSystem() *PlayerControlSystem {
	return &PlayerControlSystem{logger: slog.With("system", "player")}
}

func (s *PlayerControlSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	entities := w.Query(
		component.PlayerTagComponent.Kind(),
		component.InputComponent.Kind(),
		component.PlayerControlComponent.Kind(),
	)
	for _, e := range entities {
		input, ok := ecs.Get(w, e, component.InputComponent.Kind())
		if !ok {
			continue
		}
		actor, ok := PlayerActorFor(w, e)
		if !ok {
			continue
		}
		grounded := false
		if pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind()); ok {
			grounded = pc.Grounded || pc.GroundGrace > 0
		}

		if s.tickPush(actor) {
			continue
		}
		s.handleInput(actor, *input, grounded)
	}
}

// tickPush advances the recovery window and reports whether input is still
// suppressed this frame.
func (s *PlayerControlSystem) tickPush(actor *PlayerActor) bool {
	pushed, ok := actor.Control.Current().(component.PushedState)
	if !ok {
		return false
	}
	pushed.Remaining -= common.TickDuration
	if pushed.Remaining > 0 {
		actor.Control.State = pushed
		return true
	}
	actor.Recover()
	s.logger.Debug("push recovered")
	return true
}

func (s *PlayerControlSystem) handleInput(actor *PlayerActor, input component.Input, grounded bool) {
	switch {
	case input.Left.Pressed:
		actor.MoveLeft()
	case input.Right.Pressed:
		actor.MoveRight()
	case input.Left.Released || input.Right.Released:
		// keep running if the other direction is still held
		switch {
		case input.Left.Held:
			actor.MoveLeft()
		case input.Right.Held:
			actor.MoveRight()
		default:
			actor.StopMoving()
		}
	}

	if input.Up.Pressed && grounded {
		actor.Jump()
	}

	if input.Down.Pressed && grounded && !input.Horizontal() {
		actor.Crouch()
	}
	if input.Down.Released && actor.Control.Crouching() {
		actor.StopMoving()
	}
}
