package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

const (
	animIdle   = "idle"
	animRun    = "run"
	animCrouch = "crouch"
	animHurt   = "hurt"
)

// PlayerActor bundles the components the player operations touch.
type PlayerActor struct {
	Entity    ecs.Entity
	Player    *component.Player
	Control   *component.PlayerControl
	Body      *component.PhysicsBody
	Transform *component.Transform
	Animation *component.Animation
	Sprite    *component.Sprite
	w         *ecs.World
}

// PlayerActorFor gathers the actor for e. Animation and sprite are optional.
func PlayerActorFor(w *ecs.World, e ecs.Entity) (*PlayerActor, bool) {
	player, ok := ecs.Get(w, e, component.PlayerComponent.Kind())
	if !ok {
		return nil, false
	}
	control, ok := ecs.Get(w, e, component.PlayerControlComponent.Kind())
	if !ok {
		return nil, false
	}
	body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return nil, false
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return nil, false
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	return &PlayerActor{
		Entity:    e,
		Player:    player,
		Control:   control,
		Body:      body,
		Transform: transform,
		Animation: anim,
		Sprite:    sprite,
		w:         w,
	}, true
}

func (p *PlayerActor) setVelocityX(vx float64) {
	v := p.Body.Body.Velocity()
	p.Body.Body.SetVelocity(vx, v.Y)
}

func (p *PlayerActor) play(name string) {
	if p.Animation != nil {
		p.Animation.Play(name)
	}
}

func (p *PlayerActor) face(left bool) {
	if p.Sprite != nil {
		p.Sprite.FlipX = left
	}
}

func (p *PlayerActor) MoveLeft() {
	p.Control.State = component.NormalState{}
	p.setVelocityX(-p.Player.MoveSpeed)
	p.face(true)
	p.play(animRun)
}

func (p *PlayerActor) MoveRight() {
	p.Control.State = component.NormalState{}
	p.setVelocityX(p.Player.MoveSpeed)
	p.face(false)
	p.play(animRun)
}

// Jump sets an upward velocity. Callers check grounded first.
func (p *PlayerActor) Jump() {
	v := p.Body.Body.Velocity()
	p.Body.Body.SetVelocity(v.X, -p.Player.JumpSpeed)
}

// Crouch only changes pose; callers check grounded and that no horizontal
// key is held.
func (p *PlayerActor) Crouch() {
	p.Control.State = component.CrouchingState{}
	p.play(animCrouch)
}

func (p *PlayerActor) StopMoving() {
	p.Control.State = component.NormalState{}
	p.setVelocityX(0)
	p.play(animIdle)
}

// Push knocks the player along direction and suppresses input until the
// recovery window runs out.
func (p *PlayerActor) Push(direction float64) {
	factor := p.Player.PushFactor
	if factor == 0 {
		factor = 2
	}
	p.Control.State = component.PushedState{Remaining: p.Player.PushRecovery}
	p.setVelocityX(direction * p.Player.MoveSpeed * factor)
	p.play(animHurt)
}

// Recover ends a push: control returns and the player stands still.
func (p *PlayerActor) Recover() {
	p.StopMoving()
}

// Respawn teleports the player home, clears its state and starts the blink.
func (p *PlayerActor) Respawn() {
	p.Control.State = component.NormalState{}
	p.Body.Body.SetPosition(cp.Vector{X: p.Player.SpawnX, Y: p.Player.SpawnY})
	p.Body.Body.SetVelocityVector(cp.Vector{})
	p.Transform.X = p.Player.SpawnX
	p.Transform.Y = p.Player.SpawnY
	p.StopMoving()

	blink := p.Player.RespawnBlink
	blink.Elapsed = 0
	blink.Alpha = 1
	if p.w != nil && blink.HalfPeriod > 0 && blink.Cycles > 0 {
		_ = ecs.Add(p.w, p.Entity, component.BlinkComponent.Kind(), &blink)
	}
}
