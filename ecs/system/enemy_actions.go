package system

import (
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

// EnemyActor bundles the components the enemy operations touch.
type EnemyActor struct {
	Entity    ecs.Entity
	Enemy     *component.Enemy
	Body      *component.PhysicsBody
	Transform *component.Transform
	Animation *component.Animation
	Sprite    *component.Sprite
	Bob       *component.Bob
	w         *ecs.World
}

func EnemyActorFor(w *ecs.World, e ecs.Entity) (*EnemyActor, bool) {
	enemy, ok := ecs.Get(w, e, component.EnemyComponent.Kind())
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
	bob, _ := ecs.Get(w, e, component.BobComponent.Kind())
	return &EnemyActor{
		Entity:    e,
		Enemy:     enemy,
		Body:      body,
		Transform: transform,
		Animation: anim,
		Sprite:    sprite,
		Bob:       bob,
		w:         w,
	}, true
}

func (a *EnemyActor) setPosition(x, y float64) {
	a.Body.Body.SetPosition(cp.Vector{X: x, Y: y})
	a.Transform.X = x
	a.Transform.Y = y
}

func (a *EnemyActor) stop() {
	a.Enemy.Speed = 0
	a.Body.Body.SetVelocityVector(cp.Vector{})
}

func (a *EnemyActor) setDirection(direction float64) {
	a.Enemy.Direction = direction
	if a.Sprite != nil {
		// the eagle art faces left
		a.Sprite.FlipX = direction > 0
	}
}

func (a *EnemyActor) MoveLeft()  { a.setDirection(-1) }
func (a *EnemyActor) MoveRight() { a.setDirection(1) }

// Hit starts the death animation. It reports false, doing nothing, while the
// enemy is already dying. Any pending respawn is invalidated.
func (a *EnemyActor) Hit() bool {
	if a.Enemy.State == component.EnemyDying {
		return false
	}
	pos := a.Body.Body.Position()
	a.setPosition(pos.X+a.Enemy.HitNudge*a.Enemy.Direction, pos.Y)
	a.stop()
	a.Enemy.State = component.EnemyDying
	a.Enemy.RespawnToken++
	if a.Animation != nil {
		a.Animation.Restart(a.Enemy.DeathAnim)
	}
	return true
}

// Respawn parks the enemy at its spawn point and schedules reactivation after
// a random delay in [RespawnMin, RespawnMax).
func (a *EnemyActor) Respawn(rng *rand.Rand) time.Duration {
	if a.Bob != nil {
		a.Bob.Elapsed = 0
		a.Bob.Offset = 0
	}
	a.setPosition(a.Enemy.SpawnX, a.Enemy.SpawnY)
	a.stop()
	a.Enemy.State = component.EnemyRespawnPending
	if a.Animation != nil {
		a.Animation.Play(a.Enemy.PatrolAnim)
	}

	delay := respawnDelay(rng, a.Enemy.RespawnMin, a.Enemy.RespawnMax)
	if a.w != nil {
		timer := ecs.CreateEntity(a.w)
		_ = ecs.Add(a.w, timer, component.TimerComponent.Kind(), &component.Timer{
			Kind:   component.TimerEnemyRespawn,
			Delay:  delay,
			Target: uint64(a.Entity),
			Token:  a.Enemy.RespawnToken,
		})
	}
	return delay
}

// Activate resumes patrolling if token is still the current respawn token.
func (a *EnemyActor) Activate(token uint64) bool {
	if a.Enemy.State != component.EnemyRespawnPending || token != a.Enemy.RespawnToken {
		return false
	}
	a.Enemy.State = component.EnemyPatrolling
	a.MoveLeft()
	if a.Animation != nil {
		a.Animation.Play(a.Enemy.PatrolAnim)
	}
	return true
}

// FlipDirection reverses the patrol and jumps FlipOffset along the new
// direction.
func (a *EnemyActor) FlipDirection() {
	a.setDirection(-a.Enemy.Direction)
	pos := a.Body.Body.Position()
	a.setPosition(pos.X+a.Enemy.Direction*a.Enemy.FlipOffset, pos.Y)
}

func respawnDelay(rng *rand.Rand, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	span := int64(hi - lo)
	if rng == nil {
		return lo + time.Duration(rand.Int64N(span))
	}
	return lo + time.Duration(rng.Int64N(span))
}
