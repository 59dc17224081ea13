package system

import (
	"log/slog"

	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

// ContactOutcome is what a player/enemy overlap does.
type ContactOutcome struct {
	HitEnemy   bool
	PushPlayer bool
}

// ResolveContact decides a player/enemy overlap. A crouching player ducks
// under the enemy. Otherwise the enemy is hit, and a player on the ground is
// also pushed along the enemy's direction.
func ResolveContact(crouching, grounded bool) ContactOutcome {
	if crouching {
		return ContactOutcome{}
	}
	return ContactOutcome{HitEnemy: true, PushPlayer: grounded}
}

// CollisionSystem applies the contact rules to the physics events of this
// frame and turns a fall out of the screen into a respawn request.
type CollisionSystem struct {
	logger *slog.Logger
}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{logger: slog.With("system", "collision")}
}

func (s *CollisionSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	for _, evt := range w.Events().Collisions() {
		switch evt.Kind {
		case ecs.CollisionEventEnemyContact:
			s.enemyContact(w, evt)
		case ecs.CollisionEventFellOut:
			if w.IsAlive(evt.Entity) {
				_ = ecs.Add(w, evt.Entity, component.RespawnRequestComponent.Kind(), &component.RespawnRequest{})
			}
		}
	}
}

func (s *CollisionSystem) enemyContact(w *ecs.World, evt ecs.CollisionEvent) {
	player, ok := PlayerActorFor(w, evt.Entity)
	if !ok {
		return
	}
	enemy, ok := EnemyActorFor(w, evt.Other)
	if !ok {
		return
	}

	outcome := ResolveContact(player.Control.Crouching(), evt.Grounded)
	if !outcome.HitEnemy {
		return
	}
	// the direction the enemy was flying when it was struck
	direction := enemy.Enemy.Direction
	if !enemy.Hit() {
		return
	}
	s.logger.Debug("enemy hit", "grounded", evt.Grounded, "push", outcome.PushPlayer)
	if outcome.PushPlayer {
		player.Push(direction)
	}
}
