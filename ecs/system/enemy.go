package system

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

const defaultSpeedFactor = 10.0

// EnemySystem patrols enemies between their bounds while the session runs
// and sends dying enemies home once the death clip ends.
type EnemySystem struct {
	rng        *rand.Rand
	logger     *slog.Logger
	curveError bool
}

func NewEnemySystem(rng *rand.Rand) *EnemySystem {
	return &EnemySystem{rng: rng, logger: slog.With("system", "enemy")}
}

func (s *EnemySystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	var (
		started            bool
		position, duration time.Duration
	)
	if _, session, ok := ecs.FirstValue(w, component.SessionComponent.Kind()); ok && session.Controller != nil {
		started = session.Controller.Started()
		position = session.Controller.Position()
		if track, ok := session.Controller.Current(); ok {
			duration = track.Duration
		}
	}

	for _, e := range w.Query(component.EnemyTagComponent.Kind(), component.EnemyComponent.Kind()) {
		actor, ok := EnemyActorFor(w, e)
		if !ok {
			continue
		}

		switch actor.Enemy.State {
		case component.EnemyPatrolling:
			if !started {
				continue
			}
			if err := s.patrol(actor, position, duration); err != nil && !s.curveError {
				s.curveError = true
				s.logger.Warn("speed curve failed, using linear", "error", err)
			}
		case component.EnemyDying:
			if actor.Animation == nil || actor.Animation.Finished {
				delay := actor.Respawn(s.rng)
				s.logger.Debug("enemy respawn scheduled", "delay", delay, "token", actor.Enemy.RespawnToken)
			}
		case component.EnemyRespawnPending:
			actor.Body.Body.SetVelocityVector(cp.Vector{})
		}
	}
}

func (s *EnemySystem) patrol(actor *EnemyActor, position, duration time.Duration) error {
	err := PatrolStep(actor.Enemy, actor.Body.Body.Position().X, position, duration)
	actor.setDirection(actor.Enemy.Direction)
	actor.Body.Body.SetVelocity(actor.Enemy.Speed, 0)
	return err
}

// PatrolStep turns the enemy around past either bound and derives its signed
// speed from the playback position. A failing curve falls back to the linear
// default and the error is returned.
func PatrolStep(enemy *component.Enemy, x float64, position, duration time.Duration) error {
	if x < enemy.LeftBound {
		enemy.Direction = 1
	}
	if x > enemy.RightBound {
		enemy.Direction = -1
	}
	if enemy.Direction == 0 {
		enemy.Direction = -1
	}

	var curve component.SpeedCurve = LinearCurve{Factor: defaultSpeedFactor}
	if enemy.Curve != nil {
		curve = enemy.Curve
	}
	magnitude, err := curve.Speed(position, duration)
	if err != nil {
		magnitude, _ = LinearCurve{Factor: defaultSpeedFactor}.Speed(position, duration)
	}
	enemy.Speed = enemy.Direction * magnitude
	return err
}
