package system

import (
	"log/slog"

	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

// TimerSystem advances frame-time timers and dispatches the ones that fire.
// One-shot timers are destroyed once fired.
type TimerSystem struct {
	logger *slog.Logger
}

func NewTimerSystem() *TimerSystem {
	return &TimerSystem{logger: slog.With("system", "timer")}
}

// AddTimer puts a timer on a fresh entity and returns it.
func AddTimer(w *ecs.World, t component.Timer) ecs.Entity {
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.TimerComponent.Kind(), &t)
	return e
}

func (s *TimerSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.TimerComponent.Kind(), func(e ecs.Entity, t *component.Timer) {
		if t.Paused || t.Delay <= 0 {
			return
		}
		t.Elapsed += common.TickDuration
		if t.Elapsed < t.Delay {
			return
		}

		if t.Repeat {
			t.Elapsed -= t.Delay
		} else {
			ecs.DestroyEntity(w, e)
		}
		s.fire(w, *t)
	})
}

func (s *TimerSystem) fire(w *ecs.World, t component.Timer) {
	switch t.Kind {
	case component.TimerElapsedLabel:
		if _, session, ok := ecs.FirstValue(w, component.SessionComponent.Kind()); ok && session.Controller != nil {
			session.Controller.RefreshElapsed()
		}
	case component.TimerProgressFill:
		refreshProgress(w)
	case component.TimerEnemyRespawn:
		target := ecs.Entity(t.Target)
		if !w.IsAlive(target) {
			return
		}
		actor, ok := EnemyActorFor(w, target)
		if !ok {
			return
		}
		if actor.Activate(t.Token) {
			s.logger.Debug("enemy reactivated", "token", t.Token)
		} else {
			s.logger.Debug("stale respawn timer dropped", "token", t.Token, "current", actor.Enemy.RespawnToken)
		}
	}
}

// refreshProgress redraws the bar fill from the playback position. The fill
// only moves while the session has started and audio is playing.
func refreshProgress(w *ecs.World) {
	_, session, ok := ecs.FirstValue(w, component.SessionComponent.Kind())
	if !ok || session.Controller == nil {
		return
	}
	ctrl := session.Controller
	if !ctrl.Started() || !ctrl.Playing() {
		return
	}
	ecs.ForEach(w, component.ProgressBarComponent.Kind(), func(_ ecs.Entity, bar *component.ProgressBar) {
		bar.Fill = ctrl.Fraction()
	})
}
