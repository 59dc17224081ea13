package system

import (
	"log/slog"

	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

type RespawnSystem struct {
	logger *slog.Logger
}

func NewRespawnSystem() *RespawnSystem {
	return &RespawnSystem{logger: slog.With("system", "respawn")}
}

// Update performs pending respawn requests for players. It runs after the
// PhysicsSystem so the teleport is not undone by the step, and asks the music
// system to restart the current track.
func (s *RespawnSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	ecs.ForEach(w, component.RespawnRequestComponent.Kind(), func(e ecs.Entity, _ *component.RespawnRequest) {
		_ = ecs.Remove(w, e, component.RespawnRequestComponent.Kind())

		actor, ok := PlayerActorFor(w, e)
		if !ok {
			return
		}
		actor.Respawn()
		RequestTransport(w, component.TransportRequest{Action: component.TransportRestart})
		s.logger.Debug("player respawned", "x", actor.Player.SpawnX, "y", actor.Player.SpawnY)
	})
}
