package system

import (
	"errors"
	"log/slog"

	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/playback"
)

// MusicSystem applies transport requests to the session controller, in the
// order they were made, then lets the controller notice finished tracks.
type MusicSystem struct {
	logger *slog.Logger
}

func NewMusicSystem() *MusicSystem {
	return &MusicSystem{logger: slog.With("system", "music")}
}

// RequestTransport queues a transport action for the music system.
func RequestTransport(w *ecs.World, req component.TransportRequest) {
	if w == nil {
		return
	}
	ent := ecs.CreateEntity(w)
	_ = ecs.Add(w, ent, component.TransportRequestComponent.Kind(), &req)
}

func (m *MusicSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}

	requests, entities := m.consumeRequests(w)
	for _, ent := range entities {
		ecs.DestroyEntity(w, ent)
	}

	_, session, ok := ecs.FirstValue(w, component.SessionComponent.Kind())
	if !ok || session.Controller == nil {
		return
	}
	ctrl := session.Controller

	for _, req := range requests {
		m.logResult(req, m.apply(ctrl, req))
	}
	ctrl.Tick()
}

func (m *MusicSystem) consumeRequests(w *ecs.World) ([]component.TransportRequest, []ecs.Entity) {
	entities := w.Query(component.TransportRequestComponent.Kind())
	requests := make([]component.TransportRequest, 0, len(entities))
	for _, ent := range entities {
		req, ok := ecs.Get(w, ent, component.TransportRequestComponent.Kind())
		if !ok {
			continue
		}
		requests = append(requests, *req)
	}
	return requests, entities
}

func (m *MusicSystem) apply(ctrl *playback.TrackController, req component.TransportRequest) error {
	switch req.Action {
	case component.TransportToggle:
		return ctrl.Toggle()
	case component.TransportNext:
		return ctrl.Next()
	case component.TransportPrevious:
		return ctrl.Previous()
	case component.TransportSeek:
		return ctrl.SeekToFraction(req.Fraction)
	case component.TransportRestart:
		return ctrl.Restart()
	default:
		return nil
	}
}

func (m *MusicSystem) logResult(req component.TransportRequest, err error) {
	switch {
	case err == nil:
		m.logger.Debug("transport", "action", req.Action)
	case errors.Is(err, playback.ErrNoTracks):
		m.logger.Info("transport ignored", "action", req.Action, "reason", err)
	case errors.Is(err, playback.ErrNotStarted):
		m.logger.Debug("transport ignored", "action", req.Action, "reason", err)
	default:
		m.logger.Error("transport failed", "action", req.Action, "error", err)
	}
}
