package system

import (
	"errors"
	"testing"
	"time"

	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/playback"
)

type fakeHandle struct {
	playing bool
	pos     time.Duration
	dur     time.Duration
}

func (h *fakeHandle) Play()                   { h.playing = true }
func (h *fakeHandle) Pause()                  { h.playing = false }
func (h *fakeHandle) Stop()                   { h.playing = false; h.pos = 0 }
func (h *fakeHandle) IsPlaying() bool         { return h.playing }
func (h *fakeHandle) Position() time.Duration { return h.pos }
func (h *fakeHandle) Duration() time.Duration { return h.dur }
func (h *fakeHandle) SetVolume(float64)       {}
func (h *fakeHandle) Close() error            { return nil }
func (h *fakeHandle) SetPosition(d time.Duration) error {
	h.pos = d
	return nil
}

type fakeLoader struct {
	opened []*fakeHandle
}

func (l *fakeLoader) Open(string) (playback.Handle, error) {
	h := &fakeHandle{dur: 100 * time.Second}
	l.opened = append(l.opened, h)
	return h, nil
}

func (l *fakeLoader) last() *fakeHandle {
	return l.opened[len(l.opened)-1]
}

// addSession puts a controller over n fake tracks on a session entity.
func addSession(t *testing.T, w *ecs.World, n int) (*playback.TrackController, *fakeLoader) {
	t.Helper()
	names := make([]string, n)
	for i := range names {
		names[i] = "track-" + string(rune('a'+i)) + ".mp3"
	}
	loader := &fakeLoader{}
	ctrl := playback.NewTrackController(loader, playback.NewPlaylist(names))
	if err := ctrl.Init(); err != nil && !errors.Is(err, playback.ErrNoTracks) {
		t.Fatalf("init: %v", err)
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{ID: "test", Controller: ctrl}); err != nil {
		t.Fatalf("add session: %v", err)
	}
	return ctrl, loader
}

func addPlayer(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
	mustAdd(t, w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    100,
		JumpSpeed:    400,
		PushFactor:   2,
		PushRecovery: 800 * time.Millisecond,
		SpawnX:       50,
		SpawnY:       60,
		RespawnBlink: component.Blink{HalfPeriod: 200 * time.Millisecond, Cycles: 6},
	})
	mustAdd(t, w, e, component.PlayerControlComponent.Kind(), &component.PlayerControl{State: component.NormalState{}})
	mustAdd(t, w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{})
	mustAdd(t, w, e, component.InputComponent.Kind(), &component.Input{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 13, Height: 20, Mass: 1})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs: map[string]component.AnimationDef{
			animIdle:   {Name: animIdle, FrameCount: 4, FPS: 10, Loop: true},
			animRun:    {Name: animRun, FrameCount: 6, FPS: 10, Loop: true},
			animCrouch: {Name: animCrouch, FrameCount: 2, FPS: 10, Loop: true},
			animHurt:   {Name: animHurt, FrameCount: 2, FPS: 4, Loop: true},
		},
	})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	return e
}

func addEnemy(t *testing.T, w *ecs.World, x, y float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
	mustAdd(t, w, e, component.EnemyComponent.Kind(), &component.Enemy{
		State:      component.EnemyPatrolling,
		Direction:  -1,
		LeftBound:  -200,
		RightBound: 1000,
		SpawnX:     1000,
		SpawnY:     390,
		HitNudge:   5,
		FlipOffset: 120,
		RespawnMin: 5 * time.Second,
		RespawnMax: 15 * time.Second,
		PatrolAnim: "eagle-attack",
		DeathAnim:  "enemy-death",
	})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: 30, Height: 30, Kinematic: true, Sensor: true})
	mustAdd(t, w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs: map[string]component.AnimationDef{
			"eagle-attack": {Name: "eagle-attack", FrameCount: 4, FPS: 10, Loop: true},
			"enemy-death":  {Name: "enemy-death", FrameCount: 5, FPS: 10},
		},
		Current: "eagle-attack",
		Playing: true,
	})
	mustAdd(t, w, e, component.SpriteComponent.Kind(), &component.Sprite{})
	return e
}

func addPlatform(t *testing.T, w *ecs.World, x, y, width, height float64) ecs.Entity {
	t.Helper()
	e := ecs.CreateEntity(w)
	mustAdd(t, w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{})
	mustAdd(t, w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y})
	mustAdd(t, w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Width: width, Height: height, Static: true, Friction: 1})
	return e
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, kind component.ComponentKind[T], v *T) {
	t.Helper()
	if err := ecs.Add(w, e, kind, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func mustPlayer(t *testing.T, w *ecs.World, e ecs.Entity) *PlayerActor {
	t.Helper()
	actor, ok := PlayerActorFor(w, e)
	if !ok {
		t.Fatalf("player actor not ready")
	}
	return actor
}

func mustEnemy(t *testing.T, w *ecs.World, e ecs.Entity) *EnemyActor {
	t.Helper()
	actor, ok := EnemyActorFor(w, e)
	if !ok {
		t.Fatalf("enemy actor not ready")
	}
	return actor
}
