package entity

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/prefabs"
)

func loadSpecs(t *testing.T) (prefabs.SceneSpec, prefabs.PlayerSpec, prefabs.EnemySpec) {
	t.Helper()
	loadSheet = func(string, int, int, int) *ebiten.Image { return nil }

	scene, err := prefabs.LoadSpec[prefabs.SceneSpec]("scene.yaml")
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	player, err := prefabs.LoadSpec[prefabs.PlayerSpec]("player.yaml")
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	enemy, err := prefabs.LoadSpec[prefabs.EnemySpec]("enemy.yaml")
	if err != nil {
		t.Fatalf("enemy: %v", err)
	}
	return scene, player, enemy
}

func TestLayout(t *testing.T) {
	scene, _, _ := loadSpecs(t)
	l := NewLayout(scene)
	if l.BarX != 120 || l.BarWidth != 560 || l.BarHeight != 10 {
		t.Fatalf("bar = (%v, %v, %v)", l.BarX, l.BarWidth, l.BarHeight)
	}
	if got := NewLayout(prefabs.SceneSpec{}); got.Width != 800 || got.Height != 600 || got.Scale != 1 {
		t.Fatalf("empty spec layout = %+v", got)
	}
}

func TestNewScene(t *testing.T) {
	scene, _, _ := loadSpecs(t)
	w := ecs.NewWorld()
	e, err := NewScene(w, scene, nil)
	if err != nil {
		t.Fatalf("scene: %v", err)
	}
	session, ok := ecs.Get(w, e, component.SessionComponent.Kind())
	if !ok || session.ID == "" {
		t.Fatalf("session missing id: %+v", session)
	}
	bounds, ok := ecs.Get(w, e, component.WorldBoundsComponent.Kind())
	if !ok || bounds.Width != 800 || bounds.Height != 600 {
		t.Fatalf("bounds = %+v", bounds)
	}
	if !ecs.Has(w, e, component.PointerComponent.Kind()) {
		t.Fatalf("scene has no pointer")
	}
}

func TestHUD(t *testing.T) {
	scene, _, _ := loadSpecs(t)
	w := ecs.NewWorld()

	bar, err := NewProgressBar(w, scene)
	if err != nil {
		t.Fatalf("bar: %v", err)
	}
	transform, _ := ecs.Get(w, bar, component.TransformComponent.Kind())
	if transform.X != 400 || transform.Y != 467 {
		t.Fatalf("bar centre = (%v, %v), want (400, 467)", transform.X, transform.Y)
	}
	body, _ := ecs.Get(w, bar, component.PhysicsBodyComponent.Kind())
	if !body.Static || body.Width != 560 {
		t.Fatalf("bar body = %+v", body)
	}

	buttons, err := NewButtons(w, scene)
	if err != nil || len(buttons) != 3 {
		t.Fatalf("buttons = %v, %v", buttons, err)
	}
	wantActions := []component.TransportAction{component.TransportPrevious, component.TransportToggle, component.TransportNext}
	for i, e := range buttons {
		b, _ := ecs.Get(w, e, component.ButtonComponent.Kind())
		if b.Action != wantActions[i] || b.Y != 540 {
			t.Fatalf("button %d = %+v", i, b)
		}
	}

	labels, err := NewLabels(w, scene)
	if err != nil || len(labels) != 3 {
		t.Fatalf("labels = %v, %v", labels, err)
	}

	timers := NewHUDTimers(w, scene)
	wantDelays := []time.Duration{time.Second, 50 * time.Millisecond}
	for i, e := range timers {
		timer, _ := ecs.Get(w, e, component.TimerComponent.Kind())
		if timer.Delay != wantDelays[i] || !timer.Repeat {
			t.Fatalf("timer %d = %+v", i, timer)
		}
	}
}

func TestNewPlayer(t *testing.T) {
	scene, spec, _ := loadSpecs(t)
	w := ecs.NewWorld()
	e, err := NewPlayer(w, spec, scene)
	if err != nil {
		t.Fatalf("player: %v", err)
	}
	p, _ := ecs.Get(w, e, component.PlayerComponent.Kind())
	if p.SpawnX != 140 || p.SpawnY != 180 {
		t.Fatalf("spawn = (%v, %v), want (140, 180)", p.SpawnX, p.SpawnY)
	}
	if p.PushRecovery != 800*time.Millisecond || p.RespawnBlink.Cycles != 6 {
		t.Fatalf("tuning = %+v", p)
	}
	anim, _ := ecs.Get(w, e, component.AnimationComponent.Kind())
	if anim.Current != "idle" || len(anim.Defs) != 4 {
		t.Fatalf("animation current=%q defs=%d", anim.Current, len(anim.Defs))
	}

	spec.MoveSpeed = 250
	ApplyPlayerSpec(w, spec)
	if p.MoveSpeed != 250 || p.SpawnX != 140 {
		t.Fatalf("reload = %+v", p)
	}
}

func TestNewEnemy(t *testing.T) {
	scene, _, spec := loadSpecs(t)
	w := ecs.NewWorld()
	e, err := NewEnemy(w, spec, scene)
	if err != nil {
		t.Fatalf("enemy: %v", err)
	}
	enemy, _ := ecs.Get(w, e, component.EnemyComponent.Kind())
	if enemy.SpawnX != 1000 || enemy.SpawnY != 390 {
		t.Fatalf("spawn = (%v, %v), want (1000, 390)", enemy.SpawnX, enemy.SpawnY)
	}
	if enemy.LeftBound != -200 || enemy.RightBound != 1000 {
		t.Fatalf("bounds = (%v, %v)", enemy.LeftBound, enemy.RightBound)
	}
	if enemy.FlipOffset != 120 || enemy.Direction != -1 {
		t.Fatalf("flip=%v dir=%v", enemy.FlipOffset, enemy.Direction)
	}
	if enemy.RespawnMin != 5*time.Second || enemy.RespawnMax != 15*time.Second {
		t.Fatalf("respawn range = [%s, %s)", enemy.RespawnMin, enemy.RespawnMax)
	}
	if enemy.Curve == nil {
		t.Fatalf("enemy has no speed curve")
	}
	speed, err := enemy.Curve.Speed(2*time.Second, time.Minute)
	if err != nil || speed != 20 {
		t.Fatalf("curve speed = %v, %v; want 20", speed, err)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !body.Kinematic || !body.Sensor {
		t.Fatalf("enemy body = %+v", body)
	}

	bad := spec
	bad.SpeedScript = "scripts/missing.tengo"
	if err := ApplyEnemySpec(w, bad, scene); err == nil {
		t.Fatalf("expected error for a missing script")
	}
	if enemy.Curve == nil {
		t.Fatalf("failed reload dropped the curve")
	}
}
