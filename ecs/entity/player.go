package entity

import (
	"fmt"

	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/prefabs"
)

// NewPlayer places the player above the start of the progress bar.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, scene prefabs.SceneSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("player: world is nil")
	}
	layout := NewLayout(scene)
	spawnX := layout.BarX + spec.Spawn.X
	spawnY := layout.Y(spec.Spawn.Y)

	e := ecs.CreateEntity(w)
	anim := animationFromSpec(spec.Animation)

	player := component.Player{SpawnX: spawnX, SpawnY: spawnY}
	applyPlayerTuning(&player, spec)

	steps := []error{
		ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}),
		ecs.Add(w, e, component.PlayerComponent.Kind(), &player),
		ecs.Add(w, e, component.PlayerControlComponent.Kind(), &component.PlayerControl{State: component.NormalState{}}),
		ecs.Add(w, e, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}),
		ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			X: spawnX, Y: spawnY, ScaleX: layout.Scale, ScaleY: layout.Scale,
		}),
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}),
		ecs.Add(w, e, component.AnimationComponent.Kind(), &anim),
		ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: playerLayer}),
		ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:  spec.Collider.Width * layout.Scale,
			Height: spec.Collider.Height * layout.Scale,
			Mass:   1,
		}),
	}
	for _, err := range steps {
		if err != nil {
			return 0, fmt.Errorf("player: %w", err)
		}
	}
	return e, nil
}

func applyPlayerTuning(p *component.Player, spec prefabs.PlayerSpec) {
	p.MoveSpeed = spec.MoveSpeed
	p.JumpSpeed = spec.JumpSpeed
	p.PushFactor = spec.PushFactor
	p.PushRecovery = spec.PushRecovery()
	p.RespawnBlink = component.Blink{
		HalfPeriod: prefabs.Millis(spec.Blink.HalfPeriodMS),
		Cycles:     spec.Blink.Cycles,
	}
}

// ApplyPlayerSpec swaps the tuning of live players without moving them.
func ApplyPlayerSpec(w *ecs.World, spec prefabs.PlayerSpec) {
	ecs.ForEach(w, component.PlayerComponent.Kind(), func(_ ecs.Entity, p *component.Player) {
		applyPlayerTuning(p, spec)
	})
}
