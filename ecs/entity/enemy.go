package entity

import (
	"fmt"

	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/ecs/system"
	"github.com/milk9111/trackrunner/prefabs"
)

// NewEnemy builds the patrolling eagle off the right edge of the screen.
func NewEnemy(w *ecs.World, spec prefabs.EnemySpec, scene prefabs.SceneSpec) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("enemy: world is nil")
	}
	layout := NewLayout(scene)

	enemy := component.Enemy{
		State:     component.EnemyPatrolling,
		Direction: float64(spec.InitialFacing),
		SpawnX:    layout.X(spec.Spawn.X),
		SpawnY:    layout.Y(spec.Spawn.Y),
	}
	if enemy.Direction == 0 {
		enemy.Direction = -1
	}
	if err := applyEnemyTuning(&enemy, spec, layout); err != nil {
		return 0, err
	}

	anim := animationFromSpec(spec.Animation)
	anim.Play(enemy.PatrolAnim)

	e := ecs.CreateEntity(w)
	steps := []error{
		ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{}),
		ecs.Add(w, e, component.EnemyComponent.Kind(), &enemy),
		ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
			X: enemy.SpawnX, Y: enemy.SpawnY, ScaleX: layout.Scale, ScaleY: layout.Scale,
		}),
		ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{FlipX: enemy.Direction > 0}),
		ecs.Add(w, e, component.AnimationComponent.Kind(), &anim),
		ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: enemyLayer}),
		ecs.Add(w, e, component.BobComponent.Kind(), &component.Bob{
			Amplitude:  spec.Bob.Amplitude,
			HalfPeriod: prefabs.Millis(spec.Bob.HalfPeriodMS),
		}),
		ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
			Width:     spec.Collider.Width * layout.Scale,
			Height:    spec.Collider.Height * layout.Scale,
			Kinematic: true,
			Sensor:    true,
		}),
	}
	for _, err := range steps {
		if err != nil {
			return 0, fmt.Errorf("enemy: %w", err)
		}
	}
	return e, nil
}

func applyEnemyTuning(enemy *component.Enemy, spec prefabs.EnemySpec, layout Layout) error {
	enemy.LeftBound = layout.X(spec.Bounds.Left)
	enemy.RightBound = layout.X(spec.Bounds.Right)
	enemy.HitNudge = spec.HitNudge
	enemy.FlipOffset = layout.X(spec.FlipOffset)
	enemy.RespawnMin, enemy.RespawnMax = spec.RespawnDelay.Bounds()
	enemy.PatrolAnim = spec.PatrolAnim
	enemy.DeathAnim = spec.DeathAnim

	curve, err := speedCurve(spec)
	if err != nil {
		return fmt.Errorf("enemy: %w", err)
	}
	enemy.Curve = curve
	return nil
}

func speedCurve(spec prefabs.EnemySpec) (component.SpeedCurve, error) {
	if spec.SpeedScript == "" {
		return system.LinearCurve{Factor: spec.SpeedFactor}, nil
	}
	return system.LoadScriptCurve(spec.SpeedScript, spec.SpeedFactor)
}

// ApplyEnemySpec retunes live enemies. A script that fails to compile keeps
// the previous curve and the error is returned.
func ApplyEnemySpec(w *ecs.World, spec prefabs.EnemySpec, scene prefabs.SceneSpec) error {
	layout := NewLayout(scene)
	var firstErr error
	ecs.ForEach(w, component.EnemyComponent.Kind(), func(_ ecs.Entity, enemy *component.Enemy) {
		prev := enemy.Curve
		if err := applyEnemyTuning(enemy, spec, layout); err != nil {
			enemy.Curve = prev
			if firstErr == nil {
				firstErr = err
			}
		}
	})
	return firstErr
}
