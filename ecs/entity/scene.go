package entity

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/playback"
	"github.com/milk9111/trackrunner/prefabs"
	"golang.org/x/image/colornames"
)

const (
	playerLayer = 2
	enemyLayer  = 3
)

// NewScene creates the session singleton with the shared pointer and the
// screen bounds.
func NewScene(w *ecs.World, scene prefabs.SceneSpec, ctrl *playback.TrackController) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("scene: world is nil")
	}
	layout := NewLayout(scene)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.SessionComponent.Kind(), &component.Session{
		ID:         uuid.NewString(),
		Controller: ctrl,
	}); err != nil {
		return 0, fmt.Errorf("scene: add session: %w", err)
	}
	if err := ecs.Add(w, e, component.PointerComponent.Kind(), &component.Pointer{}); err != nil {
		return 0, fmt.Errorf("scene: add pointer: %w", err)
	}
	if err := ecs.Add(w, e, component.WorldBoundsComponent.Kind(), &component.WorldBounds{
		Width:  layout.Width,
		Height: layout.Height,
	}); err != nil {
		return 0, fmt.Errorf("scene: add bounds: %w", err)
	}
	return e, nil
}

// NewProgressBar builds the bar the player runs on. It is drawn by the HUD
// and collides as a static platform.
func NewProgressBar(w *ecs.World, scene prefabs.SceneSpec) (ecs.Entity, error) {
	layout := NewLayout(scene)
	e := ecs.CreateEntity(w)
	bar := &component.ProgressBar{
		X:          layout.BarX,
		Y:          layout.BarY,
		Width:      layout.BarWidth,
		Height:     layout.BarHeight,
		TrackColor: scene.ProgressBar.Track.Or(colornames.Lightslategray),
		FillColor:  scene.ProgressBar.Fill.Or(colornames.Crimson),
	}
	if err := ecs.Add(w, e, component.ProgressBarComponent.Kind(), bar); err != nil {
		return 0, fmt.Errorf("progress bar: %w", err)
	}
	if err := ecs.Add(w, e, component.PlatformTagComponent.Kind(), &component.PlatformTag{}); err != nil {
		return 0, fmt.Errorf("progress bar: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: layout.BarX + layout.BarWidth/2,
		Y: layout.BarY + layout.BarHeight/2,
	}); err != nil {
		return 0, fmt.Errorf("progress bar: %w", err)
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    layout.BarWidth,
		Height:   layout.BarHeight,
		Static:   true,
		Friction: 1,
	}); err != nil {
		return 0, fmt.Errorf("progress bar: %w", err)
	}
	return e, nil
}

// NewButtons builds previous, play/pause and next, left to right.
func NewButtons(w *ecs.World, scene prefabs.SceneSpec) ([]ecs.Entity, error) {
	layout := NewLayout(scene)
	spec := scene.Buttons
	buttons := []component.Button{
		{Action: component.TransportPrevious, X: layout.X(spec.PreviousX)},
		{Action: component.TransportToggle, X: layout.X(spec.PlayX), Scale: spec.PlayScale},
		{Action: component.TransportNext, X: layout.X(spec.NextX)},
	}

	out := make([]ecs.Entity, 0, len(buttons))
	for i := range buttons {
		b := buttons[i]
		b.Y = layout.Y(spec.Y)
		b.Size = spec.Size
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.ButtonComponent.Kind(), &b); err != nil {
			return nil, fmt.Errorf("button %s: %w", b.Action, err)
		}
		out = append(out, e)
	}
	return out, nil
}

// NewLabels builds the title and the two time labels.
func NewLabels(w *ecs.World, scene prefabs.SceneSpec) ([]ecs.Entity, error) {
	layout := NewLayout(scene)
	hud := scene.HUD
	c := hud.Color.Or(colornames.White)
	labels := []component.Label{
		{Source: component.LabelTitle, X: layout.Width / 2, Y: layout.Y(hud.TitleY), Centered: true},
		{Source: component.LabelElapsed, X: layout.X(hud.ElapsedX), Y: layout.Y(hud.TimeY)},
		{Source: component.LabelTotal, X: layout.X(hud.TotalX), Y: layout.Y(hud.TimeY)},
	}

	out := make([]ecs.Entity, 0, len(labels))
	for i := range labels {
		l := labels[i]
		l.Size = hud.FontSize
		l.Color = c
		e := ecs.CreateEntity(w)
		if err := ecs.Add(w, e, component.LabelComponent.Kind(), &l); err != nil {
			return nil, fmt.Errorf("label: %w", err)
		}
		out = append(out, e)
	}
	return out, nil
}

// NewHUDTimers starts the repeating elapsed label and progress fill timers.
func NewHUDTimers(w *ecs.World, scene prefabs.SceneSpec) []ecs.Entity {
	timers := []component.Timer{
		{Kind: component.TimerElapsedLabel, Delay: scene.Timers.Elapsed(), Repeat: true},
		{Kind: component.TimerProgressFill, Delay: scene.Timers.Progress(), Repeat: true},
	}
	out := make([]ecs.Entity, 0, len(timers))
	for i := range timers {
		e := ecs.CreateEntity(w)
		_ = ecs.Add(w, e, component.TimerComponent.Kind(), &timers[i])
		out = append(out, e)
	}
	return out
}
