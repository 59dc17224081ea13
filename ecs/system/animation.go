package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.AnimationComponent.Kind(), func(e ecs.Entity, anim *component.Animation) {
		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 {
			return
		}

		if anim.Playing {
			advanceAnimation(anim, def)
		}

		sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || def.Sheet == nil {
			return
		}
		x := anim.Frame * def.FrameW
		rect := image.Rect(x, 0, x+def.FrameW, def.FrameH)
		sprite.Image = def.Sheet.SubImage(rect).(*ebiten.Image)
		sprite.OriginX = float64(def.FrameW) / 2
		sprite.OriginY = float64(def.FrameH) / 2
	})
}

// advanceAnimation steps one tick. Frames advance every TPS/FPS ticks; a
// non-looping clip stops on its last frame and is marked finished.
func advanceAnimation(anim *component.Animation, def component.AnimationDef) {
	ticksPerFrame := 1
	if def.FPS > 0 {
		ticksPerFrame = int(common.TPS / def.FPS)
	}
	if ticksPerFrame < 1 {
		ticksPerFrame = 1
	}

	anim.FrameTimer++
	if anim.FrameTimer < ticksPerFrame {
		return
	}
	anim.FrameTimer = 0
	anim.Frame++
	if anim.Frame < def.FrameCount {
		return
	}
	if def.Loop {
		anim.Frame = 0
		return
	}
	anim.Frame = def.FrameCount - 1
	anim.Playing = false
	anim.Finished = true
}
