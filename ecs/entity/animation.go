package entity

import (
	"github.com/milk9111/trackrunner/assets"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/prefabs"
)

// loadSheet is swapped out in tests so no GPU image is created.
var loadSheet = assets.Sheet

func animationFromSpec(spec prefabs.AnimationSpec) component.Animation {
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		sheetName := def.Sheet
		if sheetName == "" {
			sheetName = spec.Sheet
		}
		d := component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FrameW:     def.FrameW,
			FrameH:     def.FrameH,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
		if sheetName != "" && def.FrameCount > 0 {
			d.Sheet = loadSheet(sheetName, def.FrameCount, def.FrameW, def.FrameH)
		}
		defs[name] = d
	}

	current := spec.Current
	if _, ok := defs[current]; !ok {
		current = ""
	}
	return component.Animation{
		Defs:    defs,
		Current: current,
		Playing: current != "",
	}
}
