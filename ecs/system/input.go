package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	upKeys    = []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}
	downKeys  = []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}
)

type InputSystem struct {
	touches []ebiten.TouchID
	touchID ebiten.TouchID
	touchOn bool
	lastX   float64
	lastY   float64
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func readKey(keys []ebiten.Key) component.Key {
	var k component.Key
	for _, key := range keys {
		k.Held = k.Held || ebiten.IsKeyPressed(key)
		k.Pressed = k.Pressed || inpututil.IsKeyJustPressed(key)
		k.Released = k.Released || inpututil.IsKeyJustReleased(key)
	}
	return k
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}

	input := component.Input{
		Left:  readKey(leftKeys),
		Right: readKey(rightKeys),
		Up:    readKey(upKeys),
		Down:  readKey(downKeys),
	}
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, in *component.Input) {
		*in = input
	})

	pointer := i.readPointer()
	ecs.ForEach(w, component.PointerComponent.Kind(), func(_ ecs.Entity, p *component.Pointer) {
		*p = pointer
	})
}

// readPointer merges the left mouse button and the first active touch.
func (i *InputSystem) readPointer() component.Pointer {
	mx, my := ebiten.CursorPosition()
	p := component.Pointer{
		X:        float64(mx),
		Y:        float64(my),
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Pressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		Released: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}

	i.touches = inpututil.AppendJustPressedTouchIDs(i.touches[:0])
	if !i.touchOn && len(i.touches) > 0 {
		i.touchID = i.touches[0]
		i.touchOn = true
		tx, ty := ebiten.TouchPosition(i.touchID)
		i.lastX, i.lastY = float64(tx), float64(ty)
		p.X, p.Y = i.lastX, i.lastY
		p.Pressed = true
		p.Down = true
		return p
	}
	if !i.touchOn {
		return p
	}

	if inpututil.IsTouchJustReleased(i.touchID) {
		i.touchOn = false
		p.X, p.Y = i.lastX, i.lastY
		p.Released = true
		return p
	}

	tx, ty := ebiten.TouchPosition(i.touchID)
	i.lastX, i.lastY = float64(tx), float64(ty)
	p.X, p.Y = i.lastX, i.lastY
	p.Down = true
	return p
}
