package assets

import (
	"image"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

type sheetKey struct {
	name         string
	frames, w, h int
}

var (
	imageMu    sync.Mutex
	sheetCache = map[sheetKey]*ebiten.Image{}
	iconCache  = map[IconKind]*ebiten.Image{}
)

// Sheet returns the generated sprite sheet as a GPU image. Images are created
// on first use so tests that never draw do not need a graphics context.
func Sheet(name string, frames, frameW, frameH int) *ebiten.Image {
	key := sheetKey{name: name, frames: frames, w: frameW, h: frameH}

	imageMu.Lock()
	defer imageMu.Unlock()
	if img, ok := sheetCache[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(GenerateSheet(name, frames, frameW, frameH))
	sheetCache[key] = img
	return img
}

const iconSize = 32

func Icon(kind IconKind) *ebiten.Image {
	imageMu.Lock()
	defer imageMu.Unlock()
	if img, ok := iconCache[kind]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(GenerateIcon(kind, iconSize))
	iconCache[kind] = img
	return img
}

// Frame is a sub image of one animation cell.
func Frame(sheet *ebiten.Image, index, frameW, frameH int) *ebiten.Image {
	if sheet == nil {
		return nil
	}
	rect := image.Rect(index*frameW, 0, (index+1)*frameW, frameH)
	return sheet.SubImage(rect).(*ebiten.Image)
}
