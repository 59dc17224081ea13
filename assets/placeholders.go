package assets

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"slices"

	"golang.org/x/image/colornames"
)

var palette = struct {
	PlayerBody  color.RGBA
	PlayerTrim  color.RGBA
	PlayerHurt  color.RGBA
	EagleBody   color.RGBA
	EagleWing   color.RGBA
	EagleBeak   color.RGBA
	Burst       color.RGBA
	Icon        color.RGBA
	Transparent color.RGBA
}{
	PlayerBody:  colornames.Mediumseagreen,
	PlayerTrim:  colornames.Darkgreen,
	PlayerHurt:  colornames.Tomato,
	EagleBody:   colornames.Sienna,
	EagleWing:   colornames.Saddlebrown,
	EagleBeak:   colornames.Gold,
	Burst:       colornames.Lightyellow,
	Icon:        colornames.White,
	Transparent: color.RGBA{},
}

// SheetFunc draws frame i of n into a frameW x frameH cell.
type SheetFunc func(dst *image.RGBA, cell image.Rectangle, i, n int)

var sheets = map[string]SheetFunc{
	"player-idle":   drawPlayerIdle,
	"player-run":    drawPlayerRun,
	"player-crouch": drawPlayerCrouch,
	"player-hurt":   drawPlayerHurt,
	"eagle-attack":  drawEagle,
	"enemy-death":   drawDeath,
}

// SheetNames lists every sheet that can be generated.
func SheetNames() []string {
	names := make([]string, 0, len(sheets))
	for name := range sheets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GenerateSheet lays out frames horizontally. Unknown names produce a
// magenta checker so missing art is obvious on screen.
func GenerateSheet(name string, frames, frameW, frameH int) *image.RGBA {
	if frames < 1 {
		frames = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, frames*frameW, frameH))
	fn, ok := sheets[name]
	if !ok {
		fn = drawMissing
	}
	for i := 0; i < frames; i++ {
		cell := image.Rect(i*frameW, 0, (i+1)*frameW, frameH)
		fn(img, cell, i, frames)
	}
	return img
}

func fillRect(dst *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r.Intersect(dst.Bounds()), &image.Uniform{c}, image.Point{}, draw.Src)
}

func drawFigure(dst *image.RGBA, cell image.Rectangle, body color.RGBA, crouch bool, legShift int) {
	w, h := cell.Dx(), cell.Dy()
	bodyW := w * 2 / 5
	bodyH := h / 3
	headH := h / 5
	x0 := cell.Min.X + (w-bodyW)/2
	feet := cell.Max.Y - 2
	if crouch {
		bodyH = bodyH * 2 / 3
	}

	legH := h / 6
	if crouch {
		legH = legH / 2
	}
	legTop := feet - legH
	fillRect(dst, image.Rect(x0+legShift, legTop, x0+bodyW/3+legShift, feet), palette.PlayerTrim)
	fillRect(dst, image.Rect(x0+bodyW*2/3-legShift, legTop, x0+bodyW-legShift, feet), palette.PlayerTrim)

	bodyTop := legTop - bodyH
	fillRect(dst, image.Rect(x0, bodyTop, x0+bodyW, legTop), body)

	headTop := bodyTop - headH
	fillRect(dst, image.Rect(x0+1, headTop, x0+bodyW-1, bodyTop), body)
	// eye on the facing side
	fillRect(dst, image.Rect(x0+bodyW-4, headTop+2, x0+bodyW-2, headTop+4), palette.PlayerTrim)
}

func drawPlayerIdle(dst *image.RGBA, cell image.Rectangle, i, n int) {
	drawFigure(dst, cell, palette.PlayerBody, false, 0)
	if i%2 == 1 {
		// breathing
		fillRect(dst, image.Rect(cell.Min.X, cell.Min.Y, cell.Max.X, cell.Min.Y+1), palette.Transparent)
	}
}

func drawPlayerRun(dst *image.RGBA, cell image.Rectangle, i, n int) {
	shift := int(math.Round(2 * math.Sin(float64(i)/float64(n)*2*math.Pi)))
	drawFigure(dst, cell, palette.PlayerBody, false, shift)
}

func drawPlayerCrouch(dst *image.RGBA, cell image.Rectangle, i, n int) {
	drawFigure(dst, cell, palette.PlayerBody, true, 0)
}

func drawPlayerHurt(dst *image.RGBA, cell image.Rectangle, i, n int) {
	body := palette.PlayerBody
	if i%2 == 0 {
		body = palette.PlayerHurt
	}
	drawFigure(dst, cell, body, false, 0)
}

func drawEagle(dst *image.RGBA, cell image.Rectangle, i, n int) {
	w, h := cell.Dx(), cell.Dy()
	cx := cell.Min.X + w/2
	cy := cell.Min.Y + h/2

	fillRect(dst, image.Rect(cx-w/6, cy-h/8, cx+w/6, cy+h/8), palette.EagleBody)
	// beak faces left, the direction sprites are flipped from
	fillRect(dst, image.Rect(cx-w/6-4, cy-2, cx-w/6, cy+2), palette.EagleBeak)

	// wings sweep through the frames
	phase := math.Sin(float64(i) / float64(n) * 2 * math.Pi)
	wingY := cy - int(phase*float64(h)/4)
	fillRect(dst, image.Rect(cx-w/3, min(wingY, cy), cx+w/3, max(wingY, cy)+2), palette.EagleWing)
}

func drawDeath(dst *image.RGBA, cell image.Rectangle, i, n int) {
	w, h := cell.Dx(), cell.Dy()
	cx := cell.Min.X + w/2
	cy := cell.Min.Y + h/2
	radius := float64(min(w, h)) / 2 * float64(i+1) / float64(n)
	alpha := uint8(255 * (n - i) / n)
	c := color.RGBA{palette.Burst.R, palette.Burst.G, palette.Burst.B, alpha}
	for a := 0; a < 8; a++ {
		angle := float64(a) * math.Pi / 4
		px := cx + int(radius*math.Cos(angle))
		py := cy + int(radius*math.Sin(angle))
		fillRect(dst, image.Rect(px-2, py-2, px+2, py+2), c)
	}
}

func drawMissing(dst *image.RGBA, cell image.Rectangle, i, n int) {
	for y := cell.Min.Y; y < cell.Max.Y; y += 4 {
		for x := cell.Min.X; x < cell.Max.X; x += 4 {
			if ((x-cell.Min.X)/4+(y-cell.Min.Y)/4)%2 == 0 {
				fillRect(dst, image.Rect(x, y, x+4, y+4), colornames.Magenta)
			}
		}
	}
}

// IconKind selects a transport button glyph.
type IconKind int

const (
	IconPlay IconKind = iota
	IconPause
	IconNext
	IconPrevious
)

// GenerateIcon draws a square white glyph on a transparent background.
func GenerateIcon(kind IconKind, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	pad := size / 6
	inner := image.Rect(pad, pad, size-pad, size-pad)

	switch kind {
	case IconPlay:
		fillTriangle(img, inner, true)
	case IconPause:
		barW := inner.Dx() / 3
		fillRect(img, image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+barW, inner.Max.Y), palette.Icon)
		fillRect(img, image.Rect(inner.Max.X-barW, inner.Min.Y, inner.Max.X, inner.Max.Y), palette.Icon)
	case IconNext:
		barW := max(2, inner.Dx()/6)
		fillTriangle(img, image.Rect(inner.Min.X, inner.Min.Y, inner.Max.X-barW, inner.Max.Y), true)
		fillRect(img, image.Rect(inner.Max.X-barW, inner.Min.Y, inner.Max.X, inner.Max.Y), palette.Icon)
	case IconPrevious:
		barW := max(2, inner.Dx()/6)
		fillRect(img, image.Rect(inner.Min.X, inner.Min.Y, inner.Min.X+barW, inner.Max.Y), palette.Icon)
		fillTriangle(img, image.Rect(inner.Min.X+barW, inner.Min.Y, inner.Max.X, inner.Max.Y), false)
	}
	return img
}

// fillTriangle fills an isosceles triangle pointing right (or left) inside r.
func fillTriangle(dst *image.RGBA, r image.Rectangle, right bool) {
	h := r.Dy()
	if h == 0 {
		return
	}
	for y := 0; y < h; y++ {
		dist := y
		if y > h/2 {
			dist = h - 1 - y
		}
		span := r.Dx() * dist * 2 / h
		if right {
			fillRect(dst, image.Rect(r.Min.X, r.Min.Y+y, r.Min.X+span, r.Min.Y+y+1), palette.Icon)
		} else {
			fillRect(dst, image.Rect(r.Max.X-span, r.Min.Y+y, r.Max.X, r.Min.Y+y+1), palette.Icon)
		}
	}
}
