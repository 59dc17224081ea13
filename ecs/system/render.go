package system

import (
	"bytes"
	"image/color"
	"log/slog"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/trackrunner/assets"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/playback"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce   sync.Once
	fontSource *text.GoTextFaceSource

	pressedTint = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	panelColor  = color.RGBA{A: 140}
	borderColor = color.RGBA{R: 20, G: 20, B: 20, A: 255}
)

func hudFont() *text.GoTextFaceSource {
	fontOnce.Do(func() {
		s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			slog.Error("load hud font", "error", err)
			return
		}
		fontSource = s
	})
	return fontSource
}

type RenderSystem struct {
	Background color.Color
}

func NewRenderSystem(background color.Color) *RenderSystem {
	return &RenderSystem{Background: background}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	if r.Background != nil {
		screen.Fill(r.Background)
	}

	var ctrl *playback.TrackController
	if _, session, ok := ecs.FirstValue(w, component.SessionComponent.Kind()); ok {
		ctrl = session.Controller
	}

	r.drawProgressBars(w, screen)
	r.drawSprites(w, screen)
	r.drawButtons(w, screen, ctrl)
	r.drawLabels(w, screen, ctrl)
}

func (r *RenderSystem) drawProgressBars(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach(w, component.ProgressBarComponent.Kind(), func(_ ecs.Entity, bar *component.ProgressBar) {
		x, y := float32(bar.X), float32(bar.Y)
		bw, bh := float32(bar.Width), float32(bar.Height)
		if bar.TrackColor != nil {
			vector.FillRect(screen, x, y, bw, bh, bar.TrackColor, false)
		}
		if bar.FillColor != nil && bar.Fill > 0 {
			vector.FillRect(screen, x, y, bw*float32(bar.Fill), bh, bar.FillColor, false)
		}
		vector.StrokeRect(screen, x, y, bw, bh, 1, borderColor, false)
	})
}

func (r *RenderSystem) drawSprites(w *ecs.World, screen *ebiten.Image) {
	entities := w.Query(component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	sort.SliceStable(entities, func(i, j int) bool {
		li := 0
		if layer, ok := ecs.Get(w, entities[i], component.RenderLayerComponent.Kind()); ok {
			li = layer.Index
		}
		lj := 0
		if layer, ok := ecs.Get(w, entities[j], component.RenderLayerComponent.Kind()); ok {
			lj = layer.Index
		}
		if li != lj {
			return li < lj
		}
		return uint64(entities[i]) < uint64(entities[j])
	})

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil || s.Hidden {
			continue
		}

		img := s.Image
		if s.UseSource {
			if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
				img = sub
			}
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)

		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		if s.FlipX {
			sx = -sx
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(t.X, t.Y)

		if blink, ok := ecs.Get(w, e, component.BlinkComponent.Kind()); ok {
			op.ColorScale.ScaleAlpha(float32(blink.Alpha))
		}
		screen.DrawImage(img, op)
	}
}

func buttonIcon(action component.TransportAction, ctrl *playback.TrackController) assets.IconKind {
	switch action {
	case component.TransportNext:
		return assets.IconNext
	case component.TransportPrevious:
		return assets.IconPrevious
	}
	if ctrl != nil && ctrl.Icon() == playback.IconPause {
		return assets.IconPause
	}
	return assets.IconPlay
}

func (r *RenderSystem) drawButtons(w *ecs.World, screen *ebiten.Image, ctrl *playback.TrackController) {
	ecs.ForEach(w, component.ButtonComponent.Kind(), func(_ ecs.Entity, b *component.Button) {
		img := assets.Icon(buttonIcon(b.Action, ctrl))
		if img == nil {
			return
		}
		scale := b.Scale
		if scale == 0 {
			scale = 1
		}
		size := float64(img.Bounds().Dx())
		if size == 0 {
			return
		}
		k := b.Size * scale / size

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-size/2, -size/2)
		op.GeoM.Scale(k, k)
		op.GeoM.Translate(b.X, b.Y)
		if b.Pressed {
			op.ColorScale.ScaleWithColor(pressedTint)
		}
		screen.DrawImage(img, op)
	})
}

func labelText(source component.LabelSource, ctrl *playback.TrackController) string {
	if ctrl == nil {
		if source == component.LabelTitle {
			return playback.LoadingTitle
		}
		return playback.FormatDuration(0)
	}
	switch source {
	case component.LabelTitle:
		return ctrl.Title()
	case component.LabelElapsed:
		return ctrl.ElapsedText()
	case component.LabelTotal:
		return ctrl.TotalText()
	}
	return ""
}

func (r *RenderSystem) drawLabels(w *ecs.World, screen *ebiten.Image, ctrl *playback.TrackController) {
	src := hudFont()
	if src == nil {
		return
	}
	ecs.ForEach(w, component.LabelComponent.Kind(), func(_ ecs.Entity, l *component.Label) {
		str := labelText(l.Source, ctrl)
		if str == "" {
			return
		}
		face := &text.GoTextFace{Source: src, Size: l.Size}
		op := &text.DrawOptions{}
		op.GeoM.Translate(l.X, l.Y)
		if l.Centered {
			op.PrimaryAlign = text.AlignCenter
			tw, th := text.Measure(str, face, 0)
			pad := l.Size / 2
			vector.FillRect(screen, float32(l.X-tw/2-pad), float32(l.Y-pad/2), float32(tw+2*pad), float32(th+pad), panelColor, false)
		}
		if l.Color != nil {
			op.ColorScale.ScaleWithColor(l.Color)
		}
		text.Draw(screen, str, face, op)
	})
}
