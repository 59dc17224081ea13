package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"slices"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/trackrunner/assets"
	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/prefabs"
)

const previewSize = 512

// clip is one animation from the prefabs, previewed on its generated sheet.
type clip struct {
	owner string
	name  string
	def   prefabs.AnimationDefSpec
}

func (c clip) label() string {
	return fmt.Sprintf("%s/%s (%s, %d frames @ %.0f fps)", c.owner, c.name, c.def.Sheet, c.def.FrameCount, c.def.FPS)
}

func clipsFrom(owner string, spec prefabs.AnimationSpec) []clip {
	out := make([]clip, 0, len(spec.Defs))
	for name, def := range spec.Defs {
		if def.Sheet == "" {
			def.Sheet = spec.Sheet
		}
		out = append(out, clip{owner: owner, name: name, def: def})
	}
	slices.SortFunc(out, func(a, b clip) int { return strings.Compare(a.name, b.name) })
	return out
}

type demoGame struct {
	clips   []clip
	index   int
	frames  []*ebiten.Image
	current int
	tick    int
	ticks   int
	scale   float64
}

func (g *demoGame) load() {
	c := g.clips[g.index]
	sheet := assets.Sheet(c.def.Sheet, c.def.FrameCount, c.def.FrameW, c.def.FrameH)
	g.frames = g.frames[:0]
	for i := 0; i < c.def.FrameCount; i++ {
		g.frames = append(g.frames, assets.Frame(sheet, i, c.def.FrameW, c.def.FrameH))
	}
	g.current = 0
	g.tick = 0
	g.ticks = 1
	if c.def.FPS > 0 {
		g.ticks = max(1, int(common.TPS/c.def.FPS))
	}
}

func (g *demoGame) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		g.index = (g.index + 1) % len(g.clips)
		g.load()
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		g.index = (g.index - 1 + len(g.clips)) % len(g.clips)
		g.load()
	}

	if len(g.frames) <= 1 {
		return nil
	}
	g.tick++
	if g.tick >= g.ticks {
		g.tick = 0
		g.current = (g.current + 1) % len(g.frames)
	}
	return nil
}

func (g *demoGame) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x00, 0x00, 0x00, 0xff})
	ebitenutil.DebugPrint(screen, g.clips[g.index].label()+"\n<- / -> switch clip")
	if len(g.frames) == 0 {
		return
	}
	frame := g.frames[g.current]
	fw := float64(frame.Bounds().Dx()) * g.scale
	fh := float64(frame.Bounds().Dy()) * g.scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(g.scale, g.scale)
	op.GeoM.Translate((previewSize-fw)/2, (previewSize-fh)/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(frame, op)
}

func (g *demoGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return previewSize, previewSize
}

func main() {
	scale := flag.Float64("scale", 4, "preview zoom")
	start := flag.String("clip", "", "clip name to start on")
	flag.Parse()

	player, err := prefabs.LoadSpec[prefabs.PlayerSpec]("player.yaml")
	if err != nil {
		log.Fatal(err)
	}
	enemy, err := prefabs.LoadSpec[prefabs.EnemySpec]("enemy.yaml")
	if err != nil {
		log.Fatal(err)
	}
	clips := append(clipsFrom(player.Name, player.Animation), clipsFrom(enemy.Name, enemy.Animation)...)
	if len(clips) == 0 {
		log.Fatal("no animation clips in prefabs")
	}

	g := &demoGame{clips: clips, scale: *scale}
	if i := slices.IndexFunc(clips, func(c clip) bool { return c.name == *start }); i >= 0 {
		g.index = i
	}
	g.load()

	ebiten.SetWindowSize(previewSize, previewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
