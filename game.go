package main

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/trackrunner/ecs"
	"github.com/milk9111/trackrunner/ecs/component"
	"github.com/milk9111/trackrunner/ecs/entity"
	"github.com/milk9111/trackrunner/ecs/system"
	"github.com/milk9111/trackrunner/playback"
	"github.com/milk9111/trackrunner/prefabs"
	"golang.design/x/clipboard"
	"golang.org/x/image/colornames"
)

type Options struct {
	Debug bool
	Watch bool
}

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	music     *system.MusicSystem
	render    *system.RenderSystem

	ctrl    *playback.TrackController
	scene   prefabs.SceneSpec
	session ecs.Entity
	enemy   ecs.Entity

	paused    bool
	quit      bool
	debug     bool
	pauseUI   *ebitenui.UI
	watcher   *prefabs.Watcher
	clipboard bool
	logger    *slog.Logger
}

func NewGame(ctrl *playback.TrackController, scene prefabs.SceneSpec, opts Options) (*Game, error) {
	playerSpec, err := prefabs.LoadSpec[prefabs.PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	enemySpec, err := prefabs.LoadSpec[prefabs.EnemySpec]("enemy.yaml")
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:  ecs.NewWorld(),
		ctrl:   ctrl,
		scene:  scene,
		debug:  opts.Debug,
		logger: slog.With("system", "game"),
	}

	if g.session, err = entity.NewScene(g.world, scene, ctrl); err != nil {
		return nil, err
	}
	if session, ok := ecs.Get(g.world, g.session, component.SessionComponent.Kind()); ok {
		session.Debug = opts.Debug
		g.logger = g.logger.With("session", session.ID)
	}
	if _, err := entity.NewProgressBar(g.world, scene); err != nil {
		return nil, err
	}
	if _, err := entity.NewButtons(g.world, scene); err != nil {
		return nil, err
	}
	if _, err := entity.NewLabels(g.world, scene); err != nil {
		return nil, err
	}
	entity.NewHUDTimers(g.world, scene)
	if _, err := entity.NewPlayer(g.world, playerSpec, scene); err != nil {
		return nil, err
	}
	if g.enemy, err = entity.NewEnemy(g.world, enemySpec, scene); err != nil {
		return nil, err
	}

	seed := uint64(time.Now().UnixNano())
	g.physics = system.NewPhysicsSystem(scene.Gravity)
	g.music = system.NewMusicSystem()
	g.render = system.NewRenderSystem(scene.Background.Or(colornames.Black))
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(),
		system.NewPlayerControlSystem(),
		system.NewEnemySystem(rand.New(rand.NewPCG(seed, seed>>1))),
		g.physics,
		system.NewCollisionSystem(),
		system.NewRespawnSystem(),
		system.NewTransportSystem(),
		g.music,
		system.NewTimerSystem(),
		system.NewAnimationSystem(),
		system.NewBlinkSystem(),
		system.NewBobSystem(),
	)
	g.pauseUI = NewPauseUI(g)

	if err := clipboard.Init(); err != nil {
		g.logger.Warn("clipboard unavailable", "error", err)
	} else {
		g.clipboard = true
	}

	if opts.Watch {
		watcher, err := prefabs.NewWatcher("prefabs", "prefabs/scripts")
		if err != nil {
			g.logger.Warn("prefab watch disabled", "error", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.setPaused(!g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyNowPlaying()
	}
	g.reloadPrefabs()

	if g.paused {
		g.pauseUI.Update()
		// music keeps running under the overlay
		g.music.Update(g.world)
		return nil
	}

	if g.debug && inpututil.IsKeyJustPressed(ebiten.KeyF) {
		if actor, ok := system.EnemyActorFor(g.world, g.enemy); ok {
			actor.FlipDirection()
		}
	}
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug {
		system.DrawPhysicsDebug(g.physics.Space(), screen)
		system.DrawStateDebug(g.world, screen)
	}
	if g.paused {
		g.pauseUI.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	layout := entity.NewLayout(g.scene)
	return layout.Width, layout.Height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if session, ok := ecs.Get(g.world, g.session, component.SessionComponent.Kind()); ok {
		session.Paused = paused
	}
}

func (g *Game) copyNowPlaying() {
	if !g.clipboard || g.ctrl == nil {
		return
	}
	line := g.ctrl.NowPlaying()
	clipboard.Write(clipboard.FmtText, []byte(line))
	g.logger.Info("copied now playing", "line", line)
}

// reloadPrefabs applies tuning edits picked up by the watcher. Geometry is
// left alone; only speeds, timings and gravity change on the fly.
func (g *Game) reloadPrefabs() {
	for _, name := range g.watcher.Poll() {
		var err error
		switch name {
		case "scene.yaml":
			var scene prefabs.SceneSpec
			if scene, err = prefabs.LoadSpec[prefabs.SceneSpec](name); err == nil {
				g.scene.Gravity = scene.Gravity
				g.physics.SetGravity(scene.Gravity)
			}
		case "player.yaml":
			var spec prefabs.PlayerSpec
			if spec, err = prefabs.LoadSpec[prefabs.PlayerSpec](name); err == nil {
				entity.ApplyPlayerSpec(g.world, spec)
			}
		default:
			var spec prefabs.EnemySpec
			if spec, err = prefabs.LoadSpec[prefabs.EnemySpec]("enemy.yaml"); err == nil {
				err = entity.ApplyEnemySpec(g.world, spec, g.scene)
			}
		}
		if err != nil {
			g.logger.Error("prefab reload failed", "file", name, "error", err)
			continue
		}
		g.logger.Info("prefab reloaded", "file", name)
	}
}
