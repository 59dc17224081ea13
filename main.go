package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trackrunner/assets"
	"github.com/milk9111/trackrunner/common"
	"github.com/milk9111/trackrunner/manifest"
	"github.com/milk9111/trackrunner/playback"
	"github.com/milk9111/trackrunner/prefabs"
)

func main() {
	musicDir := flag.String("music", "assets/music", "directory holding the tracks and "+manifest.FileName)
	debug := flag.Bool("debug", false, "enable debug mode")
	watch := flag.Bool("watch", false, "hot reload prefabs/ on change")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	scene, err := prefabs.LoadSpec[prefabs.SceneSpec]("scene.yaml")
	if err != nil {
		log.Fatal(err)
	}

	names, err := manifest.Load(*musicDir)
	if err != nil {
		log.Fatal(err)
	}
	volume := scene.Volume
	if volume <= 0 {
		volume = playback.DefaultVolume
	}
	ctrl := playback.NewTrackController(
		assets.NewAudioLoader(os.DirFS(*musicDir)),
		playback.NewPlaylist(names),
		playback.WithVolume(volume),
		playback.WithLogger(slog.With("system", "playback")),
	)
	if err := ctrl.Init(); err != nil && !errors.Is(err, playback.ErrNoTracks) {
		slog.Error("select first track", "dir", *musicDir, "error", err)
	}
	defer ctrl.Close()

	game, err := NewGame(ctrl, scene, Options{Debug: *debug, Watch: *watch})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("trackrunner")
	ebiten.SetTPS(common.TPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
