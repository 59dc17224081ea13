// Command manifest maintains the track index the game reads at startup.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/milk9111/trackrunner/manifest"
	"github.com/milk9111/trackrunner/playback"
	"github.com/spf13/cobra"
)

type DirParams struct {
	Dir string `pos:"true" optional:"true" help:"Music directory." default:"assets/music"`
}

type WatchParams struct {
	Dir        string `pos:"true" optional:"true" help:"Music directory." default:"assets/music"`
	DebounceMs int    `short:"d" optional:"true" help:"Quiet period before regenerating, in milliseconds." default:"250"`
}

func paramEnricher() boa.ParamEnricher {
	return boa.ParamEnricherCombine(
		boa.ParamEnricherBool,
		boa.ParamEnricherName,
		boa.ParamEnricherShort,
	)
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	boa.CmdT[boa.NoParams]{
		Use:   "manifest",
		Short: "Maintain the _fileList.json track index",
		SubCmds: []*cobra.Command{
			generateCmd(),
			listCmd(),
			watchCmd(),
		},
	}.Run()
}

func generateCmd() *cobra.Command {
	return boa.CmdT[DirParams]{
		Use:         "generate",
		Short:       "Write the manifest for a music directory",
		ParamEnrich: paramEnricher(),
		RunFunc: func(params *DirParams, cmd *cobra.Command, args []string) {
			tracks, err := manifest.Generate(params.Dir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "generate: %v\n", err)
				os.Exit(1)
			}
			fmt.Printf("wrote %d tracks to %s/%s\n", len(tracks), params.Dir, manifest.FileName)
		},
	}.ToCobra()
}

func listCmd() *cobra.Command {
	return boa.CmdT[DirParams]{
		Use:         "list",
		Short:       "Show the manifest with track durations",
		ParamEnrich: paramEnricher(),
		RunFunc: func(params *DirParams, cmd *cobra.Command, args []string) {
			if err := runList(os.Stdout, params.Dir); err != nil {
				fmt.Fprintf(os.Stderr, "list: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}

func runList(out io.Writer, dir string) error {
	tracks, err := manifest.Load(dir)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		fmt.Fprintln(out, playback.NoTrackTitle)
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Track", "Duration"})

	var total time.Duration
	for i, row := range manifest.ProbeAll(dir, tracks) {
		length := playback.FormatDuration(row.Duration)
		if row.Err != nil {
			length = "?"
		}
		total += row.Duration
		t.AppendRow(table.Row{i + 1, row.Name, length})
	}
	t.AppendFooter(table.Row{"", "Total", playback.FormatDuration(total)})
	t.Render()
	return nil
}

func watchCmd() *cobra.Command {
	return boa.CmdT[WatchParams]{
		Use:         "watch",
		Short:       "Regenerate the manifest whenever the directory changes",
		ParamEnrich: paramEnricher(),
		RunFunc: func(params *WatchParams, cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			debounce := time.Duration(params.DebounceMs) * time.Millisecond
			err := manifest.Watch(ctx, params.Dir, debounce, func(tracks []string) {
				fmt.Printf("%s: %d tracks\n", time.Now().Format(time.TimeOnly), len(tracks))
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "watch: %v\n", err)
				os.Exit(1)
			}
		},
	}.ToCobra()
}
