package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/wrapgen/wrapgen"
)

// WatchCmd regenerates the client on every module change
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate the client whenever a module changes",
	Long: `Generate once, then watch source.dir and regenerate after every change.

Bursts of changes are collapsed (watch.debounce_ms) and regeneration is
capped at watch.max_runs_per_minute. A failed run is reported and the
previous client stays in place until the next successful run.

Press Ctrl+C to stop.`,
	RunE: runWatch,
}

func init() {
	addGenerateFlags(WatchCmd.Flags())
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := wrapgen.NewWatcher(optionsFor(cfg), wrapgen.WatchOptions{
		Debounce:         time.Duration(cfg.Watch.DebounceMS) * time.Millisecond,
		MaxRunsPerMinute: cfg.Watch.MaxRunsPerMinute,
		OnRun: func(summary *wrapgen.Summary, err error) {
			if err != nil {
				pterm.Error.Printf("%v\n", err)
				return
			}
			pterm.Success.Println(summary.String())
		},
	})
	if err != nil {
		return err
	}
	defer w.Close()

	pterm.Info.Printf("Watching %s\n", cfg.SourceDir())
	return w.Run(ctx)
}
