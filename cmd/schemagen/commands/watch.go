package commands

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/schemagen/generate"
)

var (
	watchTokens   []string
	watchOutput   string
	watchDebounce time.Duration
)

// WatchCmd regenerates on every change to the token files or the config.
var WatchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate whenever token files or the config change",
	Long: `Generate once, then watch the token files and the config file and
regenerate after each change. Bursts of changes are coalesced. A failed
run is logged and watching continues. Stop with Ctrl+C.

Examples:
  schemagen watch -t build/tokens.json
  schemagen watch --debounce 1s`,
	RunE: runWatch,
}

func init() {
	WatchCmd.Flags().StringSliceVarP(&watchTokens, "tokens", "t", nil, "Token stream files (default: tokens.files)")
	WatchCmd.Flags().StringVarP(&watchOutput, "output", "o", "", "Output directory (default: output.dir)")
	WatchCmd.Flags().DurationVar(&watchDebounce, "debounce", generate.DefaultDebounce, "Quiet period before regenerating")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, p, err := loadPipeline()
	if err != nil {
		return err
	}
	files, err := tokenFiles(p, watchTokens)
	if err != nil {
		return err
	}

	// The config is reloaded on every run so edits to it take effect.
	regenerate := func() error {
		cfg, p, err := loadPipeline()
		if err != nil {
			return err
		}
		dir := outputDir(cfg, watchOutput)
		res, err := p.Generate(dir, files...)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("Generated %d files in %s", len(res.Files), dir)
		return nil
	}
	if err := regenerate(); err != nil {
		return err
	}

	watched := append([]string{}, files...)
	if cfg.Path != "" {
		watched = append(watched, cfg.Path)
	}
	w, err := generate.NewWatcher(regenerate, watched...)
	if err != nil {
		return err
	}
	defer w.Close()
	w.SetDebounce(watchDebounce)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pterm.Info.Printfln("Watching %d files, press Ctrl+C to stop", len(watched))
	return w.Run(ctx)
}
