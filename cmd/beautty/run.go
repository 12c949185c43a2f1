package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"beautty"
	"beautty/internal/config"
	clierrors "beautty/internal/errors"
	"beautty/internal/examples"
	"beautty/internal/logging"
	"beautty/teaview"
)

var runTea bool

var runCmd = &cobra.Command{
	Use:   "run <example>",
	Short: "Run an example interactively",
	Long: `Run an example full-screen. Press q or Ctrl+C to quit.

When a config file is in use it is watched, and style changes are applied to
the running example without restarting.`,
	Args: exampleArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := buildExample(args[0])
		if err != nil {
			return err
		}
		if runTea {
			if err := teaview.Run(d.Tree, teaview.WithKeys(d.Keys), teaview.WithEngine(cfg.Engine())); err != nil {
				return clierrors.TerminalError("running bubbletea program", err)
			}
			return nil
		}
		return runApp(d)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runTea, "tea", false, "host the example in a bubbletea program instead of the native loop")
	rootCmd.AddCommand(runCmd)
}

func runApp(d *examples.Demo) error {
	logger := logging.GetLogger()
	tty := beautty.NewTTY().SetFallbackSize(cfg.Terminal.Width, cfg.Terminal.Height)
	app := beautty.NewApp(tty, d.Tree,
		beautty.WithLogger(logger),
		beautty.WithEngine(cfg.Engine()),
	)
	for key, fn := range d.Keys {
		app.OnKey(key, fn)
	}

	if cfg.Path != "" {
		path := cfg.Path
		w, err := config.Watch(path, func() {
			app.Post(func() { reload(app, d, path) })
		}, func(err error) {
			logger.Warn("config watcher", zap.Error(err))
		})
		if err != nil {
			logger.Warn("config changes will not be picked up", zap.String("path", path), zap.Error(err))
		} else {
			defer w.Close()
		}
	}

	if err := app.Run(); err != nil {
		if errors.Is(err, beautty.ErrNotTerminal) {
			return clierrors.TerminalError("run needs an interactive terminal", err)
		}
		return clierrors.TerminalError("running example", err)
	}
	return nil
}

// reload runs on the App loop after the config file changed. Styles and the
// layout engine are replaced; the fallback terminal size is not.
func reload(app *beautty.App, d *examples.Demo, path string) {
	next, err := config.Load(path)
	if err != nil {
		logging.Warn("config reload failed, keeping previous styles", zap.String("path", path), zap.Error(err))
		return
	}
	for _, w := range next.StyleWarnings() {
		logging.Warn("config", zap.String("path", path), zap.String("warning", w))
	}
	cfg = next
	d.Restyle(next)
	app.SetEngine(next.Engine())
	logging.Info("config reloaded", zap.String("path", path))
}
