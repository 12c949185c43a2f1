package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"beautty/internal/config"
	clierrors "beautty/internal/errors"
	"beautty/internal/examples"
	"beautty/internal/logging"
)

var (
	cfgPath  string
	logLevel string
	logFile  string

	// cfg is loaded before every command runs.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "beautty",
	Short: "Flexbox layout and diffed rendering for the terminal",
	Long: `beautty lays out trees of styled boxes with a flexbox-style engine and
draws them through a double-buffered renderer that only rewrites changed cells.

The CLI runs the bundled example trees interactively, prints their computed
layout, or renders a single frame as text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgPath)
		if err != nil {
			return clierrors.ConfigError("loading config", err)
		}
		cfg = loaded

		level := logLevel
		if level == "" {
			level = cfg.Log.Level
		}
		file := logFile
		if file == "" {
			file = cfg.Log.File
		}
		if err := logging.Initialize(level, file); err != nil {
			return clierrors.ConfigError("initializing logging", err)
		}

		for _, w := range append(cfg.Warnings, cfg.StyleWarnings()...) {
			fmt.Fprintf(cmd.ErrOrStderr(), "beautty: %s: %s\n", cfg.Path, w)
			logging.Warn("config", zap.String("path", cfg.Path), zap.String("warning", w))
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (TOML or YAML; default $"+config.ConfigEnvVar+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default $"+logging.LogLevelEnvVar+", silent when unset)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", `log file, or "stderr" (default `+logging.DefaultPath()+")")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// exampleArg accepts exactly one known example name.
func exampleArg(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return clierrors.UsageError(fmt.Sprintf("%s needs one example name, got %d args", cmd.Name(), len(args)))
	}
	if _, ok := examples.Lookup(args[0]); !ok {
		return clierrors.ExampleNotFound(args[0])
	}
	return nil
}

// buildExample builds the named example styled by the config sheet.
func buildExample(name string) (*examples.Demo, error) {
	e, ok := examples.Lookup(name)
	if !ok {
		return nil, clierrors.ExampleNotFound(name)
	}
	d, err := e.New(cfg)
	if err != nil {
		return nil, clierrors.Wrap(clierrors.ExitGeneralError, "building example", err)
	}
	return d, nil
}

// viewport returns the flag size, falling back to the configured size.
func viewport(width, height int) (int, int) {
	if width <= 0 {
		width = cfg.Terminal.Width
	}
	if height <= 0 {
		height = cfg.Terminal.Height
	}
	return width, height
}
