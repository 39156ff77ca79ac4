// Package cli builds the command line shared by the demo programs.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"chosenoffset.com/windowdemos/internal/app"
	"chosenoffset.com/windowdemos/internal/config"
	"chosenoffset.com/windowdemos/internal/logging"
	"chosenoffset.com/windowdemos/internal/render"
	ebitenrender "chosenoffset.com/windowdemos/internal/render/ebiten"
	sdlrender "chosenoffset.com/windowdemos/internal/render/sdl"
)

// Backend constructors, replaced in tests.
var (
	newPlatform = sdlrender.NewPlatform
	newEngine   = ebitenrender.NewEngine
)

// Program describes one demo binary.
type Program struct {
	// Name is the command name and the log prefix.
	Name  string
	Short string
	Long  string

	// Build creates the game and run options from the loaded config.
	Build func(cfg *config.Config) (render.Game, app.Options)
}

// reportedError marks a failure that was already logged.
type reportedError struct {
	error
}

func (e reportedError) Unwrap() error { return e.error }

// Execute runs the program until it quits or receives SIGINT or SIGTERM,
// then exits with status 1 on failure.
func Execute(p Program) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := NewCommand(p).ExecuteContext(ctx)
	stop()
	if err != nil {
		var reported reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// NewCommand returns the cobra command for p.
func NewCommand(p Program) *cobra.Command {
	var (
		flagConfig   string
		flagBackend  string
		flagLogLevel string
	)

	cmd := &cobra.Command{
		Use:           p.Name,
		Short:         p.Short,
		Long:          p.Long,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, path, err := config.Load(flagConfig)
			if err != nil {
				return err
			}
			if flagBackend != "" {
				cfg.Backend = flagBackend
			}
			if flagLogLevel != "" {
				cfg.LogLevel = flagLogLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger, err := logging.New(cmd.ErrOrStderr(), p.Name, cfg.LogLevel)
			if err != nil {
				return err
			}
			if path == "" {
				logger.Debug("using built-in config")
			} else {
				logger.Debug("config loaded", "path", path)
			}

			game, opts := p.Build(cfg)
			opts.Logger = logger

			if err := run(cmd.Context(), cfg.Backend, game, opts); err != nil {
				logger.Error("program failed", "backend", cfg.Backend, "error", err)
				return reportedError{err}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flagConfig, "config", "c", "", "Path to config file (default: user config dir, then ./"+config.LocalPath+")")
	cmd.Flags().StringVar(&flagBackend, "backend", "", "Windowing backend: "+config.BackendEbiten+" or "+config.BackendSDL+" (overrides config)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn or error (overrides config)")
	return cmd
}

func run(ctx context.Context, backend string, game render.Game, opts app.Options) error {
	if backend == config.BackendSDL {
		return app.Run(ctx, newPlatform(), game, opts)
	}
	return app.RunEngine(ctx, newEngine(), game, opts)
}
