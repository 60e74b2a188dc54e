package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	urfave "github.com/urfave/cli/v3"

	"github.com/suykerbuyk/reba/internal/config"
	"github.com/suykerbuyk/reba/internal/help"
	"github.com/suykerbuyk/reba/internal/logging"
	"github.com/suykerbuyk/reba/internal/render"
)

const (
	flagConfig   = "config"
	flagFormat   = "format"
	flagLogLevel = "log-level"
)

// errChecksFailed is returned by check so the process exits 1.
var errChecksFailed = errors.New("one or more checks failed")

// settings is the resolved configuration handed to every action.
type settings struct {
	cfg    config.Config
	format render.Format
}

type settingsKey struct{}

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "reba: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// New builds the reba command tree.
func New() *urfave.Command {
	return &urfave.Command{
		Name:            "reba",
		Usage:           help.TopLevel.Synopsis,
		Version:         help.Version,
		HideHelpCommand: true,
		Flags: []urfave.Flag{
			&urfave.StringFlag{Name: flagConfig, Usage: help.TopLevel.FlagDesc(flagConfig)},
			&urfave.StringFlag{Name: flagFormat, Usage: help.TopLevel.FlagDesc(flagFormat)},
			&urfave.StringFlag{Name: flagLogLevel, Usage: help.TopLevel.FlagDesc(flagLogLevel)},
		},
		Commands: []*urfave.Command{
			scoreCmd(),
			postureCmd(),
			checkCmd(),
			batchCmd(),
			watchCmd(),
			tablesCmd(),
			initCmd(),
			versionCmd(),
		},
		Before: before,
		// Errors are reported once, by Execute.
		ExitErrHandler: func(context.Context, *urfave.Command, error) {},
	}
}

// before loads config, applies the global flags over it and installs the logger.
func before(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
	cfg, err := config.Load(cmd.String(flagConfig))
	if err != nil {
		return ctx, fmt.Errorf("load config: %w", err)
	}
	if cmd.IsSet(flagFormat) {
		cfg.Output.Format = cmd.String(flagFormat)
	}
	if cmd.IsSet(flagLogLevel) {
		cfg.Log.Level = cmd.String(flagLogLevel)
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}
	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		return ctx, err
	}

	level := logging.ParseLogLevel(cfg.Log.Level)
	slog.SetDefault(slog.New(logging.NewCLIHandler(stderr(cmd), level)))
	slog.Debug("config", "format", format, "workers", cfg.Batch.Workers, "debounce", cfg.Watch.Debounce())

	return context.WithValue(ctx, settingsKey{}, &settings{cfg: cfg, format: format}), nil
}

func settingsFrom(ctx context.Context) *settings {
	if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
		return s
	}
	return &settings{cfg: config.DefaultConfig(), format: render.FormatText}
}

// command fills the descriptive fields of a subcommand from its help entry.
func command(h help.Command, flags []urfave.Flag, action urfave.ActionFunc) *urfave.Command {
	return &urfave.Command{
		Name:        h.Name,
		Usage:       h.Brief,
		UsageText:   h.Usage,
		ArgsUsage:   h.ArgsUsage(),
		Description: h.Details(),
		Flags:       flags,
		Action:      action,
	}
}

func stdout(cmd *urfave.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func stderr(cmd *urfave.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
