package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	urfave "github.com/urfave/cli/v3"

	"github.com/suykerbuyk/reba/internal/batch"
	"github.com/suykerbuyk/reba/internal/help"
	"github.com/suykerbuyk/reba/internal/render"
	"github.com/suykerbuyk/reba/internal/stats"
	"github.com/suykerbuyk/reba/internal/watch"
)

const flagWorkers = "workers"

// batchOutput is the json/yaml shape of a batch run.
type batchOutput struct {
	Summary     stats.Summary  `json:"summary" yaml:"summary"`
	Assessments []batch.Scored `json:"assessments" yaml:"assessments"`
}

func batchCmd() *urfave.Command {
	h := help.CmdBatch
	return command(h, []urfave.Flag{
		&urfave.IntFlag{Name: flagWorkers, Usage: h.FlagDesc(flagWorkers)},
	}, runBatch)
}

func runBatch(ctx context.Context, cmd *urfave.Command) error {
	s := settingsFrom(ctx)

	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return errors.New("usage: " + help.CmdBatch.Usage)
	}

	workers := s.cfg.Batch.Workers
	if cmd.IsSet(flagWorkers) {
		workers = int(cmd.Int(flagWorkers))
	}
	if workers < 1 {
		return fmt.Errorf("--workers must be positive, got %d", workers)
	}

	scored, err := batch.Run(ctx, paths, workers)
	if err != nil {
		return err
	}
	as := assessments(scored)
	logBreakdowns(as)

	w := stdout(cmd)
	summary := stats.Summarize(scored)
	switch s.format {
	case render.FormatText:
		_, err := fmt.Fprint(w, stats.Format(summary))
		return err
	case render.FormatMarkdown:
		return render.Assessments(w, s.format, as)
	default:
		return render.Encode(w, s.format, batchOutput{Summary: summary, Assessments: scored})
	}
}

func watchCmd() *urfave.Command {
	return command(help.CmdWatch, nil, runWatch)
}

func runWatch(ctx context.Context, cmd *urfave.Command) error {
	s := settingsFrom(ctx)

	path := cmd.Args().First()
	if path == "" {
		return errors.New("usage: " + help.CmdWatch.Usage)
	}

	w := stdout(cmd)
	rescore := func() error {
		scored, err := batch.File(path)
		if err != nil {
			return err
		}
		as := assessments(scored)
		logBreakdowns(as)
		return render.Assessments(w, s.format, as)
	}

	if err := rescore(); err != nil {
		slog.Error("score failed", "file", path, "error", err)
	}
	slog.Info("watching for changes", "file", path)

	return watch.File(ctx, path, s.cfg.Watch.Debounce(), func() error {
		fmt.Fprintln(w)
		return rescore()
	})
}
