package batch

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/suykerbuyk/reba/internal/input"
	"github.com/suykerbuyk/reba/internal/reba"
)

// Scored is one assessment together with the file it was read from.
type Scored struct {
	File            string `json:"file" yaml:"file"`
	reba.Assessment `yaml:",inline"`
}

// Run scores every record in paths, at most workers files at a time.
// Results keep the order of paths and, within a file, the record order.
// The first failure cancels files that have not started yet.
func Run(ctx context.Context, paths []string, workers int) ([]Scored, error) {
	if workers < 1 {
		workers = 1
	}

	perFile := make([][]Scored, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			scored, err := File(path)
			if err != nil {
				return err
			}
			perFile[i] = scored
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []Scored
	for _, scored := range perFile {
		out = append(out, scored...)
	}
	return out, nil
}

// File loads and scores every record in one file.
func File(path string) ([]Scored, error) {
	records, err := input.Load(path)
	if err != nil {
		return nil, err
	}

	out := make([]Scored, 0, len(records))
	for _, rec := range records {
		a, err := rec.Assess()
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", path, rec.ID, err)
		}
		out = append(out, Scored{File: path, Assessment: a})
	}

	slog.Debug("scored file", "file", path, "assessments", len(out))
	return out, nil
}
