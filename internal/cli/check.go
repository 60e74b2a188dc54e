package cli

import (
	"context"
	"errors"
	"fmt"

	urfave "github.com/urfave/cli/v3"

	"github.com/suykerbuyk/reba/internal/check"
	"github.com/suykerbuyk/reba/internal/help"
	"github.com/suykerbuyk/reba/internal/input"
)

func checkCmd() *urfave.Command {
	return command(help.CmdCheck, nil, runCheck)
}

func runCheck(_ context.Context, cmd *urfave.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return errors.New("usage: " + help.CmdCheck.Usage)
	}

	records, err := input.Load(path)
	if err != nil {
		return err
	}

	w := stdout(cmd)
	failed := false
	for i, rec := range records {
		report := checkRecord(rec)
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprint(w, report.Format())
		if report.HasFailures() {
			failed = true
		}
	}

	if failed {
		return errChecksFailed
	}
	return nil
}

// checkRecord reports a record that cannot be scored as a single failure.
func checkRecord(rec input.Record) check.Report {
	a, err := rec.Assess()
	if err != nil {
		return check.Report{
			ID:      rec.ID,
			Results: []check.Result{{Name: "record", Status: check.Fail, Detail: err.Error()}},
		}
	}
	return check.Assessment(a)
}
