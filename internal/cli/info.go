package cli

import (
	"context"
	"fmt"

	urfave "github.com/urfave/cli/v3"

	"github.com/suykerbuyk/reba/internal/config"
	"github.com/suykerbuyk/reba/internal/help"
	"github.com/suykerbuyk/reba/internal/reba"
	"github.com/suykerbuyk/reba/internal/render"
)

func tablesCmd() *urfave.Command {
	return command(help.CmdTables, nil, func(ctx context.Context, cmd *urfave.Command) error {
		s := settingsFrom(ctx)
		tables := reba.Tables()
		switch s.format {
		case render.FormatJSON, render.FormatYAML:
			return render.Encode(stdout(cmd), s.format, tables)
		default:
			_, err := fmt.Fprint(stdout(cmd), render.Tables(tables))
			return err
		}
	})
}

func initCmd() *urfave.Command {
	return command(help.CmdInit, nil, func(_ context.Context, cmd *urfave.Command) error {
		path, created, err := config.WriteDefault()
		if err != nil {
			return err
		}
		if created {
			fmt.Fprintf(stdout(cmd), "created: %s\n", config.CompressHome(path))
		} else {
			fmt.Fprintf(stdout(cmd), "exists: %s (unchanged)\n", config.CompressHome(path))
		}
		return nil
	})
}

func versionCmd() *urfave.Command {
	return command(help.CmdVersion, nil, func(_ context.Context, cmd *urfave.Command) error {
		_, err := fmt.Fprintf(stdout(cmd), "reba %s\n", help.Version)
		return err
	})
}
