package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	urfave "github.com/urfave/cli/v3"

	"github.com/suykerbuyk/reba/internal/batch"
	"github.com/suykerbuyk/reba/internal/help"
	"github.com/suykerbuyk/reba/internal/input"
	"github.com/suykerbuyk/reba/internal/reba"
	"github.com/suykerbuyk/reba/internal/render"
)

const flagID = "id"

// componentFlag maps a component field to its flag, "upper_arm" → "upper-arm".
func componentFlag(field string) string {
	return strings.ReplaceAll(field, "_", "-")
}

func scoreCmd() *urfave.Command {
	h := help.CmdScore
	var flags []urfave.Flag
	for _, field := range reba.ComponentNames {
		name := componentFlag(field)
		flags = append(flags, &urfave.IntFlag{Name: name, Usage: h.FlagDesc(name)})
	}
	flags = append(flags, &urfave.StringFlag{Name: flagID, Usage: h.FlagDesc(flagID)})
	return command(h, flags, runScore)
}

func runScore(ctx context.Context, cmd *urfave.Command) error {
	s := settingsFrom(ctx)

	if n := cmd.Args().Len(); n > 1 {
		return fmt.Errorf("score takes at most one file, got %d", n)
	}

	if path := cmd.Args().First(); path != "" {
		for _, field := range reba.ComponentNames {
			if cmd.IsSet(componentFlag(field)) {
				return errors.New("give an assessment file or component flags, not both")
			}
		}
		scored, err := batch.File(path)
		if err != nil {
			return err
		}
		as := assessments(scored)
		logBreakdowns(as)
		return render.Assessments(stdout(cmd), s.format, as)
	}

	m := make(map[string]int)
	for _, field := range reba.ComponentNames {
		if name := componentFlag(field); cmd.IsSet(name) {
			m[field] = int(cmd.Int(name))
		}
	}
	c, err := reba.ParseComponents(m)
	if err != nil {
		return withFlagHint(err)
	}

	a := reba.Assessment{ID: cmd.String(flagID), Components: c, Result: reba.Assess(c)}
	logBreakdown(a)
	return render.Assessment(stdout(cmd), s.format, a)
}

// Posture flags that carry an angle, in body part order.
var angleParts = []string{"neck", "trunk", "legs", "upper-arm", "lower-arm", "wrist"}

func postureCmd() *urfave.Command {
	h := help.CmdPosture
	var flags []urfave.Flag
	for _, f := range h.Flags {
		name := f.FlagName()
		switch {
		case name == flagID:
			flags = append(flags, &urfave.StringFlag{Name: name, Usage: f.Desc})
		case strings.HasSuffix(name, "-angle"):
			flags = append(flags, &urfave.FloatFlag{Name: name, Usage: f.Desc})
		case name == "force-level" || name == "coupling":
			flags = append(flags, &urfave.IntFlag{Name: name, Usage: f.Desc})
		default:
			flags = append(flags, &urfave.BoolFlag{Name: name, Usage: f.Desc})
		}
	}
	return command(h, flags, runPosture)
}

func runPosture(ctx context.Context, cmd *urfave.Command) error {
	s := settingsFrom(ctx)

	a, err := input.Record{ID: cmd.String(flagID), Posture: postureFromFlags(cmd)}.Assess()
	if err != nil {
		return withFlagHint(err)
	}
	logBreakdown(a)
	return render.Assessment(stdout(cmd), s.format, a)
}

// postureFromFlags leaves unset angles, force level and coupling nil so that
// scoring reports them as missing.
func postureFromFlags(cmd *urfave.Command) *input.Posture {
	segs := make(map[string]*input.Segment, len(angleParts))
	for _, part := range angleParts {
		seg := &input.Segment{}
		if name := part + "-angle"; cmd.IsSet(name) {
			deg := cmd.Float(name)
			seg.Angle = &deg
		}
		segs[part] = seg
	}

	segs["neck"].Twisted = cmd.Bool("neck-twisted")
	segs["neck"].SideBending = cmd.Bool("neck-side-bending")
	segs["trunk"].Twisted = cmd.Bool("trunk-twisted")
	segs["trunk"].SideBending = cmd.Bool("trunk-side-bending")
	segs["legs"].LegRaised = cmd.Bool("leg-raised")
	segs["upper-arm"].ShoulderRaised = cmd.Bool("shoulder-raised")
	segs["upper-arm"].Abducted = cmd.Bool("arm-abducted")
	segs["upper-arm"].Supported = cmd.Bool("arm-supported")
	segs["wrist"].Twisted = cmd.Bool("wrist-bent")

	p := &input.Posture{
		Neck:     segs["neck"],
		Trunk:    segs["trunk"],
		Legs:     segs["legs"],
		UpperArm: segs["upper-arm"],
		LowerArm: segs["lower-arm"],
		Wrist:    segs["wrist"],
		Load:     &input.LoadSection{Shock: cmd.Bool("shock")},
		Activity: &input.Activity{
			Static:       cmd.Bool("static"),
			Repeated:     cmd.Bool("repeated"),
			RapidChanges: cmd.Bool("rapid-changes"),
		},
	}
	if cmd.IsSet("force-level") {
		level := int(cmd.Int("force-level"))
		p.Load.Level = &level
	}
	if cmd.IsSet("coupling") {
		coupling := int(cmd.Int("coupling"))
		p.Coupling = &coupling
	}
	return p
}

// withFlagHint names the flag that supplies a missing field. The
// MissingFieldError stays reachable through errors.As.
func withFlagHint(err error) error {
	var missing *reba.MissingFieldError
	if !errors.As(err, &missing) {
		return err
	}
	return fmt.Errorf("%w (set --%s)", err, flagFor(missing.Field))
}

func flagFor(field string) string {
	if field == "posture.load.level" {
		return "force-level"
	}
	field = strings.TrimPrefix(field, "posture.")
	return componentFlag(strings.ReplaceAll(field, ".", "-"))
}

func assessments(scored []batch.Scored) []reba.Assessment {
	out := make([]reba.Assessment, len(scored))
	for i, s := range scored {
		out[i] = s.Assessment
	}
	return out
}
