package help

import "strings"

// Version is the reba release version, set at build time via -ldflags.
// Defaults to "dev" when built without version injection (e.g. `go run`).
var Version = "dev"

// Flag describes a command-line flag.
type Flag struct {
	Name string // e.g. "--neck <1-3>"
	Desc string
}

// FlagName returns the flag name without its leading dashes or value
// placeholder: "--neck <1-3>" → "neck".
func (f Flag) FlagName() string {
	name := strings.TrimLeft(f.Name, "-")
	if i := strings.IndexByte(name, ' '); i >= 0 {
		name = name[:i]
	}
	return name
}

// Arg describes a positional argument.
type Arg struct {
	Name     string
	Desc     string
	Optional bool
}

// Command describes a reba subcommand (or the top-level binary when Name is "").
type Command struct {
	Name        string   // "score", "batch", etc; "" for top-level
	Synopsis    string   // one-line description (lowercase)
	Brief       string   // short description for usage tables (capitalized)
	Usage       string   // full usage line
	TableUsage  string   // shortened usage for the top-level table (if different from Usage)
	Args        []Arg
	Flags       []Flag
	Description string   // multi-line prose (stored verbatim)
	Examples    []string // one per line, without leading 2-space indent
	SeeAlso     []string // man page cross-refs, e.g. "reba(1)"
}

func (c Command) tableUsage() string {
	if c.TableUsage != "" {
		return c.TableUsage
	}
	return c.Usage
}

// ManName returns the man page name: "reba" for top-level, "reba-<name>" for subs.
func (c Command) ManName() string {
	if c.Name == "" {
		return "reba"
	}
	return "reba-" + strings.ReplaceAll(c.Name, " ", "-")
}

// ArgsUsage returns the positional part of the usage line, e.g. "<file>".
func (c Command) ArgsUsage() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		if a.Optional {
			parts[i] = "[" + a.Name + "]"
		} else {
			parts[i] = "<" + a.Name + ">"
		}
	}
	return strings.Join(parts, " ")
}

// Details returns the description followed by the examples, for terminal help.
func (c Command) Details() string {
	var b strings.Builder
	b.WriteString(c.Description)
	if len(c.Examples) > 0 {
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("Examples:\n")
		for i, e := range c.Examples {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString("  " + e)
		}
	}
	return b.String()
}

// FlagDesc returns the description registered for the named flag.
func (c Command) FlagDesc(name string) string {
	for _, f := range c.Flags {
		if f.FlagName() == name {
			return f.Desc
		}
	}
	return ""
}

// TopLevel is the top-level reba command.
var TopLevel = Command{
	Name:     "",
	Synopsis: "Rapid Entire Body Assessment scorer",
	Flags: []Flag{
		{Name: "--config <path>", Desc: "Config file (default: ~/.config/reba/config.toml)"},
		{Name: "--format <name>", Desc: "Output format: text, json, yaml or markdown"},
		{Name: "--log-level <level>", Desc: "Log level: debug, info, warn or error"},
	},
}

var CmdScore = Command{
	Name:       "score",
	Synopsis:   "score component scores or an assessment file",
	Brief:      "Score component scores or an assessment file",
	Usage:      "reba score [file] [--neck N --trunk N --legs N --force N --upper-arm N --lower-arm N --wrist N --coupling N --activity N]",
	TableUsage: "reba score [file]",
	Args: []Arg{
		{Name: "file", Desc: "Assessment file (.json, .jsonl, .yaml, .toml, optionally .zst)", Optional: true},
	},
	Flags: []Flag{
		{Name: "--neck <1-3>", Desc: "Neck score"},
		{Name: "--trunk <1-5>", Desc: "Trunk score"},
		{Name: "--legs <1-4>", Desc: "Legs score"},
		{Name: "--force <0-3>", Desc: "Force/load score"},
		{Name: "--upper-arm <1-6>", Desc: "Upper arm score"},
		{Name: "--lower-arm <1-2>", Desc: "Lower arm score"},
		{Name: "--wrist <1-3>", Desc: "Wrist score"},
		{Name: "--coupling <0-3>", Desc: "Coupling score"},
		{Name: "--activity <0-3>", Desc: "Activity score"},
		{Name: "--id <name>", Desc: "Label for a flag-built assessment"},
	},
	Description: `Combines the nine component scores through tables A, B and C into a
final score from 1 to 15 and its risk level.

Without a file every component flag is required. Scores outside a
table's range are looked up at the nearest edge; run reba check to
find them.`,
	Examples: []string{
		"reba score --neck 3 --trunk 5 --legs 4 --force 1 --upper-arm 6 \\",
		"    --lower-arm 2 --wrist 3 --coupling 1 --activity 2",
		"reba score shift.yaml                 Score every record in a file",
		"reba --format json score line.json    Print results as JSON",
	},
	SeeAlso: []string{"reba(1)", "reba-posture(1)", "reba-check(1)"},
}

var CmdPosture = Command{
	Name:       "posture",
	Synopsis:   "score raw posture measurements",
	Brief:      "Score joint angles and modifiers",
	Usage:      "reba posture --neck-angle D --trunk-angle D --legs-angle D --upper-arm-angle D --lower-arm-angle D --wrist-angle D --force-level N --coupling N [modifiers]",
	TableUsage: "reba posture [flags]",
	Flags: []Flag{
		{Name: "--neck-angle <deg>", Desc: "Neck flexion, negative for extension"},
		{Name: "--neck-twisted", Desc: "Neck is twisted"},
		{Name: "--neck-side-bending", Desc: "Neck is side bending"},
		{Name: "--trunk-angle <deg>", Desc: "Trunk flexion, negative for extension"},
		{Name: "--trunk-twisted", Desc: "Trunk is twisted"},
		{Name: "--trunk-side-bending", Desc: "Trunk is side bending"},
		{Name: "--legs-angle <deg>", Desc: "Knee flexion"},
		{Name: "--leg-raised", Desc: "Weight on one leg"},
		{Name: "--upper-arm-angle <deg>", Desc: "Upper arm flexion, negative for extension"},
		{Name: "--shoulder-raised", Desc: "Shoulder is raised"},
		{Name: "--arm-abducted", Desc: "Upper arm is abducted"},
		{Name: "--arm-supported", Desc: "Arm is supported or the person is leaning"},
		{Name: "--lower-arm-angle <deg>", Desc: "Elbow flexion"},
		{Name: "--wrist-angle <deg>", Desc: "Wrist flexion or extension"},
		{Name: "--wrist-bent", Desc: "Wrist is deviated or twisted"},
		{Name: "--force-level <0-2>", Desc: "Load: 0 under 5 kg, 1 5-10 kg, 2 over 10 kg"},
		{Name: "--shock", Desc: "Shock or rapid buildup of force"},
		{Name: "--coupling <0-3>", Desc: "Hand hold: 0 good, 1 fair, 2 poor, 3 unacceptable"},
		{Name: "--static", Desc: "A body part is held for over a minute"},
		{Name: "--repeated", Desc: "Small range actions repeated over 4 times a minute"},
		{Name: "--rapid-changes", Desc: "Rapid large changes in posture"},
		{Name: "--id <name>", Desc: "Label for the assessment"},
	},
	Description: `Scores each body part from its measured angle and modifiers, then
combines the part scores the same way as reba score. Angles are in
degrees. All six angles, the force level and the coupling are required.`,
	Examples: []string{
		"reba posture --neck-angle 25 --trunk-angle 30 --legs-angle 45 \\",
		"    --upper-arm-angle 60 --lower-arm-angle 80 --wrist-angle 10 \\",
		"    --force-level 1 --coupling 1 --static",
	},
	SeeAlso: []string{"reba(1)", "reba-score(1)"},
}

var CmdCheck = Command{
	Name:     "check",
	Synopsis: "check assessment inputs against the table ranges",
	Brief:    "Check component scores and angles",
	Usage:    "reba check <file>",
	Args: []Arg{
		{Name: "file", Desc: "Assessment file to check"},
	},
	Description: `Prints a pass/warn/FAIL report for every record in the file:
  - table-indexed scores outside their table range warn, since the
    lookup uses the nearest edge
  - force, coupling or activity outside 0-3 fail
  - measured angles beyond 180 degrees warn
  - records that cannot be scored fail

Exit code 0 if all checks pass or warn, 1 if any check fails.`,
	SeeAlso: []string{"reba(1)", "reba-score(1)"},
}

var CmdBatch = Command{
	Name:     "batch",
	Synopsis: "score many assessment files and summarize them",
	Brief:    "Score files concurrently and summarize",
	Usage:    "reba batch <file>... [--workers N]",
	Args: []Arg{
		{Name: "file...", Desc: "Assessment files"},
	},
	Flags: []Flag{
		{Name: "--workers <n>", Desc: "Files scored at once (default from config)"},
	},
	Description: `Scores every record in every file, several files at a time, and prints
totals, the count per risk level and the highest scoring assessments.
The first file that fails to load or score stops the batch.

With --format json or yaml every assessment is printed with the summary.`,
	Examples: []string{
		"reba batch week/*.jsonl.zst",
		"reba --format yaml batch a.yaml b.toml",
	},
	SeeAlso: []string{"reba(1)", "reba-score(1)"},
}

var CmdWatch = Command{
	Name:     "watch",
	Synopsis: "re-score an assessment file when it changes",
	Brief:    "Re-score a file on every save",
	Usage:    "reba watch <file>",
	Args: []Arg{
		{Name: "file", Desc: "Assessment file to watch"},
	},
	Description: `Scores the file, then scores it again after each save. Bursts of
writes within the configured debounce interval are scored once.
Errors are logged and watching continues. Stop with Ctrl-C.`,
	SeeAlso: []string{"reba(1)", "reba-score(1)"},
}

var CmdTables = Command{
	Name:     "tables",
	Synopsis: "print the REBA lookup tables",
	Brief:    "Print tables A, B and C",
	Usage:    "reba tables",
	SeeAlso:  []string{"reba(1)"},
}

var CmdInit = Command{
	Name:     "init",
	Synopsis: "write a default config file",
	Brief:    "Write a default config",
	Usage:    "reba init",
	Description: `Writes ~/.config/reba/config.toml (or $XDG_CONFIG_HOME/reba/config.toml)
with the default settings. An existing file is left unchanged.`,
	SeeAlso: []string{"reba(1)"},
}

var CmdVersion = Command{
	Name:     "version",
	Synopsis: "print version",
	Brief:    "Print version",
	Usage:    "reba version",
	SeeAlso:  []string{"reba(1)"},
}

// Subcommands is the ordered list of all subcommands.
var Subcommands = []Command{
	CmdScore,
	CmdPosture,
	CmdCheck,
	CmdBatch,
	CmdWatch,
	CmdTables,
	CmdInit,
	CmdVersion,
}
