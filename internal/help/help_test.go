package help

import (
	"strings"
	"testing"
)

const fixedDate = "2026-10-17"

func TestManName(t *testing.T) {
	if got := TopLevel.ManName(); got != "reba" {
		t.Errorf("TopLevel.ManName() = %q, want reba", got)
	}
	if got := CmdBatch.ManName(); got != "reba-batch" {
		t.Errorf("CmdBatch.ManName() = %q, want reba-batch", got)
	}
	if got := (Command{Name: "a b"}).ManName(); got != "reba-a-b" {
		t.Errorf("ManName with space = %q, want reba-a-b", got)
	}
}

func TestFlagName(t *testing.T) {
	tests := map[string]string{
		"--neck <1-3>":   "neck",
		"--wrist-bent":   "wrist-bent",
		"--workers <n>":  "workers",
		"-x":             "x",
		"--id <name> ok": "id",
	}
	for in, want := range tests {
		if got := (Flag{Name: in}).FlagName(); got != want {
			t.Errorf("FlagName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFlagDesc(t *testing.T) {
	if got := CmdScore.FlagDesc("upper-arm"); got != "Upper arm score" {
		t.Errorf("FlagDesc(upper-arm) = %q", got)
	}
	if got := CmdScore.FlagDesc("elbow"); got != "" {
		t.Errorf("FlagDesc(elbow) = %q, want empty", got)
	}
}

func TestArgsUsage(t *testing.T) {
	if got := CmdScore.ArgsUsage(); got != "[file]" {
		t.Errorf("CmdScore.ArgsUsage() = %q", got)
	}
	if got := CmdBatch.ArgsUsage(); got != "<file...>" {
		t.Errorf("CmdBatch.ArgsUsage() = %q", got)
	}
	if got := CmdTables.ArgsUsage(); got != "" {
		t.Errorf("CmdTables.ArgsUsage() = %q", got)
	}
}

func TestDetails(t *testing.T) {
	c := Command{Description: "Does a thing.", Examples: []string{"reba a", "reba b"}}
	want := "Does a thing.\n\nExamples:\n  reba a\n  reba b"
	if got := c.Details(); got != want {
		t.Errorf("Details() = %q, want %q", got, want)
	}

	c = Command{Examples: []string{"reba a"}}
	if got := c.Details(); got != "Examples:\n  reba a" {
		t.Errorf("Details() without description = %q", got)
	}

	if got := CmdTables.Details(); got != "" {
		t.Errorf("CmdTables.Details() = %q, want empty", got)
	}
}

func TestSubcommandsComplete(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Subcommands {
		if c.Name == "" || c.Synopsis == "" || c.Brief == "" || c.Usage == "" {
			t.Errorf("subcommand %q has empty name, synopsis, brief or usage", c.Name)
		}
		if !strings.HasPrefix(c.Usage, "reba "+c.Name) {
			t.Errorf("subcommand %q usage %q does not start with its name", c.Name, c.Usage)
		}
		if seen[c.Name] {
			t.Errorf("duplicate subcommand %q", c.Name)
		}
		seen[c.Name] = true
	}
	for _, name := range []string{"score", "posture", "check", "batch", "watch", "tables", "init", "version"} {
		if !seen[name] {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestFormatRoffStructure(t *testing.T) {
	for _, cmd := range Subcommands {
		t.Run(cmd.Name, func(t *testing.T) {
			out := FormatRoff(cmd, fixedDate)

			for _, section := range []string{".TH", ".SH NAME", ".SH SYNOPSIS"} {
				if !strings.Contains(out, section) {
					t.Errorf("FormatRoff(%q) missing required section %q", cmd.Name, section)
				}
			}

			expectedTH := strings.ToUpper(cmd.ManName())
			if !strings.Contains(out, ".TH "+expectedTH+" 1 \""+fixedDate+"\"") {
				t.Errorf("FormatRoff(%q) .TH should contain %q and the date", cmd.Name, expectedTH)
			}

			if cmd.Description != "" && !strings.Contains(out, ".SH DESCRIPTION") {
				t.Errorf("FormatRoff(%q) has Description but missing .SH DESCRIPTION", cmd.Name)
			}
			if (len(cmd.Args) > 0 || len(cmd.Flags) > 0) && !strings.Contains(out, ".SH OPTIONS") {
				t.Errorf("FormatRoff(%q) has Args/Flags but missing .SH OPTIONS", cmd.Name)
			}
			if len(cmd.Args) == 0 && len(cmd.Flags) == 0 && strings.Contains(out, ".SH OPTIONS") {
				t.Errorf("FormatRoff(%q) has no Args/Flags but prints .SH OPTIONS", cmd.Name)
			}
			if len(cmd.Examples) > 0 && !strings.Contains(out, ".SH EXAMPLES\n.nf\n") {
				t.Errorf("FormatRoff(%q) has Examples but missing .SH EXAMPLES", cmd.Name)
			}
			if len(cmd.SeeAlso) > 0 && !strings.Contains(out, ".SH SEE ALSO\n.BR reba (1)") {
				t.Errorf("FormatRoff(%q) has SeeAlso but missing .SH SEE ALSO", cmd.Name)
			}
		})
	}
}

func TestFormatRoffTopLevelStructure(t *testing.T) {
	out := FormatRoffTopLevel(TopLevel, Subcommands, fixedDate)

	required := []string{
		".TH REBA 1",
		".SH NAME\nreba \\- Rapid Entire Body Assessment scorer\n",
		".SH SYNOPSIS",
		".SH DESCRIPTION",
		".SH OPTIONS",
		".SH COMMANDS",
		".SH CONFIGURATION",
		".SH SEE ALSO",
		".BR reba\\-version (1)\n",
	}
	for _, section := range required {
		if !strings.Contains(out, section) {
			t.Errorf("FormatRoffTopLevel missing %q", section)
		}
	}

	for _, cmd := range Subcommands {
		escaped := escapeRoff(cmd.Brief)
		if !strings.Contains(out, escaped) {
			t.Errorf("FormatRoffTopLevel missing subcommand brief %q (escaped: %q)", cmd.Brief, escaped)
		}
	}
}

func TestFormatRoff_TableUsage(t *testing.T) {
	out := FormatRoffTopLevel(TopLevel, []Command{CmdScore}, fixedDate)
	if !strings.Contains(out, `.B "reba score [file]"`) {
		t.Errorf("top-level COMMANDS should use the short usage, got:\n%s", out)
	}
}

func TestEscapeRoff(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"plain", "plain"},
		{"--neck", `\-\-neck`},
		{`a\b`, `a\\b`},
		{".hidden", `\&.hidden`},
		{"x\n.y", "x\n\\&.y"},
	}
	for _, tt := range tests {
		if got := escapeRoff(tt.in); got != tt.want {
			t.Errorf("escapeRoff(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriteRoffParagraphs(t *testing.T) {
	var b strings.Builder
	writeRoffParagraphs(&b, "one\n\n\ntwo")
	if got := b.String(); got != "one\n.PP\ntwo\n" {
		t.Errorf("writeRoffParagraphs = %q", got)
	}
}

func TestFormatManRef(t *testing.T) {
	if got := formatManRef("reba-check(1)"); got != `.BR reba\-check (1)` {
		t.Errorf("formatManRef = %q", got)
	}
	if got := formatManRef("reba"); got != ".B reba" {
		t.Errorf("formatManRef without section = %q", got)
	}
}

func TestFormatRoffTopLevelConfiguration(t *testing.T) {
	out := FormatRoffTopLevel(TopLevel, Subcommands, fixedDate)
	_, section, ok := strings.Cut(out, ".SH CONFIGURATION\n")
	if !ok {
		t.Fatal("missing CONFIGURATION section")
	}
	section, _, _ = strings.Cut(section, ".SH ")

	for _, want := range []string{
		"$XDG_CONFIG_HOME/reba/config.toml",
		"REBA_FORMAT, REBA_LOG_LEVEL and REBA_WORKERS",
		".PP\n",
		`Command\-line flags win over both.`,
	} {
		if !strings.Contains(section, want) {
			t.Errorf("CONFIGURATION missing %q, got:\n%s", want, section)
		}
	}
}

func TestNewManPageDefaultsDate(t *testing.T) {
	p := newManPage("reba-tables", "")
	if !strings.HasPrefix(p.String(), `.TH REBA-TABLES 1 "2`) {
		t.Errorf("header = %q", p.String())
	}
	if !strings.Contains(p.String(), `"REBA Manual"`) {
		t.Errorf("header missing manual title: %q", p.String())
	}
}
