package help

import (
	"fmt"
	"strings"
	"time"
)

const (
	manSource = "reba " // followed by Version
	manTitle  = "REBA Manual"
)

const overview = `reba scores working postures with the Rapid Entire Body Assessment method.
Neck, trunk and legs go through table A, arms and wrist through table B, and the two
adjusted scores through table C. Activity is added last, giving a final score from 1
to 15 and one of four risk levels.

Out-of-range component scores are clamped to the table edge. Use reba check to see
which inputs were clamped.`

const configuration = `Settings are read from $XDG_CONFIG_HOME/reba/config.toml, falling back to
~/.config/reba/config.toml. reba init writes one with the defaults.

REBA_FORMAT, REBA_LOG_LEVEL and REBA_WORKERS take precedence over the file and may also
be placed in a .env file in the working directory. Command-line flags win over both.`

// manPage accumulates the roff source of one page.
type manPage struct {
	strings.Builder
}

// newManPage starts a page with its .TH line. An empty date means today.
func newManPage(name, date string) *manPage {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}
	p := &manPage{}
	fmt.Fprintf(p, ".TH %s 1 %q %q %q\n", strings.ToUpper(name), date, manSource+Version, manTitle)
	return p
}

func (p *manPage) section(title string) {
	p.WriteString(".SH " + title + "\n")
}

func (p *manPage) name(name, synopsis string) {
	p.section("NAME")
	fmt.Fprintf(p, "%s \\- %s\n", name, escapeRoff(synopsis))
}

// item writes a tagged paragraph with a bold tag.
func (p *manPage) item(tag, text string) {
	fmt.Fprintf(p, ".TP\n.B %s\n%s\n", escapeRoff(tag), escapeRoff(text))
}

// options lists positional args before flags. Nothing is written for a
// command that takes neither.
func (p *manPage) options(args []Arg, flags []Flag) {
	if len(args) == 0 && len(flags) == 0 {
		return
	}
	p.section("OPTIONS")
	for _, a := range args {
		p.item(a.Name, a.Desc)
	}
	for _, f := range flags {
		p.item(f.Name, f.Desc)
	}
}

// literal writes lines with filling turned off.
func (p *manPage) literal(lines []string) {
	p.WriteString(".nf\n")
	for _, l := range lines {
		p.WriteString(escapeRoff(l) + "\n")
	}
	p.WriteString(".fi\n")
}

func (p *manPage) seeAlso(refs []string) {
	if len(refs) == 0 {
		return
	}
	p.section("SEE ALSO")
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = formatManRef(r)
	}
	p.WriteString(strings.Join(out, ",\n") + "\n")
}

// FormatRoff renders the man page of one subcommand. Pass a fixed date for
// reproducible output.
func FormatRoff(c Command, date string) string {
	p := newManPage(c.ManName(), date)
	p.name(c.ManName(), c.Synopsis)

	p.section("SYNOPSIS")
	p.WriteString(".B " + escapeRoff(c.Usage) + "\n")

	if c.Description != "" {
		p.section("DESCRIPTION")
		writeRoffParagraphs(&p.Builder, c.Description)
	}
	p.options(c.Args, c.Flags)
	if len(c.Examples) > 0 {
		p.section("EXAMPLES")
		p.literal(c.Examples)
	}
	p.seeAlso(c.SeeAlso)

	return p.String()
}

// FormatRoffTopLevel renders reba.1: global options, one line per command
// and the configuration sources.
func FormatRoffTopLevel(top Command, subs []Command, date string) string {
	p := newManPage(top.ManName(), date)
	p.name(top.ManName(), top.Synopsis)

	p.section("SYNOPSIS")
	p.WriteString(".B reba\n.RI [ global-options ]\n.I command\n.RI [ options ]\n")

	p.section("DESCRIPTION")
	writeRoffParagraphs(&p.Builder, overview)

	p.options(nil, top.Flags)

	p.section("COMMANDS")
	refs := make([]string, len(subs))
	for i, s := range subs {
		fmt.Fprintf(p, ".TP\n.B \"%s\"\n%s\n", escapeRoff(s.tableUsage()), escapeRoff(s.Brief))
		refs[i] = s.ManName() + "(1)"
	}

	p.section("CONFIGURATION")
	writeRoffParagraphs(&p.Builder, configuration)

	p.seeAlso(refs)
	return p.String()
}

// escapeRoff quotes backslashes, protects lines starting with a dot and
// turns hyphens into roff minus signs so flags render as typed.
func escapeRoff(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n.", "\n\\&.")
	if strings.HasPrefix(s, ".") {
		s = `\&` + s
	}
	return strings.ReplaceAll(s, "-", `\-`)
}

// writeRoffParagraphs writes text line by line. A run of blank lines becomes
// one .PP break.
func writeRoffParagraphs(b *strings.Builder, text string) {
	blank := false
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			if !blank {
				b.WriteString(".PP\n")
			}
			blank = true
			continue
		}
		blank = false
		b.WriteString(escapeRoff(line) + "\n")
	}
}

// formatManRef turns "reba-check(1)" into ".BR reba\-check (1)". A ref
// without a section is set in bold.
func formatManRef(ref string) string {
	name, section, ok := strings.Cut(ref, "(")
	if !ok {
		return ".B " + escapeRoff(ref)
	}
	return fmt.Sprintf(".BR %s (%s", escapeRoff(name), section)
}
