package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/suykerbuyk/reba/internal/reba"
)

// Markdown renders an assessment as a markdown note with YAML frontmatter.
func Markdown(a reba.Assessment) string {
	var b strings.Builder
	r := a.Result

	// Frontmatter
	b.WriteString("---\n")
	b.WriteString("type: reba-assessment\n")
	if a.ID != "" {
		b.WriteString("id: " + strconv.Quote(a.ID) + "\n")
	}
	b.WriteString(fmt.Sprintf("final_score: %d\n", r.FinalScore))
	b.WriteString(fmt.Sprintf("risk: %s\n", r.RiskLevel.Label()))
	b.WriteString("---\n\n")

	// Title
	if a.ID != "" {
		b.WriteString(fmt.Sprintf("# REBA assessment: %s\n\n", a.ID))
	} else {
		b.WriteString("# REBA assessment\n\n")
	}
	if a.Note != "" {
		writeQuote(&b, a.Note)
	}

	// Components
	b.WriteString("## Components\n\n")
	if len(a.Angles) > 0 {
		b.WriteString("| Component | Angle | Score |\n")
		b.WriteString("|---|---:|---:|\n")
		for _, f := range a.Components.Fields() {
			angle := ""
			if deg, ok := a.Angles[f.Name]; ok {
				angle = formatAngle(deg)
			}
			b.WriteString(fmt.Sprintf("| %s | %s | %d |\n", displayName(f.Name), angle, f.Value))
		}
	} else {
		b.WriteString("| Component | Score |\n")
		b.WriteString("|---|---:|\n")
		for _, f := range a.Components.Fields() {
			b.WriteString(fmt.Sprintf("| %s | %d |\n", displayName(f.Name), f.Value))
		}
	}
	b.WriteString("\n")

	// Scores
	b.WriteString("## Scores\n\n")
	b.WriteString("| Step | Score |\n")
	b.WriteString("|---|---:|\n")
	b.WriteString(fmt.Sprintf("| Posture A (table A) | %d |\n", r.PostureA))
	b.WriteString(fmt.Sprintf("| Score A (+ force) | %d |\n", r.ScoreA))
	b.WriteString(fmt.Sprintf("| Posture B (table B) | %d |\n", r.PostureB))
	b.WriteString(fmt.Sprintf("| Score B (+ coupling) | %d |\n", r.ScoreB))
	b.WriteString(fmt.Sprintf("| Table C | %d |\n", r.TableCScore))
	b.WriteString(fmt.Sprintf("| Final (+ activity) | %d |\n", r.FinalScore))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("**Final score %d:** %s\n", r.FinalScore, r.RiskLevel))

	return b.String()
}

// writeQuote writes text as a blockquote, one quoted line per input line.
func writeQuote(b *strings.Builder, text string) {
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		if line == "" {
			b.WriteString(">\n")
			continue
		}
		b.WriteString("> " + line + "\n")
	}
	b.WriteString("\n")
}
