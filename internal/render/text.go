package render

import (
	"fmt"
	"strings"

	"github.com/suykerbuyk/reba/internal/reba"
)

// Text renders an assessment as aligned terminal output.
func Text(a reba.Assessment) string {
	var b strings.Builder

	if a.ID != "" {
		fmt.Fprintf(&b, "REBA assessment: %s\n", a.ID)
	} else {
		b.WriteString("REBA assessment\n")
	}
	if a.Note != "" {
		fmt.Fprintf(&b, "  %s\n", a.Note)
	}

	b.WriteString("\nComponents\n")
	for _, f := range a.Components.Fields() {
		if angle, ok := a.Angles[f.Name]; ok {
			fmt.Fprintf(&b, "  %-20s %2d   (%s)\n", displayName(f.Name), f.Value, formatAngle(angle))
		} else {
			fmt.Fprintf(&b, "  %-20s %2d\n", displayName(f.Name), f.Value)
		}
	}

	r := a.Result
	b.WriteString("\nScores\n")
	fmt.Fprintf(&b, "  %-20s %2d\n", "posture A", r.PostureA)
	fmt.Fprintf(&b, "  %-20s %2d\n", "score A", r.ScoreA)
	fmt.Fprintf(&b, "  %-20s %2d\n", "posture B", r.PostureB)
	fmt.Fprintf(&b, "  %-20s %2d\n", "score B", r.ScoreB)
	fmt.Fprintf(&b, "  %-20s %2d\n", "table C", r.TableCScore)
	fmt.Fprintf(&b, "  %-20s %2d\n", "final score", r.FinalScore)

	b.WriteString("\nRisk\n")
	fmt.Fprintf(&b, "  %s\n", r.RiskLevel)

	return b.String()
}

// Tables renders the REBA lookup tables.
func Tables(tables []reba.Table) string {
	var b strings.Builder
	for i, t := range tables {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s (%s)\n", t.Name, t.Columns)
		for _, row := range t.Rows {
			fmt.Fprintf(&b, "  %-24s", row.Label)
			for _, v := range row.Values {
				fmt.Fprintf(&b, "%3d", v)
			}
			b.WriteString("\n")
		}
	}
	return b.String()
}

func displayName(field string) string {
	return strings.ReplaceAll(field, "_", " ")
}

func formatAngle(deg float64) string {
	return fmt.Sprintf("%.1f°", deg)
}
