package stats

import (
	"fmt"
	"strings"
)

// Format renders a Summary as aligned terminal output.
func Format(s Summary) string {
	if s.Total == 0 {
		return "reba batch\n\n  No assessments scored.\n"
	}

	var b strings.Builder
	b.WriteString("reba batch\n")

	// Overview
	b.WriteString("\nOverview\n")
	fmt.Fprintf(&b, "  %-20s %d\n", "assessments", s.Total)
	fmt.Fprintf(&b, "  %-20s %d\n", "files", s.Files)
	fmt.Fprintf(&b, "  %-20s %.1f\n", "mean final score", s.MeanFinal)
	fmt.Fprintf(&b, "  %-20s %d\n", "max final score", s.MaxFinal)

	b.WriteString("\nRisk Levels\n")
	for _, r := range s.Risks {
		fmt.Fprintf(&b, "  %-20s %3d (%d%%)\n", r.Level.Label(), r.Count, int(r.Percent+0.5))
	}

	if len(s.Highest) > 0 {
		b.WriteString("\nHighest Risk\n")
		for _, h := range s.Highest {
			fmt.Fprintf(&b, "  %-24s %3d   %-10s %s\n",
				h.ID, h.Result.FinalScore, h.Result.RiskLevel.Label(), h.File)
		}
	}

	return b.String()
}
