package cli

import (
	"context"
	"log/slog"

	"github.com/suykerbuyk/reba/internal/reba"
)

// logBreakdown traces how an assessment reached its final score at debug level.
func logBreakdown(a reba.Assessment) {
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	log := slog.Default().WithGroup("score")

	for _, f := range a.Components.Fields() {
		attrs := []any{"id", a.ID, "part", f.Name, "score", f.Value}
		if deg, ok := a.Angles[f.Name]; ok {
			attrs = append(attrs, "angle", deg)
		}
		log.Debug("part", attrs...)
	}

	r := a.Result
	log.Debug("tables", "id", a.ID,
		"posture_a", r.PostureA, "score_a", r.ScoreA,
		"posture_b", r.PostureB, "score_b", r.ScoreB,
		"table_c", r.TableCScore)
	log.Debug("final", "id", a.ID, "final", r.FinalScore, "risk", r.RiskLevel.Label())
}

func logBreakdowns(as []reba.Assessment) {
	for _, a := range as {
		logBreakdown(a)
	}
}
