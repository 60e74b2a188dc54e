package stats

import (
	"sort"

	"github.com/suykerbuyk/reba/internal/batch"
	"github.com/suykerbuyk/reba/internal/reba"
)

// highestLimit caps the Highest list.
const highestLimit = 5

// Summary holds aggregate metrics over a batch of assessments.
type Summary struct {
	Total     int     `json:"total" yaml:"total"`
	Files     int     `json:"files" yaml:"files"`
	MeanFinal float64 `json:"mean_final" yaml:"mean_final"`
	MaxFinal  int     `json:"max_final" yaml:"max_final"`

	Risks   []RiskStats    `json:"risks" yaml:"risks"`
	Highest []batch.Scored `json:"highest" yaml:"highest"`
}

// RiskStats holds the count for one risk level.
type RiskStats struct {
	Level   reba.RiskLevel `json:"level" yaml:"level"`
	Count   int            `json:"count" yaml:"count"`
	Percent float64        `json:"percent" yaml:"percent"`
}

// Summarize builds a Summary from scored assessments.
func Summarize(scored []batch.Scored) Summary {
	var s Summary

	files := make(map[string]bool)
	counts := make(map[reba.RiskLevel]int)
	sum := 0

	for _, sc := range scored {
		s.Total++
		files[sc.File] = true
		counts[sc.Result.RiskLevel]++

		final := sc.Result.FinalScore
		sum += final
		if s.Total == 1 || final > s.MaxFinal {
			s.MaxFinal = final
		}
	}
	s.Files = len(files)

	if s.Total > 0 {
		s.MeanFinal = float64(sum) / float64(s.Total)
	}

	// Risk levels in ascending order, including empty ones
	for _, level := range reba.RiskLevels {
		rs := RiskStats{Level: level, Count: counts[level]}
		if s.Total > 0 {
			rs.Percent = float64(rs.Count) / float64(s.Total) * 100
		}
		s.Risks = append(s.Risks, rs)
	}

	// Highest final first, ties in input order
	s.Highest = append([]batch.Scored(nil), scored...)
	sort.SliceStable(s.Highest, func(i, j int) bool {
		return s.Highest[i].Result.FinalScore > s.Highest[j].Result.FinalScore
	})
	if len(s.Highest) > highestLimit {
		s.Highest = s.Highest[:highestLimit]
	}

	return s
}
