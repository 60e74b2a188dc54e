package reba

// Assess combines component scores into the final REBA score.
func Assess(c ComponentScores) Result {
	postureA := TableA(c.Neck, c.Trunk, c.Legs)
	scoreA := postureA + c.Force

	postureB := TableB(c.UpperArm, c.LowerArm, c.Wrist)
	scoreB := postureB + c.Coupling

	tableC := TableC(scoreA, scoreB)
	final := tableC + c.Activity

	return Result{
		PostureA:    postureA,
		ScoreA:      scoreA,
		PostureB:    postureB,
		ScoreB:      scoreB,
		TableCScore: tableC,
		FinalScore:  final,
		RiskLevel:   Classify(final),
	}
}

// AssessMap is Assess over a keyed mapping. It fails before any lookup when a
// component is missing.
func AssessMap(m map[string]int) (Result, error) {
	c, err := ParseComponents(m)
	if err != nil {
		return Result{}, err
	}
	return Assess(c), nil
}

// Classify maps a final score to its risk level.
func Classify(final int) RiskLevel {
	switch {
	case final >= 11:
		return RiskVeryHigh
	case final >= 8:
		return RiskHigh
	case final >= 4:
		return RiskMedium
	default:
		return RiskLow
	}
}

// Assessment is a labelled, scored input as reported to the user.
type Assessment struct {
	ID         string             `json:"id" yaml:"id"`
	Note       string             `json:"note,omitempty" yaml:"note,omitempty"`
	Angles     map[string]float64 `json:"angles,omitempty" yaml:"angles,omitempty"`
	Components ComponentScores    `json:"components" yaml:"components"`
	Result     Result             `json:"result" yaml:"result"`
}

// Evaluate scores measured posture and keeps the angles for reporting.
func Evaluate(id string, p Posture) Assessment {
	c := p.Components()
	return Assessment{
		ID:         id,
		Angles:     p.Angles(),
		Components: c,
		Result:     Assess(c),
	}
}
