package reba

import "fmt"

// Component names, in canonical order.
const (
	FieldNeck     = "neck"
	FieldTrunk    = "trunk"
	FieldLegs     = "legs"
	FieldForce    = "force"
	FieldUpperArm = "upper_arm"
	FieldLowerArm = "lower_arm"
	FieldWrist    = "wrist"
	FieldCoupling = "coupling"
	FieldActivity = "activity"
)

// ComponentNames lists every component required by Assess.
var ComponentNames = []string{
	FieldNeck, FieldTrunk, FieldLegs, FieldForce,
	FieldUpperArm, FieldLowerArm, FieldWrist, FieldCoupling,
	FieldActivity,
}

// ComponentScores holds the nine reduced scores an assessment is built from.
type ComponentScores struct {
	Neck     int `json:"neck" yaml:"neck"`
	Trunk    int `json:"trunk" yaml:"trunk"`
	Legs     int `json:"legs" yaml:"legs"`
	Force    int `json:"force" yaml:"force"`
	UpperArm int `json:"upper_arm" yaml:"upper_arm"`
	LowerArm int `json:"lower_arm" yaml:"lower_arm"`
	Wrist    int `json:"wrist" yaml:"wrist"`
	Coupling int `json:"coupling" yaml:"coupling"`
	Activity int `json:"activity" yaml:"activity"`
}

// Field is a named component value.
type Field struct {
	Name  string
	Value int
}

// Fields returns the components in canonical order.
func (c ComponentScores) Fields() []Field {
	return []Field{
		{FieldNeck, c.Neck},
		{FieldTrunk, c.Trunk},
		{FieldLegs, c.Legs},
		{FieldForce, c.Force},
		{FieldUpperArm, c.UpperArm},
		{FieldLowerArm, c.LowerArm},
		{FieldWrist, c.Wrist},
		{FieldCoupling, c.Coupling},
		{FieldActivity, c.Activity},
	}
}

// ParseComponents builds ComponentScores from a keyed mapping. Every name in
// ComponentNames must be present; unknown keys are ignored.
func ParseComponents(m map[string]int) (ComponentScores, error) {
	for _, name := range ComponentNames {
		if _, ok := m[name]; !ok {
			return ComponentScores{}, &MissingFieldError{Field: name}
		}
	}
	return ComponentScores{
		Neck:     m[FieldNeck],
		Trunk:    m[FieldTrunk],
		Legs:     m[FieldLegs],
		Force:    m[FieldForce],
		UpperArm: m[FieldUpperArm],
		LowerArm: m[FieldLowerArm],
		Wrist:    m[FieldWrist],
		Coupling: m[FieldCoupling],
		Activity: m[FieldActivity],
	}, nil
}

// MissingFieldError reports a required input that was not supplied.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing required field %q", e.Field)
}

// RiskLevel is the action category for a final score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low Risk. Change May Be Needed"
	RiskMedium   RiskLevel = "Medium Risk. Further Investigation, Change Soon"
	RiskHigh     RiskLevel = "High Risk. Investigate and Implement Change Soon"
	RiskVeryHigh RiskLevel = "Very High Risk. Implement Change"
)

// RiskLevels lists the categories from lowest to highest.
var RiskLevels = []RiskLevel{RiskLow, RiskMedium, RiskHigh, RiskVeryHigh}

// Label returns a short lowercase name, e.g. "very high".
func (r RiskLevel) Label() string {
	switch r {
	case RiskLow:
		return "low"
	case RiskMedium:
		return "medium"
	case RiskHigh:
		return "high"
	case RiskVeryHigh:
		return "very high"
	default:
		return "unknown"
	}
}

// Result is the outcome of one assessment.
type Result struct {
	PostureA    int       `json:"posture_a" yaml:"posture_a"`
	ScoreA      int       `json:"score_a" yaml:"score_a"`
	PostureB    int       `json:"posture_b" yaml:"posture_b"`
	ScoreB      int       `json:"score_b" yaml:"score_b"`
	TableCScore int       `json:"table_c_score" yaml:"table_c_score"`
	FinalScore  int       `json:"final_score" yaml:"final_score"`
	RiskLevel   RiskLevel `json:"risk_level" yaml:"risk_level"`
}
