package reba

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableA(t *testing.T) {
	assert.Equal(t, 1, TableA(1, 1, 1))
	assert.Equal(t, 5, TableA(2, 3, 2))
	assert.Equal(t, 9, TableA(3, 5, 4))
	assert.Equal(t, 3, TableA(3, 1, 2))
}

func TestTableB(t *testing.T) {
	assert.Equal(t, 1, TableB(1, 1, 1))
	assert.Equal(t, 5, TableB(4, 1, 2))
	assert.Equal(t, 9, TableB(6, 2, 3))
	assert.Equal(t, 2, TableB(1, 1, 3))
}

func TestTableC(t *testing.T) {
	assert.Equal(t, 1, TableC(1, 1))
	assert.Equal(t, 10, TableC(6, 9))
	assert.Equal(t, 12, TableC(10, 10))
	assert.Equal(t, 7, TableC(1, 12))
}

func TestTables_ClampOutOfRange(t *testing.T) {
	assert.Equal(t, TableA(3, 1, 1), TableA(99, 1, 1))
	assert.Equal(t, TableA(1, 1, 1), TableA(-5, 0, -1))
	assert.Equal(t, TableA(3, 5, 4), TableA(4, 7, 5))
	assert.Equal(t, TableB(6, 2, 3), TableB(99, 99, 99))
	assert.Equal(t, TableB(1, 1, 1), TableB(0, 0, 0))
	assert.Equal(t, 12, TableC(13, 1))
	assert.Equal(t, 1, TableC(0, -3))
}

func TestTables_ReturnsCopies(t *testing.T) {
	tables := Tables()
	require.Len(t, tables, 3)
	assert.Len(t, tables[0].Rows, 15)
	assert.Len(t, tables[1].Rows, 12)
	assert.Len(t, tables[2].Rows, 12)
	assert.Equal(t, "neck 1, trunk 1", tables[0].Rows[0].Label)
	assert.Equal(t, "score A 12", tables[2].Rows[11].Label)

	tables[0].Rows[0].Values[0] = 99
	assert.Equal(t, 1, TableA(1, 1, 1))
}

func TestBoundsFor(t *testing.T) {
	b, ok := BoundsFor(FieldNeck)
	require.True(t, ok)
	assert.Equal(t, Bounds{Min: 1, Max: 3, Clamped: true}, b)

	b, ok = BoundsFor(FieldUpperArm)
	require.True(t, ok)
	assert.Equal(t, 6, b.Max)

	b, ok = BoundsFor(FieldForce)
	require.True(t, ok)
	assert.Equal(t, Bounds{Min: 0, Max: 3}, b)

	_, ok = BoundsFor("elbow")
	assert.False(t, ok)
}

func TestAssess_AllMinimum(t *testing.T) {
	got := Assess(ComponentScores{
		Neck: 1, Trunk: 1, Legs: 1, Force: 0,
		UpperArm: 1, LowerArm: 1, Wrist: 1, Coupling: 0,
		Activity: 0,
	})
	assert.Equal(t, Result{
		PostureA:    1,
		ScoreA:      1,
		PostureB:    1,
		ScoreB:      1,
		TableCScore: 1,
		FinalScore:  1,
		RiskLevel:   RiskLow,
	}, got)
}

func TestAssess_VeryHigh(t *testing.T) {
	got := Assess(ComponentScores{
		Neck: 3, Trunk: 5, Legs: 4, Force: 1,
		UpperArm: 6, LowerArm: 2, Wrist: 3, Coupling: 1,
		Activity: 2,
	})
	assert.Equal(t, Result{
		PostureA:    9,
		ScoreA:      10,
		PostureB:    9,
		ScoreB:      10,
		TableCScore: 12,
		FinalScore:  14,
		RiskLevel:   RiskVeryHigh,
	}, got)
}

func TestAssess_FromPosture(t *testing.T) {
	p := Posture{
		Neck:     Neck{Angle: 25},
		Trunk:    Trunk{Angle: 30},
		Legs:     Legs{Angle: 45},
		UpperArm: UpperArm{Angle: 60},
		LowerArm: LowerArm{Angle: 80},
		Wrist:    Wrist{Angle: 10},
		Load:     Load{Level: ForceMedium},
		Coupling: CouplingFair,
		Activity: Activity{Static: true},
	}
	c := p.Components()
	assert.Equal(t, ComponentScores{
		Neck: 2, Trunk: 3, Legs: 2, Force: 1,
		UpperArm: 3, LowerArm: 1, Wrist: 1, Coupling: 1,
		Activity: 1,
	}, c)

	got := Assess(c)
	assert.Equal(t, 5, got.PostureA)
	assert.Equal(t, 6, got.ScoreA)
	assert.Equal(t, 3, got.PostureB)
	assert.Equal(t, 4, got.ScoreB)
	assert.Equal(t, 7, got.TableCScore)
	assert.Equal(t, 8, got.FinalScore)
	assert.Equal(t, RiskHigh, got.RiskLevel)
}

func TestPosture_Angles(t *testing.T) {
	p := Posture{Neck: Neck{Angle: -10}, Wrist: Wrist{Angle: 22}}
	angles := p.Angles()
	assert.Len(t, angles, 6)
	assert.Equal(t, -10.0, angles[FieldNeck])
	assert.Equal(t, 22.0, angles[FieldWrist])
}

func TestClassify_Boundaries(t *testing.T) {
	assert.Equal(t, RiskLow, Classify(1))
	assert.Equal(t, RiskLow, Classify(3))
	assert.Equal(t, RiskMedium, Classify(4))
	assert.Equal(t, RiskMedium, Classify(7))
	assert.Equal(t, RiskHigh, Classify(8))
	assert.Equal(t, RiskHigh, Classify(10))
	assert.Equal(t, RiskVeryHigh, Classify(11))
	assert.Equal(t, RiskVeryHigh, Classify(15))
}

func TestRiskLevel_Label(t *testing.T) {
	assert.Equal(t, "low", RiskLow.Label())
	assert.Equal(t, "very high", RiskVeryHigh.Label())
	assert.Equal(t, "unknown", RiskLevel("x").Label())
}

func fullMap() map[string]int {
	return map[string]int{
		"neck": 3, "trunk": 5, "legs": 4, "force": 1,
		"upper_arm": 6, "lower_arm": 2, "wrist": 3, "coupling": 1,
		"activity": 2,
	}
}

func TestAssessMap(t *testing.T) {
	got, err := AssessMap(fullMap())
	require.NoError(t, err)
	assert.Equal(t, 14, got.FinalScore)
}

func TestAssessMap_MissingField(t *testing.T) {
	m := fullMap()
	delete(m, "wrist")

	got, err := AssessMap(m)
	require.Error(t, err)
	assert.Equal(t, Result{}, got)

	var missing *MissingFieldError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "wrist", missing.Field)
	assert.Equal(t, `missing required field "wrist"`, err.Error())
}

func TestParseComponents_FirstMissingInOrder(t *testing.T) {
	m := fullMap()
	delete(m, "activity")
	delete(m, "legs")

	_, err := ParseComponents(m)
	var missing *MissingFieldError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "legs", missing.Field)
}

func TestParseComponents_IgnoresUnknownKeys(t *testing.T) {
	m := fullMap()
	m["elbow"] = 7

	c, err := ParseComponents(m)
	require.NoError(t, err)
	assert.Equal(t, 6, c.UpperArm)
	assert.Len(t, c.Fields(), len(ComponentNames))
	assert.Equal(t, Field{Name: "upper_arm", Value: 6}, c.Fields()[4])
}

func TestEvaluate(t *testing.T) {
	p := Posture{
		Neck:     Neck{Angle: 10},
		Trunk:    Trunk{Angle: 0},
		Legs:     Legs{Angle: 5},
		UpperArm: UpperArm{Angle: 15},
		LowerArm: LowerArm{Angle: 90},
		Wrist:    Wrist{Angle: 5},
	}
	a := Evaluate("desk", p)
	assert.Equal(t, "desk", a.ID)
	assert.Equal(t, 10.0, a.Angles[FieldNeck])
	assert.Equal(t, 1, a.Result.FinalScore)
	assert.Equal(t, RiskLow, a.Result.RiskLevel)
}
