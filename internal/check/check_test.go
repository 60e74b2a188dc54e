package check

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suykerbuyk/reba/internal/reba"
)

func TestComponent_Pass(t *testing.T) {
	r := Component("neck", 2)
	assert.Equal(t, Pass, r.Status)
	assert.Equal(t, "2", r.Detail)

	assert.Equal(t, Pass, Component("force", 0).Status)
	assert.Equal(t, Pass, Component("upper_arm", 6).Status)
}

func TestComponent_WarnWhenClamped(t *testing.T) {
	r := Component("neck", 4)
	assert.Equal(t, Warn, r.Status)
	assert.Equal(t, "4 outside table range 1-3, looked up as 3", r.Detail)

	r = Component("wrist", 0)
	assert.Equal(t, Warn, r.Status)
	assert.Contains(t, r.Detail, "looked up as 1")
}

func TestComponent_FailWhenAdditive(t *testing.T) {
	r := Component("activity", 4)
	assert.Equal(t, Fail, r.Status)
	assert.Equal(t, "4 outside 0-3, final score will leave 1-15", r.Detail)

	assert.Equal(t, Fail, Component("coupling", -1).Status)
}

func TestComponent_Unknown(t *testing.T) {
	assert.Equal(t, Fail, Component("elbow", 1).Status)
}

func TestAngle(t *testing.T) {
	assert.Equal(t, Pass, Angle("trunk", -30).Status)
	assert.Equal(t, Pass, Angle("trunk", 180).Status)

	r := Angle("trunk", 181)
	assert.Equal(t, Warn, r.Status)
	assert.Equal(t, "trunk angle", r.Name)

	assert.Equal(t, Fail, Angle("neck", math.NaN()).Status)
	assert.Equal(t, Fail, Angle("neck", math.Inf(-1)).Status)
}

func TestAssessment_ScoresOnly(t *testing.T) {
	c := reba.ComponentScores{
		Neck: 4, Trunk: 5, Legs: 4, Force: 1,
		UpperArm: 6, LowerArm: 2, Wrist: 3, Coupling: 1,
		Activity: 2,
	}
	r := Assessment(reba.Assessment{ID: "x", Components: c, Result: reba.Assess(c)})

	require.Len(t, r.Results, 9)
	assert.Equal(t, Warn, r.Results[0].Status)
	assert.False(t, r.HasFailures())
}

func TestAssessment_WithAngles(t *testing.T) {
	a := reba.Evaluate("desk", reba.Posture{Trunk: reba.Trunk{Angle: 200}})
	r := Assessment(a)

	require.Len(t, r.Results, 15)
	assert.Equal(t, "neck angle", r.Results[9].Name)
	assert.Equal(t, "trunk angle", r.Results[10].Name)
	assert.Equal(t, Warn, r.Results[10].Status)
}

func TestReport_HasFailures(t *testing.T) {
	r := Report{Results: []Result{{Status: Pass}, {Status: Warn}}}
	assert.False(t, r.HasFailures())

	r.Results = append(r.Results, Result{Status: Fail})
	assert.True(t, r.HasFailures())
}

func TestReport_Format(t *testing.T) {
	r := Report{ID: "bay-1", Results: []Result{
		{Name: "neck", Status: Pass, Detail: "2"},
		{Name: "activity", Status: Fail, Detail: "5 outside 0-3"},
		{Name: "wrist", Status: Warn, Detail: "4 outside"},
	}}
	out := r.Format()

	assert.True(t, strings.HasPrefix(out, "reba check bay-1\n\n"))
	assert.Contains(t, out, "  pass  neck      2\n")
	assert.Contains(t, out, "  FAIL  activity  5 outside 0-3\n")
	assert.Contains(t, out, "1 passed, 1 warning, 1 failure")
}

func TestReport_FormatEmpty(t *testing.T) {
	assert.Equal(t, "reba check\n\n  no checks ran\n", Report{}.Format())
}
