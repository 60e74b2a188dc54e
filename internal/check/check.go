package check

import (
	"fmt"
	"math"
	"strings"

	"github.com/suykerbuyk/reba/internal/reba"
)

// Status represents the outcome of a single check.
type Status int

const (
	Pass Status = iota
	Warn
	Fail
)

func (s Status) String() string {
	switch s {
	case Pass:
		return "pass"
	case Warn:
		return "warn"
	case Fail:
		return "FAIL"
	default:
		return "unknown"
	}
}

// Result holds the outcome of a single check.
type Result struct {
	Name   string
	Status Status
	Detail string
}

// Report aggregates all check results for one assessment.
type Report struct {
	ID      string
	Results []Result
}

// HasFailures returns true if any result has Fail status.
func (r Report) HasFailures() bool {
	for _, res := range r.Results {
		if res.Status == Fail {
			return true
		}
	}
	return false
}

// Format returns the human-readable report string.
func (r Report) Format() string {
	title := "reba check"
	if r.ID != "" {
		title += " " + r.ID
	}

	if len(r.Results) == 0 {
		return title + "\n\n  no checks ran\n"
	}

	// Find max name length for alignment.
	maxName := 0
	for _, res := range r.Results {
		if len(res.Name) > maxName {
			maxName = len(res.Name)
		}
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")

	var passed, warnings, failures int
	for _, res := range r.Results {
		switch res.Status {
		case Pass:
			passed++
		case Warn:
			warnings++
		case Fail:
			failures++
		}
		fmt.Fprintf(&b, "  %-4s  %-*s  %s\n", res.Status, maxName, res.Name, res.Detail)
	}

	fmt.Fprintf(&b, "\n%d passed, %d warning, %d failure\n", passed, warnings, failures)
	return b.String()
}

// maxAngle is the largest joint angle magnitude accepted without a warning.
const maxAngle = 180.0

// Assessment checks every component score against its table range and,
// when measured angles are present, each angle for plausibility.
func Assessment(a reba.Assessment) Report {
	r := Report{ID: a.ID}
	for _, f := range a.Components.Fields() {
		r.Results = append(r.Results, Component(f.Name, f.Value))
	}
	for _, name := range reba.ComponentNames {
		angle, ok := a.Angles[name]
		if !ok {
			continue
		}
		r.Results = append(r.Results, Angle(name, angle))
	}
	return r
}

// Component checks one component score. Table-indexed components outside
// their table range warn, since lookup clamps them. Additive components
// outside their range fail, since they shift the final score unclamped.
func Component(name string, value int) Result {
	b, ok := reba.BoundsFor(name)
	if !ok {
		return Result{Name: name, Status: Fail, Detail: "unknown component"}
	}
	if value >= b.Min && value <= b.Max {
		return Result{Name: name, Status: Pass, Detail: fmt.Sprintf("%d", value)}
	}
	if b.Clamped {
		nearest := min(max(value, b.Min), b.Max)
		return Result{
			Name:   name,
			Status: Warn,
			Detail: fmt.Sprintf("%d outside table range %d-%d, looked up as %d", value, b.Min, b.Max, nearest),
		}
	}
	return Result{
		Name:   name,
		Status: Fail,
		Detail: fmt.Sprintf("%d outside %d-%d, final score will leave 1-15", value, b.Min, b.Max),
	}
}

// Angle checks one measured angle.
func Angle(name string, deg float64) Result {
	label := name + " angle"
	switch {
	case math.IsNaN(deg) || math.IsInf(deg, 0):
		return Result{Name: label, Status: Fail, Detail: "not a number"}
	case math.Abs(deg) > maxAngle:
		return Result{Name: label, Status: Warn, Detail: fmt.Sprintf("%.1f° beyond ±%.0f°", deg, maxAngle)}
	default:
		return Result{Name: label, Status: Pass, Detail: fmt.Sprintf("%.1f°", deg)}
	}
}
