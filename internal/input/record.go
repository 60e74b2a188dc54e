package input

import (
	"errors"
	"fmt"

	"github.com/suykerbuyk/reba/internal/reba"
)

// Record is one assessment as written in an input file. Exactly one of
// Scores or Posture must be set.
type Record struct {
	ID      string         `json:"id" yaml:"id" toml:"id"`
	Note    string         `json:"note" yaml:"note" toml:"note"`
	Scores  map[string]int `json:"scores" yaml:"scores" toml:"scores"`
	Posture *Posture       `json:"posture" yaml:"posture" toml:"posture"`
}

// Posture holds raw measurements. Every section is required.
type Posture struct {
	Neck     *Segment     `json:"neck" yaml:"neck" toml:"neck"`
	Trunk    *Segment     `json:"trunk" yaml:"trunk" toml:"trunk"`
	Legs     *Segment     `json:"legs" yaml:"legs" toml:"legs"`
	UpperArm *Segment     `json:"upper_arm" yaml:"upper_arm" toml:"upper_arm"`
	LowerArm *Segment     `json:"lower_arm" yaml:"lower_arm" toml:"lower_arm"`
	Wrist    *Segment     `json:"wrist" yaml:"wrist" toml:"wrist"`
	Load     *LoadSection `json:"load" yaml:"load" toml:"load"`
	Coupling *int         `json:"coupling" yaml:"coupling" toml:"coupling"`
	Activity *Activity    `json:"activity" yaml:"activity" toml:"activity"`
}

// Segment is a body part angle with its modifiers. Modifiers that do not
// apply to the part are ignored.
type Segment struct {
	Angle          *float64 `json:"angle" yaml:"angle" toml:"angle"`
	Twisted        bool     `json:"twisted" yaml:"twisted" toml:"twisted"`
	SideBending    bool     `json:"side_bending" yaml:"side_bending" toml:"side_bending"`
	LegRaised      bool     `json:"leg_raised" yaml:"leg_raised" toml:"leg_raised"`
	ShoulderRaised bool     `json:"shoulder_raised" yaml:"shoulder_raised" toml:"shoulder_raised"`
	Abducted       bool     `json:"abducted" yaml:"abducted" toml:"abducted"`
	Supported      bool     `json:"supported" yaml:"supported" toml:"supported"`
}

// LoadSection is the posture.load table: force level and shock.
type LoadSection struct {
	Level *int `json:"level" yaml:"level" toml:"level"`
	Shock bool `json:"shock" yaml:"shock" toml:"shock"`
}

type Activity struct {
	Static       bool `json:"static" yaml:"static" toml:"static"`
	Repeated     bool `json:"repeated" yaml:"repeated" toml:"repeated"`
	RapidChanges bool `json:"rapid_changes" yaml:"rapid_changes" toml:"rapid_changes"`
}

// Assess scores the record.
func (r Record) Assess() (reba.Assessment, error) {
	switch {
	case r.Scores != nil && r.Posture != nil:
		return reba.Assessment{}, errors.New("record has both scores and posture")

	case r.Scores != nil:
		c, err := reba.ParseComponents(r.Scores)
		if err != nil {
			var missing *reba.MissingFieldError
			if errors.As(err, &missing) {
				return reba.Assessment{}, &reba.MissingFieldError{Field: "scores." + missing.Field}
			}
			return reba.Assessment{}, err
		}
		return reba.Assessment{
			ID:         r.ID,
			Note:       r.Note,
			Components: c,
			Result:     reba.Assess(c),
		}, nil

	case r.Posture != nil:
		p, err := r.Posture.Measurements()
		if err != nil {
			return reba.Assessment{}, err
		}
		a := reba.Evaluate(r.ID, p)
		a.Note = r.Note
		return a, nil

	default:
		return reba.Assessment{}, &reba.MissingFieldError{Field: "scores"}
	}
}

// Measurements converts the decoded sections, failing on the first missing one.
func (p *Posture) Measurements() (reba.Posture, error) {
	var out reba.Posture

	neck, err := segment("neck", p.Neck)
	if err != nil {
		return out, err
	}
	out.Neck = reba.Neck{Angle: *neck.Angle, Twisted: neck.Twisted, SideBending: neck.SideBending}

	trunk, err := segment("trunk", p.Trunk)
	if err != nil {
		return out, err
	}
	out.Trunk = reba.Trunk{Angle: *trunk.Angle, Twisted: trunk.Twisted, SideBending: trunk.SideBending}

	legs, err := segment("legs", p.Legs)
	if err != nil {
		return out, err
	}
	out.Legs = reba.Legs{Angle: *legs.Angle, OneLegRaised: legs.LegRaised}

	if p.Load == nil {
		return out, &reba.MissingFieldError{Field: "posture.load"}
	}
	if p.Load.Level == nil {
		return out, &reba.MissingFieldError{Field: "posture.load.level"}
	}
	out.Load = reba.Load{Level: reba.ForceLevel(*p.Load.Level), Shock: p.Load.Shock}

	upper, err := segment("upper_arm", p.UpperArm)
	if err != nil {
		return out, err
	}
	out.UpperArm = reba.UpperArm{
		Angle:          *upper.Angle,
		ShoulderRaised: upper.ShoulderRaised,
		Abducted:       upper.Abducted,
		Supported:      upper.Supported,
	}

	lower, err := segment("lower_arm", p.LowerArm)
	if err != nil {
		return out, err
	}
	out.LowerArm = reba.LowerArm{Angle: *lower.Angle}

	wrist, err := segment("wrist", p.Wrist)
	if err != nil {
		return out, err
	}
	out.Wrist = reba.Wrist{Angle: *wrist.Angle, Bent: wrist.Twisted}

	if p.Coupling == nil {
		return out, &reba.MissingFieldError{Field: "posture.coupling"}
	}
	out.Coupling = reba.Coupling(*p.Coupling)

	if p.Activity == nil {
		return out, &reba.MissingFieldError{Field: "posture.activity"}
	}
	out.Activity = reba.Activity{
		Static:       p.Activity.Static,
		Repeated:     p.Activity.Repeated,
		RapidChanges: p.Activity.RapidChanges,
	}

	return out, nil
}

func segment(name string, s *Segment) (*Segment, error) {
	if s == nil {
		return nil, &reba.MissingFieldError{Field: "posture." + name}
	}
	if s.Angle == nil {
		return nil, &reba.MissingFieldError{Field: fmt.Sprintf("posture.%s.angle", name)}
	}
	return s, nil
}
