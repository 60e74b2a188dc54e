package reba

// Measurements for one observed posture. Angles are in degrees.

type Neck struct {
	Angle       float64
	Twisted     bool
	SideBending bool
}

func (n Neck) Score() int { return NeckScore(n.Angle, n.Twisted, n.SideBending) }

type Trunk struct {
	Angle       float64
	Twisted     bool
	SideBending bool
}

func (t Trunk) Score() int { return TrunkScore(t.Angle, t.Twisted, t.SideBending) }

type Legs struct {
	Angle        float64 // knee flexion
	OneLegRaised bool
}

func (l Legs) Score() int { return LegsScore(l.Angle, l.OneLegRaised) }

type UpperArm struct {
	Angle          float64
	ShoulderRaised bool
	Abducted       bool
	Supported      bool // arm supported or person leaning
}

func (u UpperArm) Score() int {
	return UpperArmScore(u.Angle, u.ShoulderRaised, u.Abducted, u.Supported)
}

type LowerArm struct {
	Angle float64 // elbow flexion
}

func (l LowerArm) Score() int { return LowerArmScore(l.Angle) }

type Wrist struct {
	Angle float64
	Bent  bool // twisted or deviated from midline
}

func (w Wrist) Score() int { return WristScore(w.Angle, w.Bent) }

type Load struct {
	Level ForceLevel
	Shock bool
}

func (l Load) Score() int { return ForceScore(l.Level, l.Shock) }

type Activity struct {
	Static       bool
	Repeated     bool
	RapidChanges bool
}

func (a Activity) Score() int { return ActivityScore(a.Static, a.Repeated, a.RapidChanges) }

// Posture is a full set of measurements for one assessment.
type Posture struct {
	Neck     Neck
	Trunk    Trunk
	Legs     Legs
	UpperArm UpperArm
	LowerArm LowerArm
	Wrist    Wrist
	Load     Load
	Coupling Coupling
	Activity Activity
}

// Components reduces the measurements to component scores.
func (p Posture) Components() ComponentScores {
	return ComponentScores{
		Neck:     p.Neck.Score(),
		Trunk:    p.Trunk.Score(),
		Legs:     p.Legs.Score(),
		Force:    p.Load.Score(),
		UpperArm: p.UpperArm.Score(),
		LowerArm: p.LowerArm.Score(),
		Wrist:    p.Wrist.Score(),
		Coupling: CouplingScore(p.Coupling),
		Activity: p.Activity.Score(),
	}
}

// Angles returns the measured angle of each body part keyed by component name.
func (p Posture) Angles() map[string]float64 {
	return map[string]float64{
		FieldNeck:     p.Neck.Angle,
		FieldTrunk:    p.Trunk.Angle,
		FieldLegs:     p.Legs.Angle,
		FieldUpperArm: p.UpperArm.Angle,
		FieldLowerArm: p.LowerArm.Angle,
		FieldWrist:    p.Wrist.Angle,
	}
}
