package reba

// ForceLevel is the load handled during the task.
type ForceLevel int

const (
	ForceLight  ForceLevel = iota // under 5 kg
	ForceMedium                   // 5-10 kg
	ForceHeavy                    // over 10 kg
)

func (f ForceLevel) String() string {
	switch f {
	case ForceLight:
		return "light"
	case ForceMedium:
		return "medium"
	case ForceHeavy:
		return "heavy"
	default:
		return "unknown"
	}
}

// Coupling is the quality of the hand hold on the load.
type Coupling int

const (
	CouplingGood Coupling = iota
	CouplingFair
	CouplingPoor
	CouplingUnacceptable
)

func (c Coupling) String() string {
	switch c {
	case CouplingGood:
		return "good"
	case CouplingFair:
		return "fair"
	case CouplingPoor:
		return "poor"
	case CouplingUnacceptable:
		return "unacceptable"
	default:
		return "unknown"
	}
}

// ForceScore returns the load level plus 1 for shock or rapid force buildup.
func ForceScore(level ForceLevel, shock bool) int {
	score := int(level)
	if shock {
		score++
	}
	return score
}

// CouplingScore passes the coupling quality through as its score.
func CouplingScore(q Coupling) int {
	return int(q)
}

// ActivityScore counts the activity flags that apply: one or more body parts
// held static over a minute, small-range actions repeated over 4 times a
// minute, and rapid large changes in posture.
func ActivityScore(static, repeated, rapidChanges bool) int {
	score := 0
	for _, on := range []bool{static, repeated, rapidChanges} {
		if on {
			score++
		}
	}
	return score
}
