package reba

import "math"

// NeckScore scores neck posture. Negative angles are extension, positive are flexion.
// Returns 1-4.
func NeckScore(angle float64, twisted, sideBending bool) int {
	score := 1
	if angle < 0 || angle > 20 {
		score = 2
	}
	if twisted {
		score++
	}
	if sideBending {
		score++
	}
	return score
}

// TrunkScore scores trunk posture measured from vertical. The upright zone is
// the symmetric band [-2.5, 2.5]. Returns 1-6.
func TrunkScore(angle float64, twisted, sideBending bool) int {
	var score int
	switch {
	case angle >= -2.5 && angle <= 2.5:
		score = 1
	case angle >= -20 && angle < -2.5:
		score = 2
	case angle < -20:
		score = 3
	case angle > 2.5 && angle <= 20:
		score = 2
	case angle > 20 && angle < 60:
		score = 3
	default:
		score = 4
	}
	if twisted {
		score++
	}
	if sideBending {
		score++
	}
	return score
}

// LegsScore scores knee flexion, 0 being a straight leg. Returns 1-4.
func LegsScore(angle float64, oneLegRaised bool) int {
	score := 1
	switch {
	case angle >= 60:
		score = 3
	case angle >= 30:
		score = 2
	}
	if oneLegRaised {
		score++
	}
	return score
}

// UpperArmScore scores shoulder flexion. Negative angles put the arm behind
// the body. Support is the only subtracting modifier; the result never drops
// below 1.
func UpperArmScore(angle float64, shoulderRaised, abducted, supported bool) int {
	var score int
	switch {
	case angle < 0:
		score = 2
	case angle <= 20:
		score = 1
	case angle <= 45:
		score = 2
	case angle <= 90:
		score = 3
	default:
		score = 4
	}
	if shoulderRaised {
		score++
	}
	if abducted {
		score++
	}
	if supported {
		score--
	}
	return max(1, score)
}

// LowerArmScore scores elbow flexion. 60-100 degrees inclusive is neutral.
func LowerArmScore(angle float64) int {
	if angle >= 60 && angle <= 100 {
		return 1
	}
	return 2
}

// WristScore scores wrist flexion or extension. Returns 1-3.
func WristScore(angle float64, bent bool) int {
	score := 1
	if math.Abs(angle) > 15 {
		score = 2
	}
	if bent {
		score++
	}
	return score
}
