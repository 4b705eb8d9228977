package chaos

import (
	"errors"
	"fmt"
	"math"
)

// GlitchProbability is the chance a calculation comes back wrong.
const GlitchProbability = 0.15

// ErrUnknownOperator is returned for operators other than + - * /.
var ErrUnknownOperator = errors.New("unknown operator")

// ErrOutOfRange is returned when a result overflows to an infinity.
var ErrOutOfRange = errors.New("result out of range")

// Calculation is the outcome of one calculator operation.
type Calculation struct {
	Value    float64
	Glitched bool
}

// Calculate applies op to a and b. With GlitchProbability the result is
// nudged: addition and subtraction drift by up to five, multiplication and
// division are scaled by a factor in [0.5, 1.5). Division by zero yields 0.
func Calculate(d Dice, a, b float64, op string) (Calculation, error) {
	switch op {
	case "+", "-", "*", "/":
	default:
		return Calculation{}, fmt.Errorf("%w: %q", ErrUnknownOperator, op)
	}

	glitch := chance(d, GlitchProbability)

	var v float64
	switch op {
	case "+":
		v = a + b
		if glitch {
			v += float64(d.IntN(10) - 5)
		}
	case "-":
		v = a - b
		if glitch {
			v += float64(5 - d.IntN(10))
		}
	case "*":
		v = a * b
		if glitch {
			v *= 0.5 + d.Float64()
		}
	case "/":
		if b == 0 {
			v = 0
			break
		}
		v = a / b
		if glitch {
			v /= 0.5 + d.Float64()
		}
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return Calculation{}, fmt.Errorf("%w: %v %s %v", ErrOutOfRange, a, op, b)
	}
	return Calculation{Value: v, Glitched: glitch}, nil
}
