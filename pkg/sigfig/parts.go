package sigfig

import (
	"regexp"
	"strconv"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// sciPattern matches strconv's 'e' output: mantissa, exponent sign, and
// exponent digits with leading zeros stripped (the last zero is kept).
var sciPattern = regexp.MustCompile(`^(-?\d+\.?\d*)e([+-])0*(\d+)$`)

// Parts is a value in scientific notation split for display.
type Parts struct {
	Mantissa string // significant digits, e.g. "1.2" or "-4.5"
	Sign     string // exponent sign, "+" or "-"
	Exponent string // exponent magnitude without leading zeros, e.g. "3"
}

// SignedExponent returns the exponent as displayed: "3" or "-3".
func (p Parts) SignedExponent() string {
	if p.Sign == "-" {
		return "-" + p.Exponent
	}
	return p.Exponent
}

// Exp returns the signed exponent as an integer.
func (p Parts) Exp() int {
	e, _ := strconv.Atoi(p.Exponent)
	if p.Sign == "-" {
		return -e
	}
	return e
}

// Decompose formats number in scientific notation with sigFigs significant
// digits and splits the result into [Parts].
//
//	Decompose(1230, 2) // {"1.2", "+", "3"}
func Decompose(number float64, sigFigs int) (Parts, error) {
	if err := errors.ValidateFinite("number", number); err != nil {
		return Parts{}, err
	}
	if sigFigs < 1 {
		return Parts{}, errors.Format("significant figures must be at least 1, got %d", sigFigs)
	}
	s := strconv.FormatFloat(number, 'e', sigFigs-1, 64)
	m := sciPattern.FindStringSubmatch(s)
	if m == nil {
		return Parts{}, errors.Format("cannot decompose %q into mantissa and exponent", s)
	}
	return Parts{Mantissa: m[1], Sign: m[2], Exponent: m[3]}, nil
}
