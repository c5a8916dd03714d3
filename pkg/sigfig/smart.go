package sigfig

import (
	"fmt"
	"math"
	"strconv"

	"github.com/aclements/go-moremath/stats"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// Value is a number with an optional uncertainty.
type Value struct {
	X      float64
	Err    float64
	HasErr bool
}

// Exact returns a Value without an uncertainty.
func Exact(x float64) Value { return Value{X: x} }

// WithErr returns a Value with uncertainty err.
func WithErr(x, err float64) Value { return Value{X: x, Err: err, HasErr: true} }

// Spec is a reusable display precision: a digit count and a strconv verb
// ('g', 'f', 'e'). For 'g' and 'e' Digits counts significant digits; for
// 'f' it counts decimals.
type Spec struct {
	Digits int
	Verb   byte
}

// Format renders v with s.
func (s Spec) Format(v float64) string {
	verb := s.Verb
	if verb == 0 {
		verb = 'g'
	}
	return strconv.FormatFloat(v, verb, s.Digits, 64)
}

// String returns the equivalent fmt verb, e.g. "%.2g".
func (s Spec) String() string {
	verb := s.Verb
	if verb == 0 {
		verb = 'g'
	}
	return fmt.Sprintf("%%.%d%c", s.Digits, verb)
}

// Smart chooses a 'g' precision for v, starting at minDigits.
//
// With an error, the digit count grows by max(0, |e_err| - |e_val|), where
// e_err and e_val are the exponent magnitudes (unsigned) of the error and
// the value at one significant figure. If the count is still 1 and the
// value's leading digit is 1, one more digit is added.
func Smart(v Value, minDigits int) (Spec, error) {
	if minDigits < 1 {
		return Spec{}, errors.Format("minimum digits must be at least 1, got %d", minDigits)
	}
	p, err := Decompose(v.X, 1)
	if err != nil {
		return Spec{}, err
	}
	digits := minDigits
	if v.HasErr {
		pe, err := Decompose(v.Err, 1)
		if err != nil {
			return Spec{}, err
		}
		digits += max(0, magnitude(pe)-magnitude(p))
	}
	if digits == 1 {
		lead, _ := strconv.ParseFloat(p.Mantissa, 64)
		if math.RoundToEven(lead) == 1 {
			digits++
		}
	}
	return Spec{Digits: digits, Verb: 'g'}, nil
}

// magnitude is the exponent digit string read as an integer, ignoring the
// exponent sign.
func magnitude(p Parts) int {
	e, _ := strconv.Atoi(p.Exponent)
	return e
}

// PlusMinus renders the mean of samples and their mean absolute deviation
// as "<mean>+/-<deviation>", the deviation at two significant digits. A
// single sample is taken to be the deviation itself, about a mean of itself.
func PlusMinus(samples []float64, spec Spec) (string, error) {
	if len(samples) == 0 {
		return "", errors.Format("no samples")
	}
	return PlusMinusAbout(samples, stats.Mean(samples), spec)
}

// PlusMinusAbout is PlusMinus with an explicit mean.
func PlusMinusAbout(samples []float64, mean float64, spec Spec) (string, error) {
	if len(samples) == 0 {
		return "", errors.Format("no samples")
	}
	for _, s := range samples {
		if err := errors.ValidateFinite("sample", s); err != nil {
			return "", err
		}
	}
	if err := errors.ValidateFinite("mean", mean); err != nil {
		return "", err
	}
	delta := samples[0]
	if len(samples) > 1 {
		dev := make([]float64, len(samples))
		for i, s := range samples {
			dev[i] = math.Abs(s - mean)
		}
		delta = stats.Mean(dev)
	}
	return spec.Format(mean) + "+/-" + strconv.FormatFloat(delta, 'g', 2, 64), nil
}
