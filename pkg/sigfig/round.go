package sigfig

import (
	"strconv"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// Round rounds x to n significant figures (n=1 maps 51 to 50).
//
// The rounding place is (n-1) - floor(log10|x|) decimal digits, so x must
// be nonzero and finite. Ties are broken to even on the exact binary value.
func Round(x float64, n int) (float64, error) {
	place, err := Place(x, n)
	if err != nil {
		return 0, err
	}
	v, err := roundAt(x, place, n)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeFormat, err, "rounding %v to %d figures overflows", x, n)
	}
	return v, nil
}

// RoundAll applies [Round] to every element of xs, preserving order.
// The first failing element aborts the whole call.
func RoundAll(xs []float64, n int) ([]float64, error) {
	out := make([]float64, len(xs))
	for i, x := range xs {
		v, err := Round(x, n)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeFormat, err, "element %d", i)
		}
		out[i] = v
	}
	return out, nil
}

// Place returns the decimal place that rounding x to n significant figures
// keeps: (n-1) - floor(log10|x|). Negative places round left of the point.
func Place(x float64, n int) (int, error) {
	if err := errors.ValidateNonZero("x", x); err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, errors.Format("significant figures must be at least 1, got %d", n)
	}
	return (n - 1) - decimalExponent(x), nil
}

// roundAt rounds x to place decimal digits. n is the significant-figure
// count that produced place; it is only needed when place is negative.
// It fails when the rounded value is out of float64 range.
func roundAt(x float64, place, n int) (float64, error) {
	var s string
	if place >= 0 {
		s = strconv.FormatFloat(x, 'f', place, 64)
	} else {
		s = strconv.FormatFloat(x, 'e', n-1, 64)
	}
	return strconv.ParseFloat(s, 64)
}

// decimalExponent returns floor(log10|x|) for nonzero finite x.
// It reads the exponent of the shortest exact decimal form, which avoids the
// off-by-one that math.Log10 produces just below powers of ten.
func decimalExponent(x float64) int {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == 'e' {
			e, _ := strconv.Atoi(s[i+1:])
			return e
		}
	}
	return 0
}
