package geom

import (
	"math"
	"slices"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// Point is a position in data (or axes-fraction) coordinates.
type Point struct {
	X, Y float64
}

// Limits is an axis range as reported by the surface. Lo may exceed Hi for
// inverted axes.
type Limits struct {
	Lo, Hi float64
}

// Min returns the smaller end.
func (l Limits) Min() float64 { return math.Min(l.Lo, l.Hi) }

// Max returns the larger end.
func (l Limits) Max() float64 { return math.Max(l.Lo, l.Hi) }

// Span returns |Hi - Lo|.
func (l Limits) Span() float64 { return math.Abs(l.Hi - l.Lo) }

// Validate reports a GEOMETRY error for a zero-width or non-finite range.
func (l Limits) Validate(name string) error {
	return errors.ValidateRange(name, l.Lo, l.Hi)
}

// ToData maps an axes fraction (0 at Min, 1 at Max) to a data value.
func (l Limits) ToData(frac float64) float64 {
	return l.Min() + frac*l.Span()
}

// ToFraction maps a data value to an axes fraction.
func (l Limits) ToFraction(v float64) float64 {
	return (v - l.Min()) / l.Span()
}

// Rect is an axis-aligned rectangle given by its lower left corner and its
// size.
type Rect struct {
	X, Y, W, H float64
}

// RectFromExtents returns the rectangle spanning x0..x1 and y0..y1.
func RectFromExtents(x0, y0, x1, y1 float64) Rect {
	return Rect{X: math.Min(x0, x1), Y: math.Min(y0, y1), W: math.Abs(x1 - x0), H: math.Abs(y1 - y0)}
}

// Points returns the corners counter-clockwise from the lower left.
func (r Rect) Points() []Point {
	return []Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X + r.W, r.Y + r.H},
		{r.X, r.Y + r.H},
	}
}

// PadLimits returns limits around the first and last of vals padded by
// factor times the smallest gap between distinct values. A single distinct
// value is padded by max(1, v*factor).
func PadLimits(vals []float64, factor float64) (Limits, error) {
	if len(vals) == 0 {
		return Limits{}, errors.Geometry("no values to pad")
	}
	uni := slices.Clone(vals)
	slices.Sort(uni)
	uni = slices.Compact(uni)

	var fudge float64
	if len(uni) == 1 {
		fudge = math.Max(1, uni[0]*factor)
	} else {
		gap := math.Inf(1)
		for i := 1; i < len(uni); i++ {
			gap = math.Min(gap, uni[i]-uni[i-1])
		}
		fudge = gap * factor
	}
	return Limits{Lo: vals[0] - fudge, Hi: vals[len(vals)-1] + fudge}, nil
}

// zeroTolerance is the fraction of the y span within which a zero label
// position must map back to y=0.
const zeroTolerance = 1e-3

// ZeroFraction returns the axes fraction at which y=0 sits on ylim. If
// yZero is non-nil it is used instead, and must still map back to zero.
func ZeroFraction(ylim Limits, yZero *float64) (float64, error) {
	if err := ylim.Validate("y"); err != nil {
		return 0, err
	}
	lo, span := ylim.Lo, ylim.Hi-ylim.Lo
	frac := (0 - lo) / span
	if yZero != nil {
		frac = *yZero
	}
	if back := frac*span + lo; math.Abs(back) >= math.Abs(span)*zeroTolerance {
		return 0, errors.Geometry("axes fraction %v maps to y=%v, not zero", frac, back)
	}
	return frac, nil
}
