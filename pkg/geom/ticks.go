package geom

import (
	"math"

	"github.com/aclements/go-moremath/scale"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// maxFixedTicks bounds FixedTicks so a tiny spacing cannot allocate
// without limit.
const maxFixedTicks = 100000

// FixedTicks returns the ascending ticks offset + k*spacing that cover
// bound. The number of intervals walked on each side of offset is
// ceil(|edge - offset| / spacing), so the offset is always included and each
// edge is met or passed by one tick. The count is taken from the offset to
// each edge regardless of side, so an offset outside bound produces extra
// ticks on the side facing away from it.
func FixedTicks(offset, spacing float64, bound Limits) ([]float64, error) {
	if err := errors.ValidatePositive("spacing", spacing); err != nil {
		return nil, err
	}
	for _, v := range []float64{offset, bound.Lo, bound.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Geometry("tick offset and bounds must be finite (offset %v, bound %v..%v)", offset, bound.Lo, bound.Hi)
		}
	}

	before := math.Ceil(math.Abs(offset-bound.Min()) / spacing)
	after := math.Ceil(math.Abs(bound.Max()-offset) / spacing)
	if before+after+1 > maxFixedTicks {
		return nil, errors.Geometry("spacing %v yields more than %d ticks over %v..%v", spacing, maxFixedTicks, bound.Min(), bound.Max())
	}

	nb, na := int(before), int(after)
	ticks := make([]float64, 0, nb+na+1)
	for k := -nb; k <= na; k++ {
		ticks = append(ticks, offset+float64(k)*spacing)
	}
	return ticks, nil
}

// MinorOffset returns the minor tick anchor halfway between major ticks.
func MinorOffset(majorOffset, spacing float64) float64 {
	return majorOffset + spacing/2
}

// MaxNTicks returns at most n "nice" ticks (1, 2, 5 times a power of ten)
// inside lim, along with the minor ticks one level below them.
func MaxNTicks(lim Limits, n int) (major, minor []float64, err error) {
	if err := lim.Validate("axis"); err != nil {
		return nil, nil, err
	}
	if n < 1 {
		return nil, nil, errors.Geometry("tick count must be at least 1, got %d", n)
	}
	ls := scale.Linear{Min: lim.Min(), Max: lim.Max()}
	major, minor = ls.Ticks(scale.TickOptions{Max: n})
	return major, minor, nil
}

// LogTicks returns at most n decade ticks (powers of ten) inside lim, with
// the 2..9 multiples of each decade as minor ticks. lim must be positive.
func LogTicks(lim Limits, n int) (major, minor []float64, err error) {
	if err := lim.Validate("axis"); err != nil {
		return nil, nil, err
	}
	if lim.Min() <= 0 {
		return nil, nil, errors.Geometry("log axis limits must be positive, got %v..%v", lim.Lo, lim.Hi)
	}
	if n < 1 {
		return nil, nil, errors.Geometry("tick count must be at least 1, got %d", n)
	}
	lo := int(math.Floor(math.Log10(lim.Min())))
	hi := int(math.Ceil(math.Log10(lim.Max())))
	stride := 1
	for (hi-lo)/stride+1 > n {
		stride++
	}
	inside := func(v float64) bool { return v >= lim.Min() && v <= lim.Max() }
	for e := lo; e <= hi; e++ {
		decade := math.Pow(10, float64(e))
		if (e-lo)%stride == 0 && inside(decade) {
			major = append(major, decade)
		}
		for m := 2; m <= 9; m++ {
			if v := float64(m) * decade; inside(v) {
				minor = append(minor, v)
			}
		}
	}
	return major, minor, nil
}
