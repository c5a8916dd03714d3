package geom

import (
	"github.com/matzehuels/plotutil/pkg/errors"
)

// Location names a rectangle corner, counter-clockwise from upper right.
type Location int

const (
	UpperRight Location = 1
	UpperLeft  Location = 2
	LowerLeft  Location = 3
	LowerRight Location = 4
)

// Rectangle returns the box covering xlim by ylim, grown by fudgePct of the
// x span in both width and height.
func Rectangle(xlim, ylim Limits, fudgePct float64) Rect {
	fudge := xlim.Span() * fudgePct
	return Rect{
		X: xlim.Min(),
		Y: ylim.Min(),
		W: xlim.Span() + fudge,
		H: ylim.Span() + fudge,
	}
}

// Triangle returns the closed right triangle with its right angle at (x, y)
// and legs w and h. Reversed puts the right angle at (x+w, y).
func Triangle(x, y, w, h float64, reversed bool) []Point {
	var v1, v2 Point
	if reversed {
		v1 = Point{x + w, y}
		v2 = Point{x + w, y + h}
	} else {
		v1 = Point{x, y + h}
		v2 = Point{x + w, y}
	}
	return []Point{{x, y}, v1, v2, {x, y}}
}

// Corner returns the corner of r named by loc.
func Corner(r Rect, loc Location) (Point, error) {
	switch loc {
	case UpperRight:
		return Point{r.X + r.W, r.Y + r.H}, nil
	case UpperLeft:
		return Point{r.X, r.Y + r.H}, nil
	case LowerLeft:
		return Point{r.X, r.Y}, nil
	case LowerRight:
		return Point{r.X + r.W, r.Y}, nil
	}
	return Point{}, errors.Geometry("unknown corner location %d (want 1-4)", loc)
}

// Segment is a straight line between two points.
type Segment struct {
	From, To Point
}

// Connection joins two rectangles: two connector lines and the patch
// between them.
type Connection struct {
	A, B  Segment
	Patch []Point // closed polygon
}

// Connect links corner loc1a of b1 to loc2a of b2 and loc1b of b1 to loc2b
// of b2. The patch runs b1.a, b2.a, b2.b, b1.b and closes.
func Connect(b1, b2 Rect, loc1a, loc2a, loc1b, loc2b Location) (Connection, error) {
	var pts [4]Point
	for i, c := range []struct {
		r   Rect
		loc Location
	}{{b1, loc1a}, {b2, loc2a}, {b1, loc1b}, {b2, loc2b}} {
		p, err := Corner(c.r, c.loc)
		if err != nil {
			return Connection{}, err
		}
		pts[i] = p
	}
	return Connection{
		A:     Segment{pts[0], pts[1]},
		B:     Segment{pts[2], pts[3]},
		Patch: []Point{pts[0], pts[1], pts[3], pts[2], pts[0]},
	}, nil
}

// ZoomLeftToRight is the corner set that connects a left panel's right edge
// to a right panel's left edge.
var ZoomLeftToRight = [4]Location{UpperRight, UpperLeft, LowerRight, LowerLeft}

// BrokenAxisMarkers returns axes-fraction positions for the cut markers of
// a broken x axis: the right edge of the left panel and the left edge of the
// right panel, each pushed out by fudge.
func BrokenAxisMarkers(fudge float64) (left, right []Point) {
	left = []Point{{1 + fudge, 0}, {1 + fudge, 1}}
	right = []Point{{0 - fudge, 1}, {0 - fudge, 0}}
	return left, right
}
