package surface

import (
	"context"
	"fmt"
	"image/color"

	"github.com/google/uuid"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
)

// Dim selects an axis of a panel.
type Dim int

const (
	X Dim = iota
	Y
)

func (d Dim) String() string {
	if d == Y {
		return "y"
	}
	return "x"
}

// Which selects major or minor ticks.
type Which int

const (
	Major Which = iota
	Minor
)

func (w Which) String() string {
	if w == Minor {
		return "minor"
	}
	return "major"
}

// Side names one of the four spines of a panel.
type Side int

const (
	Left Side = iota
	Right
	Top
	Bottom
)

func (s Side) String() string {
	return [...]string{"left", "right", "top", "bottom"}[s]
}

// Scale is an axis scale.
type Scale string

const (
	Linear Scale = "linear"
	Log    Scale = "log"
)

// Kind names what an [Artist] is.
type Kind string

const (
	KindText    Kind = "text"
	KindLine    Kind = "line"
	KindPoints  Kind = "points"
	KindPolygon Kind = "polygon"
	KindLegend  Kind = "legend"
)

// Artist is a handle to something drawn on a surface.
type Artist struct {
	ID   uuid.UUID
	Kind Kind
}

// NewArtist returns an artist of the given kind with a fresh ID.
func NewArtist(kind Kind) Artist {
	return Artist{ID: uuid.New(), Kind: kind}
}

func (a Artist) String() string {
	return fmt.Sprintf("%s/%s", a.Kind, a.ID)
}

// Axes is a single plot panel.
type Axes interface {
	// XLimits returns the current x range, in drawing order.
	XLimits() geom.Limits
	// YLimits returns the current y range, in drawing order.
	YLimits() geom.Limits
	// SetXLimits fixes the x range. Later data does not widen it.
	SetXLimits(lim geom.Limits)
	// SetYLimits fixes the y range. Later data does not widen it.
	SetYLimits(lim geom.Limits)
	// Scale returns the scale of an axis.
	Scale(dim Dim) Scale
	// SetScale changes the scale of an axis.
	SetScale(dim Dim, s Scale)

	// SetTicks places major or minor ticks at exactly these positions.
	// An empty slice removes the ticks.
	SetTicks(dim Dim, which Which, positions []float64)
	// SetTickLabels places major ticks at positions labeled with labels.
	SetTickLabels(dim Dim, positions []float64, labels []string, style TextStyle)
	// SetTickStyle changes tick size and tick label font.
	SetTickStyle(dim Dim, which Which, style TickStyle)
	// HideSpine stops drawing one border of the panel.
	HideSpine(side Side)

	// SetLabel sets an axis label.
	SetLabel(dim Dim, text string, style TextStyle)
	// SetTitle sets the panel title.
	SetTitle(text string, style TextStyle)

	// Text draws a string anchored at pos.
	Text(pos geom.Point, s string, style TextStyle) (Artist, error)
	// TextRuns draws runs one after another starting at pos, each in its
	// own color. A run containing a newline starts the next run below it.
	TextRuns(pos geom.Point, runs []TextRun, style TextStyle) (Artist, error)
	// Line draws a polyline through (xs[i], ys[i]).
	Line(xs, ys []float64, style LineStyle) (Artist, error)
	// Points draws a marker at each (xs[i], ys[i]).
	Points(xs, ys []float64, style MarkerStyle) (Artist, error)
	// Polygon fills and strokes a closed shape.
	Polygon(pts []geom.Point, style FillStyle) (Artist, error)
	// Legend draws a legend of every labeled line and marker set.
	Legend(style LegendStyle) (Artist, error)
}

// TextRun is a string drawn in one color.
type TextRun struct {
	S     string
	Color color.Color
}

// Figure is a grid of panels, row-major.
type Figure interface {
	// Axes returns the panels in row-major order.
	Axes() []Axes
	// Overlay adds zoom connectors between two panels.
	Overlay(z Zoom) error
	// Render draws the figure in the given format ("svg", "png", ...).
	Render(ctx context.Context, format string) ([]byte, error)
	// Save renders the figure and writes it to path.
	Save(ctx context.Context, path, format string) error
}

// Zoom describes connectors between a region of one panel and a region
// of another. Box X values are data coordinates of their panel; Y values
// are axes fractions.
type Zoom struct {
	From, To  int // panel indices
	FromBox   geom.Rect
	ToBox     geom.Rect
	Locs      [4]geom.Location // corner pairs: From a, To a, From b, To b
	Line      LineStyle
	FromPatch FillStyle
	ToPatch   FillStyle
	Connector FillStyle
}

// Validate checks panel indices against a figure of n panels and the
// corner locations.
func (z Zoom) Validate(n int) error {
	for _, i := range []int{z.From, z.To} {
		if i < 0 || i >= n {
			return errors.New(errors.ErrCodeInvalidInput, "zoom panel %d out of range [0, %d)", i, n)
		}
	}
	if z.From == z.To {
		return errors.New(errors.ErrCodeInvalidInput, "zoom connects panel %d to itself", z.From)
	}
	for _, loc := range z.Locs {
		if _, err := geom.Corner(geom.Rect{}, loc); err != nil {
			return err
		}
	}
	return nil
}

// ValidateXY checks that xs and ys pair up and are not empty.
func ValidateXY(xs, ys []float64) error {
	if len(xs) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no points to draw")
	}
	if len(xs) != len(ys) {
		return errors.New(errors.ErrCodeInvalidInput, "x has %d values, y has %d", len(xs), len(ys))
	}
	return nil
}
