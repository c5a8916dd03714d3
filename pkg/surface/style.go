package surface

import (
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// Coords selects the coordinate system of a position.
type Coords int

const (
	Data Coords = iota
	AxesFraction
)

// HAlign is horizontal text alignment relative to the anchor.
type HAlign int

const (
	AlignCenter HAlign = iota
	AlignLeft
	AlignRight
)

// VAlign is vertical text alignment relative to the anchor.
type VAlign int

const (
	AlignMiddle VAlign = iota
	AlignTop
	AlignBottom
)

// TextStyle controls how a string is drawn. Zero values mean the surface
// default: black, regular weight, centered on the anchor.
type TextStyle struct {
	FontSize   float64 // points
	Bold       bool
	Color      color.Color
	Background color.Color // nil for none
	HAlign     HAlign
	VAlign     VAlign
	Rotation   float64 // degrees, counter-clockwise
	Coords     Coords
}

// LineStyle controls a stroked line. A non-empty Label adds a legend entry.
type LineStyle struct {
	Color  color.Color
	Width  float64 // points
	Dashed bool
	Label  string
	Coords Coords
}

// MarkerStyle controls a set of point markers.
type MarkerStyle struct {
	Color  color.Color
	Radius float64 // points
	Label  string
}

// FillStyle controls a polygon. A nil Face leaves it unfilled; a zero
// Edge width leaves it unstroked.
type FillStyle struct {
	Face   color.Color
	Edge   LineStyle
	Coords Coords
}

// TickStyle controls tick length and width, and the tick label font size.
// Zero fields keep the current value.
type TickStyle struct {
	Length    float64
	Width     float64
	LabelSize float64
}

// LegendStyle controls legend placement and font.
type LegendStyle struct {
	Loc        string // "upper right", "upper left", "lower left", "lower right" or "best"
	FontSize   float64
	Frame      bool
	Background color.Color
}

// WithAlpha returns c with its opacity replaced by alpha in 0..1.
func WithAlpha(c color.Color, alpha float64) color.Color {
	if c == nil {
		return nil
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch {
	case alpha <= 0:
		n.A = 0
	case alpha >= 1:
		n.A = 0xff
	default:
		n.A = uint8(alpha*0xff + 0.5)
	}
	return n
}

// shortColors are the one-letter color names accepted along with the CSS
// names.
var shortColors = map[string]color.Color{
	"k": color.Black,
	"w": color.White,
	"r": colornames.Red,
	"g": colornames.Green,
	"b": colornames.Blue,
	"c": colornames.Cyan,
	"m": colornames.Magenta,
	"y": colornames.Yellow,
}

// ParseColor parses a one-letter color ("k", "m", ...), a CSS color name
// ("steelblue") or a hex triplet ("#4682b4", "#48b"). "none" and the empty
// string return nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "none" {
		return nil, nil
	}
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
				return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
			}
		}
	}
	return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown color %q", s)
}
