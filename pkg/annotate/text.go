package annotate

import (
	"image/color"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/sigfig"
	"github.com/matzehuels/plotutil/pkg/style"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// Font returns the annotation font: bold, black, label sized and centred
// horizontally above the anchor.
func Font(st style.Style) surface.TextStyle {
	return surface.TextStyle{
		FontSize: st.LabelFont,
		Bold:     true,
		Color:    color.Black,
		HAlign:   surface.AlignCenter,
		VAlign:   surface.AlignBottom,
	}
}

// Text draws s at pos in data coordinates.
func Text(ax surface.Axes, pos geom.Point, s string, ts surface.TextStyle) (surface.Artist, error) {
	ts.Coords = surface.Data
	return ax.Text(pos, s, ts)
}

// RelativeText draws s at pos in axes fractions: (0, 0) is the lower left
// corner.
func RelativeText(ax surface.Axes, pos geom.Point, s string, ts surface.TextStyle) (surface.Artist, error) {
	ts.Coords = surface.AxesFraction
	return ax.Text(pos, s, ts)
}

// ZeroLabel writes s (default "0") at axes fraction xPos, at the height of
// y=0. A non-nil yZero overrides the height but must still land on zero.
func ZeroLabel(ax surface.Axes, xPos float64, yZero *float64, s string, ts surface.TextStyle) (surface.Artist, error) {
	frac, err := geom.ZeroFraction(ax.YLimits(), yZero)
	if err != nil {
		return surface.Artist{}, err
	}
	if s == "" {
		s = "0"
	}
	ts.VAlign = surface.AlignMiddle
	return RelativeText(ax, geom.Point{X: xPos, Y: frac}, s, ts)
}

// RectangleOptions configures [Rectangle].
type RectangleOptions struct {
	// FudgePct grows width and height by this fraction of the x span.
	FudgePct float64
	// Face fills the rectangle; nil leaves it empty.
	Face color.Color
	// Edge outlines the rectangle. Default black, 0.75 wide.
	Edge surface.LineStyle
}

// SetDefaults fills zero fields with the defaults.
func (o *RectangleOptions) SetDefaults() {
	if o.Edge.Color == nil {
		o.Edge.Color = color.Black
	}
	if o.Edge.Width == 0 {
		o.Edge.Width = 0.75
	}
}

// Rectangle outlines the region xlim by ylim.
func Rectangle(ax surface.Axes, xlim, ylim geom.Limits, opts RectangleOptions) (surface.Artist, error) {
	opts.SetDefaults()
	r := geom.Rectangle(xlim, ylim, opts.FudgePct)
	return ax.Polygon(r.Points(), surface.FillStyle{Face: opts.Face, Edge: opts.Edge})
}

// Triangle fills a right triangle with its right angle at (x, y), in axes
// fractions. fill defaults to translucent green.
func Triangle(ax surface.Axes, x, y, w, h float64, reversed bool, fill color.Color) (surface.Artist, error) {
	if fill == nil {
		fill = surface.WithAlpha(color.RGBA{G: 0x80, A: 0xff}, 0.5)
	}
	pts := geom.Triangle(x, y, w, h, reversed)
	return ax.Polygon(pts[:len(pts)-1], surface.FillStyle{Face: fill, Coords: surface.AxesFraction})
}

// RainbowText draws strings[i] in colors[i], one after another from pos.
// Colors repeat if there are fewer than strings. addSpace appends a space
// to each string.
func RainbowText(ax surface.Axes, pos geom.Point, strings []string, colors []color.Color, addSpace bool, ts surface.TextStyle) (surface.Artist, error) {
	if len(strings) == 0 || len(colors) == 0 {
		return surface.Artist{}, errors.New(errors.ErrCodeInvalidInput, "rainbow text needs strings and colors")
	}
	runs := make([]surface.TextRun, len(strings))
	for i, s := range strings {
		if addSpace {
			s += " "
		}
		runs[i] = surface.TextRun{S: s, Color: colors[i%len(colors)]}
	}
	return ax.TextRuns(pos, runs, ts)
}

// Bar is a bar of a bar chart, with an optional error.
type Bar struct {
	X, Width, Height float64
	Err              *float64
}

// AutoLabelOptions configures [AutoLabel].
type AutoLabelOptions struct {
	// Formatter renders the smart-formatted labels. Default sigfig.Plain.
	Formatter *sigfig.Formatter
	// Label overrides the label text.
	Label func(i int, b Bar) (string, error)
	// Lift places the label at Height*Lift. Default 1.2.
	Lift float64
	// FontSize of the labels. Default style.DefaultLegendFont.
	FontSize float64
	// Color of the labels. Default black.
	Color color.Color
}

// SetDefaults fills zero fields with the defaults.
func (o *AutoLabelOptions) SetDefaults() {
	if o.Formatter == nil {
		o.Formatter = &sigfig.Plain
	}
	if o.Lift == 0 {
		o.Lift = 1.2
	}
	if o.FontSize == 0 {
		o.FontSize = style.DefaultLegendFont
	}
	if o.Color == nil {
		o.Color = color.Black
	}
}

// AutoLabel writes each bar's height above it, with its error when set.
// Precision is chosen by sigfig.Smart unless opts.Label is given.
func AutoLabel(ax surface.Axes, bars []Bar, opts AutoLabelOptions) ([]surface.Artist, error) {
	opts.SetDefaults()
	label := opts.Label
	if label == nil {
		label = func(_ int, b Bar) (string, error) {
			v := sigfig.Exact(b.Height)
			if b.Err != nil {
				v = sigfig.WithErr(b.Height, *b.Err)
			}
			return opts.Formatter.FormatValue(v)
		}
	}
	ts := surface.TextStyle{FontSize: opts.FontSize, Color: opts.Color, VAlign: surface.AlignBottom}
	artists := make([]surface.Artist, 0, len(bars))
	for i, b := range bars {
		s, err := label(i, b)
		if err != nil {
			code := errors.GetCode(err)
			if code == "" {
				code = errors.ErrCodeFormat
			}
			return artists, errors.Wrap(code, err, "label bar %d", i)
		}
		a, err := Text(ax, geom.Point{X: b.X + b.Width/2, Y: b.Height * opts.Lift}, s, ts)
		if err != nil {
			return artists, err
		}
		artists = append(artists, a)
	}
	return artists, nil
}

// AutoLabelPoints labels each point (xs[i], ys[i]) like a zero-width bar.
func AutoLabelPoints(ax surface.Axes, xs, ys []float64, opts AutoLabelOptions) ([]surface.Artist, error) {
	if err := surface.ValidateXY(xs, ys); err != nil {
		return nil, err
	}
	bars := make([]Bar, len(xs))
	for i := range xs {
		bars[i] = Bar{X: xs[i], Height: ys[i]}
	}
	return AutoLabel(ax, bars, opts)
}

// SubplotLabelOptions configures [SubplotLabels].
type SubplotLabelOptions struct {
	// Skip starts the lettering that many letters after "a".
	Skip int
	// Pos is the label anchor in axes fractions. Default (-0.03, 1).
	Pos *geom.Point
	// FontSize defaults to style.DefaultSubplotLabelFont.
	FontSize float64
}

// SubplotLabels letters each panel a, b, c, ... at its upper left.
func SubplotLabels(axes []surface.Axes, opts SubplotLabelOptions) ([]surface.Artist, error) {
	if opts.Skip < 0 || opts.Skip+len(axes) > 26 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cannot letter %d panels starting at %d", len(axes), opts.Skip)
	}
	pos := geom.Point{X: -0.03, Y: 1}
	if opts.Pos != nil {
		pos = *opts.Pos
	}
	size := opts.FontSize
	if size == 0 {
		size = style.DefaultSubplotLabelFont
	}
	ts := surface.TextStyle{FontSize: size, Bold: true, Color: color.Black, HAlign: surface.AlignRight, VAlign: surface.AlignTop}
	artists := make([]surface.Artist, 0, len(axes))
	for i, ax := range axes {
		a, err := RelativeText(ax, pos, string(rune('a'+opts.Skip+i)), ts)
		if err != nil {
			return artists, err
		}
		artists = append(artists, a)
	}
	return artists, nil
}
