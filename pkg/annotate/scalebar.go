package annotate

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/sigfig"
	"github.com/matzehuels/plotutil/pkg/style"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// Scale bar defaults.
const (
	DefaultScaleBarMult      = 1000
	DefaultScaleBarUnit      = "ms"
	DefaultScaleBarFrac      = 0.2
	DefaultScaleBarLabelFrac = 0.15
	DefaultScaleBarSigFigs   = 2
	DefaultScaleBarFormat    = "%.0f"
	DefaultScaleBarLineWidth = 1.25
)

// ScaleBarOptions configures [ScaleBar]. Fractions are of the axis range
// and are not clamped. A zero field takes its default, so a bar touching the
// left or top edge needs a tiny fraction (1e-9) instead of 0.
type ScaleBarOptions struct {
	// Mult converts the bar length in data units to the label unit.
	// Default 1000.
	Mult float64
	// Unit is appended to the label. Default "ms".
	Unit string
	// XFrac places the bar centre right of the left edge. Default 0.2;
	// zero also means the default.
	XFrac float64
	// YFrac places the bar centre below the top edge. Default 0.2;
	// zero also means the default.
	YFrac float64
	// Width is the bar length for horizontal bars. Default 0.2.
	Width float64
	// LabelFrac is the bar height: for horizontal bars the gap between the
	// label and the line below it, for vertical bars the bar length.
	// Default 0.15.
	LabelFrac float64
	// SigFigs rounds the label value. Default 2.
	SigFigs int
	// Format renders the rounded value. Default "%.0f".
	Format string
	// FontSize of the label. Default style.DefaultLegendFont.
	FontSize float64
	// LineWidth of the bar line. Default 1.25.
	LineWidth float64
	// Vertical draws a y scale bar.
	Vertical bool
	// Box fills the bar behind a white label instead of drawing a line.
	Box bool
}

// SetDefaults fills zero fields with the defaults.
func (o *ScaleBarOptions) SetDefaults() {
	if o.Mult == 0 {
		o.Mult = DefaultScaleBarMult
	}
	if o.Unit == "" {
		o.Unit = DefaultScaleBarUnit
	}
	if o.XFrac == 0 {
		o.XFrac = DefaultScaleBarFrac
	}
	if o.YFrac == 0 {
		o.YFrac = DefaultScaleBarFrac
	}
	if o.Width == 0 {
		o.Width = DefaultScaleBarFrac
	}
	if o.LabelFrac == 0 {
		o.LabelFrac = DefaultScaleBarLabelFrac
	}
	if o.SigFigs == 0 {
		o.SigFigs = DefaultScaleBarSigFigs
	}
	if o.Format == "" {
		o.Format = DefaultScaleBarFormat
	}
	if o.FontSize == 0 {
		o.FontSize = style.DefaultLegendFont
	}
	if o.LineWidth == 0 {
		o.LineWidth = DefaultScaleBarLineWidth
	}
}

// ScaleBarResult describes a drawn scale bar.
type ScaleBarResult struct {
	Bar   geom.ScaleBar
	Label string
	Text  surface.Artist
	Shape surface.Artist
}

// ScaleBar draws a scale bar on ax. Horizontal bars are a line under the
// label; vertical bars are a line at the label's right edge. Box bars are
// a filled rectangle behind the label.
func ScaleBar(ax surface.Axes, opts ScaleBarOptions) (ScaleBarResult, error) {
	opts.SetDefaults()
	widthFrac := opts.Width
	if opts.Vertical {
		widthFrac = 0
	}
	bar, err := geom.ScaleBarGeometry(ax.XLimits(), ax.YLimits(), opts.XFrac, opts.YFrac, widthFrac, opts.LabelFrac)
	if err != nil {
		return ScaleBarResult{}, err
	}

	length := bar.Width
	if opts.Vertical {
		length = bar.Height
	}
	rounded, err := sigfig.Round(length*opts.Mult, opts.SigFigs)
	if err != nil {
		return ScaleBarResult{}, err
	}
	res := ScaleBarResult{Bar: bar, Label: fmt.Sprintf(opts.Format, rounded) + opts.Unit}

	ts := surface.TextStyle{FontSize: opts.FontSize, Bold: true, Color: color.Black}
	if opts.Vertical {
		ts.HAlign = surface.AlignRight
	}
	x0, x1 := bar.XSpan()
	y0, y1 := bar.YSpan()
	switch {
	case opts.Box:
		ts.Color = color.White
		res.Shape, err = ax.Polygon(geom.RectFromExtents(x0, y0, x1, y1).Points(), surface.FillStyle{Face: color.Black})
	case opts.Vertical:
		res.Shape, err = ax.Line([]float64{bar.Center.X, bar.Center.X}, []float64{y0, y1},
			surface.LineStyle{Color: color.Black, Width: opts.LineWidth})
	default:
		res.Shape, err = ax.Line([]float64{x0, x1}, []float64{y0, y0},
			surface.LineStyle{Color: color.Black, Width: opts.LineWidth})
	}
	if err != nil {
		return ScaleBarResult{}, err
	}
	res.Text, err = ax.Text(bar.Center, res.Label, ts)
	if err != nil {
		return ScaleBarResult{}, err
	}
	return res, nil
}

// XScaleBarAndTicks draws a horizontal scale bar and places x ticks every
// bar length, starting at the bar's left end, with minor ticks halfway.
func XScaleBarAndTicks(ax surface.Axes, opts ScaleBarOptions) (ScaleBarResult, error) {
	opts.Vertical = false
	lim := ax.XLimits()
	res, err := ScaleBar(ax, opts)
	if err != nil {
		return res, err
	}
	lo, _ := res.Bar.XSpan()
	return res, anchorTicks(ax, surface.X, lim, lo, res.Bar.Width)
}

// YScaleBarAndTicks draws a vertical scale bar and places y ticks every
// bar length, starting at the bar's bottom end, with minor ticks halfway.
func YScaleBarAndTicks(ax surface.Axes, opts ScaleBarOptions) (ScaleBarResult, error) {
	opts.Vertical = true
	lim := ax.YLimits()
	res, err := ScaleBar(ax, opts)
	if err != nil {
		return res, err
	}
	lo, _ := res.Bar.YSpan()
	return res, anchorTicks(ax, surface.Y, lim, lo, res.Bar.Height)
}

func anchorTicks(ax surface.Axes, dim surface.Dim, lim geom.Limits, offset, spacing float64) error {
	major, err := geom.FixedTicks(offset, spacing, lim)
	if err != nil {
		return err
	}
	minor, err := geom.FixedTicks(geom.MinorOffset(offset, spacing), spacing, lim)
	if err != nil {
		return err
	}
	ax.SetTicks(dim, surface.Major, major)
	ax.SetTicks(dim, surface.Minor, minor)
	return nil
}
