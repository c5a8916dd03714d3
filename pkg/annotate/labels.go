package annotate

import (
	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/style"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// LabelsOptions configures [Labels].
type LabelsOptions struct {
	X, Y, Title string
	// Style supplies font and tick sizes. The zero value means style.Default().
	Style style.Style
	// NoLegend skips the legend.
	NoLegend bool
	// Legend configures the legend when drawn.
	Legend LegendOptions
}

// Labels sets the axis labels and title, applies tick fonts, and draws a
// legend unless NoLegend is set.
func Labels(ax surface.Axes, opts LabelsOptions) error {
	st := opts.Style
	if st == (style.Style{}) {
		st = style.Default()
	}
	ax.SetLabel(surface.X, opts.X, st.Label())
	ax.SetLabel(surface.Y, opts.Y, st.Label())
	ax.SetTitle(opts.Title, st.Title())
	TickAxisFont(ax, st)
	if opts.NoLegend {
		return nil
	}
	if opts.Legend.FontSize == 0 {
		opts.Legend.FontSize = st.LegendFont
	}
	_, err := Legend(ax, opts.Legend)
	return err
}

// LegendOptions configures [Legend].
type LegendOptions struct {
	// Loc defaults to "best".
	Loc      string
	FontSize float64
	Frame    bool
	// Background is a color name for the legend frame, see surface.ParseColor.
	Background string
}

// Legend draws the legend of every labeled artist on ax.
func Legend(ax surface.Axes, opts LegendOptions) (surface.Artist, error) {
	if opts.Loc == "" {
		opts.Loc = "best"
	}
	if opts.FontSize == 0 {
		opts.FontSize = style.DefaultLegendFont
	}
	bg, err := surface.ParseColor(opts.Background)
	if err != nil {
		return surface.Artist{}, err
	}
	return ax.Legend(surface.LegendStyle{Loc: opts.Loc, FontSize: opts.FontSize, Frame: opts.Frame, Background: bg})
}

// TickAxisFont applies the tick sizes and tick label font of st to both
// axes.
func TickAxisFont(ax surface.Axes, st style.Style) {
	for _, dim := range []surface.Dim{surface.X, surface.Y} {
		ax.SetTickStyle(dim, surface.Major, st.MajorTicks())
		ax.SetTickStyle(dim, surface.Minor, st.MinorTicks())
	}
}

// TickNumberOptions sets how many ticks [TickAxisNumber] allows per axis.
type TickNumberOptions struct {
	XMajor, XMinor int // default 5, 15
	YMajor, YMinor int // default 5, 15
}

// SetDefaults fills zero fields with the defaults.
func (o *TickNumberOptions) SetDefaults() {
	for _, n := range []*int{&o.XMajor, &o.YMajor} {
		if *n == 0 {
			*n = 5
		}
	}
	for _, n := range []*int{&o.XMinor, &o.YMinor} {
		if *n == 0 {
			*n = 15
		}
	}
}

// TickAxisNumber places at most the given number of nice ticks on each
// axis: decades on log axes, with minors at 2..9 times each decade, and
// steps of 1, 2 or 5 times a power of ten otherwise, with minors taken
// from the finer count.
func TickAxisNumber(ax surface.Axes, opts TickNumberOptions) error {
	opts.SetDefaults()
	for _, a := range []struct {
		dim          surface.Dim
		lim          geom.Limits
		major, minor int
	}{
		{surface.X, ax.XLimits(), opts.XMajor, opts.XMinor},
		{surface.Y, ax.YLimits(), opts.YMajor, opts.YMinor},
	} {
		var major, minor []float64
		if ax.Scale(a.dim) == surface.Log {
			m, n, err := geom.LogTicks(a.lim, a.major)
			if err != nil {
				return err
			}
			major, minor = m, n
		} else {
			m, _, err := geom.MaxNTicks(a.lim, a.major)
			if err != nil {
				return err
			}
			n, _, err := geom.MaxNTicks(a.lim, a.minor)
			if err != nil {
				return err
			}
			major, minor = m, n
		}
		ax.SetTicks(a.dim, surface.Major, major)
		ax.SetTicks(a.dim, surface.Minor, minor)
	}
	return nil
}

// TickLabels labels the major ticks of one axis. x labels default to
// vertical; set ts.Rotation to override.
func TickLabels(ax surface.Axes, dim surface.Dim, positions []float64, labels []string, ts surface.TextStyle) error {
	if len(positions) != len(labels) {
		return errors.New(errors.ErrCodeInvalidInput, "%d tick positions but %d labels", len(positions), len(labels))
	}
	if ts.FontSize == 0 {
		ts.FontSize = style.DefaultLabelFont
	}
	if dim == surface.X && ts.Rotation == 0 {
		ts.Rotation = 90
	}
	ax.SetTickLabels(dim, positions, labels, ts)
	return nil
}

// PadLimits sets the limits of one axis around vals, padded by factor
// (default 0.5) times the smallest gap between distinct values.
func PadLimits(ax surface.Axes, dim surface.Dim, vals []float64, factor float64) (geom.Limits, error) {
	if factor == 0 {
		factor = 0.5
	}
	lim, err := geom.PadLimits(vals, factor)
	if err != nil {
		return geom.Limits{}, err
	}
	if dim == surface.Y {
		ax.SetYLimits(lim)
	} else {
		ax.SetXLimits(lim)
	}
	return lim, nil
}

// ImageAxis hides every spine and tick, for panels showing an image.
func ImageAxis(ax surface.Axes) {
	for _, side := range []surface.Side{surface.Left, surface.Right, surface.Top, surface.Bottom} {
		ax.HideSpine(side)
	}
	for _, dim := range []surface.Dim{surface.X, surface.Y} {
		ax.SetTicks(dim, surface.Major, nil)
		ax.SetTicks(dim, surface.Minor, nil)
	}
}
