package gonumplot

import (
	"math"
	"slices"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/surface"
)

type legendEntry struct {
	label string
	thumb plot.Thumbnailer
}

// Axes is a surface.Axes drawing on a single *plot.Plot.
type Axes struct {
	p       *plot.Plot
	ticks   [2]*tickSet
	fixed   [2]*geom.Limits
	entries []legendEntry
}

var _ surface.Axes = (*Axes)(nil)

// NewAxes returns an empty panel.
func NewAxes() *Axes {
	a := &Axes{p: plot.New()}
	for _, dim := range []surface.Dim{surface.X, surface.Y} {
		ts := &tickSet{auto: plot.DefaultTicks{}}
		a.ticks[dim] = ts
		a.axis(dim).Tick.Marker = ts
	}
	return a
}

// Plot returns the underlying plot.
func (a *Axes) Plot() *plot.Plot { return a.p }

func (a *Axes) axis(dim surface.Dim) *plot.Axis {
	if dim == surface.Y {
		return &a.p.Y
	}
	return &a.p.X
}

// add adds pl to the plot and restores any fixed limits it widened.
func (a *Axes) add(pl plot.Plotter) {
	a.p.Add(pl)
	for dim, lim := range a.fixed {
		if lim != nil {
			ax := a.axis(surface.Dim(dim))
			ax.Min, ax.Max = lim.Min(), lim.Max()
		}
	}
}

// limits mirrors the range gonum will draw: infinite ends become zero and
// an empty range is widened by one on each side.
func (a *Axes) limits(dim surface.Dim) geom.Limits {
	ax := a.axis(dim)
	lo, hi := ax.Min, ax.Max
	if math.IsInf(lo, 0) {
		lo = 0
	}
	if math.IsInf(hi, 0) {
		hi = 0
	}
	if lo > hi {
		lo, hi = hi, lo
	}
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	return geom.Limits{Lo: lo, Hi: hi}
}

func (a *Axes) setLimits(dim surface.Dim, lim geom.Limits) {
	a.fixed[dim] = &lim
	ax := a.axis(dim)
	ax.Min, ax.Max = lim.Min(), lim.Max()
}

func (a *Axes) XLimits() geom.Limits { return a.limits(surface.X) }
func (a *Axes) YLimits() geom.Limits { return a.limits(surface.Y) }
func (a *Axes) SetXLimits(lim geom.Limits) { a.setLimits(surface.X, lim) }
func (a *Axes) SetYLimits(lim geom.Limits) { a.setLimits(surface.Y, lim) }

func (a *Axes) Scale(dim surface.Dim) surface.Scale {
	if _, ok := a.axis(dim).Scale.(plot.LogScale); ok {
		return surface.Log
	}
	return surface.Linear
}

func (a *Axes) SetScale(dim surface.Dim, s surface.Scale) {
	ax := a.axis(dim)
	if s == surface.Log {
		ax.Scale = plot.LogScale{}
		a.ticks[dim].auto = plot.LogTicks{Prec: -1}
		return
	}
	ax.Scale = plot.LinearScale{}
	a.ticks[dim].auto = plot.DefaultTicks{}
}

func (a *Axes) SetTicks(dim surface.Dim, which surface.Which, positions []float64) {
	ts := a.ticks[dim]
	if which == surface.Minor {
		ts.minor, ts.minorSet = slices.Clone(positions), true
		return
	}
	ts.major, ts.labels, ts.majorSet = slices.Clone(positions), nil, true
}

func (a *Axes) SetTickLabels(dim surface.Dim, positions []float64, labels []string, style surface.TextStyle) {
	ts := a.ticks[dim]
	ts.major, ts.labels, ts.majorSet = slices.Clone(positions), slices.Clone(labels), true
	ax := a.axis(dim)
	ax.Tick.Label = applyFont(ax.Tick.Label, style)
	if style.Rotation != 0 {
		ax.Tick.Label.Rotation = style.Rotation * math.Pi / 180
	}
}

func (a *Axes) SetTickStyle(dim surface.Dim, which surface.Which, style surface.TickStyle) {
	if which == surface.Minor {
		return
	}
	ax := a.axis(dim)
	if style.Length > 0 {
		ax.Tick.Length = vg.Points(style.Length)
	}
	if style.Width > 0 {
		ax.Tick.LineStyle.Width = vg.Points(style.Width)
	}
	if style.LabelSize > 0 {
		ax.Tick.Label.Font.Size = vg.Points(style.LabelSize)
	}
}

func (a *Axes) HideSpine(side surface.Side) {
	switch side {
	case surface.Left:
		a.p.Y.LineStyle.Width = 0
	case surface.Bottom:
		a.p.X.LineStyle.Width = 0
	}
}

func (a *Axes) SetLabel(dim surface.Dim, s string, style surface.TextStyle) {
	ax := a.axis(dim)
	ax.Label.Text = s
	ax.Label.TextStyle = applyFont(ax.Label.TextStyle, style)
}

func (a *Axes) SetTitle(s string, style surface.TextStyle) {
	a.p.Title.Text = s
	a.p.Title.TextStyle = applyFont(a.p.Title.TextStyle, style)
}

func (a *Axes) Text(pos geom.Point, s string, style surface.TextStyle) (surface.Artist, error) {
	st := textStyle(style)
	if style.Coords == surface.Data && style.Background == nil {
		labels, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: pos.X, Y: pos.Y}},
			Labels: []string{s},
		})
		if err != nil {
			return surface.Artist{}, errors.Wrap(errors.ErrCodeRender, err, "text %q", s)
		}
		labels.TextStyle[0] = st
		a.add(labels)
		return surface.NewArtist(surface.KindText), nil
	}
	a.p.Add(mark{pos: pos, s: s, style: st, bg: style.Background, coords: style.Coords})
	return surface.NewArtist(surface.KindText), nil
}

func (a *Axes) TextRuns(pos geom.Point, rs []surface.TextRun, style surface.TextStyle) (surface.Artist, error) {
	if len(rs) == 0 {
		return surface.Artist{}, errors.New(errors.ErrCodeInvalidInput, "no text runs to draw")
	}
	st := textStyle(style)
	st.XAlign = text.XLeft
	a.p.Add(runs{pos: pos, runs: slices.Clone(rs), style: st, coords: style.Coords})
	return surface.NewArtist(surface.KindText), nil
}

func (a *Axes) Line(xs, ys []float64, style surface.LineStyle) (surface.Artist, error) {
	if err := surface.ValidateXY(xs, ys); err != nil {
		return surface.Artist{}, err
	}
	if style.Coords == surface.AxesFraction {
		pts := make([]geom.Point, len(xs))
		for i := range xs {
			pts[i] = geom.Point{X: xs[i], Y: ys[i]}
		}
		a.p.Add(shape{pts: pts, coords: style.Coords, stroke: lineStyle(style)})
		return surface.NewArtist(surface.KindLine), nil
	}
	l, err := plotter.NewLine(xys(xs, ys))
	if err != nil {
		return surface.Artist{}, errors.Wrap(errors.ErrCodeRender, err, "line")
	}
	l.LineStyle = lineStyle(style)
	a.add(l)
	if style.Label != "" {
		a.entries = append(a.entries, legendEntry{style.Label, l})
	}
	return surface.NewArtist(surface.KindLine), nil
}

func (a *Axes) Points(xs, ys []float64, style surface.MarkerStyle) (surface.Artist, error) {
	if err := surface.ValidateXY(xs, ys); err != nil {
		return surface.Artist{}, err
	}
	sc, err := plotter.NewScatter(xys(xs, ys))
	if err != nil {
		return surface.Artist{}, errors.Wrap(errors.ErrCodeRender, err, "points")
	}
	sc.GlyphStyle.Shape = draw.CircleGlyph{}
	if style.Color != nil {
		sc.GlyphStyle.Color = style.Color
	}
	if style.Radius > 0 {
		sc.GlyphStyle.Radius = vg.Points(style.Radius)
	}
	a.add(sc)
	if style.Label != "" {
		a.entries = append(a.entries, legendEntry{style.Label, sc})
	}
	return surface.NewArtist(surface.KindPoints), nil
}

func (a *Axes) Polygon(pts []geom.Point, style surface.FillStyle) (surface.Artist, error) {
	if len(pts) < 3 {
		return surface.Artist{}, errors.New(errors.ErrCodeInvalidInput, "polygon needs at least 3 points, got %d", len(pts))
	}
	if style.Coords == surface.AxesFraction {
		a.p.Add(shape{pts: pts, coords: style.Coords, fill: style.Face, stroke: lineStyle(style.Edge), closed: true})
		return surface.NewArtist(surface.KindPolygon), nil
	}
	poly, err := plotter.NewPolygon(pointXYs(pts))
	if err != nil {
		return surface.Artist{}, errors.Wrap(errors.ErrCodeRender, err, "polygon")
	}
	poly.Color = style.Face
	poly.LineStyle = lineStyle(style.Edge)
	a.add(poly)
	if style.Edge.Label != "" {
		a.entries = append(a.entries, legendEntry{style.Edge.Label, poly})
	}
	return surface.NewArtist(surface.KindPolygon), nil
}

func (a *Axes) Legend(style surface.LegendStyle) (surface.Artist, error) {
	leg := plot.NewLegend()
	switch style.Loc {
	case "", "best", "upper right":
		leg.Top = true
	case "upper left":
		leg.Top, leg.Left = true, true
	case "lower left":
		leg.Left = true
	case "lower right":
	default:
		return surface.Artist{}, errors.New(errors.ErrCodeInvalidInput, "unknown legend location %q", style.Loc)
	}
	if style.FontSize > 0 {
		leg.TextStyle.Font.Size = vg.Points(style.FontSize)
	}
	for _, e := range a.entries {
		leg.Add(e.label, e.thumb)
	}
	a.p.Legend = leg
	return surface.NewArtist(surface.KindLegend), nil
}
