package pipeline

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"

	"github.com/matzehuels/plotutil/pkg/annotate"
	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/scene"
	"github.com/matzehuels/plotutil/pkg/style"
	"github.com/matzehuels/plotutil/pkg/surface"
	"github.com/matzehuels/plotutil/pkg/surface/gonumplot"
)

// Default series sizes.
const (
	defaultLineWidth    = 1.5
	defaultMarkerRadius = 3
	defaultBarWidth     = 0.8
	zeroLabelX          = -0.02
)

// NewFigure returns an empty gonum figure sized and gridded for sc.
func NewFigure(sc *scene.Scene) (*gonumplot.Figure, error) {
	var opts []gonumplot.Option
	if sc.Width > 0 && sc.Height > 0 {
		opts = append(opts, gonumplot.WithSize(vg.Length(sc.Width)*vg.Inch, vg.Length(sc.Height)*vg.Inch))
	}
	return gonumplot.NewFigure(sc.Rows, sc.Cols, opts...)
}

// Build draws sc onto fig. fig must have at least sc.Rows*sc.Cols panels.
func Build(fig surface.Figure, sc *scene.Scene, st style.Style) error {
	axes := fig.Axes()
	if len(axes) < len(sc.Panels) {
		return errors.New(errors.ErrCodeInvalidInput, "figure has %d panels, scene needs %d", len(axes), len(sc.Panels))
	}

	broken := map[int]bool{}
	for _, b := range sc.Broken {
		broken[b.First], broken[b.Second] = true, true
	}

	for i, p := range sc.Panels {
		ax := axes[i]
		if p.XScale != "" {
			ax.SetScale(surface.X, surface.Scale(p.XScale))
		}
		if p.YScale != "" {
			ax.SetScale(surface.Y, surface.Scale(p.YScale))
		}
		if broken[i] {
			continue
		}
		if err := drawSeries(ax, p.Series); err != nil {
			return fmt.Errorf("panel %d: %w", i, err)
		}
	}

	for i, b := range sc.Broken {
		series := sc.Panels[b.First].Series
		plot := func(ax surface.Axes, _ int) error { return drawSeries(ax, series) }
		r1 := geom.Limits{Lo: b.Range1[0], Hi: b.Range1[1]}
		r2 := geom.Limits{Lo: b.Range2[0], Hi: b.Range2[1]}
		if err := annotate.BrokenAxis(axes[b.First], axes[b.Second], r1, r2, plot, annotate.BrokenAxisOptions{}); err != nil {
			return fmt.Errorf("broken axis %d: %w", i, err)
		}
		annotate.FormatBroken(axes[b.First], axes[b.Second], st)
	}

	for i, p := range sc.Panels {
		if err := decorate(axes[i], p, st); err != nil {
			return fmt.Errorf("panel %d: %w", i, err)
		}
	}

	if sc.SubplotLabels {
		opts := annotate.SubplotLabelOptions{Skip: sc.SubplotSkip, FontSize: st.SubplotLabelFont}
		if _, err := annotate.SubplotLabels(axes[:len(sc.Panels)], opts); err != nil {
			return err
		}
	}

	for i, z := range sc.Zooms {
		opts := annotate.ZoomOptions{Color: z.Color, XMin2: z.XMin2, XMax2: z.XMax2}
		if z.LeftToRight {
			locs := geom.ZoomLeftToRight
			opts.Locs = &locs
		}
		if _, err := annotate.ZoomEffect(fig, z.From, z.To, z.XMin, z.XMax, opts); err != nil {
			return fmt.Errorf("zoom %d: %w", i, err)
		}
	}
	return nil
}

// drawSeries draws each series in its own color, cycling through the
// Winter palette for series without one.
func drawSeries(ax surface.Axes, series []scene.Series) error {
	cycle := style.Cycle(len(series))
	for i, sr := range series {
		c, err := surface.ParseColor(sr.Color)
		if err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
		if c == nil {
			c = cycle[i]
		}
		if err := drawOne(ax, sr, c); err != nil {
			return fmt.Errorf("series %d: %w", i, err)
		}
	}
	return nil
}

func drawOne(ax surface.Axes, sr scene.Series, c color.Color) error {
	switch sr.Kind {
	case scene.KindPoints:
		r := sr.Width
		if r == 0 {
			r = defaultMarkerRadius
		}
		_, err := ax.Points(sr.X, sr.Y, surface.MarkerStyle{Color: c, Radius: r, Label: sr.Label})
		return err

	case scene.KindErrorBand:
		_, err := annotate.ErrorBand(ax, sr.X, sr.Y, sr.YErr, annotate.ErrorBandOptions{Label: sr.Label, Marker: c})
		return err

	case scene.KindBars:
		w := sr.Width
		if w == 0 {
			w = defaultBarWidth
		}
		bars := make([]annotate.Bar, len(sr.X))
		for i := range sr.X {
			bars[i] = annotate.Bar{X: sr.X[i] - w/2, Width: w, Height: sr.Y[i]}
			if sr.YErr != nil {
				bars[i].Err = &sr.YErr[i]
			}
			r := geom.RectFromExtents(bars[i].X, 0, bars[i].X+w, sr.Y[i])
			fill := surface.FillStyle{Face: c, Edge: surface.LineStyle{Color: color.Black, Width: 0.5, Label: sr.Label}}
			if i > 0 {
				fill.Edge.Label = ""
			}
			if _, err := ax.Polygon(r.Points(), fill); err != nil {
				return err
			}
		}
		if sr.AutoLabel {
			if _, err := annotate.AutoLabel(ax, bars, annotate.AutoLabelOptions{}); err != nil {
				return err
			}
		}
		return nil

	default:
		w := sr.Width
		if w == 0 {
			w = defaultLineWidth
		}
		_, err := ax.Line(sr.X, sr.Y, surface.LineStyle{Color: c, Width: w, Dashed: sr.Dashed, Label: sr.Label})
		return err
	}
}

// decorate applies limits, ticks and annotations, then labels the panel.
func decorate(ax surface.Axes, p scene.Panel, st style.Style) error {
	if p.XLim != nil {
		ax.SetXLimits(geom.Limits{Lo: p.XLim[0], Hi: p.XLim[1]})
	} else if p.PadX && len(p.Series) > 0 {
		if _, err := annotate.PadLimits(ax, surface.X, p.Series[0].X, 0); err != nil {
			return err
		}
	}
	if p.YLim != nil {
		ax.SetYLimits(geom.Limits{Lo: p.YLim[0], Hi: p.YLim[1]})
	}
	if p.TickNumber {
		if err := annotate.TickAxisNumber(ax, annotate.TickNumberOptions{}); err != nil {
			return err
		}
	}

	if sb := p.ScaleBar; sb != nil {
		opts := annotate.ScaleBarOptions{
			Mult: sb.Mult, Unit: sb.Unit,
			XFrac: sb.XFrac, YFrac: sb.YFrac,
			Width: sb.Width, LabelFrac: sb.LabelFrac,
			SigFigs: sb.SigFigs, Format: sb.Format,
			FontSize: st.LegendFont,
			Vertical: sb.Vertical, Box: sb.Box,
		}
		var err error
		switch {
		case sb.NoTicks:
			_, err = annotate.ScaleBar(ax, opts)
		case sb.Vertical:
			_, err = annotate.YScaleBarAndTicks(ax, opts)
		default:
			_, err = annotate.XScaleBarAndTicks(ax, opts)
		}
		if err != nil {
			return fmt.Errorf("scale bar: %w", err)
		}
	}

	for i, t := range p.Texts {
		ts := annotate.Font(st)
		if t.Size > 0 {
			ts.FontSize = t.Size
		}
		c, err := surface.ParseColor(t.Color)
		if err != nil {
			return fmt.Errorf("text %d: %w", i, err)
		}
		if c != nil {
			ts.Color = c
		}
		pos := geom.Point{X: t.X, Y: t.Y}
		if t.Coords == "axes" {
			_, err = annotate.RelativeText(ax, pos, t.Text, ts)
		} else {
			_, err = annotate.Text(ax, pos, t.Text, ts)
		}
		if err != nil {
			return fmt.Errorf("text %d: %w", i, err)
		}
	}

	for i, r := range p.Rectangles {
		face, err := surface.ParseColor(r.Face)
		if err != nil {
			return fmt.Errorf("rectangle %d: %w", i, err)
		}
		edge, err := surface.ParseColor(r.Edge)
		if err != nil {
			return fmt.Errorf("rectangle %d: %w", i, err)
		}
		opts := annotate.RectangleOptions{FudgePct: r.Fudge, Face: face, Edge: surface.LineStyle{Color: edge}}
		xlim := geom.Limits{Lo: r.XLim[0], Hi: r.XLim[1]}
		ylim := geom.Limits{Lo: r.YLim[0], Hi: r.YLim[1]}
		if _, err := annotate.Rectangle(ax, xlim, ylim, opts); err != nil {
			return fmt.Errorf("rectangle %d: %w", i, err)
		}
	}

	if p.ZeroLabel {
		ts := annotate.Font(st)
		ts.HAlign = surface.AlignRight
		if _, err := annotate.ZeroLabel(ax, zeroLabelX, nil, "", ts); err != nil {
			return fmt.Errorf("zero label: %w", err)
		}
	}
	if p.Image {
		annotate.ImageAxis(ax)
	}

	return annotate.Labels(ax, annotate.LabelsOptions{
		X: p.XLabel, Y: p.YLabel, Title: p.Title,
		Style:    st,
		NoLegend: p.Legend == scene.LegendNone || !hasLabels(p.Series),
		Legend:   annotate.LegendOptions{Loc: p.Legend},
	})
}

func hasLabels(series []scene.Series) bool {
	for _, sr := range series {
		if sr.Label != "" {
			return true
		}
	}
	return false
}
