package gonumplot

import (
	"fmt"
	"image/color"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// mark is a string drawn in either coordinate system, optionally on a
// background box. It never widens the data range and is not clipped.
type mark struct {
	pos    geom.Point
	s      string
	style  text.Style
	bg     color.Color
	coords surface.Coords
}

func (m mark) Plot(c draw.Canvas, p *plot.Plot) {
	pt := toCanvas(c, p, m.coords, []geom.Point{m.pos})[0]
	if m.bg != nil {
		w, h := m.style.Width(m.s), m.style.Height(m.s)
		x0 := pt.X + vg.Length(m.style.XAlign)*w
		y0 := pt.Y + vg.Length(m.style.YAlign)*h
		box := []vg.Point{{X: x0, Y: y0}, {X: x0 + w, Y: y0}, {X: x0 + w, Y: y0 + h}, {X: x0, Y: y0 + h}}
		c.SetColor(m.bg)
		c.Fill(path(box, true))
	}
	c.FillText(m.style, pt, m.s)
}

// runs draws colored strings end to end. A run containing a newline puts
// the next run at its own x, half its height lower.
type runs struct {
	pos    geom.Point
	runs   []surface.TextRun
	style  text.Style
	coords surface.Coords
}

func (r runs) Plot(c draw.Canvas, p *plot.Plot) {
	pt := toCanvas(c, p, r.coords, []geom.Point{r.pos})[0]
	for _, run := range r.runs {
		st := r.style
		if run.Color != nil {
			st.Color = run.Color
		}
		c.FillText(st, pt, run.S)
		if strings.Contains(run.S, "\n") {
			pt.Y -= st.Height(run.S) / 2
			continue
		}
		pt.X += st.Width(run.S)
	}
}

// shape is a polyline or polygon that does not widen the data range. Data
// coordinates are clipped to the data area; axes fractions are not.
type shape struct {
	pts    []geom.Point
	coords surface.Coords
	fill   color.Color
	stroke draw.LineStyle
	closed bool
}

func (s shape) Plot(c draw.Canvas, p *plot.Plot) {
	pts := toCanvas(c, p, s.coords, s.pts)
	if s.coords == surface.Data {
		if s.fill != nil {
			c.FillPolygon(s.fill, pts)
		}
		if s.stroke.Width > 0 {
			if s.closed {
				pts = append(pts, pts[0])
			}
			c.StrokeLines(s.stroke, pts)
		}
		return
	}
	if s.fill != nil {
		c.SetColor(s.fill)
		c.Fill(path(pts, true))
	}
	if s.stroke.Width > 0 {
		c.SetLineStyle(s.stroke)
		c.Stroke(path(pts, s.closed))
	}
}

// tickSet places ticks at fixed positions, falling back to auto for
// whichever of major and minor was never set.
type tickSet struct {
	auto     plot.Ticker
	major    []float64
	labels   []string
	minor    []float64
	majorSet bool
	minorSet bool
}

func (t *tickSet) Ticks(min, max float64) []plot.Tick {
	var ticks []plot.Tick
	inside := func(v float64) bool { return v >= min && v <= max }

	if t.majorSet {
		for i, v := range t.major {
			if !inside(v) {
				continue
			}
			label := fmt.Sprintf("%.6g", v)
			if i < len(t.labels) {
				label = t.labels[i]
			}
			ticks = append(ticks, plot.Tick{Value: v, Label: label})
		}
	}
	if t.minorSet {
		for _, v := range t.minor {
			if inside(v) {
				ticks = append(ticks, plot.Tick{Value: v})
			}
		}
	}
	if t.majorSet && t.minorSet {
		return ticks
	}
	for _, tk := range t.auto.Ticks(min, max) {
		if tk.IsMinor() && !t.minorSet || !tk.IsMinor() && !t.majorSet {
			ticks = append(ticks, tk)
		}
	}
	return ticks
}
