package gonumplot

import (
	"image/color"
	"math"

	xfont "golang.org/x/image/font"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// defaultFontSize is used when a style leaves FontSize unset.
const defaultFontSize = 12

// baseTextStyle returns the plot's default text style at the default size.
func baseTextStyle() text.Style {
	return text.Style{
		Color:   color.Black,
		Font:    font.From(plot.DefaultFont, vg.Points(defaultFontSize)),
		XAlign:  text.XCenter,
		YAlign:  text.YCenter,
		Handler: plot.DefaultTextHandler,
	}
}

// applyFont sets the size, weight and color of st from s, keeping the rest.
func applyFont(st text.Style, s surface.TextStyle) text.Style {
	if s.FontSize > 0 {
		st.Font.Size = vg.Points(s.FontSize)
	}
	if s.Bold {
		st.Font.Weight = xfont.WeightBold
	}
	if s.Color != nil {
		st.Color = s.Color
	}
	return st
}

func textStyle(s surface.TextStyle) text.Style {
	st := applyFont(baseTextStyle(), s)
	switch s.HAlign {
	case surface.AlignLeft:
		st.XAlign = text.XLeft
	case surface.AlignRight:
		st.XAlign = text.XRight
	default:
		st.XAlign = text.XCenter
	}
	switch s.VAlign {
	case surface.AlignTop:
		st.YAlign = text.YTop
	case surface.AlignBottom:
		st.YAlign = text.YBottom
	default:
		st.YAlign = text.YCenter
	}
	st.Rotation = s.Rotation * math.Pi / 180
	return st
}

func lineStyle(s surface.LineStyle) draw.LineStyle {
	ls := draw.LineStyle{Color: s.Color, Width: vg.Points(s.Width)}
	if ls.Color == nil {
		ls.Color = color.Black
	}
	if s.Dashed {
		ls.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	}
	return ls
}

func xys(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i] = plotter.XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

func pointXYs(pts []geom.Point) plotter.XYs {
	out := make(plotter.XYs, len(pts))
	for i, p := range pts {
		out[i] = plotter.XY{X: p.X, Y: p.Y}
	}
	return out
}

// toCanvas maps pts onto the data area c of p.
func toCanvas(c draw.Canvas, p *plot.Plot, coords surface.Coords, pts []geom.Point) []vg.Point {
	out := make([]vg.Point, len(pts))
	if coords == surface.AxesFraction {
		w, h := c.Max.X-c.Min.X, c.Max.Y-c.Min.Y
		for i, pt := range pts {
			out[i] = vg.Point{X: c.Min.X + vg.Length(pt.X)*w, Y: c.Min.Y + vg.Length(pt.Y)*h}
		}
		return out
	}
	trX, trY := p.Transforms(&c)
	for i, pt := range pts {
		out[i] = vg.Point{X: trX(pt.X), Y: trY(pt.Y)}
	}
	return out
}

// path builds an unclipped path through pts.
func path(pts []vg.Point, closed bool) vg.Path {
	var pa vg.Path
	for i, pt := range pts {
		if i == 0 {
			pa.Move(pt)
			continue
		}
		pa.Line(pt)
	}
	if closed {
		pa.Close()
	}
	return pa
}
