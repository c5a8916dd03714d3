package geom

// ScaleBar is a bar centred at Center, Width by Height in data units.
type ScaleBar struct {
	Center        Point
	Width, Height float64
}

// XSpan returns the bar's horizontal extent, left to right.
func (b ScaleBar) XSpan() (lo, hi float64) {
	return b.Center.X - b.Width/2, b.Center.X + b.Width/2
}

// YSpan returns the bar's vertical extent, bottom to top.
func (b ScaleBar) YSpan() (lo, hi float64) {
	return b.Center.Y - b.Height/2, b.Center.Y + b.Height/2
}

// ScaleBarGeometry places a scale bar on an axes with limits xlim and ylim.
//
// The centre sits xFrac of the x range right of the left edge and yFrac of
// the y range below the top edge. Width and height are widthFrac and
// heightFrac of the x and y ranges. Fractions are not clamped.
func ScaleBarGeometry(xlim, ylim Limits, xFrac, yFrac, widthFrac, heightFrac float64) (ScaleBar, error) {
	if err := xlim.Validate("x"); err != nil {
		return ScaleBar{}, err
	}
	if err := ylim.Validate("y"); err != nil {
		return ScaleBar{}, err
	}
	return ScaleBar{
		Center: Point{
			X: xlim.Min() + xlim.Span()*xFrac,
			Y: ylim.Max() - ylim.Span()*yFrac,
		},
		Width:  xlim.Span() * widthFrac,
		Height: ylim.Span() * heightFrac,
	}, nil
}
