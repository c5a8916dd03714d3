// Package gonumplot implements the plot surface on gonum.org/v1/plot.
//
// Each [Axes] wraps a *plot.Plot. A [Figure] lays panels out on a grid with
// plot.Align and renders them through draw.NewFormattedCanvas, so every
// format gonum supports (svg, png, pdf, eps, jpg, tiff) is available:
//
//	fig, _ := gonumplot.NewFigure(1, 2, gonumplot.WithSize(10*vg.Inch, 4*vg.Inch))
//	left := fig.Panel(0)
//	left.Line(xs, ys, surface.LineStyle{Width: 1.5, Label: "data"})
//	err := fig.Save(ctx, "out.svg", "svg")
//
// # Differences From Other Surfaces
//
// gonum draws a single spine per axis (left and bottom) and never inverts
// an axis, so hiding the right or top spine is a no-op and limits are
// stored low to high. Minor ticks are drawn at half the major length and
// share its width; SetTickStyle with [surface.Minor] is ignored. Legends
// have no frame or background.
package gonumplot
