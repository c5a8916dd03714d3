package annotate

import (
	"image/color"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// ErrorBandOptions configures [ErrorBand].
type ErrorBandOptions struct {
	// Label names the data in the legend.
	Label string
	// Alpha of the band. Default 0.1.
	Alpha float64
	// Band colors the area between the bounds. Default red.
	Band color.Color
	// Marker colors the data points. Default green.
	Marker color.Color
	// MarkerRadius in points. Default 3.
	MarkerRadius float64
	// Bound colors the dashed bound lines. Default blue.
	Bound color.Color
}

// SetDefaults fills zero fields with the defaults.
func (o *ErrorBandOptions) SetDefaults() {
	if o.Alpha == 0 {
		o.Alpha = 0.1
	}
	if o.Band == nil {
		o.Band = color.RGBA{R: 0xff, A: 0xff}
	}
	if o.Marker == nil {
		o.Marker = color.RGBA{G: 0x80, A: 0xff}
	}
	if o.MarkerRadius == 0 {
		o.MarkerRadius = 3
	}
	if o.Bound == nil {
		o.Bound = color.RGBA{B: 0xff, A: 0xff}
	}
}

// ErrorBandResult holds the artists drawn by [ErrorBand].
type ErrorBandResult struct {
	Band   surface.Artist
	Points surface.Artist
	Upper  surface.Artist
	Lower  surface.Artist
}

// ErrorBand draws ys against xs with a translucent band covering ys±yerr
// and dashed lines along both bounds.
func ErrorBand(ax surface.Axes, xs, ys, yerr []float64, opts ErrorBandOptions) (ErrorBandResult, error) {
	if err := surface.ValidateXY(xs, ys); err != nil {
		return ErrorBandResult{}, err
	}
	if len(yerr) != len(ys) {
		return ErrorBandResult{}, errors.New(errors.ErrCodeInvalidInput, "y has %d values, error has %d", len(ys), len(yerr))
	}
	opts.SetDefaults()

	n := len(xs)
	upper := make([]float64, n)
	lower := make([]float64, n)
	band := make([]geom.Point, 0, 2*n)
	for i := range xs {
		upper[i] = ys[i] + yerr[i]
		lower[i] = ys[i] - yerr[i]
		band = append(band, geom.Point{X: xs[i], Y: upper[i]})
	}
	for i := n - 1; i >= 0; i-- {
		band = append(band, geom.Point{X: xs[i], Y: lower[i]})
	}

	var res ErrorBandResult
	var err error
	if res.Band, err = ax.Polygon(band, surface.FillStyle{Face: surface.WithAlpha(opts.Band, opts.Alpha)}); err != nil {
		return res, err
	}
	if res.Points, err = ax.Points(xs, ys, surface.MarkerStyle{Color: opts.Marker, Radius: opts.MarkerRadius, Label: opts.Label}); err != nil {
		return res, err
	}
	bound := surface.LineStyle{Color: opts.Bound, Width: 1, Dashed: true}
	if res.Upper, err = ax.Line(xs, upper, bound); err != nil {
		return res, err
	}
	if res.Lower, err = ax.Line(xs, lower, bound); err != nil {
		return res, err
	}
	return res, nil
}
