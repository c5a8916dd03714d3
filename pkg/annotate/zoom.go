package annotate

import (
	"image/color"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// ZoomOptions configures [ZoomEffect]. Optional bounds left nil fall back
// to the first panel's. Y bounds are axes fractions.
type ZoomOptions struct {
	// Color of the connectors and connector patch. Default "m".
	Color string
	// LineAlpha defaults to 0.5.
	LineAlpha float64
	// PatchAlpha is the alpha of the first panel's box and of the connector
	// patch. Default 0.15.
	PatchAlpha float64
	// PatchAlpha2 is the alpha of the second panel's box. Default PatchAlpha.
	PatchAlpha2 *float64
	// Locs pairs corners: first panel a, second panel a, first panel b,
	// second panel b. Default lower left to upper left, lower right to
	// upper right.
	Locs *[4]geom.Location
	// LineWidth defaults to 1.5.
	LineWidth float64
	// Solid draws continuous connectors. They are dashed by default.
	Solid bool

	XMin2, XMax2 *float64
	YMin, YMax   *float64 // default 0, 1
	YMin2, YMax2 *float64
}

func orDefault(p *float64, def float64) float64 {
	if p == nil {
		return def
	}
	return *p
}

// ZoomEffect marks the x range [xmin, xmax] on panels from and to of fig
// and connects the two boxes.
func ZoomEffect(fig surface.Figure, from, to int, xmin, xmax float64, opts ZoomOptions) (surface.Zoom, error) {
	if err := errors.ValidateRange("zoom x", xmin, xmax); err != nil {
		return surface.Zoom{}, err
	}
	if opts.Color == "" {
		opts.Color = "m"
	}
	if opts.LineAlpha == 0 {
		opts.LineAlpha = 0.5
	}
	if opts.PatchAlpha == 0 {
		opts.PatchAlpha = 0.15
	}
	if opts.LineWidth == 0 {
		opts.LineWidth = 1.5
	}
	locs := [4]geom.Location{geom.LowerLeft, geom.UpperLeft, geom.LowerRight, geom.UpperRight}
	if opts.Locs != nil {
		locs = *opts.Locs
	}
	c, err := surface.ParseColor(opts.Color)
	if err != nil {
		return surface.Zoom{}, err
	}
	if c == nil {
		return surface.Zoom{}, errors.New(errors.ErrCodeInvalidConfig, "zoom color cannot be none")
	}

	ymin := orDefault(opts.YMin, 0)
	ymax := orDefault(opts.YMax, 1)
	z := surface.Zoom{
		From:    from,
		To:      to,
		FromBox: geom.RectFromExtents(xmin, ymin, xmax, ymax),
		ToBox: geom.RectFromExtents(
			orDefault(opts.XMin2, xmin), orDefault(opts.YMin2, ymin),
			orDefault(opts.XMax2, xmax), orDefault(opts.YMax2, ymax),
		),
		Locs:      locs,
		Line:      surface.LineStyle{Color: surface.WithAlpha(c, opts.LineAlpha), Width: opts.LineWidth, Dashed: !opts.Solid},
		FromPatch: surface.FillStyle{Face: surface.WithAlpha(color.Black, opts.PatchAlpha)},
		ToPatch:   surface.FillStyle{Face: surface.WithAlpha(color.White, orDefault(opts.PatchAlpha2, opts.PatchAlpha))},
		Connector: surface.FillStyle{Face: surface.WithAlpha(c, opts.PatchAlpha)},
	}
	if err := fig.Overlay(z); err != nil {
		return surface.Zoom{}, err
	}
	return z, nil
}
