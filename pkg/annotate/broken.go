package annotate

import (
	"fmt"
	"image/color"

	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/style"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// BrokenAxisOptions configures [BrokenAxis].
type BrokenAxisOptions struct {
	// Fudge moves the markers off the cut edges, in axes fractions.
	// Default 0.015.
	Fudge float64
	// Marker is drawn at each cut corner. Default "∫".
	Marker string
	// MarkerSize in points. Default 14.
	MarkerSize float64
}

// SetDefaults fills zero fields with the defaults.
func (o *BrokenAxisOptions) SetDefaults() {
	if o.Fudge == 0 {
		o.Fudge = 0.015
	}
	if o.Marker == "" {
		o.Marker = "∫"
	}
	if o.MarkerSize == 0 {
		o.MarkerSize = 14
	}
}

// BrokenAxis shows one x axis cut in two: plot draws the same data on both
// panels (called with 1 for ax1 and 2 for ax2), then ax1 is limited to
// range1 and ax2 to range2. Cut markers go on the inner corners.
func BrokenAxis(ax1, ax2 surface.Axes, range1, range2 geom.Limits, plot func(ax surface.Axes, n int) error, opts BrokenAxisOptions) error {
	if err := range1.Validate("first x"); err != nil {
		return err
	}
	if err := range2.Validate("second x"); err != nil {
		return err
	}
	opts.SetDefaults()

	ax1.SetXLimits(range1)
	ax2.SetXLimits(range2)
	for i, ax := range []surface.Axes{ax1, ax2} {
		if err := plot(ax, i+1); err != nil {
			return fmt.Errorf("plot panel %d: %w", i+1, err)
		}
	}
	// Plotting may have moved the limits.
	ax1.SetXLimits(range1)
	ax2.SetXLimits(range2)

	ts := surface.TextStyle{FontSize: opts.MarkerSize, Color: color.Black}
	left, right := geom.BrokenAxisMarkers(opts.Fudge)
	for _, m := range []struct {
		ax  surface.Axes
		pts []geom.Point
	}{{ax1, left}, {ax2, right}} {
		for _, p := range m.pts {
			if _, err := RelativeText(m.ax, p, opts.Marker, ts); err != nil {
				return err
			}
		}
	}
	return nil
}

// FormatBroken hides the spines between the two halves of a broken axis,
// applies st's tick fonts to ax1 and clears ax2's y label and y ticks.
func FormatBroken(ax1, ax2 surface.Axes, st style.Style) {
	ax1.HideSpine(surface.Right)
	ax2.HideSpine(surface.Left)
	TickAxisFont(ax1, st)
	ax2.SetTicks(surface.Y, surface.Major, nil)
	ax2.SetTicks(surface.Y, surface.Minor, nil)
	ax2.SetLabel(surface.Y, "", st.Label())
}
