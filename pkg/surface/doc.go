// Package surface defines the plot surface that annotation helpers draw on.
//
// A surface is anything that can report and change axis limits, place tick
// marks at explicit positions, and draw text, lines and polygons. The
// helpers in package annotate compute geometry with package geom and then
// issue these calls; they never hold on to surface state between calls.
//
// # Axes and Figures
//
// [Axes] is a single panel. [Figure] is a grid of panels that can be
// rendered or saved, and that can draw zoom connectors between panels
// via [Figure.Overlay].
//
// Every draw primitive returns an [Artist] handle naming what was drawn.
//
// # Coordinates
//
// Positions are in data coordinates unless the style says
// [AxesFraction], in which case (0, 0) is the lower left corner of the
// data area and (1, 1) the upper right. Fractions outside 0..1 draw outside
// the data area.
//
// # Implementations
//
// The gonumplot subpackage draws on gonum.org/v1/plot. [Recorder] keeps
// every call in memory and is what the tests in this module draw on.
package surface
