// Package geom computes tick positions and annotation geometry in data
// coordinates. Nothing here touches a plot surface; package annotate applies
// the results.
//
// # Fixed Ticks
//
// [FixedTicks] returns every offset + k*spacing needed to cover an axis
// range, walking whole intervals out from the offset so that the offset is
// always a tick and each edge is reached or passed:
//
//	ticks, _ := geom.FixedTicks(0, 10, geom.Limits{Lo: -25, Hi: 22})
//	// [-30 -20 -10 0 10 20 30]
//
// [MinorOffset] gives the anchor for minor ticks interleaved halfway
// between major ones.
//
// # Scale Bars
//
// [ScaleBarGeometry] places a bar relative to the axis extents: the centre
// is offset from the left edge and the top edge by fractions of each range,
// and the bar's size is a fraction of each range.
//
// # Layout Shapes
//
// [Rectangle], [Triangle], [Corner], [Connect] and [BrokenAxisMarkers]
// produce the shapes behind highlight boxes, zoom connectors and broken-axis
// markers.
package geom
