// Package annotate applies formatting and geometry results to a plot
// surface: scale bars with matching ticks, axis labels and legends, text
// annotations, error bands, broken axes and zoom connectors.
//
// Every helper takes the target [surface.Axes] (or [surface.Figure])
// explicitly along with an options struct. Zero option fields take the
// documented defaults; call the options' SetDefaults to see them.
//
// # Scale Bars
//
// [ScaleBar] draws a bar sized as a fraction of the axis range and labels
// it with the rounded length in display units. [XScaleBarAndTicks] and
// [YScaleBarAndTicks] also anchor the major ticks on the bar's start with
// the bar's length as spacing, and put minor ticks halfway between:
//
//	_, err := annotate.XScaleBarAndTicks(ax, annotate.ScaleBarOptions{
//	    Mult: 1000, Unit: "ms", Width: 0.1,
//	})
//
// # Labels
//
// [Labels] sets axis labels, the title, tick fonts and the legend in one
// call, using sizes from a [style.Style].
package annotate
