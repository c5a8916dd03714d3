// Package pkg provides the libraries behind plotutil.
//
// # Overview
//
// plotutil formats numbers to significant figures and computes the geometry
// of ticks, scale bars and zoom connectors for scientific figures. The
// drawing itself happens on a plot surface; the libraries only decide what
// goes where and what the labels say. The pkg directory is organized into
// three areas:
//
//  1. Core - [sigfig] (number formatting) and [geom] (ticks, limits, shapes)
//  2. Figures - [surface] (the plot surface), [annotate] (figure helpers),
//     [style] and [scene] (TOML descriptions)
//  3. Orchestration - [pipeline] (scene → figure → bytes) and [cache]
//
// # Architecture
//
// The typical data flow when rendering a scene:
//
//	scene.toml + style.toml
//	         ↓
//	    [scene] and [style] packages (decode + validate)
//	         ↓
//	    [pipeline] package (build panels, cache artifacts)
//	         ↓
//	    [annotate] package (ticks, scale bars, zooms on a [surface.Axes])
//	         ↓
//	    SVG/PNG/PDF/EPS/JPG/TIFF output
//
// # Quick Start
//
// Format a value and lay out a scale bar on a gonum plot:
//
//	s, _ := sigfig.Default.FormatExp(0.0045, 2) // $\mathbf{4.5\cdot 10^{-3}}$
//
//	fig, _ := gonumplot.NewFigure(1, 1)
//	ax := fig.Panel(0)
//	ax.SetXLimits(geom.Limits{Lo: 0, Hi: 2.5})
//	ax.SetYLimits(geom.Limits{Lo: 0, Hi: 20})
//	res, _ := annotate.ScaleBar(ax, annotate.ScaleBarOptions{Unit: "ms"})
//	svg, _ := fig.Render(ctx, "svg")
//
// Render a scene through the cache:
//
//	fc, _ := cache.NewFileCache(dir)
//	runner := pipeline.NewRunner(fc, nil, logger)
//	sc, _ := scene.Load("trace.toml")
//	result, _ := runner.Execute(ctx, sc, pipeline.Options{Formats: []string{"svg", "png"}})
//
// # Main Packages
//
// [sigfig] - Rounding to significant figures, mantissa/exponent
// decomposition and mathtext or plain-text rendering of values with errors.
//
// [geom] - Fixed-spacing, nice and logarithmic ticks, scale-bar geometry,
// rectangles and zoom connectors. Pure functions of axis limits.
//
// [surface] - The plot-surface interface with a recording implementation for
// tests and a gonum/plot backend in surface/gonumplot.
//
// [annotate] - Figure helpers: scale bars, fixed ticks, broken axes, zoom
// effects, error bands, subplot labels and legends.
//
// [pipeline] - Builds scene panels on a surface, renders every requested
// format and caches the bytes.
//
// [cache] - File, Redis and null figure caches keyed by scene hash.
//
// [scene] - TOML figure descriptions: grid, panels, series, zooms.
//
// [style] - Font and tick sizes from ~/.config/plotutil/style.toml, plus
// named colour palettes.
//
// [observability] - Hooks for build, render, cache and HTTP events.
//
// [errors] - Structured error codes shared by all packages.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/sigfig/...    # Specific package
//	go test -run Example        # Examples only
//
// [sigfig]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/sigfig
// [geom]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/geom
// [surface]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/surface
// [surface.Axes]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/surface#Axes
// [annotate]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/annotate
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/cache
// [scene]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/scene
// [style]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/style
// [observability]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/plotutil/pkg/errors
package pkg
