// Package scene describes figures in TOML.
//
// A scene names the figure size and grid, then lists panels in row-major
// order. Each panel carries its labels, limits and data series, plus the
// annotations to apply:
//
//	rows = 1
//	cols = 2
//
//	[[panels]]
//	title = "Unfolding"
//	xlabel = "Time (s)"
//	ylabel = "Force (pN)"
//	xlim = [0, 10]
//
//	[[panels.series]]
//	kind = "line"
//	x = [0, 1, 2]
//	y = [3, 4, 5]
//	label = "trace"
//
//	[panels.scalebar]
//	unit = "ms"
//
//	[[zooms]]
//	from = 0
//	to = 1
//	xmin = 2
//	xmax = 4
//
// [Decode] and [Load] parse and validate a scene; the pipeline package
// renders it.
package scene

import (
	"bytes"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// Series kinds.
const (
	KindLine      = "line"
	KindPoints    = "points"
	KindErrorBand = "errorband"
	KindBars      = "bars"
)

var validKinds = []string{KindLine, KindPoints, KindErrorBand, KindBars}

// LegendNone disables a panel's legend.
const LegendNone = "none"

// Scene is a figure description.
type Scene struct {
	Name string `toml:"name"`
	// Width and Height are in inches. Zero means the surface default.
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Rows   int     `toml:"rows"`
	Cols   int     `toml:"cols"`
	// SubplotLabels letters the panels a, b, c, ...
	SubplotLabels bool `toml:"subplot_labels"`
	SubplotSkip   int  `toml:"subplot_skip"`

	Panels []Panel  `toml:"panels"`
	Zooms  []Zoom   `toml:"zooms"`
	Broken []Broken `toml:"broken"`
}

// Panel is one set of axes.
type Panel struct {
	Title  string `toml:"title"`
	XLabel string `toml:"xlabel"`
	YLabel string `toml:"ylabel"`
	// Legend is a location (default "best") or "none".
	Legend string    `toml:"legend"`
	XLim   []float64 `toml:"xlim"`
	YLim   []float64 `toml:"ylim"`
	XScale string    `toml:"xscale"`
	YScale string    `toml:"yscale"`
	// PadX pads the x limits around the first series' x values.
	PadX bool `toml:"pad_x"`
	// TickNumber caps the tick count on both axes (5 major, 15 minor).
	TickNumber bool `toml:"tick_number"`
	// Image hides spines and ticks.
	Image bool `toml:"image"`
	// ZeroLabel writes "0" at y=0 on the left edge.
	ZeroLabel bool `toml:"zero_label"`

	Series     []Series    `toml:"series"`
	ScaleBar   *ScaleBar   `toml:"scalebar"`
	Texts      []Text      `toml:"texts"`
	Rectangles []Rectangle `toml:"rectangles"`
}

// Series is inline data for one plot element.
type Series struct {
	Kind  string    `toml:"kind"`
	X     []float64 `toml:"x"`
	Y     []float64 `toml:"y"`
	YErr  []float64 `toml:"yerr"`
	Label string    `toml:"label"`
	Color string    `toml:"color"`
	// Width is the line width or, for bars, the bar width.
	Width  float64 `toml:"width"`
	Dashed bool    `toml:"dashed"`
	// AutoLabel writes each bar's value above it.
	AutoLabel bool `toml:"autolabel"`
}

// ScaleBar configures an x or y scale bar with matching ticks.
type ScaleBar struct {
	Mult      float64 `toml:"mult"`
	Unit      string  `toml:"unit"`
	XFrac     float64 `toml:"x_frac"`
	YFrac     float64 `toml:"y_frac"`
	Width     float64 `toml:"width"`
	LabelFrac float64 `toml:"label_frac"`
	SigFigs   int     `toml:"sig_figs"`
	Format    string  `toml:"format"`
	Vertical  bool    `toml:"vertical"`
	Box       bool    `toml:"box"`
	// NoTicks keeps the axis ticks instead of anchoring them on the bar.
	NoTicks bool `toml:"no_ticks"`
}

// Text is a free annotation.
type Text struct {
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
	Text string  `toml:"text"`
	// Coords is "data" (default) or "axes".
	Coords string  `toml:"coords"`
	Size   float64 `toml:"size"`
	Color  string  `toml:"color"`
}

// Rectangle outlines a region in data coordinates.
type Rectangle struct {
	XLim  []float64 `toml:"xlim"`
	YLim  []float64 `toml:"ylim"`
	Fudge float64   `toml:"fudge"`
	Face  string    `toml:"face"`
	Edge  string    `toml:"edge"`
}

// Zoom connects an x range on one panel with another panel.
type Zoom struct {
	From  int      `toml:"from"`
	To    int      `toml:"to"`
	XMin  float64  `toml:"xmin"`
	XMax  float64  `toml:"xmax"`
	XMin2 *float64 `toml:"xmin2"`
	XMax2 *float64 `toml:"xmax2"`
	Color string   `toml:"color"`
	// LeftToRight joins the first panel's right edge to the second's left.
	LeftToRight bool `toml:"left_to_right"`
}

// Broken draws the series of panel First on both First and Second, cut to
// Range1 and Range2.
type Broken struct {
	First  int       `toml:"first"`
	Second int       `toml:"second"`
	Range1 []float64 `toml:"range1"`
	Range2 []float64 `toml:"range2"`
}

// Decode parses and validates a scene.
func Decode(data []byte) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&s)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse scene")
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unknown scene key %q", undec[0].String())
	}
	s.SetDefaults()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and decodes a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "scene %s", path)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read scene %s", path)
	}
	s, err := Decode(data)
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "scene %s", path)
	}
	return s, nil
}

// Encode returns the scene as TOML.
func (s *Scene) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode scene")
	}
	return buf.Bytes(), nil
}

// SetDefaults fills a 1x1 grid when rows and cols are unset, or derives
// one from the other and the panel count.
func (s *Scene) SetDefaults() {
	n := max(len(s.Panels), 1)
	switch {
	case s.Rows == 0 && s.Cols == 0:
		s.Rows, s.Cols = n, 1
	case s.Rows == 0:
		s.Rows = (n + s.Cols - 1) / s.Cols
	case s.Cols == 0:
		s.Cols = (n + s.Rows - 1) / s.Rows
	}
	for i := range s.Panels {
		for j := range s.Panels[i].Series {
			if s.Panels[i].Series[j].Kind == "" {
				s.Panels[i].Series[j].Kind = KindLine
			}
		}
	}
}

// Validate reports the first problem found as an INVALID_CONFIG error.
func (s *Scene) Validate() error {
	if s.Rows < 1 || s.Cols < 1 {
		return invalid("grid must be at least 1x1, got %dx%d", s.Rows, s.Cols)
	}
	if s.Width < 0 || s.Height < 0 {
		return invalid("figure size must not be negative")
	}
	if len(s.Panels) > s.Rows*s.Cols {
		return invalid("%d panels do not fit a %dx%d grid", len(s.Panels), s.Rows, s.Cols)
	}
	n := s.Rows * s.Cols
	for i, p := range s.Panels {
		if err := p.validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "panel %d", i)
		}
	}
	for i, z := range s.Zooms {
		if !inGrid(z.From, n) || !inGrid(z.To, n) || z.From == z.To {
			return invalid("zoom %d: panels %d and %d must be distinct and in the grid", i, z.From, z.To)
		}
		if z.XMin >= z.XMax {
			return invalid("zoom %d: xmin %v must be below xmax %v", i, z.XMin, z.XMax)
		}
	}
	for i, b := range s.Broken {
		if !inGrid(b.First, n) || !inGrid(b.Second, n) || b.First == b.Second {
			return invalid("broken %d: panels %d and %d must be distinct and in the grid", i, b.First, b.Second)
		}
		if len(b.Range1) != 2 || len(b.Range2) != 2 {
			return invalid("broken %d: ranges need two values", i)
		}
	}
	return nil
}

func (p Panel) validate() error {
	for _, a := range []struct {
		name, scale string
		lim         []float64
	}{{"x", p.XScale, p.XLim}, {"y", p.YScale, p.YLim}} {
		if a.lim != nil && len(a.lim) != 2 {
			return invalid("%slim needs two values, got %d", a.name, len(a.lim))
		}
		if a.scale != "" && a.scale != string(surface.Linear) && a.scale != string(surface.Log) {
			return invalid("%sscale %q must be linear or log", a.name, a.scale)
		}
	}
	for i, sr := range p.Series {
		if !slices.Contains(validKinds, sr.Kind) {
			return invalid("series %d: unknown kind %q", i, sr.Kind)
		}
		if len(sr.X) == 0 || len(sr.X) != len(sr.Y) {
			return invalid("series %d: x has %d values, y has %d", i, len(sr.X), len(sr.Y))
		}
		if sr.Kind == KindErrorBand && len(sr.YErr) != len(sr.Y) {
			return invalid("series %d: errorband needs one yerr per y", i)
		}
		if sr.YErr != nil && len(sr.YErr) != len(sr.Y) {
			return invalid("series %d: yerr has %d values, y has %d", i, len(sr.YErr), len(sr.Y))
		}
	}
	for i, t := range p.Texts {
		if t.Coords != "" && t.Coords != "data" && t.Coords != "axes" {
			return invalid("text %d: coords %q must be data or axes", i, t.Coords)
		}
	}
	for i, r := range p.Rectangles {
		if len(r.XLim) != 2 || len(r.YLim) != 2 {
			return invalid("rectangle %d: xlim and ylim need two values", i)
		}
	}
	return nil
}

func inGrid(i, n int) bool { return i >= 0 && i < n }

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidConfig, format, args...)
}
