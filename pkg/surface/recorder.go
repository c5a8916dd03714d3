package surface

import (
	"context"
	"fmt"
	"slices"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
)

// TickKey identifies one tick set of a panel.
type TickKey struct {
	Dim   Dim
	Which Which
}

// TextCall is a recorded [Axes.Text] call.
type TextCall struct {
	Pos   geom.Point
	S     string
	Style TextStyle
}

// TextRunsCall is a recorded [Axes.TextRuns] call.
type TextRunsCall struct {
	Pos   geom.Point
	Runs  []TextRun
	Style TextStyle
}

// LineCall is a recorded [Axes.Line] call.
type LineCall struct {
	XS, YS []float64
	Style  LineStyle
}

// PointsCall is a recorded [Axes.Points] call.
type PointsCall struct {
	XS, YS []float64
	Style  MarkerStyle
}

// PolygonCall is a recorded [Axes.Polygon] call.
type PolygonCall struct {
	Pts   []geom.Point
	Style FillStyle
}

// Recorder is an in-memory [Axes] that keeps every call. Limits start at
// 0..1 and only change through SetXLimits and SetYLimits.
type Recorder struct {
	XLim, YLim  geom.Limits
	Scales      map[Dim]Scale
	Ticks       map[TickKey][]float64
	TickLabels  map[Dim][]string
	TickStyles  map[TickKey]TickStyle
	Labels      map[Dim]string
	LabelStyles map[Dim]TextStyle
	Title       string
	TitleStyle  TextStyle
	Hidden      []Side

	Texts    []TextCall
	Runs     []TextRunsCall
	Lines    []LineCall
	Markers  []PointsCall
	Polygons []PolygonCall
	Legends  []LegendStyle
	Artists  []Artist

	// Calls holds method names in call order.
	Calls []string

	fail map[string]error
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		XLim:        geom.Limits{Lo: 0, Hi: 1},
		YLim:        geom.Limits{Lo: 0, Hi: 1},
		Scales:      map[Dim]Scale{X: Linear, Y: Linear},
		Ticks:       map[TickKey][]float64{},
		TickLabels:  map[Dim][]string{},
		TickStyles:  map[TickKey]TickStyle{},
		Labels:      map[Dim]string{},
		LabelStyles: map[Dim]TextStyle{},
	}
}

// FailOn makes every later call to the named draw method return err.
func (r *Recorder) FailOn(method string, err error) {
	if r.fail == nil {
		r.fail = map[string]error{}
	}
	r.fail[method] = err
}

// Count returns how many times method was called.
func (r *Recorder) Count(method string) int {
	n := 0
	for _, c := range r.Calls {
		if c == method {
			n++
		}
	}
	return n
}

func (r *Recorder) record(method string) error {
	r.Calls = append(r.Calls, method)
	return r.fail[method]
}

func (r *Recorder) draw(method string, kind Kind) (Artist, error) {
	if err := r.record(method); err != nil {
		return Artist{}, err
	}
	a := NewArtist(kind)
	r.Artists = append(r.Artists, a)
	return a, nil
}

func (r *Recorder) XLimits() geom.Limits { return r.XLim }
func (r *Recorder) YLimits() geom.Limits { return r.YLim }

func (r *Recorder) SetXLimits(lim geom.Limits) {
	r.record("SetXLimits")
	r.XLim = lim
}

func (r *Recorder) SetYLimits(lim geom.Limits) {
	r.record("SetYLimits")
	r.YLim = lim
}

func (r *Recorder) Scale(dim Dim) Scale { return r.Scales[dim] }

func (r *Recorder) SetScale(dim Dim, s Scale) {
	r.record("SetScale")
	r.Scales[dim] = s
}

func (r *Recorder) SetTicks(dim Dim, which Which, positions []float64) {
	r.record("SetTicks")
	r.Ticks[TickKey{dim, which}] = slices.Clone(positions)
}

func (r *Recorder) SetTickLabels(dim Dim, positions []float64, labels []string, style TextStyle) {
	r.record("SetTickLabels")
	r.Ticks[TickKey{dim, Major}] = slices.Clone(positions)
	r.TickLabels[dim] = slices.Clone(labels)
}

func (r *Recorder) SetTickStyle(dim Dim, which Which, style TickStyle) {
	r.record("SetTickStyle")
	r.TickStyles[TickKey{dim, which}] = style
}

func (r *Recorder) HideSpine(side Side) {
	r.record("HideSpine")
	if !slices.Contains(r.Hidden, side) {
		r.Hidden = append(r.Hidden, side)
	}
}

func (r *Recorder) SetLabel(dim Dim, text string, style TextStyle) {
	r.record("SetLabel")
	r.Labels[dim] = text
	r.LabelStyles[dim] = style
}

func (r *Recorder) SetTitle(text string, style TextStyle) {
	r.record("SetTitle")
	r.Title = text
	r.TitleStyle = style
}

func (r *Recorder) Text(pos geom.Point, s string, style TextStyle) (Artist, error) {
	a, err := r.draw("Text", KindText)
	if err == nil {
		r.Texts = append(r.Texts, TextCall{Pos: pos, S: s, Style: style})
	}
	return a, err
}

func (r *Recorder) TextRuns(pos geom.Point, runs []TextRun, style TextStyle) (Artist, error) {
	if len(runs) == 0 {
		return Artist{}, errors.New(errors.ErrCodeInvalidInput, "no text runs to draw")
	}
	a, err := r.draw("TextRuns", KindText)
	if err == nil {
		r.Runs = append(r.Runs, TextRunsCall{Pos: pos, Runs: slices.Clone(runs), Style: style})
	}
	return a, err
}

func (r *Recorder) Line(xs, ys []float64, style LineStyle) (Artist, error) {
	if err := ValidateXY(xs, ys); err != nil {
		return Artist{}, err
	}
	a, err := r.draw("Line", KindLine)
	if err == nil {
		r.Lines = append(r.Lines, LineCall{XS: slices.Clone(xs), YS: slices.Clone(ys), Style: style})
	}
	return a, err
}

func (r *Recorder) Points(xs, ys []float64, style MarkerStyle) (Artist, error) {
	if err := ValidateXY(xs, ys); err != nil {
		return Artist{}, err
	}
	a, err := r.draw("Points", KindPoints)
	if err == nil {
		r.Markers = append(r.Markers, PointsCall{XS: slices.Clone(xs), YS: slices.Clone(ys), Style: style})
	}
	return a, err
}

func (r *Recorder) Polygon(pts []geom.Point, style FillStyle) (Artist, error) {
	if len(pts) < 3 {
		return Artist{}, errors.New(errors.ErrCodeInvalidInput, "polygon needs at least 3 points, got %d", len(pts))
	}
	a, err := r.draw("Polygon", KindPolygon)
	if err == nil {
		r.Polygons = append(r.Polygons, PolygonCall{Pts: slices.Clone(pts), Style: style})
	}
	return a, err
}

func (r *Recorder) Legend(style LegendStyle) (Artist, error) {
	a, err := r.draw("Legend", KindLegend)
	if err == nil {
		r.Legends = append(r.Legends, style)
	}
	return a, err
}

// RecordedFigure is an in-memory [Figure] of Recorder panels.
type RecordedFigure struct {
	Panels []*Recorder
	Zooms  []Zoom
	// Outputs holds "format" for every Render and "path (format)" for
	// every Save, in call order.
	Outputs []string
}

// NewRecordedFigure returns a figure of n empty panels.
func NewRecordedFigure(n int) *RecordedFigure {
	f := &RecordedFigure{}
	for i := 0; i < n; i++ {
		f.Panels = append(f.Panels, NewRecorder())
	}
	return f
}

func (f *RecordedFigure) Axes() []Axes {
	axes := make([]Axes, len(f.Panels))
	for i, p := range f.Panels {
		axes[i] = p
	}
	return axes
}

func (f *RecordedFigure) Overlay(z Zoom) error {
	if err := z.Validate(len(f.Panels)); err != nil {
		return err
	}
	f.Zooms = append(f.Zooms, z)
	return nil
}

func (f *RecordedFigure) Render(ctx context.Context, format string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.Outputs = append(f.Outputs, format)
	return []byte(format), nil
}

func (f *RecordedFigure) Save(ctx context.Context, path, format string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	f.Outputs = append(f.Outputs, fmt.Sprintf("%s (%s)", path, format))
	return nil
}
