package annotate

import (
	"fmt"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/style"
	"github.com/matzehuels/plotutil/pkg/surface"
)

func TestTextCoords(t *testing.T) {
	ax := surface.NewRecorder()
	ts := Font(style.Default())
	if _, err := Text(ax, geom.Point{X: 3, Y: 4}, "data", ts); err != nil {
		t.Fatal(err)
	}
	if _, err := RelativeText(ax, geom.Point{X: 0.5, Y: 0.5}, "frac", ts); err != nil {
		t.Fatal(err)
	}
	if got := ax.Texts[0].Style.Coords; got != surface.Data {
		t.Errorf("Text coords = %v, want data", got)
	}
	if got := ax.Texts[1].Style.Coords; got != surface.AxesFraction {
		t.Errorf("RelativeText coords = %v, want axes fraction", got)
	}
	if ax.Texts[0].Style.FontSize != style.DefaultLabelFont || !ax.Texts[0].Style.Bold {
		t.Errorf("font = %+v", ax.Texts[0].Style)
	}
}

func TestZeroLabel(t *testing.T) {
	tests := []struct {
		name    string
		ylim    geom.Limits
		yZero   *float64
		want    geom.Point
		wantErr bool
	}{
		{name: "symmetric", ylim: geom.Limits{Lo: -1, Hi: 1}, want: geom.Point{X: 0.1, Y: 0.5}},
		{name: "quarter", ylim: geom.Limits{Lo: -1, Hi: 3}, want: geom.Point{X: 0.1, Y: 0.25}},
		{name: "override off zero", ylim: geom.Limits{Lo: -1, Hi: 1}, yZero: ptr(0.9), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ax := newPanel(geom.Limits{Lo: 0, Hi: 1}, tt.ylim)
			_, err := ZeroLabel(ax, 0.1, tt.yZero, "", surface.TextStyle{})
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeGeometry) {
					t.Errorf("error = %v, want GEOMETRY", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ZeroLabel() error: %v", err)
			}
			txt := ax.Texts[0]
			if txt.S != "0" || txt.Pos != tt.want || txt.Style.Coords != surface.AxesFraction {
				t.Errorf("text = %+v, want \"0\" at %v", txt, tt.want)
			}
		})
	}
}

func TestRectangle(t *testing.T) {
	ax := surface.NewRecorder()
	_, err := Rectangle(ax, geom.Limits{Lo: 0, Hi: 10}, geom.Limits{Lo: 0, Hi: 2}, RectangleOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := geom.Rect{W: 10, H: 2}.Points()
	if diff := cmp.Diff(want, ax.Polygons[0].Pts, approx); diff != "" {
		t.Errorf("rectangle mismatch (-want +got):\n%s", diff)
	}
	edge := ax.Polygons[0].Style.Edge
	if edge.Color != color.Black || edge.Width != 0.75 || ax.Polygons[0].Style.Face != nil {
		t.Errorf("style = %+v, want unfilled black 0.75 edge", ax.Polygons[0].Style)
	}
}

func TestTriangle(t *testing.T) {
	ax := surface.NewRecorder()
	if _, err := Triangle(ax, 0.1, 0.2, 0.3, 0.4, false, nil); err != nil {
		t.Fatal(err)
	}
	poly := ax.Polygons[0]
	if len(poly.Pts) != 3 || poly.Style.Coords != surface.AxesFraction || poly.Style.Face == nil {
		t.Errorf("triangle = %+v", poly)
	}
}

func TestRainbowText(t *testing.T) {
	ax := surface.NewRecorder()
	colors := []color.Color{color.Black, color.White}
	if _, err := RainbowText(ax, geom.Point{}, []string{"a", "b", "c"}, colors, true, surface.TextStyle{}); err != nil {
		t.Fatal(err)
	}
	want := []surface.TextRun{
		{S: "a ", Color: color.Black},
		{S: "b ", Color: color.White},
		{S: "c ", Color: color.Black},
	}
	if diff := cmp.Diff(want, ax.Runs[0].Runs); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}

	if _, err := RainbowText(ax, geom.Point{}, nil, colors, false, surface.TextStyle{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("empty strings error = %v, want INVALID_INPUT", err)
	}
}

func TestAutoLabel(t *testing.T) {
	ax := surface.NewRecorder()
	bars := []Bar{
		{X: 0, Width: 1, Height: 10.2, Err: ptr(0.1)},
		{X: 2, Width: 2, Height: 11.2},
	}
	if _, err := AutoLabel(ax, bars, AutoLabelOptions{}); err != nil {
		t.Fatalf("AutoLabel() error: %v", err)
	}
	type label struct {
		S   string
		Pos geom.Point
	}
	var got []label
	for _, tc := range ax.Texts {
		got = append(got, label{tc.S, tc.Pos})
	}
	want := []label{
		{"10 ± 0.1", geom.Point{X: 0.5, Y: 12.24}},
		{"11", geom.Point{X: 3, Y: 13.44}},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}
}

func TestAutoLabelCustom(t *testing.T) {
	ax := surface.NewRecorder()
	label := func(i int, b Bar) (string, error) { return fmt.Sprintf("#%d", i), nil }
	if _, err := AutoLabel(ax, []Bar{{Height: 1}}, AutoLabelOptions{Label: label, Lift: 1}); err != nil {
		t.Fatal(err)
	}
	if ax.Texts[0].S != "#0" || ax.Texts[0].Pos.Y != 1 {
		t.Errorf("text = %+v", ax.Texts[0])
	}

	_, err := AutoLabel(ax, []Bar{{Height: math.NaN()}}, AutoLabelOptions{})
	if !errors.Is(err, errors.ErrCodeFormat) {
		t.Errorf("NaN height error = %v, want FORMAT", err)
	}
}

func TestAutoLabelPoints(t *testing.T) {
	ax := surface.NewRecorder()
	label := func(_ int, b Bar) (string, error) { return fmt.Sprint(b.Height), nil }
	if _, err := AutoLabelPoints(ax, []float64{1, 2}, []float64{5, 6}, AutoLabelOptions{Label: label}); err != nil {
		t.Fatal(err)
	}
	if len(ax.Texts) != 2 || ax.Texts[1].Pos.X != 2 {
		t.Errorf("texts = %+v", ax.Texts)
	}
	if _, err := AutoLabelPoints(ax, []float64{1}, nil, AutoLabelOptions{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("mismatched error = %v, want INVALID_INPUT", err)
	}
}

func TestSubplotLabels(t *testing.T) {
	fig := surface.NewRecordedFigure(3)
	if _, err := SubplotLabels(fig.Axes(), SubplotLabelOptions{Skip: 1}); err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, p := range fig.Panels {
		got = append(got, p.Texts[0].S)
		if p.Texts[0].Pos != (geom.Point{X: -0.03, Y: 1}) {
			t.Errorf("label at %v, want (-0.03, 1)", p.Texts[0].Pos)
		}
	}
	if diff := cmp.Diff([]string{"b", "c", "d"}, got); diff != "" {
		t.Errorf("labels mismatch (-want +got):\n%s", diff)
	}

	if _, err := SubplotLabels(fig.Axes(), SubplotLabelOptions{Skip: 24}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("past z error = %v, want INVALID_INPUT", err)
	}
}

func ptr(v float64) *float64 { return &v }
