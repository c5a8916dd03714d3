package surface

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
)

func TestRecorderRecordsCalls(t *testing.T) {
	r := NewRecorder()
	r.SetXLimits(geom.Limits{Lo: 0, Hi: 10})
	r.SetTicks(X, Major, []float64{0, 5, 10})
	a, err := r.Text(geom.Point{X: 1, Y: 2}, "hi", TextStyle{FontSize: 12})
	if err != nil {
		t.Fatalf("Text() error: %v", err)
	}
	if a.Kind != KindText || a.ID == uuid.Nil {
		t.Errorf("Text() artist = %v, want a text artist with an ID", a)
	}
	if _, err := r.Line([]float64{0, 1}, []float64{2, 2}, LineStyle{Width: 1}); err != nil {
		t.Fatalf("Line() error: %v", err)
	}

	if diff := cmp.Diff([]string{"SetXLimits", "SetTicks", "Text", "Line"}, r.Calls); diff != "" {
		t.Errorf("Calls mismatch (-want +got):\n%s", diff)
	}
	if got := r.XLimits(); got != (geom.Limits{Lo: 0, Hi: 10}) {
		t.Errorf("XLimits() = %v, want 0..10", got)
	}
	if got := r.YLimits(); got != (geom.Limits{Lo: 0, Hi: 1}) {
		t.Errorf("YLimits() = %v, want the 0..1 default", got)
	}
	if diff := cmp.Diff([]float64{0, 5, 10}, r.Ticks[TickKey{X, Major}]); diff != "" {
		t.Errorf("ticks mismatch (-want +got):\n%s", diff)
	}
	want := []TextCall{{Pos: geom.Point{X: 1, Y: 2}, S: "hi", Style: TextStyle{FontSize: 12}}}
	if diff := cmp.Diff(want, r.Texts); diff != "" {
		t.Errorf("Texts mismatch (-want +got):\n%s", diff)
	}
	if r.Count("Text") != 1 || len(r.Artists) != 2 {
		t.Errorf("Count(Text) = %d, artists = %d", r.Count("Text"), len(r.Artists))
	}
}

func TestRecorderFailOn(t *testing.T) {
	r := NewRecorder()
	boom := errors.New(errors.ErrCodeRender, "boom")
	r.FailOn("Polygon", boom)
	_, err := r.Polygon([]geom.Point{{}, {X: 1}, {Y: 1}}, FillStyle{})
	if err != boom {
		t.Errorf("Polygon() error = %v, want %v", err, boom)
	}
	if len(r.Polygons) != 0 {
		t.Errorf("failed Polygon() was recorded")
	}
}

func TestRecorderValidatesInput(t *testing.T) {
	r := NewRecorder()
	if _, err := r.Line([]float64{1, 2}, []float64{1}, LineStyle{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Line(mismatched) error = %v, want INVALID_INPUT", err)
	}
	if _, err := r.Points(nil, nil, MarkerStyle{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Points(empty) error = %v, want INVALID_INPUT", err)
	}
	if _, err := r.Polygon([]geom.Point{{}, {}}, FillStyle{}); !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("Polygon(2 points) error = %v, want INVALID_INPUT", err)
	}
}

func TestZoomValidate(t *testing.T) {
	good := Zoom{From: 0, To: 1, Locs: geom.ZoomLeftToRight}
	tests := []struct {
		name string
		z    Zoom
		ok   bool
	}{
		{"valid", good, true},
		{"from out of range", Zoom{From: -1, To: 1, Locs: good.Locs}, false},
		{"to out of range", Zoom{From: 0, To: 2, Locs: good.Locs}, false},
		{"same panel", Zoom{From: 1, To: 1, Locs: good.Locs}, false},
		{"bad corner", Zoom{From: 0, To: 1, Locs: [4]geom.Location{1, 2, 3, 0}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.z.Validate(2)
			if (err == nil) != tt.ok {
				t.Errorf("Validate() error = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestRecordedFigure(t *testing.T) {
	f := NewRecordedFigure(2)
	if len(f.Axes()) != 2 {
		t.Fatalf("Axes() returned %d panels, want 2", len(f.Axes()))
	}
	if err := f.Overlay(Zoom{From: 0, To: 1, Locs: geom.ZoomLeftToRight}); err != nil {
		t.Fatalf("Overlay() error: %v", err)
	}
	ctx := context.Background()
	if _, err := f.Render(ctx, "svg"); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if err := f.Save(ctx, "out.png", "png"); err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if diff := cmp.Diff([]string{"svg", "out.png (png)"}, f.Outputs); diff != "" {
		t.Errorf("Outputs mismatch (-want +got):\n%s", diff)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if _, err := f.Render(cancelled, "svg"); err != context.Canceled {
		t.Errorf("Render(cancelled) error = %v, want context.Canceled", err)
	}
}
