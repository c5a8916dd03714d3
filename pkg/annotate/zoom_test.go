package annotate

import (
	"testing"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/surface"
)

func TestZoomEffect(t *testing.T) {
	fig := surface.NewRecordedFigure(2)
	z, err := ZoomEffect(fig, 0, 1, 2, 4, ZoomOptions{XMin2: ptr(20), XMax2: ptr(40)})
	if err != nil {
		t.Fatalf("ZoomEffect() error: %v", err)
	}
	if len(fig.Zooms) != 1 {
		t.Fatalf("zooms = %d, want 1", len(fig.Zooms))
	}
	if z.FromBox != (geom.Rect{X: 2, Y: 0, W: 2, H: 1}) {
		t.Errorf("FromBox = %+v", z.FromBox)
	}
	if z.ToBox != (geom.Rect{X: 20, Y: 0, W: 20, H: 1}) {
		t.Errorf("ToBox = %+v", z.ToBox)
	}
	wantLocs := [4]geom.Location{geom.LowerLeft, geom.UpperLeft, geom.LowerRight, geom.UpperRight}
	if z.Locs != wantLocs {
		t.Errorf("Locs = %v, want %v", z.Locs, wantLocs)
	}
	if !z.Line.Dashed || z.Line.Width != 1.5 {
		t.Errorf("line = %+v", z.Line)
	}
	if _, _, _, a := z.Line.Color.RGBA(); a != 0x8080 {
		t.Errorf("line alpha = %#x, want half", a)
	}
}

func TestZoomEffectLocsAndBounds(t *testing.T) {
	fig := surface.NewRecordedFigure(2)
	locs := geom.ZoomLeftToRight
	z, err := ZoomEffect(fig, 0, 1, 0, 1, ZoomOptions{Locs: &locs, YMin: ptr(0.2), YMax: ptr(0.8), Solid: true})
	if err != nil {
		t.Fatal(err)
	}
	if z.Locs != geom.ZoomLeftToRight || z.Line.Dashed {
		t.Errorf("zoom = %+v", z)
	}
	want := geom.Rect{X: 0, Y: 0.2, W: 1, H: 0.6}
	if d := z.ToBox.H - want.H; z.ToBox.Y != want.Y || d > 1e-12 || d < -1e-12 {
		t.Errorf("ToBox = %+v, want the first panel's box %+v", z.ToBox, want)
	}
}

func TestZoomEffectErrors(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		xmin     float64
		opts     ZoomOptions
		want     errors.Code
	}{
		{"same panel", 0, 0, 0, ZoomOptions{}, errors.ErrCodeInvalidInput},
		{"out of range", 0, 5, 0, ZoomOptions{}, errors.ErrCodeInvalidInput},
		{"empty range", 0, 1, 1, ZoomOptions{}, errors.ErrCodeGeometry},
		{"bad color", 0, 1, 0, ZoomOptions{Color: "nope"}, errors.ErrCodeInvalidConfig},
		{"no color", 0, 1, 0, ZoomOptions{Color: "none"}, errors.ErrCodeInvalidConfig},
		{"bad corner", 0, 1, 0, ZoomOptions{Locs: &[4]geom.Location{1, 2, 3, 9}}, errors.ErrCodeGeometry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fig := surface.NewRecordedFigure(2)
			_, err := ZoomEffect(fig, tt.from, tt.to, tt.xmin, 1, tt.opts)
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %s", err, tt.want)
			}
			if len(fig.Zooms) != 0 {
				t.Errorf("zoom recorded despite error")
			}
		})
	}
}
