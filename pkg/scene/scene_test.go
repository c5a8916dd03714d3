package scene

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/plotutil/pkg/errors"
)

const twoPanels = `
name = "unfolding"
width = 8
height = 4
cols = 2
subplot_labels = true

[[panels]]
title = "Full"
xlabel = "Time (s)"
ylabel = "Force (pN)"
xlim = [0, 10]
yscale = "log"

[[panels.series]]
x = [0, 5, 10]
y = [1, 10, 100]
label = "trace"
color = "b"

[panels.scalebar]
unit = "s"
mult = 1

[[panels.texts]]
x = 0.5
y = 0.9
text = "wt"
coords = "axes"

[[panels]]
title = "Zoom"
xlim = [2, 4]

[[panels.series]]
kind = "errorband"
x = [2, 3, 4]
y = [1, 2, 3]
yerr = [0.1, 0.1, 0.2]

[[zooms]]
from = 0
to = 1
xmin = 2
xmax = 4
`

func TestDecode(t *testing.T) {
	s, err := Decode([]byte(twoPanels))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if s.Rows != 1 || s.Cols != 2 {
		t.Errorf("grid = %dx%d, want 1x2", s.Rows, s.Cols)
	}
	if len(s.Panels) != 2 || len(s.Zooms) != 1 {
		t.Fatalf("panels = %d, zooms = %d", len(s.Panels), len(s.Zooms))
	}
	p := s.Panels[0]
	if p.Series[0].Kind != KindLine {
		t.Errorf("default kind = %q, want line", p.Series[0].Kind)
	}
	if diff := cmp.Diff([]float64{0, 10}, p.XLim); diff != "" {
		t.Errorf("xlim mismatch (-want +got):\n%s", diff)
	}
	if p.ScaleBar == nil || p.ScaleBar.Unit != "s" || p.ScaleBar.Mult != 1 {
		t.Errorf("scalebar = %+v", p.ScaleBar)
	}
	if s.Panels[1].ScaleBar != nil {
		t.Error("second panel has a scale bar")
	}
	if got := s.Panels[1].Series[0].YErr; len(got) != 3 {
		t.Errorf("yerr = %v", got)
	}
}

func TestSetDefaultsGrid(t *testing.T) {
	tests := []struct {
		name               string
		rows, cols, panels int
		wantRows, wantCols int
	}{
		{"no panels", 0, 0, 0, 1, 1},
		{"stacked", 0, 0, 3, 3, 1},
		{"rows from cols", 0, 2, 3, 2, 2},
		{"cols from rows", 2, 0, 5, 2, 3},
		{"explicit", 2, 2, 1, 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Scene{Rows: tt.rows, Cols: tt.cols, Panels: make([]Panel, tt.panels)}
			s.SetDefaults()
			if s.Rows != tt.wantRows || s.Cols != tt.wantCols {
				t.Errorf("grid = %dx%d, want %dx%d", s.Rows, s.Cols, tt.wantRows, tt.wantCols)
			}
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "rows = = 1"},
		{"unknown key", "colour = 1"},
		{"too many panels", "rows = 1\ncols = 1\n[[panels]]\n[[panels]]\n"},
		{"short xlim", "[[panels]]\nxlim = [1]\n"},
		{"bad scale", "[[panels]]\nyscale = \"symlog\"\n"},
		{"bad kind", "[[panels]]\n[[panels.series]]\nkind = \"pie\"\nx = [1]\ny = [1]\n"},
		{"mismatched series", "[[panels]]\n[[panels.series]]\nx = [1, 2]\ny = [1]\n"},
		{"band without error", "[[panels]]\n[[panels.series]]\nkind = \"errorband\"\nx = [1]\ny = [1]\n"},
		{"bad coords", "[[panels]]\n[[panels.texts]]\ntext = \"a\"\ncoords = \"figure\"\n"},
		{"zoom to itself", "cols = 2\n[[zooms]]\nfrom = 1\nto = 1\nxmin = 0\nxmax = 1\n"},
		{"zoom out of grid", "[[zooms]]\nfrom = 0\nto = 3\nxmin = 0\nxmax = 1\n"},
		{"empty zoom range", "cols = 2\n[[zooms]]\nfrom = 0\nto = 1\nxmin = 1\nxmax = 1\n"},
		{"broken short range", "cols = 2\n[[broken]]\nfirst = 0\nsecond = 1\nrange1 = [0, 1]\nrange2 = [3]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fig.toml")
	if err := os.WriteFile(path, []byte(twoPanels), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if s.Name != "unfolding" {
		t.Errorf("Name = %q", s.Name)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("missing file error = %v, want NOT_FOUND", err)
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	s, err := Decode([]byte(twoPanels))
	if err != nil {
		t.Fatal(err)
	}
	data, err := s.Encode()
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode(Encode()) error: %v\n%s", err, data)
	}
	if diff := cmp.Diff(s, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadExamples(t *testing.T) {
	trace, err := Load("../../examples/scenes/trace.toml")
	if err != nil {
		t.Fatalf("Load(trace.toml) error: %v", err)
	}
	if trace.Rows != 1 || trace.Cols != 1 {
		t.Errorf("trace grid = %dx%d, want 1x1", trace.Rows, trace.Cols)
	}
	p := trace.Panels[0]
	if !p.ZeroLabel || p.ScaleBar == nil || p.ScaleBar.Unit != "ms" || p.ScaleBar.Mult != 1000 {
		t.Errorf("trace panel = %+v", p)
	}
	if got := p.Series[0].Kind; got != KindLine {
		t.Errorf("default series kind = %q, want %q", got, KindLine)
	}

	zoom, err := Load("../../examples/scenes/zoom.toml")
	if err != nil {
		t.Fatalf("Load(zoom.toml) error: %v", err)
	}
	if zoom.Rows != 1 || zoom.Cols != 2 || !zoom.SubplotLabels {
		t.Errorf("zoom scene = %dx%d labels=%v", zoom.Rows, zoom.Cols, zoom.SubplotLabels)
	}
	want := []Zoom{{From: 0, To: 1, XMin: 4, XMax: 6, Color: "m", LeftToRight: true}}
	if diff := cmp.Diff(want, zoom.Zooms); diff != "" {
		t.Errorf("zooms mismatch (-want +got):\n%s", diff)
	}
	if got := zoom.Panels[0].Series[0].Kind; got != KindErrorBand {
		t.Errorf("overview kind = %q, want %q", got, KindErrorBand)
	}
}
