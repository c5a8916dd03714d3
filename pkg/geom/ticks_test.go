package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/plotutil/pkg/errors"
)

func TestFixedTicks(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		spacing float64
		bound   Limits
		want    []float64
	}{
		{"walks past both edges", 0, 10, Limits{-25, 22}, []float64{-30, -20, -10, 0, 10, 20, 30}},
		{"inverted bound", 0, 10, Limits{22, -25}, []float64{-30, -20, -10, 0, 10, 20, 30}},
		{"edges on ticks", 0, 5, Limits{0, 10}, []float64{0, 5, 10}},
		{"offset inside", 1, 2, Limits{0, 4}, []float64{-1, 1, 3, 5}},
		{"offset below range", -10, 5, Limits{0, 6}, []float64{-20, -15, -10, -5, 0, 5, 10}},
		{"offset above range", 20, 5, Limits{0, 6}, []float64{0, 5, 10, 15, 20, 25, 30, 35}},
		{"single point bound", 3, 1, Limits{3, 3}, []float64{3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FixedTicks(tt.offset, tt.spacing, tt.bound)
			if err != nil {
				t.Fatalf("FixedTicks() error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FixedTicks() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFixedTicksIncludesOffset(t *testing.T) {
	for _, offset := range []float64{-7.5, 0, 0.25, 3, 100} {
		got, err := FixedTicks(offset, 0.5, Limits{-2, 2})
		if err != nil {
			t.Fatalf("FixedTicks(%v) error: %v", offset, err)
		}
		found := false
		for i, v := range got {
			if v == offset {
				found = true
			}
			if i > 0 && got[i-1] >= v {
				t.Errorf("FixedTicks(%v) not strictly ascending at %d: %v", offset, i, got)
			}
		}
		if !found {
			t.Errorf("FixedTicks(%v) = %v, missing offset", offset, got)
		}
	}
}

func TestFixedTicksErrors(t *testing.T) {
	tests := []struct {
		name    string
		offset  float64
		spacing float64
		bound   Limits
	}{
		{"zero spacing", 0, 0, Limits{0, 1}},
		{"negative spacing", 0, -1, Limits{0, 1}},
		{"nan spacing", 0, math.NaN(), Limits{0, 1}},
		{"nan offset", math.NaN(), 1, Limits{0, 1}},
		{"infinite bound", 0, 1, Limits{0, math.Inf(1)}},
		{"too many ticks", 0, 1e-9, Limits{0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FixedTicks(tt.offset, tt.spacing, tt.bound)
			if !errors.Is(err, errors.ErrCodeGeometry) {
				t.Errorf("FixedTicks() error = %v, want GEOMETRY", err)
			}
		})
	}
}

func TestMinorOffset(t *testing.T) {
	if got := MinorOffset(0, 10); got != 5 {
		t.Errorf("MinorOffset(0, 10) = %v, want 5", got)
	}
	if got := MinorOffset(-1, 0.5); got != -0.75 {
		t.Errorf("MinorOffset(-1, 0.5) = %v, want -0.75", got)
	}
}

func TestMaxNTicks(t *testing.T) {
	major, minor, err := MaxNTicks(Limits{0, 10}, 6)
	if err != nil {
		t.Fatalf("MaxNTicks() error: %v", err)
	}
	if len(major) == 0 || len(major) > 6 {
		t.Fatalf("MaxNTicks() returned %d major ticks, want 1..6", len(major))
	}
	for _, v := range major {
		if v < 0 || v > 10 {
			t.Errorf("major tick %v outside [0, 10]", v)
		}
	}
	if len(minor) < len(major) {
		t.Errorf("MaxNTicks() returned %d minor ticks, want at least %d", len(minor), len(major))
	}

	if _, _, err := MaxNTicks(Limits{1, 1}, 5); !errors.Is(err, errors.ErrCodeGeometry) {
		t.Errorf("MaxNTicks(degenerate) error = %v, want GEOMETRY", err)
	}
	if _, _, err := MaxNTicks(Limits{0, 1}, 0); !errors.Is(err, errors.ErrCodeGeometry) {
		t.Errorf("MaxNTicks(n=0) error = %v, want GEOMETRY", err)
	}
}

func TestLogTicks(t *testing.T) {
	major, minor, err := LogTicks(Limits{1, 1000}, 10)
	if err != nil {
		t.Fatalf("LogTicks() error: %v", err)
	}
	if diff := cmp.Diff([]float64{1, 10, 100, 1000}, major); diff != "" {
		t.Errorf("LogTicks() major mismatch (-want +got):\n%s", diff)
	}
	if len(minor) != 24 {
		t.Errorf("LogTicks() returned %d minor ticks, want 24", len(minor))
	}

	major, _, err = LogTicks(Limits{1, 1e6}, 4)
	if err != nil {
		t.Fatalf("LogTicks() error: %v", err)
	}
	if diff := cmp.Diff([]float64{1, 100, 1e4, 1e6}, major); diff != "" {
		t.Errorf("LogTicks(n=4) major mismatch (-want +got):\n%s", diff)
	}

	if _, _, err := LogTicks(Limits{-1, 10}, 5); !errors.Is(err, errors.ErrCodeGeometry) {
		t.Errorf("LogTicks(negative) error = %v, want GEOMETRY", err)
	}
}
