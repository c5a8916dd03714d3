package sigfig

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/plotutil/pkg/errors"
)

func TestRound(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		n    int
		want float64
	}{
		{"one figure", 51, 1, 50},
		{"two figures", 1230, 2, 1200},
		{"small", 0.0045, 1, 0.004},
		{"negative", -1234.5678, 3, -1230},
		{"carry into next decade", 9.96, 2, 10},
		{"decimals kept", 123.456, 5, 123.46},
		{"tiny", 0.000123456, 2, 0.00012},
		{"already round", 300, 1, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Round(tt.x, tt.n)
			if err != nil {
				t.Fatalf("Round(%v, %d) error = %v", tt.x, tt.n, err)
			}
			if got != tt.want {
				t.Errorf("Round(%v, %d) = %v, want %v", tt.x, tt.n, got, tt.want)
			}
		})
	}
}

func TestRoundErrors(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		n    int
	}{
		{"zero", 0, 1},
		{"negative zero", math.Copysign(0, -1), 2},
		{"nan", math.NaN(), 1},
		{"inf", math.Inf(1), 1},
		{"no figures", 12, 0},
		{"overflow", math.MaxFloat64, 1},
		{"negative overflow", -math.MaxFloat64, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Round(tt.x, tt.n)
			if !errors.Is(err, errors.ErrCodeFormat) {
				t.Errorf("Round(%v, %d) error = %v, want FORMAT", tt.x, tt.n, err)
			}
		})
	}
}

func TestRoundIdempotent(t *testing.T) {
	xs := []float64{51, 1230, 0.0045, -98765.4321, 9.96, 1e-7, 6.02214076e23, 0.3}
	for _, x := range xs {
		for n := 1; n <= 6; n++ {
			once, err := Round(x, n)
			if err != nil {
				t.Fatalf("Round(%v, %d) error = %v", x, n, err)
			}
			twice, err := Round(once, n)
			if err != nil {
				t.Fatalf("Round(%v, %d) error = %v", once, n, err)
			}
			if once != twice {
				t.Errorf("Round(Round(%v, %d)) = %v, want %v", x, n, twice, once)
			}
		}
	}
}

func TestRoundSignificantDigits(t *testing.T) {
	xs := []float64{51, 1230, 0.0045, -98765.4321, 7.25e-12}
	for _, x := range xs {
		for n := 1; n <= 5; n++ {
			r, err := Round(x, n)
			if err != nil {
				t.Fatalf("Round(%v, %d) error = %v", x, n, err)
			}
			p, err := Decompose(r, n)
			if err != nil {
				t.Fatalf("Decompose(%v, %d) error = %v", r, n, err)
			}
			digits := strings.NewReplacer("-", "", ".", "").Replace(p.Mantissa)
			if len(digits) != n {
				t.Errorf("Decompose(Round(%v, %d)) mantissa = %q, want %d digits", x, n, p.Mantissa, n)
			}
		}
	}
}

func TestRoundAll(t *testing.T) {
	got, err := RoundAll([]float64{51, 1230, 0.0045}, 1)
	if err != nil {
		t.Fatalf("RoundAll() error = %v", err)
	}
	want := []float64{50, 1000, 0.004}
	if len(got) != len(want) {
		t.Fatalf("RoundAll() length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("RoundAll()[%d] = %v, want %v", i, got[i], want[i])
		}
	}

	if _, err := RoundAll([]float64{1, 0, 2}, 1); !errors.Is(err, errors.ErrCodeFormat) {
		t.Errorf("RoundAll() with zero error = %v, want FORMAT", err)
	}

	empty, err := RoundAll(nil, 2)
	if err != nil || len(empty) != 0 {
		t.Errorf("RoundAll(nil) = %v, %v, want empty, nil", empty, err)
	}
}

func TestPlace(t *testing.T) {
	tests := []struct {
		x    float64
		n    int
		want int
	}{
		{1230, 2, -2},
		{0.0045, 2, 4},
		{1000, 1, -3},
		{999.9, 1, -2},
		{1, 3, 2},
	}

	for _, tt := range tests {
		got, err := Place(tt.x, tt.n)
		if err != nil {
			t.Fatalf("Place(%v, %d) error = %v", tt.x, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("Place(%v, %d) = %d, want %d", tt.x, tt.n, got, tt.want)
		}
	}
}
