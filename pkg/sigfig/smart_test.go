package sigfig

import (
	"math"
	"testing"

	"github.com/matzehuels/plotutil/pkg/errors"
)

func TestSmart(t *testing.T) {
	tests := []struct {
		name      string
		v         Value
		minDigits int
		want      Spec
	}{
		{"leading one", Exact(11.2), 1, Spec{2, 'g'}},
		{"leading five", Exact(51), 1, Spec{1, 'g'}},
		{"rounds to leading one", Exact(0.15), 1, Spec{2, 'g'}},
		{"same exponent magnitude", WithErr(10.2, 0.1), 1, Spec{2, 'g'}},
		{"error magnitude larger", WithErr(0.5, 2000), 1, Spec{3, 'g'}},
		{"error magnitude smaller", WithErr(2000, 0.5), 1, Spec{1, 'g'}},
		{"minimum above one", Exact(1.5), 3, Spec{3, 'g'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Smart(tt.v, tt.minDigits)
			if err != nil {
				t.Fatalf("Smart(%+v, %d) error = %v", tt.v, tt.minDigits, err)
			}
			if got != tt.want {
				t.Errorf("Smart(%+v, %d) = %+v, want %+v", tt.v, tt.minDigits, got, tt.want)
			}
		})
	}
}

func TestSmartErrors(t *testing.T) {
	tests := []struct {
		name      string
		v         Value
		minDigits int
	}{
		{"nan value", Exact(math.NaN()), 1},
		{"inf error", WithErr(1, math.Inf(1)), 1},
		{"no digits", Exact(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Smart(tt.v, tt.minDigits); !errors.Is(err, errors.ErrCodeFormat) {
				t.Errorf("Smart(%+v, %d) error = %v, want FORMAT", tt.v, tt.minDigits, err)
			}
		})
	}
}

func TestSpecString(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{Spec{2, 'g'}, "%.2g"},
		{Spec{0, 'f'}, "%.0f"},
		{Spec{Digits: 3}, "%.3g"},
	}

	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("%+v.String() = %q, want %q", tt.spec, got, tt.want)
		}
	}
}

func TestPlusMinus(t *testing.T) {
	tests := []struct {
		name    string
		samples []float64
		want    string
	}{
		{"spread", []float64{1, 2, 3}, "2+/-0.67"},
		{"single deviation", []float64{0.5}, "0.5+/-0.5"},
		{"constant", []float64{4, 4}, "4+/-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PlusMinus(tt.samples, Spec{3, 'g'})
			if err != nil {
				t.Fatalf("PlusMinus(%v) error = %v", tt.samples, err)
			}
			if got != tt.want {
				t.Errorf("PlusMinus(%v) = %q, want %q", tt.samples, got, tt.want)
			}
		})
	}

	if _, err := PlusMinus(nil, Spec{3, 'g'}); !errors.Is(err, errors.ErrCodeFormat) {
		t.Errorf("PlusMinus(nil) error = %v, want FORMAT", err)
	}
}

func TestPlusMinusAbout(t *testing.T) {
	got, err := PlusMinusAbout([]float64{9, 11}, 10, Spec{2, 'g'})
	if err != nil {
		t.Fatalf("PlusMinusAbout() error = %v", err)
	}
	if want := "10+/-1"; got != want {
		t.Errorf("PlusMinusAbout() = %q, want %q", got, want)
	}
}
