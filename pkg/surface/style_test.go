package surface

import (
	"image/color"
	"testing"

	"github.com/matzehuels/plotutil/pkg/errors"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.Color
	}{
		{"k", color.Black},
		{"w", color.White},
		{"  M ", color.RGBA{R: 0xff, B: 0xff, A: 0xff}},
		{"steelblue", color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}},
		{"#4682b4", color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}},
		{"#48b", color.RGBA{R: 0x44, G: 0x88, B: 0xbb, A: 0xff}},
		{"none", nil},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if !sameColor(got, tt.want) {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	for _, in := range []string{"notacolor", "#12", "#gggggg", "#1234567"} {
		if _, err := ParseColor(in); !errors.Is(err, errors.ErrCodeInvalidConfig) {
			t.Errorf("ParseColor(%q) error = %v, want INVALID_CONFIG", in, err)
		}
	}
}

func TestWithAlpha(t *testing.T) {
	tests := []struct {
		alpha float64
		want  uint8
	}{
		{0, 0},
		{-1, 0},
		{0.5, 0x80},
		{1, 0xff},
		{2, 0xff},
	}
	for _, tt := range tests {
		got := WithAlpha(color.Black, tt.alpha).(color.NRGBA)
		if got.A != tt.want {
			t.Errorf("WithAlpha(black, %v).A = %#x, want %#x", tt.alpha, got.A, tt.want)
		}
	}
	if WithAlpha(nil, 0.5) != nil {
		t.Error("WithAlpha(nil) should stay nil")
	}
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
