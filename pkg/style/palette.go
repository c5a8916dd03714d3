package style

import (
	"image/color"

	"github.com/aclements/go-gg/palette"
)

// Winter runs from blue to spring green.
var Winter = palette.RGBGradient{Colors: []color.RGBA{
	{R: 0x00, G: 0x00, B: 0xff, A: 0xff},
	{R: 0x00, G: 0xff, B: 0x80, A: 0xff},
}}

// EarthReversed runs from white through sand and green to deep blue, then
// black.
var EarthReversed = palette.RGBGradient{Colors: []color.RGBA{
	{R: 0xfd, G: 0xfb, B: 0xfb, A: 0xff},
	{R: 0xb9, G: 0x9e, B: 0x6f, A: 0xff},
	{R: 0x4e, G: 0x94, B: 0x4f, A: 0xff},
	{R: 0x30, G: 0x6a, B: 0x80, A: 0xff},
	{R: 0x00, G: 0x00, B: 0x00, A: 0xff},
}}

// Colormap returns n colors spaced evenly over pal, first end to last.
// A nil pal means EarthReversed.
func Colormap(n int, pal palette.Continuous) []color.Color {
	if n <= 0 {
		return nil
	}
	if pal == nil {
		pal = EarthReversed
	}
	if n == 1 {
		return []color.Color{pal.Map(0)}
	}
	out := make([]color.Color, n)
	for i := range out {
		out[i] = pal.Map(float64(i) / float64(n-1))
	}
	return out
}

// Cycle returns n colors from the Winter palette, for a family of lines.
func Cycle(n int) []color.Color {
	return Colormap(n, Winter)
}
