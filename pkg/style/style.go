// Package style holds figure style defaults and loads overrides from TOML.
//
// A style file sets any subset of the keys below; unset keys keep their
// defaults:
//
//	label_font = 16
//	tick_length = 8
//
// [Load] reads a file, [Find] locates the user's style file under the XDG
// config directory.
package style

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	DefaultLabelFont        = 20
	DefaultTitleFont        = 22
	DefaultLegendFont       = 18
	DefaultTickWidth        = 1.75
	DefaultTickLength       = 10
	DefaultMinorTickWidth   = 1.25
	DefaultMinorTickLength  = 4
	DefaultSubplotLabelFont = 30
)

// appName names the config directory.
const appName = "plotutil"

// fileName is the style file looked up by Find.
const fileName = "style.toml"

// Style is the set of sizes shared by labels, legends and ticks. All sizes
// are in points.
type Style struct {
	LabelFont        float64 `toml:"label_font"`
	TitleFont        float64 `toml:"title_font"`
	LegendFont       float64 `toml:"legend_font"`
	TickWidth        float64 `toml:"tick_width"`
	TickLength       float64 `toml:"tick_length"`
	MinorTickWidth   float64 `toml:"minor_tick_width"`
	MinorTickLength  float64 `toml:"minor_tick_length"`
	SubplotLabelFont float64 `toml:"subplot_label_font"`
}

// Default returns the built-in style.
func Default() Style {
	return Style{
		LabelFont:        DefaultLabelFont,
		TitleFont:        DefaultTitleFont,
		LegendFont:       DefaultLegendFont,
		TickWidth:        DefaultTickWidth,
		TickLength:       DefaultTickLength,
		MinorTickWidth:   DefaultMinorTickWidth,
		MinorTickLength:  DefaultMinorTickLength,
		SubplotLabelFont: DefaultSubplotLabelFont,
	}
}

// Validate reports an INVALID_CONFIG error for any non-positive size.
func (s Style) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"label_font", s.LabelFont},
		{"title_font", s.TitleFont},
		{"legend_font", s.LegendFont},
		{"tick_width", s.TickWidth},
		{"tick_length", s.TickLength},
		{"minor_tick_width", s.MinorTickWidth},
		{"minor_tick_length", s.MinorTickLength},
		{"subplot_label_font", s.SubplotLabelFont},
	} {
		if !(f.v > 0) {
			return errors.New(errors.ErrCodeInvalidConfig, "%s must be positive, got %v", f.name, f.v)
		}
	}
	return nil
}

// MajorTicks returns the major tick style with tick labels at LabelFont.
func (s Style) MajorTicks() surface.TickStyle {
	return surface.TickStyle{Length: s.TickLength, Width: s.TickWidth, LabelSize: s.LabelFont}
}

// MinorTicks returns the minor tick style.
func (s Style) MinorTicks() surface.TickStyle {
	return surface.TickStyle{Length: s.MinorTickLength, Width: s.MinorTickWidth}
}

// Label returns the bold axis label font.
func (s Style) Label() surface.TextStyle {
	return surface.TextStyle{FontSize: s.LabelFont, Bold: true}
}

// Title returns the title font.
func (s Style) Title() surface.TextStyle {
	return surface.TextStyle{FontSize: s.TitleFont}
}

// =============================================================================
// Loading
// =============================================================================

// Decode parses TOML data over the defaults.
func Decode(data []byte) (Style, error) {
	s := Default()
	md, err := toml.Decode(string(data), &s)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse style")
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		return Style{}, errors.New(errors.ErrCodeInvalidConfig, "unknown style key %q", undec[0].String())
	}
	if err := s.Validate(); err != nil {
		return Style{}, err
	}
	return s, nil
}

// Load reads a style file.
func Load(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Style{}, errors.Wrap(errors.ErrCodeNotFound, err, "style file %s", path)
		}
		return Style{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read style %s", path)
	}
	return Decode(data)
}

// Dir returns the config directory using the XDG standard
// (~/.config/plotutil/).
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// Find returns the user's style file path and whether it exists.
func Find() (string, bool) {
	dir, err := Dir()
	if err != nil {
		return "", false
	}
	path := filepath.Join(dir, fileName)
	if _, err := os.Stat(path); err != nil {
		return path, false
	}
	return path, true
}

// Resolve loads the style at path, or the user's style file when path is
// empty, or the defaults when neither exists.
func Resolve(path string) (Style, error) {
	if path != "" {
		return Load(path)
	}
	if found, ok := Find(); ok {
		return Load(found)
	}
	return Default(), nil
}
