// Package pipeline renders scenes: scene → figure → artifacts.
//
// The CLI and the HTTP server both go through a [Runner], so a scene
// renders the same way from either entry point.
//
// # Usage
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	sc, err := scene.Load("figure.toml")
//	if err != nil {
//	    return err
//	}
//	result, err := runner.Execute(ctx, sc, pipeline.Options{
//	    Formats: []string{"svg", "png"},
//	})
//	svg := result.Artifacts["svg"]
//
// Rendered artifacts are cached by scene, style and format when the runner
// has a cache. [Build] applies a scene to any surface.Figure, which is how
// the tests check what gets drawn without rendering.
package pipeline

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/style"
)

// =============================================================================
// Formats
// =============================================================================

// Output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatEPS  = "eps"
	FormatJPG  = "jpg"
	FormatTIFF = "tiff"
)

// DefaultFormat is used when no format is requested or a file name has no
// extension.
const DefaultFormat = FormatSVG

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatEPS:  true,
	FormatJPG:  true,
	FormatTIFF: true,
}

// formatAliases maps alternative extensions to their format.
var formatAliases = map[string]string{
	"jpeg": FormatJPG,
	"tif":  FormatTIFF,
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, pdf, eps, jpg, tiff)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// FormatFromPath returns the output format named by a file extension,
// DefaultFormat when there is none.
func FormatFromPath(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return DefaultFormat, nil
	}
	if alias, ok := formatAliases[ext]; ok {
		ext = alias
	}
	if err := ValidateFormat(ext); err != nil {
		return "", err
	}
	return ext, nil
}

// =============================================================================
// Options
// =============================================================================

// Options configures a pipeline run.
type Options struct {
	// Formats to render. Default svg.
	Formats []string `json:"formats,omitempty"`
	// Style sets font and tick sizes. Default style.Default().
	Style *style.Style `json:"style,omitempty"`
	// Refresh renders even when the cache has the artifact.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives progress. Defaults to the runner's logger.
	Logger *log.Logger `json:"-"`
}

// SetDefaults fills unset options.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	for i, f := range o.Formats {
		f = strings.ToLower(strings.TrimSpace(f))
		if alias, ok := formatAliases[f]; ok {
			f = alias
		}
		o.Formats[i] = f
	}
	if o.Style == nil {
		st := style.Default()
		o.Style = &st
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateAndSetDefaults applies defaults, then checks formats and style.
func (o *Options) ValidateAndSetDefaults() error {
	o.SetDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	return o.Style.Validate()
}

// =============================================================================
// Results
// =============================================================================

// Result contains the outputs of a pipeline run.
type Result struct {
	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte
	// SceneHash identifies the scene content.
	SceneHash string
	Stats     Stats
	// CacheHits lists the formats served from the cache.
	CacheHits []string
}

// Stats contains timing and size information.
type Stats struct {
	Panels     int
	BuildTime  time.Duration
	RenderTime time.Duration
}

func (s Stats) String() string {
	return fmt.Sprintf("%d panels, build %s, render %s", s.Panels, s.BuildTime.Round(time.Millisecond), s.RenderTime.Round(time.Millisecond))
}
