package errors

import (
	"math"
	"path/filepath"
	"strings"
	"unicode"
)

// ValidateFinite returns a FORMAT error if v is NaN or ±Inf.
// name identifies the value in the message (e.g. "value", "error").
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Format("%s must be finite, got %v", name, v)
	}
	return nil
}

// ValidateNonZero returns a FORMAT error if v is zero or non-finite.
// Used wherever log10(|v|) is taken.
func ValidateNonZero(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v == 0 {
		return Format("%s must be nonzero: log10(0) is undefined", name)
	}
	return nil
}

// ValidatePositive returns a GEOMETRY error unless v is finite and > 0.
func ValidatePositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return Geometry("%s must be positive and finite, got %v", name, v)
	}
	return nil
}

// ValidateRange returns a GEOMETRY error if the range [lo, hi] has zero
// width or a non-finite end. The order of lo and hi does not matter.
func ValidateRange(name string, lo, hi float64) error {
	for _, v := range []float64{lo, hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Geometry("%s limits must be finite, got (%v, %v)", name, lo, hi)
		}
	}
	if lo == hi {
		return Geometry("%s range is degenerate: (%v, %v)", name, lo, hi)
	}
	return nil
}

// ValidateOutputPath validates a figure output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 1024 characters
//   - No null bytes or control characters
//   - Cannot name a directory (trailing separator)
func ValidateOutputPath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "output path cannot be empty")
	}
	if len(path) > 1024 {
		return New(ErrCodeInvalidPath, "output path too long (max 1024 characters)")
	}
	for _, r := range path {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "output path contains invalid control characters")
		}
	}
	if strings.HasSuffix(path, "/") || strings.HasSuffix(path, string(filepath.Separator)) {
		return New(ErrCodeInvalidPath, "output path names a directory: %q", path)
	}
	return nil
}
