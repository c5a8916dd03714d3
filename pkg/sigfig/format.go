package sigfig

import (
	"math"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// Formatter composes display strings with a fixed [Markup].
type Formatter struct {
	Markup Markup

	// ErrorSpec formats the relative error in FormatErrorExp.
	ErrorSpec Spec
}

var (
	// Default uses [MathText] and one significant digit for errors.
	Default = Formatter{Markup: MathText, ErrorSpec: Spec{Digits: 1, Verb: 'g'}}

	// Plain uses [PlainText] and one significant digit for errors.
	Plain = Formatter{Markup: PlainText, ErrorSpec: Spec{Digits: 1, Verb: 'g'}}
)

// FormatExp renders number as mantissa·10^exponent with sigFigs digits.
func (f Formatter) FormatExp(number float64, sigFigs int) (string, error) {
	p, err := Decompose(number, sigFigs)
	if err != nil {
		return "", err
	}
	return f.Markup.withExponent(p.Mantissa, p), nil
}

// FormatErrorExp renders (mantissa ± error)·10^exponent, where the error is
// expressed in units of the exponent chosen for number.
func (f Formatter) FormatErrorExp(number, err float64, sigFigs int) (string, error) {
	if e := errors.ValidateFinite("error", err); e != nil {
		return "", e
	}
	p, e := Decompose(number, sigFigs)
	if e != nil {
		return "", e
	}
	// The exponent digits are unsigned; restore the exponent sign before
	// scaling the error.
	exponent := float64(p.Exp())
	rel := err / math.Pow(10, exponent)
	body := "(" + p.Mantissa + f.Markup.PlusMinus + f.ErrorSpec.Format(rel) + ")"
	return f.Markup.withExponent(body, p), nil
}

// FormatValue renders v with a precision chosen by [Smart]. With an error,
// the result is "<value><sep><error>" and the error gets its own Smart
// precision.
func (f Formatter) FormatValue(v Value) (string, error) {
	spec, err := Smart(v, 1)
	if err != nil {
		return "", err
	}
	if !v.HasErr {
		return spec.Format(v.X), nil
	}
	errSpec, err := Smart(Exact(v.Err), 1)
	if err != nil {
		return "", err
	}
	return spec.Format(v.X) + f.Markup.Separator + errSpec.Format(v.Err), nil
}

// FormatValueSpec renders v with spec for both the value and its error.
func (f Formatter) FormatValueSpec(v Value, spec Spec) string {
	if !v.HasErr {
		return spec.Format(v.X)
	}
	return spec.Format(v.X) + f.Markup.Separator + spec.Format(v.Err)
}

// FormatExp is [Formatter.FormatExp] with the [Default] formatter.
func FormatExp(number float64, sigFigs int) (string, error) {
	return Default.FormatExp(number, sigFigs)
}

// FormatErrorExp is [Formatter.FormatErrorExp] with the [Default] formatter.
func FormatErrorExp(number, err float64, sigFigs int) (string, error) {
	return Default.FormatErrorExp(number, err, sigFigs)
}

// FormatValue is [Formatter.FormatValue] with the [Default] formatter.
func FormatValue(v Value) (string, error) {
	return Default.FormatValue(v)
}
