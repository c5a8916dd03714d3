// Package sigfig renders numbers for plot annotations: rounding to a number
// of significant figures, splitting a value into mantissa, sign and exponent,
// and choosing a display precision that resolves an associated uncertainty.
//
// # Rounding
//
// [Round] rounds a single nonzero value; [RoundAll] maps it over a slice:
//
//	v, _ := sigfig.Round(51, 1)        // 50
//	vs, _ := sigfig.RoundAll(xs, 2)
//
// Zero has no significant figures, so Round reports a FORMAT error for it,
// as it does for NaN and ±Inf.
//
// # Exponent Notation
//
// [Decompose] formats a value in scientific notation and splits it into
// [Parts]. [Formatter.FormatExp] and [Formatter.FormatErrorExp] compose the
// parts into "m·10^e" and "(m ± err)·10^e" using a [Markup]. [MathText] is
// the default and matches mathtext/LaTeX renderers; [Plain] is suitable for
// terminals:
//
//	s, _ := sigfig.FormatExp(0.0045, 2)         // $\mathbf{4.5\cdot 10^{-3}}$
//	s, _ = sigfig.Plain.FormatErrorExp(1230, 400, 2) // (1.2 ± 0.4)·10^3
//
// # Precision Selection
//
// [Smart] derives a reusable [Spec] (digit count plus strconv verb) for a
// [Value] and its optional error; [Formatter.FormatValue] applies it:
//
//	s, _ := sigfig.Plain.FormatValue(sigfig.WithErr(10.2, 0.1)) // "10 ± 0.1"
//
// The digit count grows by the difference between the error's and the
// value's exponent magnitudes, and a value whose leading digit is 1 gets a
// second digit so that 11 is not shown as a bare order of magnitude.
package sigfig
