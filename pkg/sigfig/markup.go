package sigfig

// Markup controls how exponent expressions are spelled.
type Markup struct {
	Begin, End       string // around the whole expression
	Times            string // between mantissa and exponent
	ExpBegin, ExpEnd string // around the signed exponent
	PlusMinus        string // between a mantissa and its error inside an expression
	Separator        string // between a value and its error in running text
}

// MathText renders bold mathtext, e.g. $\mathbf{4.5\cdot 10^{-3}}$.
var MathText = Markup{
	Begin:     `$\mathbf{`,
	End:       `}$`,
	Times:     `\cdot 10^`,
	ExpBegin:  `{`,
	ExpEnd:    `}`,
	PlusMinus: `\pm`,
	Separator: ` $\pm$ `,
}

// PlainText renders unicode text, e.g. 4.5·10^-3.
var PlainText = Markup{
	Times:     "·10^",
	PlusMinus: " ± ",
	Separator: " ± ",
}

func (m Markup) withExponent(body string, p Parts) string {
	return m.Begin + body + m.Times + m.ExpBegin + p.SignedExponent() + m.ExpEnd + m.End
}
