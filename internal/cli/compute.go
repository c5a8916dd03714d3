package cli

import (
	"github.com/matzehuels/plotutil/pkg/annotate"
	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/sigfig"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// The request types below back both the CLI commands and the HTTP API, so
// a query gives the same answer from either.

// =============================================================================
// Format
// =============================================================================

// Default digit counts for format requests.
const (
	defaultExpSigFigs     = 2
	defaultSamplesSigFigs = 3
	defaultTickCount      = 5
)

type formatRequest struct {
	Value   float64   `json:"value"`
	Error   *float64  `json:"error,omitempty"`
	SigFigs int       `json:"sig_figs,omitempty"`
	Exp     bool      `json:"exp,omitempty"`
	Plain   bool      `json:"plain,omitempty"`
	Samples []float64 `json:"samples,omitempty"`
}

type formatResponse struct {
	Text string `json:"text"`
}

// run formats the request. Samples take precedence: their mean and mean
// absolute deviation are rendered. Otherwise Exp selects scientific
// notation, and without it the precision is SigFigs or chosen by
// sigfig.Smart.
func (r formatRequest) run() (formatResponse, error) {
	f := sigfig.Default
	if r.Plain {
		f = sigfig.Plain
	}
	if r.SigFigs < 0 {
		return formatResponse{}, errors.New(errors.ErrCodeInvalidInput, "sig figs must not be negative, got %d", r.SigFigs)
	}

	var (
		text string
		err  error
	)
	switch {
	case len(r.Samples) > 0:
		text, err = sigfig.PlusMinus(r.Samples, sigfig.Spec{Digits: orInt(r.SigFigs, defaultSamplesSigFigs), Verb: 'g'})
	case r.Exp && r.Error != nil:
		text, err = f.FormatErrorExp(r.Value, *r.Error, orInt(r.SigFigs, defaultExpSigFigs))
	case r.Exp:
		text, err = f.FormatExp(r.Value, orInt(r.SigFigs, defaultExpSigFigs))
	default:
		v := sigfig.Exact(r.Value)
		if r.Error != nil {
			v = sigfig.WithErr(r.Value, *r.Error)
		}
		if r.SigFigs == 0 {
			text, err = f.FormatValue(v)
			break
		}
		if err = errors.ValidateFinite("value", v.X); err == nil {
			err = errors.ValidateFinite("error", v.Err)
		}
		text = f.FormatValueSpec(v, sigfig.Spec{Digits: r.SigFigs, Verb: 'g'})
	}
	if err != nil {
		return formatResponse{}, err
	}
	return formatResponse{Text: text}, nil
}

// =============================================================================
// Ticks
// =============================================================================

type ticksRequest struct {
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Offset  float64 `json:"offset"`
	Spacing float64 `json:"spacing"`
	Minor   bool    `json:"minor,omitempty"`

	// Count asks for at most Count nice ticks instead of a fixed spacing.
	Count int `json:"count,omitempty"`
	// Log asks for decade ticks; Count bounds the major ticks.
	Log bool `json:"log,omitempty"`
}

type ticksResponse struct {
	Major []float64 `json:"major"`
	Minor []float64 `json:"minor,omitempty"`
}

func (r ticksRequest) run() (ticksResponse, error) {
	lim := geom.Limits{Lo: r.Min, Hi: r.Max}
	var (
		res ticksResponse
		err error
	)
	switch {
	case r.Log:
		res.Major, res.Minor, err = geom.LogTicks(lim, orInt(r.Count, defaultTickCount))
	case r.Count > 0:
		res.Major, res.Minor, err = geom.MaxNTicks(lim, r.Count)
	default:
		res.Major, err = geom.FixedTicks(r.Offset, r.Spacing, lim)
		if err == nil && r.Minor {
			res.Minor, err = geom.FixedTicks(geom.MinorOffset(r.Offset, r.Spacing), r.Spacing, lim)
		}
	}
	if err != nil {
		return ticksResponse{}, err
	}
	if !r.Minor {
		res.Minor = nil
	}
	return res, nil
}

// =============================================================================
// Scale Bars
// =============================================================================

type scaleBarRequest struct {
	XLim     [2]float64 `json:"xlim"`
	YLim     [2]float64 `json:"ylim"`
	XFrac    float64    `json:"x_frac,omitempty"`
	YFrac    float64    `json:"y_frac,omitempty"`
	Width    float64    `json:"width,omitempty"`
	Height   float64    `json:"height,omitempty"`
	Mult     float64    `json:"mult,omitempty"`
	Unit     string     `json:"unit,omitempty"`
	SigFigs  int        `json:"sig_figs,omitempty"`
	Vertical bool       `json:"vertical,omitempty"`
}

type scaleBarResponse struct {
	CenterX float64    `json:"center_x"`
	CenterY float64    `json:"center_y"`
	Width   float64    `json:"width"`
	Height  float64    `json:"height"`
	XSpan   [2]float64 `json:"x_span"`
	YSpan   [2]float64 `json:"y_span"`
	Label   string     `json:"label"`
}

// run lays the bar out on a recording surface with the requested limits,
// so the label and placement match what a rendered figure gets.
func (r scaleBarRequest) run() (scaleBarResponse, error) {
	ax := surface.NewRecorder()
	ax.SetXLimits(geom.Limits{Lo: r.XLim[0], Hi: r.XLim[1]})
	ax.SetYLimits(geom.Limits{Lo: r.YLim[0], Hi: r.YLim[1]})
	res, err := annotate.ScaleBar(ax, annotate.ScaleBarOptions{
		Mult: r.Mult, Unit: r.Unit,
		XFrac: r.XFrac, YFrac: r.YFrac,
		Width: r.Width, LabelFrac: r.Height,
		SigFigs:  r.SigFigs,
		Vertical: r.Vertical,
	})
	if err != nil {
		return scaleBarResponse{}, err
	}
	b := res.Bar
	x0, x1 := b.XSpan()
	y0, y1 := b.YSpan()
	return scaleBarResponse{
		CenterX: b.Center.X, CenterY: b.Center.Y,
		Width: b.Width, Height: b.Height,
		XSpan: [2]float64{x0, x1}, YSpan: [2]float64{y0, y1},
		Label: res.Label,
	}, nil
}

func orInt(v, def int) int {
	if v == 0 {
		return def
	}
	return v
}
