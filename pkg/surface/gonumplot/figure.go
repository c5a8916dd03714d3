package gonumplot

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/geom"
	"github.com/matzehuels/plotutil/pkg/surface"
)

const (
	// DefaultWidth and DefaultHeight are the figure size when none is given.
	DefaultWidth  = 10 * vg.Inch
	DefaultHeight = 8 * vg.Inch

	// DefaultPadding separates panels and the figure border.
	DefaultPadding = vg.Length(8)
)

// Figure is a surface.Figure laying out gonum panels on a grid.
type Figure struct {
	rows, cols    int
	width, height vg.Length
	pad           vg.Length
	panels        []*Axes
	zooms         []surface.Zoom
}

var _ surface.Figure = (*Figure)(nil)

// Option configures a Figure.
type Option func(*Figure)

// WithSize sets the figure size.
func WithSize(w, h vg.Length) Option {
	return func(f *Figure) { f.width, f.height = w, h }
}

// WithPadding sets the space between panels and around the figure.
func WithPadding(pad vg.Length) Option {
	return func(f *Figure) { f.pad = pad }
}

// NewFigure returns a rows by cols grid of empty panels.
func NewFigure(rows, cols int, opts ...Option) (*Figure, error) {
	if rows < 1 || cols < 1 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "figure grid must be at least 1x1, got %dx%d", rows, cols)
	}
	f := &Figure{rows: rows, cols: cols, width: DefaultWidth, height: DefaultHeight, pad: DefaultPadding}
	for _, opt := range opts {
		opt(f)
	}
	if f.width <= 0 || f.height <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "figure size must be positive, got %vx%v", f.width, f.height)
	}
	for i := 0; i < rows*cols; i++ {
		f.panels = append(f.panels, NewAxes())
	}
	return f, nil
}

// Panel returns panel i in row-major order.
func (f *Figure) Panel(i int) *Axes { return f.panels[i] }

func (f *Figure) Axes() []surface.Axes {
	axes := make([]surface.Axes, len(f.panels))
	for i, p := range f.panels {
		axes[i] = p
	}
	return axes
}

func (f *Figure) Overlay(z surface.Zoom) error {
	if err := z.Validate(len(f.panels)); err != nil {
		return err
	}
	f.zooms = append(f.zooms, z)
	return nil
}

// Render draws every panel and zoom overlay in the given format.
func (f *Figure) Render(ctx context.Context, format string) (out []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	format = strings.ToLower(format)
	c, err := draw.NewFormattedCanvas(f.width, f.height, format)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "unsupported format %q", format)
	}

	// gonum panics on data it cannot draw, such as non-positive values on
	// a log axis.
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errors.New(errors.ErrCodeRender, "draw %s: %v", format, r)
		}
	}()

	dc := draw.New(c)
	canvases := plot.Align(f.grid(), draw.Tiles{
		Rows: f.rows, Cols: f.cols,
		PadTop: f.pad, PadBottom: f.pad, PadLeft: f.pad, PadRight: f.pad,
		PadX: f.pad, PadY: f.pad,
	}, dc)
	for i, a := range f.panels {
		a.p.Draw(canvases[i/f.cols][i%f.cols])
	}
	for _, z := range f.zooms {
		if err := f.drawZoom(dc, canvases, z); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := c.WriteTo(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeRender, err, "write %s", format)
	}
	return buf.Bytes(), nil
}

// Save renders the figure and writes it to path.
func (f *Figure) Save(ctx context.Context, path, format string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	data, err := f.Render(ctx, format)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "save %s", path)
	}
	return nil
}

func (f *Figure) grid() [][]*plot.Plot {
	plots := make([][]*plot.Plot, f.rows)
	for r := range plots {
		plots[r] = make([]*plot.Plot, f.cols)
		for c := range plots[r] {
			plots[r][c] = f.panels[r*f.cols+c].p
		}
	}
	return plots
}

// boxOnCanvas maps a zoom box (x in data, y in axes fraction) of panel i
// onto figure coordinates.
func (f *Figure) boxOnCanvas(canvases [][]draw.Canvas, i int, box geom.Rect) geom.Rect {
	p := f.panels[i].p
	da := p.DataCanvas(canvases[i/f.cols][i%f.cols])
	trX, _ := p.Transforms(&da)
	y := func(frac float64) float64 {
		return float64(da.Min.Y + vg.Length(frac)*(da.Max.Y-da.Min.Y))
	}
	return geom.RectFromExtents(
		float64(trX(box.X)), y(box.Y),
		float64(trX(box.X+box.W)), y(box.Y+box.H),
	)
}

func (f *Figure) drawZoom(dc draw.Canvas, canvases [][]draw.Canvas, z surface.Zoom) error {
	from := f.boxOnCanvas(canvases, z.From, z.FromBox)
	to := f.boxOnCanvas(canvases, z.To, z.ToBox)
	conn, err := geom.Connect(from, to, z.Locs[0], z.Locs[1], z.Locs[2], z.Locs[3])
	if err != nil {
		return fmt.Errorf("zoom %d->%d: %w", z.From, z.To, err)
	}
	if z.FromPatch.Face != nil {
		dc.FillPolygon(z.FromPatch.Face, vgPoints(from.Points()))
	}
	if z.ToPatch.Face != nil {
		dc.FillPolygon(z.ToPatch.Face, vgPoints(to.Points()))
	}
	if z.Connector.Face != nil {
		dc.FillPolygon(z.Connector.Face, vgPoints(conn.Patch))
	}
	ls := lineStyle(z.Line)
	for _, seg := range []geom.Segment{conn.A, conn.B} {
		dc.StrokeLines(ls, vgPoints([]geom.Point{seg.From, seg.To}))
	}
	return nil
}

func vgPoints(pts []geom.Point) []vg.Point {
	out := make([]vg.Point, len(pts))
	for i, p := range pts {
		out[i] = vg.Point{X: vg.Length(p.X), Y: vg.Length(p.Y)}
	}
	return out
}
