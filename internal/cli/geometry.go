package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// ticksCommand creates the "ticks" command.
func (c *CLI) ticksCommand() *cobra.Command {
	var (
		req    ticksRequest
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Compute tick positions for an axis range",
		Long: `Compute tick positions for an axis range.

By default ticks are placed every --spacing units through --offset, far
enough to cover --min..--max. --count picks at most that many nice ticks
instead, and --log picks decades.`,
		Example: `  plotutil ticks --offset 1 --spacing 2 --min 0 --max 10 --minor
  plotutil ticks --count 5 --min 0 --max 7.3
  plotutil ticks --log --min 1 --max 1e4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := req.run()
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(c.Out).Encode(res)
			}
			printTicks(c.Out, res.Major, res.Minor)
			return nil
		},
	}

	cmd.Flags().Float64Var(&req.Offset, "offset", 0, "a position every tick set includes")
	cmd.Flags().Float64Var(&req.Spacing, "spacing", 0, "distance between ticks")
	cmd.Flags().Float64Var(&req.Min, "min", 0, "lower axis limit")
	cmd.Flags().Float64Var(&req.Max, "max", 1, "upper axis limit")
	cmd.Flags().BoolVar(&req.Minor, "minor", false, "also compute minor ticks")
	cmd.Flags().IntVar(&req.Count, "count", 0, "at most this many nice ticks (ignores --offset and --spacing)")
	cmd.Flags().BoolVar(&req.Log, "log", false, "decade ticks for a log axis")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

// scaleBarCommand creates the "scalebar" command.
func (c *CLI) scaleBarCommand() *cobra.Command {
	var (
		req        scaleBarRequest
		xlim, ylim []float64
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "scalebar",
		Short: "Compute scale-bar placement and label for an axes",
		Example: `  plotutil scalebar --xlim 0,10 --ylim 0,5
  plotutil scalebar --xlim 0,2.5 --ylim -1,1 --mult 1 --unit s --width 0.4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if req.XLim, err = limitsFlag("xlim", xlim); err != nil {
				return err
			}
			if req.YLim, err = limitsFlag("ylim", ylim); err != nil {
				return err
			}
			res, err := req.run()
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(c.Out).Encode(res)
			}
			printKeyValue(c.Out, "label", res.Label)
			printKeyValue(c.Out, "center", fmt.Sprintf("(%s, %s)", num(res.CenterX), num(res.CenterY)))
			printKeyValue(c.Out, "x", fmt.Sprintf("%s .. %s", num(res.XSpan[0]), num(res.XSpan[1])))
			printKeyValue(c.Out, "y", fmt.Sprintf("%s .. %s", num(res.YSpan[0]), num(res.YSpan[1])))
			return nil
		},
	}

	cmd.Flags().Float64SliceVar(&xlim, "xlim", []float64{0, 1}, "x axis limits as lo,hi")
	cmd.Flags().Float64SliceVar(&ylim, "ylim", []float64{0, 1}, "y axis limits as lo,hi")
	cmd.Flags().Float64Var(&req.XFrac, "x-frac", 0, "bar centre from the left edge, as a fraction of the x range (default 0.2)")
	cmd.Flags().Float64Var(&req.YFrac, "y-frac", 0, "bar centre below the top edge, as a fraction of the y range (default 0.2)")
	cmd.Flags().Float64Var(&req.Width, "width", 0, "bar length as a fraction of the x range (default 0.2)")
	cmd.Flags().Float64Var(&req.Height, "height", 0, "label gap, or bar length with --vertical, as a fraction of the y range (default 0.15)")
	cmd.Flags().Float64Var(&req.Mult, "mult", 0, "data units to label units (default 1000)")
	cmd.Flags().StringVar(&req.Unit, "unit", "", `label unit (default "ms")`)
	cmd.Flags().IntVar(&req.SigFigs, "sig-figs", 0, "significant figures of the label (default 2)")
	cmd.Flags().BoolVar(&req.Vertical, "vertical", false, "vertical bar measuring the y axis")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}

func limitsFlag(name string, vals []float64) ([2]float64, error) {
	if len(vals) != 2 {
		return [2]float64{}, errors.New(errors.ErrCodeInvalidInput, "--%s needs two values, got %d", name, len(vals))
	}
	return [2]float64{vals[0], vals[1]}, nil
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
