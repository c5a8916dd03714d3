package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotutil/pkg/errors"
)

// formatCommand creates the "format" command.
func (c *CLI) formatCommand() *cobra.Command {
	var (
		req    formatRequest
		errVal float64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "format [VALUE]",
		Short: "Format a value to significant figures",
		Long: `Format a value to significant figures.

Without --exp the precision is chosen from the value (and its error, if
given). With --exp the value is written as mantissa·10^exponent. With
--samples the mean and mean absolute deviation of the samples are shown.`,
		Example: `  plotutil format 0.0045 --exp
  plotutil format 10.2 --error 0.1 --plain
  plotutil format --samples 1,2,3`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case len(args) == 1:
				v, err := strconv.ParseFloat(args[0], 64)
				if err != nil {
					return errors.Wrap(errors.ErrCodeInvalidInput, err, "parse value %q", args[0])
				}
				req.Value = v
			case len(req.Samples) == 0:
				return errors.New(errors.ErrCodeInvalidInput, "a VALUE or --samples is required")
			}
			if cmd.Flags().Changed("error") {
				req.Error = &errVal
			}

			res, err := req.run()
			if err != nil {
				return err
			}
			if asJSON {
				return json.NewEncoder(c.Out).Encode(res)
			}
			fmt.Fprintln(c.Out, res.Text)
			return nil
		},
	}

	cmd.Flags().Float64Var(&errVal, "error", 0, "uncertainty of the value")
	cmd.Flags().IntVarP(&req.SigFigs, "sig-figs", "n", 0, "significant figures (default: chosen from the value, 2 with --exp)")
	cmd.Flags().BoolVar(&req.Exp, "exp", false, "scientific notation")
	cmd.Flags().BoolVar(&req.Plain, "plain", false, "plain text instead of mathtext markup")
	cmd.Flags().Float64SliceVar(&req.Samples, "samples", nil, "format the mean ± deviation of these samples")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")

	return cmd
}
