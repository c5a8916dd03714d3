package cli

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/pipeline"
	"github.com/matzehuels/plotutil/pkg/scene"
	"github.com/matzehuels/plotutil/pkg/style"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string   // output file (single format) or base path
	formats  []string // output formats: svg, png, pdf, eps, jpg, tiff
	style    string   // style file; default the user's style.toml
	noCache  bool     // skip the figure cache
	refresh  bool     // re-render even when cached
	redisURL string   // use a Redis figure cache
	pick     string   // directory to pick a scene from
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		opts       renderOpts
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "render [SCENE.toml]",
		Short: "Render a TOML scene to figure files",
		Long: `Render a TOML scene to figure files.

The output is written next to the scene unless -o is given. With several
formats, -o names the base path and each format gets its own extension.
Rendered figures are cached under ~/.cache/plotutil unless --no-cache is set.`,
		Example: `  plotutil render figure.toml
  plotutil render figure.toml -f svg,png -o out/figure
  plotutil render --pick scenes/`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if opts.pick == "" && len(args) == 0 {
				return errors.New(errors.ErrCodeInvalidInput, "a scene file or --pick is required")
			}
			input := ""
			if len(args) == 1 {
				input = args[0]
			} else {
				path, err := pickScene(opts.pick)
				if err != nil {
					return err
				}
				if path == "" {
					printInfo(c.Out, "No scene selected")
					return nil
				}
				input = path
			}
			return c.runRender(cmd.Context(), input, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (several)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, eps, jpg, tiff (comma-separated)")
	cmd.Flags().StringVar(&opts.style, "style", "", "style file (default: ~/.config/plotutil/style.toml if present)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "do not read or write the figure cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when the figure is cached")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for a shared figure cache")
	cmd.Flags().StringVar(&opts.pick, "pick", "", "pick a scene interactively from this directory")

	return cmd
}

// runRender loads the scene and style, renders every format and writes the
// artifacts.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	sc, err := scene.Load(input)
	if err != nil {
		return err
	}
	st, err := style.Resolve(opts.style)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded scene %q: %d panels on a %dx%d grid", sc.Name, len(sc.Panels), sc.Rows, sc.Cols)

	runner, err := c.newRunner(ctx, opts.noCache, opts.redisURL)
	if err != nil {
		return err
	}
	defer runner.Close()

	popts := pipeline.Options{
		Formats: opts.formats,
		Style:   &st,
		Refresh: opts.refresh,
		Logger:  logger,
	}
	popts.SetDefaults()
	spin := newSpinner(ctx, os.Stderr, "Rendering "+filepath.Base(input))
	spin.Start()
	result, err := runner.Execute(ctx, sc, popts)
	spin.Stop()
	if err != nil {
		return err
	}

	base := basePath(opts.output, input)
	cached := make(map[string]bool, len(result.CacheHits))
	for _, f := range result.CacheHits {
		cached[f] = true
	}
	printSuccess(c.Out, "Rendered %s", StyleHighlight.Render(input))
	for _, format := range popts.Formats {
		path := base + "." + format
		if len(popts.Formats) == 1 && opts.output != "" {
			path = opts.output
			if got, err := pipeline.FormatFromPath(path); err != nil || got != format {
				printWarning(c.Out, "%s does not look like a %s file", filepath.Base(path), format)
			}
		}
		if err := writeOutput(path, result.Artifacts[format]); err != nil {
			return err
		}
		printFile(c.Out, path, format, cached[format])
	}
	printStats(c.Out, result.Stats, len(result.CacheHits))
	prog.done("Rendered " + input)
	return nil
}

// basePath derives the base output path. Without output it strips the
// extension from input; a known format extension on output is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if _, err := pipeline.FormatFromPath(output); err == nil && ext != "" {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeOutput writes data to path, creating parent directories.
func writeOutput(path string, data []byte) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	return nil
}
