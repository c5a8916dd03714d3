package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/matzehuels/plotutil/pkg/annotate"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// SaveName returns name with ".svg" appended when it has no extension.
func SaveName(name string) string {
	if filepath.Ext(name) == "" {
		return name + "." + DefaultFormat
	}
	return name
}

// Save writes fig to SaveName(name) in the format its extension names,
// and returns the path written.
func Save(ctx context.Context, fig surface.Figure, name string) (string, error) {
	path := SaveName(name)
	format, err := FormatFromPath(path)
	if err != nil {
		return "", err
	}
	if err := fig.Save(ctx, path, format); err != nil {
		return "", err
	}
	return path, nil
}

// LegendAndSave redraws the legend of ax, framed in the upper right unless
// opts says otherwise, and saves fig. It returns the path written.
func LegendAndSave(ctx context.Context, fig surface.Figure, ax surface.Axes, name string, opts *annotate.LegendOptions) (string, error) {
	lo := annotate.LegendOptions{Loc: "upper right", Frame: true}
	if opts != nil {
		lo = *opts
	}
	if _, err := annotate.Legend(ax, lo); err != nil {
		return "", err
	}
	return Save(ctx, fig, name)
}

// LegendSaveAndIncr saves to base+n+ext (ext defaults to ".png") with
// LegendAndSave and returns n+1, for numbering a series of figures.
func LegendSaveAndIncr(ctx context.Context, fig surface.Figure, ax surface.Axes, base string, n int, ext string, opts *annotate.LegendOptions) (int, error) {
	if ext == "" {
		ext = ".png"
	}
	if _, err := LegendAndSave(ctx, fig, ax, fmt.Sprintf("%s%d%s", base, n, ext), opts); err != nil {
		return n, err
	}
	return n + 1, nil
}
