package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/plotutil/pkg/cache"
	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/observability"
	"github.com/matzehuels/plotutil/pkg/scene"
	"github.com/matzehuels/plotutil/pkg/style"
	"github.com/matzehuels/plotutil/pkg/surface"
)

// FigureFactory builds the empty figure a scene is drawn on.
type FigureFactory func(sc *scene.Scene) (surface.Figure, error)

// Runner renders scenes with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can safely share one.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
	// NewFigure defaults to a gonum figure.
	NewFigure FigureFactory
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer
// means cache.NewDefaultKeyer and a nil logger means log.Default.
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
		NewFigure: func(sc *scene.Scene) (surface.Figure, error) {
			return NewFigure(sc)
		},
	}
}

// Execute renders sc in every requested format. Formats already in the
// cache are not rendered again unless opts.Refresh is set; the figure is
// built at most once.
func (r *Runner) Execute(ctx context.Context, sc *scene.Scene, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}
	logger := opts.Logger

	sceneData, err := sc.Encode()
	if err != nil {
		return nil, err
	}
	styleData, err := json.Marshal(opts.Style)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "encode style")
	}
	result := &Result{
		Artifacts: make(map[string][]byte, len(opts.Formats)),
		SceneHash: cache.Hash(sceneData),
		Stats:     Stats{Panels: len(sc.Panels)},
	}
	keyOpts := cache.ArtifactKeyOpts{StyleHash: cache.Hash(styleData)}

	var fig surface.Figure
	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		keyOpts.Format = format
		key := r.Keyer.ArtifactKey(result.SceneHash, keyOpts)
		if !opts.Refresh {
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil {
				logger.Warn("cache read failed", "format", format, "error", err)
			} else if hit {
				observability.Cache().OnCacheHit(ctx, format)
				logger.Debug("cache hit", "format", format)
				result.Artifacts[format] = data
				result.CacheHits = append(result.CacheHits, format)
				continue
			}
			observability.Cache().OnCacheMiss(ctx, format)
		}

		if fig == nil {
			start := time.Now()
			observability.Pipeline().OnBuildStart(ctx, sc.Name, len(sc.Panels))
			fig, err = r.build(sc, *opts.Style)
			result.Stats.BuildTime = time.Since(start)
			observability.Pipeline().OnBuildComplete(ctx, sc.Name, result.Stats.BuildTime, err)
			if err != nil {
				return nil, err
			}
			logger.Debug("built figure", "panels", len(sc.Panels), "duration", result.Stats.BuildTime)
		}

		start := time.Now()
		observability.Pipeline().OnRenderStart(ctx, format)
		data, err := fig.Render(ctx, format)
		elapsed := time.Since(start)
		observability.Pipeline().OnRenderComplete(ctx, format, len(data), elapsed, err)
		if err != nil {
			if errors.GetCode(err) == "" && ctx.Err() == nil {
				err = errors.Wrap(errors.ErrCodeRender, err, "render %s", format)
			}
			return nil, err
		}
		result.Stats.RenderTime += elapsed
		result.Artifacts[format] = data
		logger.Info("rendered", "format", format, "bytes", len(data), "duration", elapsed)

		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			logger.Warn("cache write failed", "format", format, "error", err)
		} else {
			observability.Cache().OnCacheSet(ctx, format, len(data))
		}
	}
	return result, nil
}

func (r *Runner) build(sc *scene.Scene, st style.Style) (surface.Figure, error) {
	fig, err := r.NewFigure(sc)
	if err != nil {
		return nil, fmt.Errorf("new figure: %w", err)
	}
	if err := Build(fig, sc, st); err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	return fig, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
