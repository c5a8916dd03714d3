package cli

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotutil/pkg/buildinfo"
	"github.com/matzehuels/plotutil/pkg/cache"
	"github.com/matzehuels/plotutil/pkg/errors"
	"github.com/matzehuels/plotutil/pkg/observability"
	"github.com/matzehuels/plotutil/pkg/pipeline"
	"github.com/matzehuels/plotutil/pkg/scene"
)

const (
	defaultAddr     = ":8080"
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

// contentTypes maps output formats to their MIME types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatPDF:  "application/pdf",
	pipeline.FormatEPS:  "application/postscript",
	pipeline.FormatJPG:  "image/jpeg",
	pipeline.FormatTIFF: "image/tiff",
}

// serveCommand creates the "serve" command.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr, redisURL, prefix string
		noCache                bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the formatting, geometry and render API over HTTP",
		Long: `Serve the formatting, geometry and render API over HTTP.

Endpoints:
  GET  /healthz    build information
  POST /format     {"value": 0.0045, "exp": true}
  POST /ticks      {"offset": 1, "spacing": 2, "min": 0, "max": 10}
  POST /scalebar   {"xlim": [0, 10], "ylim": [0, 5]}
  POST /render     scene TOML in the body, ?format=svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			fc, err := newCache(ctx, noCache, redisURL)
			if err != nil {
				return err
			}
			var keyer cache.Keyer
			if prefix != "" {
				keyer = cache.NewScopedKeyer(cache.NewDefaultKeyer(), prefix)
			}
			runner := pipeline.NewRunner(fc, keyer, c.Logger)
			defer runner.Close()

			return listen(ctx, addr, newServer(runner, c.Logger).routes(), c.Logger)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().StringVar(&redisURL, "redis", "", "Redis URL for a shared figure cache")
	cmd.Flags().StringVar(&prefix, "cache-prefix", "", "prefix for cache keys, e.g. a deployment name")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "do not cache rendered figures")

	return cmd
}

// listen serves h on addr until ctx is done, then shuts down gracefully.
func listen(ctx context.Context, addr string, h http.Handler, logger *log.Logger) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	logger.Info("listening", "addr", addr)

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return ctx.Err()
}

// =============================================================================
// Server
// =============================================================================

type server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

func newServer(runner *pipeline.Runner, logger *log.Logger) *server {
	return &server{runner: runner, logger: logger}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Post("/format", jsonHandler(formatRequest.run))
	r.Post("/ticks", jsonHandler(ticksRequest.run))
	r.Post("/scalebar", jsonHandler(scaleBarRequest.run))
	r.Post("/render", s.handleRender)
	return r
}

// observe reports requests to the HTTP hooks and logs them.
func (s *server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, route, ww.Status(), elapsed)
		s.logger.Info("request", "method", r.Method, "route", route, "status", ww.Status(),
			"duration", elapsed.Round(time.Microsecond), "id", middleware.GetReqID(r.Context()))
	})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.DefaultFormat
	}
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "read scene"))
		return
	}
	sc, err := scene.Decode(data)
	if err != nil {
		writeError(w, err)
		return
	}
	res, err := s.runner.Execute(r.Context(), sc, pipeline.Options{
		Formats: []string{format},
		Refresh: r.URL.Query().Get("refresh") == "true",
	})
	if err != nil {
		writeError(w, err)
		return
	}
	// Options normalize aliases such as jpeg.
	format, _ = pipeline.FormatFromPath("." + format)

	cacheStatus := "miss"
	if len(res.CacheHits) > 0 {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Cache", cacheStatus)
	w.Header().Set("X-Scene-Hash", res.SceneHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// jsonHandler decodes a JSON request, runs it and writes the JSON result.
func jsonHandler[Req, Resp any](run func(Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Req
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request"))
			return
		}
		resp, err := run(req)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// apiError is the JSON body of a failed request.
type apiError struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	writeJSON(w, statusFor(code), apiError{Error: errors.UserMessage(err), Code: code})
}

// statusFor maps error codes to HTTP status codes.
func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeFormat, errors.ErrCodeGeometry:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidConfig, errors.ErrCodeInvalidPath:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
