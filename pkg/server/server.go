package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	theme "github.com/goliatone/go-theme"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/goliatone/go-enrollform/pkg/form"
	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/openapi"
	"github.com/goliatone/go-enrollform/pkg/render"
	"github.com/goliatone/go-enrollform/pkg/renderers/vanilla"
)

const defaultTracerName = "github.com/goliatone/go-enrollform/pkg/server"

const (
	formRoute     = "/"
	validateRoute = "/api/validate"
	healthRoute   = "/healthz"
	contractRoute = "/openapi.json"
	metricsRoute  = "/metrics"
	assetsPrefix  = "/assets/"
)

// ErrInvalidTargetRoute is returned by New when the confirmation route is not
// an absolute path or collides with a built-in route.
var ErrInvalidTargetRoute = errors.New("server: invalid target route")

// CheckTargetRoute reports whether path can serve the confirmation page.
func CheckTargetRoute(path string) error {
	if !strings.HasPrefix(path, "/") || strings.ContainsAny(path, "?#") {
		return fmt.Errorf("%w: %q must be an absolute path", ErrInvalidTargetRoute, path)
	}
	clean := strings.TrimSuffix(path, "/")
	switch {
	case clean == "", clean == validateRoute, clean == healthRoute,
		clean == contractRoute, clean == metricsRoute,
		clean+"/" == assetsPrefix, strings.HasPrefix(path, assetsPrefix):
		return fmt.Errorf("%w: %q is a built-in route", ErrInvalidTargetRoute, path)
	}
	return nil
}

// Server serves the enrollment form.
type Server struct {
	logger     *zap.Logger
	page       *vanilla.Renderer
	extra      []render.Renderer
	registry   *render.Registry
	theme      *theme.RendererConfig
	target     string
	initial    model.Values
	countries  []string
	contract   *openapi.Contract
	form       model.FormModel
	decorators []model.Decorator

	metricsNamespace string
	registerer       prometheus.Registerer
	gatherer         prometheus.Gatherer
	metrics          *metrics

	tracerName string
	tracer     trace.Tracer
	newID      func() string

	router chi.Router
}

// New builds a Server and its routes.
func New(options ...Option) (*Server, error) {
	s := &Server{
		logger:     zap.NewNop(),
		target:     navigation.DefaultTargetRoute,
		initial:    model.DefaultValues(),
		countries:  model.Countries(),
		tracerName: defaultTracerName,
		newID:      newSubmissionID,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(s)
	}

	if err := CheckTargetRoute(s.target); err != nil {
		return nil, err
	}

	formModel, err := model.NewBuilder(
		model.WithAction(formRoute),
		model.WithCountries(s.countries),
		model.WithDecorators(s.decorators...),
	).Build()
	if err != nil {
		return nil, fmt.Errorf("server: build form: %w", err)
	}
	s.form = formModel

	if s.page == nil {
		page, err := vanilla.New()
		if err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
		s.page = page
	}

	s.registry = render.NewRegistry()
	if err := s.registry.Register(s.page); err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	for _, renderer := range s.extra {
		if err := s.registry.Register(renderer); err != nil {
			return nil, fmt.Errorf("server: %w", err)
		}
	}

	if s.registerer != nil {
		s.metrics = newMetrics(s.metricsNamespace, s.registerer)
	}
	s.tracer = otel.Tracer(s.tracerName)
	s.router = s.routes()
	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(s.trace)
	if s.metrics != nil {
		r.Use(s.instrument)
	}

	r.Get(formRoute, s.handleForm)
	r.Post(formRoute, s.handleSubmit)
	r.Post(validateRoute, s.handleValidate)
	r.Get(s.target, s.handleSuccess)
	r.Get(healthRoute, s.handleHealth)

	if s.contract != nil {
		r.Get(contractRoute, s.handleContract)
	}
	if s.gatherer != nil {
		r.Method(http.MethodGet, metricsRoute, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	assets := http.FileServer(http.FS(vanilla.AssetsFS()))
	r.Handle(assetsPrefix+"*", http.StripPrefix(assetsPrefix, assets))
	return r
}

func (s *Server) newController(navigator navigation.Navigator, logger *zap.Logger) *form.Controller {
	return form.New(
		form.WithNavigator(navigator),
		form.WithTargetRoute(s.target),
		form.WithInitialValues(s.initial),
		form.WithLogger(logger),
	)
}

func (s *Server) renderOptions(state form.State) render.RenderOptions {
	return render.RenderOptions{State: state, Theme: s.theme}
}

// Run serves on addr until ctx is cancelled, then shuts down, waiting up to
// grace for in-flight requests.
func (s *Server) Run(ctx context.Context, addr string, grace time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server: listen: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	s.logger.Info("server shutting down", zap.Duration("grace", grace))
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	return nil
}
