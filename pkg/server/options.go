package server

import (
	theme "github.com/goliatone/go-theme"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/openapi"
	"github.com/goliatone/go-enrollform/pkg/render"
	"github.com/goliatone/go-enrollform/pkg/renderers/vanilla"
)

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and submission logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPageRenderer replaces the HTML renderer.
func WithPageRenderer(renderer *vanilla.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.page = renderer
		}
	}
}

// WithRenderer registers an extra renderer, selected when a GET / request
// accepts its content type.
func WithRenderer(renderer render.Renderer) Option {
	return func(s *Server) {
		if renderer != nil {
			s.extra = append(s.extra, renderer)
		}
	}
}

// WithTheme sets the resolved theme passed to renderers.
func WithTheme(cfg *theme.RendererConfig) Option {
	return func(s *Server) {
		s.theme = cfg
	}
}

// WithDecorators adjusts the form model before it is rendered, for example
// to relabel fields.
func WithDecorators(decorators ...model.Decorator) Option {
	return func(s *Server) {
		s.decorators = append(s.decorators, decorators...)
	}
}

// WithTargetRoute overrides the confirmation route. New rejects routes that
// collide with the built-in ones.
func WithTargetRoute(path string) Option {
	return func(s *Server) {
		if path != "" {
			s.target = path
		}
	}
}

// WithInitialValues seeds every new form, typically with a configured default
// country.
func WithInitialValues(values model.Values) Option {
	return func(s *Server) {
		s.initial = values.Clone()
	}
}

// WithCountries overrides the country options offered by the form.
func WithCountries(countries []string) Option {
	return func(s *Server) {
		if len(countries) > 0 {
			s.countries = append([]string(nil), countries...)
		}
	}
}

// WithContract checks confirmation requests against the handoff contract and
// serves it at /openapi.json.
func WithContract(contract *openapi.Contract) Option {
	return func(s *Server) {
		s.contract = contract
	}
}

// WithMetrics registers request metrics on registerer and serves gatherer at
// /metrics.
func WithMetrics(namespace string, registerer prometheus.Registerer, gatherer prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metricsNamespace = namespace
		s.registerer = registerer
		s.gatherer = gatherer
	}
}

// WithTracerName overrides the OpenTelemetry tracer name.
func WithTracerName(name string) Option {
	return func(s *Server) {
		if name != "" {
			s.tracerName = name
		}
	}
}

// WithIDGenerator replaces the submission id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Server) {
		if fn != nil {
			s.newID = fn
		}
	}
}

func newSubmissionID() string {
	return uuid.NewString()
}
