package vanilla

import (
	"context"
	"fmt"
	"html"
	"io/fs"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/render"
	rendertemplate "github.com/goliatone/go-enrollform/pkg/render/template"
	gotemplate "github.com/goliatone/go-enrollform/pkg/render/template/gotemplate"
	"github.com/goliatone/go-enrollform/pkg/theming"
)

const (
	formTemplate    = "templates/enroll.tmpl"
	successTemplate = "templates/success.tmpl"

	// DefaultValidateURL is where the runtime script posts change/blur events.
	DefaultValidateURL = "/api/validate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateDir      string
	templateRenderer rendertemplate.TemplateRenderer
	policy           *bluemonday.Policy
	validateURL      string
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk instead of the
// embedded bundle.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		cfg.templateDir = strings.TrimSpace(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithPolicy replaces the sanitizer applied to submitted values echoed on the
// confirmation page. The default strips all markup.
func WithPolicy(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// WithValidateURL sets the endpoint the page script validates against.
func WithValidateURL(url string) Option {
	return func(cfg *config) {
		cfg.validateURL = strings.TrimSpace(url)
	}
}

// Renderer renders the enrollment page and its confirmation page as HTML.
type Renderer struct {
	templates   rendertemplate.TemplateRenderer
	policy      *bluemonday.Policy
	validateURL string
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{
		templateFS:  TemplatesFS(),
		validateURL: DefaultValidateURL,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.policy == nil {
		cfg.policy = bluemonday.StrictPolicy()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engineOptions := []gotemplate.Option{gotemplate.WithExtension(".tmpl")}
		if cfg.templateDir != "" {
			engineOptions = append(engineOptions, gotemplate.WithBaseDir(cfg.templateDir))
		} else {
			engineOptions = append(engineOptions, gotemplate.WithFS(cfg.templateFS))
		}
		engine, err := gotemplate.New(engineOptions...)
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:   renderer,
		policy:      cfg.policy,
		validateURL: cfg.validateURL,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the form page. Labels of touched invalid fields show their
// error message in place of the label text.
func (r *Renderer) Render(_ context.Context, form model.FormModel, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	result, err := r.templates.RenderTemplate(formTemplate, map[string]any{
		"form":        form,
		"fields":      render.FieldViews(form, opts.State),
		"submitting":  opts.State.Submitting,
		"theme":       themeContext(opts),
		"assets":      assetsContext(opts),
		"validateURL": r.validateURL,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	return []byte(result), nil
}

// Entry is one row of the confirmation summary.
type Entry struct {
	Name  string `json:"name"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// RenderSuccess writes the confirmation page for submitted values. Every
// value passes through the sanitizer before it reaches the template.
func (r *Renderer) RenderSuccess(_ context.Context, form model.FormModel, values model.Values, opts render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	entries := r.Entries(form, values)
	title := "Thanks for signing up!"
	if name := r.clean(values.Name); name != "" {
		title = fmt.Sprintf("Thanks for signing up, %s!", name)
	}

	result, err := r.templates.RenderTemplate(successTemplate, map[string]any{
		"title":   title,
		"email":   r.clean(values.Email),
		"entries": entries,
		"back":    form.Action,
		"theme":   themeContext(opts),
		"assets":  assetsContext(opts),
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render success template: %w", err)
	}
	return []byte(result), nil
}

// Entries lists sanitized values in form order, labelled like the form.
func (r *Renderer) Entries(form model.FormModel, values model.Values) []Entry {
	entries := make([]Entry, 0, len(form.Fields))
	for _, spec := range form.Fields {
		value := values.String(spec.Name)
		if spec.Name == model.FieldTerms {
			value = "Declined"
			if len(values.Terms) > 0 {
				value = "Accepted"
			}
		}
		entries = append(entries, Entry{
			Name:  spec.Name.String(),
			Label: spec.Label,
			Value: r.clean(value),
		})
	}
	return entries
}

// clean strips markup and undoes the sanitizer's entity encoding; the
// template escapes on output.
func (r *Renderer) clean(value string) string {
	return html.UnescapeString(r.policy.Sanitize(value))
}

func themeContext(opts render.RenderOptions) map[string]any {
	if opts.Theme == nil {
		return map[string]any{}
	}
	return map[string]any{
		"name":    opts.Theme.Theme,
		"variant": opts.Theme.Variant,
		"style":   theming.CSSVarsStyle(opts.Theme),
	}
}

func assetsContext(opts render.RenderOptions) map[string]any {
	stylesheet := opts.Assets.Stylesheet
	script := opts.Assets.Script
	if opts.Theme != nil && opts.Theme.AssetURL != nil {
		if stylesheet == "" {
			stylesheet = opts.Theme.AssetURL(theming.AssetStylesheet)
		}
		if script == "" {
			script = opts.Theme.AssetURL(theming.AssetScript)
		}
	}
	if stylesheet == "" {
		stylesheet = "/assets/" + StylesheetName
	}
	return map[string]any{
		"stylesheet": stylesheet,
		"script":     script,
	}
}
