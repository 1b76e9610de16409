// Package config loads the service configuration from JSON or YAML files and
// applies defaults and validation.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-enrollform/pkg/model"
	"github.com/goliatone/go-enrollform/pkg/navigation"
	"github.com/goliatone/go-enrollform/pkg/theming"
)

// Config is the root configuration document.
type Config struct {
	Server  Server  `json:"server" yaml:"server"`
	Form    Form    `json:"form" yaml:"form"`
	Theme   Theme   `json:"theme" yaml:"theme"`
	Metrics Metrics `json:"metrics" yaml:"metrics"`
}

// Server configures the HTTP listener.
type Server struct {
	Addr          string   `json:"addr" yaml:"addr"`
	ShutdownGrace Duration `json:"shutdownGrace" yaml:"shutdownGrace"`
	// BaseURL prefixes the confirmation URL the terminal session prints.
	BaseURL string `json:"baseURL" yaml:"baseURL"`
}

// Form configures the enrollment form.
type Form struct {
	TargetRoute    string   `json:"targetRoute" yaml:"targetRoute"`
	DefaultCountry string   `json:"defaultCountry" yaml:"defaultCountry"`
	Countries      []string `json:"countries" yaml:"countries"`
	// Labels overrides the resting label of fields, keyed by input name.
	Labels map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// FieldLabels resolves Labels into form fields.
func (f Form) FieldLabels() (map[model.Field]string, error) {
	if len(f.Labels) == 0 {
		return nil, nil
	}
	out := make(map[model.Field]string, len(f.Labels))
	for name, label := range f.Labels {
		field, err := model.ParseField(name)
		if err != nil {
			return nil, fmt.Errorf("form.labels: %w", err)
		}
		out[field] = label
	}
	return out, nil
}

// Theme selects the go-theme manifest and variant.
type Theme struct {
	Name    string `json:"name" yaml:"name"`
	Variant string `json:"variant" yaml:"variant"`
}

// Metrics configures the Prometheus endpoint.
type Metrics struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: Server{
			Addr:          ":8080",
			ShutdownGrace: Duration(5 * time.Second),
			BaseURL:       "http://localhost:8080",
		},
		Form: Form{
			TargetRoute:    navigation.DefaultTargetRoute,
			DefaultCountry: model.DefaultCountry,
			Countries:      model.Countries(),
		},
		Theme: Theme{
			Name:    theming.DefaultTheme,
			Variant: theming.DefaultVariant,
		},
		Metrics: Metrics{
			Enabled:   true,
			Namespace: "enrollform",
		},
	}
}

// Load reads path and returns the merged configuration. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes JSON, falling back to YAML, over the defaults, then
// validates the result. source names the input in error messages.
func Parse(data []byte, source string) (Config, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return Config{}, fmt.Errorf("config: file %s is empty", source)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg = Default()
		if yerr := yaml.Unmarshal(data, &cfg); yerr != nil {
			return Config{}, fmt.Errorf("config: parse %s: invalid JSON or YAML", source)
		}
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", source, err)
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Server.Addr) == "" {
		errs = append(errs, errors.New("server.addr is required"))
	}
	if c.Server.ShutdownGrace < 0 {
		errs = append(errs, errors.New("server.shutdownGrace must not be negative"))
	}
	if !strings.HasPrefix(c.Form.TargetRoute, "/") {
		errs = append(errs, fmt.Errorf("form.targetRoute %q must start with /", c.Form.TargetRoute))
	}
	if len(c.Form.Countries) == 0 {
		errs = append(errs, errors.New("form.countries must not be empty"))
	} else if !contains(c.Form.Countries, c.Form.DefaultCountry) {
		errs = append(errs, fmt.Errorf("form.defaultCountry %q is not one of form.countries", c.Form.DefaultCountry))
	}
	if _, err := c.Form.FieldLabels(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
