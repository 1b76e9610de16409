package theming

import (
	"errors"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
)

var (
	// ErrThemeNotFound is returned when a selection names an unregistered theme.
	ErrThemeNotFound = errors.New("theming: theme not found")
	// ErrVariantNotFound is returned when the theme has no such variant.
	ErrVariantNotFound = errors.New("theming: variant not found")
)

// Selector picks manifests by name and variant. It satisfies
// theme.ThemeSelector so it can stand in for any go-theme selector.
type Selector struct {
	mu             sync.RWMutex
	manifests      map[string]*theme.Manifest
	defaultTheme   string
	defaultVariant string
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector registers the given manifests. With none, DefaultManifest is
// used. The first manifest becomes the default theme.
func NewSelector(manifests ...*theme.Manifest) (*Selector, error) {
	if len(manifests) == 0 {
		manifests = []*theme.Manifest{DefaultManifest()}
	}
	s := &Selector{
		manifests:      make(map[string]*theme.Manifest, len(manifests)),
		defaultVariant: DefaultVariant,
	}
	for _, manifest := range manifests {
		if err := s.Register(manifest); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Register adds a manifest.
func (s *Selector) Register(manifest *theme.Manifest) error {
	if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
		return fmt.Errorf("theming: manifest name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.manifests[manifest.Name]; exists {
		return fmt.Errorf("theming: theme %q already registered", manifest.Name)
	}
	s.manifests[manifest.Name] = manifest
	if s.defaultTheme == "" {
		s.defaultTheme = manifest.Name
	}
	return nil
}

// Themes lists registered theme names.
func (s *Selector) Themes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select resolves name and variant, falling back to the defaults when blank.
// A variant the manifest does not declare is an error, except the default
// variant, which always maps to the base tokens.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	name = strings.TrimSpace(name)
	if name == "" {
		name = s.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = s.defaultVariant
	}

	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrThemeNotFound, name)
	}
	if _, ok := manifest.Variants[variant]; !ok && variant != s.defaultVariant {
		return nil, fmt.Errorf("%w: %q in theme %q", ErrVariantNotFound, variant, name)
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Config flattens a selection into a renderer configuration. Variant tokens
// and asset files override the base ones; every token is also exposed as a
// CSS custom property named --<token>.
func Config(selection *theme.Selection) *theme.RendererConfig {
	if selection == nil || selection.Manifest == nil {
		return nil
	}
	manifest := selection.Manifest
	variant := manifest.Variants[selection.Variant]

	tokens := mergeStrings(manifest.Tokens, variant.Tokens)
	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	prefix := manifest.Assets.Prefix
	if variant.Assets.Prefix != "" {
		prefix = variant.Assets.Prefix
	}
	files := mergeStrings(manifest.Assets.Files, variant.Assets.Files)

	return &theme.RendererConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Partials: mergeStrings(manifest.Templates, variant.Templates),
		Tokens:   tokens,
		CSSVars:  cssVars,
		AssetURL: func(key string) string {
			file, ok := files[key]
			if !ok || file == "" {
				return ""
			}
			if prefix == "" || strings.HasPrefix(file, "/") {
				return file
			}
			return path.Join(prefix, file)
		},
	}
}

// CSSVarsStyle renders the config's custom properties as a :root rule with
// the properties in name order. It returns an empty string for nil configs.
func CSSVarsStyle(cfg *theme.RendererConfig) string {
	if cfg == nil || len(cfg.CSSVars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(cfg.CSSVars))
	for key := range cfg.CSSVars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root{")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(cfg.CSSVars[key])
		b.WriteByte(';')
	}
	b.WriteString("}")
	return b.String()
}

func mergeStrings(base, override map[string]string) map[string]string {
	if len(base) == 0 && len(override) == 0 {
		return nil
	}
	out := make(map[string]string, len(base)+len(override))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range override {
		out[key] = value
	}
	return out
}
