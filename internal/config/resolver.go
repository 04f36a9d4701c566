package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/Sumatoshi-tech/insights/pkg/preset"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// ErrInvalidConfiguration is the single error kind this package produces.
// Every validation failure wraps it with the offending detail.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// DefaultPreset is applied when the raw configuration names none.
const DefaultPreset = "default"

// Raw configuration keys.
const (
	keyPreset    = "preset"
	keyDirectory = "directory"
	keyExclude   = "exclude"
	keyAdd       = "add"
	keyRemove    = "remove"
	keyConfig    = "config"
	keyIDE       = "ide"
)

// recognizedKeys is the closed set of raw configuration keys.
var recognizedKeys = []string{
	keyPreset,
	keyDirectory,
	keyExclude,
	keyAdd,
	keyRemove,
	keyConfig,
	keyIDE,
}

// Resolver validates and merges raw configuration against the type and
// preset registries. A Resolver is stateless; Resolve calls are
// independent and may run concurrently.
type Resolver struct {
	registry *registry.Registry
	presets  *preset.Registry
}

// NewResolver creates a resolver over the given registries.
func NewResolver(reg *registry.Registry, presets *preset.Registry) *Resolver {
	return &Resolver{registry: reg, presets: presets}
}

// Resolve validates the raw mapping and constructs a Config. The first
// validation failure aborts resolution; no partial Config is ever
// returned.
func (r *Resolver) Resolve(raw map[string]any) (*Config, error) {
	if err := validateSchema(raw); err != nil {
		return nil, err
	}

	cfg := &Config{
		preset:    DefaultPreset,
		excludes:  []string{},
		add:       map[string][]string{},
		removes:   []string{},
		options:   map[string]map[string]any{},
		formatter: NullFileLinkFormatter{},
	}

	if err := r.resolvePreset(cfg, raw); err != nil {
		return nil, err
	}

	if err := resolveDirectory(cfg, raw); err != nil {
		return nil, err
	}

	if value, ok := raw[keyExclude]; ok {
		excludes, seqOK := toStringSlice(value)
		if !seqOK {
			return nil, fmt.Errorf("%w: exclude must be a sequence of strings", ErrInvalidConfiguration)
		}

		cfg.excludes = excludes
	}

	if err := r.resolveAdd(cfg, raw); err != nil {
		return nil, err
	}

	if value, ok := raw[keyRemove]; ok {
		removes, seqOK := toStringSlice(value)
		if !seqOK {
			return nil, fmt.Errorf("%w: remove must be a sequence of strings", ErrInvalidConfiguration)
		}

		cfg.removes = removes
	}

	if err := r.resolveOptions(cfg, raw); err != nil {
		return nil, err
	}

	if err := resolveIDE(cfg, raw); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (r *Resolver) resolvePreset(cfg *Config, raw map[string]any) error {
	value, ok := raw[keyPreset]
	if !ok {
		return nil
	}

	name, isString := value.(string)
	if !isString {
		return fmt.Errorf("%w: preset must be a string", ErrInvalidConfiguration)
	}

	if _, found := r.presets.Find(name); !found {
		return fmt.Errorf("%w: unknown preset %q (known presets: %s)",
			ErrInvalidConfiguration, name, strings.Join(r.presets.Names(), ", "))
	}

	cfg.preset = name

	return nil
}

func resolveDirectory(cfg *Config, raw map[string]any) error {
	if value, ok := raw[keyDirectory]; ok {
		directory, isString := value.(string)
		if !isString {
			return fmt.Errorf("%w: directory must be a string", ErrInvalidConfiguration)
		}

		cfg.directory = directory

		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	cfg.directory = cwd

	return nil
}

// resolveAdd validates the metric-to-insights additions. Raw maps carry
// no input order, so metrics and their insights are checked in lexical
// key order to keep error messages reproducible.
func (r *Resolver) resolveAdd(cfg *Config, raw map[string]any) error {
	value, ok := raw[keyAdd]
	if !ok {
		return nil
	}

	mapping, isMap := value.(map[string]any)
	if !isMap {
		return fmt.Errorf("%w: add must be a mapping of metric to insights", ErrInvalidConfiguration)
	}

	for _, metric := range sortedKeys(mapping) {
		desc, found := r.registry.Resolve(metric)
		if !found {
			return fmt.Errorf("%w: unknown metric %q in add", ErrInvalidConfiguration, metric)
		}

		if !desc.Has(registry.CapMetric) {
			return fmt.Errorf("%w: %q in add does not implement the metric contract",
				ErrInvalidConfiguration, metric)
		}

		insights, seqOK := toStringSlice(mapping[metric])
		if !seqOK {
			return fmt.Errorf("%w: insights for metric %q must be a sequence",
				ErrInvalidConfiguration, metric)
		}

		for _, insight := range insights {
			if _, found := r.registry.Resolve(insight); !found {
				return fmt.Errorf("%w: unknown insight %q in add", ErrInvalidConfiguration, insight)
			}
		}

		cfg.add[metric] = insights
	}

	return nil
}

func (r *Resolver) resolveOptions(cfg *Config, raw map[string]any) error {
	value, ok := raw[keyConfig]
	if !ok {
		return nil
	}

	mapping, isMap := value.(map[string]any)
	if !isMap {
		return fmt.Errorf("%w: config must be a mapping of insight to options", ErrInvalidConfiguration)
	}

	for _, insight := range sortedKeys(mapping) {
		if _, found := r.registry.Resolve(insight); !found {
			return fmt.Errorf("%w: unknown insight %q in config", ErrInvalidConfiguration, insight)
		}

		options, isOptionMap := mapping[insight].(map[string]any)
		if !isOptionMap {
			return fmt.Errorf("%w: options for insight %q must be a mapping",
				ErrInvalidConfiguration, insight)
		}

		cfg.options[insight] = options
	}

	return nil
}

func resolveIDE(cfg *Config, raw map[string]any) error {
	value, ok := raw[keyIDE]
	if !ok {
		return nil
	}

	ide, isString := value.(string)
	if !isString {
		return fmt.Errorf("%w: ide must be a string", ErrInvalidConfiguration)
	}

	if ide == "" {
		return nil
	}

	formatter, err := ResolveIDE(ide)
	if err != nil {
		return err
	}

	cfg.formatter = formatter

	return nil
}

func sortedKeys(mapping map[string]any) []string {
	keys := make([]string, 0, len(mapping))

	for key := range mapping {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// toStringSlice coerces the sequence shapes YAML and JSON decoding
// produce into a string slice.
func toStringSlice(value any) ([]string, bool) {
	switch seq := value.(type) {
	case []string:
		return append([]string(nil), seq...), true
	case []any:
		out := make([]string, 0, len(seq))

		for _, item := range seq {
			str, ok := item.(string)
			if !ok {
				return nil, false
			}

			out = append(out, str)
		}

		return out, true
	default:
		return nil, false
	}
}
