// Package config resolves raw user configuration into an immutable,
// fully-validated Config. Every identity reference is checked against the
// type and preset registries at resolution time, so lookups on a resolved
// Config never fail.
package config

// Config is the resolved, immutable configuration for one analysis run.
// Construct it with Resolver.Resolve; zero-value Configs are not valid.
type Config struct {
	preset    string
	directory string
	excludes  []string
	add       map[string][]string
	removes   []string
	options   map[string]map[string]any
	formatter FileLinkFormatter
}

// Preset returns the resolved preset name.
func (c *Config) Preset() string {
	return c.preset
}

// Directory returns the analysis root.
func (c *Config) Directory() string {
	return c.directory
}

// Excludes returns the path fragments to skip, in input order.
func (c *Config) Excludes() []string {
	return append([]string(nil), c.excludes...)
}

// Add returns the full metric-to-added-insights mapping.
func (c *Config) Add() map[string][]string {
	add := make(map[string][]string, len(c.add))

	for metric, insights := range c.add {
		add[metric] = append([]string(nil), insights...)
	}

	return add
}

// AddedInsights returns the insights added to a metric beyond its preset.
// Unknown metrics yield an empty slice, never an error.
func (c *Config) AddedInsights(metric string) []string {
	return append([]string(nil), c.add[metric]...)
}

// Removes returns the globally suppressed insight identities.
func (c *Config) Removes() []string {
	return append([]string(nil), c.removes...)
}

// Options returns the full per-insight option mapping.
func (c *Config) Options() map[string]map[string]any {
	options := make(map[string]map[string]any, len(c.options))

	for insight, values := range c.options {
		options[insight] = copyOptions(values)
	}

	return options
}

// OptionsFor returns the option overrides for one insight.
// Unknown insights yield an empty map, never an error.
func (c *Config) OptionsFor(insight string) map[string]any {
	return copyOptions(c.options[insight])
}

// FileLinkFormatter returns the resolved IDE link formatter.
func (c *Config) FileLinkFormatter() FileLinkFormatter {
	return c.formatter
}

func copyOptions(values map[string]any) map[string]any {
	copied := make(map[string]any, len(values))

	for key, value := range values {
		copied[key] = value
	}

	return copied
}
