// Package preset defines the builtin preset bundles that assign default
// insight sets to metrics, and the registry used to look presets up by name.
//
// Presets are compiled in: the registry is built once at process start and
// never mutated afterwards. Adding a preset is an extension-time change.
package preset

// Preset is a named, immutable bundle mapping metric identities to the
// ordered list of insights the preset assigns to each metric.
type Preset struct {
	name    string
	mapping map[string][]string
}

// New creates a preset from a metric-to-insights mapping. The mapping is
// copied; callers cannot mutate the preset afterwards.
func New(name string, mapping map[string][]string) Preset {
	copied := make(map[string][]string, len(mapping))

	for metric, insights := range mapping {
		copied[metric] = append([]string(nil), insights...)
	}

	return Preset{name: name, mapping: copied}
}

// Name returns the unique preset name.
func (p Preset) Name() string {
	return p.name
}

// MetricInsights returns the full metric-to-insights mapping.
// The returned map is a copy; presets are never mutated.
func (p Preset) MetricInsights() map[string][]string {
	mapping := make(map[string][]string, len(p.mapping))

	for metric, insights := range p.mapping {
		mapping[metric] = append([]string(nil), insights...)
	}

	return mapping
}

// InsightsFor returns the ordered insight list the preset assigns to the
// given metric, or nil when the preset has no entry for it.
func (p Preset) InsightsFor(metric string) []string {
	insights, ok := p.mapping[metric]
	if !ok {
		return nil
	}

	return append([]string(nil), insights...)
}

// Registry is the fixed, ordered list of presets known at process start.
type Registry struct {
	presets []Preset
}

// Find returns the preset with the given name.
func (r *Registry) Find(name string) (Preset, bool) {
	for _, p := range r.presets {
		if p.name == name {
			return p, true
		}
	}

	return Preset{}, false
}

// Names returns all preset names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.presets))

	for _, p := range r.presets {
		names = append(names, p.name)
	}

	return names
}

// NewRegistry builds the builtin preset registry.
func NewRegistry() *Registry {
	return &Registry{presets: []Preset{
		defaultPreset(),
		servicePreset(),
		libraryPreset(),
		cliPreset(),
	}}
}

// defaultPreset is the baseline bundle applied when no preset is configured.
func defaultPreset() Preset {
	return Preset{
		name: "default",
		mapping: map[string][]string{
			"code/lines": {
				"code/large-files",
				"code/empty-files",
			},
			"code/classes": {
				"code/todo-comments",
			},
			"code/comments": {
				"code/todo-comments",
			},
			"complexity/cyclomatic": {
				"complexity/cyclomatic-limit",
			},
			"style/format": {
				"style/line-length",
				"style/trailing-whitespace",
			},
		},
	}
}

// servicePreset targets long-running network services, where complexity and
// file growth matter more than strict style.
func servicePreset() Preset {
	return Preset{
		name: "service",
		mapping: map[string][]string{
			"code/lines": {
				"code/large-files",
			},
			"complexity/cyclomatic": {
				"complexity/cyclomatic-limit",
			},
			"style/format": {
				"style/trailing-whitespace",
			},
		},
	}
}

// libraryPreset targets reusable packages, where public surface hygiene and
// documentation-adjacent checks carry more weight.
func libraryPreset() Preset {
	return Preset{
		name: "library",
		mapping: map[string][]string{
			"code/lines": {
				"code/large-files",
				"code/empty-files",
			},
			"code/comments": {
				"code/todo-comments",
			},
			"complexity/cyclomatic": {
				"complexity/cyclomatic-limit",
			},
			"style/format": {
				"style/line-length",
				"style/trailing-whitespace",
			},
		},
	}
}

// cliPreset targets command-line tools.
func cliPreset() Preset {
	return Preset{
		name: "cli",
		mapping: map[string][]string{
			"code/lines": {
				"code/large-files",
			},
			"code/classes": {
				"code/todo-comments",
			},
			"style/format": {
				"style/line-length",
			},
		},
	}
}
