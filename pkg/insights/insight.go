// Package insights defines the pluggable check contract and the builtin
// checks shipped with the tool.
//
// An insight is identified by a stable "category/name" identity, accepts
// per-insight options from the resolved configuration, and reports details
// against collected facts.
package insights

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/insights/pkg/collector"
)

// ErrInvalidOption indicates a per-insight option value is unusable.
var ErrInvalidOption = errors.New("invalid insight option")

// Detail is a single finding an insight reports.
type Detail struct {
	Path    string `json:"path"`
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Insight is the contract every pluggable check implements.
type Insight interface {
	// ID returns the unique identity used in presets and configuration.
	ID() string

	// Title returns the human-readable check name.
	Title() string

	// Configure applies per-insight options. Each insight interprets its
	// own option bag; unknown keys are ignored.
	Configure(options map[string]any) error

	// Analyze inspects collected facts and returns findings.
	// It must not mutate the facts.
	Analyze(facts *collector.Facts) []Detail
}

// intOption reads an integer option, tolerating the numeric types YAML and
// JSON decoding produce. An absent key yields the fallback; a present
// non-numeric value is an error, so typos never silently revert a limit.
func intOption(options map[string]any, key string, fallback int) (int, error) {
	raw, ok := options[key]
	if !ok {
		return fallback, nil
	}

	switch value := raw.(type) {
	case int:
		return value, nil
	case int64:
		return int(value), nil
	case float64:
		return int(value), nil
	default:
		return 0, fmt.Errorf("%w: %s must be an integer, got %T", ErrInvalidOption, key, raw)
	}
}

// stringsOption reads a string-sequence option. An absent key yields the
// fallback; a present value of any other shape is an error.
func stringsOption(options map[string]any, key string, fallback []string) ([]string, error) {
	raw, ok := options[key]
	if !ok {
		return fallback, nil
	}

	switch value := raw.(type) {
	case []string:
		return value, nil
	case []any:
		out := make([]string, 0, len(value))

		for _, item := range value {
			str, isString := item.(string)
			if !isString {
				return nil, fmt.Errorf("%w: %s must be a sequence of strings, got %T element",
					ErrInvalidOption, key, item)
			}

			out = append(out, str)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s must be a sequence of strings, got %T", ErrInvalidOption, key, raw)
	}
}
