package insights

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/insights/pkg/collector"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// DefaultMaxLineLength is the line length ceiling when none is configured.
const DefaultMaxLineLength = 120

// LineLength flags lines longer than a configured maximum.
type LineLength struct {
	max int
}

// NewLineLength creates the line length insight with its default limit.
func NewLineLength() *LineLength {
	return &LineLength{max: DefaultMaxLineLength}
}

// ID returns the insight identity.
func (i *LineLength) ID() string { return registry.Identity("style", "LineLength") }

// Title returns the human-readable check name.
func (i *LineLength) Title() string { return "Line length" }

// Configure reads the max_length option.
func (i *LineLength) Configure(options map[string]any) error {
	max, err := intOption(options, "max_length", DefaultMaxLineLength)
	if err != nil {
		return err
	}

	if max <= 0 {
		return fmt.Errorf("%w: max_length must be positive, got %d", ErrInvalidOption, max)
	}

	i.max = max

	return nil
}

// Analyze reports every line exceeding the configured maximum.
func (i *LineLength) Analyze(facts *collector.Facts) []Detail {
	var details []Detail

	for _, file := range facts.Files {
		for idx, line := range file.Lines {
			if len(line) > i.max {
				details = append(details, Detail{
					Path:    file.Path,
					Line:    idx + 1,
					Message: fmt.Sprintf("line exceeds %d characters (%d)", i.max, len(line)),
				})
			}
		}
	}

	return details
}

// TrailingWhitespace flags lines ending in spaces or tabs.
type TrailingWhitespace struct{}

// NewTrailingWhitespace creates the trailing whitespace insight.
func NewTrailingWhitespace() *TrailingWhitespace {
	return &TrailingWhitespace{}
}

// ID returns the insight identity.
func (i *TrailingWhitespace) ID() string { return registry.Identity("style", "TrailingWhitespace") }

// Title returns the human-readable check name.
func (i *TrailingWhitespace) Title() string { return "Trailing whitespace" }

// Configure accepts no options.
func (i *TrailingWhitespace) Configure(_ map[string]any) error { return nil }

// Analyze reports every line with trailing spaces or tabs.
func (i *TrailingWhitespace) Analyze(facts *collector.Facts) []Detail {
	var details []Detail

	for _, file := range facts.Files {
		for idx, line := range file.Lines {
			if line != strings.TrimRight(line, " \t") {
				details = append(details, Detail{
					Path:    file.Path,
					Line:    idx + 1,
					Message: "trailing whitespace",
				})
			}
		}
	}

	return details
}
