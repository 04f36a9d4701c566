package insights

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/insights/pkg/collector"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// DefaultMaxFileLines is the file size ceiling when none is configured.
const DefaultMaxFileLines = 500

// defaultTodoMarkers are the comment markers flagged by default.
var defaultTodoMarkers = []string{"TODO", "FIXME"}

// TodoComments flags leftover work markers in source lines.
type TodoComments struct {
	markers []string
}

// NewTodoComments creates the todo comments insight with default markers.
func NewTodoComments() *TodoComments {
	return &TodoComments{markers: defaultTodoMarkers}
}

// ID returns the insight identity.
func (i *TodoComments) ID() string { return registry.Identity("code", "TodoComments") }

// Title returns the human-readable check name.
func (i *TodoComments) Title() string { return "Todo comments" }

// Configure reads the markers option.
func (i *TodoComments) Configure(options map[string]any) error {
	markers, err := stringsOption(options, "markers", defaultTodoMarkers)
	if err != nil {
		return err
	}

	if len(markers) == 0 {
		return fmt.Errorf("%w: markers must not be empty", ErrInvalidOption)
	}

	i.markers = markers

	return nil
}

// Analyze reports every line containing a configured marker.
func (i *TodoComments) Analyze(facts *collector.Facts) []Detail {
	var details []Detail

	for _, file := range facts.Files {
		for idx, line := range file.Lines {
			marker := i.matchMarker(line)
			if marker == "" {
				continue
			}

			details = append(details, Detail{
				Path:    file.Path,
				Line:    idx + 1,
				Message: fmt.Sprintf("%s marker found", marker),
			})
		}
	}

	return details
}

func (i *TodoComments) matchMarker(line string) string {
	for _, marker := range i.markers {
		if strings.Contains(line, marker) {
			return marker
		}
	}

	return ""
}

// LargeFiles flags files longer than a configured maximum.
type LargeFiles struct {
	max int
}

// NewLargeFiles creates the large files insight with its default limit.
func NewLargeFiles() *LargeFiles {
	return &LargeFiles{max: DefaultMaxFileLines}
}

// ID returns the insight identity.
func (i *LargeFiles) ID() string { return registry.Identity("code", "LargeFiles") }

// Title returns the human-readable check name.
func (i *LargeFiles) Title() string { return "Large files" }

// Configure reads the max_lines option.
func (i *LargeFiles) Configure(options map[string]any) error {
	max, err := intOption(options, "max_lines", DefaultMaxFileLines)
	if err != nil {
		return err
	}

	if max <= 0 {
		return fmt.Errorf("%w: max_lines must be positive, got %d", ErrInvalidOption, max)
	}

	i.max = max

	return nil
}

// Analyze reports every file exceeding the configured line count.
func (i *LargeFiles) Analyze(facts *collector.Facts) []Detail {
	var details []Detail

	for _, file := range facts.Files {
		if len(file.Lines) > i.max {
			details = append(details, Detail{
				Path:    file.Path,
				Line:    1,
				Message: fmt.Sprintf("file has %d lines, limit is %d", len(file.Lines), i.max),
			})
		}
	}

	return details
}

// EmptyFiles flags files with no content.
type EmptyFiles struct{}

// NewEmptyFiles creates the empty files insight.
func NewEmptyFiles() *EmptyFiles {
	return &EmptyFiles{}
}

// ID returns the insight identity.
func (i *EmptyFiles) ID() string { return registry.Identity("code", "EmptyFiles") }

// Title returns the human-readable check name.
func (i *EmptyFiles) Title() string { return "Empty files" }

// Configure accepts no options.
func (i *EmptyFiles) Configure(_ map[string]any) error { return nil }

// Analyze reports every file without a single non-blank line.
func (i *EmptyFiles) Analyze(facts *collector.Facts) []Detail {
	var details []Detail

	for _, file := range facts.Files {
		if i.isEmpty(file) {
			details = append(details, Detail{
				Path:    file.Path,
				Line:    1,
				Message: "file is empty",
			})
		}
	}

	return details
}

func (i *EmptyFiles) isEmpty(file collector.FileFacts) bool {
	for _, line := range file.Lines {
		if strings.TrimSpace(line) != "" {
			return false
		}
	}

	return true
}
