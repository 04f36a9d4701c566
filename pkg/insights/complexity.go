package insights

import (
	"fmt"

	"github.com/Sumatoshi-tech/insights/pkg/collector"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// DefaultMaxComplexity is the cyclomatic ceiling when none is configured.
const DefaultMaxComplexity = 10

// CyclomaticLimit flags functions whose cyclomatic complexity exceeds a
// configured maximum.
type CyclomaticLimit struct {
	max int
}

// NewCyclomaticLimit creates the cyclomatic limit insight with its
// default threshold.
func NewCyclomaticLimit() *CyclomaticLimit {
	return &CyclomaticLimit{max: DefaultMaxComplexity}
}

// ID returns the insight identity.
func (i *CyclomaticLimit) ID() string { return registry.Identity("complexity", "CyclomaticLimit") }

// Title returns the human-readable check name.
func (i *CyclomaticLimit) Title() string { return "Cyclomatic complexity limit" }

// Configure reads the max_complexity option.
func (i *CyclomaticLimit) Configure(options map[string]any) error {
	max, err := intOption(options, "max_complexity", DefaultMaxComplexity)
	if err != nil {
		return err
	}

	if max <= 0 {
		return fmt.Errorf("%w: max_complexity must be positive, got %d", ErrInvalidOption, max)
	}

	i.max = max

	return nil
}

// Analyze reports every function above the configured complexity.
func (i *CyclomaticLimit) Analyze(facts *collector.Facts) []Detail {
	var details []Detail

	for _, file := range facts.Files {
		for _, fn := range file.Functions {
			if fn.Complexity > i.max {
				details = append(details, Detail{
					Path:    file.Path,
					Line:    fn.Line,
					Message: fmt.Sprintf("%s has cyclomatic complexity %d, limit is %d", fn.Name, fn.Complexity, i.max),
				})
			}
		}
	}

	return details
}
