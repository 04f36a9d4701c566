package metrics

import (
	"github.com/Sumatoshi-tech/insights/pkg/collector"
	"github.com/Sumatoshi-tech/insights/pkg/registry"
)

// Lines measures the total line count of the analyzed tree.
type Lines struct{}

// ID returns the metric identity.
func (Lines) ID() string { return registry.Identity("code", "Lines") }

// Title returns the human-readable category name.
func (Lines) Title() string { return "Lines" }

// Insights returns the metric-defined insight identities.
func (Lines) Insights() []string {
	return []string{"code/large-files", "code/empty-files"}
}

// Value returns the total number of lines.
func (Lines) Value(facts *collector.Facts) float64 {
	return float64(facts.TotalLines)
}

// Classes measures struct type declarations.
type Classes struct{}

// ID returns the metric identity.
func (Classes) ID() string { return registry.Identity("code", "Classes") }

// Title returns the human-readable category name.
func (Classes) Title() string { return "Classes" }

// Insights returns the metric-defined insight identities.
func (Classes) Insights() []string {
	return []string{"code/todo-comments"}
}

// Value returns the number of struct declarations.
func (Classes) Value(facts *collector.Facts) float64 {
	return float64(facts.TotalClasses)
}

// Percentage returns struct declarations per file.
func (Classes) Percentage(facts *collector.Facts) float64 {
	return SafePercentage(float64(facts.TotalClasses), float64(facts.TotalFiles))
}

// Functions measures function and method declarations.
type Functions struct{}

// ID returns the metric identity.
func (Functions) ID() string { return registry.Identity("code", "Functions") }

// Title returns the human-readable category name.
func (Functions) Title() string { return "Functions" }

// Value returns the number of function declarations.
func (Functions) Value(facts *collector.Facts) float64 {
	return float64(facts.TotalFunctions)
}

// Percentage returns function declarations per file.
func (Functions) Percentage(facts *collector.Facts) float64 {
	return SafePercentage(float64(facts.TotalFunctions), float64(facts.TotalFiles))
}

// Comments measures comment density.
type Comments struct{}

// ID returns the metric identity.
func (Comments) ID() string { return registry.Identity("code", "Comments") }

// Title returns the human-readable category name.
func (Comments) Title() string { return "Comments" }

// Insights returns the metric-defined insight identities.
func (Comments) Insights() []string {
	return []string{"code/todo-comments"}
}

// Value returns the number of comment lines.
func (Comments) Value(facts *collector.Facts) float64 {
	return float64(facts.CommentLines)
}

// Percentage returns comment lines relative to total lines.
func (Comments) Percentage(facts *collector.Facts) float64 {
	return SafePercentage(float64(facts.CommentLines), float64(facts.TotalLines))
}
