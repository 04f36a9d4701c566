// Package report renders per-metric results and insight findings to a
// terminal or as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/insights/internal/config"
	"github.com/Sumatoshi-tech/insights/pkg/insights"
	"github.com/Sumatoshi-tech/insights/pkg/metrics"
)

// valueDecimals controls scalar formatting in the metrics table.
const valueDecimals = 1

// InsightFindings pairs an insight with the details it reported.
type InsightFindings struct {
	ID      string
	Title   string
	Details []insights.Detail
}

// Renderer writes analysis reports.
type Renderer struct {
	out       io.Writer
	formatter config.FileLinkFormatter
	noColor   bool
}

// New creates a renderer writing to out. Links are rendered through the
// resolved file-link formatter.
func New(out io.Writer, formatter config.FileLinkFormatter, noColor bool) *Renderer {
	return &Renderer{out: out, formatter: formatter, noColor: noColor}
}

// Render writes the metrics table followed by insight findings.
func (r *Renderer) Render(results []metrics.Result, findings []InsightFindings) error {
	r.renderMetrics(results)
	r.renderFindings(findings)

	return nil
}

func (r *Renderer) renderMetrics(results []metrics.Result) {
	writer := table.NewWriter()
	writer.SetOutputMirror(r.out)
	writer.AppendHeader(table.Row{"Metric", "Value", "Percentage"})

	for _, result := range results {
		value := "-"
		if result.HasValue {
			value = humanize.CommafWithDigits(result.Value, valueDecimals)
		}

		percentage := "-"
		if result.HasPercentage {
			percentage = fmt.Sprintf("%.1f %%", result.Percentage)
		}

		writer.AppendRow(table.Row{result.Title, value, percentage})
	}

	writer.Render()
}

func (r *Renderer) renderFindings(findings []InsightFindings) {
	titleColor := color.New(color.FgYellow)
	countColor := color.New(color.FgRed)

	if r.noColor {
		titleColor.DisableColor()
		countColor.DisableColor()
	}

	for _, finding := range findings {
		if len(finding.Details) == 0 {
			continue
		}

		fmt.Fprintf(r.out, "\n%s %s\n",
			titleColor.Sprintf("[%s]", finding.ID),
			countColor.Sprintf("%s: %d issues", finding.Title, len(finding.Details)))

		for _, detail := range finding.Details {
			fmt.Fprintf(r.out, "  %s: %s\n", r.location(detail), detail.Message)
		}
	}
}

// location renders an IDE link when a formatter is configured, falling
// back to plain path:line output.
func (r *Renderer) location(detail insights.Detail) string {
	link := r.formatter.Format(detail.Path, detail.Line)
	if link != "" {
		return link
	}

	return fmt.Sprintf("%s:%d", detail.Path, detail.Line)
}

// jsonReport is the top-level structured JSON output.
type jsonReport struct {
	Metrics  []jsonMetric  `json:"metrics"`
	Findings []jsonFinding `json:"findings"`
}

type jsonMetric struct {
	Metric     string   `json:"metric"`
	Title      string   `json:"title"`
	Value      *float64 `json:"value,omitempty"`
	Percentage *float64 `json:"percentage,omitempty"`
	Insights   []string `json:"insights"`
}

type jsonFinding struct {
	Insight string            `json:"insight"`
	Title   string            `json:"title"`
	Details []insights.Detail `json:"details"`
}

// RenderJSON writes the full report as indented JSON.
func (r *Renderer) RenderJSON(results []metrics.Result, findings []InsightFindings) error {
	out := jsonReport{
		Metrics:  make([]jsonMetric, 0, len(results)),
		Findings: make([]jsonFinding, 0, len(findings)),
	}

	for _, result := range results {
		metric := jsonMetric{
			Metric:   result.Metric,
			Title:    result.Title,
			Insights: result.Insights,
		}

		if result.HasValue {
			value := result.Value
			metric.Value = &value
		}

		if result.HasPercentage {
			percentage := result.Percentage
			metric.Percentage = &percentage
		}

		out.Metrics = append(out.Metrics, metric)
	}

	for _, finding := range findings {
		if len(finding.Details) == 0 {
			continue
		}

		out.Findings = append(out.Findings, jsonFinding{
			Insight: finding.ID,
			Title:   finding.Title,
			Details: finding.Details,
		})
	}

	encoder := json.NewEncoder(r.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(out); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	return nil
}
