package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Template placeholders substituted by pattern formatters.
const (
	placeholderFile = "%f"
	placeholderLine = "%l"
)

// customTemplateMarker distinguishes a custom URI template from an
// unknown editor identifier.
const customTemplateMarker = "://"

// ideTemplates maps known editor identifiers to their URI templates.
var ideTemplates = map[string]string{
	"textmate": "txmt://open?url=file://%f&line=%l",
	"macvim":   "mvim://open/?url=file://%f&line=%l",
	"emacs":    "emacs://open?url=file://%f&line=%l",
	"sublime":  "subl://open?url=file://%f&line=%l",
	"phpstorm": "phpstorm://open?file=%f&line=%l",
	"atom":     "atom://core/open/file?filename=%f&line=%l",
	"vscode":   "vscode://file/%f:%l",
}

// FileLinkFormatter renders a clickable editor link for a file position.
type FileLinkFormatter interface {
	Format(path string, line int) string
}

// NullFileLinkFormatter is the default formatter when no IDE is
// configured. It produces no link.
type NullFileLinkFormatter struct{}

// Format returns an empty string; consumers fall back to plain
// path:line output.
func (NullFileLinkFormatter) Format(_ string, _ int) string {
	return ""
}

// PatternFileLinkFormatter substitutes %f and %l in a URI template.
type PatternFileLinkFormatter struct {
	pattern string
}

// Format substitutes the file path and line number into the template.
func (f PatternFileLinkFormatter) Format(path string, line int) string {
	return strings.NewReplacer(
		placeholderFile, path,
		placeholderLine, strconv.Itoa(line),
	).Replace(f.pattern)
}

// ResolveIDE resolves an editor identifier into a link formatter.
// Unknown identifiers are accepted only when they look like a custom URI
// template (contain "://"); anything else is a configuration error that
// lists the known identifiers.
func ResolveIDE(ide string) (FileLinkFormatter, error) {
	if template, ok := ideTemplates[ide]; ok {
		return PatternFileLinkFormatter{pattern: template}, nil
	}

	if strings.Contains(ide, customTemplateMarker) {
		return PatternFileLinkFormatter{pattern: ide}, nil
	}

	return nil, fmt.Errorf("%w: unknown ide %q (known: %s)",
		ErrInvalidConfiguration, ide, strings.Join(knownIDEs(), ", "))
}

func knownIDEs() []string {
	names := make([]string, 0, len(ideTemplates))

	for name := range ideTemplates {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
