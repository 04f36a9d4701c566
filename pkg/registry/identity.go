package registry

import (
	"fmt"
	"strings"
	"unicode"
)

const normalizeExtraCapacity = 4

// Identity builds a stable "category/name" identity from a category and a
// free-form name. Names are normalized to kebab-case so CamelCase Go type
// names and human-entered config values resolve to the same identity.
func Identity(category, name string) string {
	return fmt.Sprintf("%s/%s", category, normalizeName(name))
}

func normalizeName(name string) string {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return ""
	}

	builder := strings.Builder{}
	builder.Grow(len(normalized) + normalizeExtraCapacity)

	previousLower := false

	for _, current := range normalized {
		if current == '_' || current == ' ' {
			builder.WriteRune('-')

			previousLower = false

			continue
		}

		if unicode.IsUpper(current) {
			if previousLower {
				builder.WriteRune('-')
			}

			builder.WriteRune(unicode.ToLower(current))

			previousLower = false

			continue
		}

		builder.WriteRune(unicode.ToLower(current))
		previousLower = unicode.IsLetter(current) && unicode.IsLower(current)
	}

	return strings.Trim(builder.String(), "-")
}
