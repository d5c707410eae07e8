package parser

import (
	"strings"
	"unicode"
)

// SanitizeOptions controls export-specific text cleanup.
// StripQuotes removes every double quote; CSV output enables it, XLSX does not.
type SanitizeOptions struct {
	StripQuotes bool
}

// Sanitize makes a free-text value safe for a single tabular cell:
// line breaks become spaces, whitespace runs collapse to one space and the
// result is trimmed. Applying it twice yields the same value.
func Sanitize(value string, opts SanitizeOptions) string {
	if value == "" {
		return ""
	}

	if opts.StripQuotes {
		value = strings.ReplaceAll(value, `"`, "")
	}

	value = strings.NewReplacer("\n", " ", "\r", " ").Replace(value)

	return strings.TrimSpace(collapseSpaces(value))
}

func collapseSpaces(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))

	previousSpace := false
	for _, r := range value {
		if unicode.IsSpace(r) {
			if previousSpace {
				continue
			}

			builder.WriteRune(' ')
			previousSpace = true

			continue
		}

		builder.WriteRune(r)
		previousSpace = false
	}

	return builder.String()
}
