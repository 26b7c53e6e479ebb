package util

import "strings"

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&#39;",
)

func EscapeHTML(value string) string {
	return htmlEscaper.Replace(value)
}

// NormalizeWhitespace collapses runs of whitespace to single spaces and
// trims the ends. Returns "" for whitespace-only input.
func NormalizeWhitespace(value string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(value), " "))
}

// Truncate shortens value to at most n runes, appending an ellipsis when
// anything was cut. Used for log previews of clipboard text.
func Truncate(value string, n int) string {
	runes := []rune(value)
	if len(runes) <= n {
		return value
	}
	return string(runes[:n]) + "…"
}
