// Package html implements the tiny token templating used for gallery
// output: {{token}} substitution plus {{#section}}...{{/section}} blocks
// that render only when the section's value is non-empty.
package html

import (
	"regexp"
	"strings"
)

var (
	sectionPattern = regexp.MustCompile(`(?s){{#(\w+)}}(.*?){{/(\w+)}}`)
	tokenPattern   = regexp.MustCompile(`{{(\w+)}}`)
)

// Render expands template against data. Sections whose key is missing or
// empty collapse to nothing; unknown tokens expand to the empty string.
// Values are inserted verbatim, so callers escape them first.
func Render(template string, data map[string]string) string {
	out := sectionPattern.ReplaceAllStringFunc(template, func(match string) string {
		sub := sectionPattern.FindStringSubmatch(match)
		if len(sub) != 4 || sub[1] != sub[3] {
			return ""
		}
		if data[sub[1]] != "" {
			return sub[2]
		}
		return ""
	})

	return tokenPattern.ReplaceAllStringFunc(out, func(match string) string {
		key := strings.Trim(match, "{}")
		return data[key]
	})
}
