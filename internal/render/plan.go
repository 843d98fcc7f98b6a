// Package render turns plan markdown and search responses into HTML, and HTML
// back into text for terminals and the clipboard.
package render

import (
	"html"
	"regexp"
	"strings"
)

var (
	h3Pattern      = regexp.MustCompile(`(?m)^## (.*)$`)
	h4Pattern      = regexp.MustCompile(`(?m)^### (.*)$`)
	boldPattern    = regexp.MustCompile(`\*\*(.*?)\*\*`)
	itemPattern    = regexp.MustCompile(`(?m)^- (.*)$`)
	itemRunPattern = regexp.MustCompile(`(<li>.*</li>\n?)+`)
)

// FormatPlan converts the markdown subset used by generated plans into HTML.
// The substitutions run in a fixed order and do not build a parse tree, so
// anything outside headings, bold spans, flat lists and paragraph breaks is
// passed through as escaped text and nesting may come out malformed.
func FormatPlan(text string) string {
	out := html.EscapeString(strings.ReplaceAll(text, "\r\n", "\n"))

	out = h3Pattern.ReplaceAllString(out, "<h3>$1</h3>")
	out = h4Pattern.ReplaceAllString(out, "<h4>$1</h4>")
	out = boldPattern.ReplaceAllString(out, "<strong>$1</strong>")
	out = itemPattern.ReplaceAllString(out, "<li>$1</li>")

	out = itemRunPattern.ReplaceAllStringFunc(out, func(run string) string {
		return "<ul>" + strings.ReplaceAll(run, "\n", "") + "</ul>"
	})

	out = strings.ReplaceAll(out, "\n\n", "</p><p>")
	return "<p>" + out + "</p>"
}
