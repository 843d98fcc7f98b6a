package render

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var blankRuns = regexp.MustCompile(`\n{3,}`)

// TextContent returns the concatenated text of an HTML fragment, the way a
// browser's textContent would.
func TextContent(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Find("body").Text()
}

// ToTerminal renders an HTML fragment as plain text laid out for a terminal:
// block elements on their own lines, list items bulleted and links followed
// by their target.
func ToTerminal(fragment string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}

	var b strings.Builder
	writeBlock(&b, doc.Find("body"))

	lines := strings.Split(blankRuns.ReplaceAllString(b.String(), "\n\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	out := blankRuns.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	// Leading spaces belong to the first bullet's indent.
	return strings.TrimRight(strings.TrimLeft(out, "\n"), " \t\n")
}

func writeBlock(b *strings.Builder, sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		switch goquery.NodeName(s) {
		case "#text":
			b.WriteString(s.Text())
		case "h1", "h2", "h3":
			b.WriteString("\n\n== ")
			b.WriteString(strings.TrimSpace(s.Text()))
			b.WriteString(" ==\n")
		case "h4", "h5", "h6":
			b.WriteString("\n\n-- ")
			b.WriteString(strings.TrimSpace(s.Text()))
			b.WriteString(" --\n")
		case "li":
			b.WriteString("\n  • ")
			writeBlock(b, s)
		case "ul", "ol":
			writeBlock(b, s)
			b.WriteString("\n")
		case "p", "div", "pre", "table":
			b.WriteString("\n\n")
			writeBlock(b, s)
			b.WriteString("\n\n")
		case "br", "tr":
			b.WriteString("\n")
			writeBlock(b, s)
		case "a":
			text := strings.TrimSpace(s.Text())
			b.WriteString(text)
			if href, ok := s.Attr("href"); ok && href != "" && href != text {
				b.WriteString(" <" + href + ">")
			}
		case "script", "style":
		default:
			writeBlock(b, s)
		}
	})
}
