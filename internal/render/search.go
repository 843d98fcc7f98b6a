package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/ziadkadry99/tripplan/internal/api"
)

// Fallback labels used when the search response leaves a field empty.
const (
	SearchFailedLabel = "Search failed"
	NoSummaryLabel    = "No summary available"
	UntitledLabel     = "Untitled"
)

const searchResultsTemplate = `
{{- if not .Success -}}
<div class="error-container"><div class="error-message">{{or .Error "Search failed"}}</div></div>
{{- else -}}
<div class="search-summary">
<h3>📋 Search Results Summary</h3>
{{- if .SummaryError}}
<div class="search-warning"><strong>⚠️ Warning:</strong> AI summary failed. Showing search results instead.</div>
{{- end}}
<div class="search-summary-text">{{or .Summary "No summary available"}}</div>
</div>
{{- with .References}}
<div class="search-references">
<h3>📚 Reference Sources</h3>
<p class="search-references-intro">The following articles were found from web search. Click the links to view the original articles:</p>
<ul>
{{- range $i, $ref := .}}
{{- if $ref.Link}}
<li><a href="{{$ref.Link}}" target="_blank" rel="noopener">{{number $i}}. {{or $ref.Title $ref.Link}}</a></li>
{{- else}}
<li class="plain">{{number $i}}. {{or $ref.Title "Untitled"}}</li>
{{- end}}
{{- end}}
</ul>
<p class="search-disclaimer">*Note: The above links are for reference only. Please verify the actual information.*</p>
</div>
{{- end}}
{{- end}}`

var searchTmpl = template.Must(template.New("search").Funcs(template.FuncMap{
	"number": func(i int) int { return i + 1 },
}).Parse(searchResultsTemplate))

// SearchResultsHTML renders a search response as the HTML shown in the search
// results panel.
func SearchResultsHTML(resp *api.SearchResponse) (string, error) {
	if resp == nil {
		resp = &api.SearchResponse{}
	}
	var buf bytes.Buffer
	if err := searchTmpl.Execute(&buf, resp); err != nil {
		return "", fmt.Errorf("rendering search results: %w", err)
	}
	return buf.String(), nil
}
