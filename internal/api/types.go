// Package api defines the JSON payloads exchanged with the plan and search
// endpoints. All of them are transient: built right before a request and
// consumed right after the response.
package api

// Endpoint paths relative to the backend base URL.
const (
	GeneratePlanPath = "/api/generate-plan"
	SearchPath       = "/api/search"
)

// PlanRequest carries the four plan-form fields verbatim.
type PlanRequest struct {
	Days        string `json:"days"`
	Destination string `json:"destination"`
	Budget      string `json:"budget"`
	Preferences string `json:"preferences"`
}

// PlanResponse is the body returned by the plan-generation endpoint.
type PlanResponse struct {
	Success bool   `json:"success"`
	Plan    string `json:"plan,omitempty"`
	Error   string `json:"error,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// SearchRequest is the body sent to the search endpoint.
type SearchRequest struct {
	Query string `json:"query"`
}

// Reference is one source link attached to a search summary.
type Reference struct {
	Title string `json:"title,omitempty"`
	Link  string `json:"link,omitempty"`
}

// SearchResponse is the body returned by the search endpoint.
type SearchResponse struct {
	Success      bool        `json:"success"`
	Summary      string      `json:"summary,omitempty"`
	SummaryError bool        `json:"summary_error,omitempty"`
	References   []Reference `json:"references,omitempty"`
	Error        string      `json:"error,omitempty"`
}
