package mcp

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/tripplan/internal/api"
	"github.com/ziadkadry99/tripplan/internal/render"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

// handleGeneratePlan asks the backend for an itinerary and returns it as Markdown.
func (s *Server) handleGeneratePlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	days := stringArg(request, "days")
	if days == "" {
		return mcp.NewToolResultError("missing required parameter: days"), nil
	}
	destination := stringArg(request, "destination")
	if destination == "" {
		return mcp.NewToolResultError("missing required parameter: destination"), nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.planTimeout)
	defer cancel()

	resp, err := s.backend.GeneratePlan(ctx, api.PlanRequest{
		Days:        days,
		Destination: destination,
		Budget:      stringArg(request, "budget"),
		Preferences: stringArg(request, "preferences"),
	})
	if err != nil {
		return mcp.NewToolResultError(ui.PlanErrorMessage(err, s.planTimeout)), nil
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = ui.PlanFailedMessage
		}
		return mcp.NewToolResultError(msg), nil
	}

	return mcp.NewToolResultText(resp.Plan), nil
}

// handleWebSearch runs a backend search and returns the summary and sources.
func (s *Server) handleWebSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := strings.TrimSpace(request.GetString("query", ""))
	if query == "" {
		return mcp.NewToolResultError(ui.EmptyQueryMessage), nil
	}

	resp, err := s.backend.Search(ctx, api.SearchRequest{Query: query})
	if err != nil {
		return mcp.NewToolResultError(ui.SearchErrorMessage(err)), nil
	}
	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = render.SearchFailedLabel
		}
		return mcp.NewToolResultError(msg), nil
	}

	return mcp.NewToolResultText(formatSearchResponse(resp)), nil
}

// stringArg reads an optional argument that may arrive as a string or a number.
func stringArg(request mcp.CallToolRequest, key string) string {
	switch v := request.GetArguments()[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return ""
	}
}

// formatSearchResponse formats a search response as Markdown.
func formatSearchResponse(resp *api.SearchResponse) string {
	var b strings.Builder
	b.WriteString("## Summary\n\n")
	if resp.SummaryError {
		b.WriteString("_AI summary failed. Showing search results instead._\n\n")
	}
	if resp.Summary != "" {
		b.WriteString(resp.Summary)
	} else {
		b.WriteString(render.NoSummaryLabel)
	}
	b.WriteString("\n")

	if len(resp.References) > 0 {
		b.WriteString("\n## References\n\n")
		for i, ref := range resp.References {
			title := ref.Title
			if title == "" {
				title = ref.Link
			}
			if title == "" {
				title = render.UntitledLabel
			}
			if ref.Link != "" {
				fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, title, ref.Link)
			} else {
				fmt.Fprintf(&b, "%d. %s\n", i+1, title)
			}
		}
	}
	return b.String()
}
