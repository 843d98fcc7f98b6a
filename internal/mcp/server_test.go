package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/tripplan/internal/api"
	"github.com/ziadkadry99/tripplan/internal/client"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

// mockBackend implements ui.Backend for testing.
type mockBackend struct {
	planReq  api.PlanRequest
	plan     *api.PlanResponse
	search   *api.SearchResponse
	err      error
	deadline bool
}

func (m *mockBackend) GeneratePlan(ctx context.Context, req api.PlanRequest) (*api.PlanResponse, error) {
	m.planReq = req
	_, m.deadline = ctx.Deadline()
	return m.plan, m.err
}

func (m *mockBackend) Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error) {
	return m.search, m.err
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty tool result")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("unexpected content type %T", result.Content[0])
	}
	return text.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
		required []string
	}{
		{"generate_travel_plan", generatePlanTool, "generate_travel_plan", []string{"days", "destination"}},
		{"web_search", webSearchTool, "web_search", []string{"query"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
			if fmt.Sprint(tt.tool.InputSchema.Required) != fmt.Sprint(tt.required) {
				t.Errorf("required = %v, want %v", tt.tool.InputSchema.Required, tt.required)
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	b := &mockBackend{}
	srv := NewServer(b, 0)

	if srv == nil {
		t.Fatal("NewServer returned nil")
	}
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.planTimeout != ui.DefaultPlanTimeout {
		t.Errorf("planTimeout = %v, want %v", srv.planTimeout, ui.DefaultPlanTimeout)
	}
}

func TestHandleGeneratePlan(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		b := &mockBackend{plan: &api.PlanResponse{Success: true, Plan: "## Day 1"}}
		srv := NewServer(b, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{
			"days":        float64(3),
			"destination": " Rome ",
			"preferences": "food",
		}

		result, err := srv.handleGeneratePlan(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := resultText(t, result); got != "## Day 1" {
			t.Errorf("plan = %q", got)
		}
		if b.planReq != (api.PlanRequest{Days: "3", Destination: "Rome", Preferences: "food"}) {
			t.Errorf("unexpected request %+v", b.planReq)
		}
		if !b.deadline {
			t.Error("plan request should carry a deadline")
		}
	})

	t.Run("missing destination", func(t *testing.T) {
		srv := NewServer(&mockBackend{}, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"days": "2"}

		result, err := srv.handleGeneratePlan(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing destination")
		}
	})

	t.Run("application failure", func(t *testing.T) {
		b := &mockBackend{plan: &api.PlanResponse{Success: false}}
		srv := NewServer(b, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"days": "2", "destination": "Oslo"}

		result, _ := srv.handleGeneratePlan(ctx, req)
		if !result.IsError || resultText(t, result) != ui.PlanFailedMessage {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("unreachable", func(t *testing.T) {
		b := &mockBackend{err: fmt.Errorf("dial: %w", client.ErrUnreachable)}
		srv := NewServer(b, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"days": "2", "destination": "Oslo"}

		result, _ := srv.handleGeneratePlan(ctx, req)
		if !result.IsError || resultText(t, result) != ui.PlanUnreachableMessage {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("timeout", func(t *testing.T) {
		b := &mockBackend{err: context.DeadlineExceeded}
		srv := NewServer(b, 90*time.Second)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"days": "2", "destination": "Oslo"}

		result, _ := srv.handleGeneratePlan(ctx, req)
		if !result.IsError || !strings.Contains(resultText(t, result), "over 90 seconds") {
			t.Errorf("unexpected result %+v", result)
		}
	})
}

func TestHandleWebSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("summary and references", func(t *testing.T) {
		b := &mockBackend{search: &api.SearchResponse{
			Success:      true,
			Summary:      "Best in spring.",
			SummaryError: true,
			References: []api.Reference{
				{Title: "Guide", Link: "https://example.com/g"},
				{Link: "https://example.com/x"},
				{},
			},
		}}
		srv := NewServer(b, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "kyoto"}

		result, err := srv.handleWebSearch(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := resultText(t, result)
		for _, want := range []string{
			"Best in spring.",
			"AI summary failed",
			"1. [Guide](https://example.com/g)",
			"2. [https://example.com/x](https://example.com/x)",
			"3. Untitled",
		} {
			if !strings.Contains(text, want) {
				t.Errorf("result missing %q:\n%s", want, text)
			}
		}
	})

	t.Run("empty query", func(t *testing.T) {
		srv := NewServer(&mockBackend{}, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "  "}

		result, _ := srv.handleWebSearch(ctx, req)
		if !result.IsError || resultText(t, result) != ui.EmptyQueryMessage {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("http error", func(t *testing.T) {
		b := &mockBackend{err: &client.HTTPError{StatusCode: 502, Status: "502 Bad Gateway"}}
		srv := NewServer(b, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "x"}

		result, _ := srv.handleWebSearch(ctx, req)
		if !result.IsError || resultText(t, result) != ui.SearchErrorPrefix+"HTTP error: 502" {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		b := &mockBackend{search: &api.SearchResponse{Success: false, Error: "blocked"}}
		srv := NewServer(b, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "x"}

		result, _ := srv.handleWebSearch(ctx, req)
		if !result.IsError || resultText(t, result) != "blocked" {
			t.Errorf("unexpected result %+v", result)
		}
	})

	t.Run("generic error", func(t *testing.T) {
		b := &mockBackend{err: errors.New("boom")}
		srv := NewServer(b, time.Minute)
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"query": "x"}

		result, _ := srv.handleWebSearch(ctx, req)
		if resultText(t, result) != ui.SearchErrorPrefix+"boom" {
			t.Errorf("unexpected result %+v", result)
		}
	})
}
