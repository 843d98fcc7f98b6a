package terminal

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ziadkadry99/tripplan/internal/api"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

type recordingIndicator struct {
	events []string
}

func (r *recordingIndicator) Start(message string) { r.events = append(r.events, "start:"+message) }
func (r *recordingIndicator) Stop()                { r.events = append(r.events, "stop") }

type stubBackend struct {
	plan   *api.PlanResponse
	search *api.SearchResponse
	err    error
	got    api.PlanRequest
}

func (s *stubBackend) GeneratePlan(ctx context.Context, req api.PlanRequest) (*api.PlanResponse, error) {
	s.got = req
	return s.plan, s.err
}

func (s *stubBackend) Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error) {
	return s.search, s.err
}

func newTestPage(opts ...Option) (*Page, *bytes.Buffer, *bytes.Buffer, *recordingIndicator) {
	var out, errOut bytes.Buffer
	ind := &recordingIndicator{}
	opts = append([]Option{WithIndicator(ind)}, opts...)
	p := NewPage(&out, &errOut, Values{Days: "2", Destination: "Kyoto", Budget: "mid"}, opts...)
	return p, &out, &errOut, ind
}

func TestPlanPrintsToTerminal(t *testing.T) {
	page, out, errOut, ind := newTestPage()
	backend := &stubBackend{plan: &api.PlanResponse{Success: true, Plan: "## Day 1\n- Fushimi Inari\n- **Nishiki** market"}}
	ctrl := ui.New(page.Elements(), backend, ui.WithAlerter(page))

	ctrl.Submit(context.Background())

	if backend.got.Days != "2" || backend.got.Destination != "Kyoto" || backend.got.Budget != "mid" {
		t.Errorf("unexpected request %+v", backend.got)
	}
	want := "== Day 1 ==\n\n  • Fushimi Inari\n  • Nishiki market\n"
	if out.String() != want {
		t.Errorf("output:\ngot  %q\nwant %q", out.String(), want)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected error output %q", errOut.String())
	}
	if len(ind.events) != 2 || ind.events[0] != "start:"+ui.PlanLoadingText || ind.events[1] != "stop" {
		t.Errorf("unexpected indicator events %v", ind.events)
	}
	if page.PlanContent.Text() == "" {
		t.Error("plan content should hold the rendered text for copying")
	}
}

func TestPlanHTMLOutput(t *testing.T) {
	page, out, _, _ := newTestPage(WithHTMLOutput(true))
	backend := &stubBackend{plan: &api.PlanResponse{Success: true, Plan: "## Day 1"}}
	ui.New(page.Elements(), backend).Submit(context.Background())

	if out.String() != "<p><h3>Day 1</h3></p>\n" {
		t.Errorf("unexpected HTML output %q", out.String())
	}
}

func TestPlanErrorGoesToErrOut(t *testing.T) {
	page, out, errOut, ind := newTestPage()
	backend := &stubBackend{err: errors.New("boom")}
	ui.New(page.Elements(), backend).Submit(context.Background())

	if out.Len() != 0 {
		t.Errorf("unexpected output %q", out.String())
	}
	if errOut.String() != "✗ "+ui.PlanErrorPrefix+"boom\n" {
		t.Errorf("unexpected error output %q", errOut.String())
	}
	if ind.events[len(ind.events)-1] != "stop" {
		t.Error("indicator should be stopped after a failure")
	}
}

func TestSearchPrintsResultsAndAlerts(t *testing.T) {
	page, out, errOut, _ := newTestPage()
	backend := &stubBackend{search: &api.SearchResponse{
		Success:    true,
		Summary:    "Go in spring.",
		References: []api.Reference{{Title: "Guide", Link: "https://example.com/guide"}},
	}}
	ctrl := ui.New(page.Elements(), backend, ui.WithAlerter(page))

	ctrl.SearchKeyPress(context.Background(), "Enter")
	if errOut.String() != "! "+ui.EmptyQueryMessage+"\n" {
		t.Errorf("expected empty-query alert, got %q", errOut.String())
	}

	page.SearchInput.SetValue("kyoto season")
	ctrl.SearchKeyPress(context.Background(), "Enter")
	got := out.String()
	if !strings.Contains(got, "Go in spring.") || !strings.Contains(got, "Guide <https://example.com/guide>") {
		t.Errorf("unexpected search output %q", got)
	}
	if page.SearchButton.Label() != ui.SearchLabel || page.SearchButton.Disabled() {
		t.Error("search button should be restored")
	}
}

func TestSubmitButtonTracksLoading(t *testing.T) {
	ind := &recordingIndicator{}
	b := NewSubmitButton("Go", ind)
	b.ShowLoading("wait")
	if !b.Loading() || b.VisibleLabel() != "wait" {
		t.Error("expected loading label")
	}
	b.ShowIdle()
	if b.Loading() || b.VisibleLabel() != "Go" {
		t.Error("expected idle label")
	}
}
