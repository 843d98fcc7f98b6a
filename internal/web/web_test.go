package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/tripplan/internal/api"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

type fakeBackend struct {
	planReq api.PlanRequest
	plan    *api.PlanResponse
	search  *api.SearchResponse
	err     error
}

func (f *fakeBackend) GeneratePlan(ctx context.Context, req api.PlanRequest) (*api.PlanResponse, error) {
	f.planReq = req
	return f.plan, f.err
}

func (f *fakeBackend) Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error) {
	return f.search, f.err
}

func newRouter(b ui.Backend, cfg Config) chi.Router {
	r := chi.NewRouter()
	New(b, cfg, zerolog.Nop()).RegisterRoutes(r)
	return r
}

func postForm(h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestIndexRendersEmptyForm(t *testing.T) {
	h := newRouter(&fakeBackend{}, Config{})
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="travelForm"`) || !strings.Contains(body, `id="searchInput"`) {
		t.Error("form elements missing")
	}
	for _, id := range []string{`id="result"`, `id="error"`, `id="searchResults"`, `id="debugInfo"`} {
		if strings.Contains(body, id) {
			t.Errorf("%s should not be rendered on a fresh page", id)
		}
	}
}

func TestPlanPostRendersResult(t *testing.T) {
	b := &fakeBackend{plan: &api.PlanResponse{Success: true, Plan: "## Day 1\n- <script>x</script>"}}
	h := newRouter(b, Config{})

	w := postForm(h, "/plan", url.Values{
		"days": {"3"}, "destination": {"Rome"}, "budget": {"1000"}, "preferences": {"art"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if b.planReq != (api.PlanRequest{Days: "3", Destination: "Rome", Budget: "1000", Preferences: "art"}) {
		t.Errorf("unexpected request %+v", b.planReq)
	}
	body := w.Body.String()
	if !strings.Contains(body, `id="result"`) || !strings.Contains(body, "<h3>Day 1</h3>") {
		t.Error("rendered plan missing")
	}
	if strings.Contains(body, "<script>x</script>") {
		t.Error("plan markup must be escaped")
	}
	if !strings.Contains(body, `value="Rome"`) {
		t.Error("form values should be kept after posting")
	}
}

func TestPlanPostRendersError(t *testing.T) {
	b := &fakeBackend{plan: &api.PlanResponse{Success: false, Error: "Please provide the number of travel days and a destination"}}
	w := postForm(newRouter(b, Config{}), "/plan", url.Values{"days": {""}})

	body := w.Body.String()
	if !strings.Contains(body, `id="error"`) || !strings.Contains(body, "Please provide the number of travel days") {
		t.Error("error panel missing")
	}
	if strings.Contains(body, `id="result"`) {
		t.Error("result panel should be hidden on error")
	}
}

func TestSearchPost(t *testing.T) {
	b := &fakeBackend{search: &api.SearchResponse{
		Success:    true,
		Summary:    "Spring is best.",
		References: []api.Reference{{Title: "Guide", Link: "https://example.com/g"}},
	}}
	w := postForm(newRouter(b, Config{}), "/search", url.Values{"query": {"kyoto"}})

	body := w.Body.String()
	if !strings.Contains(body, `id="searchResults"`) || !strings.Contains(body, "Spring is best.") {
		t.Error("search results missing")
	}
	if !strings.Contains(body, `href="https://example.com/g"`) {
		t.Error("reference link missing")
	}
}

func TestEmptySearchShowsAlert(t *testing.T) {
	w := postForm(newRouter(&fakeBackend{}, Config{}), "/search", url.Values{"query": {"  "}})
	body := w.Body.String()
	if !strings.Contains(body, `class="alert"`) || !strings.Contains(body, ui.EmptyQueryMessage) {
		t.Error("expected empty-query alert")
	}
}

func TestDebugPanel(t *testing.T) {
	b := &fakeBackend{plan: &api.PlanResponse{Success: true, Plan: "ok"}}
	w := postForm(newRouter(b, Config{Debug: true}), "/plan", url.Values{"days": {"1"}, "destination": {"Bern"}})

	body := w.Body.String()
	if !strings.Contains(body, `id="debugInfo"`) || !strings.Contains(body, "sending plan request") {
		t.Error("debug log missing")
	}
}

func TestStylesheet(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(&fakeBackend{}, Config{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	if w.Code != http.StatusOK || !strings.HasPrefix(w.Header().Get("Content-Type"), "text/css") {
		t.Errorf("unexpected stylesheet response %d %q", w.Code, w.Header().Get("Content-Type"))
	}
}
