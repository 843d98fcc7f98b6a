package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const ddgPage = `<html><body>
<div class="result results_links result--ad">
  <a class="result__a" href="https://ads.example.com">Sponsored</a>
</div>
<div class="result results_links">
  <h2><a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fen.wikipedia.org%2Fwiki%2FKyoto&amp;rut=abc">Kyoto - Wikipedia</a></h2>
  <a class="result__snippet">Kyoto is a city in Japan.</a>
</div>
<div class="result results_links">
  <h2><a class="result__a" href="https://www.japan-guide.com/e/e2158.html"> Kyoto Travel Guide </a></h2>
  <a class="result__snippet">Temples, shrines and gardens.</a>
</div>
<div class="result results_links">
  <h2><a class="result__a">No link</a></h2>
</div>
<div class="result results_links">
  <h2><a class="result__a" href="https://example.com/third">Third</a></h2>
</div>
</body></html>`

func TestDuckDuckGoSearch(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		gotQuery = r.PostForm.Get("q")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(ddgPage))
	}))
	defer srv.Close()

	s := NewDuckDuckGoSearcher().WithEndpoint(srv.URL)
	results, err := s.Search(context.Background(), "kyoto temples", 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotQuery != "kyoto temples" {
		t.Errorf("query: got %q", gotQuery)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d: %+v", len(results), results)
	}
	if results[0].URL != "https://en.wikipedia.org/wiki/Kyoto" {
		t.Errorf("redirect not unwrapped: %q", results[0].URL)
	}
	if results[0].Snippet != "Kyoto is a city in Japan." {
		t.Errorf("snippet: got %q", results[0].Snippet)
	}
	if results[1].Title != "Kyoto Travel Guide" {
		t.Errorf("title not trimmed: %q", results[1].Title)
	}
}

func TestDuckDuckGoSkipsLinklessResults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(ddgPage))
	}))
	defer srv.Close()

	results, err := NewDuckDuckGoSearcher().WithEndpoint(srv.URL).Search(context.Background(), "kyoto", 10)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if results[2].URL != "https://example.com/third" {
		t.Errorf("unexpected last result %+v", results[2])
	}
}

func TestDuckDuckGoStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	if _, err := NewDuckDuckGoSearcher().WithEndpoint(srv.URL).Search(context.Background(), "kyoto", 5); err == nil {
		t.Error("expected error for 403")
	}
}

func TestEmptyQueryRejected(t *testing.T) {
	for _, s := range []Searcher{NewDuckDuckGoSearcher(), NewTavilySearcher("k")} {
		if _, err := s.Search(context.Background(), "  ", 5); err == nil {
			t.Errorf("%s: expected error for empty query", s.Name())
		}
	}
}

func TestTavilySearch(t *testing.T) {
	var body map[string]any
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"query":"rome","results":[
			{"title":"Rome guide","url":"https://example.com/rome","content":"Colosseum and more","score":0.9},
			{"title":"Eat in Rome","url":"https://example.com/food","content":"Carbonara","score":0.5}
		]}`))
	}))
	defer srv.Close()

	s := NewTavilySearcher("tvly-key").WithEndpoint(srv.URL + "/")
	results, err := s.Search(context.Background(), "rome", 0)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if auth != "Bearer tvly-key" {
		t.Errorf("authorization: got %q", auth)
	}
	if body["query"] != "rome" || body["max_results"] != float64(DefaultLimit) {
		t.Errorf("unexpected request body %v", body)
	}
	if len(results) != 2 || results[0].Snippet != "Colosseum and more" || results[1].URL != "https://example.com/food" {
		t.Errorf("unexpected results %+v", results)
	}
}

func TestTavilyStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	if _, err := NewTavilySearcher("k").WithEndpoint(srv.URL).Search(context.Background(), "rome", 5); err == nil {
		t.Error("expected error for 401")
	}
}

func TestNewSearcher(t *testing.T) {
	s, err := NewSearcher("")
	if err != nil || s.Name() != "duckduckgo" {
		t.Fatalf("default searcher: %v %v", s, err)
	}

	t.Setenv("TAVILY_API_KEY", "")
	if _, err := NewSearcher("tavily"); err == nil {
		t.Error("expected error without TAVILY_API_KEY")
	}
	t.Setenv("TAVILY_API_KEY", "k")
	if s, err := NewSearcher("tavily"); err != nil || s.Name() != "tavily" {
		t.Errorf("tavily searcher: %v %v", s, err)
	}

	if _, err := NewSearcher("bing"); err == nil {
		t.Error("expected error for unknown provider")
	}
}
