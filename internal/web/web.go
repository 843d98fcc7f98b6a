// Package web serves the plan form as a server-rendered page. Every form post
// builds a fresh page, runs the matching controller event against it and
// renders the resulting element state.
package web

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/tripplan/internal/logging"
	"github.com/ziadkadry99/tripplan/internal/render"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

//go:embed index.html
var indexTemplate string

//go:embed style.css
var styleCSS []byte

var pageTmpl = template.Must(template.New("index").Parse(indexTemplate))

// Config controls how the form behaves.
type Config struct {
	PlanTimeout time.Duration
	Renderer    render.Renderer
	// Debug shows the controller's log lines under the form.
	Debug bool
}

// Frontend serves the travel-planner form.
type Frontend struct {
	backend ui.Backend
	cfg     Config
	logger  zerolog.Logger
}

// New creates a Frontend that talks to backend.
func New(backend ui.Backend, cfg Config, logger zerolog.Logger) *Frontend {
	if cfg.Renderer == nil {
		cfg.Renderer = render.SubsetRenderer{}
	}
	return &Frontend{backend: backend, cfg: cfg, logger: logger}
}

// RegisterRoutes mounts the form routes onto the given router.
func (f *Frontend) RegisterRoutes(r chi.Router) {
	r.Get("/", f.handleIndex)
	r.Post("/plan", f.handlePlan)
	r.Post("/search", f.handleSearch)
	r.Get("/static/style.css", serveStyle)
}

// pageData is the element state rendered into the template.
type pageData struct {
	Days, Destination, Budget, Preferences string
	Query                                  string

	ResultVisible bool
	PlanHTML      template.HTML
	PlanText      string

	ErrorVisible bool
	ErrorMessage string

	SearchVisible bool
	SearchHTML    template.HTML

	Alerts []string

	Debug    bool
	DebugLog string
}

// session is one request's page with the controller bound to it.
type session struct {
	page     *ui.Page
	ctrl     *ui.Controller
	debugLog *bytes.Buffer
}

func (f *Frontend) newSession(r *http.Request) *session {
	s := &session{page: ui.NewPage(), debugLog: &bytes.Buffer{}}
	if err := r.ParseForm(); err == nil {
		s.page.Days.SetValue(r.PostForm.Get(ui.FieldDays))
		s.page.Destination.SetValue(r.PostForm.Get(ui.FieldDestination))
		s.page.Budget.SetValue(r.PostForm.Get(ui.FieldBudget))
		s.page.Preferences.SetValue(r.PostForm.Get(ui.FieldPreferences))
		s.page.SearchInput.SetValue(r.PostForm.Get("query"))
	}

	log := f.logger
	if f.cfg.Debug {
		log = logging.NewPlain(s.debugLog)
	}
	s.ctrl = ui.New(s.page.Elements(), f.backend,
		ui.WithRenderer(f.cfg.Renderer),
		ui.WithAlerter(s.page.Alerts),
		ui.WithLogger(log),
		ui.WithPlanTimeout(f.cfg.PlanTimeout),
	)
	return s
}

func (f *Frontend) handleIndex(w http.ResponseWriter, r *http.Request) {
	f.render(w, f.newSession(r))
}

func (f *Frontend) handlePlan(w http.ResponseWriter, r *http.Request) {
	s := f.newSession(r)
	s.ctrl.Submit(r.Context())
	f.render(w, s)
}

func (f *Frontend) handleSearch(w http.ResponseWriter, r *http.Request) {
	s := f.newSession(r)
	s.ctrl.SearchClick(r.Context())
	f.render(w, s)
}

func (f *Frontend) render(w http.ResponseWriter, s *session) {
	p := s.page
	data := pageData{
		Days:          p.Days.Value(),
		Destination:   p.Destination.Value(),
		Budget:        p.Budget.Value(),
		Preferences:   p.Preferences.Value(),
		Query:         p.SearchInput.Value(),
		ResultVisible: p.Result.Visible(),
		PlanText:      p.PlanContent.Text(),
		ErrorVisible:  p.Error.Visible(),
		ErrorMessage:  p.ErrorMessage.Text(),
		SearchVisible: p.SearchResults.Visible(),
		Alerts:        p.Alerts.Messages(),
		Debug:         f.cfg.Debug,
		DebugLog:      strings.TrimSpace(s.debugLog.String()),
	}
	// Both fragments come from renderers that escape their input.
	data.PlanHTML = template.HTML(p.PlanContent.HTML())
	data.SearchHTML = template.HTML(p.SearchResults.HTML())

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, data); err != nil {
		f.logger.Error().Err(err).Msg("rendering page")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func serveStyle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(styleCSS)
}
