package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ziadkadry99/tripplan/internal/api"
	"github.com/ziadkadry99/tripplan/internal/client"
	"github.com/ziadkadry99/tripplan/internal/render"
)

// DefaultPlanTimeout bounds a plan-generation request. Generating a plan
// involves searching and extracting several pages, so it is generous.
const DefaultPlanTimeout = 120 * time.Second

// CopyFeedbackDuration is how long the copy button shows its success state.
const CopyFeedbackDuration = 2 * time.Second

// Backend is the pair of endpoints the controller drives.
type Backend interface {
	GeneratePlan(ctx context.Context, req api.PlanRequest) (*api.PlanResponse, error)
	Search(ctx context.Context, req api.SearchRequest) (*api.SearchResponse, error)
}

// Controller owns the page elements and handles every page event. Build it
// once per page with New, then route events to its methods.
type Controller struct {
	els       Elements
	backend   Backend
	renderer  render.Renderer
	alerter   Alerter
	clipboard Clipboard
	log       zerolog.Logger

	planTimeout time.Duration
	afterFunc   func(time.Duration, func())

	searchEnabled bool

	generate control
	search   control
	copy     control
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the renderer used for generated plans.
func WithRenderer(r render.Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithAlerter sets where blocking alerts go.
func WithAlerter(a Alerter) Option {
	return func(c *Controller) { c.alerter = a }
}

// WithClipboard sets the clipboard used by the copy button.
func WithClipboard(cb Clipboard) Option {
	return func(c *Controller) { c.clipboard = cb }
}

// WithLogger sets the debug logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithPlanTimeout overrides DefaultPlanTimeout.
func WithPlanTimeout(d time.Duration) Option {
	return func(c *Controller) {
		if d > 0 {
			c.planTimeout = d
		}
	}
}

// WithAfterFunc replaces time.AfterFunc for the copy feedback timer.
func WithAfterFunc(fn func(time.Duration, func())) Option {
	return func(c *Controller) { c.afterFunc = fn }
}

// New binds a controller to els.
func New(els Elements, backend Backend, opts ...Option) *Controller {
	c := &Controller{
		els:         els,
		backend:     backend,
		renderer:    render.SubsetRenderer{},
		log:         zerolog.Nop(),
		planTimeout: DefaultPlanTimeout,
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.alerter == nil {
		c.alerter = logAlerter{log: c.log}
	}
	if c.clipboard == nil {
		c.clipboard = ClipboardFunc(func(context.Context, string) error {
			return errors.New("no clipboard available")
		})
	}

	c.searchEnabled = els.SearchInput != nil && els.SearchButton != nil && els.SearchResults != nil
	c.log.Debug().
		Bool("search_input", els.SearchInput != nil).
		Bool("search_button", els.SearchButton != nil).
		Bool("search_results", els.SearchResults != nil).
		Msg("search element check")
	if !c.searchEnabled {
		c.log.Debug().Msg("search elements not found, search is not wired")
	}
	return c
}

// SearchEnabled reports whether the page has all search elements.
func (c *Controller) SearchEnabled() bool { return c.searchEnabled }

// PlanTimeout returns the timeout applied to plan generation.
func (c *Controller) PlanTimeout() time.Duration { return c.planTimeout }

// GenerateState returns the state of the plan submit control.
func (c *Controller) GenerateState() ControlState { return c.generate.State() }

// SearchState returns the state of the search control.
func (c *Controller) SearchState() ControlState { return c.search.State() }

// CopyState returns the state of the copy control. It is busy while the
// success indication is shown.
func (c *Controller) CopyState() ControlState { return c.copy.State() }

// Submit handles a plan-form submission. It never returns an error: every
// failure ends up in the error panel, and the submit control is restored on
// every exit path.
func (c *Controller) Submit(ctx context.Context) {
	if !c.generate.acquire() {
		c.log.Debug().Msg("plan generation already in progress, ignoring submit")
		return
	}
	log := c.log.With().Str("flow", "plan").Str("flow_id", uuid.NewString()).Logger()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			log.Error().Err(err).Msg("plan generation panicked")
			c.showError(c.planErrorMessage(err))
		}
		c.els.Generate.SetDisabled(false)
		c.els.Generate.ShowIdle()
		c.generate.release()
	}()

	c.els.Result.Hide()
	c.els.Error.Hide()

	req := api.PlanRequest{
		Days:        c.els.Days.Value(),
		Destination: c.els.Destination.Value(),
		Budget:      c.els.Budget.Value(),
		Preferences: c.els.Preferences.Value(),
	}

	c.els.Generate.SetDisabled(true)
	c.els.Generate.ShowLoading(PlanLoadingText)

	if err := c.generatePlan(ctx, log, req); err != nil {
		log.Debug().Err(err).Msg("plan generation failed")
		c.showError(c.planErrorMessage(err))
	}
}

func (c *Controller) generatePlan(ctx context.Context, log zerolog.Logger, req api.PlanRequest) error {
	log.Debug().Interface("request", req).Msg("sending plan request")

	ctx, cancel := context.WithTimeout(ctx, c.planTimeout)
	defer cancel()

	resp, err := c.backend.GeneratePlan(ctx, req)
	if err != nil {
		return err
	}
	if resp == nil {
		return errors.New("empty response")
	}
	log.Debug().Bool("success", resp.Success).Int("plan_len", len(resp.Plan)).Msg("received plan response")

	if !resp.Success {
		msg := resp.Error
		if msg == "" {
			msg = PlanFailedMessage
		}
		if resp.Detail != "" {
			log.Error().Str("detail", resp.Detail).Msg("server reported plan failure")
		}
		c.showError(msg)
		return nil
	}

	c.els.PlanContent.SetText(resp.Plan)
	c.els.Result.Show()

	html, err := c.renderer.Render(resp.Plan)
	if err != nil {
		return fmt.Errorf("rendering plan: %w", err)
	}
	c.els.PlanContent.SetHTML(html)
	c.els.Result.ScrollIntoView()
	return nil
}

func (c *Controller) planErrorMessage(err error) string {
	return PlanErrorMessage(err, c.planTimeout)
}

// PlanErrorMessage is the text shown for a failed plan request that was
// bounded by timeout.
func PlanErrorMessage(err error, timeout time.Duration) string {
	switch {
	case isAbort(err):
		return fmt.Sprintf(planTimeoutFormat, int(timeout.Seconds()))
	case client.IsUnreachable(err):
		return PlanUnreachableMessage
	default:
		return PlanErrorPrefix + err.Error()
	}
}

func (c *Controller) showError(message string) {
	c.els.Error.Show()
	c.els.ErrorMessage.SetText(message)
	c.els.Error.ScrollIntoView()
}

// SearchClick handles a click on the search button. Failures are reported
// through the alerter rather than the error panel.
func (c *Controller) SearchClick(ctx context.Context) {
	if !c.searchEnabled {
		return
	}
	if !c.search.acquire() {
		c.log.Debug().Msg("search already in progress, ignoring click")
		return
	}
	defer c.search.release()

	log := c.log.With().Str("flow", "search").Str("flow_id", uuid.NewString()).Logger()
	log.Debug().Msg("search button clicked")

	query := strings.TrimSpace(c.els.SearchInput.Value())
	if query == "" {
		c.alerter.Alert(EmptyQueryMessage)
		log.Debug().Msg("search query is empty")
		return
	}

	label := c.els.SearchButton.Label()
	c.els.SearchButton.SetDisabled(true)
	c.els.SearchButton.SetLabel(SearchBusyLabel)
	c.els.SearchResults.Hide()

	defer func() {
		if r := recover(); r != nil {
			err := fmt.Errorf("%v", r)
			log.Error().Err(err).Msg("search panicked")
			c.alerter.Alert(SearchErrorMessage(err))
		}
		c.els.SearchButton.SetDisabled(false)
		c.els.SearchButton.SetLabel(label)
	}()

	if err := c.runSearch(ctx, log, query); err != nil {
		log.Debug().Err(err).Msg("search failed")
		c.alerter.Alert(SearchErrorMessage(err))
	}
}

// SearchKeyPress handles a key press inside the search input. Enter behaves
// like a click on the search button.
func (c *Controller) SearchKeyPress(ctx context.Context, key string) {
	if key != "Enter" {
		return
	}
	c.SearchClick(ctx)
}

func (c *Controller) runSearch(ctx context.Context, log zerolog.Logger, query string) error {
	log.Debug().Str("query", query).Msg("sending search request")

	resp, err := c.backend.Search(ctx, api.SearchRequest{Query: query})
	if err != nil {
		return err
	}
	if resp == nil {
		return errors.New("empty response")
	}
	log.Debug().
		Bool("success", resp.Success).
		Bool("has_summary", resp.Summary != "").
		Int("references", len(resp.References)).
		Msg("received search response")

	html, err := render.SearchResultsHTML(resp)
	if err != nil {
		return err
	}
	c.els.SearchResults.SetHTML(html)
	c.els.SearchResults.Show()
	c.els.SearchResults.ScrollIntoView()
	return nil
}

// SearchErrorMessage is the alert text for a failed search request.
func SearchErrorMessage(err error) string {
	if client.IsUnreachable(err) {
		return SearchUnreachableMessage
	}
	if httpErr, ok := client.AsHTTPError(err); ok {
		return fmt.Sprintf("%sHTTP error: %d", SearchErrorPrefix, httpErr.StatusCode)
	}
	return SearchErrorPrefix + err.Error()
}

// CopyClick copies the plan's text to the clipboard and briefly switches the
// copy button to its success state.
func (c *Controller) CopyClick(ctx context.Context) {
	text := c.els.PlanContent.Text()
	if err := c.clipboard.WriteText(ctx, text); err != nil {
		c.log.Error().Err(err).Msg("copy to clipboard failed")
		c.alerter.Alert(CopyFailedMessage)
		return
	}
	c.log.Debug().Int("chars", len([]rune(text))).Msg("plan copied to clipboard")

	// A second click while the success state is shown still copies, but
	// must not capture "Copied!" as the label to revert to.
	if !c.copy.acquire() {
		return
	}
	label, background := c.els.Copy.Label(), c.els.Copy.Background()
	c.els.Copy.SetLabel(CopiedLabel)
	c.els.Copy.SetBackground(CopiedBackground)
	c.afterFunc(CopyFeedbackDuration, func() {
		c.els.Copy.SetLabel(label)
		c.els.Copy.SetBackground(background)
		c.copy.release()
	})
}

func isAbort(err error) bool {
	return client.IsAborted(err) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, context.Canceled)
}

// logAlerter is the fallback Alerter when none is configured.
type logAlerter struct {
	log zerolog.Logger
}

func (a logAlerter) Alert(message string) {
	a.log.Warn().Msg(message)
}
