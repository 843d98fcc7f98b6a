// Package terminal binds the form controller to a terminal: inputs come from
// flags or prompts, panels print when they scroll into view, and the submit
// button's loading state is a spinner.
package terminal

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/ziadkadry99/tripplan/internal/progress"
	"github.com/ziadkadry99/tripplan/internal/render"
	"github.com/ziadkadry99/tripplan/internal/ui"
)

// Values are the initial plan-form values.
type Values struct {
	Days        string
	Destination string
	Budget      string
	Preferences string
}

// Option configures a Page.
type Option func(*Page)

// WithHTMLOutput prints panels as HTML instead of terminal text.
func WithHTMLOutput(raw bool) Option {
	return func(p *Page) { p.rawHTML = raw }
}

// WithIndicator replaces the default spinner.
func WithIndicator(ind progress.Indicator) Option {
	return func(p *Page) { p.Generate.indicator = ind }
}

// Page is a ui page that writes to a terminal.
type Page struct {
	out    io.Writer
	errOut io.Writer

	mu      sync.Mutex
	rawHTML bool

	Days, Destination, Budget, Preferences *ui.MemInput

	Generate     *SubmitButton
	Result       *ui.MemPanel
	PlanContent  *ui.MemPanel
	Copy         *ui.MemButton
	Error        *ui.MemPanel
	ErrorMessage *ui.MemPanel

	SearchInput   *ui.MemInput
	SearchButton  *ui.MemButton
	SearchResults *ui.MemPanel
}

// NewPage creates a page printing results to out and errors, alerts and the
// spinner to errOut.
func NewPage(out, errOut io.Writer, values Values, opts ...Option) *Page {
	p := &Page{
		out:           out,
		errOut:        errOut,
		Days:          ui.NewInput(values.Days),
		Destination:   ui.NewInput(values.Destination),
		Budget:        ui.NewInput(values.Budget),
		Preferences:   ui.NewInput(values.Preferences),
		Generate:      NewSubmitButton(ui.GenerateLabel, progress.NewIndicator(errOut)),
		Result:        ui.NewPanel(),
		PlanContent:   ui.NewPanel(),
		Copy:          ui.NewButton(ui.CopyLabel, ui.CopyBackground),
		Error:         ui.NewPanel(),
		ErrorMessage:  ui.NewPanel(),
		SearchInput:   ui.NewInput(""),
		SearchButton:  ui.NewButton(ui.SearchLabel, ""),
		SearchResults: ui.NewPanel(),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.Result.OnScroll(func() { p.print(p.out, p.PlanContent.HTML()) })
	p.SearchResults.OnScroll(func() { p.print(p.out, p.SearchResults.HTML()) })
	p.Error.OnScroll(func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		fmt.Fprintf(p.errOut, "✗ %s\n", p.ErrorMessage.Text())
	})
	return p
}

func (p *Page) print(w io.Writer, html string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.rawHTML {
		fmt.Fprintln(w, html)
		return
	}
	fmt.Fprintln(w, strings.TrimRight(render.ToTerminal(html), "\n"))
}

// Alert prints a message to the error stream.
func (p *Page) Alert(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprintf(p.errOut, "! %s\n", message)
}

// Elements returns the page's elements for binding a Controller.
func (p *Page) Elements() ui.Elements {
	return ui.Elements{
		Days:          p.Days,
		Destination:   p.Destination,
		Budget:        p.Budget,
		Preferences:   p.Preferences,
		Generate:      p.Generate,
		Result:        p.Result,
		PlanContent:   p.PlanContent,
		Copy:          p.Copy,
		Error:         p.Error,
		ErrorMessage:  p.ErrorMessage,
		SearchInput:   p.SearchInput,
		SearchButton:  p.SearchButton,
		SearchResults: p.SearchResults,
	}
}

// SubmitButton shows its loading region as a progress indicator.
type SubmitButton struct {
	*ui.MemSubmitButton
	indicator progress.Indicator
}

// NewSubmitButton returns an idle button driving ind.
func NewSubmitButton(idleLabel string, ind progress.Indicator) *SubmitButton {
	return &SubmitButton{
		MemSubmitButton: ui.NewSubmitButton(idleLabel),
		indicator:       ind,
	}
}

func (b *SubmitButton) ShowLoading(text string) {
	b.MemSubmitButton.ShowLoading(text)
	b.indicator.Start(text)
}

func (b *SubmitButton) ShowIdle() {
	b.indicator.Stop()
	b.MemSubmitButton.ShowIdle()
}
