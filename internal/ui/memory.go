package ui

import (
	"context"
	"sync"

	"github.com/ziadkadry99/tripplan/internal/render"
)

// MemInput is an Input holding a fixed value.
type MemInput struct {
	mu    sync.Mutex
	value string
}

// NewInput returns an input pre-filled with value.
func NewInput(value string) *MemInput { return &MemInput{value: value} }

func (i *MemInput) Value() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.value
}

// SetValue replaces the input's value.
func (i *MemInput) SetValue(v string) {
	i.mu.Lock()
	i.value = v
	i.mu.Unlock()
}

// MemButton is an in-memory Button.
type MemButton struct {
	mu         sync.Mutex
	label      string
	background string
	disabled   bool
}

// NewButton returns an enabled button with the given label and background.
func NewButton(label, background string) *MemButton {
	return &MemButton{label: label, background: background}
}

func (b *MemButton) Label() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.label
}

func (b *MemButton) SetLabel(label string) {
	b.mu.Lock()
	b.label = label
	b.mu.Unlock()
}

func (b *MemButton) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

func (b *MemButton) SetDisabled(disabled bool) {
	b.mu.Lock()
	b.disabled = disabled
	b.mu.Unlock()
}

func (b *MemButton) Background() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.background
}

func (b *MemButton) SetBackground(color string) {
	b.mu.Lock()
	b.background = color
	b.mu.Unlock()
}

// MemSubmitButton is an in-memory SubmitButton.
type MemSubmitButton struct {
	mu          sync.Mutex
	idleLabel   string
	loadingText string
	loading     bool
	disabled    bool
}

// NewSubmitButton returns an idle submit button.
func NewSubmitButton(idleLabel string) *MemSubmitButton {
	return &MemSubmitButton{idleLabel: idleLabel}
}

func (b *MemSubmitButton) SetDisabled(disabled bool) {
	b.mu.Lock()
	b.disabled = disabled
	b.mu.Unlock()
}

func (b *MemSubmitButton) ShowLoading(text string) {
	b.mu.Lock()
	b.loading = true
	b.loadingText = text
	b.mu.Unlock()
}

func (b *MemSubmitButton) ShowIdle() {
	b.mu.Lock()
	b.loading = false
	b.mu.Unlock()
}

// Disabled reports whether the button is disabled.
func (b *MemSubmitButton) Disabled() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.disabled
}

// Loading reports whether the loading region is shown.
func (b *MemSubmitButton) Loading() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.loading
}

// VisibleLabel returns the text of whichever label region is shown.
func (b *MemSubmitButton) VisibleLabel() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.loading {
		return b.loadingText
	}
	return b.idleLabel
}

// MemPanel is an in-memory Panel. Setting HTML also updates Text with the
// fragment's text content.
type MemPanel struct {
	mu       sync.Mutex
	visible  bool
	text     string
	html     string
	scrolled int
	onScroll func()
}

// NewPanel returns a hidden, empty panel.
func NewPanel() *MemPanel { return &MemPanel{} }

// OnScroll registers fn to run on every ScrollIntoView, after the panel's
// lock is released.
func (p *MemPanel) OnScroll(fn func()) {
	p.mu.Lock()
	p.onScroll = fn
	p.mu.Unlock()
}

func (p *MemPanel) Show() {
	p.mu.Lock()
	p.visible = true
	p.mu.Unlock()
}

func (p *MemPanel) Hide() {
	p.mu.Lock()
	p.visible = false
	p.mu.Unlock()
}

func (p *MemPanel) Visible() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.visible
}

func (p *MemPanel) SetText(text string) {
	p.mu.Lock()
	p.text = text
	p.html = ""
	p.mu.Unlock()
}

func (p *MemPanel) Text() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.text
}

func (p *MemPanel) SetHTML(html string) {
	text := render.TextContent(html)
	p.mu.Lock()
	p.html = html
	p.text = text
	p.mu.Unlock()
}

func (p *MemPanel) HTML() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.html
}

func (p *MemPanel) ScrollIntoView() {
	p.mu.Lock()
	p.scrolled++
	fn := p.onScroll
	p.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Scrolled returns how many times the panel was scrolled into view.
func (p *MemPanel) Scrolled() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scrolled
}

// AlertRecorder is an Alerter that keeps every message.
type AlertRecorder struct {
	mu       sync.Mutex
	messages []string
}

func (a *AlertRecorder) Alert(message string) {
	a.mu.Lock()
	a.messages = append(a.messages, message)
	a.mu.Unlock()
}

// Messages returns a copy of the recorded alerts.
func (a *AlertRecorder) Messages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}

// ClipboardFunc adapts a function to the Clipboard interface.
type ClipboardFunc func(ctx context.Context, text string) error

func (f ClipboardFunc) WriteText(ctx context.Context, text string) error { return f(ctx, text) }

// Page is a complete in-memory page with every element present.
type Page struct {
	Days, Destination, Budget, Preferences *MemInput

	Generate     *MemSubmitButton
	Result       *MemPanel
	PlanContent  *MemPanel
	Copy         *MemButton
	Error        *MemPanel
	ErrorMessage *MemPanel

	SearchInput   *MemInput
	SearchButton  *MemButton
	SearchResults *MemPanel

	Alerts *AlertRecorder
}

// Default labels and colours of a freshly loaded page.
const (
	GenerateLabel    = "Generate Plan"
	SearchLabel      = "Search"
	CopyLabel        = "Copy"
	CopyBackground   = "#6c757d"
	CopiedLabel      = "Copied!"
	CopiedBackground = "#28a745"
)

// NewPage returns a page with empty inputs and default labels.
func NewPage() *Page {
	return &Page{
		Days:          NewInput(""),
		Destination:   NewInput(""),
		Budget:        NewInput(""),
		Preferences:   NewInput(""),
		Generate:      NewSubmitButton(GenerateLabel),
		Result:        NewPanel(),
		PlanContent:   NewPanel(),
		Copy:          NewButton(CopyLabel, CopyBackground),
		Error:         NewPanel(),
		ErrorMessage:  NewPanel(),
		SearchInput:   NewInput(""),
		SearchButton:  NewButton(SearchLabel, ""),
		SearchResults: NewPanel(),
		Alerts:        &AlertRecorder{},
	}
}

// Elements returns the page's elements for binding a Controller.
func (p *Page) Elements() Elements {
	return Elements{
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
