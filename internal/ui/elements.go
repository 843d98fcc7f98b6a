// Package ui implements the travel-planner form controller against an
// abstract page. A page is any set of elements satisfying the interfaces
// below: the terminal front end prints them, the web front end renders them
// into HTML, and tests inspect them directly.
package ui

import "context"

// Input is a form field.
type Input interface {
	Value() string
}

// Button is a clickable control with a single label region.
type Button interface {
	Label() string
	SetLabel(label string)
	Disabled() bool
	SetDisabled(disabled bool)
	Background() string
	SetBackground(color string)
}

// SubmitButton is a control with separate idle and loading label regions.
type SubmitButton interface {
	SetDisabled(disabled bool)
	ShowLoading(text string)
	ShowIdle()
}

// Panel is a region of the page that can be shown, hidden and filled.
type Panel interface {
	Show()
	Hide()
	Visible() bool
	SetText(text string)
	Text() string
	SetHTML(html string)
	HTML() string
	// ScrollIntoView brings the panel in front of the user.
	ScrollIntoView()
}

// Alerter shows a blocking message to the user.
type Alerter interface {
	Alert(message string)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// Plan-form field names, as submitted by the form.
const (
	FieldDays        = "days"
	FieldDestination = "destination"
	FieldBudget      = "budget"
	FieldPreferences = "preferences"
)

// Elements is the fixed set of page elements the controller binds to. The
// three search elements are optional; search is wired only when all of them
// are present.
type Elements struct {
	Days        Input
	Destination Input
	Budget      Input
	Preferences Input

	Generate SubmitButton

	Result      Panel
	PlanContent Panel
	Copy        Button

	Error        Panel
	ErrorMessage Panel

	SearchInput   Input
	SearchButton  Button
	SearchResults Panel
}
