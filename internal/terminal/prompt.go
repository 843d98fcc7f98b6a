package terminal

import (
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"
)

func required(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", name)
		}
		return nil
	}
}

// PromptPlanFields asks for every plan-form field that is still empty.
// Days and destination are required; budget and preferences may be left
// blank.
func PromptPlanFields(v Values) (Values, error) {
	fields := []struct {
		label    string
		value    *string
		validate promptui.ValidateFunc
	}{
		{"Number of days", &v.Days, required("number of days")},
		{"Destination", &v.Destination, required("destination")},
		{"Budget (optional)", &v.Budget, nil},
		{"Interests (optional)", &v.Preferences, nil},
	}

	for _, f := range fields {
		if *f.value != "" {
			continue
		}
		prompt := promptui.Prompt{
			Label:    f.label,
			Validate: f.validate,
		}
		answer, err := prompt.Run()
		if err != nil {
			return v, fmt.Errorf("%s: %w", strings.ToLower(f.label), err)
		}
		*f.value = answer
	}
	return v, nil
}

// ErrQuit is returned by PromptQuery when the user leaves the search loop.
var ErrQuit = errors.New("quit")

// PromptQuery reads one search query. Ctrl-C, Ctrl-D or "quit" end the loop
// with ErrQuit.
func PromptQuery() (string, error) {
	prompt := promptui.Prompt{Label: "Search (Enter to search, quit to exit)"}
	answer, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", ErrQuit
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "quit" {
		return "", ErrQuit
	}
	return answer, nil
}
