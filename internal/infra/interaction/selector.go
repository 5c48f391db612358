// Where: internal/infra/interaction/selector.go
// What: Interactive selection helpers using the huh library.
// Why: Provide keyboard-based folder and component selection.
package interaction

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/Newmi1988/environmental/internal/domain/failure"
)

var runInputPrompt = func(title string, suggestions []string, input *string) error {
	field := huh.NewInput().
		Title(title).
		Suggestions(suggestions).
		Value(input)
	if len(suggestions) > 0 {
		field.Placeholder(suggestions[0])
	}
	return field.Run()
}

var runSelectPrompt = func(title string, options []huh.Option[string], selected *string) error {
	return huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

var runMultiSelectPrompt = func(title string, options []huh.Option[string], selected *[]string) error {
	return huh.NewMultiSelect[string]().
		Title(title).
		Options(options...).
		Value(selected).
		Run()
}

// HuhPrompter implements Prompter using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title string, suggestions []string) (string, error) {
	var input string
	if err := runInputPrompt(title, suggestions, &input); err != nil {
		return "", wrapPromptError("prompt input", err)
	}
	return input, nil
}

func (p HuhPrompter) Select(title string, options []string) (string, error) {
	var selected string
	if err := runSelectPrompt(title, huhOptions(options), &selected); err != nil {
		return "", wrapPromptError("prompt select", err)
	}
	return selected, nil
}

// MultiSelect returns the chosen options in option order.
// An empty option list returns no selection without prompting.
func (p HuhPrompter) MultiSelect(title string, options []string) ([]string, error) {
	if len(options) == 0 {
		return []string{}, nil
	}
	var selected []string
	if err := runMultiSelectPrompt(title, huhOptions(options), &selected); err != nil {
		return nil, wrapPromptError("prompt multi-select", err)
	}
	return orderLike(options, selected), nil
}

func huhOptions(options []string) []huh.Option[string] {
	out := make([]huh.Option[string], len(options))
	for i, opt := range options {
		out[i] = huh.NewOption(opt, opt)
	}
	return out
}

func orderLike(options, selected []string) []string {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}
	out := make([]string, 0, len(selected))
	for _, opt := range options {
		if chosen[opt] {
			out = append(out, opt)
			delete(chosen, opt)
		}
	}
	return out
}

func wrapPromptError(op string, err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return fmt.Errorf("%w: %s: %w", failure.ErrSelectionCancelled, op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
