package prompt

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/custodia-labs/credcascade/internal/core/domain"
	"github.com/custodia-labs/credcascade/internal/core/ports/driven"
)

// Ensure Form implements the interface.
var _ driven.Prompter = Form{}

var runFormInput = func(title string, hidden bool, value *string) error {
	field := huh.NewInput().
		Title(title).
		Value(value)
	if hidden {
		field.EchoMode(huh.EchoModePassword)
	}
	return field.Run()
}

// Form asks with a huh input field.
type Form struct{}

// Ask shows message as the field title; hidden fields are masked.
func (Form) Ask(message string, opts domain.PromptOptions) (string, error) {
	if opts.Mode == domain.PromptDisabled {
		return "", ErrDisabled
	}
	var value string
	title := strings.TrimSuffix(strings.TrimSpace(message), ":")
	if err := runFormInput(title, opts.Mode == domain.PromptHidden, &value); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return value, nil
}
