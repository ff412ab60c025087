package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Cascade Errors.

	// ErrParse indicates a credential URL could not be parsed.
	ErrParse = errors.New("credential url could not be parsed")

	// ErrHelperCommunication indicates a helper failed while credentials were
	// being retrieved.
	ErrHelperCommunication = errors.New("credential helper communication failed")

	// ErrPrompt indicates the interactive fallback failed.
	ErrPrompt = errors.New("credential prompt failed")

	// Helper Errors.

	// ErrHelperUnusable indicates a helper could not be run at all, e.g. it is
	// not installed or exited with a failure status. The cascade skips such
	// helpers.
	ErrHelperUnusable = errors.New("credential helper unusable")
)

// ParseError reports a malformed URL found while destructuring a Context.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing url %q: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Is matches ErrParse.
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// HelperCommunicationError reports a fatal helper failure during Get.
type HelperCommunicationError struct {
	Program string
	Err     error
}

func (e *HelperCommunicationError) Error() string {
	return fmt.Sprintf("credential helper %q: %v", e.Program, e.Err)
}

func (e *HelperCommunicationError) Unwrap() error { return e.Err }

// Is matches ErrHelperCommunication.
func (e *HelperCommunicationError) Is(target error) bool { return target == ErrHelperCommunication }

// PromptError reports a failed interactive prompt. Prompt holds the literal
// question shown to the user.
type PromptError struct {
	Prompt string
	Err    error
}

func (e *PromptError) Error() string {
	return fmt.Sprintf("prompting %q: %v", e.Prompt, e.Err)
}

func (e *PromptError) Unwrap() error { return e.Err }

// Is matches ErrPrompt.
func (e *PromptError) Is(target error) bool { return target == ErrPrompt }
