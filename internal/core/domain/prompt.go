package domain

// PromptMode controls whether and how the user is asked for missing fields.
type PromptMode int

const (
	// PromptDisabled never prompts.
	PromptDisabled PromptMode = iota
	// PromptVisible echoes input, used for usernames.
	PromptVisible
	// PromptHidden masks input, used for passwords.
	PromptHidden
)

// String returns the lower-case name of the mode.
func (m PromptMode) String() string {
	switch m {
	case PromptDisabled:
		return "disabled"
	case PromptVisible:
		return "visible"
	case PromptHidden:
		return "hidden"
	default:
		return "unknown"
	}
}

// PromptOptions configures interactive prompting.
type PromptOptions struct {
	Mode PromptMode
	// AskpassProgram, when set, is run with the prompt message as its only
	// argument and its first output line is used as the answer.
	AskpassProgram string
}

// WithMode returns a copy of o using mode.
func (o PromptOptions) WithMode(mode PromptMode) PromptOptions {
	o.Mode = mode
	return o
}
