package domain

// ActionKind identifies the operation requested from the helpers.
type ActionKind int

const (
	// ActionGet retrieves credentials.
	ActionGet ActionKind = iota
	// ActionStore persists credentials that were accepted.
	ActionStore
	// ActionErase removes credentials that were rejected.
	ActionErase
)

// String returns the helper protocol verb for the kind.
func (k ActionKind) String() string {
	switch k {
	case ActionGet:
		return "get"
	case ActionStore:
		return "store"
	case ActionErase:
		return "erase"
	default:
		return "unknown"
	}
}

// ParseActionKind maps a helper protocol verb to its kind.
func ParseActionKind(s string) (ActionKind, error) {
	switch s {
	case "get":
		return ActionGet, nil
	case "store":
		return ActionStore, nil
	case "erase":
		return ActionErase, nil
	default:
		return 0, ErrInvalidInput
	}
}

// Action is a request to the cascade together with the credential record it
// operates on. The cascade mutates Context in place.
type Action struct {
	Kind    ActionKind
	Context *Context
}

// Get builds a retrieval action.
func Get(ctx *Context) *Action {
	return &Action{Kind: ActionGet, Context: ctx}
}

// Store builds a store action.
func Store(ctx *Context) *Action {
	return &Action{Kind: ActionStore, Context: ctx}
}

// Erase builds an erase action.
func Erase(ctx *Context) *Action {
	return &Action{Kind: ActionErase, Context: ctx}
}

// IsGet reports whether the action retrieves credentials.
func (a *Action) IsGet() bool {
	return a.Kind == ActionGet
}
