package domain

import "time"

// InvocationStatus summarises how a cascade invocation ended.
type InvocationStatus string

const (
	// StatusComplete means a Get resolved both username and password.
	StatusComplete InvocationStatus = "complete"
	// StatusPartial means a Get finished without complete credentials.
	StatusPartial InvocationStatus = "partial"
	// StatusQuit means a helper asked to stop.
	StatusQuit InvocationStatus = "quit"
	// StatusDone means a Store or Erase ran through all helpers.
	StatusDone InvocationStatus = "done"
	// StatusFailed means the invocation returned an error.
	StatusFailed InvocationStatus = "failed"
)

// Invocation is an audit record of one cascade run.
// It never carries usernames or passwords.
type Invocation struct {
	ID        string           `json:"id"`
	Action    string           `json:"action"`
	Protocol  string           `json:"protocol,omitempty"`
	Host      string           `json:"host,omitempty"`
	Path      string           `json:"path,omitempty"`
	Status    InvocationStatus `json:"status"`
	Error     string           `json:"error,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}
