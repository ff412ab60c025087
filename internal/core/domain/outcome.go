package domain

// Outcome is the result of a successful Get.
//
// A successful Get does not imply complete credentials: when prompting is
// disabled and no helper answered, Username and Password stay nil. Callers
// must check Complete before using the credentials.
type Outcome struct {
	Username *string
	Password *string
	// Quit is true when a helper asked to stop.
	Quit bool
	// Next is the full resulting context, used to store or erase the
	// credentials once they were tried.
	Next *Context
}

// Complete reports whether both username and password were resolved.
func (o *Outcome) Complete() bool {
	return o.Username != nil && o.Password != nil
}
