// Package prompt provides driven.Prompter implementations.
//
// Adapters:
//   - Terminal: line-based prompt on the controlling terminal, masking
//     hidden input with golang.org/x/term
//   - Form: a huh input field, for users who prefer a styled prompt
//   - Askpass: runs an askpass program (GIT_ASKPASS, SSH_ASKPASS)
//   - Dispatcher: routes to Askpass when the options name a program
//
// Prompts never read from stdin of the process when a terminal is
// available, since stdin carries the credential request.
package prompt
