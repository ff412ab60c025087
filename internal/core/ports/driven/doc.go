// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - HelperInvoker: Runs an external credential helper
//   - URLParser: Splits credential URLs into protocol, host and path
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - Prompter: Interactive fallback. Without it, missing fields stay empty.
//   - HistoryStore: Invocation audit trail. Without it, nothing is recorded.
//   - ConfigStore: Application configuration. Without it, defaults apply.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
