// Package domain defines the core types of the credential cascade.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Context: The credential record being resolved
//   - Action: Get, Store or Erase together with its Context
//   - Outcome: The result of a Get
//   - Program: An external credential helper
//   - PromptOptions: How missing fields are asked for
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
