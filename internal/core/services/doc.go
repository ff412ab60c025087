// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The Cascade is the heart of the module: it drives the helper list,
// merges partial answers and falls back to prompting.
package services
