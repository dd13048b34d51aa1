// Package core hosts commands in a bubbletea program.
//
// Allowed here:
// - the command registry (palette search, scoped execution, suggestions)
// - the key registry and its configuration overrides
// - the root model: button focus, palette state, status and footer
//
// Not allowed here:
// - view models and their commands (they live with their owners)
// - low-level drawing primitives (widgets)
package core
