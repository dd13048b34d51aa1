// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing helpers (buttons, boxes, command lists, popup overlay)
//
// Not allowed here:
// - key handling, command execution, scope logic
package widgets
