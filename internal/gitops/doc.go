// Package gitops translates typed version-control requests into git
// command-line invocations and executes them.
//
// Each operation is a tagged request type carrying only its own fields.
// Composition produces a discrete argument vector that is handed to
// [os/exec] directly, never to a shell, so user-supplied values cannot
// alter token boundaries. Validation and composition failures are
// raised before any process is spawned; process failures carry git's
// own diagnostic text.
package gitops
