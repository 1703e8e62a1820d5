// Sentinel errors and error types for gitops.
// Use errors.Is() and errors.As() to check for specific conditions.

package gitops

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the three pre-spawn failure classes.
var (
	// ErrMissingArgument indicates a required request field was omitted.
	ErrMissingArgument = errors.New("missing required argument")

	// ErrInvalidArgument indicates a field carried a value outside its
	// allowed set, or a value that cannot be passed to a process.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrUnknownOp indicates an operation name outside the fixed catalog.
	ErrUnknownOp = errors.New("unknown operation")
)

// UnknownOpError reports a request for an operation not in the catalog.
type UnknownOpError struct {
	Op Op
}

func (e *UnknownOpError) Error() string {
	return fmt.Sprintf("unknown operation %q", string(e.Op))
}

// Is returns true if the target error is ErrUnknownOp.
func (e *UnknownOpError) Is(target error) bool {
	return target == ErrUnknownOp
}

// ArgumentError reports a request that was rejected before any process
// was spawned, either for a missing required field or an invalid value.
type ArgumentError struct {
	Op      Op
	Field   string
	Value   string // empty for missing fields
	Reason  string
	Missing bool
}

func (e *ArgumentError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s: missing required argument %q", e.Op, e.Field)
	}
	if e.Value != "" {
		return fmt.Sprintf("%s: invalid %s %q: %s", e.Op, e.Field, e.Value, e.Reason)
	}
	return fmt.Sprintf("%s: invalid %s: %s", e.Op, e.Field, e.Reason)
}

// Is reports whether target matches the error's validation class.
func (e *ArgumentError) Is(target error) bool {
	if e.Missing {
		return target == ErrMissingArgument
	}
	return target == ErrInvalidArgument
}

func missingArg(op Op, field string) error {
	return &ArgumentError{Op: op, Field: field, Missing: true}
}

func invalidArg(op Op, field, value, reason string) error {
	return &ArgumentError{Op: op, Field: field, Value: value, Reason: reason}
}

// ExecError reports a failed external git invocation: the process could
// not be spawned, timed out, or exited non-zero. Stderr holds git's own
// diagnostic text, trimmed.
type ExecError struct {
	GitBin   string
	Args     []string
	Dir      string
	ExitCode int // -1 when the process never ran
	Stderr   string
	TimedOut bool
	Err      error
}

func (e *ExecError) Error() string {
	if e.TimedOut {
		return fmt.Sprintf("git %s timed out", strings.Join(e.Args, " "))
	}
	// Relay git's own verdict when it produced one.
	if e.Stderr != "" {
		return e.Stderr
	}
	if e.Err != nil {
		return fmt.Sprintf("git %s: %v", strings.Join(e.Args, " "), e.Err)
	}
	return fmt.Sprintf("git %s failed", strings.Join(e.Args, " "))
}

func (e *ExecError) Unwrap() error {
	return e.Err
}
