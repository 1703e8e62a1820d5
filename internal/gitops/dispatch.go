package gitops

import (
	"context"
	"strings"
	"time"
)

// Dispatcher executes requests by delegating to the git CLI.
// The zero value runs "git" from PATH in the process working directory
// with no timeout.
type Dispatcher struct {
	// GitBin is the git executable to run. Defaults to "git".
	GitBin string

	// Dir is the working directory for requests that carry none.
	// Empty means the process's own working directory.
	Dir string

	// Timeout bounds each invocation. Zero waits indefinitely.
	Timeout time.Duration
}

// defaultMessages replace empty-but-successful stdout, per operation.
// Success path only; failures always carry git's diagnostic text.
var defaultMessages = map[Op]string{
	OpInit:     "Repository initialized",
	OpClone:    "Repository cloned",
	OpStatus:   "Working tree clean",
	OpAdd:      "Files added to staging area",
	OpCommit:   "Changes committed",
	OpPush:     "Changes pushed",
	OpPull:     "Already up to date",
	OpBranch:   "Branch operation completed",
	OpCheckout: "Branch checked out",
	OpMerge:    "Merge completed",
	OpLog:      "No commits found",
	OpDiff:     "No differences found",
	OpStash:    "Stash operation completed",
	OpRemote:   "Remote operation completed",
	OpTag:      "Tag operation completed",
	OpReset:    "Reset completed",
}

// DefaultMessage returns the success text used when git printed nothing.
func DefaultMessage(op Op) string {
	return defaultMessages[op]
}

// Execute runs one request as a single git invocation and returns the
// captured stdout, or the default message for the operation when git
// printed nothing. Validation and composition errors are returned
// before any process is spawned; process failures come back as an
// *ExecError carrying git's stderr.
func (d *Dispatcher) Execute(ctx context.Context, req Request) (string, error) {
	args, err := BuildArgs(req)
	if err != nil {
		return "", err
	}

	dir := req.workDir()
	if dir == "" {
		dir = d.Dir
	}
	if strings.ContainsRune(dir, 0) {
		return "", invalidArg(req.Op(), "repo", "", "contains NUL byte")
	}

	bin := d.GitBin
	if bin == "" {
		bin = "git"
	}

	if d.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.Timeout)
		defer cancel()
	}

	out, err := runGit(ctx, bin, dir, args)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(out) == "" {
		return DefaultMessage(req.Op()), nil
	}
	return out, nil
}
