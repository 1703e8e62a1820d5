package gitops

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"
	"time"

	"gitmcp.dev/gitmcp/internal/log"
)

// runGit spawns one git process and waits for it to exit, returning
// captured stdout. Stdout and stderr are captured separately so the
// protocol payload never mixes with diagnostics.
func runGit(ctx context.Context, bin, dir string, args []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	done := log.FromContext(ctx).Command(dir, bin, args...)
	start := time.Now()

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Dir = dir
	// Cancellation kills only the direct child. A descendant it spawned
	// (credential helper, submodule clone) can keep the output pipes open,
	// and Run would wait on them forever without this bound.
	cmd.WaitDelay = time.Second
	// Never block on an interactive prompt: there is no terminal behind
	// a tool server.
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"GIT_EDITOR=true",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	done(time.Since(start))
	if err != nil {
		execErr := &ExecError{
			GitBin:   bin,
			Args:     args,
			Dir:      dir,
			ExitCode: -1,
			Stderr:   strings.TrimSpace(stderr.String()),
			TimedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
			Err:      err,
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			execErr.ExitCode = exitErr.ExitCode()
		}
		return "", execErr
	}

	return stdout.String(), nil
}
