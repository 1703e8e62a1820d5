// Package cmd provides helpers for executing external commands with proper
// error handling.
//
// This package wraps [os/exec.Cmd] to capture stderr and include it in error
// messages, making command failures more informative for users.
//
// # Usage
//
//	if err := cmd.RunContext(ctx, "", "git", "--version"); err != nil {
//	    // err contains stderr output if available
//	    return fmt.Errorf("git failed: %w", err)
//	}
//
//	// For commands that return output:
//	output, err := cmd.OutputContext(ctx, repoDir, "git", "status")
//	if err != nil {
//	    // err contains stderr output
//	}
//
// # Design Notes
//
// gitmcp shells out to the git CLI rather than using a Go git library.
// This keeps the server a pure relay and ensures compatibility with user
// configurations (SSH keys, credential helpers, hooks, etc.).
package cmd
