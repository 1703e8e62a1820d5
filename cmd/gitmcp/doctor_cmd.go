package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	execcmd "gitmcp.dev/gitmcp/internal/cmd"
	"gitmcp.dev/gitmcp/internal/config"
	"gitmcp.dev/gitmcp/internal/gitops"
	"gitmcp.dev/gitmcp/internal/output"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose setup issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose setup issues before wiring gitmcp into an agent.

Checks:
- The configured git binary exists and runs
- The config file parses (if present)
- default_repo points at a git repository (if set)
- The log directory is writable`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)
			var issues int

			out.Println("Running diagnostics...")
			out.Println()

			// Check the git binary
			if err := gitops.CheckGit(cfg.GitBin); err != nil {
				out.Printf("❌ Git not found: %v\n", err)
				issues++
			} else if version, err := execcmd.OutputContext(ctx, "", cfg.GitBin, "--version"); err != nil {
				out.Printf("❌ Git failed to run: %v\n", err)
				issues++
			} else {
				out.Printf("✓ %s\n", strings.TrimSpace(string(version)))
			}

			// Check the config file
			path, err := config.Path()
			if err != nil {
				out.Printf("❌ Cannot resolve config path: %v\n", err)
				issues++
			} else if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
				out.Printf("⚠ No config file at %s (defaults in effect, run 'gitmcp config init')\n", path)
			} else if _, loadErr := config.LoadFrom(path); loadErr != nil {
				out.Printf("❌ Config invalid: %v\n", loadErr)
				issues++
			} else {
				out.Printf("✓ Config loaded from %s\n", path)
			}

			// Check default_repo
			if cfg.DefaultRepo != "" {
				if fi, err := os.Stat(cfg.DefaultRepo); err != nil || !fi.IsDir() {
					out.Printf("❌ default_repo does not exist: %s\n", cfg.DefaultRepo)
					issues++
				} else if _, err := os.Stat(filepath.Join(cfg.DefaultRepo, ".git")); err != nil {
					out.Printf("⚠ default_repo is not a git repository: %s\n", cfg.DefaultRepo)
				} else {
					out.Printf("✓ default_repo: %s\n", cfg.DefaultRepo)
				}
			}

			// Check the log directory is writable
			logFile := cfg.Log.File
			if logFile == "" {
				if p, err := config.DefaultLogPath(); err == nil {
					logFile = p
				}
			}
			if logFile != "" {
				dir := filepath.Dir(logFile)
				if err := os.MkdirAll(dir, 0755); err != nil {
					out.Printf("❌ Log directory not writable: %v\n", err)
					issues++
				} else if f, err := os.CreateTemp(dir, ".gitmcp-doctor-*"); err != nil {
					out.Printf("❌ Log directory not writable: %v\n", err)
					issues++
				} else {
					f.Close()
					os.Remove(f.Name())
					out.Printf("✓ Log directory writable: %s\n", dir)
				}
			}

			out.Println()
			if issues > 0 {
				out.Printf("Found %d issue(s)\n", issues)
				return fmt.Errorf("%d issues found", issues)
			}

			out.Println("All checks passed")
			return nil
		},
	}
}
