package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"gitmcp.dev/gitmcp/internal/config"
	"gitmcp.dev/gitmcp/internal/gitops"
	"gitmcp.dev/gitmcp/internal/log"
	"gitmcp.dev/gitmcp/internal/output"
)

var (
	// Global flags
	verbose bool
	quiet   bool

	// Shared state injected into commands
	cfg config.Config
)

// Command group IDs for organizing help output
const (
	GroupServer  = "server"
	GroupUtility = "utility"
	GroupConfig  = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gitmcp",
	Short: "Expose git operations as callable tools for agents",
	Long: `gitmcp is a tool server that exposes a fixed set of git operations
to calling agents over the Model Context Protocol, executing each one
by delegating to the installed git CLI and relaying its output.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Flags are parsed by now; attach the logger here so --verbose
		// and --quiet take effect.
		logger := log.New(os.Stderr, verbose, quiet)
		cmd.SetContext(log.WithLogger(cmd.Context(), logger))

		// Skip the git check for commands that don't spawn it
		if skipsGitCheck(cmd) {
			return nil
		}

		return gitops.CheckGit(cfg.GitBin)
	},
	// Run is not set - shows help when no subcommand provided
}

// skipsGitCheck reports whether the command (or any command above it)
// never spawns git. Walking the parents keeps "config init" exempt
// without exempting an unrelated command that happens to share a name
// with a subcommand.
func skipsGitCheck(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "completion", "__complete", "help", "config", "doctor":
			return true
		}
	}
	return false
}

// newDispatcher builds the dispatcher from the loaded configuration.
func newDispatcher() *gitops.Dispatcher {
	return &gitops.Dispatcher{
		GitBin:  cfg.GitBin,
		Dir:     cfg.DefaultRepo,
		Timeout: cfg.Timeout,
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Load config
	loadedCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	cfg = loadedCfg

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data)
	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all diagnostic output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupServer, Title: "Server Commands:"},
		&cobra.Group{ID: GroupUtility, Title: "Utility Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	rootCmd.AddCommand(newServeCmd())

	rootCmd.AddCommand(newToolsCmd())
	rootCmd.AddCommand(newCallCmd())

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDoctorCmd())
}
