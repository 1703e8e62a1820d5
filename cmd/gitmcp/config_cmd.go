package main

import (
	"github.com/spf13/cobra"

	"gitmcp.dev/gitmcp/internal/config"
	"gitmcp.dev/gitmcp/internal/output"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		GroupID: GroupConfig,
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a default config file",
		Args:  cobra.NoArgs,
		Long:  `Create a commented config file at ~/.config/gitmcp/config.toml.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.Init(force)
			if err != nil {
				return err
			}
			output.FromContext(cmd.Context()).Printf("Created config at %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.FromContext(cmd.Context())

			out.Printf("git_bin      = %q\n", cfg.GitBin)
			out.Printf("default_repo = %q\n", cfg.DefaultRepo)
			out.Printf("timeout      = %q\n", cfg.Timeout)
			logFile := cfg.Log.File
			if logFile == "" {
				if p, err := config.DefaultLogPath(); err == nil {
					logFile = p + " (default)"
				}
			}
			out.Printf("log.file     = %s\n", logFile)
			out.Printf("log.max_size = %d, max_backups = %d, max_age = %d, compress = %v\n",
				cfg.Log.MaxSize, cfg.Log.MaxBackups, cfg.Log.MaxAge, cfg.Log.Compress)
			return nil
		},
	}
}
