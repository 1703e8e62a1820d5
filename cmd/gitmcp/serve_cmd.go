package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"

	"github.com/mark3labs/mcp-go/server"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/natefinch/lumberjack.v2"

	"gitmcp.dev/gitmcp/internal/config"
	"gitmcp.dev/gitmcp/internal/gitops"
	"gitmcp.dev/gitmcp/internal/log"
	"gitmcp.dev/gitmcp/internal/tools"
)

func newServeCmd() *cobra.Command {
	var (
		logFile   string
		noLogFile bool
	)

	cmd := &cobra.Command{
		Use:     "serve",
		Short:   "Serve the tool catalog on stdio",
		GroupID: GroupServer,
		Args:    cobra.NoArgs,
		Long: `Serve the git tool catalog to a calling agent over stdio.

Stdout carries the protocol stream, so diagnostics go to a rotating
log file (and to stderr when stderr is an interactive terminal).
The server exits when the agent closes stdin or on SIGINT/SIGTERM.`,
		Example: `  gitmcp serve                          # Serve on stdio
  gitmcp serve --log-file /tmp/gitmcp.log
  gitmcp serve --no-log-file -v         # Diagnostics to stderr only`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			sink, closeSink, err := logSink(logFile, noLogFile)
			if err != nil {
				return err
			}
			defer closeSink()

			logger := log.New(sink, verbose, quiet)
			ctx = log.WithLogger(ctx, logger)

			d := newDispatcher()
			s := tools.NewServer(d, version)

			logger.Printf("gitmcp %s serving %d operations (git_bin=%s timeout=%s)\n",
				version, len(gitops.All()), d.GitBin, cfg.Timeout)

			stdio := server.NewStdioServer(s)
			stdio.SetErrorLogger(stdlog.New(sink, "", stdlog.LstdFlags))
			stdio.SetContextFunc(func(reqCtx context.Context) context.Context {
				return log.WithLogger(reqCtx, logger)
			})

			err = stdio.Listen(ctx, os.Stdin, os.Stdout)
			if err != nil && ctx.Err() == nil {
				return fmt.Errorf("serve: %w", err)
			}
			logger.Println("gitmcp shutting down")
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Log file path (overrides config)")
	cmd.Flags().BoolVar(&noLogFile, "no-log-file", false, "Disable the log file")
	return cmd
}

// logSink builds the diagnostic writer for serve mode: a rotating log
// file, mirrored to stderr when stderr is a terminal.
func logSink(override string, noFile bool) (io.Writer, func(), error) {
	var sinks []io.Writer
	closeSink := func() {}

	if !noFile {
		path := override
		if path == "" {
			path = cfg.Log.File
		}
		if path == "" {
			p, err := config.DefaultLogPath()
			if err != nil {
				return nil, nil, err
			}
			path = p
		}
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    cfg.Log.MaxSize,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAge:     cfg.Log.MaxAge,
			Compress:   cfg.Log.Compress,
		}
		sinks = append(sinks, rotating)
		closeSink = func() { rotating.Close() }
	}

	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		sinks = append(sinks, os.Stderr)
	}

	switch len(sinks) {
	case 0:
		return io.Discard, closeSink, nil
	case 1:
		return sinks[0], closeSink, nil
	default:
		return io.MultiWriter(sinks...), closeSink, nil
	}
}
