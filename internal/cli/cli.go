// Package cli wires the configuration layer to the three hosts of the
// header: the terminal preview, the HTTP server and the one-shot renderer.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/header-menu/internal/app"
	"github.com/atomicstack/header-menu/internal/config"
	"github.com/atomicstack/header-menu/internal/logging"
	"github.com/spf13/cobra"
)

// Version is set via -ldflags.
var Version = "dev"

// Exit codes.
const (
	ExitOK     = 0
	ExitError  = 1
	ExitConfig = 2
)

// exitError carries a specific exit code out of a RunE handler.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func configError(err error) error {
	return &exitError{code: ExitConfig, err: err}
}

// hosts are the entry points the commands hand off to.
type hosts struct {
	run    func(app.Config) error
	serve  func(context.Context, app.Config, config.Config) error
	render func(io.Writer, app.Config) error
}

var defaultHosts = hosts{
	run: app.Run,
	serve: func(ctx context.Context, cfg app.Config, full config.Config) error {
		return app.Serve(ctx, cfg, full.Server)
	},
	render: app.Render,
}

// NewRootCommand builds the command tree. The root command runs the
// terminal preview.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultHosts)
}

func newRootCommand(h hosts) *cobra.Command {
	root := &cobra.Command{
		Use:           "header-menu",
		Short:         "Preview and serve the responsive application header",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			return h.run(cfg.App)
		},
	}
	config.RegisterFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return configError(err)
	})

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve the header model as JSON over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			return h.serve(cmd.Context(), cfg.App, cfg)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "render",
		Short: "Print one header pass as JSON or a text outline",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolve(cmd)
			if err != nil {
				return err
			}
			return h.render(cmd.OutOrStdout(), cfg.App)
		},
	})
	return root
}

type argvKey struct{}

// argvFrom returns the arguments execute was called with.
func argvFrom(ctx context.Context) []string {
	if ctx == nil {
		return nil
	}
	argv, _ := ctx.Value(argvKey{}).([]string)
	return argv
}

// resolve loads and validates configuration for cmd, then configures
// logging and traces the startup context.
func resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromFlags(cmd.Flags(), argvFrom(cmd.Context()))
	if err != nil {
		return config.Config{}, configError(err)
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, configError(err)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)
	traceStartup(cmd.Name(), cfg)
	return cfg, nil
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string) int {
	config.LoadDotEnv()
	return execute(ctx, NewRootCommand(), args, os.Stdout, os.Stderr)
}

func execute(ctx context.Context, root *cobra.Command, args []string, stdout, stderr io.Writer) int {
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)
	ctx = context.WithValue(ctx, argvKey{}, append([]string(nil), args...))
	err := root.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	var exitErr *exitError
	if errors.As(err, &exitErr) && exitErr.code == ExitConfig {
		fmt.Fprintf(stderr, "Configuration error: %v\n", exitErr.err)
		return exitErr.code
	}
	logging.Error(err)
	fmt.Fprintf(stderr, "Error: %v\n", err)
	return ExitError
}
