// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-envjson/internal/app"
	"github.com/MKhiriev/go-envjson/internal/config"
	"github.com/MKhiriev/go-envjson/internal/envfile"
	"github.com/MKhiriev/go-envjson/internal/launcher"
	"github.com/MKhiriev/go-envjson/internal/logger"
)

// cli carries state shared by the subcommands of one invocation.
type cli struct {
	out    io.Writer
	cfg    *config.StructuredConfig
	logger *logger.Logger
}

func run(ctx context.Context, args []string) int {
	return execute(ctx, args, os.Stdout)
}

func execute(ctx context.Context, args []string, out io.Writer) int {
	c := &cli{
		out:    out,
		logger: logger.NewLogger("envjson", config.DefaultLogLevel),
	}

	root := c.rootCmd()
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	c.logger.Error().Err(err).Msg("envjson failed")
	return exitCode(err)
}

// exitCode maps a command error onto the process exit status. Only failures
// to start a child command use the 126/127 convention.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, app.ErrLaunch):
		return launcher.ExitCode(err)
	default:
		return 1
	}
}

func (c *cli) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "envjson",
		Short: "Resolve env.json declarations against the environment",
		Long: `envjson reads variable declarations from env.json, merges them with the
process environment and the active mode, coerces every value to its declared
or inferred type and reports the first invalid or missing variable.

Values are taken, in order of precedence, from the environment, from the
override for the active mode (APP_ENV by default) and from the default.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.loadConfig,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		c.resolveCmd(),
		c.checkCmd(),
		c.execCmd(),
		c.watchCmd(),
		c.versionCmd(),
	)
	return root
}

func (c *cli) loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.GetStructuredConfig(cmd.Flags())
	if err != nil {
		return err
	}
	c.cfg = cfg

	if cfg.Log.Pretty {
		c.logger = logger.NewConsoleLogger("envjson", cfg.Log.Level)
	} else {
		c.logger = logger.NewLogger("envjson", cfg.Log.Level)
	}

	cmd.SetContext(c.logger.WithContext(cmd.Context()))
	c.logger.Debug().Any("config", cfg).Msg("received configs")
	return nil
}

func (c *cli) newApp(opts ...app.Option) (*app.App, error) {
	loader := envfile.NewLoader(c.logger.GetChildLogger("envfile"))
	return app.New(c.cfg, loader, c.logger, nil, opts...)
}
