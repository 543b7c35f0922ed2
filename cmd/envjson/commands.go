package main

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-envjson/internal/app"
	"github.com/MKhiriev/go-envjson/internal/launcher"
	"github.com/MKhiriev/go-envjson/internal/watcher"
)

func (c *cli) resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved variables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			return a.Print(cmd.Context(), c.out)
		},
	}
}

func (c *cli) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the declarations without printing them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := c.newApp()
			if err != nil {
				return err
			}
			return a.Check(cmd.Context())
		},
	}
}

func (c *cli) execCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exec -- COMMAND [ARGS...]",
		Short: "Run a command in the resolved environment",
		Long: `Resolve the declarations, then replace envjson with COMMAND. The command
sees the environment as it stands after resolution, including defaults and
mode overrides written back for undefined variables.

Exits with 127 when COMMAND cannot be found and 126 when it is not
executable.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := c.newApp(app.WithLauncher(launcher.New()))
			if err != nil {
				return err
			}
			return a.Exec(cmd.Context(), args[0], args[1:])
		},
	}
}

func (c *cli) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print the resolved variables and again after every change",
		Long: `Print the resolved variables, then watch the declarations file and print
them again after every change. Each pass starts from the environment envjson
was started with. A failing pass is logged and watching continues until
SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := watcher.New(c.cfg.Resolver.FilePath, c.cfg.Watch.Debounce, c.logger.GetChildLogger("watcher"))
			a, err := c.newApp(app.WithWatcher(w))
			if err != nil {
				return err
			}
			return a.Watch(cmd.Context(), c.out)
		},
	}
}
