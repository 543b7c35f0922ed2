package main

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-envjson/models"
)

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// version works without a valid configuration
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(*cobra.Command, []string) {
			printBuildInfo(c.out, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		},
	}
}

func printBuildInfo(w io.Writer, info models.AppBuildInfo) {
	fmt.Fprintf(w, "Build version: %s\n", valueOrNA(info.BuildVersion()))
	fmt.Fprintf(w, "Build date: %s\n", valueOrNA(info.BuildDate()))
	fmt.Fprintf(w, "Build commit: %s\n", valueOrNA(info.BuildCommit()))
	fmt.Fprintf(w, "Go version: %s\n", runtime.Version())
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
