// Package cli implements the sinzlab-tools command tree. Commands are thin
// cobra shells around testable functions that take their collaborators as
// parameters.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Global flags shared by every subcommand.
var (
	hostsFlag   string
	configFlag  string
	noColorFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "sinzlab-tools",
	Short: "Run fleet-wide commands on the lab hosts",
	Long: `sinzlab-tools fans shell commands out over SSH to the configured lab
hosts and merges the per-host output into one aligned table.

Examples:
  sinzlab-tools check-gpus
  sinzlab-tools docker ps -a
  sinzlab-tools --hosts gpu1,gpu2 docker pull nvidia/cuda:12.2.0-base`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&hostsFlag, "hosts", "",
		"run on these comma-separated hosts instead of the configured fleet")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"path to config file (default .sinzlab.yaml, then ~/.config/sinzlab-tools/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false,
		"disable colored output")
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
