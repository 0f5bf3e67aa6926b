package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/christoph-blessing/sinzlab-tools/internal/config"
	"github.com/christoph-blessing/sinzlab-tools/internal/ui"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter config file",
	Long: `Write a commented starter ` + config.ConfigFileName + ` to the current
directory. Edit it to list your hosts, shared domain suffix, and
SSH user.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(config.ConfigFileName, configInitForce)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		fmt.Printf("user:    %s\n", app.cfg.User)
		fmt.Printf("common:  %s\n", app.cfg.Common)
		fmt.Printf("timeout: %s\n", app.cfg.Timeout)
		fmt.Printf("color:   %s\n", app.cfg.Output.Color)
		fmt.Println("hosts:")
		for _, host := range app.cfg.Resolve(hostsFlag) {
			fmt.Printf("  %s\n", host)
		}
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "Overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(path string, force bool) error {
	cfg := config.DefaultConfig()
	if err := config.Write(cfg, path, force); err != nil {
		return err
	}
	fmt.Printf("%s Created %s\n", ui.SymbolSuccess, path)
	return nil
}
