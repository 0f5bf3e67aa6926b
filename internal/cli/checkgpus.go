package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/christoph-blessing/sinzlab-tools/internal/record"
)

var checkGPUsCmd = &cobra.Command{
	Use:   "check-gpus",
	Short: "Show GPU utilization across all hosts",
	Long: `Query every configured host with nvidia-smi and render the
merged results as one table, sorted by host.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		return runCheckGPUs(cmd.Context(), app)
	},
}

func init() {
	rootCmd.AddCommand(checkGPUsCmd)
}

func runCheckGPUs(ctx context.Context, app *app) error {
	return app.runTable(ctx, record.GPUCommand(), record.GPUFields,
		func(ctx context.Context, host, stdout string) []record.Record {
			return record.ParseGPU(stdout)
		})
}
