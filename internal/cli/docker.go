package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/christoph-blessing/sinzlab-tools/internal/errors"
	"github.com/christoph-blessing/sinzlab-tools/internal/record"
	"github.com/christoph-blessing/sinzlab-tools/internal/util"
)

var (
	psAllFlag     bool
	psFilterFlags []string
	psLastFlag    int
	psLatestFlag  bool

	loginUsernameFlag string
	loginPasswordFlag string
)

var dockerCmd = &cobra.Command{
	Use:   "docker",
	Short: "Run docker commands across all hosts",
}

var dockerPSCmd = &cobra.Command{
	Use:   "ps",
	Short: "List containers on all hosts",
	Long: `List containers on every configured host as one merged table.
Each row carries a derived GPU column, read from the container's
NVIDIA_VISIBLE_DEVICES environment variable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		opts := record.PSOptions{
			All:     psAllFlag,
			Filters: psFilterFlags,
			Last:    psLastFlag,
			Latest:  psLatestFlag,
		}
		return runDockerPS(cmd.Context(), app, opts)
	},
}

var dockerLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to a docker registry on all hosts",
	Long: `Log in to the default docker registry on every configured host.
Credentials not supplied via flags are prompted for interactively.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		username := loginUsernameFlag
		password := loginPasswordFlag
		if err := promptCredentials(&username, &password); err != nil {
			return err
		}

		app, err := newApp()
		if err != nil {
			return err
		}
		return runDockerLogin(cmd.Context(), app, username, password)
	},
}

var dockerPullCmd = &cobra.Command{
	Use:   "pull IMAGE",
	Short: "Pull an image on all hosts",
	Long: `Pull an image on every configured host. Everything after "pull"
is forwarded to the remote docker verbatim, so docker pull flags
like --platform pass through.`,
	Args:               cobra.MinimumNArgs(1),
	DisableFlagParsing: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
			return cmd.Help()
		}
		app, err := newApp()
		if err != nil {
			return err
		}
		return runDockerPull(cmd.Context(), app, args)
	},
}

func init() {
	dockerPSCmd.Flags().BoolVarP(&psAllFlag, "all", "a", false, "Show all containers (default shows just running)")
	dockerPSCmd.Flags().StringArrayVarP(&psFilterFlags, "filter", "f", nil, "Filter output based on conditions provided")
	dockerPSCmd.Flags().IntVarP(&psLastFlag, "last", "n", 0, "Show n last created containers (includes all states)")
	dockerPSCmd.Flags().BoolVarP(&psLatestFlag, "latest", "l", false, "Show the latest created container (includes all states)")

	dockerLoginCmd.Flags().StringVarP(&loginUsernameFlag, "username", "u", "", "Registry username")
	dockerLoginCmd.Flags().StringVarP(&loginPasswordFlag, "password", "p", "", "Registry password")

	dockerCmd.AddCommand(dockerPSCmd)
	dockerCmd.AddCommand(dockerLoginCmd)
	dockerCmd.AddCommand(dockerPullCmd)
	rootCmd.AddCommand(dockerCmd)
}

func runDockerPS(ctx context.Context, app *app, opts record.PSOptions) error {
	return app.runTable(ctx, record.PSCommand(opts), record.ContainerTableFields(),
		func(ctx context.Context, host, stdout string) []record.Record {
			return record.ParseContainers(ctx, app.runner, host, stdout)
		})
}

func runDockerLogin(ctx context.Context, app *app, username, password string) error {
	command := fmt.Sprintf("docker login -u %s -p %s", util.ShellQuote(username), util.ShellQuote(password))
	return app.runStatus(ctx, command)
}

func runDockerPull(ctx context.Context, app *app, args []string) error {
	return app.runStatus(ctx, "docker pull "+strings.Join(args, " "))
}

// promptCredentials fills in whichever of username and password the flags
// left empty.
func promptCredentials(username, password *string) error {
	var fields []huh.Field
	if *username == "" {
		fields = append(fields, huh.NewInput().
			Title("Username").
			Value(username).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("username is required")
				}
				return nil
			}))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Password").
			EchoMode(huh.EchoModePassword).
			Value(password).
			Validate(func(s string) error {
				if s == "" {
					return fmt.Errorf("password is required")
				}
				return nil
			}))
	}
	if len(fields) == 0 {
		return nil
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	if err := form.Run(); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read credentials",
			"Supply --username and --password flags instead")
	}
	return nil
}
