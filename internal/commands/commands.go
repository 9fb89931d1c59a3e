// Package commands holds the cobra command tree
package commands

import (
	"github.com/spf13/cobra"

	"campaigndash/internal/app"
)

// New returns the root command. Without a subcommand it runs the dashboard.
func New() *cobra.Command {
	opts := &app.Options{}

	cmd := &cobra.Command{
		Use:   "campaigndash",
		Short: "Campaign and messaging dashboard for the terminal.",
		Long: `campaigndash is a terminal dashboard for a messaging platform: sign in,
browse analytics, and jump anywhere with the command palette (ctrl+k).

The demo account is filled in with ctrl+d on the sign in screen.`,
		Example: `
campaigndash
campaigndash --path /analytics
campaigndash --config ~/campaigndash.toml routes
`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := app.New(*opts)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.Run(cmd.Context())
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.ConfigPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/campaigndash/config.toml)")
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "write debug entries to the log file")
	cmd.Flags().StringVarP(&opts.InitialPath, "path", "p", "/", "route to open at start, e.g. /contacts/1")

	addWhoami(cmd, opts)
	addLogout(cmd, opts)
	addRoutes(cmd)
	return cmd
}
