package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"campaigndash/internal/app"
)

func addLogout(topLevel *cobra.Command, opts *app.Options) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := app.New(*opts)
			if err != nil {
				return err
			}
			defer a.Close()

			a.Session.Restore()
			user := a.Session.User()
			a.Session.Logout()

			out := cmd.OutOrStdout()
			if user == nil {
				_, _ = fmt.Fprintln(out, "Nobody was signed in.")
				return nil
			}
			_, _ = fmt.Fprintln(out, color.GreenString("Signed out %s.", user.Email))
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
