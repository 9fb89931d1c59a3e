package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"campaigndash/internal/app"
)

func addWhoami(topLevel *cobra.Command, opts *app.Options) {
	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the account remembered from the last session.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			a, err := app.New(*opts)
			if err != nil {
				return err
			}
			defer a.Close()

			a.Session.Restore()
			out := cmd.OutOrStdout()
			user := a.Session.User()
			if user == nil {
				_, _ = fmt.Fprintln(out, color.YellowString("Not signed in."))
				return nil
			}

			bold := color.New(color.Bold)
			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.AddRow(bold.Sprint("Email"), user.Email)
			if user.Name != "" {
				tbl.AddRow(bold.Sprint("Name"), user.Name)
			}
			tbl.AddRow(bold.Sprint("Storage"), a.Config.StorageDir)
			_, _ = fmt.Fprintln(out, tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
