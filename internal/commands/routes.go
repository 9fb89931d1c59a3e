package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"campaigndash/internal/routes"
)

func addRoutes(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "routes",
		Short: "List every route the dashboard knows.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bold := color.New(color.Bold)
			dim := color.New(color.Faint)

			tbl := uitable.New()
			tbl.Separator = "  "
			tbl.MaxColWidth = 60
			tbl.AddRow(bold.Sprint("PATH"), bold.Sprint("TITLE"), bold.Sprint("ACCESS"), bold.Sprint("STATUS"))
			for _, r := range routes.NewTable().Routes() {
				access := color.YellowString("protected")
				if r.Public {
					access = color.GreenString("public")
				}
				status := "ready"
				if r.ComingSoon {
					status = dim.Sprint("coming soon")
				}
				tbl.AddRow(r.Template, r.Title, access, status)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), tbl)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
