package version

import (
	"fmt"

	"github.com/spf13/cobra"

	"loro-backend/internal"
)

// Cmd returns the command printing the application version.
func Cmd(app *internal.App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), app.Version())
		},
	}
}
