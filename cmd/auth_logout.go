package cmd

import (
	"github.com/rimu-dev/xbrew/internal/ui"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove the stored credential record",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := defaultStore().Clear(); err != nil {
			return AuthLogger.ErrorfAndReturn("Failed to remove credentials: %v", err)
		}
		cmd.Println(ui.Success.Sprint("✓") + " Logged out")
		return nil
	},
}
