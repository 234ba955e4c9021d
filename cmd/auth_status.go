package cmd

import (
	"github.com/rimu-dev/xbrew/internal/configs"
	"github.com/rimu-dev/xbrew/internal/ui"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored credential record",
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := defaultStore().Load()
		if err != nil {
			return AuthLogger.ErrorfAndReturn("Failed to load credentials: %v", err)
		}

		if record == nil {
			cmd.Println(ui.Error.Sprint("✗") + " Not logged in")
			cmd.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("xbrew auth login --email <email>"))
			return nil
		}

		cmd.Println(ui.Success.Sprint("✓") + " Logged in as " + ui.Highlight.Sprint(record.Email))
		cmd.Printf("    member id: %d\n", record.MemberID)
		if record.Token == "" {
			cmd.Println("    token:     " + ui.Muted.Sprint("empty"))
		} else {
			cmd.Println("    token:     stored")
		}

		// The install UUID is local-only; useful when reporting issues.
		if config, err := configs.EnsureUserConfig(); err == nil {
			cmd.Println("    install:   " + ui.Muted.Sprint(config.Client.InstallUUID))
		} else {
			AuthLogger.Warnf("Failed to load user config: %v", err)
		}
		return nil
	},
}
