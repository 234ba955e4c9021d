package cmd

import (
	"github.com/rimu-dev/xbrew/internal/api"
	xerrors "github.com/rimu-dev/xbrew/internal/errors"
	"github.com/rimu-dev/xbrew/internal/ui"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "account email")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "account password (prompted when omitted)")
	if err := loginCmd.MarkFlagRequired("email"); err != nil {
		panic(err)
	}
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with your xBloom account email and password",
	RunE: func(cmd *cobra.Command, args []string) error {
		AuthLogger.Infof("Starting login command")

		password := loginPassword
		if password == "" {
			var err error
			password, err = promptPassword("Password: ")
			if err != nil {
				return AuthLogger.ErrorfAndReturn("Failed to read password: %v", err)
			}
		}

		spinner, cleanup := startSpinner("Logging in...", authVerbose, authDebug)
		defer cleanup()

		client := api.NewClient(defaultStore())
		AuthLogger.Debugf("Posting login for %s to %s", loginEmail, client.BaseURL)

		resp, err := client.Login(loginEmail, password)
		if err != nil {
			return AuthLogger.ErrorfAndReturn("Login request failed: %v", err)
		}

		if !resp.IsSuccess() {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Login failed: " + resp.Info()
			return xerrors.ErrAPIRejected
		}

		record, err := defaultStore().Load()
		if err != nil || record == nil {
			return AuthLogger.ErrorfAndReturn("Login succeeded but no credential record was stored")
		}

		AuthLogger.Infof("Logged in as member %d", record.MemberID)
		spinner.FinalMSG = ui.Success.Sprint("✓") + " Logged in as " + ui.Highlight.Sprint(record.Email) + "\n" +
			"    member id: " + ui.Highlight.Sprintf("%d", record.MemberID)
		return nil
	},
}
