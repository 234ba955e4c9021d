package cmd

import (
	logger "github.com/rimu-dev/xbrew/internal/logging"

	"github.com/spf13/cobra"
)

var (
	authVerbose bool
	authDebug   bool
	AuthLogger  logger.Logger

	AuthCmd = &cobra.Command{
		Use:   "auth",
		Short: "Log in to the xBloom cloud and manage stored credentials",
		Long:  `Provides login, credential status, and logout. A successful login stores your member id and session token locally for the recipe commands to use.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			AuthLogger = logger.Logger{
				Verbose: authVerbose,
				Debug:   authDebug,
			}
			AuthLogger.Debugf("Initializing auth command with verbose=%t, debug=%t", authVerbose, authDebug)
		},
	}
)

func init() {
	addVerbosityFlags(AuthCmd.PersistentFlags(), &authVerbose, &authDebug)

	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(statusCmd)
	AuthCmd.AddCommand(logoutCmd)
}
