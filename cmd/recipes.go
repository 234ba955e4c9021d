package cmd

import (
	"github.com/rimu-dev/xbrew/internal/credentials"
	xerrors "github.com/rimu-dev/xbrew/internal/errors"
	logger "github.com/rimu-dev/xbrew/internal/logging"
	"github.com/rimu-dev/xbrew/internal/ui"

	"github.com/spf13/cobra"
)

var (
	recipesVerbose bool
	recipesDebug   bool
	RecipesLogger  logger.Logger

	RecipesCmd = &cobra.Command{
		Use:   "recipes",
		Short: "Fetch, create, and list recipes in the xBloom cloud",
		Long:  `Fetches publicly shared recipes by share link, and creates or lists your own recipes (requires login).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			RecipesLogger = logger.Logger{
				Verbose: recipesVerbose,
				Debug:   recipesDebug,
			}
			RecipesLogger.Debugf("Initializing recipes command with verbose=%t, debug=%t", recipesVerbose, recipesDebug)
		},
	}
)

func init() {
	addVerbosityFlags(RecipesCmd.PersistentFlags(), &recipesVerbose, &recipesDebug)

	RecipesCmd.AddCommand(fetchCmd)
	RecipesCmd.AddCommand(createCmd)
	RecipesCmd.AddCommand(listCmd)
}

// requireLogin loads the credential record or fails with a hint.
func requireLogin(cmd *cobra.Command) (*credentials.Record, error) {
	record, err := defaultStore().Load()
	if err != nil {
		return nil, RecipesLogger.ErrorfAndReturn("Failed to load credentials: %v", err)
	}
	if record == nil {
		cmd.Println(ui.Error.Sprint("✗") + " Not logged in")
		cmd.Println(ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("xbrew auth login --email <email>") + " first")
		return nil, xerrors.ErrNotLoggedIn
	}
	return record, nil
}
