package cmd

import (
	"github.com/rimu-dev/xbrew/internal/api"
	xerrors "github.com/rimu-dev/xbrew/internal/errors"
	"github.com/rimu-dev/xbrew/internal/ui"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <share-url-or-id>",
	Short: "Fetch a publicly shared recipe (no login required)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		spinner, cleanup := startSpinner("Fetching recipe...", recipesVerbose, recipesDebug)
		defer cleanup()

		shareID := api.ParseShareID(args[0])
		RecipesLogger.Infof("Fetching shared recipe %s", shareID)

		client := api.NewClient(defaultStore())
		resp, err := client.FetchRecipe(args[0])
		if err != nil {
			return RecipesLogger.ErrorfAndReturn("Fetch failed: %v", err)
		}

		if !resp.IsSuccess() {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Server rejected the request: " + resp.Info()
			return xerrors.ErrAPIRejected
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Recipe " + ui.Highlight.Sprint(shareID) + "\n" + prettyJSON(resp)
		return nil
	},
}
