package cmd

import (
	"fmt"

	"github.com/rimu-dev/xbrew/internal/api"
	"github.com/rimu-dev/xbrew/internal/configs"
	xerrors "github.com/rimu-dev/xbrew/internal/errors"
	"github.com/rimu-dev/xbrew/internal/ui"

	"github.com/spf13/cobra"
)

var listModel int

func init() {
	listCmd.Flags().IntVarP(&listModel, "model", "m", 1, "machine model filter (0=all, 1=Original, 2=Studio)")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the recipes you created",
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		model := listModel
		if !cmd.Flags().Changed("model") {
			// Fall back to the configured default filter when the flag is
			// not given.
			if config, err := configs.LoadUserConfig(); err == nil && config.Client.DefaultModel != 0 {
				model = config.Client.DefaultModel
				RecipesLogger.Debugf("Using configured default model filter %d", model)
			}
		}

		spinner, cleanup := startSpinner("Listing recipes...", recipesVerbose, recipesDebug)
		defer cleanup()

		client := api.NewClient(defaultStore())
		resp, err := client.ListMyRecipes(record.MemberID, model)
		if err != nil {
			return RecipesLogger.ErrorfAndReturn("List failed: %v", err)
		}

		if !resp.IsSuccess() {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Server rejected the request: " + resp.Info()
			return xerrors.ErrAPIRejected
		}

		spinner.FinalMSG = formatRecipeList(resp)
		return nil
	},
}

// formatRecipeList renders one line per recipe, falling back to the raw
// response when the list shape is unexpected.
func formatRecipeList(resp api.Response) string {
	list, ok := resp["list"].([]any)
	if !ok {
		return ui.Success.Sprint("✓") + " Response:\n" + prettyJSON(resp)
	}

	out := ui.Success.Sprint("✓") + fmt.Sprintf(" %d recipe(s)\n", len(list))
	for _, entry := range list {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		name, _ := fields["theName"].(string)
		id, _ := fields["tableId"].(float64)
		out += fmt.Sprintf("    %-30s %s\n", ui.Highlight.Sprint(name), ui.Muted.Sprintf("id %d", int(id)))
	}
	return out
}
