package cmd

import (
	"github.com/rimu-dev/xbrew/internal/api"
	xerrors "github.com/rimu-dev/xbrew/internal/errors"
	"github.com/rimu-dev/xbrew/internal/recipe"
	"github.com/rimu-dev/xbrew/internal/ui"

	"github.com/spf13/cobra"
)

var (
	createFile  string
	createName  string
	createDose  float64
	createWater float64
	createGrind float64
	createRPM   int
	createCup   int
	createModel int
	createColor string
)

func init() {
	createCmd.Flags().StringVarP(&createFile, "file", "f", "", "recipe JSON file (flags below are ignored when set)")
	createCmd.Flags().StringVarP(&createName, "name", "n", "My Recipe", "recipe name")
	createCmd.Flags().Float64Var(&createDose, "dose", 15.0, "coffee dose in grams")
	createCmd.Flags().Float64Var(&createWater, "water", 15.0, "water ratio (1:n)")
	createCmd.Flags().Float64Var(&createGrind, "grind", 70.0, "grinder size")
	createCmd.Flags().IntVar(&createRPM, "rpm", 120, "grinder RPM")
	createCmd.Flags().IntVar(&createCup, "cup", 1, "cup type")
	createCmd.Flags().IntVar(&createModel, "model", 1, "adapted machine model (1=Original, 2=Studio)")
	createCmd.Flags().StringVar(&createColor, "color", "#C9D5B8", "display color")
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new recipe in your account",
	Long: `Creates a recipe from a JSON file or from flags. Repeating the command
creates duplicate recipes server-side; there is no client-side dedup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		record, err := requireLogin(cmd)
		if err != nil {
			return err
		}

		r := recipe.Default()
		pours := recipe.DefaultPours()
		if createFile != "" {
			doc, err := recipe.FromFile(createFile)
			if err != nil {
				return RecipesLogger.ErrorfAndReturn("Failed to load recipe file: %v", err)
			}
			r = doc.Recipe
			pours = doc.Pours
		} else {
			r.TheName = createName
			r.Dose = createDose
			r.GrandWater = createWater
			r.GrinderSize = createGrind
			r.RPM = createRPM
			r.CupType = createCup
			r.AdaptedModel = createModel
			r.TheColor = createColor
		}

		spinner, cleanup := startSpinner("Creating recipe...", recipesVerbose, recipesDebug)
		defer cleanup()

		RecipesLogger.Infof("Creating recipe %q with %d pours", r.TheName, len(pours))
		client := api.NewClient(defaultStore())

		resp, err := client.CreateRecipe(record.MemberID, r, pours)
		if err != nil {
			return RecipesLogger.ErrorfAndReturn("Create failed: %v", err)
		}

		if !resp.IsSuccess() {
			spinner.FinalMSG = ui.Error.Sprint("✗") + " Server rejected the recipe: " + resp.Info()
			return xerrors.ErrAPIRejected
		}

		spinner.FinalMSG = ui.Success.Sprint("✓") + " Created " + ui.Highlight.Sprint(r.TheName) + "\n" + prettyJSON(resp)
		return nil
	},
}
