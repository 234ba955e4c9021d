package api

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/rimu-dev/xbrew/internal/recipe"
)

const (
	recipeDetailEndpoint = "RecipeDetail.html"
	recipeAddEndpoint    = "tuRecipeAdd.tuhtml"
	myRecipesEndpoint    = "tuMyTeaRecipeCreated.tuhtml"
)

// Constants the server requires on recipe creation.
const (
	subsetTypeManual = 2 // manually created, as opposed to imported/shared
	isShortcutsNo    = 2 // a regular recipe, not a machine shortcut
)

// appPlaceMyRecipes places the recipe in the app's "my recipes" section.
var appPlaceMyRecipes = []int{4}

// Pagination for ListMyRecipes is fixed: the first page, up to 100 entries.
const (
	listPageNumber   = 1
	listCountPerPage = 100
)

// FetchRecipe fetches a publicly shared recipe by share URL or raw id. This
// is the one unencrypted call: a plain JSON body against the public detail
// endpoint, no authentication required or attempted.
func (c *Client) FetchRecipe(shareURLOrID string) (Response, error) {
	form := map[string]any{
		"tableIdOfRSA":     ParseShareID(shareURLOrID),
		"interfaceVersion": LegacyInterfaceVersion,
		"skey":             AppKey,
	}
	return c.postPlain(recipeDetailEndpoint, form)
}

// CreateRecipe creates a new recipe for the member. The pour sequence is
// serialized to compact JSON and embedded as a single string field
// (pourDataJSONStr), so the encrypted envelope is JSON containing JSON. An
// empty pour list falls back to the app's default single pour.
//
// Not idempotent: repeating the call creates duplicate recipes server-side.
func (c *Client) CreateRecipe(memberID int, r recipe.Recipe, pours []recipe.Pour) (Response, error) {
	form, err := c.buildCreateForm(memberID, r, pours, time.Now().UnixMilli())
	if err != nil {
		return nil, err
	}
	return c.postEncrypted(recipeAddEndpoint, form)
}

func (c *Client) buildCreateForm(memberID int, r recipe.Recipe, pours []recipe.Pour, createdAtMillis int64) (Envelope, error) {
	if len(pours) == 0 {
		pours = recipe.DefaultPours()
	}
	pourData, err := json.Marshal(pours)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize pour list: %w", err)
	}

	return c.BaseEnvelope(memberID, "").Merge(r.Fields()).Merge(map[string]any{
		"subSetType":      subsetTypeManual,
		"appPlace":        appPlaceMyRecipes,
		"createTimeStamp": createdAtMillis,
		"isShortcuts":     isShortcutsNo,
		"pourDataJSONStr": string(pourData),
	}), nil
}

// ListMyRecipes lists the member's created recipes. adaptedModel filters by
// machine model (1=Original, 2=Studio); zero means all models and omits the
// filter field from the envelope entirely.
func (c *Client) ListMyRecipes(memberID, adaptedModel int) (Response, error) {
	return c.postEncrypted(myRecipesEndpoint, c.buildListForm(memberID, adaptedModel))
}

func (c *Client) buildListForm(memberID, adaptedModel int) Envelope {
	form := c.BaseEnvelope(memberID, "").Merge(map[string]any{
		"pageNumber":   listPageNumber,
		"countPerPage": listCountPerPage,
	})
	if adaptedModel != 0 {
		form["adaptedModel"] = adaptedModel
	}
	return form
}
