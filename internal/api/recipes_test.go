package api

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/rimu-dev/xbrew/internal/credentials"
	"github.com/rimu-dev/xbrew/internal/recipe"
)

func TestBuildCreateForm(t *testing.T) {
	store := &credentials.MemoryStore{}
	if err := store.Save(credentials.Record{MemberID: 4217, Token: "tok"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	client := &Client{Store: store}

	pours := []recipe.Pour{
		{TheName: "Bloom", Volume: 45, Temperature: 94, FlowRate: 3, Pattern: 1, Pausing: 30, IsEnableVibrationBefore: 2, IsEnableVibrationAfter: 2},
		{TheName: "Main", Volume: 180, Temperature: 92, FlowRate: 3.5, Pattern: 2, IsEnableVibrationBefore: 2, IsEnableVibrationAfter: 2},
	}
	form, err := client.buildCreateForm(4217, recipe.Default(), pours, 1726600000000)
	if err != nil {
		t.Fatalf("buildCreateForm failed: %v", err)
	}

	// Base envelope fields.
	if form["memberId"] != 4217 || form["token"] != "tok" || form["skey"] != "testskey" {
		t.Errorf("Base envelope fields wrong: memberId=%v token=%v skey=%v", form["memberId"], form["token"], form["skey"])
	}

	// Server-required creation constants.
	if form["subSetType"] != 2 || form["isShortcuts"] != 2 {
		t.Errorf("subSetType=%v isShortcuts=%v, want 2/2", form["subSetType"], form["isShortcuts"])
	}
	if !reflect.DeepEqual(form["appPlace"], []int{4}) {
		t.Errorf("appPlace = %v, want [4]", form["appPlace"])
	}
	if form["createTimeStamp"] != int64(1726600000000) {
		t.Errorf("createTimeStamp = %v", form["createTimeStamp"])
	}

	// Recipe fields are merged in.
	if form["theName"] != "My Recipe" || form["rpm"] != 120 {
		t.Errorf("Recipe fields missing: theName=%v rpm=%v", form["theName"], form["rpm"])
	}

	// pourDataJSONStr is JSON text inside the JSON envelope; parsing it back
	// must reproduce the pour list exactly, order preserved.
	pourJSON, ok := form["pourDataJSONStr"].(string)
	if !ok {
		t.Fatalf("pourDataJSONStr = %T, want string", form["pourDataJSONStr"])
	}
	var decoded []recipe.Pour
	if err := json.Unmarshal([]byte(pourJSON), &decoded); err != nil {
		t.Fatalf("pourDataJSONStr is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(decoded, pours) {
		t.Errorf("Pour round-trip mismatch:\n got %+v\nwant %+v", decoded, pours)
	}
}

func TestBuildCreateForm_DefaultPours(t *testing.T) {
	client := &Client{Store: &credentials.MemoryStore{}}

	form, err := client.buildCreateForm(1, recipe.Default(), nil, 1)
	if err != nil {
		t.Fatalf("buildCreateForm failed: %v", err)
	}

	var decoded []recipe.Pour
	if err := json.Unmarshal([]byte(form["pourDataJSONStr"].(string)), &decoded); err != nil {
		t.Fatalf("pourDataJSONStr is not valid JSON: %v", err)
	}
	if !reflect.DeepEqual(decoded, recipe.DefaultPours()) {
		t.Errorf("Expected default pour list, got: %+v", decoded)
	}
}

func TestBuildListForm_ModelFilter(t *testing.T) {
	client := &Client{Store: &credentials.MemoryStore{}}

	// Zero omits the filter field entirely.
	form := client.buildListForm(4217, 0)
	if _, present := form["adaptedModel"]; present {
		t.Error("adaptedModel must be omitted when the filter is 0")
	}
	if form["pageNumber"] != 1 || form["countPerPage"] != 100 {
		t.Errorf("Pagination = %v/%v, want 1/100", form["pageNumber"], form["countPerPage"])
	}

	form = client.buildListForm(4217, 2)
	if form["adaptedModel"] != 2 {
		t.Errorf("adaptedModel = %v, want 2", form["adaptedModel"])
	}
}

func TestFetchRecipe(t *testing.T) {
	server, captured := captureServer(t, `{"result":"success","recipe":{"theName":"Gesha"}}`)
	client := newTestClient(t, server)

	resp, err := client.FetchRecipe("https://share.example/x?id=AB%2F12&foo=1")
	if err != nil {
		t.Fatalf("FetchRecipe failed: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("Expected success, got: %v", resp)
	}

	// The public endpoint gets a plain JSON body with the parsed id, the
	// legacy version marker, and the app key — and no auth fields.
	var body map[string]any
	if err := json.Unmarshal([]byte(captured.body), &body); err != nil {
		t.Fatalf("Request body is not plain JSON: %v", err)
	}
	if body["tableIdOfRSA"] != "AB/12" {
		t.Errorf("tableIdOfRSA = %v, want decoded share id", body["tableIdOfRSA"])
	}
	if body["interfaceVersion"] != float64(19700101) {
		t.Errorf("interfaceVersion = %v, want legacy marker", body["interfaceVersion"])
	}
	if body["skey"] != "testskey" {
		t.Errorf("skey = %v", body["skey"])
	}
	if _, present := body["memberId"]; present {
		t.Error("Public fetch must not include memberId")
	}
	if _, present := body["token"]; present {
		t.Error("Public fetch must not include token")
	}
	if captured.referer != "https://share-h5.xbloom.com/" {
		t.Errorf("Referer = %q", captured.referer)
	}
}

func TestCreateRecipe_PostsEncrypted(t *testing.T) {
	server, captured := captureServer(t, `{"result":"success","tableId":555,"version":1}`)
	client := newTestClient(t, server)

	resp, err := client.CreateRecipe(4217, recipe.Default(), nil)
	if err != nil {
		t.Fatalf("CreateRecipe failed: %v", err)
	}
	if !resp.IsSuccess() {
		t.Errorf("Expected success, got: %v", resp)
	}

	// Encrypted endpoints receive the base64 string raw, so the body must
	// not parse as JSON.
	var decoded map[string]any
	if err := json.Unmarshal([]byte(captured.body), &decoded); err == nil {
		t.Error("Create body parsed as JSON; expected the raw base64 ciphertext")
	}
	if captured.referer != "" {
		t.Errorf("Referer = %q, want unset on encrypted endpoints", captured.referer)
	}
}

func TestListMyRecipes_PostsEncrypted(t *testing.T) {
	server, _ := captureServer(t, `{"result":"success","list":[{"theName":"V60","tableId":1}]}`)
	client := newTestClient(t, server)

	resp, err := client.ListMyRecipes(4217, 1)
	if err != nil {
		t.Fatalf("ListMyRecipes failed: %v", err)
	}
	list, ok := resp["list"].([]any)
	if !ok || len(list) != 1 {
		t.Errorf("Expected one recipe in list, got: %v", resp["list"])
	}
}
