package recipe

import (
	"encoding/json"
	"fmt"
	"os"
)

// Pour is one step of a recipe's pour sequence. Field names match the wire
// contract byte-for-byte; the client passes them through without
// interpreting brewing semantics.
type Pour struct {
	TheName                 string  `json:"theName"`
	Volume                  float64 `json:"volume"`
	Temperature             float64 `json:"temperature"`
	FlowRate                float64 `json:"flowRate"`
	Pattern                 int     `json:"pattern"`
	Pausing                 int     `json:"pausing"`
	IsEnableVibrationBefore int     `json:"isEnableVibrationBefore"`
	IsEnableVibrationAfter  int     `json:"isEnableVibrationAfter"`
}

// Recipe describes a brew. Like Pour, this is an opaque pass-through
// structure: the vendor's 1/2 toggles and enum values are forwarded as-is.
type Recipe struct {
	TheName             string  `json:"theName"`
	Dose                float64 `json:"dose"`
	GrandWater          float64 `json:"grandWater"`
	GrinderSize         float64 `json:"grinderSize"`
	RPM                 int     `json:"rpm"`
	CupType             int     `json:"cupType"`
	AdaptedModel        int     `json:"adaptedModel"`
	IsEnableBypassWater int     `json:"isEnableBypassWater"`
	IsSetGrinderSize    int     `json:"isSetGrinderSize"`
	TheColor            string  `json:"theColor"`
	TheSubsetID         int     `json:"theSubsetId"`
	BypassTemp          float64 `json:"bypassTemp"`
	BypassVolume        float64 `json:"bypassVolume"`
}

// Fields returns the recipe as envelope fields, keyed by wire name.
func (r Recipe) Fields() map[string]any {
	return map[string]any{
		"theName":             r.TheName,
		"dose":                r.Dose,
		"grandWater":          r.GrandWater,
		"grinderSize":         r.GrinderSize,
		"rpm":                 r.RPM,
		"cupType":             r.CupType,
		"adaptedModel":        r.AdaptedModel,
		"isEnableBypassWater": r.IsEnableBypassWater,
		"isSetGrinderSize":    r.IsSetGrinderSize,
		"theColor":            r.TheColor,
		"theSubsetId":         r.TheSubsetID,
		"bypassTemp":          r.BypassTemp,
		"bypassVolume":        r.BypassVolume,
	}
}

// Default returns the recipe the official app pre-fills for a new creation:
// 15g dose at a 1:15 ratio, grinder at 70, no bypass water.
func Default() Recipe {
	return Recipe{
		TheName:             "My Recipe",
		Dose:                15.0,
		GrandWater:          15.0,
		GrinderSize:         70.0,
		RPM:                 120,
		CupType:             1,
		AdaptedModel:        1,
		IsEnableBypassWater: 2,
		IsSetGrinderSize:    1,
		TheColor:            "#C9D5B8",
		TheSubsetID:         0,
		BypassTemp:          85.0,
		BypassVolume:        5.0,
	}
}

// DefaultPours returns the single-pour sequence used when none is supplied.
func DefaultPours() []Pour {
	return []Pour{{
		TheName:                 "Pour",
		Volume:                  225.0,
		Temperature:             93.0,
		FlowRate:                3.5,
		Pattern:                 1,
		Pausing:                 0,
		IsEnableVibrationBefore: 2,
		IsEnableVibrationAfter:  2,
	}}
}

// File is the on-disk document accepted by `xbrew recipes create --file`.
type File struct {
	Recipe Recipe `json:"recipe"`
	Pours  []Pour `json:"pours"`
}

// FromFile loads a recipe document. Omitted recipe fields keep their
// defaults, and an empty pour list falls back to DefaultPours.
func FromFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe file at %s: %w", path, err)
	}

	doc := File{Recipe: Default()}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse recipe file at %s: %w", path, err)
	}
	if len(doc.Pours) == 0 {
		doc.Pours = DefaultPours()
	}
	return &doc, nil
}
