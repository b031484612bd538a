// Package placement implements the building-placement sandbox: palette
// items dropped onto a grid are snapped, validated against the buildable
// region, and tracked per session until removed or exported.
package placement

import "github.com/google/uuid"

// Grid geometry, in grid pixels.
const (
	GridUnit   = 30
	GridWidth  = 600
	GridHeight = 450
)

// Region is an axis-aligned rectangle on the grid.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Buildable is the sub-rectangle of the grid that accepts drops. Footprints
// must lie entirely inside it; partial overlap is rejected, not clipped.
var Buildable = Region{X: 60, Y: 60, Width: 480, Height: 330}

// BuildingType is one palette item.
type BuildingType struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Palette lists the draggable building types, footprints derived from the
// zoning scenario catalogue.
var Palette = []BuildingType{
	{Key: "single-family", Label: "Single Family Home", Width: 120, Height: 80},
	{Key: "townhouse", Label: "Townhouse Block", Width: 90, Height: 60},
	{Key: "apartment", Label: "Low-Rise Apartment", Width: 150, Height: 100},
	{Key: "commercial", Label: "Commercial Building", Width: 180, Height: 120},
}

// PaletteType looks up a building type by key.
func PaletteType(key string) (BuildingType, bool) {
	for _, bt := range Palette {
		if bt.Key == key {
			return bt, true
		}
	}
	return BuildingType{}, false
}

// PlacedBuilding is one accepted drop. Records keep insertion order and
// duplicates are allowed.
type PlacedBuilding struct {
	ID     uuid.UUID `json:"id"`
	Type   string    `json:"type"`
	X      int       `json:"x"`
	Y      int       `json:"y"`
	Width  int       `json:"width"`
	Height int       `json:"height"`
}

// ExportRecord is the serialized form of a placed building; the ID is a
// session-local handle and is not exported.
type ExportRecord struct {
	Type   string `json:"type"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}
