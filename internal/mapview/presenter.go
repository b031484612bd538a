// Package mapview builds the marker view-models the frontend map renders:
// one property marker plus one marker per utility connection and amenity
// feature of the current analysis.
package mapview

import (
	"fmt"

	"sgiach_demo_backend/internal/analysis/transport"
)

// Marker categories.
const (
	CategoryProperty = "property"
	CategoryUtility  = "utility"
	CategoryAmenity  = "amenity"
)

// Marker colors, keyed off record status.
const (
	ColorSuccess = "#28a745"
	ColorWarning = "#ffc107"
	ColorDanger  = "#dc3545"
	ColorNeutral = "#6c757d"
	ColorPrimary = "#0d6efd"
)

// Marker is one renderable map marker. Popup content is generated once at
// marker construction and never re-rendered.
type Marker struct {
	Category    string                `json:"category"`
	Type        string                `json:"type"`
	Coordinates transport.Coordinates `json:"coordinates"`
	Glyph       string                `json:"glyph"`
	Color       string                `json:"color"`
	Popup       string                `json:"popup"`
}

// MarkerSet is the complete marker collection for one map view,
// grouped per category in insertion order.
type MarkerSet struct {
	Center   transport.Coordinates `json:"center"`
	Zoom     int                   `json:"zoom"`
	Property []Marker              `json:"property"`
	Utility  []Marker              `json:"utility"`
	Amenity  []Marker              `json:"amenity"`
}

var glyphs = map[string]string{
	"water":              "droplet",
	"sewer":              "droplet",
	"water_sewer":        "droplet",
	"electrical":         "zap",
	"natural_gas":        "flame",
	"telecommunications": "wifi",
	"school":             "book",
	"park":               "tree",
	"shopping":           "shopping-cart",
	"transit":            "bus",
	"healthcare":         "heart-pulse",
	"highway":            "road",
}

const genericGlyph = "map-pin"

// GlyphFor maps a record type to its marker glyph, with a generic
// fallback for unrecognized types.
func GlyphFor(recordType string) string {
	if g, ok := glyphs[recordType]; ok {
		return g
	}
	return genericGlyph
}

// ColorFor maps a record status to the fixed marker color palette.
func ColorFor(status string) string {
	switch status {
	case "available", "excellent", "good":
		return ColorSuccess
	case "extension-required", "adequate", "limited":
		return ColorWarning
	case "major-infrastructure", "private-system":
		return ColorDanger
	default:
		return ColorNeutral
	}
}

// BuildMarkers produces the full marker set for an analysis result centered
// on the given coordinates. Calling it again for the same session replaces
// the previous set; markers never accumulate across renders.
func BuildMarkers(center transport.Coordinates, address string, result *transport.AnalysisResult) MarkerSet {
	set := MarkerSet{
		Center: center,
		Zoom:   DefaultZoom,
		Property: []Marker{{
			Category:    CategoryProperty,
			Type:        "property",
			Coordinates: center,
			Glyph:       "home",
			Color:       ColorPrimary,
			Popup:       propertyPopup(address),
		}},
		Utility: []Marker{},
		Amenity: []Marker{},
	}

	if result == nil {
		return set
	}

	for _, u := range result.PropertyData.UtilityConnections {
		set.Utility = append(set.Utility, Marker{
			Category:    CategoryUtility,
			Type:        u.Type,
			Coordinates: u.Coordinates,
			Glyph:       GlyphFor(u.Type),
			Color:       ColorFor(u.Status),
			Popup:       utilityPopup(u),
		})
	}

	for _, a := range result.PropertyData.AmenityFeatures {
		set.Amenity = append(set.Amenity, Marker{
			Category:    CategoryAmenity,
			Type:        a.Type,
			Coordinates: a.Coordinates,
			Glyph:       GlyphFor(a.Type),
			Color:       ColorFor(a.Status),
			Popup:       amenityPopup(a),
		})
	}

	return set
}

func propertyPopup(address string) string {
	if address == "" {
		return "<b>Subject Property</b>"
	}
	return fmt.Sprintf("<b>Subject Property</b><br>%s", address)
}

func utilityPopup(u transport.Utility) string {
	return fmt.Sprintf("<b>%s</b><br>Distance: %s<br>Cost: %s<br>Status: %s<br>Timeline: %s<br>%s",
		u.Type, u.Distance, u.Cost, u.Status, u.Timeline, u.Details)
}

func amenityPopup(a transport.Amenity) string {
	return fmt.Sprintf("<b>%s</b><br>Distance: %s<br>Impact: %s<br>%s",
		a.Type, a.Distance, a.Impact, a.Details)
}
