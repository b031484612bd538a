package mapview

import (
	"reflect"
	"testing"

	"sgiach_demo_backend/internal/analysis/transport"
)

func TestGlyphFor(t *testing.T) {
	cases := map[string]string{
		"water_sewer":        "droplet",
		"electrical":         "zap",
		"natural_gas":        "flame",
		"telecommunications": "wifi",
		"school":             "book",
		"park":               "tree",
		"shopping":           "shopping-cart",
		"transit":            "bus",
		"heliport":           "map-pin", // unknown type falls back
	}
	for recordType, want := range cases {
		if got := GlyphFor(recordType); got != want {
			t.Errorf("GlyphFor(%q) = %q, want %q", recordType, got, want)
		}
	}
}

func TestColorFor(t *testing.T) {
	cases := map[string]string{
		"available":            ColorSuccess,
		"excellent":            ColorSuccess,
		"good":                 ColorSuccess,
		"extension-required":   ColorWarning,
		"adequate":             ColorWarning,
		"limited":              ColorWarning,
		"major-infrastructure": ColorDanger,
		"private-system":       ColorDanger,
		"unknown-status":       ColorNeutral,
		"":                     ColorNeutral,
	}
	for status, want := range cases {
		if got := ColorFor(status); got != want {
			t.Errorf("ColorFor(%q) = %q, want %q", status, got, want)
		}
	}
}

func sampleResult() *transport.AnalysisResult {
	return &transport.AnalysisResult{
		PropertyData: transport.PropertyData{
			UtilityConnections: []transport.Utility{
				{Type: "water_sewer", Status: "available", Coordinates: transport.Coordinates{Latitude: 53.55, Longitude: -113.49}, Distance: "150m"},
				{Type: "natural_gas", Status: "extension-required", Coordinates: transport.Coordinates{Latitude: 53.54, Longitude: -113.50}, Distance: "800m"},
			},
			AmenityFeatures: []transport.Amenity{
				{Type: "school", Status: "excellent", Coordinates: transport.Coordinates{Latitude: 53.55, Longitude: -113.48}, Distance: "600m"},
			},
		},
	}
}

func TestBuildMarkers(t *testing.T) {
	center := MunicipalityCenter("edmonton")
	set := BuildMarkers(center, "10235 - 124 Street NW", sampleResult())

	if set.Center != center || set.Zoom != DefaultZoom {
		t.Errorf("center/zoom = %+v/%d", set.Center, set.Zoom)
	}
	if len(set.Property) != 1 {
		t.Fatalf("got %d property markers, want 1", len(set.Property))
	}
	if set.Property[0].Glyph != "home" || set.Property[0].Color != ColorPrimary {
		t.Errorf("property marker = %+v", set.Property[0])
	}
	if len(set.Utility) != 2 || len(set.Amenity) != 1 {
		t.Fatalf("got %d utility and %d amenity markers, want 2 and 1", len(set.Utility), len(set.Amenity))
	}
	if set.Utility[1].Color != ColorWarning {
		t.Errorf("extension-required utility color = %q, want warning", set.Utility[1].Color)
	}
	if set.Amenity[0].Glyph != "book" || set.Amenity[0].Color != ColorSuccess {
		t.Errorf("school marker = %+v", set.Amenity[0])
	}
}

func TestBuildMarkersIsIdempotent(t *testing.T) {
	center := MunicipalityCenter("leduc")
	result := sampleResult()

	first := BuildMarkers(center, "addr", result)
	second := BuildMarkers(center, "addr", result)

	if !reflect.DeepEqual(first, second) {
		t.Error("rebuilding the same analysis should yield an identical set")
	}
	if len(second.Utility) != len(result.PropertyData.UtilityConnections) {
		t.Error("markers accumulated across rebuilds")
	}
}

func TestBuildMarkersWithoutResult(t *testing.T) {
	set := BuildMarkers(MunicipalityCenter("st_albert"), "", nil)

	if len(set.Property) != 1 {
		t.Fatalf("got %d property markers, want 1", len(set.Property))
	}
	if len(set.Utility) != 0 || len(set.Amenity) != 0 {
		t.Error("no utility or amenity markers expected without a result")
	}
	if set.Property[0].Popup != "<b>Subject Property</b>" {
		t.Errorf("popup = %q", set.Property[0].Popup)
	}
}

func TestMunicipalityCenterFallback(t *testing.T) {
	edmonton := transport.Coordinates{Latitude: 53.5461, Longitude: -113.4938}
	if got := MunicipalityCenter("atlantis"); got != edmonton {
		t.Errorf("unknown municipality center = %+v, want Edmonton", got)
	}
	if got := MunicipalityCenter("strathcona"); got == edmonton {
		t.Error("strathcona should have its own center")
	}
}
