package mapview

import "sgiach_demo_backend/internal/analysis/transport"

// DefaultZoom is the initial zoom level for the property map view.
const DefaultZoom = 13

// municipalityCenters is the fixed lookup of supported Alberta
// municipalities. Unknown keys fall back to Edmonton.
var municipalityCenters = map[string]transport.Coordinates{
	"edmonton":   {Latitude: 53.5461, Longitude: -113.4938},
	"leduc":      {Latitude: 53.2594, Longitude: -113.5492},
	"st_albert":  {Latitude: 53.6305, Longitude: -113.6256},
	"strathcona": {Latitude: 53.5312, Longitude: -113.3161},
}

// MunicipalityCenter returns the map center for a municipality key.
// Unrecognized keys default to Edmonton.
func MunicipalityCenter(key string) transport.Coordinates {
	if center, ok := municipalityCenters[key]; ok {
		return center
	}
	return municipalityCenters["edmonton"]
}
