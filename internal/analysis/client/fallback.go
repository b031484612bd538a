package client

import (
	"time"

	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/internal/mapview"
)

// FallbackAnalysis builds the deterministic substitute result served when
// the analysis API is unreachable. Utility and amenity coordinates are
// fixed offsets from the municipality center so the markers land near the
// property on the map.
func FallbackAnalysis(req transport.AnalysisRequest) transport.AnalysisResult {
	center := req.Coordinates
	if center == (transport.Coordinates{}) {
		center = mapview.MunicipalityCenter(req.Municipality)
	}

	return transport.AnalysisResult{
		PropertyData: transport.PropertyData{
			UtilityConnections: []transport.Utility{
				{
					Type:        "water_sewer",
					Coordinates: offset(center, 0.0021, -0.0014),
					Distance:    "120 m",
					Cost:        "$25,000 - $40,000",
					Status:      "available",
					Timeline:    "2-4 weeks",
					Details:     "Municipal main at property line; standard service connection.",
				},
				{
					Type:        "electrical",
					Coordinates: offset(center, -0.0008, 0.0032),
					Distance:    "85 m",
					Cost:        "$12,000 - $18,000",
					Status:      "available",
					Timeline:    "3-6 weeks",
					Details:     "Overhead distribution with capacity for residential service.",
				},
				{
					Type:        "natural_gas",
					Coordinates: offset(center, 0.0044, 0.0027),
					Distance:    "340 m",
					Cost:        "$45,000 - $70,000",
					Status:      "extension-required",
					Timeline:    "2-4 months",
					Details:     "Distribution main extension required from the arterial road.",
				},
				{
					Type:        "telecommunications",
					Coordinates: offset(center, -0.0029, -0.0022),
					Distance:    "95 m",
					Cost:        "$3,500 - $6,000",
					Status:      "available",
					Timeline:    "1-2 weeks",
					Details:     "Fibre available on the adjacent right-of-way.",
				},
			},
			AmenityFeatures: []transport.Amenity{
				{
					Type:        "school",
					Coordinates: offset(center, 0.0071, -0.0048),
					Distance:    "850 m",
					Impact:      "Strong draw for family-oriented product",
					Status:      "excellent",
					Details:     "K-9 public school within walking distance.",
				},
				{
					Type:        "park",
					Coordinates: offset(center, -0.0052, 0.0039),
					Distance:    "420 m",
					Impact:      "Supports premium lot pricing",
					Status:      "good",
					Details:     "River valley trail connection and playground.",
				},
				{
					Type:        "shopping",
					Coordinates: offset(center, 0.0094, 0.0086),
					Distance:    "1.6 km",
					Impact:      "Adequate daily-needs retail",
					Status:      "adequate",
					Details:     "Neighbourhood commercial strip with grocery anchor.",
				},
				{
					Type:        "transit",
					Coordinates: offset(center, -0.0067, -0.0075),
					Distance:    "1.1 km",
					Impact:      "Limited service frequency off-peak",
					Status:      "limited",
					Details:     "Two bus routes; nearest LRT station 4.2 km.",
				},
			},
			Infrastructure: transport.Infrastructure{
				CostMin:  140000,
				CostMax:  195000,
				Timeline: "4-6 months",
			},
			AmenityScore:                   7.8,
			ProfessionalValidationRequired: true,
		},
		ProfessionalSummary: "Serviced residential development site with municipal water and power at " +
			"the lot line. Gas main extension is the principal servicing cost. Amenity profile supports " +
			"family-oriented product; professional validation is recommended before committing to a " +
			"development scenario.",
	}
}

// FallbackOpportunities builds the sample opportunity set for the landing
// page when the analysis API is unreachable. Ordering is the ranking.
func FallbackOpportunities() transport.AnalyzeResponse {
	return transport.AnalyzeResponse{
		Summary: transport.AnalysisSummary{
			TotalScraped:        20,
			TotalAnalyzed:       3,
			MeetingROIThreshold: 3,
			AverageROI:          28.9,
		},
		Opportunities: []transport.Opportunity{
			{
				Property: transport.OpportunityProperty{
					Address: "11404 142 Street, Edmonton",
					Price:   1250000,
					LotSize: "0.62 acres",
					Zoning:  "RF3",
					Source:  "sample-data",
				},
				Scenarios: []transport.Scenario{
					{
						Name:            "Townhouse Development",
						TotalUnits:      10,
						TimelineMonths:  24,
						ROIPercentage:   33.3,
						TotalInvestment: 2100000,
						NetProfit:       640000,
					},
					{
						Name:            "Semi-Detached Infill",
						TotalUnits:      6,
						TimelineMonths:  18,
						ROIPercentage:   24.1,
						TotalInvestment: 1700000,
						NetProfit:       410000,
					},
				},
				Score: 0.782,
			},
			{
				Property: transport.OpportunityProperty{
					Address: "9823 76 Avenue, Edmonton",
					Price:   880000,
					LotSize: "0.38 acres",
					Zoning:  "RA7",
					Source:  "sample-data",
				},
				Scenarios: []transport.Scenario{
					{
						Name:            "Low-Rise Apartment",
						TotalUnits:      16,
						TimelineMonths:  30,
						ROIPercentage:   28.9,
						TotalInvestment: 3400000,
						NetProfit:       980000,
					},
				},
				Score: 0.714,
			},
			{
				Property: transport.OpportunityProperty{
					Address: "5204 50 Street, Leduc",
					Price:   465000,
					LotSize: "0.91 acres",
					Zoning:  "CB1",
					Source:  "sample-data",
				},
				Scenarios: []transport.Scenario{
					{
						Name:            "Mixed-Use Development",
						TotalUnits:      22,
						TimelineMonths:  36,
						ROIPercentage:   24.5,
						TotalInvestment: 5200000,
						NetProfit:       1270000,
					},
				},
				Score: 0.655,
			},
		},
		AnalysisTimestamp: time.Now().UTC().Format(time.RFC3339),
		DataSources:       []string{"sample-data"},
	}
}

func offset(c transport.Coordinates, dLat, dLon float64) transport.Coordinates {
	return transport.Coordinates{
		Latitude:  c.Latitude + dLat,
		Longitude: c.Longitude + dLon,
	}
}
