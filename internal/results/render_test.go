package results

import (
	"reflect"
	"testing"

	"sgiach_demo_backend/internal/analysis/transport"
)

func TestBuildSummary(t *testing.T) {
	result := transport.AnalysisResult{
		PropertyData: transport.PropertyData{
			Infrastructure: transport.Infrastructure{
				CostMin:  140000,
				CostMax:  195000,
				Timeline: "4-6 months",
			},
			AmenityScore:                   7.8,
			ProfessionalValidationRequired: true,
		},
		ProfessionalSummary: "summary text",
	}

	card := BuildSummary(result)
	if card.CostRange != "$140,000 - $195,000" {
		t.Errorf("cost range = %q", card.CostRange)
	}
	if card.Timeline != "4-6 months" {
		t.Errorf("timeline = %q", card.Timeline)
	}
	if card.AmenityScore != "7.8/10" {
		t.Errorf("amenity score = %q", card.AmenityScore)
	}
	if card.Validation != "Required" {
		t.Errorf("validation = %q, want Required", card.Validation)
	}
	if card.ProfessionalSummary != "summary text" {
		t.Errorf("summary = %q", card.ProfessionalSummary)
	}
}

func TestBuildSummaryValidationOptional(t *testing.T) {
	card := BuildSummary(transport.AnalysisResult{})
	if card.Validation != "Optional" {
		t.Errorf("validation = %q, want Optional", card.Validation)
	}
}

func TestBuildOpportunityCards(t *testing.T) {
	resp := transport.AnalyzeResponse{
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
					{Name: "Townhouse Development", TotalUnits: 10, TimelineMonths: 24, ROIPercentage: 33.3, TotalInvestment: 2100000, NetProfit: 640000},
					{Name: "Semi-Detached Infill", TotalUnits: 6, TimelineMonths: 18, ROIPercentage: 24.1, TotalInvestment: 1700000, NetProfit: 410000},
				},
				Score: 0.782,
			},
			{
				Property:  transport.OpportunityProperty{Address: "9823 76 Avenue, Edmonton", Price: 880000},
				Scenarios: []transport.Scenario{{Name: "Low-Rise Apartment", TotalUnits: 16, TimelineMonths: 30, ROIPercentage: 28.9, TotalInvestment: 3400000, NetProfit: 980000}},
				Score:     0.714,
			},
		},
	}

	cards := BuildOpportunityCards(resp)
	if len(cards) != 2 {
		t.Fatalf("got %d cards, want 2", len(cards))
	}

	first := cards[0]
	if first.Rank != 1 {
		t.Errorf("rank = %d, want 1-based", first.Rank)
	}
	if first.Price != "$1,250,000" {
		t.Errorf("price = %q", first.Price)
	}
	// Only the top scenario is rendered even when more exist.
	if first.DevelopmentType != "Townhouse Development" || first.Units != 10 {
		t.Errorf("top scenario not used: %+v", first)
	}
	if first.ROI != "33.3%" || first.Timeline != "24 months" {
		t.Errorf("roi/timeline = %q/%q", first.ROI, first.Timeline)
	}
	if first.Investment != "$2.1M" || first.NetProfit != "$640K" {
		t.Errorf("investment/profit = %q/%q", first.Investment, first.NetProfit)
	}
	if first.Score != "0.782" {
		t.Errorf("score = %q", first.Score)
	}

	if cards[1].Rank != 2 || cards[1].ROI != "28.9%" {
		t.Errorf("second card = %+v", cards[1])
	}
}

func TestBuildOpportunityCardsWithoutScenarios(t *testing.T) {
	resp := transport.AnalyzeResponse{
		Opportunities: []transport.Opportunity{
			{Property: transport.OpportunityProperty{Address: "vacant lot", Price: 100000}},
		},
	}

	cards := BuildOpportunityCards(resp)
	if len(cards) != 1 {
		t.Fatalf("got %d cards, want 1", len(cards))
	}
	if cards[0].DevelopmentType != "" || cards[0].ROI != "" {
		t.Errorf("scenario fields should stay empty: %+v", cards[0])
	}
}

func TestBuildersAreIdempotent(t *testing.T) {
	resp := transport.AnalyzeResponse{
		Opportunities: []transport.Opportunity{
			{Property: transport.OpportunityProperty{Address: "a", Price: 500000}, Score: 0.5},
		},
	}
	if !reflect.DeepEqual(BuildOpportunityCards(resp), BuildOpportunityCards(resp)) {
		t.Error("rendering the same response twice should yield identical cards")
	}
}

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{950, "$950"},
		{1000, "$1,000"},
		{140000, "$140,000"},
		{1250000, "$1,250,000"},
		{-45000, "-$45,000"},
	}
	for _, tc := range cases {
		if got := Currency(tc.in); got != tc.want {
			t.Errorf("Currency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMillionsAndThousands(t *testing.T) {
	if got := Millions(2100000); got != "$2.1M" {
		t.Errorf("Millions = %q", got)
	}
	if got := Thousands(640000); got != "$640K" {
		t.Errorf("Thousands = %q", got)
	}
}
