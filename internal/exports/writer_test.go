package exports

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/internal/placement"
	"sgiach_demo_backend/internal/results"
)

func sampleResponse() transport.AnalyzeResponse {
	return transport.AnalyzeResponse{
		Opportunities: []transport.Opportunity{
			{
				Property: transport.OpportunityProperty{
					Address: "12847 - 66 Street NW, Edmonton",
					Price:   485000,
					LotSize: "0.89 hectares",
					Zoning:  "RA7",
					Source:  "MLS",
				},
				Scenarios: []transport.Scenario{
					{Name: "Townhouse Development", TotalUnits: 8, TimelineMonths: 16, ROIPercentage: 33.3, TotalInvestment: 2100000, NetProfit: 640000},
					{Name: "Single Family", TotalUnits: 3, TimelineMonths: 12, ROIPercentage: 21.0, TotalInvestment: 1400000, NetProfit: 295000},
				},
				Score: 0.847,
			},
			{
				Property: transport.OpportunityProperty{
					Address: "9204 - 156 Street NW, Edmonton",
					Price:   365000,
					LotSize: "0.52 hectares",
					Zoning:  "RF3",
					Source:  "MLS",
				},
				Scenarios: []transport.Scenario{
					{Name: "Duplex Development", TotalUnits: 4, TimelineMonths: 14, ROIPercentage: 28.9, TotalInvestment: 1250000, NetProfit: 361000},
				},
				Score: 0.792,
			},
		},
	}
}

func TestWriteOpportunityCSV(t *testing.T) {
	cards := results.BuildOpportunityCards(sampleResponse())

	var buf bytes.Buffer
	if err := WriteOpportunityCSV(&buf, cards); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(rows))
	}

	wantHeader := "Rank,Address,Price,Lot Size,Zoning,ROI,Timeline,Investment,Net Profit,Score"
	if got := strings.Join(rows[0], ","); got != wantHeader {
		t.Errorf("header = %q, want %q", got, wantHeader)
	}

	first := rows[1]
	if first[0] != "1" {
		t.Errorf("first rank = %q, want 1-based rank", first[0])
	}
	if first[1] != "12847 - 66 Street NW, Edmonton" {
		t.Errorf("address mangled: %q", first[1])
	}
	if first[2] != "$485,000" {
		t.Errorf("price = %q, want $485,000", first[2])
	}
	if first[5] != "33.3%" {
		t.Errorf("first ROI = %q, want top scenario's 33.3%%", first[5])
	}
	if first[7] != "$2.1M" || first[8] != "$640K" {
		t.Errorf("investment/profit = %q/%q, want $2.1M/$640K", first[7], first[8])
	}

	second := rows[2]
	if second[0] != "2" || second[5] != "28.9%" {
		t.Errorf("second row rank/ROI = %q/%q, want 2/28.9%%", second[0], second[5])
	}
}

func TestWriteOpportunityCSVQuotesCommas(t *testing.T) {
	cards := results.BuildOpportunityCards(sampleResponse())

	var buf bytes.Buffer
	if err := WriteOpportunityCSV(&buf, cards); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"12847 - 66 Street NW, Edmonton"`) {
		t.Error("address with comma should be quoted in raw output")
	}
	if !strings.Contains(buf.String(), `"$485,000"`) {
		t.Error("formatted price should be quoted in raw output")
	}
}

func TestWritePlacementCSVRoundTrip(t *testing.T) {
	records := []placement.ExportRecord{
		{Type: "single-family", X: 90, Y: 90, Width: 120, Height: 80},
		{Type: "townhouse", X: 240, Y: 150, Width: 90, Height: 60},
	}

	var buf bytes.Buffer
	if err := WritePlacementCSV(&buf, records); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("got %d rows, want header + 2 data rows", len(rows))
	}
	if got := strings.Join(rows[1], ","); got != "single-family,90,90,120,80" {
		t.Errorf("first data row = %q", got)
	}
	if got := strings.Join(rows[2], ","); got != "townhouse,240,150,90,60" {
		t.Errorf("second data row = %q", got)
	}
}

func TestWritePlacementCSVEmptyBoard(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePlacementCSV(&buf, nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("empty board should produce header only, got %d rows", len(rows))
	}
}
