// Package exports produces the downloadable artifacts of a demo session:
// the opportunity table as CSV and the placement layout as CSV or JSON.
package exports

import (
	"encoding/csv"
	"io"
	"strconv"

	"sgiach_demo_backend/internal/placement"
	"sgiach_demo_backend/internal/results"
)

// OpportunityCSVHeader is the fixed column order of the opportunity export.
var OpportunityCSVHeader = []string{
	"Rank", "Address", "Price", "Lot Size", "Zoning",
	"ROI", "Timeline", "Investment", "Net Profit", "Score",
}

// PlacementCSVHeader is the fixed column order of the placement export.
var PlacementCSVHeader = []string{"Type", "X", "Y", "Width", "Height"}

func opportunityRow(card results.OpportunityCard) []string {
	return []string{
		strconv.Itoa(card.Rank),
		card.Address,
		card.Price,
		card.LotSize,
		card.Zoning,
		card.ROI,
		card.Timeline,
		card.Investment,
		card.NetProfit,
		card.Score,
	}
}

// WriteOpportunityCSV writes the header plus one row per card. Fields with
// commas (formatted prices, street addresses) are quoted by the encoder.
func WriteOpportunityCSV(w io.Writer, cards []results.OpportunityCard) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(OpportunityCSVHeader); err != nil {
		return err
	}
	for _, card := range cards {
		if err := writer.Write(opportunityRow(card)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func placementRow(rec placement.ExportRecord) []string {
	return []string{
		rec.Type,
		strconv.Itoa(rec.X),
		strconv.Itoa(rec.Y),
		strconv.Itoa(rec.Width),
		strconv.Itoa(rec.Height),
	}
}

// WritePlacementCSV writes the header plus one row per placed building,
// in insertion order.
func WritePlacementCSV(w io.Writer, records []placement.ExportRecord) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(PlacementCSVHeader); err != nil {
		return err
	}
	for _, rec := range records {
		if err := writer.Write(placementRow(rec)); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
