// Package results transforms analysis responses into the view models the
// summary panel and landing-page cards render. All builders are pure:
// rendering the same input twice yields identical output.
package results

import (
	"fmt"
	"strconv"
	"strings"

	"sgiach_demo_backend/internal/analysis/transport"
)

// SummaryCard is the property-analysis summary panel.
type SummaryCard struct {
	CostRange           string `json:"costRange"`
	Timeline            string `json:"timeline"`
	AmenityScore        string `json:"amenityScore"`
	Validation          string `json:"validation"`
	ProfessionalSummary string `json:"professionalSummary"`
}

// BuildSummary renders the fixed summary fields for one analysis result.
func BuildSummary(result transport.AnalysisResult) SummaryCard {
	validation := "Optional"
	if result.PropertyData.ProfessionalValidationRequired {
		validation = "Required"
	}

	infra := result.PropertyData.Infrastructure
	return SummaryCard{
		CostRange:           fmt.Sprintf("%s - %s", Currency(infra.CostMin), Currency(infra.CostMax)),
		Timeline:            infra.Timeline,
		AmenityScore:        fmt.Sprintf("%.1f/10", result.PropertyData.AmenityScore),
		Validation:          validation,
		ProfessionalSummary: result.ProfessionalSummary,
	}
}

// OpportunityCard is one landing-page opportunity card. Only the
// top-ranked scenario of the opportunity is rendered, even when more exist.
type OpportunityCard struct {
	Rank            int    `json:"rank"`
	Address         string `json:"address"`
	Price           string `json:"price"`
	LotSize         string `json:"lotSize"`
	Zoning          string `json:"zoning"`
	Source          string `json:"source"`
	DevelopmentType string `json:"developmentType"`
	Units           int    `json:"units"`
	ROI             string `json:"roi"`
	Timeline        string `json:"timeline"`
	Investment      string `json:"investment"`
	NetProfit       string `json:"netProfit"`
	Score           string `json:"score"`
}

// BuildOpportunityCards renders one card per opportunity. Rank is the
// 1-based position in the response; the order is never changed client-side.
func BuildOpportunityCards(resp transport.AnalyzeResponse) []OpportunityCard {
	cards := make([]OpportunityCard, 0, len(resp.Opportunities))
	for i, opp := range resp.Opportunities {
		card := OpportunityCard{
			Rank:    i + 1,
			Address: opp.Property.Address,
			Price:   Currency(opp.Property.Price),
			LotSize: opp.Property.LotSize,
			Zoning:  opp.Property.Zoning,
			Source:  opp.Property.Source,
			Score:   fmt.Sprintf("%.3f", opp.Score),
		}
		if len(opp.Scenarios) > 0 {
			top := opp.Scenarios[0]
			card.DevelopmentType = top.Name
			card.Units = top.TotalUnits
			card.ROI = fmt.Sprintf("%.1f%%", top.ROIPercentage)
			card.Timeline = fmt.Sprintf("%d months", top.TimelineMonths)
			card.Investment = Millions(top.TotalInvestment)
			card.NetProfit = Thousands(top.NetProfit)
		}
		cards = append(cards, card)
	}
	return cards
}

// Currency formats a dollar amount with thousand separators, no cents.
func Currency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	digits := strconv.FormatFloat(amount, 'f', 0, 64)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	if negative {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

// Millions renders an amount as "$X.YM".
func Millions(amount float64) string {
	return fmt.Sprintf("$%.1fM", amount/1e6)
}

// Thousands renders an amount as "$XK".
func Thousands(amount float64) string {
	return fmt.Sprintf("$%.0fK", amount/1e3)
}
