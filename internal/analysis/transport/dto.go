// Package transport defines the wire types shared between the analysis
// module, the upstream development-analysis API, and the frontend.
package transport

// Coordinates is a WGS84 point. Captured once from user input or the
// municipality lookup and never mutated afterwards.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// AnalysisRequest is the payload for POST /property/comprehensive-analysis.
type AnalysisRequest struct {
	Address      string      `json:"address" validate:"required,min=3"`
	Coordinates  Coordinates `json:"coordinates"`
	Municipality string      `json:"municipality" validate:"required"`
	PropertyType string      `json:"propertyType" validate:"required"`
	SizeHectares float64     `json:"sizeHectares" validate:"gt=0"`
	Zoning       string      `json:"zoning" validate:"required"`
	AnalysisType string      `json:"analysisType" validate:"required"`
}

// Utility is a utility connection near the analyzed property.
// Read-only display record.
type Utility struct {
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
	Distance    string      `json:"distance"`
	Cost        string      `json:"cost"`
	Status      string      `json:"status"`
	Timeline    string      `json:"timeline"`
	Details     string      `json:"details"`
}

// Amenity is a nearby amenity feature. Read-only display record.
type Amenity struct {
	Type        string      `json:"type"`
	Coordinates Coordinates `json:"coordinates"`
	Distance    string      `json:"distance"`
	Impact      string      `json:"impact"`
	Status      string      `json:"status"`
	Details     string      `json:"details"`
}

// Infrastructure summarizes servicing costs for the property.
type Infrastructure struct {
	CostMin  float64 `json:"costMin"`
	CostMax  float64 `json:"costMax"`
	Timeline string  `json:"timeline"`
}

// PropertyData is the analyzed property detail block.
type PropertyData struct {
	UtilityConnections             []Utility      `json:"utilityConnections"`
	AmenityFeatures                []Amenity      `json:"amenityFeatures"`
	Infrastructure                 Infrastructure `json:"infrastructure"`
	AmenityScore                   float64        `json:"amenityScore"`
	ProfessionalValidationRequired bool           `json:"professionalValidationRequired"`
}

// AnalysisResult is the response of the comprehensive analysis endpoint.
// A session holds exactly one of these at a time; a new analysis replaces
// it wholesale.
type AnalysisResult struct {
	PropertyData        PropertyData `json:"propertyData"`
	ProfessionalSummary string       `json:"professionalSummary"`
}

// ValidationRequest is the payload for POST /professional/validation-request.
type ValidationRequest struct {
	ValidationType string       `json:"validationType" validate:"required"`
	PropertyData   PropertyData `json:"propertyData"`
}

// ValidationTicket is the upstream's record of a validation request.
type ValidationTicket struct {
	RequestID string `json:"requestId"`
	Status    string `json:"status,omitempty"`
	Estimate  string `json:"estimate,omitempty"`
}

// ValidationResponse wraps the validation ticket as the upstream returns it.
type ValidationResponse struct {
	ValidationRequest ValidationTicket `json:"validationRequest"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status  string `json:"status,omitempty"`
	Message string `json:"message,omitempty"`
}

// ConnectionStatus is the tri-state connectivity indicator.
type ConnectionStatus string

const (
	StatusConnecting   ConnectionStatus = "connecting"
	StatusConnected    ConnectionStatus = "connected"
	StatusDisconnected ConnectionStatus = "disconnected"
)

// SearchCriteria narrows the landing-page opportunity search.
type SearchCriteria struct {
	City     string  `json:"city"`
	Province string  `json:"province"`
	MinPrice float64 `json:"minPrice"`
	MaxPrice float64 `json:"maxPrice"`
}

// DeveloperPreferences weight the opportunity ranking upstream.
type DeveloperPreferences struct {
	RiskTolerance          float64  `json:"riskTolerance"`
	PreferredPropertyTypes []string `json:"preferredPropertyTypes"`
	MinROIThreshold        float64  `json:"minRoiThreshold"`
	MaxTimelineMonths      int      `json:"maxDevelopmentTimelineMonths"`
	FinancingPreference    string   `json:"financingPreference"`
}

// OpportunitySearch is the payload for POST /analyze.
type OpportunitySearch struct {
	SearchCriteria SearchCriteria       `json:"searchCriteria"`
	Preferences    DeveloperPreferences `json:"preferences"`
}

// OpportunityProperty is the listing behind an opportunity.
type OpportunityProperty struct {
	Address string  `json:"address"`
	Price   float64 `json:"price"`
	LotSize string  `json:"lotSize"`
	Zoning  string  `json:"zoning"`
	Source  string  `json:"source"`
}

// Scenario is one development scenario for an opportunity. The first
// scenario in the slice is the upstream's top-ranked one.
type Scenario struct {
	Name            string  `json:"name"`
	TotalUnits      int     `json:"totalUnits"`
	TimelineMonths  int     `json:"timelineMonths"`
	ROIPercentage   float64 `json:"roiPercentage"`
	TotalInvestment float64 `json:"totalInvestment"`
	NetProfit       float64 `json:"netProfit"`
}

// Opportunity is one ranked development opportunity. Rank is its position
// in the upstream response; the client never re-sorts.
type Opportunity struct {
	Property  OpportunityProperty `json:"property"`
	Scenarios []Scenario          `json:"scenarios"`
	Score     float64             `json:"score"`
}

// AnalysisSummary aggregates an opportunity analysis run.
type AnalysisSummary struct {
	TotalScraped        int     `json:"totalScraped"`
	TotalAnalyzed       int     `json:"totalAnalyzed"`
	MeetingROIThreshold int     `json:"meetingRoiThreshold"`
	AverageROI          float64 `json:"averageRoi"`
}

// AnalyzeResponse is the response of POST /analyze and GET /quick-analysis.
type AnalyzeResponse struct {
	Summary           AnalysisSummary `json:"summary"`
	Opportunities     []Opportunity   `json:"opportunities"`
	AnalysisTimestamp string          `json:"analysisTimestamp"`
	DataSources       []string        `json:"dataSources"`
}
