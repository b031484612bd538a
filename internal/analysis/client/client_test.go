package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/platform/logger"
)

type testConfig struct {
	url     string
	timeout time.Duration
}

func (c testConfig) GetAnalysisAPIURL() string         { return c.url }
func (c testConfig) GetAnalysisTimeout() time.Duration { return c.timeout }

func newTestClient(url string) *Client {
	return New(testConfig{url: url, timeout: 2 * time.Second}, logger.New("test"))
}

func sampleRequest() transport.AnalysisRequest {
	return transport.AnalysisRequest{
		Address:      "10235 - 124 Street NW",
		Coordinates:  transport.Coordinates{Latitude: 53.5461, Longitude: -113.4938},
		Municipality: "edmonton",
		PropertyType: "residential",
		SizeHectares: 0.89,
		Zoning:       "RF3",
		AnalysisType: "comprehensive",
	}
}

func TestComprehensiveAnalysisLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/property/comprehensive-analysis" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var req transport.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("bad request body: %v", err)
		}
		json.NewEncoder(w).Encode(transport.AnalysisResult{
			PropertyData: transport.PropertyData{AmenityScore: 9.1},
		})
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).ComprehensiveAnalysis(context.Background(), sampleRequest())
	if outcome.Source != SourceLive {
		t.Fatalf("source = %q, want live", outcome.Source)
	}
	if outcome.Result.PropertyData.AmenityScore != 9.1 {
		t.Errorf("result not decoded: %+v", outcome.Result.PropertyData)
	}
}

func TestComprehensiveAnalysisFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).ComprehensiveAnalysis(context.Background(), sampleRequest())
	if outcome.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", outcome.Source)
	}
	if outcome.Reason == "" {
		t.Error("fallback outcome should carry a reason")
	}
	if len(outcome.Result.PropertyData.UtilityConnections) != 4 {
		t.Errorf("got %d fallback utilities, want 4", len(outcome.Result.PropertyData.UtilityConnections))
	}
	if !outcome.Result.PropertyData.ProfessionalValidationRequired {
		t.Error("fallback result should require professional validation")
	}
}

func TestComprehensiveAnalysisFallsBackOnConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // nothing listening anymore

	outcome := newTestClient(srv.URL).ComprehensiveAnalysis(context.Background(), sampleRequest())
	if outcome.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", outcome.Source)
	}
	if len(outcome.Result.PropertyData.AmenityFeatures) != 4 {
		t.Errorf("got %d fallback amenities, want 4", len(outcome.Result.PropertyData.AmenityFeatures))
	}
}

func TestRequestValidationSurfacesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).RequestValidation(context.Background(), transport.ValidationRequest{})
	if err == nil {
		t.Fatal("validation failures must be surfaced, not substituted")
	}
}

func TestRequestValidationSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/professional/validation-request" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(transport.ValidationResponse{
			ValidationRequest: transport.ValidationTicket{RequestID: "VR-1042", Status: "queued"},
		})
	}))
	defer srv.Close()

	resp, err := newTestClient(srv.URL).RequestValidation(context.Background(), transport.ValidationRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ValidationRequest.RequestID != "VR-1042" {
		t.Errorf("ticket = %+v", resp.ValidationRequest)
	}
}

func TestCheckConnectivityHealthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		json.NewEncoder(w).Encode(transport.HealthResponse{Status: "ok", Message: "Ready"})
	}))
	defer srv.Close()

	status, msg := newTestClient(srv.URL).CheckConnectivity(context.Background())
	if status != transport.StatusConnected || msg != "Ready" {
		t.Errorf("got %q/%q, want connected/Ready", status, msg)
	}
}

func TestCheckConnectivityRootProbeFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	status, msg := newTestClient(srv.URL).CheckConnectivity(context.Background())
	if status != transport.StatusConnected {
		t.Fatalf("status = %q, want connected via root probe", status)
	}
	if msg != "Ready" {
		t.Errorf("msg = %q, want Ready default", msg)
	}
}

func TestCheckConnectivityBothProbesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	status, _ := newTestClient(srv.URL).CheckConnectivity(context.Background())
	if status != transport.StatusDisconnected {
		t.Errorf("status = %q, want disconnected", status)
	}
}

func TestAnalyzeFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	outcome := newTestClient(srv.URL).Analyze(context.Background(), transport.OpportunitySearch{})
	if outcome.Source != SourceFallback {
		t.Fatalf("source = %q, want fallback", outcome.Source)
	}
	if len(outcome.Response.Opportunities) != 3 {
		t.Errorf("got %d fallback opportunities, want 3", len(outcome.Response.Opportunities))
	}
	top := outcome.Response.Opportunities[0]
	if len(top.Scenarios) == 0 || top.Scenarios[0].ROIPercentage != 33.3 {
		t.Errorf("top fallback scenario = %+v", top.Scenarios)
	}
}

func TestQuickAnalysisLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/quick-analysis" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(transport.AnalyzeResponse{
			DataSources: []string{"mls"},
		})
	}))
	defer srv.Close()

	outcome := newTestClient(srv.URL).QuickAnalysis(context.Background())
	if outcome.Source != SourceLive {
		t.Fatalf("source = %q, want live", outcome.Source)
	}
	if len(outcome.Response.DataSources) != 1 || outcome.Response.DataSources[0] != "mls" {
		t.Errorf("response not decoded: %+v", outcome.Response)
	}
}
