// Package client provides the HTTP client for the remote development-analysis API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"sgiach_demo_backend/internal/analysis/transport"
	"sgiach_demo_backend/platform/apperr"
	"sgiach_demo_backend/platform/config"
	"sgiach_demo_backend/platform/logger"
)

const (
	pathComprehensiveAnalysis = "/property/comprehensive-analysis"
	pathValidationRequest     = "/professional/validation-request"
	pathHealth                = "/health"
	pathRoot                  = "/"
	pathAnalyze               = "/analyze"
	pathQuickAnalysis         = "/quick-analysis"
)

// Source tells callers whether a result came from the live API or from the
// hard-coded substitute dataset.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// AnalysisOutcome is the two-variant result of a comprehensive analysis
// call: live data, or fallback data with the reason the live call failed.
type AnalysisOutcome struct {
	Source Source
	Reason string
	Result transport.AnalysisResult
}

// OpportunityOutcome is the two-variant result of an opportunity analysis.
type OpportunityOutcome struct {
	Source   Source
	Reason   string
	Response transport.AnalyzeResponse
}

// Client is the HTTP client for the development-analysis API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// New creates a new analysis API client.
func New(cfg config.UpstreamConfig, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.GetAnalysisTimeout()},
		baseURL:    cfg.GetAnalysisAPIURL(),
		log:        log,
	}
}

// ComprehensiveAnalysis runs the main property analysis. It never fails:
// on transport errors or non-2xx responses it substitutes the deterministic
// fallback result so the page always has something to render. Exactly one
// attempt is made per call.
func (c *Client) ComprehensiveAnalysis(ctx context.Context, req transport.AnalysisRequest) AnalysisOutcome {
	var result transport.AnalysisResult
	if err := c.postJSON(ctx, pathComprehensiveAnalysis, req, &result); err != nil {
		c.log.FallbackServed("comprehensive-analysis", err.Error())
		return AnalysisOutcome{
			Source: SourceFallback,
			Reason: err.Error(),
			Result: FallbackAnalysis(req),
		}
	}
	return AnalysisOutcome{Source: SourceLive, Result: result}
}

// RequestValidation files a professional validation request. Unlike the
// analysis path, failures here ARE surfaced to the caller.
func (c *Client) RequestValidation(ctx context.Context, req transport.ValidationRequest) (*transport.ValidationResponse, error) {
	var resp transport.ValidationResponse
	if err := c.postJSON(ctx, pathValidationRequest, req, &resp); err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "validation request failed", err).
			WithOp("analysis.RequestValidation").
			WithDetails(err.Error())
	}
	return &resp, nil
}

// CheckConnectivity probes GET /health; when that fails it probes GET /
// before concluding disconnected. Returns the resulting tri-state and the
// upstream's message, if any.
func (c *Client) CheckConnectivity(ctx context.Context) (transport.ConnectionStatus, string) {
	var health transport.HealthResponse
	if err := c.getJSON(ctx, pathHealth, &health); err == nil {
		msg := health.Message
		if msg == "" {
			msg = "Ready"
		}
		return transport.StatusConnected, msg
	}

	if err := c.probe(ctx, pathRoot); err == nil {
		return transport.StatusConnected, "Ready"
	}

	return transport.StatusDisconnected, ""
}

// Analyze runs the landing-page opportunity search, substituting the sample
// opportunity set when the upstream is unreachable.
func (c *Client) Analyze(ctx context.Context, req transport.OpportunitySearch) OpportunityOutcome {
	var resp transport.AnalyzeResponse
	if err := c.postJSON(ctx, pathAnalyze, req, &resp); err != nil {
		c.log.FallbackServed("analyze", err.Error())
		return OpportunityOutcome{
			Source:   SourceFallback,
			Reason:   err.Error(),
			Response: FallbackOpportunities(),
		}
	}
	return OpportunityOutcome{Source: SourceLive, Response: resp}
}

// QuickAnalysis runs the opportunity search with upstream defaults.
func (c *Client) QuickAnalysis(ctx context.Context) OpportunityOutcome {
	var resp transport.AnalyzeResponse
	if err := c.getJSON(ctx, pathQuickAnalysis, &resp); err != nil {
		c.log.FallbackServed("quick-analysis", err.Error())
		return OpportunityOutcome{
			Source:   SourceFallback,
			Reason:   err.Error(),
			Response: FallbackOpportunities(),
		}
	}
	return OpportunityOutcome{Source: SourceLive, Response: resp}
}

func (c *Client) postJSON(ctx context.Context, path string, body, out interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	return c.do(req, path, out)
}

func (c *Client) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	return c.do(req, path, out)
}

// probe issues a GET and only checks for a 2xx status, discarding the body.
func (c *Client) probe(ctx context.Context, path string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}
	return nil
}

func (c *Client) do(req *http.Request, path string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.UpstreamError(path, req.URL.String(), err)
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	// Non-2xx responses are treated identically to transport failures.
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.UpstreamError(path, req.URL.String(), fmt.Errorf("status %d", resp.StatusCode))
		return fmt.Errorf("upstream error: status %d", resp.StatusCode)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.log.UpstreamError(path, req.URL.String(), err)
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
