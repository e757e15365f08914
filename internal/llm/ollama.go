package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ibudubuduu/Smart-Task-Planner/internal/plan"
)

// HTTPClient is the request-execution seam; *http.Client satisfies it and
// tests substitute a fake.
type HTTPClient interface {
	Do(*http.Request) (*http.Response, error)
}

var _ HTTPClient = (*http.Client)(nil)

// Ollama generates plans through a locally running Ollama server. Every
// failure mode collapses into ErrUnavailable so the caller can fall back
// to the rule-based path; a failed attempt is never retried.
type Ollama struct {
	BaseURL         string
	Model           string
	Client          HTTPClient
	ProbeTimeout    time.Duration
	GenerateTimeout time.Duration
}

// NewOllama creates a client for the given server URL and model.
func NewOllama(baseURL, model string, probeTimeout, generateTimeout time.Duration) *Ollama {
	return &Ollama{
		BaseURL:         baseURL,
		Model:           model,
		Client:          &http.Client{},
		ProbeTimeout:    probeTimeout,
		GenerateTimeout: generateTimeout,
	}
}

func (g *Ollama) Name() string {
	return MethodOllama
}

// Probe reports whether the Ollama server answers its tags endpoint.
func (g *Ollama) Probe(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, g.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/api/tags", nil)
	if err != nil {
		return false
	}
	resp, err := g.Client.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return resp.StatusCode == http.StatusOK
}

type generateRequest struct {
	Model   string          `json:"model"`
	Prompt  string          `json:"prompt"`
	Stream  bool            `json:"stream"`
	Options generateOptions `json:"options"`
}

type generateOptions struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate asks the server for a plan and parses the JSON object embedded
// in its free-form response. Any transport, status, extraction, parse or
// validation failure wraps ErrUnavailable.
func (g *Ollama) Generate(ctx context.Context, goal string, now time.Time) (plan.Plan, error) {
	ctx, cancel := context.WithTimeout(ctx, g.GenerateTimeout)
	defer cancel()

	body, err := json.Marshal(generateRequest{
		Model:  g.Model,
		Prompt: buildPrompt(goal, plan.DateOf(now)),
		Stream: false,
		Options: generateOptions{
			Temperature: 0.7,
			TopP:        0.9,
		},
	})
	if err != nil {
		return plan.Plan{}, fmt.Errorf("%w: marshal request: %w", ErrUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return plan.Plan{}, fmt.Errorf("%w: build request: %w", ErrUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.Client.Do(req)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return plan.Plan{}, fmt.Errorf("%w: server returned status %d", ErrUnavailable, resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return plan.Plan{}, fmt.Errorf("%w: decode response envelope: %w", ErrUnavailable, err)
	}

	jsonStr, err := extractJSON(gr.Response)
	if err != nil {
		return plan.Plan{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	var p plan.Plan
	if err := json.Unmarshal([]byte(jsonStr), &p); err != nil {
		return plan.Plan{}, fmt.Errorf("%w: parse plan JSON: %w", ErrUnavailable, err)
	}
	p.Normalize()
	if err := plan.ValidatePlan(p); err != nil {
		return plan.Plan{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return p, nil
}
