// Package ai holds the outbound client for the Gemini generateContent
// endpoint. One POST per narrative, no retries: a failed call is terminal
// for that user action.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	defaultModel   = "gemini-2.0-flash"

	// fixed sampling parameters: low temperature, bounded output
	temperature     = 0.3
	maxOutputTokens = 3000
)

// APIError carries the error payload returned by the remote endpoint.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return "generation api: " + e.Message }

// ErrMalformedResponse flags a 2xx response without the expected candidate
// structure.
var ErrMalformedResponse = errors.New("generation response missing expected structure")

type Client struct {
	httpClient *http.Client
	baseURL    string
	model      string
}

// NewClient builds a Gemini client. baseURL defaults to the public
// endpoint; timeout bounds the whole request.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		model:      defaultModel,
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one prompt and returns the first generated text.
func (c *Client) Generate(ctx context.Context, apiKey, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{Temperature: temperature, MaxOutputTokens: maxOutputTokens},
	})
	if err != nil {
		return "", err
	}
	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		c.baseURL, c.model, url.QueryEscape(apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", ErrMalformedResponse
	}
	if out.Error != nil {
		return "", &APIError{Message: out.Error.Message}
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrMalformedResponse
	}
	return out.Candidates[0].Content.Parts[0].Text, nil
}
