// Package gemini adapts the Gemini API to generation.Generator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"curcunapanel/internal/generation"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.0-flash-lite"

// Client sends single-turn prompts to one Gemini model.
type Client struct {
	client *genai.Client
	model  string
}

// New creates a Gemini client authenticated with apiKey. Extra options
// are passed to the SDK, e.g. a custom endpoint.
func New(ctx context.Context, apiKey, model string, opts ...option.ClientOption) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, generation.ErrNotConfigured
	}
	if model == "" {
		model = DefaultModel
	}

	client, err := genai.NewClient(ctx, append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("failed to create generative client: %w", err)
	}
	return &Client{client: client, model: model}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	return c.client.Close()
}

// Generate sends prompt as a single user turn and returns the first
// candidate's text. Exactly one request is made.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.GenerativeModel(c.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classify(err)
	}

	text := firstText(resp)
	if text == "" {
		return "", generation.ErrEmptyCandidate
	}
	return text, nil
}

// firstText returns the first text part of the first candidate.
func firstText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	cand := resp.Candidates[0]
	if cand == nil || cand.Content == nil {
		return ""
	}
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return ""
}

// classify maps SDK errors onto the generation failure classes.
func classify(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		msg := apiErr.Message
		if msg == "" {
			msg = fmt.Sprintf("HTTP %d", apiErr.Code)
		}
		return &generation.UpstreamError{
			Kind:       generation.ErrUpstreamMalformed,
			StatusCode: apiErr.Code,
			Message:    msg,
			Err:        err,
		}
	}

	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return &generation.UpstreamError{
			Kind:       generation.ErrUpstreamMalformed,
			StatusCode: http.StatusOK,
			Message:    blocked.Error(),
			Err:        err,
		}
	}

	return &generation.UpstreamError{
		Kind:    generation.ErrUpstreamUnavailable,
		Message: err.Error(),
		Err:     err,
	}
}
