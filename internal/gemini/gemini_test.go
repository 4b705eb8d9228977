package gemini

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"curcunapanel/internal/generation"
)

func TestNewRequiresKey(t *testing.T) {
	_, err := New(context.Background(), "  ", "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, generation.ErrNotConfigured))
}

func TestFirstText(t *testing.T) {
	tests := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{"nil content", &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}}, ""},
		{
			"first text part",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("  hello  "), genai.Text("ignored")}}},
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("second candidate")}}},
			}},
			"  hello  ",
		},
		{
			"skips non-text parts",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}, genai.Text("caption")}}},
			}},
			"caption",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, firstText(tt.resp))
		})
	}
}

func TestClassifyAPIError(t *testing.T) {
	err := classify(fmt.Errorf("rpc: %w", &googleapi.Error{Code: 400, Message: "API key not valid"}))

	var up *generation.UpstreamError
	require.True(t, errors.As(err, &up))
	assert.Equal(t, 400, up.StatusCode)
	assert.Equal(t, "API key not valid", up.Message)
	assert.True(t, errors.Is(err, generation.ErrUpstreamMalformed))
	assert.Equal(t, "API key not valid", generation.PublicMessage(err))
}

func TestClassifyAPIErrorWithoutMessage(t *testing.T) {
	err := classify(&googleapi.Error{Code: 503})
	assert.Equal(t, "HTTP 503", generation.PublicMessage(err))
	assert.Equal(t, 503, generation.StatusCode(err))
}

func TestClassifyTransportError(t *testing.T) {
	err := classify(errors.New("dial tcp: connection refused"))
	assert.True(t, errors.Is(err, generation.ErrUpstreamUnavailable))
	assert.Equal(t, 0, generation.StatusCode(err))
	assert.Equal(t, "dial tcp: connection refused", generation.PublicMessage(err))
}
