// Package clients holds HTTP clients for external collaborators
package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/coursehub/backend/internal/models"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// ErrGenerationDisabled is returned when no API key is configured.
// The outline feature degrades gracefully instead of failing requests.
var ErrGenerationDisabled = errors.New("outline generation is disabled")

// ErrGenerationFailed covers every transport, HTTP and payload failure of the
// outline endpoint. Callers surface it as a single user-visible category.
var ErrGenerationFailed = errors.New("outline generation failed")

// geminiClient calls the Gemini generateContent endpoint with a JSON response
// schema so the reply parses directly into a course outline
type geminiClient struct {
	client *resty.Client
	apiKey string
	model  string
	logger *zap.Logger
}

// NewGeminiClient creates a new Gemini outline client. An empty apiKey
// disables the client: every call returns ErrGenerationDisabled.
func NewGeminiClient(baseURL, apiKey, model string, logger *zap.Logger) *geminiClient {
	return &geminiClient{
		client: resty.New().SetBaseURL(baseURL),
		apiKey: apiKey,
		model:  model,
		logger: logger,
	}
}

// generateContentResponse mirrors the slice of the Gemini response we need
type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateOutline requests a structured course draft for a topic and audience
func (c *geminiClient) GenerateOutline(ctx context.Context, topic, audience string) (*models.CourseOutline, error) {
	if c.apiKey == "" {
		return nil, ErrGenerationDisabled
	}

	prompt := fmt.Sprintf(`Create an online course outline about %q aimed at %q.
The course needs a catchy title, a short description and 2 modules, each with 2 lessons.
For each lesson provide a title, an estimated duration (e.g. "10 min") and brief content in markdown.`, topic, audience)

	payload := map[string]any{
		"contents": []map[string]any{
			{"parts": []map[string]string{{"text": prompt}}},
		},
		"generationConfig": map[string]any{
			"responseMimeType": "application/json",
			"responseSchema": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"title":       map[string]string{"type": "STRING"},
					"description": map[string]string{"type": "STRING"},
					"modules": map[string]any{
						"type": "ARRAY",
						"items": map[string]any{
							"type": "OBJECT",
							"properties": map[string]any{
								"title": map[string]string{"type": "STRING"},
								"lessons": map[string]any{
									"type": "ARRAY",
									"items": map[string]any{
										"type": "OBJECT",
										"properties": map[string]any{
											"title":    map[string]string{"type": "STRING"},
											"duration": map[string]string{"type": "STRING"},
											"content":  map[string]string{"type": "STRING"},
										},
										"required": []string{"title", "duration", "content"},
									},
								},
							},
							"required": []string{"title", "lessons"},
						},
					},
				},
				"required": []string{"title", "description", "modules"},
			},
		},
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("key", c.apiKey).
		SetBody(payload).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", c.model))
	if err != nil {
		c.logger.Error("outline request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}
	if resp.IsError() {
		c.logger.Error("outline request rejected",
			zap.Int("status", resp.StatusCode()),
			zap.String("body", resp.String()),
		)
		return nil, fmt.Errorf("%w: status %d", ErrGenerationFailed, resp.StatusCode())
	}

	var result generateContentResponse
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("%w: invalid response body", ErrGenerationFailed)
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("%w: no structured response returned", ErrGenerationFailed)
	}

	var outline models.CourseOutline
	if err := json.Unmarshal([]byte(result.Candidates[0].Content.Parts[0].Text), &outline); err != nil {
		c.logger.Error("outline payload is not valid JSON", zap.Error(err))
		return nil, fmt.Errorf("%w: malformed outline payload", ErrGenerationFailed)
	}
	if outline.Title == "" || len(outline.Modules) == 0 {
		return nil, fmt.Errorf("%w: incomplete outline payload", ErrGenerationFailed)
	}

	return &outline, nil
}
