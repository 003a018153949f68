package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// openAITimeout bounds a single completion call end to end.
const openAITimeout = 120 * time.Second

// OpenAIClient implements Client against the OpenAI /v1/chat/completions
// endpoint, or any API-compatible endpoint selected via Config.BaseURL.
type OpenAIClient struct {
	config     *Config
	apiKey     string
	httpClient *http.Client
}

// NewOpenAIClient creates a client for the configured chat completions endpoint.
func NewOpenAIClient(config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if config.BaseURL == "" {
		config.BaseURL = DefaultOpenAIBaseURL
	}

	return &OpenAIClient{
		config: config,
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: openAITimeout,
		},
	}, nil
}

// chatRequest mirrors the OpenAI /v1/chat/completions request body.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float32         `json:"temperature"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *jsonSchemaSpec `json:"json_schema,omitempty"`
}

type jsonSchemaSpec struct {
	Name   string         `json:"name"`
	Strict bool           `json:"strict"`
	Schema map[string]any `json:"schema"`
}

// chatResponse mirrors the relevant fields of the OpenAI response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// GenerateContent generates free-form text using the model for the given tier.
func (c *OpenAIClient) GenerateContent(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	return c.complete(ctx, prompt, nil, tier)
}

// GenerateJSON generates JSON output. When schema is non-nil it is enforced
// server-side via structured outputs, so the returned string is guaranteed to
// conform; otherwise json_object mode is used and callers validate the shape.
func (c *OpenAIClient) GenerateJSON(ctx context.Context, prompt string, schema map[string]any, tier ModelTier) (string, error) {
	format := &responseFormat{Type: "json_object"}
	if schema != nil {
		format = &responseFormat{
			Type: "json_schema",
			JSONSchema: &jsonSchemaSpec{
				Name:   "response",
				Strict: true,
				Schema: schema,
			},
		}
	}

	text, err := c.complete(ctx, prompt, format, tier)
	if err != nil {
		return "", err
	}
	return CleanJSONBlock(text), nil
}

// GetModel returns the model name for a tier
func (c *OpenAIClient) GetModel(tier ModelTier) string {
	return c.config.GetModel(tier)
}

// Close releases resources held by the client. The HTTP client holds none.
func (c *OpenAIClient) Close() error {
	return nil
}

func (c *OpenAIClient) complete(ctx context.Context, prompt string, format *responseFormat, tier ModelTier) (string, error) {
	modelName := c.config.GetModel(tier)
	if modelName == "" {
		return "", fmt.Errorf("no model configured for tier %s", tier)
	}

	reqBody := chatRequest{
		Model: modelName,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature:    c.config.Temperature,
		ResponseFormat: format,
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal llm request: %w", err)
	}

	url := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create llm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &ServiceError{Message: "llm request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &ServiceError{Message: "read llm response", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &ServiceError{
			Message: fmt.Sprintf("llm returned HTTP %d: %s", resp.StatusCode, string(respBytes)),
		}
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", &ServiceError{Message: "parse llm response", Cause: err}
	}

	if chatResp.Error != nil {
		return "", &ServiceError{
			Message: fmt.Sprintf("llm error (%s): %s", chatResp.Error.Type, chatResp.Error.Message),
		}
	}

	if len(chatResp.Choices) == 0 {
		return "", &ServiceError{Message: "llm returned no choices"}
	}

	return chatResp.Choices[0].Message.Content, nil
}
