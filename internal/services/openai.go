package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"craftpad-backend/internal/models"
)

const (
	chatModel       = "gpt-4o-mini"
	chatTemperature = 0.7
)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint.
type OpenAIClient struct {
	apiKey     string
	apiURL     string
	httpClient *http.Client
}

func NewOpenAIClient(apiKey, apiURL string) *OpenAIClient {
	return &OpenAIClient{
		apiKey:     apiKey,
		apiURL:     apiURL,
		httpClient: http.DefaultClient,
	}
}

// Chat-completions wire shapes.

type chatCompletionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	Temperature float64              `json:"temperature"`
	Stream      bool                 `json:"stream"`
}

type chatCompletionChoice struct {
	Index   int                `json:"index"`
	Message models.ChatMessage `json:"message"`
}

type chatCompletionResponse struct {
	ID      string                 `json:"id"`
	Model   string                 `json:"model"`
	Choices []chatCompletionChoice `json:"choices"`
}

// CreateChatCompletion submits the message list and returns the first
// choice's content, or "" when the response carries no choices.
func (c *OpenAIClient) CreateChatCompletion(ctx context.Context, messages []models.ChatMessage) (string, error) {
	payload, err := json.Marshal(chatCompletionRequest{
		Model:       chatModel,
		Messages:    messages,
		Temperature: chatTemperature,
		Stream:      false,
	})
	if err != nil {
		return "", &RelayError{Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", &RelayError{Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &RelayError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RelayError{Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// The raw body is relayed to the caller for diagnosis.
		return "", &UpstreamError{Status: resp.StatusCode, Body: string(body)}
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", &RelayError{Err: err}
	}

	if len(completion.Choices) == 0 {
		return "", nil
	}
	return completion.Choices[0].Message.Content, nil
}

// UpstreamError means the completion endpoint answered with a non-2xx
// status. Body holds the upstream response verbatim.
type UpstreamError struct {
	Status int
	Body   string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream returned status %d", e.Status)
}

// RelayError covers everything else: network failure, malformed JSON,
// unexpected response shape.
type RelayError struct{ Err error }

func (e *RelayError) Error() string { return e.Err.Error() }

func (e *RelayError) Unwrap() error { return e.Err }
