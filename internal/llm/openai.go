package llm

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/nguyentantai21042004/deck-flow/internal/logger"
	"github.com/sashabaranov/go-openai"
)

// openAIClient talks to any OpenAI compatible chat endpoint (Groq, OpenAI).
type openAIClient struct {
	client     *openai.Client
	model      string
	defaults   callOptions
	logger     logger.Logger
	maxRetries int
	retryDelay time.Duration
}

func (c *openAIClient) Complete(ctx context.Context, prompt string, opts ...Option) (string, error) {
	o := applyOptions(c.defaults, opts)

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: o.temperature,
		MaxTokens:   o.maxTokens,
	}
	// the request field is omitempty, so a zero would fall back to the
	// server default
	if req.Temperature == 0 {
		req.Temperature = math.SmallestNonzeroFloat32
	}
	if o.json {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retryDelay * time.Duration(attempt)
			c.logger.Warn(ctx, "Chat completion retry %d/%d in %s: %v", attempt, c.maxRetries, delay, lastErr)
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			if retryable(err) {
				lastErr = err
				continue
			}
			return "", fmt.Errorf("chat completion: %w", err)
		}

		if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
			return "", ErrEmptyResponse
		}
		return resp.Choices[0].Message.Content, nil
	}

	return "", fmt.Errorf("chat completion retries exhausted: %w", lastErr)
}

func retryable(err error) bool {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests || apiErr.HTTPStatusCode >= 500
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode == http.StatusTooManyRequests || reqErr.HTTPStatusCode >= 500
	}
	return false
}
