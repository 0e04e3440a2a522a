package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse is returned when the backend answers with no text.
var ErrEmptyResponse = errors.New("empty response from model")

// Client sends a single prompt and returns the model's text answer.
type Client interface {
	Complete(ctx context.Context, prompt string, opts ...Option) (string, error)
}

// Option tunes one Complete call.
type Option func(*callOptions)

type callOptions struct {
	json        bool
	temperature float32
	maxTokens   int
}

// WithJSON asks the backend for a JSON object where it supports that.
func WithJSON() Option {
	return func(o *callOptions) { o.json = true }
}

func WithTemperature(t float32) Option {
	return func(o *callOptions) { o.temperature = t }
}

func WithMaxTokens(n int) Option {
	return func(o *callOptions) { o.maxTokens = n }
}

func applyOptions(defaults callOptions, opts []Option) callOptions {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
