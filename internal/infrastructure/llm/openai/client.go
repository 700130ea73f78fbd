// Package openai provides a Classifier implementation for OpenAI-compatible chat completion APIs.
package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/ersonp/scamguard/internal/domain/entities"
	"github.com/ersonp/scamguard/internal/infrastructure/config"
)

// textPlaceholder is replaced by the escaped input text in classificationPrompt.
const textPlaceholder = "{TEXT}"

const classificationPrompt = `You are an AI Scam Detector.

Your job is to:
1. Classify the given text as either "SCAM", "POSSIBLY SCAM", or "SAFE".
2. Explain your reasoning clearly and briefly.
3. If the message contains a link, evaluate whether the link looks suspicious.

Instructions:
- Use your knowledge of common scam patterns (e.g., phishing, impersonation, urgency, reward offers, fake OTP requests).
- Be strict. If the message has scam-like traits, mark it as "SCAM" or "POSSIBLY SCAM".
- Always return both a label and an explanation.

Now analyze the following input:
{TEXT}

Please respond in the following JSON format only:
{
  "result": "SCAM", "POSSIBLY SCAM", or "SAFE",
  "confidence": a number between 0 and 1,
  "explanation": "Your detailed explanation of why this is classified as it is"
}`

const (
	defaultModel   = "deepseek-chat"
	defaultTimeout = 30 * time.Second
)

// Client implements ports.Classifier using a chat completion endpoint.
type Client struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewClient creates a new classifier client. A missing API key is allowed:
// calls then fail at the endpoint and callers fall back.
func NewClient(cfg config.ClassifierConfig) *Client {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.Endpoint != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.Endpoint, "/")
	}

	model := defaultModel
	if cfg.Model != "" {
		model = cfg.Model
	}

	timeout := defaultTimeout
	if cfg.Timeout > 0 {
		timeout = cfg.Timeout
	}

	return &Client{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   model,
		timeout: timeout,
	}
}

// Classify sends text inside the classification prompt and returns the raw model output.
func (c *Client) Classify(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(text),
			},
		},
		Temperature: 0.1,
	})
	if err != nil {
		return "", fmt.Errorf("%w: calling completion endpoint: %w", entities.ErrClassifierUnavailable, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: %w", entities.ErrClassifierUnavailable, errors.New("no choices in completion"))
	}

	return resp.Choices[0].Message.Content, nil
}

// BuildPrompt substitutes the escaped, quoted text into the classification prompt.
func BuildPrompt(text string) string {
	return strings.Replace(classificationPrompt, textPlaceholder, escapeText(text), 1)
}

// escapeText returns text as a quoted JSON string literal, leaving HTML characters as-is.
func escapeText(text string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(text) // encoding a string cannot fail
	return strings.TrimSuffix(buf.String(), "\n")
}
