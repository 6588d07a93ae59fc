package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"
)

var (
	ErrAIKeyNotSet = errors.New("OPENAI_API_KEY is not set")
	// ErrUpstream covers every provider failure other than a timeout:
	// quota, network, bad credentials. Detail is logged, not returned.
	ErrUpstream        = errors.New("upstream provider error")
	ErrUpstreamTimeout = errors.New("upstream provider timed out")
)

// Completer is the narrow contract the chat routes need from the AI
// provider.
type Completer interface {
	Complete(ctx context.Context, prompt string, useWeb bool) (string, error)
}

// AIService proxies chat and code-generation prompts to the external
// provider. Calls carry an explicit timeout so a slow provider surfaces
// as ErrUpstreamTimeout instead of hanging the request.
type AIService struct {
	client  *openai.Client
	timeout time.Duration
}

// NewAIService creates a new AIService. Returns nil when no API key is
// configured; callers treat a nil service as ErrAIKeyNotSet at use time.
func NewAIService(apiKey string, timeout time.Duration) *AIService {
	if apiKey == "" {
		return nil
	}
	return &AIService{
		client:  openai.NewClient(apiKey),
		timeout: timeout,
	}
}

// Complete sends a prompt to the provider and returns the text
// completion. When useWeb is set the search-enabled model variant is
// used so answers can draw on current information.
func (s *AIService) Complete(ctx context.Context, prompt string, useWeb bool) (string, error) {
	if s == nil || s.client == nil {
		return "", ErrAIKeyNotSet
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	model := openai.GPT4o
	if useWeb {
		model = "gpt-4o-search-preview"
	}

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			MaxTokens: 2000,
		},
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", ErrUpstreamTimeout
		}
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty completion", ErrUpstream)
	}

	return resp.Choices[0].Message.Content, nil
}
