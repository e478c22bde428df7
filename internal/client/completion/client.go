package completion

import (
	"context"
	"fmt"
	"time"

	go_openai "github.com/sashabaranov/go-openai"

	"github.com/forkline/chat-service/internal/config"
)

type Client struct {
	client  *go_openai.Client
	model   string
	timeout time.Duration
}

func New(cfg *config.Config) *Client {
	clientConfig := go_openai.DefaultConfig(cfg.Completion.APIKey)
	if cfg.Completion.BaseURL != "" {
		clientConfig.BaseURL = cfg.Completion.BaseURL
	}

	return &Client{
		client:  go_openai.NewClientWithConfig(clientConfig),
		model:   cfg.Completion.Model,
		timeout: cfg.Completion.Timeout,
	}
}

// Complete performs one synchronous model call. The call is bounded by the
// configured timeout; cancelling the caller's context aborts it.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(ctx, go_openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []go_openai.ChatCompletionMessage{
			{
				Role:    go_openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
