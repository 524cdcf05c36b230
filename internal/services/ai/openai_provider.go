// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}
	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

// GetCompletion sends a single-turn prompt and returns the model's
// reply. Transient failures are retried with a fixed delay.
func (p *OpenAIProvider) GetCompletion(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < p.config.MaxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", NewProviderError("completion", "context cancelled", ctx.Err())
			case <-time.After(p.config.RetryDelay):
			}
		}

		reqCtx, cancel := context.WithTimeout(ctx, p.config.Timeout)
		resp, err := p.client.CreateChatCompletion(
			reqCtx,
			openai.ChatCompletionRequest{
				Model: p.config.Model,
				Messages: []openai.ChatCompletionMessage{
					{
						Role:    openai.ChatMessageRoleUser,
						Content: prompt,
					},
				},
				Temperature: p.config.Temperature,
				TopP:        p.config.TopP,
			},
		)
		cancel()

		if err != nil {
			lastErr = err
			continue
		}
		if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
			return "", &AIError{
				Type:      ErrTypeProvider,
				Operation: "completion",
				Message:   "empty completion response",
			}
		}
		return resp.Choices[0].Message.Content, nil
	}
	return "", NewProviderError("completion", "failed to create completion", lastErr)
}

func (p *OpenAIProvider) HealthCheck(ctx context.Context) error {
	return nil
}
