package llm

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"

	"github.com/rohitsharma007/automation-script-generator/internal/config"
	"github.com/rohitsharma007/automation-script-generator/internal/logger"
	"github.com/rohitsharma007/automation-script-generator/internal/nlp"
)

type Client struct {
	api       *openai.Client
	model     string
	maxTokens int
	limiter   *RateLimiter
	log       *zap.Logger
}

func NewClient(cfg config.OpenAI, log *logger.Zap) *Client {
	return &Client{
		api:       openai.NewClient(cfg.KeyAI),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		limiter:   NewRateLimiter(20),
		log:       log.Logger,
	}
}

func (c *Client) SuggestSteps(ctx context.Context, description string) ([]nlp.TestStep, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: description},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса к LLM: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("пустой ответ LLM")
	}

	steps, err := parseStepsResponse(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	c.log.Info("шаги получены от LLM",
		zap.Int("steps", len(steps)),
		zap.Int("tokens", resp.Usage.TotalTokens))
	return steps, nil
}
