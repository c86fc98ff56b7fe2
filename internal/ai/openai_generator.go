package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"keystone-site/internal/models"

	openaigo "github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
)

const openAIClientLabel = "openai"

// OpenAIGenerator ходит в OpenAI-совместимый API (по умолчанию OpenRouter).
type OpenAIGenerator struct {
	client *openaigo.Client
	opts   Options
	logger *zap.Logger
}

// NewOpenAIGenerator создает генератор поверх go-openai.
func NewOpenAIGenerator(opts Options, logger *zap.Logger) *OpenAIGenerator {
	clientConfig := openaigo.DefaultConfig(opts.APIKey)
	if opts.BaseURL != "" {
		clientConfig.BaseURL = strings.TrimSuffix(opts.BaseURL, "/")
	}
	return &OpenAIGenerator{
		client: openaigo.NewClientWithConfig(clientConfig),
		opts:   opts,
		logger: logger.Named("OpenAIGenerator"),
	}
}

// GeneratePlan реализует PlanGenerator.
func (g *OpenAIGenerator) GeneratePlan(ctx context.Context, description, projectType string) (models.ProjectPlan, error) {
	userMessage := buildUserMessage(description, projectType)
	req := openaigo.ChatCompletionRequest{
		Model: g.opts.Model,
		Messages: []openaigo.ChatCompletionMessage{
			{Role: openaigo.ChatMessageRoleSystem, Content: g.opts.SystemPrompt},
			{Role: openaigo.ChatMessageRoleUser, Content: userMessage},
		},
		MaxTokens:   g.opts.MaxTokens,
		Temperature: g.opts.Temperature,
	}
	if g.opts.JSONMode {
		req.ResponseFormat = &openaigo.ChatCompletionResponseFormat{Type: openaigo.ChatCompletionResponseFormatTypeJSONObject}
	}

	callCtx, cancel := withTimeout(ctx, g.opts.Timeout)
	defer cancel()

	log := g.logger.With(zap.String("model", g.opts.Model), zap.String("projectType", projectType))
	startTime := time.Now()
	log.Debug("Sending plan request to AI API", zap.Int("userMessageBytes", len(userMessage)))

	resp, err := g.client.CreateChatCompletion(callCtx, req)
	duration := time.Since(startTime)
	aiRequestDuration.WithLabelValues(openAIClientLabel, g.opts.Model).Observe(duration.Seconds())

	if err != nil {
		status := statusError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			status = statusTimeout
		}
		aiRequestsTotal.WithLabelValues(openAIClientLabel, g.opts.Model, status).Inc()
		log.Warn("AI API request failed", zap.Duration("duration", duration), zap.Error(err))
		return models.ProjectPlan{}, fmt.Errorf("%w: %v", models.ErrPlanGenerationFailed, err)
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		aiRequestsTotal.WithLabelValues(openAIClientLabel, g.opts.Model, statusEmptyResponse).Inc()
		log.Warn("AI API returned empty response", zap.Duration("duration", duration))
		return models.ProjectPlan{}, fmt.Errorf("%w: empty response", models.ErrPlanGenerationFailed)
	}

	promptTokens, completionTokens := resp.Usage.PromptTokens, resp.Usage.CompletionTokens
	content := resp.Choices[0].Message.Content
	if resp.Usage.TotalTokens == 0 {
		promptTokens = estimateTokens(g.opts.Model, g.opts.SystemPrompt, userMessage)
		completionTokens = estimateTokens(g.opts.Model, content)
	}
	observeTokens(openAIClientLabel, g.opts.Model, promptTokens, completionTokens)

	plan, err := ParsePlan(content)
	if err != nil {
		aiRequestsTotal.WithLabelValues(openAIClientLabel, g.opts.Model, statusParseError).Inc()
		log.Warn("Failed to parse plan from AI response", zap.Error(err), zap.Int("contentLength", len(content)))
		return models.ProjectPlan{}, err
	}

	aiRequestsTotal.WithLabelValues(openAIClientLabel, g.opts.Model, statusSuccess).Inc()
	log.Info("Plan generated",
		zap.Duration("duration", duration),
		zap.Int("promptTokens", promptTokens),
		zap.Int("completionTokens", completionTokens),
	)
	return plan, nil
}
