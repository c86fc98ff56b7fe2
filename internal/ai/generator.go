package ai

import (
	"context"
	"fmt"
	"time"

	"keystone-site/internal/config"
	"keystone-site/internal/models"

	"go.uber.org/zap"
)

// PlanGenerator генерирует предварительный план проекта по описанию клиента.
// Реализации обязаны быть безопасными для конкурентного использования.
type PlanGenerator interface {
	// GeneratePlan делает ровно один запрос к модели. Ошибки оборачивают models.ErrPlanGenerationFailed.
	GeneratePlan(ctx context.Context, description, projectType string) (models.ProjectPlan, error)
}

// Options - общие параметры генераторов.
type Options struct {
	BaseURL      string
	APIKey       string
	Model        string
	Timeout      time.Duration
	MaxTokens    int
	Temperature  float32
	JSONMode     bool
	SystemPrompt string
}

// NewPlanGenerator создает генератор по AI_CLIENT_TYPE.
func NewPlanGenerator(cfg *config.Config, logger *zap.Logger) (PlanGenerator, error) {
	systemPrompt, err := LoadSystemPrompt(cfg.AIPlanPromptFile)
	if err != nil {
		return nil, err
	}

	opts := Options{
		BaseURL:      cfg.AIBaseURL,
		APIKey:       cfg.AIAPIKey,
		Model:        cfg.AIModel,
		Timeout:      cfg.AITimeout,
		MaxTokens:    cfg.AIMaxTokens,
		Temperature:  cfg.AITemperature,
		JSONMode:     cfg.AIJSONMode,
		SystemPrompt: systemPrompt,
	}

	switch cfg.AIClientType {
	case "openai":
		logger.Info("Using AI client implementation: OpenAI-compatible",
			zap.String("baseURL", opts.BaseURL), zap.String("model", opts.Model), zap.Duration("timeout", opts.Timeout))
		return NewOpenAIGenerator(opts, logger), nil
	case "ollama":
		logger.Info("Using AI client implementation: Ollama",
			zap.String("baseURL", opts.BaseURL), zap.String("model", opts.Model), zap.Duration("timeout", opts.Timeout))
		return NewOllamaGenerator(opts, logger)
	default:
		return nil, fmt.Errorf("unknown AI client type: %s", cfg.AIClientType)
	}
}

// withTimeout ограничивает один вызов модели. Нулевой timeout означает "только ctx запроса".
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}
