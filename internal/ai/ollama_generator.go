package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"keystone-site/internal/models"

	"github.com/ollama/ollama/api"
	"go.uber.org/zap"
)

const ollamaClientLabel = "ollama"

// OllamaGenerator ходит в локальный Ollama через нативный API (/api/chat).
type OllamaGenerator struct {
	client *api.Client
	opts   Options
	logger *zap.Logger
}

// NewOllamaGenerator создает генератор поверх ollama/api.
func NewOllamaGenerator(opts Options, logger *zap.Logger) (*OllamaGenerator, error) {
	// api.NewClient ждет базовый URL без /v1
	baseURL := strings.TrimSuffix(strings.TrimSuffix(opts.BaseURL, "/"), "/v1")
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Ollama base URL '%s': %w", baseURL, err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid Ollama base URL '%s'", baseURL)
	}

	return &OllamaGenerator{
		client: api.NewClient(parsedURL, http.DefaultClient),
		opts:   opts,
		logger: logger.Named("OllamaGenerator"),
	}, nil
}

// GeneratePlan реализует PlanGenerator.
func (g *OllamaGenerator) GeneratePlan(ctx context.Context, description, projectType string) (models.ProjectPlan, error) {
	stream := false
	req := &api.ChatRequest{
		Model: g.opts.Model,
		Messages: []api.Message{
			{Role: "system", Content: g.opts.SystemPrompt},
			{Role: "user", Content: buildUserMessage(description, projectType)},
		},
		Stream: &stream,
		Options: map[string]interface{}{
			"temperature": g.opts.Temperature,
			"num_predict": g.opts.MaxTokens,
		},
	}
	if g.opts.JSONMode {
		req.Format = json.RawMessage(`"json"`)
	}

	callCtx, cancel := withTimeout(ctx, g.opts.Timeout)
	defer cancel()

	log := g.logger.With(zap.String("model", g.opts.Model), zap.String("projectType", projectType))
	startTime := time.Now()

	var resp api.ChatResponse
	err := g.client.Chat(callCtx, req, func(r api.ChatResponse) error {
		resp = r
		return nil
	})
	duration := time.Since(startTime)
	aiRequestDuration.WithLabelValues(ollamaClientLabel, g.opts.Model).Observe(duration.Seconds())

	if err != nil {
		status := statusError
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			status = statusTimeout
		}
		aiRequestsTotal.WithLabelValues(ollamaClientLabel, g.opts.Model, status).Inc()
		log.Warn("Ollama request failed", zap.Duration("duration", duration), zap.Error(err))
		return models.ProjectPlan{}, fmt.Errorf("%w: %v", models.ErrPlanGenerationFailed, err)
	}

	content := resp.Message.Content
	if strings.TrimSpace(content) == "" {
		aiRequestsTotal.WithLabelValues(ollamaClientLabel, g.opts.Model, statusEmptyResponse).Inc()
		log.Warn("Ollama returned empty response", zap.Duration("duration", duration))
		return models.ProjectPlan{}, fmt.Errorf("%w: empty response", models.ErrPlanGenerationFailed)
	}
	observeTokens(ollamaClientLabel, g.opts.Model, resp.PromptEvalCount, resp.EvalCount)

	plan, err := ParsePlan(content)
	if err != nil {
		aiRequestsTotal.WithLabelValues(ollamaClientLabel, g.opts.Model, statusParseError).Inc()
		log.Warn("Failed to parse plan from Ollama response", zap.Error(err))
		return models.ProjectPlan{}, err
	}

	aiRequestsTotal.WithLabelValues(ollamaClientLabel, g.opts.Model, statusSuccess).Inc()
	log.Info("Plan generated",
		zap.Duration("duration", duration),
		zap.Int("promptTokens", resp.PromptEvalCount),
		zap.Int("completionTokens", resp.EvalCount),
	)
	return plan, nil
}
