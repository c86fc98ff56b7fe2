package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"keystone-site/internal/messaging"
	"keystone-site/internal/models"
	"keystone-site/internal/repository"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

var quoteRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "site_quote_requests_total",
		Help: "Total number of quote form submissions by result.",
	},
	[]string{"result"},
)

const (
	quoteResultSubmitted     = "submitted"
	quoteResultSaveFailed    = "save_failed"
	quoteResultPublishFailed = "publish_failed"
)

// QuoteSubmission - данные формы заявки после валидации.
type QuoteSubmission struct {
	Name        string
	Email       string
	Phone       string
	ProjectType string
	Description string
	Budget      string
	Timeline    string
	ZipCode     string
}

// QuoteService - бизнес-логика заявок на расчет стоимости.
type QuoteService interface {
	// Submit сохраняет заявку и публикует событие. Ошибка публикации не возвращается.
	Submit(ctx context.Context, input QuoteSubmission) (*models.QuoteRequest, error)
	Get(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error)
	List(ctx context.Context, params repository.ListQuotesParams) ([]models.QuoteRequest, error)
}

type quoteServiceImpl struct {
	repo      repository.QuoteRepository
	publisher messaging.QuotePublisher
	logger    *zap.Logger
	now       func() time.Time
}

// NewQuoteService создает новый экземпляр QuoteService.
func NewQuoteService(repo repository.QuoteRepository, publisher messaging.QuotePublisher, logger *zap.Logger) QuoteService {
	return &quoteServiceImpl{
		repo:      repo,
		publisher: publisher,
		logger:    logger.Named("QuoteService"),
		now:       time.Now,
	}
}

func (s *quoteServiceImpl) Submit(ctx context.Context, input QuoteSubmission) (*models.QuoteRequest, error) {
	quote := &models.QuoteRequest{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Email:       strings.ToLower(strings.TrimSpace(input.Email)),
		Phone:       optional(input.Phone),
		ProjectType: strings.TrimSpace(input.ProjectType),
		Description: strings.TrimSpace(input.Description),
		Budget:      optional(input.Budget),
		Timeline:    optional(input.Timeline),
		ZipCode:     optional(input.ZipCode),
		Status:      models.QuoteStatusNew,
		CreatedAt:   s.now().UTC(),
	}
	log := s.logger.With(zap.Stringer("quoteID", quote.ID), zap.String("projectType", quote.ProjectType))

	if err := s.repo.Create(ctx, quote); err != nil {
		quoteRequestsTotal.WithLabelValues(quoteResultSaveFailed).Inc()
		log.Error("Failed to save quote request", zap.Error(err))
		return nil, fmt.Errorf("failed to save quote request: %w", err)
	}

	if err := s.publisher.PublishQuoteRequested(ctx, models.NewQuoteRequestedEvent(quote)); err != nil {
		// Заявка уже сохранена, отдел продаж увидит ее во внутреннем списке
		quoteRequestsTotal.WithLabelValues(quoteResultPublishFailed).Inc()
		log.Error("Failed to publish quote event", zap.Error(err))
	}

	quoteRequestsTotal.WithLabelValues(quoteResultSubmitted).Inc()
	log.Info("Quote request submitted")
	return quote, nil
}

func (s *quoteServiceImpl) Get(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *quoteServiceImpl) List(ctx context.Context, params repository.ListQuotesParams) ([]models.QuoteRequest, error) {
	return s.repo.List(ctx, params)
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
