package repository

import (
	"context"
	"errors"
	"fmt"

	"keystone-site/internal/models"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

const (
	quoteColumns = `id, name, email, phone, project_type, description, budget, timeline, zip_code, status, created_at`

	createQuoteQuery = `
        INSERT INTO quote_requests (` + quoteColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    `
	getQuoteByIDQuery = `SELECT ` + quoteColumns + ` FROM quote_requests WHERE id = $1`
	listQuotesQuery   = `
        SELECT ` + quoteColumns + ` FROM quote_requests
        WHERE ($1::text = '' OR status = $1::text)
        ORDER BY created_at DESC, id
        LIMIT $2 OFFSET $3
    `
)

type pgQuoteRepository struct {
	db     DBTX
	logger *zap.Logger
}

// NewPgQuoteRepository создает репозиторий заявок поверх PostgreSQL.
func NewPgQuoteRepository(db DBTX, logger *zap.Logger) QuoteRepository {
	return &pgQuoteRepository{
		db:     db,
		logger: logger.Named("QuoteRepo"),
	}
}

func (r *pgQuoteRepository) Create(ctx context.Context, q *models.QuoteRequest) error {
	log := r.logger.With(zap.Stringer("quoteID", q.ID))

	_, err := r.db.Exec(ctx, createQuoteQuery,
		q.ID, q.Name, q.Email, q.Phone, q.ProjectType, q.Description,
		q.Budget, q.Timeline, q.ZipCode, string(q.Status), q.CreatedAt,
	)
	if err != nil {
		log.Error("Error creating quote request", zap.Error(err))
		return fmt.Errorf("failed to create quote request %s: %w", q.ID, err)
	}
	log.Debug("Quote request saved")
	return nil
}

func (r *pgQuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error) {
	var quote models.QuoteRequest
	if err := pgxscan.Get(ctx, r.db, &quote, getQuoteByIDQuery, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrQuoteNotFound
		}
		r.logger.Error("Error getting quote request by ID", zap.Stringer("quoteID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to get quote request %s: %w", id, err)
	}
	return &quote, nil
}

func (r *pgQuoteRepository) List(ctx context.Context, params ListQuotesParams) ([]models.QuoteRequest, error) {
	quotes := make([]models.QuoteRequest, 0)
	err := pgxscan.Select(ctx, r.db, &quotes, listQuotesQuery, string(params.Status), params.Limit, params.Offset)
	if err != nil {
		r.logger.Error("Error listing quote requests",
			zap.Int("limit", params.Limit), zap.Int("offset", params.Offset), zap.Error(err))
		return nil, fmt.Errorf("failed to list quote requests: %w", err)
	}
	return quotes, nil
}
