package repository

import (
	"context"

	"keystone-site/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DBTX - общий интерфейс для pgxpool.Pool и pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// ListQuotesParams - фильтр и пагинация списка заявок.
type ListQuotesParams struct {
	Limit  int
	Offset int
	Status models.QuoteStatus // пусто = любой статус
}

// QuoteRepository определяет методы для работы с хранилищем заявок.
type QuoteRepository interface {
	Create(ctx context.Context, quote *models.QuoteRequest) error
	// GetByID возвращает models.ErrQuoteNotFound, если заявки нет.
	GetByID(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error)
	// List возвращает заявки от новых к старым. Пустой результат - пустой срез, не ошибка.
	List(ctx context.Context, params ListQuotesParams) ([]models.QuoteRequest, error)
}
