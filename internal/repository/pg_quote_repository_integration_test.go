package repository_test

import (
	"context"
	"testing"
	"time"

	"keystone-site/internal/database"
	"keystone-site/internal/models"
	"keystone-site/internal/repository"
	"keystone-site/internal/testutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

type QuoteRepositorySuite struct {
	suite.Suite
	ctx         context.Context
	pgContainer *postgres.PostgresContainer
	pool        *pgxpool.Pool
	repo        repository.QuoteRepository
	logger      *zap.Logger
}

func (s *QuoteRepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	s.logger = zap.NewNop()
	var err error

	s.pgContainer, err = postgres.Run(s.ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Minute),
		),
	)
	require.NoError(s.T(), err, "Failed to start postgres container")

	connStr, err := s.pgContainer.ConnectionString(s.ctx, "sslmode=disable")
	require.NoError(s.T(), err)

	s.pool, err = database.ConnectPostgres(s.ctx, database.PoolConfig{
		DSN:        connStr,
		MaxRetries: 3,
		RetryDelay: time.Second,
	}, s.logger)
	require.NoError(s.T(), err, "Failed to connect to test postgres")

	migrator := database.NewMigrator(s.pool, s.logger)
	require.NoError(s.T(), migrator.Up(s.ctx), "Failed to run migrations")
	version, dirty, err := migrator.Version(s.ctx)
	require.NoError(s.T(), err)
	require.Equal(s.T(), uint(1), version)
	require.False(s.T(), dirty)

	s.repo = repository.NewPgQuoteRepository(s.pool, s.logger)
}

func (s *QuoteRepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(s.ctx)
	}
}

func (s *QuoteRepositorySuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, "TRUNCATE TABLE quote_requests")
	require.NoError(s.T(), err)
}

func TestQuoteRepositorySuite(t *testing.T) {
	testutil.RequireDocker(t)
	suite.Run(t, new(QuoteRepositorySuite))
}

func newQuote(name string, status models.QuoteStatus, createdAt time.Time) *models.QuoteRequest {
	phone := "303-555-0100"
	return &models.QuoteRequest{
		ID:          uuid.New(),
		Name:        name,
		Email:       name + "@example.com",
		Phone:       &phone,
		ProjectType: "kitchen",
		Description: "Full kitchen remodel with island",
		Status:      status,
		CreatedAt:   createdAt.UTC().Truncate(time.Microsecond),
	}
}

func (s *QuoteRepositorySuite) TestCreateAndGetByID() {
	quote := newQuote("alice", models.QuoteStatusNew, time.Now())
	require.NoError(s.T(), s.repo.Create(s.ctx, quote))

	got, err := s.repo.GetByID(s.ctx, quote.ID)
	require.NoError(s.T(), err)
	s.Equal(quote.ID, got.ID)
	s.Equal(quote.Email, got.Email)
	s.Require().NotNil(got.Phone)
	s.Equal(*quote.Phone, *got.Phone)
	s.Nil(got.Budget)
	s.Equal(models.QuoteStatusNew, got.Status)
	s.True(quote.CreatedAt.Equal(got.CreatedAt))
}

func (s *QuoteRepositorySuite) TestGetByID_NotFound() {
	_, err := s.repo.GetByID(s.ctx, uuid.New())
	s.ErrorIs(err, models.ErrQuoteNotFound)
}

func (s *QuoteRepositorySuite) TestList() {
	base := time.Now().Add(-time.Hour)
	require.NoError(s.T(), s.repo.Create(s.ctx, newQuote("first", models.QuoteStatusNew, base)))
	require.NoError(s.T(), s.repo.Create(s.ctx, newQuote("second", models.QuoteStatusContacted, base.Add(time.Minute))))
	require.NoError(s.T(), s.repo.Create(s.ctx, newQuote("third", models.QuoteStatusNew, base.Add(2*time.Minute))))

	all, err := s.repo.List(s.ctx, repository.ListQuotesParams{Limit: 10})
	require.NoError(s.T(), err)
	s.Require().Len(all, 3)
	s.Equal("third", all[0].Name)
	s.Equal("first", all[2].Name)

	page, err := s.repo.List(s.ctx, repository.ListQuotesParams{Limit: 1, Offset: 1})
	require.NoError(s.T(), err)
	s.Require().Len(page, 1)
	s.Equal("second", page[0].Name)

	onlyNew, err := s.repo.List(s.ctx, repository.ListQuotesParams{Limit: 10, Status: models.QuoteStatusNew})
	require.NoError(s.T(), err)
	s.Len(onlyNew, 2)

	empty, err := s.repo.List(s.ctx, repository.ListQuotesParams{Limit: 10, Status: models.QuoteStatusClosed})
	require.NoError(s.T(), err)
	s.NotNil(empty)
	s.Empty(empty)
}
