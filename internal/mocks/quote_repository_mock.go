package mocks

import (
	"context"

	"keystone-site/internal/models"
	"keystone-site/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQuoteRepository is a mock type for the QuoteRepository type
type MockQuoteRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, quote
func (_m *MockQuoteRepository) Create(ctx context.Context, quote *models.QuoteRequest) error {
	ret := _m.Called(ctx, quote)
	return ret.Error(0)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *MockQuoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.QuoteRequest
	if rf, ok := ret.Get(0).(func(context.Context, uuid.UUID) *models.QuoteRequest); ok {
		r0 = rf(ctx, id)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.QuoteRequest)
	}
	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx, params
func (_m *MockQuoteRepository) List(ctx context.Context, params repository.ListQuotesParams) ([]models.QuoteRequest, error) {
	ret := _m.Called(ctx, params)

	var r0 []models.QuoteRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.QuoteRequest)
	}
	return r0, ret.Error(1)
}

var _ repository.QuoteRepository = (*MockQuoteRepository)(nil)
