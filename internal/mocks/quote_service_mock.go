package mocks

import (
	"context"

	"keystone-site/internal/models"
	"keystone-site/internal/repository"
	"keystone-site/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockQuoteService is a mock type for the QuoteService type
type MockQuoteService struct {
	mock.Mock
}

// Submit provides a mock function with given fields: ctx, input
func (_m *MockQuoteService) Submit(ctx context.Context, input service.QuoteSubmission) (*models.QuoteRequest, error) {
	ret := _m.Called(ctx, input)

	var r0 *models.QuoteRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.QuoteRequest)
	}
	return r0, ret.Error(1)
}

// Get provides a mock function with given fields: ctx, id
func (_m *MockQuoteService) Get(ctx context.Context, id uuid.UUID) (*models.QuoteRequest, error) {
	ret := _m.Called(ctx, id)

	var r0 *models.QuoteRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*models.QuoteRequest)
	}
	return r0, ret.Error(1)
}

// List provides a mock function with given fields: ctx, params
func (_m *MockQuoteService) List(ctx context.Context, params repository.ListQuotesParams) ([]models.QuoteRequest, error) {
	ret := _m.Called(ctx, params)

	var r0 []models.QuoteRequest
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]models.QuoteRequest)
	}
	return r0, ret.Error(1)
}

var _ service.QuoteService = (*MockQuoteService)(nil)
