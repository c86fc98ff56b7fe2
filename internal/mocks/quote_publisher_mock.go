package mocks

import (
	"context"

	"keystone-site/internal/messaging"
	"keystone-site/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockQuotePublisher is a mock type for the QuotePublisher type
type MockQuotePublisher struct {
	mock.Mock
}

// PublishQuoteRequested provides a mock function with given fields: ctx, event
func (_m *MockQuotePublisher) PublishQuoteRequested(ctx context.Context, event models.QuoteRequestedEvent) error {
	ret := _m.Called(ctx, event)
	return ret.Error(0)
}

var _ messaging.QuotePublisher = (*MockQuotePublisher)(nil)
