package mocks

import (
	"context"

	"keystone-site/internal/ai"
	"keystone-site/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockPlanGenerator is a mock type for the PlanGenerator type
type MockPlanGenerator struct {
	mock.Mock
}

// GeneratePlan provides a mock function with given fields: ctx, description, projectType
func (_m *MockPlanGenerator) GeneratePlan(ctx context.Context, description string, projectType string) (models.ProjectPlan, error) {
	ret := _m.Called(ctx, description, projectType)

	var r0 models.ProjectPlan
	if rf, ok := ret.Get(0).(func(context.Context, string, string) models.ProjectPlan); ok {
		r0 = rf(ctx, description, projectType)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(models.ProjectPlan)
	}
	return r0, ret.Error(1)
}

var _ ai.PlanGenerator = (*MockPlanGenerator)(nil)
