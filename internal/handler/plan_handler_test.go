package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"keystone-site/internal/middleware"
	"keystone-site/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const fallbackJSON = `{"plan":{
	"suggestions":["We'll work with you to design the perfect solution"],
	"materials":["Premium materials selected based on your preferences"],
	"considerations":["All projects require consultation and permits"],
	"estimatedCost":"Contact us for a detailed estimate"}}`

const descriptionRequiredJSON = `{"error":"Description required"}`

func TestGeneratePlan_MissingDescription(t *testing.T) {
	bodies := map[string]string{
		"empty object":        `{}`,
		"empty description":   `{"description":""}`,
		"only project type":   `{"projectType":"kitchen"}`,
		"explicit null field": `{"description":null,"projectType":"deck"}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			for i := 0; i < 2; i++ {
				w := env.do(http.MethodPost, "/api/ai/plan", body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
				assert.JSONEq(t, descriptionRequiredJSON, w.Body.String())
			}
			env.generator.AssertNotCalled(t, "GeneratePlan", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGeneratePlan_Success_EchoesPlanExactly(t *testing.T) {
	env := newTestEnv(t, nil)
	plan := models.ProjectPlan{
		Suggestions:    []string{"Add a wet bar"},
		Materials:      []string{"Laminate flooring"},
		Considerations: []string{"Permit required"},
		EstimatedCost:  "$20,000–$30,000",
	}
	env.generator.On("GeneratePlan", mock.Anything, "Renovate a basement with a wet bar", "basement").
		Return(plan, nil).Once()

	w := env.do(http.MethodPost, "/api/ai/plan",
		`{"description":"Renovate a basement with a wet bar","projectType":"basement"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"plan":{
		"suggestions":["Add a wet bar"],
		"materials":["Laminate flooring"],
		"considerations":["Permit required"],
		"estimatedCost":"$20,000–$30,000"}}`, w.Body.String())
	env.generator.AssertExpectations(t)
}

func TestGeneratePlan_OptionalProjectType(t *testing.T) {
	env := newTestEnv(t, nil)
	plan := models.ProjectPlan{Suggestions: []string{"x"}, Materials: []string{}, Considerations: []string{}, EstimatedCost: "$1"}
	env.generator.On("GeneratePlan", mock.Anything, "Fix my porch", "").Return(plan, nil).Once()

	w := env.do(http.MethodPost, "/api/ai/plan", `{"description":"Fix my porch"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	env.generator.AssertExpectations(t)
}

func TestGeneratePlan_GenerationErrorsReturnFallback(t *testing.T) {
	failures := map[string]error{
		"network error":      fmt.Errorf("%w: dial tcp 10.0.0.1:443: connect: connection refused", models.ErrPlanGenerationFailed),
		"malformed response": fmt.Errorf("%w: invalid plan JSON", models.ErrPlanGenerationFailed),
		"timeout":            fmt.Errorf("%w: %v", models.ErrPlanGenerationFailed, context.DeadlineExceeded),
		"unexpected error":   errors.New("something else entirely"),
	}

	for name, genErr := range failures {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t, nil)
			env.generator.On("GeneratePlan", mock.Anything, "Add a second story", "addition").
				Return(models.ProjectPlan{}, genErr).Once()

			w := env.do(http.MethodPost, "/api/ai/plan", `{"description":"Add a second story","projectType":"addition"}`)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, fallbackJSON, w.Body.String())
			env.generator.AssertNumberOfCalls(t, "GeneratePlan", 1)
		})
	}
}

func TestGeneratePlan_UnparseableBodyReturnsFallback(t *testing.T) {
	bodies := map[string]string{
		"malformed JSON":     `{"description": "Kitchen`,
		"null body":          `null`,
		"array body":         `["Kitchen remodel"]`,
		"wrong field type":   `{"description": 42}`,
		"plain text":         `please remodel my kitchen`,
		"wrong project type": `{"description":"Kitchen","projectType":{"a":1}}`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			w := env.do(http.MethodPost, "/api/ai/plan", body)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, fallbackJSON, w.Body.String())
			env.generator.AssertNotCalled(t, "GeneratePlan", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestGeneratePlan_PassesRequestContext(t *testing.T) {
	env := newTestEnv(t, nil)
	env.generator.On("GeneratePlan",
		mock.MatchedBy(func(ctx context.Context) bool {
			return middleware.RequestIDFromContext(ctx) == "req-plan-1"
		}),
		"Deck with stairs", "deck",
	).Return(models.ProjectPlan{Suggestions: []string{"Composite boards"}, EstimatedCost: "$9k"}, nil).Once()

	w := env.do(http.MethodPost, "/api/ai/plan", `{"description":"Deck with stairs","projectType":"deck"}`,
		middleware.RequestIDHeader, "req-plan-1")

	assert.Equal(t, http.StatusOK, w.Code)
	env.generator.AssertExpectations(t)
}

func TestGeneratePlan_ConcurrentRequestsAreIndependent(t *testing.T) {
	env := newTestEnv(t, nil)
	good := models.ProjectPlan{Suggestions: []string{"ok"}, Materials: []string{}, Considerations: []string{}, EstimatedCost: "$5"}
	env.generator.On("GeneratePlan", mock.Anything, "good", "").Return(good, nil)
	env.generator.On("GeneratePlan", mock.Anything, "bad", "").Return(models.ProjectPlan{}, models.ErrPlanGenerationFailed)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				w := env.do(http.MethodPost, "/api/ai/plan", `{"description":"good"}`)
				assert.Equal(t, http.StatusOK, w.Code)
				assert.Contains(t, w.Body.String(), `"estimatedCost":"$5"`)
			} else {
				w := env.do(http.MethodPost, "/api/ai/plan", `{"description":"bad"}`)
				assert.Equal(t, http.StatusOK, w.Code)
				assert.JSONEq(t, fallbackJSON, w.Body.String())
			}
		}(i)
	}
	wg.Wait()
}

func TestGeneratePlan_OversizedBodyReturnsFallback(t *testing.T) {
	env := newTestEnv(t, nil)
	body := `{"description":"` + strings.Repeat("a", maxPlanBodyBytes) + `"}`

	w := env.do(http.MethodPost, "/api/ai/plan", body)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, fallbackJSON, w.Body.String())
	env.generator.AssertNotCalled(t, "GeneratePlan", mock.Anything, mock.Anything, mock.Anything)
}
