package models

// PlanRequest - тело запроса POST /api/ai/plan.
type PlanRequest struct {
	Description string `json:"description"`
	ProjectType string `json:"projectType,omitempty"`
}

// ProjectPlan - структурированное предложение по проекту, полученное от AI.
// Стоимость всегда человекочитаемая строка, план нигде не сохраняется.
type ProjectPlan struct {
	Suggestions    []string `json:"suggestions"`
	Materials      []string `json:"materials"`
	Considerations []string `json:"considerations"`
	EstimatedCost  string   `json:"estimatedCost"`
}

// PlanResponse - успешный ответ эндпоинта плана (в том числе с FallbackPlan).
type PlanResponse struct {
	Plan ProjectPlan `json:"plan"`
}

var fallbackPlan = ProjectPlan{
	Suggestions:    []string{"We'll work with you to design the perfect solution"},
	Materials:      []string{"Premium materials selected based on your preferences"},
	Considerations: []string{"All projects require consultation and permits"},
	EstimatedCost:  "Contact us for a detailed estimate",
}

// FallbackPlan возвращает копию общего плана, который отдается при любой ошибке генерации.
// Исходный экземпляр никогда не меняется, поэтому безопасен для конкурентного чтения.
func FallbackPlan() ProjectPlan {
	return ProjectPlan{
		Suggestions:    append([]string(nil), fallbackPlan.Suggestions...),
		Materials:      append([]string(nil), fallbackPlan.Materials...),
		Considerations: append([]string(nil), fallbackPlan.Considerations...),
		EstimatedCost:  fallbackPlan.EstimatedCost,
	}
}
