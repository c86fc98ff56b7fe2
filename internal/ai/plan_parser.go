package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"keystone-site/internal/models"
)

var jsonBlockRegex = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

var errNoJSONObject = errors.New("no JSON object found in model output")

// rawPlan - то, что модель реально присылает. Часть моделей пишет estimated_cost.
type rawPlan struct {
	Suggestions    []string `json:"suggestions"`
	Materials      []string `json:"materials"`
	Considerations []string `json:"considerations"`
	EstimatedCost  string   `json:"estimatedCost"`
	EstimatedCost2 string   `json:"estimated_cost"`
}

// ParsePlan разбирает ответ модели в ProjectPlan.
// Все ошибки оборачивают models.ErrPlanGenerationFailed.
func ParsePlan(output string) (models.ProjectPlan, error) {
	jsonText, err := extractJSONObject(output)
	if err != nil {
		return models.ProjectPlan{}, fmt.Errorf("%w: %v", models.ErrPlanGenerationFailed, err)
	}

	var raw rawPlan
	if err := json.Unmarshal([]byte(jsonText), &raw); err != nil {
		return models.ProjectPlan{}, fmt.Errorf("%w: invalid plan JSON: %v", models.ErrPlanGenerationFailed, err)
	}

	cost := strings.TrimSpace(raw.EstimatedCost)
	if cost == "" {
		cost = strings.TrimSpace(raw.EstimatedCost2)
	}

	plan := models.ProjectPlan{
		Suggestions:    cleanItems(raw.Suggestions),
		Materials:      cleanItems(raw.Materials),
		Considerations: cleanItems(raw.Considerations),
		EstimatedCost:  cost,
	}

	if len(plan.Suggestions) == 0 {
		return models.ProjectPlan{}, fmt.Errorf("%w: plan has no suggestions", models.ErrPlanGenerationFailed)
	}
	if plan.EstimatedCost == "" {
		return models.ProjectPlan{}, fmt.Errorf("%w: plan has no estimated cost", models.ErrPlanGenerationFailed)
	}
	return plan, nil
}

// cleanItems обрезает пробелы и выкидывает пустые элементы. Никогда не возвращает nil.
func cleanItems(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// extractJSONObject снимает обертку ```json ... ``` и возвращает первый
// сбалансированный JSON-объект. Скобки внутри строк не учитываются.
func extractJSONObject(text string) (string, error) {
	cleaned := strings.TrimSpace(text)
	if matches := jsonBlockRegex.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = strings.TrimSpace(matches[1])
	}

	start := strings.IndexByte(cleaned, '{')
	if start == -1 {
		return "", errNoJSONObject
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(cleaned); i++ {
		ch := cleaned[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}
		switch ch {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return cleaned[start : i+1], nil
			}
		}
	}
	return "", errors.New("unbalanced JSON object in model output")
}
