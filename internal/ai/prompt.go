package ai

import (
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed prompts/project_plan.md
var defaultPlanPrompt string

// LoadSystemPrompt возвращает системный промпт для генерации плана.
// Если path пуст, используется встроенный промпт.
func LoadSystemPrompt(path string) (string, error) {
	if path == "" {
		return strings.TrimSpace(defaultPlanPrompt), nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read plan prompt file %s: %w", path, err)
	}
	prompt := strings.TrimSpace(string(content))
	if prompt == "" {
		return "", fmt.Errorf("plan prompt file %s is empty", path)
	}
	return prompt, nil
}

// buildUserMessage собирает пользовательское сообщение из описания и типа проекта.
func buildUserMessage(description, projectType string) string {
	var sb strings.Builder
	if pt := strings.TrimSpace(projectType); pt != "" {
		sb.WriteString("Project type: ")
		sb.WriteString(pt)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Project description:\n")
	sb.WriteString(strings.TrimSpace(description))
	return sb.String()
}
