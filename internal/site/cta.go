package site

import (
	"fmt"
	"strings"

	"keystone-site/internal/config"
)

// PersonalizedCTA возвращает текст призыва к действию для посетителя.
// Неизвестный projectType дает общий текст; пустое имя опускается.
func PersonalizedCTA(brand config.BrandConfig, projectType, name string) string {
	greeting := ""
	if n := firstName(name); n != "" {
		greeting = n + ", "
	}

	service, ok := LookupService(strings.ToLower(strings.TrimSpace(projectType)))
	if !ok || service.Key == "other" {
		return capitalize(fmt.Sprintf("%sready to start your project? Get a free estimate from %s.", greeting, brand.Name))
	}
	return capitalize(fmt.Sprintf("%sready for your %s? Get a free %s estimate from %s today.",
		greeting, strings.ToLower(service.Title), strings.ToLower(service.Title), brand.Name))
}

func firstName(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
