// Package site строит данные для страниц маркетингового сайта: каталог услуг,
// SEO метаданные и персонализированные CTA. Все функции чистые.
package site

import "keystone-site/internal/models"

var services = []models.ServiceInfo{
	{Key: "kitchen", Title: "Kitchen Remodeling", Summary: "Layouts, cabinetry and countertops designed around how you cook and gather."},
	{Key: "bathroom", Title: "Bathroom Renovation", Summary: "Tile, fixtures and accessible designs from powder rooms to primary suites."},
	{Key: "basement", Title: "Basement Finishing", Summary: "Turn unused square footage into living space, guest suites or a home theater."},
	{Key: "addition", Title: "Home Additions", Summary: "Bump-outs, second stories and in-law suites that match your existing home."},
	{Key: "roofing", Title: "Roofing", Summary: "Repairs, full replacements and storm damage restoration."},
	{Key: "deck", Title: "Decks & Outdoor Living", Summary: "Composite and wood decks, pergolas and covered patios."},
	{Key: "new-construction", Title: "New Construction", Summary: "Custom homes built from the foundation up."},
	{Key: "commercial", Title: "Commercial Build-Outs", Summary: "Tenant improvements and renovations for offices and retail."},
	{Key: "other", Title: "Other Projects", Summary: "Not sure where your project fits? Tell us about it."},
}

var servicesByKey = func() map[string]models.ServiceInfo {
	m := make(map[string]models.ServiceInfo, len(services))
	for _, s := range services {
		m[s.Key] = s
	}
	return m
}()

// Services возвращает копию каталога услуг в порядке отображения.
func Services() []models.ServiceInfo {
	out := make([]models.ServiceInfo, len(services))
	copy(out, services)
	return out
}

// LookupService ищет услугу по ключу.
func LookupService(key string) (models.ServiceInfo, bool) {
	s, ok := servicesByKey[key]
	return s, ok
}

// IsKnownProjectType сообщает, есть ли такой projectType в каталоге.
func IsKnownProjectType(key string) bool {
	_, ok := servicesByKey[key]
	return ok
}
