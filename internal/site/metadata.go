package site

import (
	"fmt"
	"strings"

	"keystone-site/internal/config"
	"keystone-site/internal/models"
)

type pageSpec struct {
	title       string // пусто = главная, заголовок строится из бренда
	description string // может содержать %[1]s (бренд) и %[2]s (город)
	keywords    []string
}

var pages = map[string]pageSpec{
	"/": {
		description: "%[1]s is a licensed general contractor in %[2]s offering remodeling, additions, roofing and new construction.",
		keywords:    []string{"general contractor", "home remodeling", "construction company"},
	},
	"/services": {
		title:       "Our Services",
		description: "Kitchen and bathroom remodeling, basement finishing, additions, roofing, decks and commercial build-outs by %[1]s.",
		keywords:    []string{"remodeling services", "basement finishing", "home additions", "roofing"},
	},
	"/about": {
		title:       "About Us",
		description: "Meet the team at %[1]s, builders serving %[2]s homeowners and businesses.",
		keywords:    []string{"about", "licensed contractor", "construction team"},
	},
	"/projects": {
		title:       "Project Gallery",
		description: "Browse completed kitchens, baths, basements and custom builds by %[1]s in %[2]s.",
		keywords:    []string{"project gallery", "before and after", "portfolio"},
	},
	"/contact": {
		title:       "Contact Us",
		description: "Call, email or visit %[1]s in %[2]s. We respond to every inquiry within one business day.",
		keywords:    []string{"contact", "construction estimate"},
	},
	"/quote": {
		title:       "Request a Free Quote",
		description: "Tell %[1]s about your project and get a free, no-obligation estimate.",
		keywords:    []string{"free quote", "construction estimate", "remodeling cost"},
	},
	"/ai-planner": {
		title:       "AI Project Planner",
		description: "Describe your project and get instant design suggestions, material ideas and a rough budget from %[1]s.",
		keywords:    []string{"project planner", "remodel ideas", "renovation cost estimate"},
	},
}

// MetadataBuilder строит PageMetadata для известных маршрутов сайта.
type MetadataBuilder struct {
	brand config.BrandConfig
}

// NewMetadataBuilder создает построитель метаданных для бренда.
func NewMetadataBuilder(brand config.BrandConfig) *MetadataBuilder {
	return &MetadataBuilder{brand: brand}
}

// KnownPaths возвращает маршруты, для которых есть метаданные.
func KnownPaths() []string {
	return []string{"/", "/services", "/about", "/projects", "/contact", "/quote", "/ai-planner"}
}

// Build возвращает метаданные для пути или models.ErrPageNotFound.
func (b *MetadataBuilder) Build(path string) (models.PageMetadata, error) {
	path = normalizePath(path)
	page, ok := pages[path]
	if !ok {
		return models.PageMetadata{}, fmt.Errorf("%w: %s", models.ErrPageNotFound, path)
	}

	title := b.brand.Name + " | " + b.brand.Tagline
	if page.title != "" {
		title = page.title + " | " + b.brand.Name
	}
	description := fmt.Sprintf(page.description, b.brand.Name, b.brand.City)
	canonical := b.absoluteURL(path)

	ogType := "website"
	if path != "/" {
		ogType = "article"
	}

	meta := models.PageMetadata{
		Title:       title,
		Description: description,
		Keywords:    append(append([]string{}, page.keywords...), strings.ToLower(b.brand.City)+" contractor"),
		Canonical:   canonical,
		OpenGraph: models.OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			SiteName:    b.brand.Name,
			Image:       b.absoluteURL(b.brand.OGImageURL),
			Type:        ogType,
		},
		Twitter: models.TwitterCard{
			Card:        "summary_large_image",
			Title:       title,
			Description: description,
			Site:        b.brand.TwitterHandle,
		},
	}
	if path == "/" {
		meta.StructuredData = b.organizationSchema()
	}
	return meta, nil
}

// organizationSchema - schema.org разметка компании для главной страницы.
func (b *MetadataBuilder) organizationSchema() map[string]interface{} {
	return map[string]interface{}{
		"@context":    "https://schema.org",
		"@type":       "GeneralContractor",
		"name":        b.brand.Name,
		"description": b.brand.Tagline,
		"url":         b.absoluteURL("/"),
		"logo":        b.absoluteURL(b.brand.LogoURL),
		"telephone":   b.brand.Phone,
		"email":       b.brand.Email,
		"address": map[string]interface{}{
			"@type":           "PostalAddress",
			"addressLocality": b.brand.City,
			"addressRegion":   b.brand.Region,
			"addressCountry":  "US",
		},
		"areaServed": b.brand.City + ", " + b.brand.Region,
	}
}

func (b *MetadataBuilder) absoluteURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}
	if !strings.HasPrefix(pathOrURL, "/") {
		pathOrURL = "/" + pathOrURL
	}
	return strings.TrimSuffix(b.brand.BaseURL, "/") + pathOrURL
}

func normalizePath(path string) string {
	path = strings.TrimSpace(path)
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return strings.ToLower(path)
}
