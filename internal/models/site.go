package models

// PageMetadata - SEO метаданные страницы сайта.
type PageMetadata struct {
	Title          string                 `json:"title"`
	Description    string                 `json:"description"`
	Keywords       []string               `json:"keywords"`
	Canonical      string                 `json:"canonical"`
	OpenGraph      OpenGraph              `json:"openGraph"`
	Twitter        TwitterCard            `json:"twitter"`
	StructuredData map[string]interface{} `json:"structuredData,omitempty"`
}

// OpenGraph - поля og:* для превью ссылок.
type OpenGraph struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	SiteName    string `json:"siteName"`
	Image       string `json:"image"`
	Type        string `json:"type"`
}

// TwitterCard - поля twitter:*.
type TwitterCard struct {
	Card        string `json:"card"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Site        string `json:"site,omitempty"`
}

// ServiceInfo - элемент каталога услуг. Key используется как projectType.
type ServiceInfo struct {
	Key     string `json:"key"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}
