package handler

// submitQuoteRequest - тело POST /api/quotes.
type submitQuoteRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Email       string `json:"email" binding:"required,email,max=254"`
	Phone       string `json:"phone" binding:"omitempty,max=40"`
	ProjectType string `json:"projectType" binding:"required"`
	Description string `json:"description" binding:"required,min=10,max=5000"`
	Budget      string `json:"budget" binding:"omitempty,max=100"`
	Timeline    string `json:"timeline" binding:"omitempty,max=100"`
	ZipCode     string `json:"zipCode" binding:"omitempty,max=20"`
}

type submitQuoteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type ctaResponse struct {
	CTA string `json:"cta"`
}
