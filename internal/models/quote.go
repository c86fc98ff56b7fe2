package models

import (
	"time"

	"github.com/google/uuid"
)

// QuoteStatus - статус заявки на расчет стоимости.
type QuoteStatus string

const (
	QuoteStatusNew       QuoteStatus = "new"
	QuoteStatusContacted QuoteStatus = "contacted"
	QuoteStatusClosed    QuoteStatus = "closed"
)

// QuoteRequest - заявка на расчет стоимости, отправленная с формы сайта.
type QuoteRequest struct {
	ID          uuid.UUID   `json:"id" db:"id"`
	Name        string      `json:"name" db:"name"`
	Email       string      `json:"email" db:"email"`
	Phone       *string     `json:"phone,omitempty" db:"phone"`
	ProjectType string      `json:"projectType" db:"project_type"`
	Description string      `json:"description" db:"description"`
	Budget      *string     `json:"budget,omitempty" db:"budget"`
	Timeline    *string     `json:"timeline,omitempty" db:"timeline"`
	ZipCode     *string     `json:"zipCode,omitempty" db:"zip_code"`
	Status      QuoteStatus `json:"status" db:"status"`
	CreatedAt   time.Time   `json:"createdAt" db:"created_at"`
}

// QuoteRequestedEvent публикуется в RabbitMQ после сохранения новой заявки.
type QuoteRequestedEvent struct {
	QuoteID     string    `json:"quoteId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone,omitempty"`
	ProjectType string    `json:"projectType"`
	Budget      string    `json:"budget,omitempty"`
	Timeline    string    `json:"timeline,omitempty"`
	ZipCode     string    `json:"zipCode,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewQuoteRequestedEvent собирает событие из сохраненной заявки.
func NewQuoteRequestedEvent(q *QuoteRequest) QuoteRequestedEvent {
	return QuoteRequestedEvent{
		QuoteID:     q.ID.String(),
		Name:        q.Name,
		Email:       q.Email,
		Phone:       deref(q.Phone),
		ProjectType: q.ProjectType,
		Budget:      deref(q.Budget),
		Timeline:    deref(q.Timeline),
		ZipCode:     deref(q.ZipCode),
		CreatedAt:   q.CreatedAt,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
