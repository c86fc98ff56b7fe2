package models

import "github.com/golang-jwt/jwt/v5"

// InterServiceClaims - claims межсервисного токена. Subject содержит ID вызывающего сервиса.
type InterServiceClaims struct {
	jwt.RegisteredClaims
}

// ContextKey - тип ключей для значений в контексте запроса.
type ContextKey string

const (
	// SourceServiceContextKey - ключ, под которым middleware сохраняет ID вызывающего сервиса.
	SourceServiceContextKey ContextKey = "source_service"
	// RequestIDContextKey - ключ для X-Request-ID.
	RequestIDContextKey ContextKey = "request_id"
)
