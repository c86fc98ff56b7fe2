package models

import "errors"

// Application-wide standard errors
var (
	// Общие ошибки ресурсов/БД
	ErrQuoteNotFound = errors.New("quote request not found")

	// Ошибки генерации плана. Никогда не отдаются клиенту.
	ErrPlanGenerationFailed = errors.New("plan generation failed")

	// Ошибки межсервисной авторизации
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// Общие ошибки запроса
	ErrPageNotFound = errors.New("page not found")
)
