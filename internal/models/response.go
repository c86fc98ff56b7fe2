package models

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Сообщения об ошибках, которые видит клиент.
const (
	MsgDescriptionRequired = "Description required"
	MsgQuoteSubmitFailed   = "Failed to submit quote request"
	MsgInternalError       = "An unexpected internal error occurred"
	MsgPageNotFound        = "Page not found"
	MsgQuoteNotFound       = "Quote request not found"
)

// PaginatedResponse - ответ для списков с offset-пагинацией.
type PaginatedResponse[T any] struct {
	Data   []T `json:"data"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
