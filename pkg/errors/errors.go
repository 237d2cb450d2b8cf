package errors

import (
	"errors"
	"net/http"
)

var (
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrTooManyRequests    = errors.New("too many requests")
	ErrInternalServer     = errors.New("internal server error")
	ErrConfig             = errors.New("configuration error")
	ErrMetadataParse      = errors.New("metadata is not a JSON object")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrSigningFailed      = errors.New("failed to sign access token")
	ErrMissingRoomName    = errors.New("roomName is required")
	ErrMissingParticipant = errors.New("participantName is required")
)

type APIError struct {
	Message string `json:"error"`
	Code    int    `json:"code"`
}

func (e *APIError) Error() string {
	return e.Message
}

func NewAPIError(message string, code int) *APIError {
	return &APIError{
		Message: message,
		Code:    code,
	}
}

// HTTPStatusFromError сопоставляет ошибку сервиса с HTTP статусом.
// Ошибки конфигурации и подписи отдаются как 500.
func HTTPStatusFromError(err error) int {
	var apiErr *APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Code
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrInvalidToken), errors.Is(err, ErrTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, ErrTooManyRequests):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage возвращает текст, который можно показать клиенту.
// Для 5xx детали не раскрываются.
func PublicMessage(err error) string {
	status := HTTPStatusFromError(err)
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}

// Is и As реэкспортированы, чтобы не импортировать два пакета errors
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
