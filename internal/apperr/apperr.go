package apperr

import "net/http"

// Kind — закрытый набор доменных ошибок. Любая ошибка сервисного слоя
// принадлежит одному из этих видов; в HTTP-ответ её переводит только
// helpers.Fail через Classify.
type Kind int

const (
	KindUnauthenticated Kind = iota
	KindForbidden
	KindInvalidInput
	KindValidation
	KindNotFound
	KindConflict
	KindInternal
)

// FieldError — одна ошибка валидации конкретного поля (для 422).
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type Error struct {
	Kind    Kind
	Message string
	Fields  []FieldError
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Status — фиксированный HTTP-код для вида ошибки.
func (e *Error) Status() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func Unauthenticated(msg string) *Error {
	if msg == "" {
		msg = "Not authenticated. Please login."
	}
	return &Error{Kind: KindUnauthenticated, Message: msg}
}

func Forbidden(msg string) *Error {
	if msg == "" {
		msg = "Access denied. You do not have permission to perform this action."
	}
	return &Error{Kind: KindForbidden, Message: msg}
}

func InvalidInput(msg string) *Error {
	if msg == "" {
		msg = "Bad Request"
	}
	return &Error{Kind: KindInvalidInput, Message: msg}
}

func Validation(fields ...FieldError) *Error {
	return &Error{Kind: KindValidation, Message: "Validation failed", Fields: fields}
}

func NotFound(msg string) *Error {
	if msg == "" {
		msg = "Resource not found"
	}
	return &Error{Kind: KindNotFound, Message: msg}
}

func Conflict(msg string) *Error {
	if msg == "" {
		msg = "Resource already exists"
	}
	return &Error{Kind: KindConflict, Message: msg}
}

func Internal(err error) *Error {
	msg := "Internal server error"
	if err != nil {
		msg = err.Error()
	}
	return &Error{Kind: KindInternal, Message: msg, cause: err}
}
