package errors

import (
	"fmt"
	"runtime"
	"strings"
	"time"
)

// ErrorCode представляет код ошибки
type ErrorCode string

const (
	// Общие ошибки
	ErrCodeInternal   ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound   ErrorCode = "NOT_FOUND"
	ErrCodeConflict   ErrorCode = "CONFLICT"
	ErrCodeBadRequest ErrorCode = "BAD_REQUEST"

	// Ошибки сущностей
	ErrCodeUserNotFound         ErrorCode = "USER_NOT_FOUND"
	ErrCodeTransactionNotFound  ErrorCode = "TRANSACTION_NOT_FOUND"
	ErrCodeNotificationNotFound ErrorCode = "NOTIFICATION_NOT_FOUND"
	ErrCodeDocumentNotFound     ErrorCode = "DOCUMENT_VERIFICATION_NOT_FOUND"
	ErrCodePaymentNotFound      ErrorCode = "PAYMENT_SUBMISSION_NOT_FOUND"
	ErrCodeMarketDataNotFound   ErrorCode = "MARKET_DATA_NOT_FOUND"
	ErrCodeEmailTaken           ErrorCode = "EMAIL_TAKEN"

	// Ошибки хранилища
	ErrCodeDatabaseError ErrorCode = "DATABASE_ERROR"
	ErrCodeCacheError    ErrorCode = "CACHE_ERROR"
)

// AppError представляет типизированную ошибку приложения
type AppError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
	Context   map[string]string      `json:"-"`
	Stack     []string               `json:"-"`
	Timestamp time.Time              `json:"timestamp"`
	RequestID string                 `json:"request_id,omitempty"`
	Cause     error                  `json:"-"`
}

// FieldError описывает ошибку одного поля запроса
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error возвращает строковое представление ошибки
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap возвращает причину ошибки
func (e *AppError) Unwrap() error {
	return e.Cause
}

// IsNotFound проверяет, является ли ошибка ошибкой "не найдено"
func (e *AppError) IsNotFound() bool {
	switch e.Code {
	case ErrCodeNotFound,
		ErrCodeUserNotFound,
		ErrCodeTransactionNotFound,
		ErrCodeNotificationNotFound,
		ErrCodeDocumentNotFound,
		ErrCodePaymentNotFound,
		ErrCodeMarketDataNotFound:
		return true
	}
	return false
}

// IsValidation проверяет, является ли ошибка ошибкой валидации
func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation || e.Code == ErrCodeBadRequest
}

// IsConflict проверяет, является ли ошибка конфликтом
func (e *AppError) IsConflict() bool {
	return e.Code == ErrCodeConflict || e.Code == ErrCodeEmailTaken
}

// IsInternal проверяет, является ли ошибка внутренней ошибкой
func (e *AppError) IsInternal() bool {
	return !e.IsNotFound() && !e.IsValidation() && !e.IsConflict()
}

// WithContext добавляет контекст к ошибке
func (e *AppError) WithContext(key, value string) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithDetail добавляет детальную информацию к ошибке
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithRequestID добавляет ID запроса к ошибке
func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

// New создает новую ошибку приложения
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
		Stack:     getStackTrace(),
	}
}

// Wrap оборачивает существующую ошибку
func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

// Wrapf оборачивает существующую ошибку с форматированием
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *AppError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// getStackTrace возвращает стек вызовов
func getStackTrace() []string {
	var stack []string
	for i := 2; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		// Пропускаем внутренние функции пакета errors
		if strings.Contains(fn.Name(), "internal/common/errors") {
			continue
		}
		stack = append(stack, fmt.Sprintf("%s:%d %s", file, line, fn.Name()))
		if len(stack) >= 10 {
			break
		}
	}
	return stack
}

// Конструкторы для часто используемых ошибок

// NewValidationError создает ошибку валидации одного поля
func NewValidationError(field, reason string) *AppError {
	return NewValidationErrors("Invalid request data", []FieldError{{Field: field, Reason: reason}})
}

// NewValidationErrors создает ошибку валидации с перечнем полей
func NewValidationErrors(message string, fields []FieldError) *AppError {
	return New(ErrCodeValidation, message).
		WithDetail("errors", fields)
}

// NewBadRequestError создает ошибку некорректного запроса
func NewBadRequestError(reason string) *AppError {
	return New(ErrCodeBadRequest, reason)
}

// NewNotFoundError создает ошибку "не найдено"
func NewNotFoundError(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

// NewUserNotFoundError создает ошибку "пользователь не найден"
func NewUserNotFoundError(key interface{}) *AppError {
	return New(ErrCodeUserNotFound, "User not found").
		WithDetail("user", key)
}

// NewTransactionNotFoundError создает ошибку "транзакция не найдена"
func NewTransactionNotFoundError(id int64) *AppError {
	return New(ErrCodeTransactionNotFound, "Transaction not found").
		WithDetail("transaction_id", id)
}

// NewNotificationNotFoundError создает ошибку "уведомление не найдено"
func NewNotificationNotFoundError(id int64) *AppError {
	return New(ErrCodeNotificationNotFound, "Notification not found").
		WithDetail("notification_id", id)
}

// NewDocumentNotFoundError создает ошибку "проверка документа не найдена"
func NewDocumentNotFoundError(id int64) *AppError {
	return New(ErrCodeDocumentNotFound, "Document verification not found").
		WithDetail("document_id", id)
}

// NewPaymentNotFoundError создает ошибку "платеж не найден"
func NewPaymentNotFoundError(id int64) *AppError {
	return New(ErrCodePaymentNotFound, "Payment submission not found").
		WithDetail("payment_id", id)
}

// NewMarketDataNotFoundError создает ошибку "котировка не найдена"
func NewMarketDataNotFoundError(symbol string) *AppError {
	return New(ErrCodeMarketDataNotFound, "Market data not found").
		WithDetail("symbol", symbol)
}

// NewEmailTakenError создает ошибку занятого email
func NewEmailTakenError(email string) *AppError {
	return New(ErrCodeEmailTaken, "Email is already registered").
		WithDetail("email", email)
}

// NewDatabaseError создает ошибку хранилища
func NewDatabaseError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeDatabaseError, fmt.Sprintf("Database operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// NewCacheError создает ошибку redis
func NewCacheError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeCacheError, fmt.Sprintf("Cache operation failed: %s", operation)).
		WithDetail("operation", operation)
}

// IsAppError проверяет, является ли ошибка AppError
func IsAppError(err error) bool {
	_, ok := AsAppError(err)
	return ok
}

// AsAppError приводит ошибку к AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	for err != nil {
		if e, ok := err.(*AppError); ok {
			appErr = e
			break
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			break
		}
		err = u.Unwrap()
	}
	return appErr, appErr != nil
}
