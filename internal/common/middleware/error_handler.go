package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"trading-platform-backend/internal/common/errors"
)

const (
	requestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// ErrorHandler middleware для обработки паник
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		requestID := getRequestID(c)

		logger.Error("Panic recovered",
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
			zap.String("stack", string(debug.Stack())),
		)

		appErr := errors.Wrap(fmt.Errorf("panic: %v", recovered), errors.ErrCodeInternal, "Internal server error")
		sendErrorResponse(c, appErr, logger)
		c.Abort()
	})
}

// RequestID middleware для добавления ID запроса
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Success   bool             `json:"success"`
	Error     *errors.AppError `json:"error"`
	Timestamp time.Time        `json:"timestamp"`
	RequestID string           `json:"request_id"`
	Path      string           `json:"path,omitempty"`
	Method    string           `json:"method,omitempty"`
}

// sendErrorResponse отправляет ошибку в формате JSON
func sendErrorResponse(c *gin.Context, appErr *errors.AppError, logger *zap.Logger) {
	requestID := getRequestID(c)

	appErr.WithRequestID(requestID).
		WithContext("path", c.Request.URL.Path).
		WithContext("method", c.Request.Method)

	statusCode := HTTPStatusCode(appErr)

	logError(appErr, logger, c)

	// Внутренние подробности наружу не отдаем
	body := appErr
	if statusCode >= http.StatusInternalServerError {
		body = &errors.AppError{
			Code:      errors.ErrCodeInternal,
			Message:   "Internal server error",
			Timestamp: appErr.Timestamp,
			RequestID: requestID,
		}
	}

	c.JSON(statusCode, ErrorResponse{
		Success:   false,
		Error:     body,
		Timestamp: time.Now(),
		RequestID: requestID,
		Path:      c.Request.URL.Path,
		Method:    c.Request.Method,
	})
}

// HTTPStatusCode возвращает HTTP статус код для ошибки
func HTTPStatusCode(appErr *errors.AppError) int {
	switch {
	case appErr.IsValidation():
		return http.StatusBadRequest
	case appErr.IsNotFound():
		return http.StatusNotFound
	case appErr.IsConflict():
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// logError логирует ошибку с контекстом
func logError(appErr *errors.AppError, logger *zap.Logger, c *gin.Context) {
	fields := []zap.Field{
		zap.String("request_id", getRequestID(c)),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("error_code", string(appErr.Code)),
		zap.String("error_message", appErr.Message),
		zap.Time("timestamp", appErr.Timestamp),
	}

	if len(appErr.Details) > 0 {
		detailsJSON, _ := json.Marshal(appErr.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	if appErr.Cause != nil {
		fields = append(fields, zap.Error(appErr.Cause))
	}

	switch {
	case appErr.IsValidation():
		logger.Info("Validation error", fields...)
	case appErr.IsNotFound():
		logger.Info("Resource not found", fields...)
	case appErr.IsConflict():
		logger.Warn("Conflict", fields...)
	default:
		fields = append(fields, zap.Strings("stack", appErr.Stack))
		logger.Error("Internal error occurred", fields...)
	}
}

// getRequestID получает ID запроса из контекста
func getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get(requestIDKey); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return "unknown"
}

// HandleErrorWrapper оборачивает обработчики для автоматической обработки ошибок
func HandleErrorWrapper(logger *zap.Logger) func(gin.HandlerFunc) gin.HandlerFunc {
	return func(handler gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			handler(c)

			if len(c.Errors) == 0 || c.Writer.Written() {
				return
			}

			err := c.Errors.Last().Err

			if appErr, ok := errors.AsAppError(err); ok {
				sendErrorResponse(c, appErr, logger)
				return
			}

			appErr := errors.Wrap(err, errors.ErrCodeInternal, "Handler error occurred").
				WithRequestID(getRequestID(c))
			sendErrorResponse(c, appErr, logger)
		}
	}
}
