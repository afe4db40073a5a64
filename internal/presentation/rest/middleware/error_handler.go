package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"applepay-bridge/internal/bridge"
	"applepay-bridge/internal/domain/authorization_record"
	"applepay-bridge/internal/domain/session"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
)

// ErrorResponse エラーレスポンス
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// ErrorHandlerMiddleware エラーハンドリングミドルウェア
func ErrorHandlerMiddleware(logger *otelinfra.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}

			// エラーハンドリング
			return handleError(c, err, logger)
		}
	}
}

// handleError エラーを処理して適切なHTTPレスポンスを返す
func handleError(c echo.Context, err error, logger *otelinfra.Logger) error {
	ctx := c.Request().Context()

	// ドメインエラーの判定と処理
	if errors.Is(err, session.ErrSessionBusy) {
		logger.Warn(ctx, "Session busy", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "session_busy",
			Message: err.Error(),
		})
	}

	if errors.Is(err, session.ErrNoCapturedCompletion) {
		logger.Warn(ctx, "No captured completion", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "no_captured_completion",
			Message: err.Error(),
		})
	}

	var missingArg *bridge.MissingArgumentError
	if errors.As(err, &missingArg) {
		logger.Warn(ctx, "Missing argument", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "missing_argument",
			Message: err.Error(),
		})
	}

	if errors.Is(err, authorization_record.ErrRecordNotFound) {
		logger.Warn(ctx, "Authorization record not found", map[string]interface{}{
			"error": err.Error(),
		})
		return c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "authorization_record_not_found",
			Message: err.Error(),
		})
	}

	// EchoのHTTPエラー
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		logger.Warn(ctx, "HTTP error", map[string]interface{}{
			"status_code": httpErr.Code,
			"message":     httpErr.Message,
		})
		message := ""
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		} else {
			message = http.StatusText(httpErr.Code)
		}
		return c.JSON(httpErr.Code, ErrorResponse{
			Error:   http.StatusText(httpErr.Code),
			Message: message,
		})
	}

	// 予期しないエラー
	logger.Error(ctx, "Internal server error", err, map[string]interface{}{
		"path": c.Request().URL.Path,
	})
	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   "internal_server_error",
		Message: "An unexpected error occurred",
	})
}
