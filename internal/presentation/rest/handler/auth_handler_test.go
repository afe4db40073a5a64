package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	authapp "applepay-bridge/internal/application/auth"
	"applepay-bridge/internal/infrastructure/config"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
	restmiddleware "applepay-bridge/internal/presentation/rest/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestAuthHandler_GenerateToken(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{
			name:           "正常系: トークン生成成功",
			body:           `{"client_id":"webview-client-1"}`,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "異常系: client_idが空",
			body:           `{"client_id":""}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 不正なリクエストボディ",
			body:           `{invalid`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			cfg := &config.JWTConfig{
				Secret:     "test-secret",
				Expiration: 86400 * time.Second,
				Issuer:     "test",
			}
			tracer := noop.NewTracerProvider().Tracer("test")
			logger := otelinfra.NewLogger(tracer)

			// エラーハンドリングミドルウェアを設定
			e.Use(restmiddleware.ErrorHandlerMiddleware(logger))

			service := authapp.NewAuthApplicationService(cfg, logger)
			handler := NewAuthHandler(service)

			e.POST("/api/v1/auth/token", handler.GenerateToken)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/token", strings.NewReader(tt.body))
			req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.expectedStatus == http.StatusOK {
				var response map[string]interface{}
				err := json.Unmarshal(rec.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.NotEmpty(t, response["token"])
				assert.Equal(t, float64(86400), response["expires_in"])
				assert.Equal(t, "Bearer", response["token_type"])
			}
		})
	}
}
