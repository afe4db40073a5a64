package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	historyapp "applepay-bridge/internal/application/history"
	"applepay-bridge/internal/domain/authorization_record"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
	restmiddleware "applepay-bridge/internal/presentation/rest/middleware"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

func TestHistoryHandler_GetAuthorizations(t *testing.T) {
	sampleRecords := []*authorization_record.AuthorizationRecord{
		authorization_record.NewAuthorizationRecord(
			"rec-1",
			"ApplePay100",
			"T-1",
			"merchant.example.shop",
			decimal.RequireFromString("100.50"),
			"USD",
			authorization_record.RecordStatusCompleted,
		),
		authorization_record.NewAuthorizationRecord(
			"rec-2",
			"ApplePay101",
			"",
			"merchant.example.shop",
			decimal.RequireFromString("25.00"),
			"USD",
			authorization_record.RecordStatusCancelled,
		),
	}

	tests := []struct {
		name             string
		queryParams      string
		setupMock        func(*MockAuthorizationRecordRepository)
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:        "正常系: 履歴取得成功",
			queryParams: "",
			setupMock: func(m *MockAuthorizationRecordRepository) {
				m.On("FindRecent", mock.Anything, 50, 0).Return(sampleRecords, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var response map[string]interface{}
				err := json.Unmarshal(rec.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Contains(t, response, "authorizations")
				assert.Contains(t, response, "limit")
				assert.Contains(t, response, "offset")
				authorizations := response["authorizations"].([]interface{})
				assert.Len(t, authorizations, 2)
				first := authorizations[0].(map[string]interface{})
				assert.Equal(t, "rec-1", first["record_id"])
				assert.Equal(t, "100.5", first["amount"])
				assert.Equal(t, "completed", first["status"])
			},
		},
		{
			name:        "正常系: limitとoffsetを指定",
			queryParams: "?limit=10&offset=20",
			setupMock: func(m *MockAuthorizationRecordRepository) {
				m.On("FindRecent", mock.Anything, 10, 20).Return([]*authorization_record.AuthorizationRecord{}, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var response map[string]interface{}
				err := json.Unmarshal(rec.Body.Bytes(), &response)
				require.NoError(t, err)
				assert.Equal(t, float64(10), response["limit"])
				assert.Equal(t, float64(20), response["offset"])
			},
		},
		{
			name:        "正常系: ステータスでフィルタ",
			queryParams: "?status=cancelled",
			setupMock: func(m *MockAuthorizationRecordRepository) {
				m.On("FindRecent", mock.Anything, 50, 0).Return(sampleRecords, nil)
			},
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, rec *httptest.ResponseRecorder) {
				var response map[string]interface{}
				err := json.Unmarshal(rec.Body.Bytes(), &response)
				require.NoError(t, err)
				authorizations := response["authorizations"].([]interface{})
				assert.Len(t, authorizations, 1)
				first := authorizations[0].(map[string]interface{})
				assert.Equal(t, "cancelled", first["status"])
			},
		},
		{
			name:           "異常系: 不正なlimit",
			queryParams:    "?limit=0",
			setupMock:      func(m *MockAuthorizationRecordRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "異常系: 不正なoffset",
			queryParams:    "?offset=-1",
			setupMock:      func(m *MockAuthorizationRecordRepository) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			tracer := noop.NewTracerProvider().Tracer("test")
			logger := otelinfra.NewLogger(tracer)

			// エラーハンドリングミドルウェアを設定
			e.Use(restmiddleware.ErrorHandlerMiddleware(logger))

			mockRepo := new(MockAuthorizationRecordRepository)
			tt.setupMock(mockRepo)

			metrics, err := otelinfra.NewMetrics("test")
			require.NoError(t, err)

			service := historyapp.NewHistoryApplicationService(mockRepo, logger, metrics)
			handler := NewHistoryHandler(service)

			e.GET("/api/v1/admin/authorizations", handler.GetAuthorizations)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/authorizations"+tt.queryParams, nil)
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)
			assert.Equal(t, tt.expectedStatus, rec.Code)

			if tt.validateResponse != nil {
				tt.validateResponse(t, rec)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
