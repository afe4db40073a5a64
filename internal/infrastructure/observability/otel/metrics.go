package otel

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics メトリクス定義
type Metrics struct {
	// 決済リクエスト数
	PaymentRequestCount metric.Int64Counter

	// 承認数
	AuthorizationCount metric.Int64Counter

	// ブリッジコールバック数
	CallbackCount metric.Int64Counter

	// シート表示時間
	SheetPresentationTime metric.Float64Histogram

	// リクエスト数
	RequestCount metric.Int64Counter

	// レスポンス時間
	ResponseTime metric.Float64Histogram

	// エラー率
	ErrorCount metric.Int64Counter
}

// NewMetrics 新しいMetricsを作成
func NewMetrics(meterName string) (*Metrics, error) {
	meter := otel.Meter(meterName)

	paymentRequestCount, err := meter.Int64Counter(
		"payment_requests_total",
		metric.WithDescription("Total number of payment requests presented to the sheet"),
	)
	if err != nil {
		return nil, err
	}

	authorizationCount, err := meter.Int64Counter(
		"authorizations_total",
		metric.WithDescription("Total number of sheet authorizations"),
	)
	if err != nil {
		return nil, err
	}

	callbackCount, err := meter.Int64Counter(
		"bridge_callbacks_total",
		metric.WithDescription("Total number of plugin results sent to the bridge"),
	)
	if err != nil {
		return nil, err
	}

	sheetPresentationTime, err := meter.Float64Histogram(
		"sheet_presentation_seconds",
		metric.WithDescription("Time from sheet presentation to finish in seconds"),
	)
	if err != nil {
		return nil, err
	}

	requestCount, err := meter.Int64Counter(
		"requests_total",
		metric.WithDescription("Total number of requests"),
	)
	if err != nil {
		return nil, err
	}

	responseTime, err := meter.Float64Histogram(
		"response_time_seconds",
		metric.WithDescription("Response time in seconds"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"errors_total",
		metric.WithDescription("Total number of errors"),
	)
	if err != nil {
		return nil, err
	}

	return &Metrics{
		PaymentRequestCount:   paymentRequestCount,
		AuthorizationCount:    authorizationCount,
		CallbackCount:         callbackCount,
		SheetPresentationTime: sheetPresentationTime,
		RequestCount:          requestCount,
		ResponseTime:          responseTime,
		ErrorCount:            errorCount,
	}, nil
}

// RecordPaymentRequest 決済リクエストを記録
func (m *Metrics) RecordPaymentRequest(ctx context.Context, merchantID string) {
	m.PaymentRequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("merchant_id", merchantID),
		),
	)
}

// RecordAuthorization シート承認を記録
func (m *Metrics) RecordAuthorization(ctx context.Context) {
	m.AuthorizationCount.Add(ctx, 1)
}

// RecordCallback ブリッジへのコールバック送信を記録
func (m *Metrics) RecordCallback(ctx context.Context, action, status string) {
	m.CallbackCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("action", action),
			attribute.String("status", status),
		),
	)
}

// RecordSheetPresentationTime シート表示時間を記録
func (m *Metrics) RecordSheetPresentationTime(ctx context.Context, seconds float64) {
	m.SheetPresentationTime.Record(ctx, seconds)
}

// RecordRequest リクエストを記録
func (m *Metrics) RecordRequest(ctx context.Context, method, path string) {
	m.RequestCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordResponseTime レスポンス時間を記録
func (m *Metrics) RecordResponseTime(ctx context.Context, method, path string, duration float64) {
	m.ResponseTime.Record(ctx, duration,
		metric.WithAttributes(
			attribute.String("method", method),
			attribute.String("path", path),
		),
	)
}

// RecordError エラーを記録
func (m *Metrics) RecordError(ctx context.Context, errorType string) {
	m.ErrorCount.Add(ctx, 1,
		metric.WithAttributes(
			attribute.String("error_type", errorType),
		),
	)
}
