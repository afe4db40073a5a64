package history

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"applepay-bridge/internal/domain/authorization_record"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
)

// HistoryApplicationService 承認履歴アプリケーションサービス
type HistoryApplicationService struct {
	recordRepo authorization_record.AuthorizationRecordRepository
	logger     *otelinfra.Logger
	metrics    *otelinfra.Metrics
	tracer     trace.Tracer
}

// NewHistoryApplicationService 新しいHistoryApplicationServiceを作成
func NewHistoryApplicationService(
	recordRepo authorization_record.AuthorizationRecordRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *HistoryApplicationService {
	return &HistoryApplicationService{
		recordRepo: recordRepo,
		logger:     logger,
		metrics:    metrics,
		tracer:     otel.Tracer("history-service"),
	}
}

// GetAuthorizationHistory 承認履歴を取得
func (s *HistoryApplicationService) GetAuthorizationHistory(ctx context.Context, req *GetAuthorizationHistoryRequest) (*GetAuthorizationHistoryResponse, error) {
	ctx, span := s.tracer.Start(ctx, "HistoryApplicationService.GetAuthorizationHistory")
	defer span.End()

	span.SetAttributes(
		attribute.Int("limit", req.Limit),
		attribute.Int("offset", req.Offset),
	)

	s.logger.Info(ctx, "Getting authorization history", map[string]interface{}{
		"limit":  req.Limit,
		"offset": req.Offset,
		"status": req.Status,
	})

	// バリデーション
	if req.Limit <= 0 {
		req.Limit = 50 // デフォルト値
	}
	if req.Limit > 100 {
		req.Limit = 100 // 最大値
	}
	if req.Offset < 0 {
		req.Offset = 0
	}

	// 永続化が無効な構成では空の履歴を返す
	if s.recordRepo == nil {
		return &GetAuthorizationHistoryResponse{
			Records: []AuthorizationRecordDTO{},
			Limit:   req.Limit,
			Offset:  req.Offset,
		}, nil
	}

	// 承認記録を取得
	records, err := s.recordRepo.FindRecent(ctx, req.Limit, req.Offset)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to get authorization history", err, nil)
		return nil, fmt.Errorf("failed to get authorization history: %w", err)
	}

	// ステータスフィルタ
	dtos := make([]AuthorizationRecordDTO, 0, len(records))
	for _, record := range records {
		if req.Status != "" && record.Status().String() != req.Status {
			continue
		}
		dtos = append(dtos, AuthorizationRecordDTO{
			RecordID:              record.RecordID(),
			CallbackID:            record.CallbackID(),
			TransactionIdentifier: record.TransactionIdentifier(),
			MerchantID:            record.MerchantID(),
			Amount:                record.Amount().String(),
			CurrencyCode:          record.CurrencyCode(),
			Status:                record.Status().String(),
			CreatedAt:             record.CreatedAt(),
		})
	}

	return &GetAuthorizationHistoryResponse{
		Records: dtos,
		Limit:   req.Limit,
		Offset:  req.Offset,
	}, nil
}
