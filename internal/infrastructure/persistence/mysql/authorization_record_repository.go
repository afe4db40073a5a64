package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"applepay-bridge/internal/domain/authorization_record"
)

// AuthorizationRecordRepository MySQL実装のAuthorizationRecordRepository
type AuthorizationRecordRepository struct {
	db     *DB
	tracer trace.Tracer
}

// NewAuthorizationRecordRepository 新しいAuthorizationRecordRepositoryを作成
func NewAuthorizationRecordRepository(db *DB) *AuthorizationRecordRepository {
	return &AuthorizationRecordRepository{
		db:     db,
		tracer: otel.Tracer("authorization-record-repository"),
	}
}

// Save 承認記録を保存
func (r *AuthorizationRecordRepository) Save(ctx context.Context, record *authorization_record.AuthorizationRecord) error {
	ctx, span := r.tracer.Start(ctx, "AuthorizationRecordRepository.Save")
	defer span.End()

	span.SetAttributes(
		attribute.String("record_id", record.RecordID()),
		attribute.String("status", record.Status().String()),
	)

	query := `
		INSERT INTO authorization_records (
			record_id, callback_id, transaction_identifier, merchant_id,
			amount, currency_code, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		record.RecordID(),
		record.CallbackID(),
		record.TransactionIdentifier(),
		record.MerchantID(),
		record.Amount().String(),
		record.CurrencyCode(),
		record.Status().String(),
		record.CreatedAt(),
	)

	if err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save authorization record: %w", err)
	}

	return nil
}

// FindRecent 作成日時の降順で承認記録を取得
func (r *AuthorizationRecordRepository) FindRecent(ctx context.Context, limit, offset int) ([]*authorization_record.AuthorizationRecord, error) {
	ctx, span := r.tracer.Start(ctx, "AuthorizationRecordRepository.FindRecent")
	defer span.End()

	query := `
		SELECT
			record_id, callback_id, transaction_identifier, merchant_id,
			amount, currency_code, status, created_at
		FROM authorization_records
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to find authorization records: %w", err)
	}
	defer rows.Close()

	records := make([]*authorization_record.AuthorizationRecord, 0)
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to iterate authorization records: %w", err)
	}

	return records, nil
}

// FindByCallbackID コールバックIDで承認記録を取得
func (r *AuthorizationRecordRepository) FindByCallbackID(ctx context.Context, callbackID string) (*authorization_record.AuthorizationRecord, error) {
	ctx, span := r.tracer.Start(ctx, "AuthorizationRecordRepository.FindByCallbackID")
	defer span.End()

	span.SetAttributes(attribute.String("callback_id", callbackID))

	query := `
		SELECT
			record_id, callback_id, transaction_identifier, merchant_id,
			amount, currency_code, status, created_at
		FROM authorization_records
		WHERE callback_id = ?
	`

	row := r.db.QueryRowContext(ctx, query, callbackID)
	record, err := scanRecord(row.Scan)
	if err == sql.ErrNoRows {
		return nil, authorization_record.ErrRecordNotFound
	}
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	return record, nil
}

// scanRecord 行をAuthorizationRecordへ復元
func scanRecord(scan func(dest ...interface{}) error) (*authorization_record.AuthorizationRecord, error) {
	var recordID, callbackID, transactionIdentifier, merchantID string
	var amountText, currencyCode, statusText string
	var createdAt time.Time

	err := scan(
		&recordID,
		&callbackID,
		&transactionIdentifier,
		&merchantID,
		&amountText,
		&currencyCode,
		&statusText,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan authorization record: %w", err)
	}

	amount, err := decimal.NewFromString(amountText)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}

	status, err := authorization_record.NewRecordStatus(statusText)
	if err != nil {
		return nil, fmt.Errorf("invalid record status: %w", err)
	}

	return authorization_record.Restore(
		recordID,
		callbackID,
		transactionIdentifier,
		merchantID,
		amount,
		currencyCode,
		status,
		createdAt,
	), nil
}
