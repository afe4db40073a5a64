package authorization_record

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNewAuthorizationRecord(t *testing.T) {
	tests := []struct {
		name                  string
		recordID              string
		callbackID            string
		transactionIdentifier string
		status                RecordStatus
	}{
		{
			name:                  "正常系: 成功記録の作成",
			recordID:              "rec-1",
			callbackID:            "cb-1",
			transactionIdentifier: "txn-0001",
			status:                RecordStatusCompleted,
		},
		{
			name:                  "正常系: 失敗記録の作成",
			recordID:              "rec-2",
			callbackID:            "cb-2",
			transactionIdentifier: "txn-0002",
			status:                RecordStatusFailed,
		},
		{
			name:       "正常系: キャンセル記録はトランザクション識別子なし",
			recordID:   "rec-3",
			callbackID: "cb-3",
			status:     RecordStatusCancelled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := time.Now()
			record := NewAuthorizationRecord(
				tt.recordID,
				tt.callbackID,
				tt.transactionIdentifier,
				"merchant.com.example.shop",
				decimal.RequireFromString("1980.50"),
				"JPY",
				tt.status,
			)

			assert.Equal(t, tt.recordID, record.RecordID())
			assert.Equal(t, tt.callbackID, record.CallbackID())
			assert.Equal(t, tt.transactionIdentifier, record.TransactionIdentifier())
			assert.Equal(t, "merchant.com.example.shop", record.MerchantID())
			assert.Equal(t, "1980.5", record.Amount().String())
			assert.Equal(t, "JPY", record.CurrencyCode())
			assert.Equal(t, tt.status, record.Status())
			assert.False(t, record.CreatedAt().Before(before))
		})
	}
}

func TestRestore(t *testing.T) {
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	record := Restore(
		"rec-1",
		"cb-1",
		"txn-0001",
		"merchant.com.example.shop",
		decimal.RequireFromString("500"),
		"JPY",
		RecordStatusCompleted,
		createdAt,
	)

	assert.Equal(t, "rec-1", record.RecordID())
	assert.Equal(t, RecordStatusCompleted, record.Status())
	// 復元では作成日時を引き継ぐ
	assert.Equal(t, createdAt, record.CreatedAt())
}
