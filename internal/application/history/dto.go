package history

import "time"

// GetAuthorizationHistoryRequest 承認履歴取得リクエスト
type GetAuthorizationHistoryRequest struct {
	Limit  int
	Offset int
	Status string // optional: "completed", "failed", "cancelled"
}

// AuthorizationRecordDTO 承認記録のレスポンス表現
type AuthorizationRecordDTO struct {
	RecordID              string
	CallbackID            string
	TransactionIdentifier string
	MerchantID            string
	Amount                string
	CurrencyCode          string
	Status                string
	CreatedAt             time.Time
}

// GetAuthorizationHistoryResponse 承認履歴取得レスポンス
type GetAuthorizationHistoryResponse struct {
	Records []AuthorizationRecordDTO
	Limit   int
	Offset  int
}
