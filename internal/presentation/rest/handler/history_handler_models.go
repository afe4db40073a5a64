package handler

// AuthorizationItem 承認記録アイテム
// @Description 承認記録アイテム
type AuthorizationItem struct {
	RecordID              string `json:"record_id" example:"8c1f2c2e-4d1a-4f6a-9f3b-2f8f7a1c9d10"`
	CallbackID            string `json:"callback_id" example:"ApplePay1962595129"`
	TransactionIdentifier string `json:"transaction_identifier" example:"T-1"`
	MerchantID            string `json:"merchant_id" example:"merchant.example.shop"`
	Amount                string `json:"amount" example:"100.50"`
	CurrencyCode          string `json:"currency_code" example:"USD"`
	Status                string `json:"status" example:"completed"`
	CreatedAt             string `json:"created_at" example:"2024-01-01T12:00:00Z"`
}

// AuthorizationHistoryResponse 承認履歴レスポンス
// @Description 承認履歴レスポンス
type AuthorizationHistoryResponse struct {
	Authorizations []AuthorizationItem `json:"authorizations"`
	Limit          int                 `json:"limit" example:"50"`
	Offset         int                 `json:"offset" example:"0"`
}
