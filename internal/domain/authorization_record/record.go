package authorization_record

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthorizationRecord 決済承認の終端結果の記録エンティティ
// 決済リクエストごとに1件、終端コールバックが届いた時点で作成される
type AuthorizationRecord struct {
	recordID              string
	callbackID            string
	transactionIdentifier string
	merchantID            string
	amount                decimal.Decimal
	currencyCode          string
	status                RecordStatus
	createdAt             time.Time
}

// NewAuthorizationRecord 新しいAuthorizationRecordを作成
func NewAuthorizationRecord(
	recordID string,
	callbackID string,
	transactionIdentifier string,
	merchantID string,
	amount decimal.Decimal,
	currencyCode string,
	status RecordStatus,
) *AuthorizationRecord {
	return &AuthorizationRecord{
		recordID:              recordID,
		callbackID:            callbackID,
		transactionIdentifier: transactionIdentifier,
		merchantID:            merchantID,
		amount:                amount,
		currencyCode:          currencyCode,
		status:                status,
		createdAt:             time.Now(),
	}
}

// Restore 永続化済みの値からAuthorizationRecordを復元
func Restore(
	recordID string,
	callbackID string,
	transactionIdentifier string,
	merchantID string,
	amount decimal.Decimal,
	currencyCode string,
	status RecordStatus,
	createdAt time.Time,
) *AuthorizationRecord {
	return &AuthorizationRecord{
		recordID:              recordID,
		callbackID:            callbackID,
		transactionIdentifier: transactionIdentifier,
		merchantID:            merchantID,
		amount:                amount,
		currencyCode:          currencyCode,
		status:                status,
		createdAt:             createdAt,
	}
}

// RecordID 記録IDを返す
func (r *AuthorizationRecord) RecordID() string {
	return r.recordID
}

// CallbackID 決済リクエストのコールバックIDを返す
func (r *AuthorizationRecord) CallbackID() string {
	return r.callbackID
}

// TransactionIdentifier トランザクション識別子を返す（キャンセル時は空）
func (r *AuthorizationRecord) TransactionIdentifier() string {
	return r.transactionIdentifier
}

// MerchantID マーチャント識別子を返す
func (r *AuthorizationRecord) MerchantID() string {
	return r.merchantID
}

// Amount 決済金額を返す
func (r *AuthorizationRecord) Amount() decimal.Decimal {
	return r.amount
}

// CurrencyCode 通貨コードを返す
func (r *AuthorizationRecord) CurrencyCode() string {
	return r.currencyCode
}

// Status 終端ステータスを返す
func (r *AuthorizationRecord) Status() RecordStatus {
	return r.status
}

// CreatedAt 作成日時を返す
func (r *AuthorizationRecord) CreatedAt() time.Time {
	return r.createdAt
}
