package applepay

import "context"

// AuthorizationStatus 承認継続に渡す終端ステータス
type AuthorizationStatus int

const (
	AuthorizationStatusSuccess AuthorizationStatus = iota // 成功
	AuthorizationStatusFailure                            // 失敗
)

// CompletionFunc シートが承認時に渡す単発の完了継続
// 終端ステータスを受け取ってシートを閉じられる状態にする
type CompletionFunc func(status AuthorizationStatus)

// SheetDelegate ペイメントシートからの通知を受け取るインターフェース
type SheetDelegate interface {
	// DidAuthorizePayment ユーザーがシート上で決済を承認したときに呼ばれる
	// completionはupdatePaymentStatusまで保持し、必ず一度だけ呼び出すこと
	DidAuthorizePayment(ctx context.Context, payment *Payment, completion CompletionFunc)

	// DidFinish シートが閉じようとしているときに呼ばれる（ユーザーキャンセルを含む）
	DidFinish(ctx context.Context)
}

// PaymentSheet プラットフォームネイティブのペイメントシートへのポート
type PaymentSheet interface {
	// CanMakePayments 指定のネットワークとケイパビリティで決済を承認できるかを返す
	CanMakePayments(networks []PaymentNetwork, capability MerchantCapability) bool

	// Present 決済リクエストでシートを表示する
	Present(ctx context.Context, request *PaymentRequest, delegate SheetDelegate) error

	// Dismiss シートを閉じる
	Dismiss(ctx context.Context)
}
