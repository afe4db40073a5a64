package applepay

import "errors"

var (
	// ErrPaymentCancelled ユーザーキャンセルエラー
	// メッセージ文字列はワイヤ契約の一部であり変更不可
	ErrPaymentCancelled = errors.New("Payment cancelled")
	// ErrSheetUnavailable シートを表示できないエラー
	ErrSheetUnavailable = errors.New("payment sheet unavailable")
)
