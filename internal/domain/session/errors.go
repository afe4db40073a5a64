package session

import "errors"

var (
	// ErrSessionBusy 別の決済リクエストが進行中エラー
	ErrSessionBusy = errors.New("payment request already in progress")
	// ErrNoCapturedCompletion 保持中の完了継続が存在しないエラー
	// メッセージ文字列はワイヤ契約の一部であり変更不可
	ErrNoCapturedCompletion = errors.New("could not update payment status")
	// ErrUnexpectedAuthorization ユーザー操作待ちでないのに承認が届いたエラー
	ErrUnexpectedAuthorization = errors.New("unexpected authorization")
)
