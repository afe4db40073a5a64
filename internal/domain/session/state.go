package session

import (
	"fmt"
)

// SessionState 承認セッションの状態を表す値オブジェクト
type SessionState string

const (
	SessionStateIdle               SessionState = "idle"                // シート未表示
	SessionStateAwaitingUser       SessionState = "awaiting_user"       // ユーザー操作待ち
	SessionStateAwaitingProcessing SessionState = "awaiting_processing" // バックエンド処理結果待ち
	SessionStateAwaitingDismiss    SessionState = "awaiting_dismiss"    // シートの終了待ち
)

// NewSessionState 新しいSessionStateを作成
func NewSessionState(s string) (SessionState, error) {
	switch s {
	case "idle", "awaiting_user", "awaiting_processing", "awaiting_dismiss":
		return SessionState(s), nil
	default:
		return "", fmt.Errorf("invalid session state: %s", s)
	}
}

// String 文字列表現を返す
func (ss SessionState) String() string {
	return string(ss)
}

// Valid 有効なセッション状態かどうかを返す
func (ss SessionState) Valid() bool {
	switch ss {
	case SessionStateIdle, SessionStateAwaitingUser, SessionStateAwaitingProcessing, SessionStateAwaitingDismiss:
		return true
	default:
		return false
	}
}

// IsIdle シート未表示状態かどうかを返す
func (ss SessionState) IsIdle() bool {
	return ss == SessionStateIdle
}

// IsActive シートが表示中かどうかを返す
func (ss SessionState) IsActive() bool {
	return ss != SessionStateIdle && ss.Valid()
}
