package authorization_record

import (
	"fmt"
)

// RecordStatus 承認記録の終端ステータスを表す値オブジェクト
type RecordStatus string

const (
	RecordStatusCompleted RecordStatus = "completed" // バックエンド処理成功
	RecordStatusFailed    RecordStatus = "failed"    // バックエンド処理失敗
	RecordStatusCancelled RecordStatus = "cancelled" // ユーザーキャンセル
)

// NewRecordStatus 新しいRecordStatusを作成
func NewRecordStatus(s string) (RecordStatus, error) {
	switch s {
	case "completed", "failed", "cancelled":
		return RecordStatus(s), nil
	default:
		return "", fmt.Errorf("invalid record status: %s", s)
	}
}

// String 文字列表現を返す
func (rs RecordStatus) String() string {
	return string(rs)
}

// Valid 有効なステータスかどうかを返す
func (rs RecordStatus) Valid() bool {
	switch rs {
	case RecordStatusCompleted, RecordStatusFailed, RecordStatusCancelled:
		return true
	default:
		return false
	}
}

// IsCompleted 成功記録かどうかを返す
func (rs RecordStatus) IsCompleted() bool {
	return rs == RecordStatusCompleted
}
