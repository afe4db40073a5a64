package authorization_record

import "context"

// AuthorizationRecordRepository 承認記録の永続化インターフェース
type AuthorizationRecordRepository interface {
	// Save 承認記録を保存
	Save(ctx context.Context, record *AuthorizationRecord) error

	// FindRecent 作成日時の降順で承認記録を取得
	FindRecent(ctx context.Context, limit, offset int) ([]*AuthorizationRecord, error)

	// FindByCallbackID コールバックIDで承認記録を取得
	FindByCallbackID(ctx context.Context, callbackID string) (*AuthorizationRecord, error)
}
