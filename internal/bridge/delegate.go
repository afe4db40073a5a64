package bridge

import "context"

// CommandDelegate プラグイン結果をホストブリッジへ送るインターフェース
type CommandDelegate interface {
	Send(ctx context.Context, result *Result, callbackID string)
}
