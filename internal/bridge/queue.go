package bridge

import (
	"context"
	"sync"
)

// DispatchQueue コールバックID別にプラグイン結果を保持するCommandDelegate実装
// 開発用ブリッジではJavaScript側がポーリングで結果を引き取る
type DispatchQueue struct {
	mu     sync.Mutex
	queues map[string][]*Result
}

// NewDispatchQueue 新しいDispatchQueueを作成
func NewDispatchQueue() *DispatchQueue {
	return &DispatchQueue{
		queues: make(map[string][]*Result),
	}
}

// Send 結果をコールバックIDのキューへ追加
func (q *DispatchQueue) Send(_ context.Context, result *Result, callbackID string) {
	if result == nil || callbackID == "" {
		return
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.queues[callbackID] = append(q.queues[callbackID], result)
}

// Poll コールバックIDに溜まった結果を取り出してキューから除去
func (q *DispatchQueue) Poll(callbackID string) []*Result {
	q.mu.Lock()
	defer q.mu.Unlock()

	results := q.queues[callbackID]
	delete(q.queues, callbackID)
	return results
}

// Pending 未回収の結果数を返す
func (q *DispatchQueue) Pending(callbackID string) int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queues[callbackID])
}
