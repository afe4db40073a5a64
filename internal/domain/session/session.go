package session

import (
	"sync"

	"applepay-bridge/internal/domain/applepay"
)

// AuthorizationSession 承認セッションエンティティ
// 保持中のコールバックID・捕捉した完了継続・処理成功フラグを
// 3フェーズにまたがって管理するプロセス全体で単一の状態機械。
// シートは同時に1枚しか表示できないため、セッションも常に1つ。
// ブリッジのコマンドは任意のゴルーチンから届くためミューテックスで保護する。
type AuthorizationSession struct {
	mu                    sync.Mutex
	state                 SessionState
	callbackID            string
	completion            applepay.CompletionFunc
	processedSuccessfully bool
}

// NewAuthorizationSession 新しいAuthorizationSessionを作成
func NewAuthorizationSession() *AuthorizationSession {
	return &AuthorizationSession{
		state: SessionStateIdle,
	}
}

// Begin セッションを開始してコールバックIDを保持する
// 完了継続と処理成功フラグはクリアされる
func (s *AuthorizationSession) Begin(callbackID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsIdle() {
		return ErrSessionBusy
	}

	s.state = SessionStateAwaitingUser
	s.callbackID = callbackID
	s.completion = nil
	s.processedSuccessfully = false
	return nil
}

// Abort セッションを初期状態へ戻す
// シート表示前のエラー（引数抽出失敗など）で使用する
func (s *AuthorizationSession) Abort() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = SessionStateIdle
	s.callbackID = ""
	s.completion = nil
	s.processedSuccessfully = false
}

// CaptureCompletion 承認通知が運んできた完了継続を捕捉する
// この時点では呼び出さず、updatePaymentStatusまで保持する
func (s *AuthorizationSession) CaptureCompletion(completion applepay.CompletionFunc) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionStateAwaitingUser {
		return ErrUnexpectedAuthorization
	}

	s.state = SessionStateAwaitingProcessing
	s.completion = completion
	return nil
}

// Release 捕捉済みの完了継続を取り出してセッションからクリアする
// successがtrueの場合のみ処理成功フラグが立つ。継続は単発であり、
// 二度目の呼び出しはErrNoCapturedCompletionになる
func (s *AuthorizationSession) Release(success bool) (applepay.CompletionFunc, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != SessionStateAwaitingProcessing || s.completion == nil {
		return nil, ErrNoCapturedCompletion
	}

	completion := s.completion
	s.completion = nil
	s.state = SessionStateAwaitingDismiss
	if success {
		s.processedSuccessfully = true
	}
	return completion, nil
}

// Finish シート終了通知を処理してセッションを初期状態へ戻す
// 保持していたコールバックIDと、キャンセルエラーを通知すべきかを返す
func (s *AuthorizationSession) Finish() (callbackID string, cancelled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.IsIdle() {
		return "", false
	}

	callbackID = s.callbackID
	cancelled = !s.processedSuccessfully

	s.state = SessionStateIdle
	s.callbackID = ""
	s.completion = nil
	s.processedSuccessfully = false
	return callbackID, cancelled
}

// CallbackID 保持中のコールバックIDを返す
func (s *AuthorizationSession) CallbackID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.callbackID
}

// State 現在のセッション状態を返す
func (s *AuthorizationSession) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ProcessedSuccessfully 処理成功フラグを返す
func (s *AuthorizationSession) ProcessedSuccessfully() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.processedSuccessfully
}
