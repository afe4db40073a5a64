package bridge

// Status プラグイン結果のステータスを表す値オブジェクト
type Status string

const (
	StatusOK    Status = "OK"    // 成功
	StatusError Status = "ERROR" // 失敗
)

// String 文字列表現を返す
func (s Status) String() string {
	return string(s)
}

// Result ホストブリッジへ返すプラグイン結果
// Messageには真偽値・文字列・順序付きシーケンスのいずれかを載せる
type Result struct {
	Status  Status
	Message interface{}
}

// NewOKResult 成功結果を作成
func NewOKResult(message interface{}) *Result {
	return &Result{
		Status:  StatusOK,
		Message: message,
	}
}

// NewErrorResult エラー結果を作成
func NewErrorResult(message string) *Result {
	return &Result{
		Status:  StatusError,
		Message: message,
	}
}

// IsOK 成功結果かどうかを返す
func (r *Result) IsOK() bool {
	return r.Status == StatusOK
}
