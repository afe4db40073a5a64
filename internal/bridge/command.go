package bridge

// InvokedCommand ホストブリッジから渡されるコマンド
// CallbackIDは呼び出し元JavaScriptと結果を対応付ける不透明な文字列
type InvokedCommand struct {
	CallbackID string
	Arguments  []interface{}
}
