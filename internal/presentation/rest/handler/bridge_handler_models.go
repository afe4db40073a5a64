package handler

// ExecRequest ブリッジコマンド実行リクエスト
// @Description ブリッジコマンド実行リクエスト
type ExecRequest struct {
	Action     string        `json:"action" example:"makePaymentRequest"`
	CallbackID string        `json:"callback_id" example:"ApplePay1962595129"`
	Arguments  []interface{} `json:"arguments"`
}

// ExecResponse ブリッジコマンド実行レスポンス
// @Description ブリッジコマンド実行レスポンス
type ExecResponse struct {
	CallbackID string `json:"callback_id" example:"ApplePay1962595129"`
	Accepted   bool   `json:"accepted" example:"true"`
}

// BridgeResult ブリッジ結果
// @Description callback宛に届いた単一の結果
type BridgeResult struct {
	Status  string      `json:"status" example:"OK"`
	Message interface{} `json:"message"`
}

// ResultsResponse ブリッジ結果取得レスポンス
// @Description ブリッジ結果取得レスポンス
type ResultsResponse struct {
	CallbackID string         `json:"callback_id" example:"ApplePay1962595129"`
	Results    []BridgeResult `json:"results"`
}
