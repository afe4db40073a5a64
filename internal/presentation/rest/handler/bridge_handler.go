package handler

import (
	"encoding/json"
	"net/http"

	applepayapp "applepay-bridge/internal/application/applepay"
	"applepay-bridge/internal/bridge"

	"github.com/labstack/echo/v4"
)

// BridgeHandler ブリッジ関連ハンドラー
// webviewから届くコマンドをApple Payアプリケーションサービスへ振り分ける
type BridgeHandler struct {
	applePayService *applepayapp.ApplePayApplicationService
	queue           *bridge.DispatchQueue
}

// NewBridgeHandler 新しいBridgeHandlerを作成
func NewBridgeHandler(applePayService *applepayapp.ApplePayApplicationService, queue *bridge.DispatchQueue) *BridgeHandler {
	return &BridgeHandler{
		applePayService: applePayService,
		queue:           queue,
	}
}

// Exec ブリッジコマンド実行ハンドラー
// @Summary ブリッジコマンドを実行
// @Description webviewから渡されたアクションを実行します。結果はcallback_id宛に非同期で届きます
// @Tags bridge
// @Accept json
// @Produce json
// @Security Bearer
// @Param request body ExecRequest true "ブリッジコマンド"
// @Success 202 {object} ExecResponse "コマンド受理"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 403 {object} ErrorResponse "認証エラー"
// @Router /bridge/exec [post]
func (h *BridgeHandler) Exec(c echo.Context) error {
	var reqBody ExecRequest
	// 金額を2進浮動小数点に落とさないようjson.Numberのまま受け取る
	decoder := json.NewDecoder(c.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if reqBody.CallbackID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "callback_id is required")
	}

	cmd := &bridge.InvokedCommand{
		CallbackID: reqBody.CallbackID,
		Arguments:  reqBody.Arguments,
	}

	ctx := c.Request().Context()
	switch reqBody.Action {
	case applepayapp.ActionCanMakePayments:
		h.applePayService.CanMakePayments(ctx, cmd)
	case applepayapp.ActionMakePaymentRequest:
		h.applePayService.MakePaymentRequest(ctx, cmd)
	case applepayapp.ActionUpdatePaymentStatus:
		h.applePayService.UpdatePaymentStatus(ctx, cmd)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "unknown action")
	}

	return c.JSON(http.StatusAccepted, ExecResponse{
		CallbackID: reqBody.CallbackID,
		Accepted:   true,
	})
}

// Results ブリッジ結果取得ハンドラー
// @Summary ブリッジ結果を取得
// @Description callback_id宛に届いた結果を取り出します。取り出した結果はキューから消えます
// @Tags bridge
// @Produce json
// @Security Bearer
// @Param callback_id path string true "コールバックID"
// @Success 200 {object} ResultsResponse "結果一覧"
// @Failure 403 {object} ErrorResponse "認証エラー"
// @Router /bridge/results/{callback_id} [get]
func (h *BridgeHandler) Results(c echo.Context) error {
	callbackID := c.Param("callback_id")
	if callbackID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "callback_id is required")
	}

	pending := h.queue.Poll(callbackID)
	results := make([]BridgeResult, len(pending))
	for i, r := range pending {
		results[i] = BridgeResult{
			Status:  string(r.Status),
			Message: r.Message,
		}
	}

	return c.JSON(http.StatusOK, ResultsResponse{
		CallbackID: callbackID,
		Results:    results,
	})
}
