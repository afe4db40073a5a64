package handler

import (
	"net/http"
	"strconv"

	historyapp "applepay-bridge/internal/application/history"

	"github.com/labstack/echo/v4"
)

// HistoryHandler 承認履歴関連ハンドラー
type HistoryHandler struct {
	historyService *historyapp.HistoryApplicationService
}

// NewHistoryHandler 新しいHistoryHandlerを作成
func NewHistoryHandler(historyService *historyapp.HistoryApplicationService) *HistoryHandler {
	return &HistoryHandler{
		historyService: historyService,
	}
}

// GetAuthorizations 承認履歴取得ハンドラー（管理API用）
// @Summary 承認履歴を取得（管理API）
// @Description 決済承認の記録を新しい順に取得します。ページネーションとステータスフィルタに対応しています
// @Tags admin
// @Accept json
// @Produce json
// @Param X-API-Key header string true "APIキー"
// @Param limit query int false "取得件数（デフォルト: 50, 最大: 100)" default(50) example(50)
// @Param offset query int false "オフセット（デフォルト: 0)" default(0) example(0)
// @Param status query string false "ステータスでフィルタ（completed/failed/cancelled）" example(completed)
// @Success 200 {object} AuthorizationHistoryResponse "履歴取得成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Failure 401 {object} ErrorResponse "認証エラー"
// @Router /admin/authorizations [get]
func (h *HistoryHandler) GetAuthorizations(c echo.Context) error {
	// クエリパラメータを取得
	limit := 50 // デフォルト値
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit < 1 || limit > 100 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit parameter")
		}
	}

	offset := 0 // デフォルト値
	if offsetStr := c.QueryParam("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil || offset < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset parameter")
		}
	}

	req := &historyapp.GetAuthorizationHistoryRequest{
		Limit:  limit,
		Offset: offset,
		Status: c.QueryParam("status"),
	}

	resp, err := h.historyService.GetAuthorizationHistory(c.Request().Context(), req)
	if err != nil {
		return err
	}

	// 承認記録をレスポンス形式に変換
	records := make([]AuthorizationItem, len(resp.Records))
	for i, rec := range resp.Records {
		records[i] = AuthorizationItem{
			RecordID:              rec.RecordID,
			CallbackID:            rec.CallbackID,
			TransactionIdentifier: rec.TransactionIdentifier,
			MerchantID:            rec.MerchantID,
			Amount:                rec.Amount,
			CurrencyCode:          rec.CurrencyCode,
			Status:                rec.Status,
			CreatedAt:             rec.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
	}

	return c.JSON(http.StatusOK, AuthorizationHistoryResponse{
		Authorizations: records,
		Limit:          resp.Limit,
		Offset:         resp.Offset,
	})
}
