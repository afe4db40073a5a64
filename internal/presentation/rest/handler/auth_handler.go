package handler

import (
	"net/http"

	authapp "applepay-bridge/internal/application/auth"

	"github.com/labstack/echo/v4"
)

// AuthHandler 認証関連ハンドラー
type AuthHandler struct {
	authService *authapp.AuthApplicationService
}

// NewAuthHandler 新しいAuthHandlerを作成
func NewAuthHandler(authService *authapp.AuthApplicationService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// GenerateToken トークン生成ハンドラー
// @Summary 認証トークンを生成
// @Description クライアントIDを元にブリッジ用のJWT認証トークンを生成します
// @Tags auth
// @Accept json
// @Produce json
// @Param request body GenerateTokenRequest true "トークン生成リクエスト"
// @Success 200 {object} GenerateTokenResponse "トークン生成成功"
// @Failure 400 {object} ErrorResponse "不正なリクエスト"
// @Router /auth/token [post]
func (h *AuthHandler) GenerateToken(c echo.Context) error {
	var reqBody GenerateTokenRequest

	if err := c.Bind(&reqBody); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if reqBody.ClientID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "client_id is required")
	}

	req := &authapp.GenerateTokenRequest{
		ClientID: reqBody.ClientID,
	}

	resp, err := h.authService.GenerateToken(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, GenerateTokenResponse{
		Token:     resp.Token,
		ExpiresIn: int(resp.ExpiresIn),
		TokenType: resp.TokenType,
	})
}
