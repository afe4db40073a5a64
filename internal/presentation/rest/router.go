package rest

import (
	applepayapp "applepay-bridge/internal/application/applepay"
	authapp "applepay-bridge/internal/application/auth"
	historyapp "applepay-bridge/internal/application/history"
	"applepay-bridge/internal/bridge"
	"applepay-bridge/internal/infrastructure/config"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
	"applepay-bridge/internal/presentation/rest/handler"
	restmiddleware "applepay-bridge/internal/presentation/rest/middleware"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Router REST APIルーター
type Router struct {
	echo           *echo.Echo
	authHandler    *handler.AuthHandler
	bridgeHandler  *handler.BridgeHandler
	historyHandler *handler.HistoryHandler
}

// NewRouter 新しいRouterを作成
func NewRouter(
	cfg *config.Config,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
	authService *authapp.AuthApplicationService,
	applePayService *applepayapp.ApplePayApplicationService,
	historyService *historyapp.HistoryApplicationService,
	queue *bridge.DispatchQueue,
) (*Router, error) {
	e := echo.New()

	// Echoのデフォルトエラーハンドラーを無効化（カスタムエラーハンドラーを使用）
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// エラーハンドリングミドルウェアで処理される
	}

	// ミドルウェアの設定
	setupMiddleware(e, cfg, logger, metrics)

	// ハンドラーの作成
	authHandler := handler.NewAuthHandler(authService)
	bridgeHandler := handler.NewBridgeHandler(applePayService, queue)
	historyHandler := handler.NewHistoryHandler(historyService)

	// ルーティングの設定
	setupRoutes(e, cfg, logger, authHandler, bridgeHandler, historyHandler)

	// Swagger UI / ReDoc統合
	SetupSwagger(e)

	return &Router{
		echo:           e,
		authHandler:    authHandler,
		bridgeHandler:  bridgeHandler,
		historyHandler: historyHandler,
	}, nil
}

// setupMiddleware ミドルウェアを設定
func setupMiddleware(e *echo.Echo, cfg *config.Config, logger *otelinfra.Logger, metrics *otelinfra.Metrics) {
	// リカバリーミドルウェア
	e.Use(middleware.Recover())

	// CORS設定
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"}, // 本番環境では適切に設定
		AllowMethods: []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.OPTIONS},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// リクエストIDの設定
	e.Use(middleware.RequestID())

	// セキュリティヘッダーの設定
	e.Use(restmiddleware.SecurityHeadersMiddleware())

	// トレーシングミドルウェア
	e.Use(restmiddleware.TracingMiddleware())

	// メトリクスミドルウェア
	e.Use(restmiddleware.MetricsMiddleware(metrics))

	// ログミドルウェア
	e.Use(restmiddleware.LoggingMiddleware(logger))

	// エラーハンドリングミドルウェア
	e.Use(restmiddleware.ErrorHandlerMiddleware(logger))
}

// setupRoutes ルーティングを設定
func setupRoutes(
	e *echo.Echo,
	cfg *config.Config,
	logger *otelinfra.Logger,
	authHandler *handler.AuthHandler,
	bridgeHandler *handler.BridgeHandler,
	historyHandler *handler.HistoryHandler,
) {
	// API v1グループ
	api := e.Group("/api/v1")

	// トークン発行エンドポイント（認証不要）
	api.POST("/auth/token", authHandler.GenerateToken)

	// ブリッジエンドポイント（JWT認証が必要）
	bridgeGroup := api.Group("/bridge", restmiddleware.AuthMiddleware(&cfg.JWT, logger))
	bridgeGroup.POST("/exec", bridgeHandler.Exec)
	bridgeGroup.GET("/results/:callback_id", bridgeHandler.Results)

	// 管理APIエンドポイント（APIキー認証が必要）
	adminGroup := api.Group("/admin", restmiddleware.APIKeyMiddleware(&cfg.AdminAPI, logger))
	adminGroup.GET("/authorizations", historyHandler.GetAuthorizations)

	// ヘルスチェックエンドポイント（認証不要）
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})
}

// Start サーバーを起動
func (r *Router) Start(address string) error {
	return r.echo.Start(address)
}

// Shutdown サーバーをシャットダウン
func (r *Router) Shutdown() error {
	return r.echo.Close()
}
