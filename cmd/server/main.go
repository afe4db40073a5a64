package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	applepayapp "applepay-bridge/internal/application/applepay"
	authapp "applepay-bridge/internal/application/auth"
	historyapp "applepay-bridge/internal/application/history"
	"applepay-bridge/internal/bridge"
	"applepay-bridge/internal/domain/authorization_record"
	"applepay-bridge/internal/infrastructure/config"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
	"applepay-bridge/internal/infrastructure/persistence/mysql"
	"applepay-bridge/internal/infrastructure/sheet/simulated"
	"applepay-bridge/internal/presentation/rest"
)

func main() {
	// 設定の読み込み
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// OpenTelemetryの初期化
	tracerShutdown, err := otelinfra.InitTracer(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize tracer: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown tracer: %v", err)
		}
	}()

	meterShutdown, err := otelinfra.InitMeter(&cfg.OpenTelemetry)
	if err != nil {
		log.Fatalf("Failed to initialize meter: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := meterShutdown(ctx); err != nil {
			log.Printf("Failed to shutdown meter: %v", err)
		}
	}()

	// ロガーとメトリクスの初期化
	tracer := otelinfra.Tracer("applepay-bridge")
	logger := otelinfra.NewLogger(tracer)
	metrics, err := otelinfra.NewMetrics("applepay-bridge")
	if err != nil {
		log.Fatalf("Failed to create metrics: %v", err)
	}

	// 承認記録リポジトリの初期化（永続化が有効な場合のみ）
	var recordRepo authorization_record.AuthorizationRecordRepository
	if cfg.Database.Enabled {
		db, err := mysql.NewDB(&cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		recordRepo = mysql.NewAuthorizationRecordRepository(db)
	}

	// 決済シートの初期化（開発用シミュレーション実装）
	sheet := simulated.NewSheet(&cfg.Sheet, logger)

	// ブリッジ結果キューの初期化
	queue := bridge.NewDispatchQueue()

	// アプリケーションサービスの初期化
	authAppService := authapp.NewAuthApplicationService(&cfg.JWT, logger)

	applePayAppService := applepayapp.NewApplePayApplicationService(
		sheet,
		queue,
		recordRepo,
		logger,
		metrics,
	)

	historyAppService := historyapp.NewHistoryApplicationService(
		recordRepo,
		logger,
		metrics,
	)

	// REST APIルーターの初期化
	router, err := rest.NewRouter(
		cfg,
		logger,
		metrics,
		authAppService,
		applePayAppService,
		historyAppService,
		queue,
	)
	if err != nil {
		log.Fatalf("Failed to create router: %v", err)
	}

	// サーバーアドレスの設定
	address := fmt.Sprintf(":%d", cfg.Server.Port)

	// グレースフルシャットダウンの設定
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	// REST APIサーバーを別ゴルーチンで起動
	go func() {
		log.Printf("REST API server starting on %s", address)
		if err := router.Start(address); err != nil {
			log.Printf("REST API server error: %v", err)
		}
	}()

	// シグナルを待機
	<-quit
	log.Println("Shutting down server...")

	// グレースフルシャットダウン
	if err := router.Shutdown(); err != nil {
		log.Printf("Error shutting down REST API server: %v", err)
	}

	log.Println("Server stopped")
}
