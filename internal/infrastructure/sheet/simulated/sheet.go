package simulated

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"applepay-bridge/internal/domain/applepay"
	"applepay-bridge/internal/infrastructure/config"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
)

// Sheet 開発用のシミュレートペイメントシート
// 実機のPassKitシートの代わりに、設定された遅延の後に自動で
// 承認またはキャンセルを行い、デリゲートの経路を端から端まで駆動する
type Sheet struct {
	cfg    *config.SheetConfig
	logger *otelinfra.Logger

	mu        sync.Mutex
	presented bool
}

// NewSheet 新しいシミュレートシートを作成
func NewSheet(cfg *config.SheetConfig, logger *otelinfra.Logger) *Sheet {
	return &Sheet{
		cfg:    cfg,
		logger: logger,
	}
}

// CanMakePayments 指定のネットワークとケイパビリティで決済を承認できるかを返す
// シミュレータはネットワークが1つ以上指定されていれば常に承認できる
func (s *Sheet) CanMakePayments(networks []applepay.PaymentNetwork, _ applepay.MerchantCapability) bool {
	return len(networks) > 0
}

// Present シートを表示し、遅延の後に自動で承認またはキャンセルする
func (s *Sheet) Present(ctx context.Context, request *applepay.PaymentRequest, delegate applepay.SheetDelegate) error {
	s.mu.Lock()
	if s.presented {
		s.mu.Unlock()
		return applepay.ErrSheetUnavailable
	}
	s.presented = true
	s.mu.Unlock()

	s.logger.Info(ctx, "Simulated sheet presented", map[string]interface{}{
		"merchant_id":    request.MerchantID(),
		"amount":         request.SummaryAmount().String(),
		"auto_authorize": s.cfg.AutoAuthorize,
	})

	go s.run(request, delegate)
	return nil
}

// Dismiss シートを閉じる
func (s *Sheet) Dismiss(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.presented = false
}

// run ユーザー操作をシミュレートする
func (s *Sheet) run(request *applepay.PaymentRequest, delegate applepay.SheetDelegate) {
	time.Sleep(s.cfg.AuthorizeDelay)

	ctx := context.Background()

	if !s.cfg.AutoAuthorize {
		// ユーザーキャンセル: 承認なしで終了通知のみ
		delegate.DidFinish(ctx)
		return
	}

	payment := s.buildPayment(request)

	// 完了継続が解放されたらシートは終了通知を出す
	delegate.DidAuthorizePayment(ctx, payment, func(status applepay.AuthorizationStatus) {
		s.logger.Info(ctx, "Simulated sheet completion released", map[string]interface{}{
			"status": int(status),
		})
		delegate.DidFinish(ctx)
	})
}

// buildPayment 決済リクエストから擬似的な承認済み決済を組み立てる
func (s *Sheet) buildPayment(request *applepay.PaymentRequest) *applepay.Payment {
	network := applepay.PaymentNetworkMasterCard
	if networks := request.SupportedNetworks(); len(networks) > 0 {
		network = networks[0]
	}

	return &applepay.Payment{
		Token: applepay.PaymentTokenInfo{
			TransactionIdentifier: uuid.NewString(),
			PaymentData:           []byte(s.cfg.PaymentData),
			PaymentMethod: applepay.PaymentMethodInfo{
				DisplayName: s.cfg.DisplayName,
				Network:     network,
				Type:        applepay.PaymentMethodTypeCredit,
			},
		},
		BillingContact: &applepay.SheetContact{
			GivenName:      "Taro",
			FamilyName:     "Yamada",
			EmailAddress:   "taro@example.com",
			Locality:       "Shibuya",
			PostalCode:     "150-0001",
			Country:        "Japan",
			ISOCountryCode: "JP",
		},
		ShippingContact: &applepay.SheetContact{
			GivenName:    "Taro",
			FamilyName:   "Yamada",
			EmailAddress: "taro@example.com",
		},
	}
}
