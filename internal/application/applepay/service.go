package applepay

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"applepay-bridge/internal/bridge"
	domain "applepay-bridge/internal/domain/applepay"
	"applepay-bridge/internal/domain/authorization_record"
	"applepay-bridge/internal/domain/session"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
)

// プラグインが受け付けるアクション名（ワイヤ契約の一部）
const (
	ActionCanMakePayments     = "canMakePayments"
	ActionMakePaymentRequest  = "makePaymentRequest"
	ActionUpdatePaymentStatus = "updatePaymentStatus"
)

// pendingAuthorization 表示中のシートに対応する決済の文脈
// 終端結果の記録に使用する
type pendingAuthorization struct {
	merchantID            string
	amount                decimal.Decimal
	currencyCode          string
	transactionIdentifier string
	presentedAt           time.Time
	recorded              bool
}

// ApplePayApplicationService Apple Payプラグインのファサード
// ホストブリッジから3つのコマンドを受け取り、シートデリゲートとして
// 2つの通知を受け取る。承認が運んできた完了継続はセッションに保持し、
// updatePaymentStatusが届いた時点で終端ステータスとともに解放する。
type ApplePayApplicationService struct {
	sheet    domain.PaymentSheet
	session  *session.AuthorizationSession
	commands bridge.CommandDelegate
	records  authorization_record.AuthorizationRecordRepository
	logger   *otelinfra.Logger
	metrics  *otelinfra.Metrics
	tracer   trace.Tracer

	mu      sync.Mutex
	pending *pendingAuthorization
}

// NewApplePayApplicationService 新しいApplePayApplicationServiceを作成
// recordsはnil可（永続化なしで動作する）
func NewApplePayApplicationService(
	sheet domain.PaymentSheet,
	commands bridge.CommandDelegate,
	records authorization_record.AuthorizationRecordRepository,
	logger *otelinfra.Logger,
	metrics *otelinfra.Metrics,
) *ApplePayApplicationService {
	return &ApplePayApplicationService{
		sheet:    sheet,
		session:  session.NewAuthorizationSession(),
		commands: commands,
		records:  records,
		logger:   logger,
		metrics:  metrics,
		tracer:   otel.Tracer("applepay-service"),
	}
}

// Session 承認セッションを返す（テスト用）
func (s *ApplePayApplicationService) Session() *session.AuthorizationSession {
	return s.session
}

// CanMakePayments デバイスが決済を承認できるかを返す
func (s *ApplePayApplicationService) CanMakePayments(ctx context.Context, cmd *bridge.InvokedCommand) {
	ctx, span := s.tracer.Start(ctx, "ApplePayApplicationService.CanMakePayments")
	defer span.End()

	args := bridge.ArgumentsOf(cmd)

	networkValues, err := args.StringSlice("supportedNetworks")
	if err != nil {
		s.failWithError(ctx, span, err, cmd.CallbackID, ActionCanMakePayments)
		return
	}
	capabilityValues, err := args.StringSlice("merchantCapabilities")
	if err != nil {
		s.failWithError(ctx, span, err, cmd.CallbackID, ActionCanMakePayments)
		return
	}

	networks := domain.NewPaymentNetworks(networkValues)
	capability := domain.NewMerchantCapability(capabilityValues)

	canMakePayments := s.sheet.CanMakePayments(networks, capability)

	span.SetAttributes(attribute.Bool("can_make_payments", canMakePayments))
	s.logger.Info(ctx, "Capability probe completed", map[string]interface{}{
		"callback_id":       cmd.CallbackID,
		"can_make_payments": canMakePayments,
	})

	s.send(ctx, bridge.NewOKResult(canMakePayments), cmd.CallbackID, ActionCanMakePayments)
}

// MakePaymentRequest 決済リクエストを組み立ててシートを表示する
// コールバックIDはセッションに保持され、同期的には解決されない
func (s *ApplePayApplicationService) MakePaymentRequest(ctx context.Context, cmd *bridge.InvokedCommand) {
	ctx, span := s.tracer.Start(ctx, "ApplePayApplicationService.MakePaymentRequest")
	defer span.End()

	if err := s.session.Begin(cmd.CallbackID); err != nil {
		s.failWithError(ctx, span, err, cmd.CallbackID, ActionMakePaymentRequest)
		return
	}

	args := bridge.ArgumentsOf(cmd)

	request, err := s.buildPaymentRequest(args)
	if err != nil {
		s.session.Abort()
		s.failWithError(ctx, span, err, cmd.CallbackID, ActionMakePaymentRequest)
		return
	}

	span.SetAttributes(
		attribute.String("merchant_id", request.MerchantID()),
		attribute.String("currency_code", request.CurrencyCode()),
		attribute.String("amount", request.SummaryAmount().String()),
	)

	// シートは表示直後に承認を届けうるため、決済の文脈は表示前に用意する
	s.mu.Lock()
	s.pending = &pendingAuthorization{
		merchantID:   request.MerchantID(),
		amount:       request.SummaryAmount(),
		currencyCode: request.CurrencyCode(),
		presentedAt:  time.Now(),
	}
	s.mu.Unlock()

	if err := s.sheet.Present(ctx, request, s); err != nil {
		s.session.Abort()
		s.mu.Lock()
		s.pending = nil
		s.mu.Unlock()
		s.failWithError(ctx, span, err, cmd.CallbackID, ActionMakePaymentRequest)
		return
	}

	s.metrics.RecordPaymentRequest(ctx, request.MerchantID())
	s.logger.Info(ctx, "Payment sheet presented", map[string]interface{}{
		"callback_id": cmd.CallbackID,
		"merchant_id": request.MerchantID(),
		"amount":      request.SummaryAmount().String(),
		"currency":    request.CurrencyCode(),
	})
}

// UpdatePaymentStatus バックエンド処理の結果で完了継続を解放する
func (s *ApplePayApplicationService) UpdatePaymentStatus(ctx context.Context, cmd *bridge.InvokedCommand) {
	ctx, span := s.tracer.Start(ctx, "ApplePayApplicationService.UpdatePaymentStatus")
	defer span.End()

	args := bridge.ArgumentsOf(cmd)

	success, err := args.Bool("success")
	if err != nil {
		s.failWithError(ctx, span, err, cmd.CallbackID, ActionUpdatePaymentStatus)
		return
	}

	span.SetAttributes(attribute.Bool("success", success))

	completion, err := s.session.Release(success)
	if err != nil {
		// 保持中の継続がなければプロトコル違反
		s.failWithError(ctx, span, session.ErrNoCapturedCompletion, cmd.CallbackID, ActionUpdatePaymentStatus)
		return
	}

	// 継続の解放でDidFinishが同期的に届きうるため、記録を先に確定する
	status := authorization_record.RecordStatusFailed
	if success {
		status = authorization_record.RecordStatusCompleted
	}
	s.recordOutcome(ctx, status)

	if success {
		completion(domain.AuthorizationStatusSuccess)
	} else {
		completion(domain.AuthorizationStatusFailure)
	}

	s.logger.Info(ctx, "Payment status updated", map[string]interface{}{
		"callback_id": cmd.CallbackID,
		"success":     success,
	})

	s.send(ctx, bridge.NewOKResult(true), cmd.CallbackID, ActionUpdatePaymentStatus)
}

// DidAuthorizePayment ユーザーがシート上で決済を承認したときに呼ばれる
// 完了継続を捕捉し、ApplePayDataを成功ペイロードとして送信する。
// シートは表示されたままで、閉じるのはupdatePaymentStatusが継続を解放してから
func (s *ApplePayApplicationService) DidAuthorizePayment(ctx context.Context, payment *domain.Payment, completion domain.CompletionFunc) {
	ctx, span := s.tracer.Start(ctx, "ApplePayApplicationService.DidAuthorizePayment")
	defer span.End()

	if err := s.session.CaptureCompletion(completion); err != nil {
		// セッションがユーザー操作待ちでなければ継続を失敗で即時解放してシートを宙吊りにしない
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Warn(ctx, "Authorization arrived in unexpected state", map[string]interface{}{
			"state": s.session.State().String(),
		})
		completion(domain.AuthorizationStatusFailure)
		return
	}

	callbackID := s.session.CallbackID()

	s.mu.Lock()
	if s.pending != nil {
		s.pending.transactionIdentifier = payment.Token.TransactionIdentifier
	}
	s.mu.Unlock()

	data := NewApplePayData(payment)
	encoded, err := data.Encode()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
		s.logger.Error(ctx, "Failed to encode authorization payload", err, nil)
		s.send(ctx, bridge.NewErrorResult(err.Error()), callbackID, ActionMakePaymentRequest)
		return
	}

	rawPaymentData := string(payment.Token.PaymentData)

	span.SetAttributes(
		attribute.String("transaction_identifier", payment.Token.TransactionIdentifier),
	)
	s.metrics.RecordAuthorization(ctx)
	s.logger.Info(ctx, "Payment authorized", map[string]interface{}{
		"callback_id":            callbackID,
		"transaction_identifier": payment.Token.TransactionIdentifier,
	})

	// 順序付きペア [ApplePayDataのJSON, 不透明バイト列のUTF-8文字列]
	s.send(ctx, bridge.NewOKResult([]interface{}{encoded, rawPaymentData}), callbackID, ActionMakePaymentRequest)
}

// DidFinish シートが閉じようとしているときに呼ばれる
// 処理成功フラグが立っていなければキャンセルエラーを通知する
func (s *ApplePayApplicationService) DidFinish(ctx context.Context) {
	ctx, span := s.tracer.Start(ctx, "ApplePayApplicationService.DidFinish")
	defer span.End()

	s.sheet.Dismiss(ctx)

	callbackID, cancelled := s.session.Finish()
	if callbackID == "" {
		return
	}

	s.mu.Lock()
	pending := s.pending
	s.mu.Unlock()
	if pending != nil {
		s.metrics.RecordSheetPresentationTime(ctx, time.Since(pending.presentedAt).Seconds())
	}

	if cancelled {
		s.recordOutcomeFor(ctx, callbackID, authorization_record.RecordStatusCancelled)
		s.logger.Info(ctx, "Payment cancelled", map[string]interface{}{
			"callback_id": callbackID,
		})
		s.send(ctx, bridge.NewErrorResult(domain.ErrPaymentCancelled.Error()), callbackID, ActionMakePaymentRequest)
	} else {
		s.logger.Info(ctx, "Payment sheet dismissed", map[string]interface{}{
			"callback_id": callbackID,
		})
	}

	s.mu.Lock()
	s.pending = nil
	s.mu.Unlock()
}

// buildPaymentRequest 抽出した引数から決済リクエストを構築
func (s *ApplePayApplicationService) buildPaymentRequest(args bridge.Arguments) (*domain.PaymentRequest, error) {
	countryCode, err := args.String("countryCode")
	if err != nil {
		return nil, err
	}
	currencyCode, err := args.String("currencyCode")
	if err != nil {
		return nil, err
	}
	merchantID, err := args.String("merchantId")
	if err != nil {
		return nil, err
	}
	totalLabel, err := args.String("totalLabel")
	if err != nil {
		return nil, err
	}
	totalAmount, err := args.Decimal("totalAmount")
	if err != nil {
		return nil, err
	}
	networkValues, err := args.StringSlice("supportedNetworks")
	if err != nil {
		return nil, err
	}
	capabilityValues, err := args.StringSlice("merchantCapabilities")
	if err != nil {
		return nil, err
	}

	return domain.NewPaymentRequest(
		merchantID,
		countryCode,
		currencyCode,
		domain.NewPaymentNetworks(networkValues),
		domain.NewMerchantCapability(capabilityValues),
		s.contactFields(args, "requiredBillingContactFields"),
		s.contactFields(args, "requiredShippingContactFields"),
		totalLabel,
		totalAmount,
	), nil
}

// contactFields 連絡先項目の集合を抽出（キーがなければ空集合）
func (s *ApplePayApplicationService) contactFields(args bridge.Arguments, key string) []domain.ContactField {
	values, err := args.StringSlice(key)
	if err != nil {
		return []domain.ContactField{}
	}
	return domain.NewContactFieldSet(values)
}

// recordOutcome 保持中のコールバックIDで終端結果を記録
func (s *ApplePayApplicationService) recordOutcome(ctx context.Context, status authorization_record.RecordStatus) {
	s.recordOutcomeFor(ctx, s.session.CallbackID(), status)
}

// recordOutcomeFor 終端結果を承認記録として保存（ベストエフォート）
// 永続化の失敗はログに残すのみで、JavaScript側のプロトコルには影響させない
func (s *ApplePayApplicationService) recordOutcomeFor(ctx context.Context, callbackID string, status authorization_record.RecordStatus) {
	if s.records == nil {
		return
	}

	s.mu.Lock()
	pending := s.pending
	if pending == nil || pending.recorded {
		s.mu.Unlock()
		return
	}
	pending.recorded = true
	s.mu.Unlock()

	record := authorization_record.NewAuthorizationRecord(
		uuid.NewString(),
		callbackID,
		pending.transactionIdentifier,
		pending.merchantID,
		pending.amount,
		pending.currencyCode,
		status,
	)

	if err := s.records.Save(ctx, record); err != nil {
		s.logger.Error(ctx, "Failed to save authorization record", err, map[string]interface{}{
			"callback_id": callbackID,
			"status":      status.String(),
		})
	}
}

// send プラグイン結果をホストブリッジへ送信
func (s *ApplePayApplicationService) send(ctx context.Context, result *bridge.Result, callbackID, action string) {
	s.commands.Send(ctx, result, callbackID)
	s.metrics.RecordCallback(ctx, action, result.Status.String())
}

// failWithError エラー結果をコールバックIDへ送信
func (s *ApplePayApplicationService) failWithError(ctx context.Context, span trace.Span, err error, callbackID, action string) {
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, err.Error())
	s.logger.Warn(ctx, "Plugin command failed", map[string]interface{}{
		"callback_id": callbackID,
		"action":      action,
		"error":       err.Error(),
	})
	s.metrics.RecordError(ctx, action)
	s.send(ctx, bridge.NewErrorResult(err.Error()), callbackID, action)
}
