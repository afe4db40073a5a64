package simulated

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"

	"applepay-bridge/internal/domain/applepay"
	"applepay-bridge/internal/infrastructure/config"
	otelinfra "applepay-bridge/internal/infrastructure/observability/otel"
)

// recordingDelegate デリゲート通知を記録するテスト用のSheetDelegate
type recordingDelegate struct {
	mu         sync.Mutex
	authorized chan *applepay.Payment
	finished   chan struct{}
	completion applepay.CompletionFunc
}

func newRecordingDelegate() *recordingDelegate {
	return &recordingDelegate{
		authorized: make(chan *applepay.Payment, 1),
		finished:   make(chan struct{}, 1),
	}
}

func (d *recordingDelegate) DidAuthorizePayment(_ context.Context, payment *applepay.Payment, completion applepay.CompletionFunc) {
	d.mu.Lock()
	d.completion = completion
	d.mu.Unlock()
	d.authorized <- payment
}

func (d *recordingDelegate) DidFinish(_ context.Context) {
	d.finished <- struct{}{}
}

func (d *recordingDelegate) release(status applepay.AuthorizationStatus) {
	d.mu.Lock()
	completion := d.completion
	d.mu.Unlock()
	completion(status)
}

func newTestSheet(t *testing.T, cfg *config.SheetConfig) *Sheet {
	t.Helper()

	tracer := noop.NewTracerProvider().Tracer("test")
	logger := otelinfra.NewLogger(tracer)
	return NewSheet(cfg, logger)
}

func testPaymentRequest() *applepay.PaymentRequest {
	return applepay.NewPaymentRequest(
		"merchant.com.example.shop",
		"JP",
		"JPY",
		[]applepay.PaymentNetwork{applepay.PaymentNetworkVisa},
		applepay.MerchantCapability3DS,
		nil,
		nil,
		"Example Shop",
		decimal.RequireFromString("1980.50"),
	)
}

func TestSheet_CanMakePayments(t *testing.T) {
	sheet := newTestSheet(t, &config.SheetConfig{})

	assert.True(t, sheet.CanMakePayments([]applepay.PaymentNetwork{applepay.PaymentNetworkVisa}, applepay.MerchantCapability3DS))
	assert.False(t, sheet.CanMakePayments([]applepay.PaymentNetwork{}, applepay.MerchantCapability3DS))
	assert.False(t, sheet.CanMakePayments(nil, applepay.MerchantCapability3DS))
}

func TestSheet_Present_AutoAuthorize(t *testing.T) {
	sheet := newTestSheet(t, &config.SheetConfig{
		AutoAuthorize:  true,
		AuthorizeDelay: time.Millisecond,
		DisplayName:    "Simulated Visa",
		PaymentData:    `{"data":"opaque"}`,
	})
	delegate := newRecordingDelegate()

	err := sheet.Present(context.Background(), testPaymentRequest(), delegate)
	require.NoError(t, err)

	select {
	case payment := <-delegate.authorized:
		assert.NotEmpty(t, payment.Token.TransactionIdentifier)
		assert.Equal(t, `{"data":"opaque"}`, string(payment.Token.PaymentData))
		assert.Equal(t, "Simulated Visa", payment.Token.PaymentMethod.DisplayName)
		// リクエストの先頭ネットワークが決済手段に使われる
		assert.Equal(t, applepay.PaymentNetworkVisa, payment.Token.PaymentMethod.Network)
		require.NotNil(t, payment.BillingContact)
		assert.Equal(t, "JP", payment.BillingContact.ISOCountryCode)
	case <-time.After(time.Second):
		t.Fatal("authorization not delivered")
	}

	// 継続が解放されるまで終了通知は出ない
	select {
	case <-delegate.finished:
		t.Fatal("sheet finished before completion was released")
	case <-time.After(10 * time.Millisecond):
	}

	delegate.release(applepay.AuthorizationStatusSuccess)

	select {
	case <-delegate.finished:
	case <-time.After(time.Second):
		t.Fatal("finish not delivered after completion release")
	}
}

func TestSheet_Present_AutoCancel(t *testing.T) {
	sheet := newTestSheet(t, &config.SheetConfig{
		AutoAuthorize:  false,
		AuthorizeDelay: time.Millisecond,
	})
	delegate := newRecordingDelegate()

	err := sheet.Present(context.Background(), testPaymentRequest(), delegate)
	require.NoError(t, err)

	// キャンセルでは承認なしで終了通知だけが届く
	select {
	case <-delegate.finished:
	case <-time.After(time.Second):
		t.Fatal("finish not delivered")
	}
	assert.Empty(t, delegate.authorized)
}

func TestSheet_Present_AlreadyPresented(t *testing.T) {
	sheet := newTestSheet(t, &config.SheetConfig{
		AutoAuthorize:  false,
		AuthorizeDelay: 100 * time.Millisecond,
	})
	delegate := newRecordingDelegate()

	require.NoError(t, sheet.Present(context.Background(), testPaymentRequest(), delegate))

	err := sheet.Present(context.Background(), testPaymentRequest(), delegate)
	assert.ErrorIs(t, err, applepay.ErrSheetUnavailable)

	// Dismissで再度表示できる
	sheet.Dismiss(context.Background())
	assert.NoError(t, sheet.Present(context.Background(), testPaymentRequest(), newRecordingDelegate()))
}
