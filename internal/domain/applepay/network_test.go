package applepay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaymentNetwork(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  PaymentNetwork
	}{
		{
			name:  "正常系: amex",
			value: "amex",
			want:  PaymentNetworkAmex,
		},
		{
			name:  "正常系: visa",
			value: "visa",
			want:  PaymentNetworkVisa,
		},
		{
			name:  "正常系: discover",
			value: "discover",
			want:  PaymentNetworkDiscover,
		},
		{
			name:  "正常系: mastercard",
			value: "mastercard",
			want:  PaymentNetworkMasterCard,
		},
		{
			name:  "正常系: 未知の値はMasterCardへフォールバック",
			value: "jcb",
			want:  PaymentNetworkMasterCard,
		},
		{
			name:  "正常系: 空文字列もMasterCardへフォールバック",
			value: "",
			want:  PaymentNetworkMasterCard,
		},
		{
			name:  "正常系: 大文字は未知の値として扱う",
			value: "Visa",
			want:  PaymentNetworkMasterCard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewPaymentNetwork(tt.value)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestNewPaymentNetworks(t *testing.T) {
	got := NewPaymentNetworks([]string{"visa", "amex", "unknown"})
	assert.Equal(t, []PaymentNetwork{
		PaymentNetworkVisa,
		PaymentNetworkAmex,
		PaymentNetworkMasterCard,
	}, got)

	assert.Empty(t, NewPaymentNetworks(nil))
}

func TestPaymentNetwork_String(t *testing.T) {
	assert.Equal(t, "AmEx", PaymentNetworkAmex.String())
	assert.Equal(t, "Visa", PaymentNetworkVisa.String())
	assert.Equal(t, "Discover", PaymentNetworkDiscover.String())
	assert.Equal(t, "MasterCard", PaymentNetworkMasterCard.String())
}

func TestPaymentNetwork_Valid(t *testing.T) {
	assert.True(t, PaymentNetworkVisa.Valid())
	assert.False(t, PaymentNetwork("JCB").Valid())
}
