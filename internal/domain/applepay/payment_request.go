package applepay

import (
	"github.com/shopspring/decimal"
)

// PaymentRequest ペイメントシートへ渡す決済リクエストエンティティ
// makePaymentRequestごとに構築され、シートに消費される一時的な値
type PaymentRequest struct {
	merchantID                    string
	countryCode                   string
	currencyCode                  string
	supportedNetworks             []PaymentNetwork
	merchantCapability            MerchantCapability
	requiredBillingContactFields  []ContactField
	requiredShippingContactFields []ContactField
	summaryLabel                  string
	summaryAmount                 decimal.Decimal
}

// NewPaymentRequest 新しいPaymentRequestを作成
// 金額は厳密な10進表現のまま保持する
func NewPaymentRequest(
	merchantID string,
	countryCode string,
	currencyCode string,
	supportedNetworks []PaymentNetwork,
	merchantCapability MerchantCapability,
	requiredBillingContactFields []ContactField,
	requiredShippingContactFields []ContactField,
	summaryLabel string,
	summaryAmount decimal.Decimal,
) *PaymentRequest {
	return &PaymentRequest{
		merchantID:                    merchantID,
		countryCode:                   countryCode,
		currencyCode:                  currencyCode,
		supportedNetworks:             supportedNetworks,
		merchantCapability:            merchantCapability,
		requiredBillingContactFields:  requiredBillingContactFields,
		requiredShippingContactFields: requiredShippingContactFields,
		summaryLabel:                  summaryLabel,
		summaryAmount:                 summaryAmount,
	}
}

// MerchantID マーチャント識別子を返す
func (r *PaymentRequest) MerchantID() string {
	return r.merchantID
}

// CountryCode 国コード（ISO 3166-1 alpha-2）を返す
func (r *PaymentRequest) CountryCode() string {
	return r.countryCode
}

// CurrencyCode 通貨コード（ISO 4217）を返す
func (r *PaymentRequest) CurrencyCode() string {
	return r.currencyCode
}

// SupportedNetworks 受け付ける決済ネットワークの集合を返す
func (r *PaymentRequest) SupportedNetworks() []PaymentNetwork {
	return r.supportedNetworks
}

// MerchantCapability マーチャントケイパビリティを返す
func (r *PaymentRequest) MerchantCapability() MerchantCapability {
	return r.merchantCapability
}

// RequiredBillingContactFields 請求先に要求する連絡先項目を返す
func (r *PaymentRequest) RequiredBillingContactFields() []ContactField {
	return r.requiredBillingContactFields
}

// RequiredShippingContactFields 配送先に要求する連絡先項目を返す
func (r *PaymentRequest) RequiredShippingContactFields() []ContactField {
	return r.requiredShippingContactFields
}

// SummaryLabel 合計行のラベルを返す
func (r *PaymentRequest) SummaryLabel() string {
	return r.summaryLabel
}

// SummaryAmount 合計行の金額を返す
func (r *PaymentRequest) SummaryAmount() decimal.Decimal {
	return r.summaryAmount
}
