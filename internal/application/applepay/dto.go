package applepay

import (
	"encoding/json"

	domain "applepay-bridge/internal/domain/applepay"
)

// Contact 成功ペイロードに載せる連絡先
// 未設定の項目はJSONから省略される
type Contact struct {
	PhoneNumber           *string `json:"phoneNumber,omitempty"`
	EmailAddress          *string `json:"emailAddress,omitempty"`
	GivenName             *string `json:"givenName,omitempty"`
	FamilyName            *string `json:"familyName,omitempty"`
	PhoneticGivenName     *string `json:"phoneticGivenName,omitempty"`
	PhoneticFamilyName    *string `json:"phoneticFamilyName,omitempty"`
	SubLocality           *string `json:"subLocality,omitempty"`
	Locality              *string `json:"locality,omitempty"`
	PostalCode            *string `json:"postalCode,omitempty"`
	SubAdministrativeArea *string `json:"subAdministrativeArea,omitempty"`
	AdministrativeArea    *string `json:"administrativeArea,omitempty"`
	Country               *string `json:"country,omitempty"`
	CountryCode           *string `json:"countryCode,omitempty"`
}

// PaymentMethod 成功ペイロードに載せる決済手段
type PaymentMethod struct {
	DisplayName *string `json:"displayName,omitempty"`
	Network     *string `json:"network,omitempty"`
	Type        *uint   `json:"type,omitempty"`
}

// PaymentToken 成功ペイロードに載せる決済トークン
// PaymentDataは不透明バイト列のUTF-8文字列表現
type PaymentToken struct {
	PaymentMethod         *PaymentMethod `json:"paymentMethod,omitempty"`
	TransactionIdentifier *string        `json:"transactionIdentifier,omitempty"`
	PaymentData           *string        `json:"paymentData,omitempty"`
}

// ApplePayData 承認時にJavaScriptへ返す集約ペイロード
type ApplePayData struct {
	BillingContact  *Contact      `json:"billingContact,omitempty"`
	ShippingContact *Contact      `json:"shippingContact,omitempty"`
	Token           *PaymentToken `json:"token,omitempty"`
}

// Encode ApplePayDataをUTF-8のJSON文字列へエンコード
func (d *ApplePayData) Encode() (string, error) {
	data, err := json.Marshal(d)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// NewApplePayData シートが返したPaymentからApplePayDataを構築
func NewApplePayData(payment *domain.Payment) *ApplePayData {
	if payment == nil {
		return &ApplePayData{}
	}

	token := &PaymentToken{
		PaymentMethod: newPaymentMethod(payment.Token.PaymentMethod),
	}
	if payment.Token.TransactionIdentifier != "" {
		token.TransactionIdentifier = stringPtr(payment.Token.TransactionIdentifier)
	}
	if len(payment.Token.PaymentData) > 0 {
		token.PaymentData = stringPtr(string(payment.Token.PaymentData))
	}

	return &ApplePayData{
		BillingContact:  newContact(payment.BillingContact),
		ShippingContact: newContact(payment.ShippingContact),
		Token:           token,
	}
}

// newPaymentMethod 決済手段の情報を投影
func newPaymentMethod(method domain.PaymentMethodInfo) *PaymentMethod {
	pm := &PaymentMethod{}
	if method.DisplayName != "" {
		pm.DisplayName = stringPtr(method.DisplayName)
	}
	if method.Network != "" {
		pm.Network = stringPtr(method.Network.String())
	}
	typeValue := uint(method.Type)
	pm.Type = &typeValue
	return pm
}

// newContact プラットフォーム連絡先をContactへ投影
func newContact(contact *domain.SheetContact) *Contact {
	if contact == nil {
		return nil
	}

	return &Contact{
		PhoneNumber:           optionalString(contact.PhoneNumber),
		EmailAddress:          optionalString(contact.EmailAddress),
		GivenName:             optionalString(contact.GivenName),
		FamilyName:            optionalString(contact.FamilyName),
		PhoneticGivenName:     optionalString(contact.PhoneticGivenName),
		PhoneticFamilyName:    optionalString(contact.PhoneticFamilyName),
		SubLocality:           optionalString(contact.SubLocality),
		Locality:              optionalString(contact.Locality),
		PostalCode:            optionalString(contact.PostalCode),
		SubAdministrativeArea: optionalString(contact.SubAdministrativeArea),
		AdministrativeArea:    optionalString(contact.AdministrativeArea),
		Country:               optionalString(contact.Country),
		CountryCode:           optionalString(contact.ISOCountryCode),
	}
}

// optionalString 空文字列を未設定として扱う
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// stringPtr 文字列のポインタを返す
func stringPtr(s string) *string {
	return &s
}
