package applepay

// PaymentMethodType 決済手段の種別コード
// 値はPassKitのPKPaymentMethodTypeのrawValueに対応する
type PaymentMethodType uint

const (
	PaymentMethodTypeUnknown PaymentMethodType = iota // 不明
	PaymentMethodTypeDebit                            // デビット
	PaymentMethodTypeCredit                           // クレジット
	PaymentMethodTypePrepaid                          // プリペイド
	PaymentMethodTypeStore                            // ストアカード
)

// PaymentMethodInfo シートが返した決済手段の情報
type PaymentMethodInfo struct {
	DisplayName string
	Network     PaymentNetwork
	Type        PaymentMethodType
}

// PaymentTokenInfo シートが返した決済トークン
// PaymentDataはマーチャント向けに暗号化された不透明バイト列
type PaymentTokenInfo struct {
	TransactionIdentifier string
	PaymentData           []byte
	PaymentMethod         PaymentMethodInfo
}

// SheetContact シートが返したプラットフォーム連絡先の値
// すべての項目は未設定でありうる（空文字列は未設定を表す）
type SheetContact struct {
	PhoneNumber           string
	EmailAddress          string
	GivenName             string
	FamilyName            string
	PhoneticGivenName     string
	PhoneticFamilyName    string
	SubLocality           string
	Locality              string
	PostalCode            string
	SubAdministrativeArea string
	AdministrativeArea    string
	Country               string
	ISOCountryCode        string
}

// Payment ユーザーがシート上で承認した決済
type Payment struct {
	Token           PaymentTokenInfo
	BillingContact  *SheetContact
	ShippingContact *SheetContact
}
