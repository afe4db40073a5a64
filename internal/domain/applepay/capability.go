package applepay

// MerchantCapability マーチャントケイパビリティを表す値オブジェクト
type MerchantCapability string

const (
	MerchantCapability3DS    MerchantCapability = "3DS"    // 3-D Secure
	MerchantCapabilityEMV    MerchantCapability = "EMV"    // EMV
	MerchantCapabilityCredit MerchantCapability = "Credit" // クレジット
	MerchantCapabilityDebit  MerchantCapability = "Debit"  // デビット
)

// NewMerchantCapability ワイヤ文字列のシーケンスからMerchantCapabilityを作成
// 先頭要素のみが値を決定し、空または未知の値は3DSへフォールバックする
func NewMerchantCapability(values []string) MerchantCapability {
	if len(values) < 1 {
		return MerchantCapability3DS
	}

	switch values[0] {
	case "supports3DS":
		return MerchantCapability3DS
	case "supportsEMV":
		return MerchantCapabilityEMV
	case "supportsCredit":
		return MerchantCapabilityCredit
	case "supportsDebit":
		return MerchantCapabilityDebit
	default:
		return MerchantCapability3DS
	}
}

// String 文字列表現を返す
func (c MerchantCapability) String() string {
	return string(c)
}

// Valid 有効なケイパビリティかどうかを返す
func (c MerchantCapability) Valid() bool {
	switch c {
	case MerchantCapability3DS, MerchantCapabilityEMV, MerchantCapabilityCredit, MerchantCapabilityDebit:
		return true
	default:
		return false
	}
}
