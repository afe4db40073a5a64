package applepay

// PaymentNetwork 決済ネットワークを表す値オブジェクト
// 値はPassKitのPKPaymentNetworkのrawValueに対応する
type PaymentNetwork string

const (
	PaymentNetworkAmex       PaymentNetwork = "AmEx"       // American Express
	PaymentNetworkVisa       PaymentNetwork = "Visa"       // Visa
	PaymentNetworkDiscover   PaymentNetwork = "Discover"   // Discover
	PaymentNetworkMasterCard PaymentNetwork = "MasterCard" // MasterCard
)

// NewPaymentNetwork ワイヤ文字列からPaymentNetworkを作成
// 未知の値はMasterCardへフォールバックする（ワイヤ契約の一部）
func NewPaymentNetwork(s string) PaymentNetwork {
	switch s {
	case "amex":
		return PaymentNetworkAmex
	case "visa":
		return PaymentNetworkVisa
	case "discover":
		return PaymentNetworkDiscover
	case "mastercard":
		return PaymentNetworkMasterCard
	default:
		return PaymentNetworkMasterCard
	}
}

// NewPaymentNetworks ワイヤ文字列のシーケンスからPaymentNetworkのシーケンスを作成
func NewPaymentNetworks(values []string) []PaymentNetwork {
	networks := make([]PaymentNetwork, 0, len(values))
	for _, v := range values {
		networks = append(networks, NewPaymentNetwork(v))
	}
	return networks
}

// String 文字列表現を返す
func (n PaymentNetwork) String() string {
	return string(n)
}

// Valid 有効な決済ネットワークかどうかを返す
func (n PaymentNetwork) Valid() bool {
	switch n {
	case PaymentNetworkAmex, PaymentNetworkVisa, PaymentNetworkDiscover, PaymentNetworkMasterCard:
		return true
	default:
		return false
	}
}
