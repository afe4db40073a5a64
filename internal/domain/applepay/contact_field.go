package applepay

// ContactField 要求する連絡先項目を表す値オブジェクト
// 値はPassKitのPKContactFieldのrawValueに対応する
type ContactField string

const (
	ContactFieldPostalAddress ContactField = "postalAddress" // 住所
	ContactFieldPhoneticName  ContactField = "phoneticName"  // 読み仮名
	ContactFieldEmailAddress  ContactField = "emailAddress"  // メールアドレス
	ContactFieldPhoneNumber   ContactField = "phoneNumber"   // 電話番号
	ContactFieldName          ContactField = "name"          // 氏名
)

// NewContactField ワイヤ文字列からContactFieldを作成
// 未知の値はnameへフォールバックする（ワイヤ契約の一部）
func NewContactField(s string) ContactField {
	switch s {
	case "postalAddress":
		return ContactFieldPostalAddress
	case "phoneticName":
		return ContactFieldPhoneticName
	case "email":
		return ContactFieldEmailAddress
	case "phone":
		return ContactFieldPhoneNumber
	case "name":
		return ContactFieldName
	default:
		return ContactFieldName
	}
}

// NewContactFieldSet ワイヤ文字列のシーケンスから重複のないContactFieldの集合を作成
func NewContactFieldSet(values []string) []ContactField {
	seen := make(map[ContactField]struct{}, len(values))
	fields := make([]ContactField, 0, len(values))
	for _, v := range values {
		field := NewContactField(v)
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		fields = append(fields, field)
	}
	return fields
}

// String 文字列表現を返す
func (f ContactField) String() string {
	return string(f)
}

// Valid 有効な連絡先項目かどうかを返す
func (f ContactField) Valid() bool {
	switch f {
	case ContactFieldPostalAddress, ContactFieldPhoneticName, ContactFieldEmailAddress, ContactFieldPhoneNumber, ContactFieldName:
		return true
	default:
		return false
	}
}
