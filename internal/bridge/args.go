package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// MissingArgumentError 必須オプションが存在しないエラー
type MissingArgumentError struct {
	Key string
}

// Error エラーメッセージを返す
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s is required", e.Key)
}

// Arguments コマンド引数のオプションマッピング
// 先頭の位置引数（オプション名→値のマップ）を読み取る
type Arguments map[string]interface{}

// ArgumentsOf コマンドからArgumentsを取り出す
func ArgumentsOf(cmd *InvokedCommand) Arguments {
	if cmd == nil || len(cmd.Arguments) == 0 {
		return Arguments{}
	}
	options, ok := cmd.Arguments[0].(map[string]interface{})
	if !ok {
		return Arguments{}
	}
	return Arguments(options)
}

// get キーに対応する値を取得（存在しない場合はMissingArgumentError）
func (a Arguments) get(key string) (interface{}, error) {
	val, ok := a[key]
	if !ok || val == nil {
		return nil, &MissingArgumentError{Key: key}
	}
	return val, nil
}

// Has キーが存在するかどうかを返す
func (a Arguments) Has(key string) bool {
	val, ok := a[key]
	return ok && val != nil
}

// String キーに対応する文字列を取得
func (a Arguments) String(key string) (string, error) {
	val, err := a.get(key)
	if err != nil {
		return "", err
	}
	s, ok := val.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", key)
	}
	return s, nil
}

// Bool キーに対応する真偽値を取得
func (a Arguments) Bool(key string) (bool, error) {
	val, err := a.get(key)
	if err != nil {
		return false, err
	}
	b, ok := val.(bool)
	if !ok {
		return false, fmt.Errorf("%s must be a boolean", key)
	}
	return b, nil
}

// Decimal キーに対応する10進数値を取得
// 2進浮動小数点を経由しない厳密な10進表現で取り出す
func (a Arguments) Decimal(key string) (decimal.Decimal, error) {
	val, err := a.get(key)
	if err != nil {
		return decimal.Zero, err
	}

	switch v := val.(type) {
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s must be a decimal-convertible number", key)
		}
		return d, nil
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%s must be a decimal-convertible number", key)
		}
		return d, nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case decimal.Decimal:
		return v, nil
	default:
		return decimal.Zero, fmt.Errorf("%s must be a decimal-convertible number", key)
	}
}

// StringSlice キーに対応する文字列シーケンスを取得
func (a Arguments) StringSlice(key string) ([]string, error) {
	val, err := a.get(key)
	if err != nil {
		return nil, err
	}

	switch v := val.(type) {
	case []string:
		return v, nil
	case []interface{}:
		result := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a sequence of strings", key)
			}
			result = append(result, s)
		}
		return result, nil
	default:
		return nil, fmt.Errorf("%s must be a sequence of strings", key)
	}
}
