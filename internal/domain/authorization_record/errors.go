package authorization_record

import "errors"

var (
	// ErrRecordNotFound 承認記録が見つからないエラー
	ErrRecordNotFound = errors.New("authorization record not found")
)
