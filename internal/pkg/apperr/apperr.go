// Package apperr 定義三類可復原的錯誤分類
// 所有操作的失敗都以此分類回傳給呼叫端，不會 panic 也不會自動重試
package apperr

import (
	"errors"
	"fmt"
)

type Kind uint8

const (
	Validation      Kind = iota + 1 // 必填欄位為空、價格或數量不合法
	Integrity                       // 唯一鍵重複、外鍵指向不存在的列
	DataUnavailable                 // 聚合對象為空集合或資料不足
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case Integrity:
		return "integrity"
	case DataUnavailable:
		return "data unavailable"
	default:
		return "unknown"
	}
}

type Error struct {
	kind Kind
	err  error
}

func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, err: errors.New(msg)}
}

// Wrap 保留底層錯誤並加上分類
func Wrap(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{kind: kind, err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.err)
}

func (e *Error) Unwrap() error {
	return e.err
}

func (e *Error) Kind() Kind {
	return e.kind
}

// KindOf 取出錯誤鏈上的分類，無分類回傳零值
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return 0
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
