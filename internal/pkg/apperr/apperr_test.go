package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	require.Equal(t, "validation", Validation.String())
	require.Equal(t, "integrity", Integrity.String())
	require.Equal(t, "data unavailable", DataUnavailable.String())
	require.Equal(t, "unknown", Kind(0).String())
}

func TestNew(t *testing.T) {
	err := New(Validation, "price must be greater than zero")

	require.Equal(t, "validation: price must be greater than zero", err.Error())
	require.Equal(t, Validation, err.Kind())
}

func TestWrap(t *testing.T) {
	base := errors.New("UNIQUE constraint failed")
	err := Wrap(Integrity, base)

	require.Equal(t, Integrity, err.Kind())
	require.ErrorIs(t, err, base)
}

func TestWrapNil(t *testing.T) {
	require.Nil(t, Wrap(Integrity, nil))
}

// 服務層慣用 fmt.Errorf("%w: ...") 附加上下文
// 分類必須能穿透包裝鏈取得
func TestKindOf_ThroughWrapping(t *testing.T) {
	sentinel := New(Integrity, "customer not found")
	wrapped := fmt.Errorf("%w: 42", sentinel)

	require.Equal(t, Integrity, KindOf(wrapped))
	require.ErrorIs(t, wrapped, sentinel)
}

func TestKindOf_Unclassified(t *testing.T) {
	require.Equal(t, Kind(0), KindOf(errors.New("plain")))
	require.Equal(t, Kind(0), KindOf(nil))
}

func TestIsKind(t *testing.T) {
	err := New(DataUnavailable, "not enough distinct dates to fit a trend")

	require.True(t, IsKind(err, DataUnavailable))
	require.False(t, IsKind(err, Validation))
}
