package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUFFromLocalidade(t *testing.T) {
	require.Equal(t, "SP", UFFromLocalidade("São Paulo - SP"))
	require.Equal(t, "RJ", UFFromLocalidade("Rio de Janeiro - RJ"))
	require.Equal(t, "", UFFromLocalidade(""))
	// 格式不符時原樣回傳
	require.Equal(t, "Brasília", UFFromLocalidade("Brasília"))
}
