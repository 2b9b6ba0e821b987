package networks

import (
	"testing"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/require"
)

func TestByChainID(t *testing.T) {
	polygon, ok := ByChainID(ChainIDPolygon)
	require.True(t, ok)
	require.True(t, polygon.UseGasStation)
	require.True(t, polygon.SupportsTxType(types.DynamicFeeTxType))

	aurora, ok := ByChainID(ChainIDAurora)
	require.True(t, ok)
	require.False(t, aurora.SupportsTxType(types.DynamicFeeTxType))
	require.NotNil(t, aurora.FeeOverride)

	_, ok = ByChainID(31337)
	require.False(t, ok)
}

func TestOnlyPolygonUsesGasStation(t *testing.T) {
	for _, n := range All() {
		require.Equal(t, n.ChainID == ChainIDPolygon, n.UseGasStation, n.Name)
	}
}

func TestTestnetsAreMarked(t *testing.T) {
	for _, id := range []int64{ChainIDGoerli, ChainIDMumbai, ChainIDFantomTestnet, ChainIDAuroraTestnet} {
		n, ok := ByChainID(id)
		require.True(t, ok)
		require.True(t, n.IsTestnet, n.Name)
	}
}
