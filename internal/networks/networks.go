package networks

import (
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/exp/slices"
)

const (
	ChainIDEthereum      int64 = 1
	ChainIDGoerli        int64 = 5
	ChainIDPolygon       int64 = 137
	ChainIDMumbai        int64 = 80001
	ChainIDFantom        int64 = 250
	ChainIDFantomTestnet int64 = 4002
	ChainIDAurora        int64 = 1313161554
	ChainIDAuroraTestnet int64 = 1313161555
)

// FeeOverride is a hardcoded fee used instead of the polled one, values in gwei
type FeeOverride struct {
	GasPrice             float64
	MaxFeePerGas         float64
	MaxPriorityFeePerGas float64
}

type Network struct {
	ChainID          int64
	Name             string
	IsTestnet        bool
	SupportedTxTypes []uint8
	FeeOverride      *FeeOverride

	// UseGasStation makes the fee poller query the fee station http endpoint instead of the node
	UseGasStation bool
}

func (n Network) SupportsTxType(txType uint8) bool {
	return slices.Contains(n.SupportedTxTypes, txType)
}

var (
	legacyOnly    = []uint8{types.LegacyTxType}
	legacyAnd1559 = []uint8{types.LegacyTxType, types.DynamicFeeTxType}
)

var known = []Network{
	{ChainID: ChainIDEthereum, Name: "Ethereum", SupportedTxTypes: legacyAnd1559},
	{ChainID: ChainIDGoerli, Name: "Goerli", IsTestnet: true, SupportedTxTypes: legacyAnd1559},
	{ChainID: ChainIDPolygon, Name: "Polygon", SupportedTxTypes: legacyAnd1559, UseGasStation: true},
	{ChainID: ChainIDMumbai, Name: "Mumbai", IsTestnet: true, SupportedTxTypes: legacyAnd1559},
	{ChainID: ChainIDFantom, Name: "Fantom", SupportedTxTypes: legacyAnd1559},
	{ChainID: ChainIDFantomTestnet, Name: "Fantom Testnet", IsTestnet: true, SupportedTxTypes: legacyAnd1559},
	{ChainID: ChainIDAurora, Name: "Aurora", SupportedTxTypes: legacyOnly, FeeOverride: &FeeOverride{GasPrice: 0.07}},
	{ChainID: ChainIDAuroraTestnet, Name: "Aurora Testnet", IsTestnet: true, SupportedTxTypes: legacyOnly},
}

func ByChainID(chainID int64) (Network, bool) {
	for _, n := range known {
		if n.ChainID == chainID {
			return n, true
		}
	}
	return Network{}, false
}

// All returns a copy of the known networks list
func All() []Network {
	return slices.Clone(known)
}
