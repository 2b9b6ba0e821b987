package gas

import (
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/solace-fi/solace-client-sub001/internal/lib"
	"github.com/solace-fi/solace-client-sub001/internal/networks"
)

// Select picks the fee config for the next transaction. It returns the empty config on test networks,
// for an unknown wallet (nil) or when there is no fee data yet
func Select(network networks.Network, wallet *Wallet, snapshot *Snapshot) Config {
	if network.IsTestnet || wallet == nil {
		return Config{}
	}

	if network.FeeOverride != nil {
		snapshot = &Snapshot{
			GasPrice:             network.FeeOverride.GasPrice,
			MaxFeePerGas:         network.FeeOverride.MaxFeePerGas,
			MaxPriorityFeePerGas: network.FeeOverride.MaxPriorityFeePerGas,
			Source:               "override",
		}
	}
	if snapshot == nil {
		return Config{}
	}

	if wallet.SupportsTxType(types.DynamicFeeTxType) && network.SupportsTxType(types.DynamicFeeTxType) {
		txType := uint8(types.DynamicFeeTxType)
		return Config{
			MaxFeePerGas:         lib.GweiToWei(snapshot.MaxFeePerGas),
			MaxPriorityFeePerGas: lib.GweiToWei(snapshot.MaxPriorityFeePerGas),
			Type:                 &txType,
		}
	}

	return Config{
		GasPrice: lib.GweiToWei(snapshot.GasPrice),
	}
}
