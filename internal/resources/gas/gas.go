package gas

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/core/types"
)

// Snapshot is the latest polled fee data, values in gwei. Treat as immutable once stored
type Snapshot struct {
	GasPrice             float64
	MaxFeePerGas         float64
	MaxPriorityFeePerGas float64
	Source               string
	FetchedAt            time.Time
}

// Config is the fee part of an outgoing transaction. Exactly one shape is set:
// nothing (use submission defaults), GasPrice (legacy) or MaxFeePerGas+MaxPriorityFeePerGas+Type (EIP-1559)
type Config struct {
	GasPrice             *big.Int
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
	Type                 *uint8
}

func (c Config) IsEmpty() bool {
	return c.GasPrice == nil && c.MaxFeePerGas == nil && c.MaxPriorityFeePerGas == nil && c.Type == nil
}

func (c Config) IsLegacy() bool {
	return c.GasPrice != nil
}

func (c Config) IsDynamicFee() bool {
	return c.Type != nil && *c.Type == types.DynamicFeeTxType
}

// Apply merges the config into transaction options, empty config leaves them untouched
func (c Config) Apply(opts *bind.TransactOpts) {
	switch {
	case c.IsDynamicFee():
		opts.GasPrice = nil
		opts.GasFeeCap = new(big.Int).Set(c.MaxFeePerGas)
		opts.GasTipCap = new(big.Int).Set(c.MaxPriorityFeePerGas)
	case c.IsLegacy():
		opts.GasPrice = new(big.Int).Set(c.GasPrice)
		opts.GasFeeCap = nil
		opts.GasTipCap = nil
	}
}
