package contracts

import (
	"context"
	"fmt"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

type EthClientMock struct {
	CallContractFunc     func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
	HeaderByNumberFunc   func(ctx context.Context, number *big.Int) (*types.Header, error)
	ChainIDFunc          func(ctx context.Context) (*big.Int, error)
	SuggestGasPriceFunc  func(ctx context.Context) (*big.Int, error)
	SuggestGasTipCapFunc func(ctx context.Context) (*big.Int, error)

	CallContractCalledTimes atomic.Int64
}

var _ EthereumClient = (*EthClientMock)(nil)

func (m *EthClientMock) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x1}, nil
}

func (m *EthClientMock) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	m.CallContractCalledTimes.Add(1)
	return m.CallContractFunc(ctx, call, blockNumber)
}

func (m *EthClientMock) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return m.HeaderByNumberFunc(ctx, number)
}

func (m *EthClientMock) ChainID(ctx context.Context) (*big.Int, error) {
	return m.ChainIDFunc(ctx)
}

func (m *EthClientMock) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return m.SuggestGasPriceFunc(ctx)
}

func (m *EthClientMock) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return m.SuggestGasTipCapFunc(ctx)
}

// MethodHandler receives the called contract address and decoded inputs, returns outputs to be abi encoded
type MethodHandler func(to common.Address, args []interface{}) ([]interface{}, error)

// NewABIDispatcher builds a CallContractFunc that decodes calls against the provided ABIs
// and routes them to handlers by method name
func NewABIDispatcher(handlers map[string]MethodHandler, abis ...abi.ABI) func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	return func(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
		if len(call.Data) < 4 {
			return nil, fmt.Errorf("calldata too short")
		}
		for _, parsed := range abis {
			method, err := parsed.MethodById(call.Data[:4])
			if err != nil {
				continue
			}
			handler, ok := handlers[method.Name]
			if !ok {
				return nil, fmt.Errorf("no handler for %s", method.Name)
			}
			args, err := method.Inputs.Unpack(call.Data[4:])
			if err != nil {
				return nil, err
			}
			var to common.Address
			if call.To != nil {
				to = *call.To
			}
			out, err := handler(to, args)
			if err != nil {
				return nil, err
			}
			return method.Outputs.Pack(out...)
		}
		return nil, fmt.Errorf("unknown selector %x", call.Data[:4])
	}
}
