package contracts

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/solace-fi/solace-client-sub001/internal/metrics"
)

func call(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) ([]interface{}, error) {
	startedAt := time.Now()

	var out []interface{}
	err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...)
	metrics.ObserveRPC(method, startedAt, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	return out, nil
}

func callBigInt(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) (*big.Int, error) {
	out, err := call(ctx, contract, method, params...)
	if err != nil {
		return nil, err
	}
	return toBigInt(out, 0)
}

func toBigInt(out []interface{}, index int) (*big.Int, error) {
	if len(out) <= index {
		return nil, fmt.Errorf("expected at least %d outputs, got %d", index+1, len(out))
	}
	return *abi.ConvertType(out[index], new(*big.Int)).(**big.Int), nil
}
