package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// LockerEthereum reads lock NFTs from an xsLocker-like contract
type LockerEthereum struct {
	address  common.Address
	contract *bind.BoundContract
}

func NewLockerEthereum(address common.Address, client bind.ContractCaller) *LockerEthereum {
	return &LockerEthereum{
		address:  address,
		contract: bind.NewBoundContract(address, LockerABI, client, nil, nil),
	}
}

func (l *LockerEthereum) Address() common.Address {
	return l.address
}

func (l *LockerEthereum) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return callBigInt(ctx, l.contract, "balanceOf", owner)
}

func (l *LockerEthereum) TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index *big.Int) (*big.Int, error) {
	return callBigInt(ctx, l.contract, "tokenOfOwnerByIndex", owner, index)
}

func (l *LockerEthereum) Lock(ctx context.Context, lockID *big.Int) (amount *big.Int, end *big.Int, err error) {
	out, err := call(ctx, l.contract, "locks", lockID)
	if err != nil {
		return nil, nil, err
	}
	amount, err = toBigInt(out, 0)
	if err != nil {
		return nil, nil, err
	}
	end, err = toBigInt(out, 1)
	if err != nil {
		return nil, nil, err
	}
	return amount, end, nil
}
