package contracts

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
)

// RewardsEthereum reads the staking rewards ledger, which assigns boosted values to locks
type RewardsEthereum struct {
	address  common.Address
	contract *bind.BoundContract
}

func NewRewardsEthereum(address common.Address, client bind.ContractCaller) *RewardsEthereum {
	return &RewardsEthereum{
		address:  address,
		contract: bind.NewBoundContract(address, RewardsABI, client, nil, nil),
	}
}

func (r *RewardsEthereum) Address() common.Address {
	return r.address
}

// BoostedValue returns the reward weight of the lock, the "value" field of stakedLockInfo
func (r *RewardsEthereum) BoostedValue(ctx context.Context, lockID *big.Int) (*big.Int, error) {
	out, err := call(ctx, r.contract, "stakedLockInfo", lockID)
	if err != nil {
		return nil, err
	}
	return toBigInt(out, 0)
}

func (r *RewardsEthereum) PendingRewardsOfLock(ctx context.Context, lockID *big.Int) (*big.Int, error) {
	return callBigInt(ctx, r.contract, "pendingRewardsOfLock", lockID)
}

func (r *RewardsEthereum) RewardPerSecond(ctx context.Context) (*big.Int, error) {
	return callBigInt(ctx, r.contract, "rewardPerSecond")
}

func (r *RewardsEthereum) ValueStaked(ctx context.Context) (*big.Int, error) {
	return callBigInt(ctx, r.contract, "valueStaked")
}
