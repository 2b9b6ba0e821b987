package locks

import (
	"context"
	"errors"
	"math/big"
	"sync/atomic"

	"github.com/ethereum/go-ethereum/common"
)

var errReadFailed = errors.New("read failed")

type fakeLock struct {
	amount  *big.Int
	end     *big.Int
	boosted *big.Int
	pending *big.Int
}

// fakeChain implements LockReader, RewardsReader and Clock over in-memory state
type fakeChain struct {
	now             uint64
	owners          map[common.Address][]int64
	locks           map[int64]fakeLock
	rewardPerSecond *big.Int
	valueStaked     *big.Int

	failLockID int64 // Lock() fails for this id when non-zero
	calls      atomic.Int64
}

func newFakeChain(now uint64) *fakeChain {
	return &fakeChain{
		now:             now,
		owners:          make(map[common.Address][]int64),
		locks:           make(map[int64]fakeLock),
		rewardPerSecond: new(big.Int),
		valueStaked:     new(big.Int),
	}
}

func (c *fakeChain) addLock(owner common.Address, id int64, amount int64, end uint64) {
	c.owners[owner] = append(c.owners[owner], id)
	c.locks[id] = fakeLock{
		amount:  big.NewInt(amount),
		end:     new(big.Int).SetUint64(end),
		boosted: big.NewInt(amount),
		pending: new(big.Int),
	}
}

func (c *fakeChain) Timestamp(ctx context.Context) (uint64, error) {
	c.calls.Add(1)
	return c.now, nil
}

func (c *fakeChain) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	c.calls.Add(1)
	return big.NewInt(int64(len(c.owners[owner]))), nil
}

func (c *fakeChain) TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index *big.Int) (*big.Int, error) {
	c.calls.Add(1)
	ids := c.owners[owner]
	if !index.IsInt64() || index.Int64() >= int64(len(ids)) {
		return nil, errors.New("index out of bounds")
	}
	return big.NewInt(ids[index.Int64()]), nil
}

func (c *fakeChain) Lock(ctx context.Context, lockID *big.Int) (*big.Int, *big.Int, error) {
	c.calls.Add(1)
	if c.failLockID != 0 && lockID.Int64() == c.failLockID {
		return nil, nil, errReadFailed
	}
	l, ok := c.locks[lockID.Int64()]
	if !ok {
		return nil, nil, errors.New("nonexistent lock")
	}
	return l.amount, l.end, nil
}

func (c *fakeChain) BoostedValue(ctx context.Context, lockID *big.Int) (*big.Int, error) {
	c.calls.Add(1)
	return c.locks[lockID.Int64()].boosted, nil
}

func (c *fakeChain) PendingRewardsOfLock(ctx context.Context, lockID *big.Int) (*big.Int, error) {
	c.calls.Add(1)
	return c.locks[lockID.Int64()].pending, nil
}

func (c *fakeChain) RewardPerSecond(ctx context.Context) (*big.Int, error) {
	c.calls.Add(1)
	return c.rewardPerSecond, nil
}

func (c *fakeChain) ValueStaked(ctx context.Context) (*big.Int, error) {
	c.calls.Add(1)
	return c.valueStaked, nil
}
