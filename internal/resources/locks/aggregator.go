package locks

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"
)

var ErrTooManyLocks = errors.New("owner holds too many locks")

type LockReader interface {
	BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error)
	TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index *big.Int) (*big.Int, error)
	Lock(ctx context.Context, lockID *big.Int) (amount *big.Int, end *big.Int, err error)
}

type RewardsReader interface {
	BoostedValue(ctx context.Context, lockID *big.Int) (*big.Int, error)
	PendingRewardsOfLock(ctx context.Context, lockID *big.Int) (*big.Int, error)
	RewardPerSecond(ctx context.Context) (*big.Int, error)
	ValueStaked(ctx context.Context) (*big.Int, error)
}

type Clock interface {
	Timestamp(ctx context.Context) (uint64, error)
}

type AggregatorConfig struct {
	MaxLocks    int // upper bound for owner balance
	Concurrency int // parallel lock reads, <= 0 means unlimited
}

// Aggregator computes a Position from the current on-chain state, every call re-reads everything
type Aggregator struct {
	// config
	maxLocks    int
	concurrency int

	// deps
	locks   LockReader
	rewards RewardsReader // nil if the locker has no rewards ledger
	clock   Clock
}

func NewAggregator(locks LockReader, rewards RewardsReader, clock Clock, cfg AggregatorConfig) *Aggregator {
	return &Aggregator{
		maxLocks:    cfg.MaxLocks,
		concurrency: cfg.Concurrency,
		locks:       locks,
		rewards:     rewards,
		clock:       clock,
	}
}

func (a *Aggregator) HasRewards() bool {
	return a.rewards != nil
}

// Aggregate reads all locks of the owner in parallel and folds them.
// Any failed read aborts the whole aggregation.
func (a *Aggregator) Aggregate(ctx context.Context, owner common.Address) (*Position, error) {
	now, err := a.clock.Timestamp(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain timestamp: %w", err)
	}

	balance, err := a.locks.BalanceOf(ctx, owner)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", owner.Hex(), err)
	}
	count, err := a.lockCount(balance)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return EmptyPosition(owner, now), nil
	}

	rate, err := a.rewardRate(ctx)
	if err != nil {
		return nil, err
	}

	locks := make([]Lock, count)

	g, gctx := errgroup.WithContext(ctx)
	if a.concurrency > 0 {
		g.SetLimit(a.concurrency)
	}
	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			fields, err := a.readLock(gctx, owner, i)
			if err != nil {
				return err
			}
			locks[i] = NewLock(fields, now, rate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return NewPosition(owner, now, locks), nil
}

func (a *Aggregator) lockCount(balance *big.Int) (int, error) {
	if balance == nil || balance.Sign() <= 0 {
		return 0, nil
	}
	if a.maxLocks > 0 && balance.Cmp(big.NewInt(int64(a.maxLocks))) > 0 {
		return 0, fmt.Errorf("%w: %s > %d", ErrTooManyLocks, balance, a.maxLocks)
	}
	if !balance.IsInt64() {
		return 0, fmt.Errorf("%w: %s", ErrTooManyLocks, balance)
	}
	return int(balance.Int64()), nil
}

func (a *Aggregator) rewardRate(ctx context.Context) (RewardRate, error) {
	if a.rewards == nil {
		return ZeroRewardRate(), nil
	}

	rps, err := a.rewards.RewardPerSecond(ctx)
	if err != nil {
		return RewardRate{}, fmt.Errorf("reward per second: %w", err)
	}
	staked, err := a.rewards.ValueStaked(ctx)
	if err != nil {
		return RewardRate{}, fmt.Errorf("value staked: %w", err)
	}
	return RewardRate{RewardPerSecond: rps, ValueStaked: staked}, nil
}

func (a *Aggregator) readLock(ctx context.Context, owner common.Address, index int) (LockFields, error) {
	id, err := a.locks.TokenOfOwnerByIndex(ctx, owner, big.NewInt(int64(index)))
	if err != nil {
		return LockFields{}, fmt.Errorf("token of %s by index %d: %w", owner.Hex(), index, err)
	}

	amount, end, err := a.locks.Lock(ctx, id)
	if err != nil {
		return LockFields{}, fmt.Errorf("lock %s: %w", id, err)
	}

	fields := LockFields{ID: id, Amount: amount, End: end}
	if a.rewards == nil {
		return fields, nil
	}

	fields.BoostedValue, err = a.rewards.BoostedValue(ctx, id)
	if err != nil {
		return LockFields{}, fmt.Errorf("boosted value of lock %s: %w", id, err)
	}
	fields.PendingRewards, err = a.rewards.PendingRewardsOfLock(ctx, id)
	if err != nil {
		return LockFields{}, fmt.Errorf("pending rewards of lock %s: %w", id, err)
	}

	return fields, nil
}
