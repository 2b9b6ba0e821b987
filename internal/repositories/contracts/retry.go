package contracts

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/solace-fi/solace-client-sub001/internal/interfaces"
)

type RetryPolicy struct {
	Attempts uint // includes the first call
	Delay    time.Duration
	MaxDelay time.Duration
}

// Retrier applies the same backoff policy to every chain read made through the retrying readers
type Retrier struct {
	policy RetryPolicy
	log    interfaces.ILogger
}

func NewRetrier(policy RetryPolicy, log interfaces.ILogger) *Retrier {
	if policy.Attempts == 0 {
		// retry-go treats zero as unlimited
		policy.Attempts = 1
	}
	return &Retrier{policy: policy, log: log}
}

func retryCall[T any](ctx context.Context, r *Retrier, label string, f retry.RetryableFuncWithData[T]) (T, error) {
	return retry.DoWithData(f,
		retry.Context(ctx),
		retry.Attempts(r.policy.Attempts),
		retry.Delay(r.policy.Delay),
		retry.MaxDelay(r.policy.MaxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isRetryable),
		retry.OnRetry(func(n uint, err error) {
			r.log.Warnf("%s failed, attempt %d/%d: %s", label, n+1, r.policy.Attempts, err)
		}),
	)
}

// isRetryable filters out errors that will not go away on a repeated call
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !errors.Is(err, bind.ErrNoCode)
}

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

type RetryingLockReader struct {
	next LockReader
	r    *Retrier
}

func NewRetryingLockReader(next LockReader, r *Retrier) *RetryingLockReader {
	return &RetryingLockReader{next: next, r: r}
}

func (l *RetryingLockReader) BalanceOf(ctx context.Context, owner common.Address) (*big.Int, error) {
	return retryCall(ctx, l.r, "balanceOf", func() (*big.Int, error) {
		return l.next.BalanceOf(ctx, owner)
	})
}

func (l *RetryingLockReader) TokenOfOwnerByIndex(ctx context.Context, owner common.Address, index *big.Int) (*big.Int, error) {
	return retryCall(ctx, l.r, "tokenOfOwnerByIndex", func() (*big.Int, error) {
		return l.next.TokenOfOwnerByIndex(ctx, owner, index)
	})
}

func (l *RetryingLockReader) Lock(ctx context.Context, lockID *big.Int) (*big.Int, *big.Int, error) {
	res, err := retryCall(ctx, l.r, "locks", func() ([2]*big.Int, error) {
		amount, end, err := l.next.Lock(ctx, lockID)
		return [2]*big.Int{amount, end}, err
	})
	if err != nil {
		return nil, nil, err
	}
	return res[0], res[1], nil
}

type RetryingRewardsReader struct {
	next RewardsReader
	r    *Retrier
}

func NewRetryingRewardsReader(next RewardsReader, r *Retrier) *RetryingRewardsReader {
	return &RetryingRewardsReader{next: next, r: r}
}

func (rw *RetryingRewardsReader) BoostedValue(ctx context.Context, lockID *big.Int) (*big.Int, error) {
	return retryCall(ctx, rw.r, "stakedLockInfo", func() (*big.Int, error) {
		return rw.next.BoostedValue(ctx, lockID)
	})
}

func (rw *RetryingRewardsReader) PendingRewardsOfLock(ctx context.Context, lockID *big.Int) (*big.Int, error) {
	return retryCall(ctx, rw.r, "pendingRewardsOfLock", func() (*big.Int, error) {
		return rw.next.PendingRewardsOfLock(ctx, lockID)
	})
}

func (rw *RetryingRewardsReader) RewardPerSecond(ctx context.Context) (*big.Int, error) {
	return retryCall(ctx, rw.r, "rewardPerSecond", func() (*big.Int, error) {
		return rw.next.RewardPerSecond(ctx)
	})
}

func (rw *RetryingRewardsReader) ValueStaked(ctx context.Context) (*big.Int, error) {
	return retryCall(ctx, rw.r, "valueStaked", func() (*big.Int, error) {
		return rw.next.ValueStaked(ctx)
	})
}

type RetryingClock struct {
	next Clock
	r    *Retrier
}

func NewRetryingClock(next Clock, r *Retrier) *RetryingClock {
	return &RetryingClock{next: next, r: r}
}

func (c *RetryingClock) Timestamp(ctx context.Context) (uint64, error) {
	return retryCall(ctx, c.r, "headerByNumber", func() (uint64, error) {
		return c.next.Timestamp(ctx)
	})
}
