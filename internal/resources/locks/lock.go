package locks

import (
	"math"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/exp/slices"
)

const SecondsPerYear = 31536000

var secondsPerYear = big.NewInt(SecondsPerYear)

// Lock is a read-only view of a single lock NFT at a given chain timestamp
type Lock struct {
	ID             *big.Int
	Amount         *big.Int
	End            uint64 // expiry, unix seconds
	TimeLeft       uint64 // seconds until expiry, zero if expired
	Locked         bool
	BoostedValue   *big.Int
	PendingRewards *big.Int
	YearlyReturn   *big.Int
	APR            *big.Int // percent, integer
}

// Position aggregates all locks of an owner. Staked == Locked + Unlocked always holds
type Position struct {
	Owner          common.Address
	Timestamp      uint64
	Locks          []Lock
	Staked         *big.Int
	Locked         *big.Int
	Unlocked       *big.Int
	PendingRewards *big.Int
	YearlyReturn   *big.Int
	APR            *big.Int
}

// RewardRate is the global emission state of a rewards ledger
type RewardRate struct {
	RewardPerSecond *big.Int
	ValueStaked     *big.Int
}

func ZeroRewardRate() RewardRate {
	return RewardRate{RewardPerSecond: new(big.Int), ValueStaked: new(big.Int)}
}

func IsLocked(end uint64, now uint64) bool {
	return end > now
}

func TimeLeft(end uint64, now uint64) uint64 {
	if end <= now {
		return 0
	}
	return end - now
}

// YearlyReturn is the share of yearly emission earned by boostedValue, zero if nothing is staked
func YearlyReturn(rate RewardRate, boostedValue *big.Int) *big.Int {
	if rate.ValueStaked == nil || rate.ValueStaked.Sign() == 0 || rate.RewardPerSecond == nil || boostedValue == nil {
		return new(big.Int)
	}
	res := new(big.Int).Mul(rate.RewardPerSecond, secondsPerYear)
	res.Mul(res, boostedValue)
	return res.Quo(res, rate.ValueStaked)
}

// APR returns yearlyReturn relative to amount in percent, zero if amount is zero
func APR(yearlyReturn *big.Int, amount *big.Int) *big.Int {
	if amount == nil || amount.Sign() == 0 || yearlyReturn == nil {
		return new(big.Int)
	}
	res := new(big.Int).Mul(yearlyReturn, big.NewInt(100))
	return res.Quo(res, amount)
}

// LockFields are the raw values read from the locker and rewards ledger
type LockFields struct {
	ID             *big.Int
	Amount         *big.Int
	End            *big.Int
	BoostedValue   *big.Int
	PendingRewards *big.Int
}

func NewLock(f LockFields, now uint64, rate RewardRate) Lock {
	end := toUint64(f.End)
	amount := orZero(f.Amount)
	boosted := orZero(f.BoostedValue)
	yearly := YearlyReturn(rate, boosted)

	return Lock{
		ID:             orZero(f.ID),
		Amount:         amount,
		End:            end,
		TimeLeft:       TimeLeft(end, now),
		Locked:         IsLocked(end, now),
		BoostedValue:   boosted,
		PendingRewards: orZero(f.PendingRewards),
		YearlyReturn:   yearly,
		APR:            APR(yearly, amount),
	}
}

// NewPosition folds locks into totals, input order does not matter, output locks are sorted by id
func NewPosition(owner common.Address, now uint64, locks []Lock) *Position {
	pos := EmptyPosition(owner, now)

	for _, lock := range locks {
		pos.Staked.Add(pos.Staked, lock.Amount)
		if lock.Locked {
			pos.Locked.Add(pos.Locked, lock.Amount)
		} else {
			pos.Unlocked.Add(pos.Unlocked, lock.Amount)
		}
		pos.PendingRewards.Add(pos.PendingRewards, lock.PendingRewards)
		pos.YearlyReturn.Add(pos.YearlyReturn, lock.YearlyReturn)
	}
	pos.APR = APR(pos.YearlyReturn, pos.Staked)

	pos.Locks = slices.Clone(locks)
	slices.SortStableFunc(pos.Locks, func(a, b Lock) bool {
		return a.ID.Cmp(b.ID) < 0
	})

	return pos
}

func EmptyPosition(owner common.Address, now uint64) *Position {
	return &Position{
		Owner:          owner,
		Timestamp:      now,
		Locks:          []Lock{},
		Staked:         new(big.Int),
		Locked:         new(big.Int),
		Unlocked:       new(big.Int),
		PendingRewards: new(big.Int),
		YearlyReturn:   new(big.Int),
		APR:            new(big.Int),
	}
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}

// toUint64 saturates so that expiries beyond uint64 still count as locked
func toUint64(v *big.Int) uint64 {
	if v == nil || v.Sign() < 0 {
		return 0
	}
	if !v.IsUint64() {
		return math.MaxUint64
	}
	return v.Uint64()
}
