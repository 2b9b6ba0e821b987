package locks

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/solace-fi/solace-client-sub001/internal/interfaces"
	"github.com/solace-fi/solace-client-sub001/internal/metrics"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const (
	LockerXsLocker = "xslocker"
	LockerUwLocker = "uwlocker"
)

var ErrUnknownLocker = errors.New("unknown locker")

// Service resolves positions by locker name. Read failures never reach the caller,
// they are logged and turn into an empty position
type Service struct {
	// config
	timeout time.Duration

	// state
	lockers map[string]*Aggregator

	// deps
	log interfaces.ILogger
}

func NewService(timeout time.Duration, log interfaces.ILogger) *Service {
	return &Service{
		timeout: timeout,
		lockers: make(map[string]*Aggregator),
		log:     log,
	}
}

// Register is not safe to call concurrently with GetPosition, register lockers on startup
func (s *Service) Register(name string, aggregator *Aggregator) {
	s.lockers[name] = aggregator
}

func (s *Service) Lockers() []string {
	names := maps.Keys(s.lockers)
	slices.Sort(names)
	return names
}

func (s *Service) GetPosition(ctx context.Context, locker string, owner common.Address) (*Position, error) {
	aggregator, ok := s.lockers[locker]
	if !ok {
		return nil, ErrUnknownLocker
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	pos, err := aggregator.Aggregate(ctx, owner)
	if err != nil {
		s.log.Errorf("failed to aggregate locks, locker %s, owner %s: %s", locker, owner.Hex(), err)
		metrics.IncAggregationFailure(locker)
		return EmptyPosition(owner, 0), nil
	}

	s.log.Debugf("aggregated %d locks, locker %s, owner %s", len(pos.Locks), locker, owner.Hex())
	return pos, nil
}
