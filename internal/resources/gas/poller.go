package gas

import (
	"context"
	"time"

	"github.com/solace-fi/solace-client-sub001/internal/interfaces"
	"github.com/solace-fi/solace-client-sub001/internal/metrics"
	"go.uber.org/atomic"
)

// FeePoller refreshes the fee snapshot on every tick. A failed refresh keeps the previous snapshot
type FeePoller struct {
	// config
	interval time.Duration
	timeout  time.Duration

	// state
	snapshot atomic.Pointer[Snapshot]

	// deps
	source FeeSource
	log    interfaces.ILogger
}

func NewFeePoller(source FeeSource, interval time.Duration, timeout time.Duration, log interfaces.ILogger) *FeePoller {
	return &FeePoller{
		interval: interval,
		timeout:  timeout,
		source:   source,
		log:      log,
	}
}

func (p *FeePoller) Run(ctx context.Context) error {
	p.log.Infof("fee poller started, source %s, interval %s", p.source.Name(), p.interval)

	_ = p.Poll(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.log.Infof("fee poller stopped: %s", ctx.Err())
			return ctx.Err()
		case <-ticker.C:
			_ = p.Poll(ctx)
		}
	}
}

// Poll refreshes the snapshot once
func (p *FeePoller) Poll(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	startedAt := time.Now()
	snap, err := p.source.FeeSnapshot(ctx)
	metrics.ObserveFeePoll(p.source.Name(), startedAt, err)
	if err != nil {
		p.log.Warnf("fee poll failed, source %s: %s", p.source.Name(), err)
		return err
	}

	snap.Source = p.source.Name()
	snap.FetchedAt = time.Now()
	p.snapshot.Store(snap)

	p.log.Debugf("fee snapshot updated, gasPrice %.4f maxFee %.4f maxPriorityFee %.4f gwei", snap.GasPrice, snap.MaxFeePerGas, snap.MaxPriorityFeePerGas)
	return nil
}

// Snapshot returns the latest snapshot or nil if no poll succeeded yet
func (p *FeePoller) Snapshot() *Snapshot {
	return p.snapshot.Load()
}
