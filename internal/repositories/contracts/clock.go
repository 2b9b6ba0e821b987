package contracts

import (
	"context"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/solace-fi/solace-client-sub001/internal/metrics"
)

var ErrNoHeader = errors.New("node returned empty header")

type HeaderReader interface {
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// HeadClock reports the timestamp of the latest block, locks expire against chain time, not local time
type HeadClock struct {
	client HeaderReader
}

func NewHeadClock(client HeaderReader) *HeadClock {
	return &HeadClock{client: client}
}

func (c *HeadClock) Timestamp(ctx context.Context) (uint64, error) {
	startedAt := time.Now()
	header, err := c.client.HeaderByNumber(ctx, nil)
	metrics.ObserveRPC("headerByNumber", startedAt, err)
	if err != nil {
		return 0, err
	}
	if header == nil {
		return 0, ErrNoHeader
	}
	return header.Time, nil
}
