package gas

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/solace-fi/solace-client-sub001/internal/lib"
	"github.com/solace-fi/solace-client-sub001/internal/networks"
	"github.com/solace-fi/solace-client-sub001/internal/repositories/contracts"
	"github.com/stretchr/testify/require"
)

func newClientMock(baseFee *big.Int) *contracts.EthClientMock {
	return &contracts.EthClientMock{
		SuggestGasPriceFunc: func(ctx context.Context) (*big.Int, error) {
			return lib.GweiToWei(50), nil
		},
		SuggestGasTipCapFunc: func(ctx context.Context) (*big.Int, error) {
			return lib.GweiToWei(2), nil
		},
		HeaderByNumberFunc: func(ctx context.Context, number *big.Int) (*types.Header, error) {
			return &types.Header{BaseFee: baseFee}, nil
		},
	}
}

func TestChainFeeSource(t *testing.T) {
	src := NewChainFeeSource(newClientMock(lib.GweiToWei(39)))

	snap, err := src.FeeSnapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 50.0, snap.GasPrice)
	require.Equal(t, 80.0, snap.MaxFeePerGas)
	require.Equal(t, 2.0, snap.MaxPriorityFeePerGas)
}

func TestChainFeeSourcePreLondon(t *testing.T) {
	src := NewChainFeeSource(newClientMock(nil))

	snap, err := src.FeeSnapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 50.0, snap.GasPrice)
	require.Zero(t, snap.MaxFeePerGas)
	require.Zero(t, snap.MaxPriorityFeePerGas)
}

func TestChainFeeSourceError(t *testing.T) {
	errRPC := errors.New("rpc down")
	client := newClientMock(lib.GweiToWei(39))
	client.SuggestGasPriceFunc = func(ctx context.Context) (*big.Int, error) {
		return nil, errRPC
	}

	_, err := NewChainFeeSource(client).FeeSnapshot(context.Background())
	require.ErrorIs(t, err, errRPC)
}

func TestGasStationFeeSource(t *testing.T) {
	src := NewGasStationFeeSource(&stationMock{maxFee: 80, maxPriorityFee: 30})

	snap, err := src.FeeSnapshot(context.Background())
	require.NoError(t, err)
	require.Equal(t, 80.0, snap.GasPrice)
	require.Equal(t, 80.0, snap.MaxFeePerGas)
	require.Equal(t, 30.0, snap.MaxPriorityFeePerGas)
}

func TestFeeSourceFactory(t *testing.T) {
	polygon, _ := networks.ByChainID(networks.ChainIDPolygon)
	ethereum, _ := networks.ByChainID(networks.ChainIDEthereum)
	client := newClientMock(nil)
	station := &stationMock{}

	require.Equal(t, SourceGasStation, FeeSourceFactory(polygon, client, station, false).Name())
	require.Equal(t, SourceNode, FeeSourceFactory(polygon, client, station, true).Name())
	require.Equal(t, SourceNode, FeeSourceFactory(polygon, client, nil, false).Name())
	require.Equal(t, SourceNode, FeeSourceFactory(ethereum, client, station, false).Name())
}

func TestFeePollerKeepsSnapshotOnError(t *testing.T) {
	src := &feeSourceMock{
		snapshots: []*Snapshot{{GasPrice: 50, MaxFeePerGas: 80, MaxPriorityFeePerGas: 2}, nil},
		errs:      []error{nil, errors.New("timeout")},
	}
	poller := NewFeePoller(src, time.Minute, time.Second, lib.NewTestLogger())
	require.Nil(t, poller.Snapshot())

	require.NoError(t, poller.Poll(context.Background()))
	first := poller.Snapshot()
	require.NotNil(t, first)
	require.Equal(t, "mock", first.Source)

	require.Error(t, poller.Poll(context.Background()))
	require.Same(t, first, poller.Snapshot())

	// selection only depends on the snapshot
	cfg := NewService(mainnet, poller).GasConfig(dynamicWallet)
	require.Equal(t, "80000000000", cfg.MaxFeePerGas.String())
}

func TestFeePollerRun(t *testing.T) {
	src := &feeSourceMock{
		snapshots: []*Snapshot{{GasPrice: 1}},
		errs:      []error{nil},
	}
	poller := NewFeePoller(src, 10*time.Millisecond, time.Second, lib.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- poller.Run(ctx) }()

	require.Eventually(t, func() bool { return src.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
	require.NotNil(t, poller.Snapshot())
}
