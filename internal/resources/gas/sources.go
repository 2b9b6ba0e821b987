package gas

import (
	"context"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/solace-fi/solace-client-sub001/internal/lib"
	"github.com/solace-fi/solace-client-sub001/internal/networks"
)

const (
	SourceNode       = "node"
	SourceGasStation = "gasstation"
)

var ErrNoHeader = errors.New("node returned empty header")

type FeeSource interface {
	Name() string
	FeeSnapshot(ctx context.Context) (*Snapshot, error)
}

type FeeClient interface {
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error)
}

// ChainFeeSource estimates fees with the node the same way ethers getFeeData does:
// maxFeePerGas = 2 * baseFee + maxPriorityFeePerGas
type ChainFeeSource struct {
	client FeeClient
}

func NewChainFeeSource(client FeeClient) *ChainFeeSource {
	return &ChainFeeSource{client: client}
}

func (s *ChainFeeSource) Name() string {
	return SourceNode
}

func (s *ChainFeeSource) FeeSnapshot(ctx context.Context) (*Snapshot, error) {
	gasPrice, err := s.client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, err
	}

	header, err := s.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, ErrNoHeader
	}

	snap := &Snapshot{GasPrice: lib.WeiToGwei(gasPrice)}

	// pre-london chains have no base fee
	if header.BaseFee == nil {
		return snap, nil
	}

	tip, err := s.client.SuggestGasTipCap(ctx)
	if err != nil {
		return nil, err
	}
	maxFee := new(big.Int).Mul(header.BaseFee, big.NewInt(2))
	maxFee.Add(maxFee, tip)

	snap.MaxFeePerGas = lib.WeiToGwei(maxFee)
	snap.MaxPriorityFeePerGas = lib.WeiToGwei(tip)
	return snap, nil
}

type StandardFeeFetcher interface {
	StandardFee(ctx context.Context) (maxFee float64, maxPriorityFee float64, err error)
}

// GasStationFeeSource takes fees from an http fee station, used where node estimation underprices
type GasStationFeeSource struct {
	station StandardFeeFetcher
}

func NewGasStationFeeSource(station StandardFeeFetcher) *GasStationFeeSource {
	return &GasStationFeeSource{station: station}
}

func (s *GasStationFeeSource) Name() string {
	return SourceGasStation
}

func (s *GasStationFeeSource) FeeSnapshot(ctx context.Context) (*Snapshot, error) {
	maxFee, maxPriorityFee, err := s.station.StandardFee(ctx)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		GasPrice:             maxFee,
		MaxFeePerGas:         maxFee,
		MaxPriorityFeePerGas: maxPriorityFee,
	}, nil
}

// FeeSourceFactory picks the fee source for the network
func FeeSourceFactory(network networks.Network, client FeeClient, station StandardFeeFetcher, disableStation bool) FeeSource {
	if network.UseGasStation && station != nil && !disableStation {
		return NewGasStationFeeSource(station)
	}
	return NewChainFeeSource(client)
}
