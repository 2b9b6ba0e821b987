package gas

import (
	"github.com/solace-fi/solace-client-sub001/internal/networks"
)

type SnapshotProvider interface {
	Snapshot() *Snapshot
}

type Service struct {
	network   networks.Network
	snapshots SnapshotProvider
}

func NewService(network networks.Network, snapshots SnapshotProvider) *Service {
	return &Service{network: network, snapshots: snapshots}
}

func (s *Service) Network() networks.Network {
	return s.network
}

func (s *Service) Snapshot() *Snapshot {
	return s.snapshots.Snapshot()
}

func (s *Service) GasConfig(wallet *Wallet) Config {
	return Select(s.network, wallet, s.snapshots.Snapshot())
}
