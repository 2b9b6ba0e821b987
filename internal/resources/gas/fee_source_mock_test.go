package gas

import (
	"context"
	"sync/atomic"
)

type feeSourceMock struct {
	snapshots []*Snapshot
	errs      []error
	calls     atomic.Int64
}

func (m *feeSourceMock) Name() string {
	return "mock"
}

func (m *feeSourceMock) FeeSnapshot(ctx context.Context) (*Snapshot, error) {
	i := int(m.calls.Add(1) - 1)
	if i >= len(m.snapshots) {
		i = len(m.snapshots) - 1
	}
	if m.errs[i] != nil {
		return nil, m.errs[i]
	}
	snap := *m.snapshots[i]
	return &snap, nil
}

type stationMock struct {
	maxFee, maxPriorityFee float64
	err                    error
}

func (m *stationMock) StandardFee(ctx context.Context) (float64, float64, error) {
	return m.maxFee, m.maxPriorityFee, m.err
}
