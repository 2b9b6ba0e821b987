package httphandlers

type Resource struct {
	Self string
}

type ConfigResponse struct {
	Version string
	Network string
	Lockers []string
	Config  interface{}
}

type Position struct {
	Resource

	Locker         string
	Owner          string
	Timestamp      uint64
	Staked         string
	Locked         string
	Unlocked       string
	PendingRewards string
	YearlyReturn   string
	APR            string
	Locks          []Lock
}

type Lock struct {
	ID             string
	Amount         string
	End            uint64
	TimeLeft       uint64
	Locked         bool
	BoostedValue   string
	PendingRewards string
	YearlyReturn   string
	APR            string
}

// GasConfig is consumed by the transaction builder as is, keys must match the tx overrides object
type GasConfig struct {
	GasPrice             *string `json:"gasPrice,omitempty"`
	MaxFeePerGas         *string `json:"maxFeePerGas,omitempty"`
	MaxPriorityFeePerGas *string `json:"maxPriorityFeePerGas,omitempty"`
	Type                 *uint8  `json:"type,omitempty"`
}

// Snapshot values are in gwei
type Snapshot struct {
	ChainID              int64
	Network              string
	Source               string
	GasPrice             float64
	MaxFeePerGas         float64
	MaxPriorityFeePerGas float64
	FetchedAt            string
}
