package config

import (
	"time"
)

// BuildVersion is set with ldflags at build time
var BuildVersion = "0.0.0-dev"

// Validation tags described here: https://pkg.go.dev/github.com/go-playground/validator/v10
type Config struct {
	Blockchain struct {
		EthNodeAddress string        `env:"ETH_NODE_ADDRESS"   flag:"eth-node-address"   validate:"required,url"`
		RetryAttempts  uint          `env:"ETH_RETRY_ATTEMPTS" flag:"eth-retry-attempts" validate:"omitempty,gte=0"     desc:"attempts per chain read before giving up, includes the first one"`
		RetryDelay     time.Duration `env:"ETH_RETRY_DELAY"    flag:"eth-retry-delay"    validate:"omitempty,gte=0"   desc:"initial delay between chain read retries, doubles on every attempt"`
		RetryMaxDelay  time.Duration `env:"ETH_RETRY_MAX_DELAY" flag:"eth-retry-max-delay" validate:"omitempty,gte=0" desc:"upper bound for the delay between chain read retries"`
		ReadTimeout    time.Duration `env:"ETH_READ_TIMEOUT"   flag:"eth-read-timeout"   validate:"omitempty,gte=0"   desc:"timeout for a whole position aggregation"`
	}
	Environment string `env:"ENVIRONMENT" flag:"environment"`
	Gas         struct {
		PollInterval      time.Duration `env:"GAS_POLL_INTERVAL"       flag:"gas-poll-interval"       validate:"omitempty,gte=0" desc:"interval between fee snapshot refreshes"`
		RequestTimeout    time.Duration `env:"GAS_REQUEST_TIMEOUT"     flag:"gas-request-timeout"     validate:"omitempty,gte=0" desc:"timeout of a single fee snapshot refresh"`
		GasStationURL     string        `env:"GAS_STATION_URL"         flag:"gas-station-url"         validate:"omitempty,url"      desc:"fee station endpoint for networks that do not use node fee estimation"`
		DisableGasStation bool          `env:"GAS_DISABLE_GAS_STATION" flag:"gas-disable-gas-station"                               desc:"always use node fee estimation"`
	}
	Lockers struct {
		XsLockerAddress       string `env:"XSLOCKER_ADDRESS"        flag:"xslocker-address"        validate:"omitempty,eth_addr"`
		StakingRewardsAddress string `env:"STAKING_REWARDS_ADDRESS" flag:"staking-rewards-address" validate:"omitempty,eth_addr" desc:"rewards ledger of xslocker locks"`
		UwLockerAddress       string `env:"UWLOCKER_ADDRESS"        flag:"uwlocker-address"        validate:"omitempty,eth_addr"`
		MaxLocksPerOwner      int    `env:"LOCKERS_MAX_LOCKS"       flag:"lockers-max-locks"       validate:"omitempty,gte=0"   desc:"refuse to aggregate owners holding more locks than this"`
		Concurrency           int    `env:"LOCKERS_CONCURRENCY"     flag:"lockers-concurrency"     validate:"omitempty,gte=0"   desc:"max parallel lock detail reads per aggregation"`
	}
	Log struct {
		Color      bool   `env:"LOG_COLOR"       flag:"log-color"`
		FolderPath string `env:"LOG_FOLDER_PATH" flag:"log-folder-path" validate:"omitempty,dirpath" desc:"enables file logging and sets the folder path"`
		IsProd     bool   `env:"LOG_IS_PROD"     flag:"log-is-prod"     validate:""                  desc:"affects the format of the log output"`
		JSON       bool   `env:"LOG_JSON"        flag:"log-json"`
		LevelApp   string `env:"LOG_LEVEL_APP"   flag:"log-level-app"   validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
		LevelRPC   string `env:"LOG_LEVEL_RPC"   flag:"log-level-rpc"   validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
		LevelGas   string `env:"LOG_LEVEL_GAS"   flag:"log-level-gas"   validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
		LevelHTTP  string `env:"LOG_LEVEL_HTTP"  flag:"log-level-http"  validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	}
	Web struct {
		Address   string `env:"WEB_ADDRESS"    flag:"web-address"    validate:"required,hostname_port" desc:"http server address host:port"`
		PublicUrl string `env:"WEB_PUBLIC_URL" flag:"web-public-url" validate:"omitempty,url"          desc:"public url of the service, falls back to web-address if empty"`
	}
}

func (cfg *Config) SetDefaults() {
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// Blockchain

	if cfg.Blockchain.RetryAttempts == 0 {
		cfg.Blockchain.RetryAttempts = 3
	}
	if cfg.Blockchain.RetryDelay == 0 {
		cfg.Blockchain.RetryDelay = 200 * time.Millisecond
	}
	if cfg.Blockchain.RetryMaxDelay == 0 {
		cfg.Blockchain.RetryMaxDelay = 5 * time.Second
	}
	if cfg.Blockchain.ReadTimeout == 0 {
		cfg.Blockchain.ReadTimeout = 30 * time.Second
	}

	// Gas

	if cfg.Gas.PollInterval == 0 {
		cfg.Gas.PollInterval = time.Minute
	}
	if cfg.Gas.RequestTimeout == 0 {
		cfg.Gas.RequestTimeout = 10 * time.Second
	}
	if cfg.Gas.GasStationURL == "" {
		cfg.Gas.GasStationURL = "https://gasstation.polygon.technology/v2"
	}

	// Lockers

	if cfg.Lockers.MaxLocksPerOwner == 0 {
		cfg.Lockers.MaxLocksPerOwner = 1000
	}
	if cfg.Lockers.Concurrency == 0 {
		cfg.Lockers.Concurrency = 16
	}

	// Log

	if cfg.Log.LevelApp == "" {
		cfg.Log.LevelApp = "debug"
	}
	if cfg.Log.LevelRPC == "" {
		cfg.Log.LevelRPC = "info"
	}
	if cfg.Log.LevelGas == "" {
		cfg.Log.LevelGas = "info"
	}
	if cfg.Log.LevelHTTP == "" {
		cfg.Log.LevelHTTP = "info"
	}

	// Web

	if cfg.Web.Address == "" {
		cfg.Web.Address = "0.0.0.0:8080"
	}
	if cfg.Web.PublicUrl == "" {
		cfg.Web.PublicUrl = "http://" + cfg.Web.Address
	}
}

// GetSanitized returns a copy of the config with sensitive data removed
// explicitly adding each field here to avoid accidentally leaking sensitive data
// (node url usually embeds an api key)
func (cfg *Config) GetSanitized() interface{} {
	publicCfg := Config{}

	publicCfg.Blockchain.RetryAttempts = cfg.Blockchain.RetryAttempts
	publicCfg.Blockchain.RetryDelay = cfg.Blockchain.RetryDelay
	publicCfg.Blockchain.RetryMaxDelay = cfg.Blockchain.RetryMaxDelay
	publicCfg.Blockchain.ReadTimeout = cfg.Blockchain.ReadTimeout
	publicCfg.Environment = cfg.Environment

	publicCfg.Gas.PollInterval = cfg.Gas.PollInterval
	publicCfg.Gas.RequestTimeout = cfg.Gas.RequestTimeout
	publicCfg.Gas.GasStationURL = cfg.Gas.GasStationURL
	publicCfg.Gas.DisableGasStation = cfg.Gas.DisableGasStation

	publicCfg.Lockers.XsLockerAddress = cfg.Lockers.XsLockerAddress
	publicCfg.Lockers.StakingRewardsAddress = cfg.Lockers.StakingRewardsAddress
	publicCfg.Lockers.UwLockerAddress = cfg.Lockers.UwLockerAddress
	publicCfg.Lockers.MaxLocksPerOwner = cfg.Lockers.MaxLocksPerOwner
	publicCfg.Lockers.Concurrency = cfg.Lockers.Concurrency

	publicCfg.Log.Color = cfg.Log.Color
	publicCfg.Log.FolderPath = cfg.Log.FolderPath
	publicCfg.Log.IsProd = cfg.Log.IsProd
	publicCfg.Log.JSON = cfg.Log.JSON
	publicCfg.Log.LevelApp = cfg.Log.LevelApp
	publicCfg.Log.LevelRPC = cfg.Log.LevelRPC
	publicCfg.Log.LevelGas = cfg.Log.LevelGas
	publicCfg.Log.LevelHTTP = cfg.Log.LevelHTTP

	publicCfg.Web.Address = cfg.Web.Address
	publicCfg.Web.PublicUrl = cfg.Web.PublicUrl

	return publicCfg
}
