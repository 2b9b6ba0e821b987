package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("ETH_NODE_ADDRESS", "https://env.example.com")
	t.Setenv("GAS_POLL_INTERVAL", "30s")
	t.Setenv("XSLOCKER_ADDRESS", "0x501AcE47c5b0C2099C4464f681c3fa2ECD3146C1")

	var cfg Config
	err := LoadConfig(&cfg, []string{"app", "--eth-node-address", "https://flag.example.com", "--lockers-concurrency", "4"})
	require.NoError(t, err)

	require.Equal(t, "https://flag.example.com", cfg.Blockchain.EthNodeAddress)
	require.Equal(t, 30*time.Second, cfg.Gas.PollInterval)
	require.Equal(t, 4, cfg.Lockers.Concurrency)
	require.Equal(t, "0x501AcE47c5b0C2099C4464f681c3fa2ECD3146C1", cfg.Lockers.XsLockerAddress)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ETH_NODE_ADDRESS", "https://env.example.com")

	var cfg Config
	err := LoadConfig(&cfg, []string{"app"})
	require.NoError(t, err)

	require.Equal(t, time.Minute, cfg.Gas.PollInterval)
	require.Equal(t, uint(3), cfg.Blockchain.RetryAttempts)
	require.Equal(t, "0.0.0.0:8080", cfg.Web.Address)
	require.Equal(t, "http://0.0.0.0:8080", cfg.Web.PublicUrl)
	require.Equal(t, "development", cfg.Environment)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv("ETH_NODE_ADDRESS", "https://env.example.com")
	t.Setenv("UWLOCKER_ADDRESS", "not-an-address")

	var cfg Config
	err := LoadConfig(&cfg, []string{"app"})
	require.ErrorIs(t, err, ErrConfigValidation)
}

func TestGetSanitizedHidesNodeAddress(t *testing.T) {
	cfg := Config{}
	cfg.Blockchain.EthNodeAddress = "https://mainnet.infura.io/v3/secret"
	cfg.SetDefaults()

	sanitized := cfg.GetSanitized().(Config)
	require.Empty(t, sanitized.Blockchain.EthNodeAddress)
	require.Equal(t, cfg.Gas.PollInterval, sanitized.Gas.PollInterval)
}
