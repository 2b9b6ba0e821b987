package gas

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/exp/slices"
)

type Wallet struct {
	Name             string
	SupportedTxTypes []uint8
}

func (w Wallet) SupportsTxType(txType uint8) bool {
	return slices.Contains(w.SupportedTxTypes, txType)
}

var wallets = []Wallet{
	{Name: "metamask", SupportedTxTypes: []uint8{types.LegacyTxType, types.DynamicFeeTxType}},
	{Name: "coinbase-wallet", SupportedTxTypes: []uint8{types.LegacyTxType, types.DynamicFeeTxType}},
	{Name: "walletconnect", SupportedTxTypes: []uint8{types.LegacyTxType}},
	{Name: "ledger", SupportedTxTypes: []uint8{types.LegacyTxType, types.DynamicFeeTxType}},
	{Name: "trezor", SupportedTxTypes: []uint8{types.LegacyTxType}},
	{Name: "gnosis-safe", SupportedTxTypes: []uint8{types.LegacyTxType}},
}

// WalletByName looks up a wallet connector, case insensitive
func WalletByName(name string) (*Wallet, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, w := range wallets {
		if w.Name == name {
			w := w
			return &w, true
		}
	}
	return nil, false
}

// ParseTxTypes parses a comma separated list of transaction types, e.g. "0,2"
func ParseTxTypes(s string) ([]uint8, error) {
	var res []uint8
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("invalid tx type %q: %w", part, err)
		}
		res = append(res, uint8(v))
	}
	return res, nil
}
