package lib

import (
	"math"
	"math/big"
)

const GweiDecimals = 9

var gwei = big.NewFloat(math.Pow10(GweiDecimals))

// GweiToWei converts a gwei amount to wei rounding to the nearest integer, negative values become zero
func GweiToWei(amountGwei float64) *big.Int {
	if amountGwei <= 0 || math.IsNaN(amountGwei) {
		return new(big.Int)
	}
	wei, _ := new(big.Float).SetFloat64(math.Round(amountGwei * math.Pow10(GweiDecimals))).Int(nil)
	return wei
}

func WeiToGwei(amountWei *big.Int) float64 {
	if amountWei == nil {
		return 0
	}
	res, _ := new(big.Float).Quo(new(big.Float).SetInt(amountWei), gwei).Float64()
	return res
}
