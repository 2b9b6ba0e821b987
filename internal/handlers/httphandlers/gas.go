package httphandlers

import (
	"math/big"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solace-fi/solace-client-sub001/internal/resources/gas"
)

// GetGasConfig resolves the wallet by name or by an explicit list of supported tx types.
// An unknown wallet yields an empty object
func (h *HTTPHandler) GetGasConfig(ctx *gin.Context) {
	var wallet *gas.Wallet

	if name := ctx.Query("wallet"); name != "" {
		wallet, _ = gas.WalletByName(name)
	} else if typesStr, ok := ctx.GetQuery("txTypes"); ok {
		txTypes, err := gas.ParseTxTypes(typesStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		wallet = &gas.Wallet{Name: "custom", SupportedTxTypes: txTypes}
	}

	ctx.JSON(http.StatusOK, mapGasConfig(h.gas.GasConfig(wallet)))
}

func (h *HTTPHandler) GetGasSnapshot(ctx *gin.Context) {
	snap := h.gas.Snapshot()
	if snap == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "no fee data yet"})
		return
	}

	network := h.gas.Network()
	ctx.JSON(http.StatusOK, Snapshot{
		ChainID:              network.ChainID,
		Network:              network.Name,
		Source:               snap.Source,
		GasPrice:             snap.GasPrice,
		MaxFeePerGas:         snap.MaxFeePerGas,
		MaxPriorityFeePerGas: snap.MaxPriorityFeePerGas,
		FetchedAt:            snap.FetchedAt.UTC().Format(time.RFC3339),
	})
}

func mapGasConfig(cfg gas.Config) GasConfig {
	res := GasConfig{
		GasPrice:             formatOptional(cfg.GasPrice),
		MaxFeePerGas:         formatOptional(cfg.MaxFeePerGas),
		MaxPriorityFeePerGas: formatOptional(cfg.MaxPriorityFeePerGas),
	}
	if cfg.Type != nil {
		t := *cfg.Type
		res.Type = &t
	}
	return res
}

func formatOptional(v *big.Int) *string {
	if v == nil {
		return nil
	}
	s := v.String()
	return &s
}
