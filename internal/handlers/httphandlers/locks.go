package httphandlers

import (
	"errors"
	"fmt"
	"math/big"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/solace-fi/solace-client-sub001/internal/resources/locks"
)

func (h *HTTPHandler) GetPosition(ctx *gin.Context) {
	locker := ctx.Param("locker")
	address := ctx.Param("address")
	if !common.IsHexAddress(address) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid address"})
		return
	}
	owner := common.HexToAddress(address)

	pos, err := h.positions.GetPosition(ctx.Request.Context(), locker, owner)
	if errors.Is(err, locks.ErrUnknownLocker) {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		_ = ctx.Error(err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, h.mapPosition(locker, pos))
}

func (h *HTTPHandler) mapPosition(locker string, pos *locks.Position) *Position {
	res := &Position{
		Resource: Resource{
			Self: h.publicUrl.JoinPath(fmt.Sprintf("/locks/%s/%s", locker, pos.Owner.Hex())).String(),
		},
		Locker:         locker,
		Owner:          pos.Owner.Hex(),
		Timestamp:      pos.Timestamp,
		Staked:         formatAmount(pos.Staked),
		Locked:         formatAmount(pos.Locked),
		Unlocked:       formatAmount(pos.Unlocked),
		PendingRewards: formatAmount(pos.PendingRewards),
		YearlyReturn:   formatAmount(pos.YearlyReturn),
		APR:            formatAmount(pos.APR),
		Locks:          make([]Lock, 0, len(pos.Locks)),
	}

	for _, l := range pos.Locks {
		res.Locks = append(res.Locks, Lock{
			ID:             formatAmount(l.ID),
			Amount:         formatAmount(l.Amount),
			End:            l.End,
			TimeLeft:       l.TimeLeft,
			Locked:         l.Locked,
			BoostedValue:   formatAmount(l.BoostedValue),
			PendingRewards: formatAmount(l.PendingRewards),
			YearlyReturn:   formatAmount(l.YearlyReturn),
			APR:            formatAmount(l.APR),
		})
	}
	return res
}

func formatAmount(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}
