package httphandlers

import (
	"github.com/gin-gonic/gin"
	"github.com/solace-fi/solace-client-sub001/internal/config"
)

func (h *HTTPHandler) GetConfig(ctx *gin.Context) {
	ctx.JSON(200, ConfigResponse{
		Version: config.BuildVersion,
		Network: h.gas.Network().Name,
		Lockers: h.positions.Lockers(),
		Config:  h.config.GetSanitized(),
	})
}
