package httphandlers

import (
	"context"
	"net/url"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/solace-fi/solace-client-sub001/internal/config"
	"github.com/solace-fi/solace-client-sub001/internal/interfaces"
	"github.com/solace-fi/solace-client-sub001/internal/networks"
	"github.com/solace-fi/solace-client-sub001/internal/resources/gas"
	"github.com/solace-fi/solace-client-sub001/internal/resources/locks"
)

type PositionService interface {
	GetPosition(ctx context.Context, locker string, owner common.Address) (*locks.Position, error)
	Lockers() []string
}

type GasService interface {
	GasConfig(wallet *gas.Wallet) gas.Config
	Snapshot() *gas.Snapshot
	Network() networks.Network
}

type Sanitizable interface {
	GetSanitized() interface{}
}

type HTTPHandler struct {
	positions PositionService
	gas       GasService
	config    Sanitizable
	publicUrl *url.URL
	startedAt time.Time
	log       interfaces.ILogger
}

func NewHTTPHandler(positions PositionService, gasService GasService, cfg Sanitizable, publicUrl *url.URL, log interfaces.ILogger) *gin.Engine {
	handl := &HTTPHandler{
		positions: positions,
		gas:       gasService,
		config:    cfg,
		publicUrl: publicUrl,
		startedAt: time.Now(),
		log:       log,
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(log))

	r.GET("/healthcheck", handl.HealthCheck)
	r.GET("/config", handl.GetConfig)
	r.GET("/locks/:locker/:address", handl.GetPosition)
	r.GET("/gas", handl.GetGasConfig)
	r.GET("/gas/snapshot", handl.GetGasSnapshot)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	err := r.SetTrustedProxies(nil)
	if err != nil {
		panic(err)
	}

	return r
}

func (h *HTTPHandler) HealthCheck(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"status":  "healthy",
		"version": config.BuildVersion,
		"uptime":  time.Since(h.startedAt).Round(time.Second).String(),
		"chainId": h.gas.Network().ChainID,
	})
}
