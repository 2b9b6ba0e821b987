package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/solace-fi/solace-client-sub001/internal/config"
	"github.com/solace-fi/solace-client-sub001/internal/handlers/httphandlers"
	"github.com/solace-fi/solace-client-sub001/internal/interfaces"
	"github.com/solace-fi/solace-client-sub001/internal/lib"
	"github.com/solace-fi/solace-client-sub001/internal/networks"
	"github.com/solace-fi/solace-client-sub001/internal/repositories/contracts"
	"github.com/solace-fi/solace-client-sub001/internal/repositories/gasstation"
	"github.com/solace-fi/solace-client-sub001/internal/resources/gas"
	"github.com/solace-fi/solace-client-sub001/internal/resources/locks"
)

func main() {
	// .env is optional, real environment takes precedence
	_ = godotenv.Load()

	var cfg config.Config
	err := config.LoadConfig(&cfg, os.Args)
	if err != nil {
		panic(err)
	}

	log := mustLogger(cfg, cfg.Log.LevelApp, "app.log")
	rpcLog := mustLogger(cfg, cfg.Log.LevelRPC, "rpc.log")
	gasLog := mustLogger(cfg, cfg.Log.LevelGas, "gas.log")
	httpLog := mustLogger(cfg, cfg.Log.LevelHTTP, "http.log")

	defer func() {
		_ = log.Sync()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		s := <-shutdownChan
		log.Warnf("Received signal: %s", s)
		cancel()

		s = <-shutdownChan
		log.Warnf("Received signal: %s. Forcing exit...", s)
		os.Exit(1)
	}()

	log.Infof("starting position router %s", config.BuildVersion)

	client, err := contracts.DialContext(ctx, cfg.Blockchain.EthNodeAddress)
	if err != nil {
		log.Fatalf("failed to connect to node: %s", err)
	}
	defer client.Close()

	chainID, err := client.ChainID(ctx)
	if err != nil {
		log.Fatalf("failed to get chain id: %s", err)
	}
	network, ok := networks.ByChainID(chainID.Int64())
	if !ok {
		log.Fatalf("unsupported chain id %s", chainID)
	}
	log.Infof("connected to %s, chain id %d, node %s", network.Name, network.ChainID, client.Host())

	retrier := contracts.NewRetrier(contracts.RetryPolicy{
		Attempts: cfg.Blockchain.RetryAttempts,
		Delay:    cfg.Blockchain.RetryDelay,
		MaxDelay: cfg.Blockchain.RetryMaxDelay,
	}, rpcLog.Named("RETRY"))
	clock := contracts.NewRetryingClock(contracts.NewHeadClock(client), retrier)
	aggregatorCfg := locks.AggregatorConfig{
		MaxLocks:    cfg.Lockers.MaxLocksPerOwner,
		Concurrency: cfg.Lockers.Concurrency,
	}

	positions := locks.NewService(cfg.Blockchain.ReadTimeout, log.Named("LOCKS"))

	if cfg.Lockers.XsLockerAddress != "" {
		lockReader := contracts.NewRetryingLockReader(contracts.NewLockerEthereum(common.HexToAddress(cfg.Lockers.XsLockerAddress), client), retrier)

		// locks.RewardsReader must stay a nil interface when there is no ledger
		var rewards locks.RewardsReader
		if cfg.Lockers.StakingRewardsAddress != "" {
			rewards = contracts.NewRetryingRewardsReader(contracts.NewRewardsEthereum(common.HexToAddress(cfg.Lockers.StakingRewardsAddress), client), retrier)
		}
		positions.Register(locks.LockerXsLocker, locks.NewAggregator(lockReader, rewards, clock, aggregatorCfg))
		log.Infof("xslocker registered %s, rewards ledger %t", cfg.Lockers.XsLockerAddress, rewards != nil)
	}
	if cfg.Lockers.UwLockerAddress != "" {
		lockReader := contracts.NewRetryingLockReader(contracts.NewLockerEthereum(common.HexToAddress(cfg.Lockers.UwLockerAddress), client), retrier)
		positions.Register(locks.LockerUwLocker, locks.NewAggregator(lockReader, nil, clock, aggregatorCfg))
		log.Infof("uwlocker registered %s", cfg.Lockers.UwLockerAddress)
	}
	if len(positions.Lockers()) == 0 {
		log.Warnf("no lockers configured, positions are not available")
	}

	station := gasstation.NewClient(cfg.Gas.GasStationURL, &http.Client{Timeout: cfg.Gas.RequestTimeout})
	feeSource := gas.FeeSourceFactory(network, client, station, cfg.Gas.DisableGasStation)
	poller := gas.NewFeePoller(feeSource, cfg.Gas.PollInterval, cfg.Gas.RequestTimeout, gasLog.Named("FEE"))
	gasService := gas.NewService(network, poller)

	pollerTask := lib.NewTask("fee-poller", poller)
	err = pollerTask.Start(ctx)
	if err != nil {
		log.Fatalf("failed to start fee poller: %s", err)
	}

	publicUrl := lib.MustParseURL(cfg.Web.PublicUrl)
	handl := httphandlers.NewHTTPHandler(positions, gasService, &cfg, publicUrl, httpLog.Named("HTTP"))

	server := &http.Server{
		Addr:              cfg.Web.Address,
		Handler:           handl,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof("http server is listening: %s", cfg.Web.Address)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("http server failed: %s", err)
			cancel()
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Warnf("http server shutdown: %s", err)
	}

	<-pollerTask.Stop()
	log.Infof("App exited due to %s", ctx.Err())
}

func mustLogger(cfg config.Config, level string, fileName string) interfaces.ILogger {
	var filePath string
	if cfg.Log.FolderPath != "" {
		filePath = filepath.Join(cfg.Log.FolderPath, fileName)
	}

	log, err := lib.NewLogger(lib.LoggerConfig{
		Level:    level,
		Color:    cfg.Log.Color,
		IsProd:   cfg.Log.IsProd,
		JSON:     cfg.Log.JSON,
		FilePath: filePath,
	})
	if err != nil {
		panic(err)
	}
	return log
}
