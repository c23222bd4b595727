package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"hermes/api/grpcserver"
	pb "hermes/api/tradingpb"
	"hermes/config"
	"hermes/infra/kafka"
	"hermes/infra/sequence"
	entrywal "hermes/infra/wal/entry"
	exitwal "hermes/infra/wal/exit"
	"hermes/jobs/broadcaster"
	"hermes/jobs/depthfeed"
	"hermes/matching"
	"hermes/service"
)

func main() {
	cfg := config.Load("")

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// ---------------- Entry WAL ----------------

	entryWAL, err := entrywal.Open(entrywal.Config{
		Dir:         cfg.EntryWALDir,
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		logger.Fatal("entry WAL init failed", zap.Error(err))
	}
	defer entryWAL.Close()

	// ---------------- Exit WAL ----------------

	exitWAL, err := exitwal.Open(cfg.ExitWALDir)
	if err != nil {
		logger.Fatal("exit WAL init failed", zap.Error(err))
	}
	defer exitWAL.Close()

	// ---------------- Matching ----------------

	seqGen := sequence.New(0)
	registry := matching.NewRegistry(seqGen)
	for _, instrument := range cfg.Instruments {
		registry.Provision(instrument)
	}

	// ---------------- Recovery ----------------

	watermarks, err := service.RestoreSnapshots(cfg.SnapshotDir, registry, seqGen, logger)
	if err != nil {
		logger.Fatal("snapshot restore failed", zap.Error(err))
	}
	if err := service.ReplayFromWAL(cfg.EntryWALDir, registry, seqGen, watermarks, logger); err != nil {
		logger.Fatal("WAL replay failed", zap.Error(err))
	}

	// ---------------- Service ----------------

	svc := service.NewOrderService(registry, entryWAL, exitWAL, logger)

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotInterval)

	if len(cfg.KafkaBrokers) > 0 {
		bc, err := broadcaster.New(
			exitWAL, cfg.KafkaBrokers, cfg.TradesTopic, cfg.BroadcastInterval, logger,
		)
		if err != nil {
			logger.Fatal("broadcaster init failed", zap.Error(err))
		}
		defer bc.Close()
		bc.Start(ctx)

		depthProducer := kafka.NewProducer(cfg.KafkaBrokers, cfg.DepthTopic)
		defer depthProducer.Close()

		feed := depthfeed.New(svc, depthProducer, cfg.DepthLevels, cfg.DepthInterval, logger)
		feed.Start(ctx)
	} else {
		logger.Info("no Kafka brokers configured, market data jobs disabled")
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("listen failed", zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterTradingEngineServer(
		grpcSrv,
		grpcserver.NewServer(svc, cfg.PriceScale, logger),
	)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		cancel()
		grpcSrv.GracefulStop()
	}()

	logger.Info("hermes engine running",
		zap.String("addr", cfg.GRPCAddr),
		zap.Strings("instruments", cfg.Instruments),
	)

	if err := grpcSrv.Serve(lis); err != nil {
		logger.Fatal("gRPC server exited", zap.Error(err))
	}
}
