package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	grpc_adapter "github.com/JoeShih716/go-joint-ledger/internal/app/core/adapter/in/grpc"
	memory_adapter "github.com/JoeShih716/go-joint-ledger/internal/app/core/adapter/out/memory"
	mysql_adapter "github.com/JoeShih716/go-joint-ledger/internal/app/core/adapter/out/mysql"
	sqlite_adapter "github.com/JoeShih716/go-joint-ledger/internal/app/core/adapter/out/sqlite"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/domain"
	"github.com/JoeShih716/go-joint-ledger/internal/app/core/usecase"
	"github.com/JoeShih716/go-joint-ledger/pkg/auth"
	"github.com/JoeShih716/go-joint-ledger/pkg/logger"
	"github.com/JoeShih716/go-joint-ledger/pkg/mysql"
	"github.com/JoeShih716/go-joint-ledger/pkg/wal"
	pb "github.com/JoeShih716/go-joint-ledger/proto"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	flag.Parse()

	// 1. 載入設定
	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Fatal("server exited with error", zap.Error(err))
	}
	log.Info("server exited")
}

func run(cfg Config, log *zap.Logger) error {
	// 2. Tracing
	tp, err := newTracerProvider(context.Background(), cfg.Tracing)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	otel.SetTracerProvider(tp)
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
	}()

	// 3. 載入快照 (MySQL 未啟用時從空狀態開始，只靠 WAL 恢復)
	var snapshotStore usecase.SnapshotStore
	state := domain.NewState(cfg.Rules)
	if cfg.MySQL.Enabled {
		dbClient, err := mysql.NewClient(cfg.MySQL, log)
		if err != nil {
			return fmt.Errorf("connect mysql: %w", err)
		}
		defer dbClient.Close()
		log.Info("connected to mysql", zap.String("host", cfg.MySQL.Host))

		store := mysql_adapter.NewSnapshotStore(dbClient)
		if err := store.Migrate(context.Background()); err != nil {
			return fmt.Errorf("migrate snapshot tables: %w", err)
		}
		snap, err := store.LoadSnapshot(context.Background())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap != nil {
			state, err = domain.RestoreState(cfg.Rules, snap)
			if err != nil {
				return fmt.Errorf("restore snapshot: %w", err)
			}
			log.Info("snapshot loaded",
				zap.Uint64("seq", snap.Sequence),
				zap.Int("accounts", len(snap.Accounts)),
			)
		}
		snapshotStore = store
	}

	// 4. 事件紀錄與即時推送，需在帳本恢復之前啟動 (WAL 重放會發送事件)
	eventLog, err := sqlite_adapter.Open(cfg.Events.LogPath)
	if err != nil {
		return fmt.Errorf("open event log: %w", err)
	}
	defer eventLog.Close()
	if last, err := eventLog.LastSequence(context.Background()); err == nil {
		log.Info("event log opened", zap.String("path", cfg.Events.LogPath), zap.Uint64("last_seq", last))
	}
	bus := memory_adapter.NewEventBus()
	dispatcher := usecase.NewDispatcher(log.Named("dispatcher"), cfg.Events.BufferSize, eventLog, bus)
	// 快照之前的事件已在上次執行時送出
	dispatcher.Resume(state.Sequence())
	go dispatcher.Run(context.Background())
	defer dispatcher.Close()

	// 5. 初始化 WAL 與帳本
	walFile, err := wal.NewWAL(cfg.Engine.WALPath)
	if err != nil {
		return fmt.Errorf("init wal: %w", err)
	}
	defer walFile.Close()

	ledgerOpts := []memory_adapter.Option{
		memory_adapter.WithWAL(walFile),
		memory_adapter.WithCommitHook(dispatcher.Enqueue),
		memory_adapter.WithLogger(log.Named("ledger")),
	}
	engineCtx, stopEngine := context.WithCancel(context.Background())
	defer stopEngine()

	var (
		usedLedger usecase.Ledger
		stopLedger = func() {}
	)
	switch cfg.Engine.Type {
	case LedgerTypeMutex:
		mutexLedger, err := memory_adapter.NewMutexLedger(state, ledgerOpts...)
		if err != nil {
			return fmt.Errorf("init mutex ledger: %w", err)
		}
		usedLedger = mutexLedger
	case LedgerTypeLMAX:
		lmaxLedger, err := memory_adapter.NewLMAXLedger(state, cfg.Engine.BufferSize, ledgerOpts...)
		if err != nil {
			return fmt.Errorf("init lmax ledger: %w", err)
		}
		lmaxLedger.Start(engineCtx)
		usedLedger = lmaxLedger
		stopLedger = func() {
			stopEngine()
			<-lmaxLedger.Done()
		}
	default:
		return fmt.Errorf("invalid ledger type %q", cfg.Engine.Type)
	}
	log.Info("ledger ready", zap.String("type", string(cfg.Engine.Type)), zap.Uint64("seq", state.Sequence()))

	// 6. 初始化 UseCase
	coreUseCase := usecase.NewCoreUseCase(usedLedger,
		usecase.WithLogger(log.Named("core")),
		usecase.WithEventLog(eventLog),
		usecase.WithSubscriber(bus),
		usecase.WithDispatcher(dispatcher),
		usecase.WithTracerProvider(tp),
	)

	// 7. 初始化 gRPC Adapter (Driving Adapter)
	authenticator, err := auth.NewAuthenticator(cfg.Auth)
	if err != nil {
		return fmt.Errorf("init authenticator: %w", err)
	}
	interceptors := grpc_adapter.NewInterceptors(authenticator, log.Named("grpc"))
	s := grpc.NewServer(
		grpc.StatsHandler(otelgrpc.NewServerHandler(otelgrpc.WithTracerProvider(tp))),
		grpc.ChainUnaryInterceptor(interceptors.Unary()),
		grpc.ChainStreamInterceptor(interceptors.Stream()),
	)
	pb.RegisterLedgerServiceServer(s, grpc_adapter.NewGrpcServer(coreUseCase))
	if cfg.GRPC.Reflection {
		reflection.Register(s)
	}

	lis, err := net.Listen("tcp", cfg.GRPC.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPC.Addr, err)
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info("starting grpc server", zap.String("addr", cfg.GRPC.Addr))
		serveErr <- s.Serve(lis)
	}()

	// 8. 定期快照
	snapshotCtx, stopSnapshots := context.WithCancel(context.Background())
	snapshotDone := make(chan struct{})
	go func() {
		defer close(snapshotDone)
		if snapshotStore == nil {
			return
		}
		ticker := time.NewTicker(cfg.Engine.SnapshotInterval)
		defer ticker.Stop()
		for {
			select {
			case <-snapshotCtx.Done():
				return
			case <-ticker.C:
				if err := coreUseCase.SaveSnapshot(snapshotCtx, snapshotStore); err != nil && !errors.Is(err, context.Canceled) {
					log.Error("periodic snapshot failed", zap.Error(err))
				}
			}
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	var runErr error
	select {
	case sig := <-quit:
		log.Info("shutting down server", zap.String("signal", sig.String()))
	case err := <-serveErr:
		runErr = fmt.Errorf("serve: %w", err)
	}

	// 先停止接收請求，再停止帳本，最後把事件送完並寫入最終快照
	s.GracefulStop()
	stopSnapshots()
	<-snapshotDone
	stopLedger()
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), cfg.Events.ShutdownTimeout)
	defer cancelDrain()
	if err := dispatcher.Shutdown(drainCtx); err != nil {
		// 未送出的事件仍在 WAL 中，最終快照會因此略過，下次啟動時重放
		log.Error("events not fully published before shutdown", zap.Error(err))
	}

	if snapshotStore != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := coreUseCase.SaveSnapshot(ctx, snapshotStore); err != nil {
			log.Error("final snapshot failed", zap.Error(err))
		}
	}
	return runErr
}

// newTracerProvider 建立 TracerProvider，有設定 endpoint 時以 OTLP/HTTP 批次匯出
func newTracerProvider(ctx context.Context, cfg TracingConfig) (*sdktrace.TracerProvider, error) {
	opts := []sdktrace.TracerProviderOption{
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
	}
	if cfg.Endpoint != "" {
		exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
		}
		exporter, err := otlptracehttp.New(ctx, exporterOpts...)
		if err != nil {
			return nil, fmt.Errorf("create otlp exporter: %w", err)
		}
		opts = append(opts, sdktrace.WithBatcher(exporter))
	}
	return sdktrace.NewTracerProvider(opts...), nil
}
