package app

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	pb "github.com/clinicq/dispatch-server/api/v1"
	"github.com/clinicq/dispatch-server/internal/config"
	handler "github.com/clinicq/dispatch-server/internal/grpc"
	"github.com/clinicq/dispatch-server/internal/repository"
	"github.com/clinicq/dispatch-server/internal/service"
	"github.com/clinicq/dispatch-server/pkg/cache"
	dbbuilder "github.com/clinicq/dispatch-server/pkg/database"
	grpcsrv "github.com/clinicq/dispatch-server/pkg/grpc/server"

	"go.uber.org/zap"
	"google.golang.org/grpc"
)

type App struct {
	logger     *zap.Logger
	dbPool     *sql.DB
	cache      *cache.Cache
	grpcServer *grpcsrv.Server
	dispatch   *service.DispatchService

	cleanupInterval time.Duration
	ticketRetention time.Duration
	stopCleanup     context.CancelFunc
}

func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	dbPool, err := dbbuilder.New(
		dbbuilder.WithDriver(cfg.DBDriver),
		dbbuilder.WithDataSource(cfg.DBPath),
	)
	if err != nil {
		return nil, fmt.Errorf("database init failed: %w", err)
	}
	logger.Info("Database pool initialized", zap.String("path", cfg.DBPath))

	cacheClient, err := cache.New(ctx,
		cache.WithAddress(cfg.RedisAddr),
	)
	if err != nil {
		return nil, fmt.Errorf("cache init failed: %w", err)
	}
	logger.Info("Cache client initialized", zap.String("addr", cfg.RedisAddr))

	ticketRepo := repository.NewTicketRepository(dbPool)
	if err := ticketRepo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("schema init failed: %w", err)
	}

	dispatchService := service.NewDispatchService(ticketRepo, logger,
		service.WithFairnessTTL(cfg.FairnessCacheTTL),
	)

	grpcHandlers := handler.NewGRPCHandlers(dispatchService, cacheClient, logger, cfg.PreviewCacheTTL)

	grpcServer, err := grpcsrv.New(
		grpcsrv.WithPort(cfg.GRPCPort),
		grpcsrv.WithLogger(logger),
		grpcsrv.WithLogging(true),
		grpcsrv.WithReflection(cfg.GRPCReflectionEnabled),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create gRPC server: %w", err)
	}

	grpcServer.RegisterService(func(s *grpc.Server) {
		pb.RegisterQueueDispatchServer(s, grpcHandlers)
	})

	return &App{
		logger:          logger,
		dbPool:          dbPool,
		cache:           cacheClient,
		grpcServer:      grpcServer,
		dispatch:        dispatchService,
		cleanupInterval: cfg.CleanupInterval,
		ticketRetention: cfg.TicketRetention,
	}, nil
}

// Run starts the application and blocks until a shutdown signal is received.
func (a *App) Run() error {
	a.logger.Info("application starting")

	a.grpcServer.Start()

	cleanupCtx, stopCleanup := context.WithCancel(context.Background())
	a.stopCleanup = stopCleanup
	go a.runCleanupLoop(cleanupCtx)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info("application shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	a.stopCleanup()

	if err := a.grpcServer.Shutdown(ctx); err != nil {
		a.logger.Warn("gRPC shutdown error", zap.Error(err))
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Error("cache shutdown error", zap.Error(err))
	}
	if err := a.dbPool.Close(); err != nil {
		a.logger.Error("database shutdown error", zap.Error(err))
	}

	a.logger.Info("graceful shutdown completed")

	_ = a.logger.Sync()
	return nil
}

// runCleanupLoop periodically deletes served and cancelled tickets that have
// aged past the retention window. Tickets never re-enter dispatch after the
// day boundary, so only storage is reclaimed here.
func (a *App) runCleanupLoop(ctx context.Context) {
	ticker := time.NewTicker(a.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			deleted, err := a.dispatch.PurgeFinished(ctx, a.ticketRetention)
			if err != nil {
				a.logger.Warn("ticket cleanup failed", zap.Error(err))
				continue
			}
			if deleted > 0 {
				a.logger.Info("ticket cleanup completed", zap.Int64("deleted", deleted))
			}
		}
	}
}
