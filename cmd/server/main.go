package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/peopleops/employee-system/internal/api"
	"github.com/peopleops/employee-system/internal/core/service"
	"github.com/peopleops/employee-system/internal/infrastructure/config"
	mongorepo "github.com/peopleops/employee-system/internal/infrastructure/db/mongo"
	redisconn "github.com/peopleops/employee-system/internal/infrastructure/db/redis"
	"github.com/peopleops/employee-system/internal/infrastructure/scheduler"
	"github.com/peopleops/employee-system/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	rdb, err := redisconn.Connect(ctx, redisconn.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	ensureIndexes(ctx, db, logg)

	// The leave sweeper is the single background task: one immediate sweep,
	// then daily at UTC midnight, until the process shuts down.
	leaveRepo := mongorepo.NewLeaveRepository(db)
	leaveService := service.NewLeaveService(leaveRepo, logg)
	sweeper := scheduler.NewLeaveSweeper(leaveService, logg)

	sweeperDone := make(chan struct{})
	go func() {
		defer close(sweeperDone)
		sweeper.Run(ctx)
	}()

	e := api.NewRouter(db, rdb, cfg, logg)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			logg.Info().Err(err).Msg("http server stopped")
		}
	}()

	waitForShutdown(logg)

	cancel()
	<-sweeperDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("http shutdown failed")
	}
}

// ensureIndexes creates the collection indexes at startup. Failures are
// logged but do not block boot; queries still work without the indexes.
func ensureIndexes(ctx context.Context, db *mongo.Database, logg zerolog.Logger) {
	type indexed interface {
		EnsureIndexes(ctx context.Context) error
	}

	repos := map[string]indexed{
		"users":          mongorepo.NewUserRepository(db),
		"leave_requests": mongorepo.NewLeaveRepository(db),
		"departments":    mongorepo.NewDepartmentRepository(db),
		"work_schedules": mongorepo.NewScheduleRepository(db),
		"punch_records":  mongorepo.NewPunchRepository(db),
	}
	for name, repo := range repos {
		if err := repo.EnsureIndexes(ctx); err != nil {
			logg.Warn().Err(err).Str("collection", name).Msg("index creation failed")
		}
	}
}

func waitForShutdown(logg zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logg.Info().Str("signal", sig.String()).Msg("shutting down")
}
