package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/fathima-sithara/files-manager/internal/auth"
	"github.com/fathima-sithara/files-manager/internal/config"
	"github.com/fathima-sithara/files-manager/internal/database"
	"github.com/fathima-sithara/files-manager/internal/handlers"
	"github.com/fathima-sithara/files-manager/internal/queue"
	"github.com/fathima-sithara/files-manager/internal/repository"
	"github.com/fathima-sithara/files-manager/internal/routes"
	"github.com/fathima-sithara/files-manager/internal/services"
	"github.com/fathima-sithara/files-manager/internal/sessions"
	"github.com/fathima-sithara/files-manager/internal/storage"
	"github.com/fathima-sithara/files-manager/internal/utils"
	"github.com/fathima-sithara/files-manager/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	dev := cfg.App.Env == "development"

	logger, err := utils.NewLogger(dev)
	if err != nil {
		panic(err)
	}
	defer func() { _ = logger.Sync() }()

	db, mc, err := database.ConnectMongo(cfg.Mongo.URI, cfg.Mongo.Database, logger)
	if err != nil {
		logger.Fatalf("mongo connect: %v", err)
	}
	rdb, err := database.ConnectRedis(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, logger)
	if err != nil {
		logger.Fatalf("redis connect: %v", err)
	}

	userRepo := repository.NewMongoUserRepo(db, "users")
	fileRepo := repository.NewMongoFileRepo(db, "files")
	store := storage.NewDiskStore(cfg.Storage.Root)
	sessionStore := sessions.NewStore(sessions.NewRedisKV(rdb), cfg.SessionTTL)
	jobQueue := queue.NewRedisQueue(rdb, queue.DefaultKey)

	authSvc := services.NewAuthService(auth.NewVerifier(userRepo), sessionStore, userRepo)
	userSvc := services.NewUserService(userRepo)
	fileSvc := services.NewFileService(fileRepo, store, jobQueue)
	appSvc := services.NewAppService(userRepo, fileRepo,
		func(ctx context.Context) error { return mc.Ping(ctx, nil) },
		func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
	)

	// thumbnail workers
	workerCtx, stopWorkers := context.WithCancel(context.Background())
	defer stopWorkers()
	w := worker.New(jobQueue, fileRepo, store, logger)
	for i := 0; i < cfg.Worker.Count; i++ {
		go w.Run(workerCtx)
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})
	h := handlers.New(authSvc, userSvc, fileSvc, appSvc, logger)
	routes.Setup(app, h)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.App.Port)
		logger.Infof("starting files manager on %s", addr)
		if err := app.Listen(addr); err != nil {
			logger.Fatalf("listen failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown requested")

	stopWorkers()
	_ = app.Shutdown()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = mc.Disconnect(shutdownCtx)
	_ = rdb.Close()
	logger.Info("shutdown completed")
}
