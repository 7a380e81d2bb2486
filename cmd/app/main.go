package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"moderation/internal/pkg/administrator"
	"moderation/internal/pkg/config"
	"moderation/internal/pkg/logger"
)

func main() {

    cfg, err := config.LoadConfig()
    if err != nil {
        log.Fatalf("failed to load config: %v", err)
    }

    if err := logger.InitLogger(cfg.LogLevel); err != nil {
        log.Fatalf("failed to initialize logger: %v", err)
    }
    defer logger.Log.Sync()

    // Construct the pipeline
    admin := administrator.New(cfg)

    // Create a cancellable context so we can gracefully shut down.
    ctx, cancel := context.WithCancel(context.Background())
    defer cancel()

    if err := admin.StartWorkers(ctx); err != nil {
        logger.Log.Fatal("failed to start workers", zap.Error(err))
    }

    // Serve HTTP in the background; StartService blocks.
    go admin.StartService(cfg.ServerPort)

    // Listen for OS signals to gracefully shut down.
    sigChan := make(chan os.Signal, 1)
    signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

    s := <-sigChan
    logger.Log.Info("received signal, shutting down", zap.String("signal", s.String()))
    cancel()

    admin.Stop()

    // Give some time for in-flight flushes
    time.Sleep(2 * time.Second)
    logger.Log.Info("moderation service shutdown complete")
}
