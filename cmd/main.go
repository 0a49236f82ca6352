package main

import (
	"context"
	"errors"
	"fitlens-backend/cmd/config"
	"fitlens-backend/internal/metrics"
	"fitlens-backend/internal/utils"
	"fitlens-backend/pkg/logger"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func main() {
	utils.LoadConfig()

	log, cleanup, err := logger.New(logger.Config{
		Level:       utils.GetConfigOr("LOG_LEVEL", "info"),
		Format:      utils.GetConfigOr("LOG_FORMAT", "json"),
		Development: utils.GetConfig("APP_ENV") == "development",
	})
	if err != nil {
		panic(err)
	}

	err = run(log)
	if err != nil {
		log.Error("server stopped", zap.Error(err))
	}
	cleanup()
	if err != nil {
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := metrics.New()

	gw, err := config.ConnectGateway(ctx, log)
	if err != nil {
		return err
	}
	defer gw.Close()

	processor, err := config.ConnectBilling(log)
	if err != nil {
		return err
	}

	app, err := config.NewApp(gw, processor, m, log)
	if err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + utils.GetConfigOr("APP_PORT", "3000")
		log.Info("listening", zap.String("addr", addr))
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return nil
}
