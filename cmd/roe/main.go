package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/DrRobsonAmuiJr/ROE/internal/api"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/config"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/constants"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/logger"
	"github.com/DrRobsonAmuiJr/ROE/internal/pkg/store"
)

func main() {
	ctx := context.Background()

	if err := config.Load(); err != nil {
		logger.Fatal(ctx, err)
	}

	zapLogger, err := zap.NewProduction()
	if err != nil {
		logger.Fatal(ctx, err)
	}
	logger.Init(zapLogger)
	defer zapLogger.Sync() //nolint:errcheck

	pool, err := store.Connect(ctx, viper.GetString(constants.ViperKeyDatabaseDSN))
	if err != nil {
		logger.Fatal(ctx, err)
	}
	defer pool.Close()

	svc, err := api.NewAPIService(store.NewStore(pool))
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := svc.Shutdown(shutdownCtx); err != nil {
			logger.Errorf(ctx, "shutdown: %s", err.Error())
		}
	}()

	logger.Infof(ctx, "listening on %s", viper.GetString(constants.ViperKeyHTTPAddr))
	svc.Serve(viper.GetString(constants.ViperKeyHTTPAddr))
}
