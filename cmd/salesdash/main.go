package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/viper"

	"github.com/akarpov/salesdash/internal/api"
	"github.com/akarpov/salesdash/internal/pkg/constants"
	"github.com/akarpov/salesdash/internal/pkg/dataset"
	"github.com/akarpov/salesdash/internal/pkg/logger"
	"github.com/akarpov/salesdash/internal/pkg/store"
	"github.com/akarpov/salesdash/internal/pkg/store/xpgx"
)

func main() {
	ctx := context.Background()

	initConfig(ctx)

	if err := logger.Init(viper.GetString(constants.ViperKeyLogLevel)); err != nil {
		logger.Fatal(ctx, err)
	}
	defer logger.Sync()

	loader, err := newLoader(ctx)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	cache := dataset.NewCache(loader, viper.GetDuration(constants.ViperKeyCacheTTL))

	// Warm the cache so the first request does not pay the load.
	if _, err := cache.Get(ctx); err != nil {
		logger.Errorf(ctx, "initial snapshot load failed: %s", err.Error())
	}

	svc, err := api.NewAPIService(cache)
	if err != nil {
		logger.Fatal(ctx, err)
	}

	go svc.Serve(viper.GetString(constants.ViperKeyListenAddr))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := svc.Shutdown(shutdownCtx); err != nil {
		logger.Errorf(ctx, "shutdown: %s", err.Error())
	}
}

func initConfig(ctx context.Context) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetEnvPrefix("salesdash")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(constants.ViperKeyListenAddr, ":8080")
	viper.SetDefault(constants.ViperKeyCORSOrigins, []string{"http://localhost:3000"})
	viper.SetDefault(constants.ViperKeyDataSource, "postgres")
	viper.SetDefault(constants.ViperKeyCacheTTL, time.Hour)
	viper.SetDefault(constants.ViperKeyLogLevel, "info")

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnf(ctx, "no config file found, using defaults and env: %s", err.Error())
	}
}

func newLoader(ctx context.Context) (dataset.Loader, error) {
	if viper.GetString(constants.ViperKeyDataSource) == "fixture" {
		logger.Infof(ctx, "serving embedded sample data")
		return dataset.NewFixtureLoader(), nil
	}

	pool, err := xpgx.NewPool(ctx, viper.GetString(constants.ViperKeyDatabaseDSN))
	if err != nil {
		return nil, err
	}

	return dataset.NewStoreLoader(store.NewStore(pool)), nil
}
