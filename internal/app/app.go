package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/thoth-pub/cc-license/internal/catalog"
	"github.com/thoth-pub/cc-license/internal/config"
	"github.com/thoth-pub/cc-license/internal/httpserver"
	"github.com/thoth-pub/cc-license/internal/httpserver/deps"
	"github.com/thoth-pub/cc-license/internal/logger"
	"github.com/thoth-pub/cc-license/internal/redis"
	"github.com/thoth-pub/cc-license/internal/scheduler"
	"github.com/thoth-pub/cc-license/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	reloader    *scheduler.CatalogReloader
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Redis is optional: without it the resolver still works, only the
	// usage statistics are disabled.
	var redisClient *goredis.Client
	if cfg.StatsEnabled() {
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			DB:             cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
			WarnThreshold:  cfg.RedisWarnThreshold,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		redisClient = client
	} else {
		loggerClient.Info("redis not configured, usage statistics disabled")
	}

	// Jurisdiction catalog is optional as well.
	var (
		cat           *catalog.Catalog
		reloader      *scheduler.CatalogReloader
		reloadTrigger chan struct{}
	)
	if cfg.JurisdictionsFile != "" {
		loggerClient.Info("jurisdiction catalog configured",
			logger.String("file", cfg.JurisdictionsFile))
		cat = catalog.New()
		reloadTrigger = make(chan struct{}, 1)
		reloader = scheduler.NewCatalogReloader(
			cfg.JurisdictionsFile,
			cat,
			loggerClient,
			cfg.CatalogReloadInterval,
			reloadTrigger,
		)
	} else {
		loggerClient.Info("jurisdiction catalog not configured, display names disabled")
	}

	d := deps.Deps{
		Logger:        loggerClient,
		StartTime:     time.Now(),
		Version:       version.Version,
		Commit:        version.Commit,
		BuildDate:     version.BuildDate,
		GoVersion:     version.GoVersion,
		RedisClient:   redisClient,
		Catalog:       cat,
		ReloadTrigger: reloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		reloader:    reloader,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting cc-license v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("cc-license %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if a.reloader != nil {
		if err := a.reloader.Start(ctx); err != nil {
			return fmt.Errorf("failed to start catalog reloader: %w", err)
		}
		a.logger.Info("catalog reloader started",
			logger.Duration("interval", a.cfg.CatalogReloadInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.reloader != nil {
		a.reloader.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ cc-license stopped cleanly")
	return nil
}
