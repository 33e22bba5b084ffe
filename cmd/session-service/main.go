package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pribylovaa/session-service/internal/config"
	"github.com/pribylovaa/session-service/internal/lock"
	"github.com/pribylovaa/session-service/internal/metrics"
	"github.com/pribylovaa/session-service/internal/password"
	"github.com/pribylovaa/session-service/internal/service"
	"github.com/pribylovaa/session-service/internal/session"
	"github.com/pribylovaa/session-service/internal/storage"
	"github.com/pribylovaa/session-service/internal/storage/memory"
	"github.com/pribylovaa/session-service/internal/storage/minio"
	"github.com/pribylovaa/session-service/internal/storage/mongo"
	"github.com/pribylovaa/session-service/internal/storage/postgres"
	"github.com/pribylovaa/session-service/internal/tokens"
	transport "github.com/pribylovaa/session-service/internal/transport/http"
)

// Константы для определения окружения.
const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	// .env необязателен: переменные могут прийти из окружения.
	_ = godotenv.Load()

	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("config_load_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting session-service", "env", cfg.Env, "storage", cfg.Storage.Driver)

	// Корневой контекст по сигналам.
	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	// Менеджер токенов проверяет секреты и TTL: ошибка здесь фатальна.
	tm, err := tokens.NewManager(cfg.Auth)
	if err != nil {
		log.Error("token_manager_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}

	// Каталог пользователей c таймаутом на подключение.
	dbCtx, dbCancel := context.WithTimeout(rootCtx, 15*time.Second)
	str, err := openStorage(dbCtx, cfg, log)
	dbCancel()
	if err != nil {
		log.Error("storage_open_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer str.Close()

	// Per-user блокировки: Redis, если задан, иначе внутри процесса.
	var locker lock.Locker
	if cfg.Redis.RedisURL != "" {
		redisCtx, redisCancel := context.WithTimeout(rootCtx, 5*time.Second)
		rl, err := lock.NewRedis(redisCtx, cfg.Redis.RedisURL, cfg.Redis.Prefix, cfg.Redis.LockTTL)
		redisCancel()
		if err != nil {
			log.Error("redis_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer func() { _ = rl.Close() }()

		locker = rl
		log.Info("redis_lock_enabled")
	}

	sessions := session.NewStore(str, locker)
	svc := service.New(str, sessions, tm, password.NewHasher(cfg.Auth.BcryptCost), cfg.Auth)

	if cfg.S3.Enabled() {
		s3Ctx, s3Cancel := context.WithTimeout(rootCtx, 10*time.Second)
		images, err := minio.New(s3Ctx, cfg.S3, cfg.Avatar)
		s3Cancel()
		if err != nil {
			log.Error("minio_connect_failed", slog.String("err", err.Error()))
			os.Exit(1)
		}

		svc.SetImages(images)
		log.Info("image_uploads_enabled", "bucket", cfg.S3.Bucket)
	}
	log.Info("service_initialized")

	m := metrics.New()

	var ready atomic.Bool

	handler := transport.NewRouter(svc, transport.Options{
		Logger:   log,
		Timeout:  cfg.Timeouts.Request,
		BasePath: cfg.HTTP.BasePath,
		Cookies:  cfg.Cookies,
		Metrics:  m,
		Ready:    ready.Load,
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Фоновая очистка просроченных refresh-слотов.
	startSlotJanitor(rootCtx, sessions, m, log, cfg.Janitor.Period)

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	ready.Store(true)

	// Ожидание сигнала завершения или фатальной ошибки сервера.
	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	ready.Store(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Timeouts.Shutdown)
	defer shutdownCancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
		_ = httpSrv.Close()
	}

	log.Info("service_stopped")
}

// openStorage подключает каталог пользователей по storage.driver.
// Для postgres применяются goose-миграции, если не задан db.skip_migrate.
func openStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (storage.Storage, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		pg, err := postgres.New(ctx, cfg.DB.DatabaseURL)
		if err != nil {
			return nil, err
		}

		if !cfg.DB.SkipMigrate {
			if err := pg.Migrate(ctx); err != nil {
				pg.Close()
				return nil, err
			}
			log.Info("postgres_migrated")
		}

		log.Info("postgres_connected")
		return pg, nil

	case config.DriverMongo:
		mg, err := mongo.New(ctx, cfg.Mongo.URL)
		if err != nil {
			return nil, err
		}

		log.Info("mongo_connected")
		return mg, nil

	case config.DriverMemory:
		log.Warn("memory_storage_in_use")
		return memory.New(), nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

// setupLogger настраивает slog по окружению.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}

// startSlotJanitor периодически очищает просроченные refresh-слоты.
func startSlotJanitor(ctx context.Context, sessions *session.Store, m *metrics.Metrics, log *slog.Logger, period time.Duration) {
	if period <= 0 {
		return
	}

	go func() {
		t := time.NewTicker(period)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				n, err := sessions.Sweep(ctx)
				if err != nil {
					log.Error("slot_janitor_failed", slog.String("err", err.Error()))
					continue
				}

				m.SlotsCleared(n)
				if n > 0 {
					log.Info("expired_slots_cleared", "count", n)
				}
			}
		}
	}()
}
