// Сервис постов: регистрация, вход и работа с постами через HTTP API.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"postline/internal/adapters/cache"
	"postline/internal/adapters/postgres"
	"postline/internal/adapters/ratelimit"
	"postline/internal/adapters/services"
	"postline/internal/app"
	httpServer "postline/internal/app/http"
	"postline/internal/config"
	portsratelimit "postline/internal/ports/ratelimit"
	pgdb "postline/pkg/db/postgres"
	"postline/pkg/logger"
	"postline/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "POSTLINE_LOGGER_MODE"
	EnvLoggerLevel = "POSTLINE_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrConnectPostgres      = "failed to connect to postgres"
	ErrRunMigrations        = "failed to run migrations"
	ErrCreateRateLimiter    = "failed to create rate limiter"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "postline service started"
	LogServiceShutdownDone = "postline service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingPostgres     = "closing postgres connection"
	LogClosingRateLimiter  = "closing rate limiter"
	LogInitStorage         = "initializing storage"
	LogRunningMigrations   = "running migrations"
	LogInitCache           = "initializing listing cache"
	LogInitServices        = "initializing services"
	LogInitRateLimiter     = "initializing rate limiter"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

const migrationsPath = "file://migrations"

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		cfg, err := config.Load(ctx)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitStorage)
		database, err := pgdb.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrConnectPostgres, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogRunningMigrations)
		if err := pgdb.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsPath); err != nil {
			log.Error(ctx, ErrRunMigrations, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		listingCache := cache.NewMemoryCache(cfg.Cache.MaxEntries, cfg.Cache.GetTTL())

		log.Info(ctx, LogInitServices)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())
		serviceFactory := services.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.GetTokenTTL(), cfg.JWT.BCryptCost)

		accountUseCase := app.NewAccountUseCase(repoFactory.UserRepository(), serviceFactory.PasswordService())
		postUseCase := app.NewPostUseCase(repoFactory.PostRepository(), listingCache)

		var limiter portsratelimit.Limiter
		if cfg.RateLimit.Enabled {
			log.Info(ctx, LogInitRateLimiter)
			limiter, err = ratelimit.NewRedisLimiter(ctx, &cfg.Redis, cfg.RateLimit.Limit, cfg.RateLimit.GetWindow())
			if err != nil {
				log.Error(ctx, ErrCreateRateLimiter, zap.Error(err))
				exitCode = 1
				return
			}
		}

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			BodyLimit:    cfg.HTTP.MaxPayloadBytes,
		})

		httpServer.SetupRouter(fiberApp, accountUseCase, postUseCase, serviceFactory.TokenService(), limiter)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			// Закрытие rate limiter.
			func(ctx context.Context) error {
				if limiter == nil {
					return nil
				}
				log.Info(ctx, LogClosingRateLimiter)
				return limiter.Close()
			},
			// Закрытие соединения с Postgres.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingPostgres)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
