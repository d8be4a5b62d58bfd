package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"agrohub/internal/hub/adapters/cache"
	"agrohub/internal/hub/adapters/device"
	"agrohub/internal/hub/adapters/httpapi"
	"agrohub/internal/hub/adapters/notifier"
	hubpg "agrohub/internal/hub/adapters/postgres"
	"agrohub/internal/hub/adapters/services"
	"agrohub/internal/hub/app"
	"agrohub/internal/hub/config"
	"agrohub/pkg/db/postgres"
	"agrohub/pkg/logger"
	"agrohub/pkg/shutdown"
)

// Environment variables consulted before the configuration is loaded.
const (
	EnvLoggerMode  = "HUB_LOGGER_MODE"
	EnvLoggerLevel = "HUB_LOGGER_LEVEL"
)

// Error messages.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrConnectDatabase      = "failed to connect to database"
	ErrApplyMigrations      = "failed to apply database migrations"
	ErrCreateSensorCache    = "failed to create sensor cache"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Ignorable zap sync errors on standard streams.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Service log messages.
const (
	LogNoDotenv            = "no .env file found, relying on system environment"
	LogServiceStarted      = "hub service started"
	LogServiceShutdownDone = "hub service shutdown complete"
	LogInitDatabase        = "initializing database"
	LogInitCache           = "initializing sensor cache"
	LogInitServices        = "initializing services"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
)

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

		if err := godotenv.Load(); err != nil {
			log.Info(ctx, LogNoDotenv)
		}

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
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		db, err := postgres.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), cfg.Postgres.MigrationsPath); err != nil {
			log.Error(ctx, ErrApplyMigrations, zap.Error(err))
			db.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitCache)
		sensorCache, err := cache.NewSensorCache(ctx, &cfg.Redis)
		if err != nil {
			log.Error(ctx, ErrCreateSensorCache, zap.Error(err))
			db.Close(ctx)
			exitCode = 1
			return
		}

		log.Info(ctx, LogInitServices)
		userRepo := hubpg.NewUserRepository(db.Pool())
		passwordSvc := services.NewBcrypt(cfg.JWT.BCryptCost)
		tokenSvc := services.NewJWT(cfg.JWT.SecretKey, cfg.JWT.GetAccessTokenTTL())
		mailer := notifier.NewMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password, cfg.Mail.GetFrom())
		messenger := notifier.NewMessenger(cfg.Messaging.URL, cfg.Messaging.APIKey, cfg.Messaging.Sender, cfg.Messaging.Timeout)
		deviceClient := device.NewClient(cfg.Device.BaseURL, cfg.Device.Timeout)

		userUseCase := app.NewUserUseCase(userRepo, passwordSvc, tokenSvc, mailer, messenger)
		deviceUseCase := app.NewDeviceUseCase(deviceClient, sensorCache)

		log.Info(ctx, LogInitHTTPServer)
		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
		})

		httpapi.SetupRouter(fiberApp, userUseCase, deviceUseCase, tokenSvc)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := fiberApp.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return fiberApp.Shutdown()
			},
			func(ctx context.Context) error {
				return sensorCache.Close()
			},
			func(ctx context.Context) error {
				db.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
