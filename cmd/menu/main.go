// Сервис управления меню ресторана: страницы с серверным рендерингом
// и JSON API поверх единой бизнес-логики.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	httpServer "restomenu/internal/menu/adapters/http"
	"restomenu/internal/menu/adapters/http/pages"
	"restomenu/internal/menu/adapters/postgres"
	"restomenu/internal/menu/adapters/services"
	"restomenu/internal/menu/app"
	"restomenu/internal/menu/config"
	db "restomenu/pkg/db/postgres"
	"restomenu/pkg/logger"
	"restomenu/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "MENU_LOGGER_MODE"
	EnvLoggerLevel = "MENU_LOGGER_LEVEL"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrConnectDatabase      = "failed to connect to database"
	ErrRunMigrations        = "failed to run database migrations"
	ErrInitViews            = "failed to initialize view engine"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "menu service started"
	LogServiceShutdownDone = "menu service shutdown complete"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingDatabase     = "closing database connection"
	LogInitDatabase        = "initializing database connection"
	LogRunningMigrations   = "running database migrations"
	LogInitRepositories    = "initializing repositories"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

const migrationsPath = "file://migrations/menu"

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
			zap.String("environment", string(env)),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitDatabase)
		database, err := db.New(ctx, cfg.Postgres.GetDSN(), cfg.Postgres.MinConn, cfg.Postgres.MaxConn)
		if err != nil {
			log.Error(ctx, ErrConnectDatabase, zap.Error(err))
			exitCode = 1
			return
		}

		if cfg.Postgres.Migrate {
			log.Info(ctx, LogRunningMigrations)
			if err := db.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), migrationsPath); err != nil {
				log.Error(ctx, ErrRunMigrations, zap.Error(err))
				database.Close(ctx)
				exitCode = 1
				return
			}
		}

		log.Info(ctx, LogInitRepositories)
		repos := postgres.NewRepositoryFactory(database.Pool())

		log.Info(ctx, LogInitServices)
		svcFactory := services.NewServiceFactory(
			cfg.Session.Secret,
			cfg.Session.TTL,
			cfg.Session.BcryptCost,
			cfg.OAuth.FacebookClientID,
			cfg.OAuth.FacebookClientSecret,
			cfg.OAuth.FacebookRedirectURL,
		)

		log.Info(ctx, LogInitUseCases)
		authUseCase := app.NewAuthUseCase(repos.UserRepository(), svcFactory.PasswordService(), svcFactory.SessionService())
		oauthUseCase := app.NewOAuthUseCase(repos.UserRepository(), svcFactory.SessionService())
		menuUseCase := app.NewMenuUseCase(repos.MenuRepository())

		log.Info(ctx, LogInitHTTPServer)
		views, err := httpServer.NewViewsEngine()
		if err != nil {
			log.Error(ctx, ErrInitViews, zap.Error(err))
			database.Close(ctx)
			exitCode = 1
			return
		}

		fiberApp := fiber.New(fiber.Config{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			Views:        views,
		})

		httpServer.SetupRouter(fiberApp, authUseCase, oauthUseCase, menuUseCase,
			svcFactory.OAuthProvider(), svcFactory.SessionService(),
			pages.SessionCookie{Name: cfg.Session.CookieName, TTL: cfg.Session.TTL})

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
			// Закрытие соединения с базой данных.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDatabase)
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
