package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	httptransport "github.com/flowlytix/distribution-service/internal/api/http"
	"github.com/flowlytix/distribution-service/internal/api/http/handlers"
	"github.com/flowlytix/distribution-service/internal/auth"
	"github.com/flowlytix/distribution-service/internal/config"
	"github.com/flowlytix/distribution-service/internal/domain"
	"github.com/flowlytix/distribution-service/internal/events"
	"github.com/flowlytix/distribution-service/internal/observability"
	"github.com/flowlytix/distribution-service/internal/persistence"
	"github.com/flowlytix/distribution-service/internal/repository"
	"github.com/flowlytix/distribution-service/internal/service"
	"github.com/flowlytix/distribution-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	areaRepo := repository.NewAreaRepository(pool)
	sessions := auth.NewSessionStore(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()

	userService := service.NewUserService(*cfg, service.UserDependencies{
		UserRepo:   userRepo,
		Sessions:   sessions,
		Dispatcher: dispatcher,
	})
	areaService := service.NewAreaService(areaRepo, dispatcher)
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	if err := bootstrapAdmin(ctx, cfg.Auth, userRepo, logger); err != nil {
		logger.Fatal("failed to bootstrap admin", zap.Error(err))
	}

	authMiddleware := auth.NewAuthMiddleware(userService.TokenManager(), sessions, userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(userService),
		Users:          handlers.NewUsersHandler(userService),
		Areas:          handlers.NewAreasHandler(areaService),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// bootstrapAdmin provisions the first super_admin account when configured and
// no account with that email exists yet.
func bootstrapAdmin(ctx context.Context, cfg config.AuthConfig, users repository.UserRepository, logger *zap.Logger) error {
	if cfg.BootstrapAdminEmail == "" || cfg.BootstrapAdminPassword == "" {
		return nil
	}

	if _, err := users.GetByEmail(ctx, cfg.BootstrapAdminEmail); err == nil {
		return nil
	} else if err != pgx.ErrNoRows {
		return err
	}

	hash, err := auth.HashPassword(cfg.BootstrapAdminPassword, cfg.BcryptCost)
	if err != nil {
		return err
	}

	admin := &domain.User{
		Email:        cfg.BootstrapAdminEmail,
		PasswordHash: hash,
		FirstName:    "System",
		LastName:     "Administrator",
		Role:         domain.RoleSuperAdmin,
		Status:       domain.UserStatusActive,
		CreatedBy:    "system",
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("bootstrap admin created", zap.String("email", admin.Email))
	return nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
