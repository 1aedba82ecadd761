package app

import (
	"context"
	"time"

	"fanhub/internal/config"
	"fanhub/internal/db"
	"fanhub/internal/handlers"
	"fanhub/internal/logger"
	"fanhub/internal/repository"
	"fanhub/internal/routes"
	"fanhub/internal/services"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.RunMigrations(ctx, cfg); err != nil {
		return nil, err
	}

	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	sessionTTL, err := time.ParseDuration(cfg.SessionTTL)
	if err != nil {
		logger.Log.Warn("SESSION_TTL не разобран, используется 168h", zap.String("value", cfg.SessionTTL))
		sessionTTL = 168 * time.Hour
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	articleRepo := repository.NewArticleRepo(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, sessionTTL)
	userService := services.NewUserService(userRepo)
	profileService := services.NewProfileService(userRepo)
	articleService := services.NewArticleService(articleRepo, cfg.PlaceholderImage)

	// Служебные учётки: владелец создаётся, менеджер повышается, если существует
	if err := authService.EnsureOwner(ctx, cfg.OwnerUsername, cfg.OwnerPassword); err != nil {
		logger.Log.Error("Не удалось подготовить учётку владельца", zap.Error(err))
		return nil, err
	}
	if err := authService.EnsureManagerRole(ctx, cfg.ManagerUsername); err != nil {
		logger.Log.Warn("Не удалось повысить учётку менеджера", zap.Error(err))
	}

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	profileHandler := handlers.NewProfileHandler(profileService)
	articleHandler := handlers.NewArticleHandler(articleService)
	analyticsHandler := handlers.NewAnalyticsHandler(articleService)
	logsHandler := handlers.NewLogsHandler("logs")
	healthHandler := handlers.NewHealthHandler(conn)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, cfg.JWTSecret,
		authHandler, userHandler, profileHandler,
		articleHandler, analyticsHandler, logsHandler, healthHandler,
	)

	return router, nil
}
