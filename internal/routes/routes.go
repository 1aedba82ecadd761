package routes

import (
	"fanhub/internal/handlers"
	"fanhub/internal/middleware"
	"fanhub/internal/models"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	profileHandler *handlers.ProfileHandler,
	articleHandler *handlers.ArticleHandler,
	analyticsHandler *handlers.AnalyticsHandler,
	logsHandler *handlers.LogsHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Logging)

	router.HandleFunc("/healthz", healthHandler.Healthz).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/login", authHandler.Login).Methods("POST")
	api.HandleFunc("/logout", authHandler.Logout).Methods("POST")

	// Check сам разбирает cookie и отдаёт authenticated:false вместо 401-ошибки
	api.HandleFunc("/auth/check", authHandler.Check).Methods("GET")

	api.HandleFunc("/article", articleHandler.ListArticles).Methods("GET")
	api.HandleFunc("/article/search", articleHandler.SearchArticles).Methods("GET")
	api.HandleFunc("/article/categories", articleHandler.ListCategories).Methods("GET")

	// Счётчики открыты анонимным посетителям
	api.HandleFunc("/article/view", articleHandler.IncrementView).Methods("POST")
	api.HandleFunc("/article/like", articleHandler.ToggleLike).Methods("POST")
	api.HandleFunc("/article/share", articleHandler.IncrementShare).Methods("POST")

	// --- Защищённые сессионной cookie ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.SessionAuth(jwtSecret))
	protected.Use(middleware.OwnerFastLane)

	protected.HandleFunc("/profile", profileHandler.GetProfile).Methods("GET")
	protected.HandleFunc("/profile", profileHandler.UpdateProfile).Methods("PATCH")

	protected.HandleFunc("/article", articleHandler.CreateArticle).Methods("POST")
	protected.HandleFunc("/article", articleHandler.UpdateArticle).Methods("PUT")
	protected.HandleFunc("/article", articleHandler.DeleteArticle).Methods("DELETE")
	protected.HandleFunc("/article/preview", articleHandler.PreviewArticle).Methods("POST")

	protected.HandleFunc("/analytics", analyticsHandler.GetAnalytics).Methods("GET")

	protected.HandleFunc("/users", userHandler.ListUsers).Methods("GET")

	// Правка чужих учёток — менеджер и владелец
	managers := protected.PathPrefix("").Subrouter()
	managers.Use(middleware.AnyRole(models.RoleManager, models.RoleOwner))
	managers.HandleFunc("/users/update", userHandler.UpdateUser).Methods("PATCH")

	// Удаление учёток и логи — только владелец
	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.OnlyRole(models.RoleOwner))
	admin.HandleFunc("/users", userHandler.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/admin/logs/days", logsHandler.ListDays).Methods("GET")
	admin.HandleFunc("/admin/logs", logsHandler.GetLogs).Methods("GET")
}
