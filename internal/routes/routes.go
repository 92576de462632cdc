package routes

import (
	"net/http"

	"blogcore/internal/handlers"
	"blogcore/internal/middleware"
	"blogcore/internal/utils/helpers"

	"github.com/gorilla/mux"
)

func InitRoutes(
	router *mux.Router,
	authHandler *handlers.AuthHandler,
	postHandler *handlers.PostHandler,
	commentHandler *handlers.CommentHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	router.Use(middleware.RequestID)
	router.Use(middleware.Logging)
	router.Use(middleware.Recoverer)

	router.NotFoundHandler = helpers.NotFoundHandler()

	router.HandleFunc("/healthz", healthHandler.Healthz).Methods("GET")

	api := router.PathPrefix("/api/v1").Subrouter()

	// --- Публичные маршруты ---
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	api.HandleFunc("/posts/{slug}", postHandler.GetBySlug).Methods("GET")

	// --- Защищённые JWT ---
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.JWTAuth)

	protected.HandleFunc("/posts", postHandler.Create).Methods("POST")
	protected.HandleFunc("/posts", postHandler.List).Methods("GET")
	protected.HandleFunc("/posts/{slug}", postHandler.Update).Methods("PUT")
	protected.HandleFunc("/posts/{slug}", postHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/posts/{slug}/publish", postHandler.SetPublish).Methods(http.MethodPatch, http.MethodOptions)

	protected.HandleFunc("/posts/{slug}/comments", commentHandler.Create).Methods("POST")
	protected.HandleFunc("/posts/{slug}/comments", commentHandler.List).Methods("GET")
	protected.HandleFunc("/comments/{id}", commentHandler.Delete).Methods("DELETE")

	admin := protected.PathPrefix("").Subrouter()
	admin.Use(middleware.OnlyRole("admin"))
	admin.HandleFunc("/users", userHandler.GetUsers).Methods("GET")
}
