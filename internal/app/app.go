package app

import (
	"blogcore/internal/config"
	"blogcore/internal/db"
	"blogcore/internal/handlers"
	"blogcore/internal/repository"
	"blogcore/internal/routes"
	"blogcore/internal/services"

	"github.com/gorilla/mux"
)

func InitApp(cfg *config.Config) (*mux.Router, error) {
	conn, err := db.NewPostgresConnection(cfg)
	if err != nil {
		return nil, err
	}

	// Репозитории
	userRepo := repository.NewUserRepository(conn)
	postRepo := repository.NewPostRepository(conn)
	commentRepo := repository.NewCommentRepository(conn)

	// Сервисы
	authService := services.NewAuthService(userRepo)
	postService := services.NewPostService(postRepo)
	commentService := services.NewCommentService(postRepo, commentRepo)
	directoryService := services.NewDirectoryService(userRepo)

	// Хендлеры
	authHandler := handlers.NewAuthHandler(authService)
	postHandler := handlers.NewPostHandler(postService)
	commentHandler := handlers.NewCommentHandler(commentService)
	userHandler := handlers.NewUserHandler(directoryService)
	healthHandler := handlers.NewHealthHandler(conn)

	// Маршруты
	router := mux.NewRouter()
	routes.InitRoutes(router, authHandler, postHandler, commentHandler, userHandler, healthHandler)

	return router, nil
}
