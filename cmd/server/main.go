package main

import (
	"net/http"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"

	"blogapi/docs"
	"blogapi/internal/config"
	"blogapi/internal/db"
	"blogapi/internal/handler"
	"blogapi/internal/repository"
	"blogapi/internal/router"
	"blogapi/internal/service"
)

// @title Blog API
// @version 1.0
// @description Users, posts and comments over HTTP Basic authentication.
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.basic BasicAuth
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		e.Logger.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		e.Logger.Info("RESET_DB=true detected, dropping all tables...")
		if err := db.Reset(gormDB); err != nil {
			e.Logger.Fatalf("reset: %v", err)
		}
	}

	if err := db.Migrate(gormDB); err != nil {
		e.Logger.Fatalf("%v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)

	// Initialize services
	authService := service.NewAuthService(userRepo, cfg.BcryptCost)
	postService := service.NewPostService(postRepo, cfg.EmptyListNotFound)
	commentService := service.NewCommentService(postService, commentRepo, cfg.EmptyListNotFound)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	postHandler := handler.NewPostHandler(postService)
	commentHandler := handler.NewCommentHandler(commentService)

	router.Register(e, cfg, authService, authHandler, postHandler, commentHandler)

	swaggerURL := "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	if cfg.SwaggerHost != "" {
		host := strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
		docs.SwaggerInfo.Host = host
		if strings.HasPrefix(cfg.SwaggerHost, "https://") {
			docs.SwaggerInfo.Schemes = []string{"https"}
			swaggerURL = "https://" + host + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + host + "/swagger/index.html"
		}
	} else {
		docs.SwaggerInfo.Host = "localhost:" + cfg.ServerPort
	}
	e.Logger.Infof("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		e.Logger.Fatalf("server start: %v", err)
	}
}
