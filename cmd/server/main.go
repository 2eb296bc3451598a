package main

import (
	"log"
	"net/http"

	_ "matchtrack/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"matchtrack/internal/auth"
	"matchtrack/internal/cache"
	"matchtrack/internal/config"
	"matchtrack/internal/db"
	"matchtrack/internal/handler"
	"matchtrack/internal/model"
	"matchtrack/internal/repository"
	"matchtrack/internal/router"
	"matchtrack/internal/service"
)

// @title Match Tracker API
// @version 1.0
// @description Sports statistics tracker with per-player aggregate counters and session-token authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Player{},
		&model.Match{},
		&model.MatchPerformance{},
		&model.AuditEntry{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Repositories
	userRepo := repository.NewUserRepository(gormDB)
	playerRepo := repository.NewPlayerRepository(gormDB)
	matchRepo := repository.NewMatchRepository(gormDB)
	perfRepo := repository.NewPerformanceRepository(gormDB)
	auditRepo := repository.NewAuditRepository(gormDB)

	// Services
	tokenService := auth.NewTokenService(cfg.JWTSecret)
	audit := service.NewAuditRecorder(auditRepo)
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo)
	matchService := service.NewMatchService(matchRepo, perfRepo, playerRepo, cacheClient)
	playerService := service.NewPlayerService(playerRepo, perfRepo, cacheClient)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, audit)
	userHandler := handler.NewUserHandler(userService, audit)
	matchHandler := handler.NewMatchHandler(matchService, audit)
	playerHandler := handler.NewPlayerHandler(playerService, audit)

	router.Register(e, cfg, authHandler, userHandler, matchHandler, playerHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
