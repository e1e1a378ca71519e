package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MarwahManan/Hackathon-2/internal/auth"
	"github.com/MarwahManan/Hackathon-2/internal/cache"
	"github.com/MarwahManan/Hackathon-2/internal/config"
	"github.com/MarwahManan/Hackathon-2/internal/database"
	"github.com/MarwahManan/Hackathon-2/internal/handlers"
	"github.com/MarwahManan/Hackathon-2/internal/middleware"
	"github.com/MarwahManan/Hackathon-2/internal/services"
	"github.com/MarwahManan/Hackathon-2/internal/worker"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	hasher := auth.NewPasswordHasher(cfg.Auth.BCryptCost)
	authService := services.NewAuthService(hasher, tokens)

	var taskService services.TaskService = services.NewTaskService()
	var redisCache *cache.RedisCache
	if cfg.Redis.Enabled {
		redisCache = cache.NewRedisCache(cfg.Redis, cfg.GetRedisAddr())
		if err := redisCache.Ping(); err != nil {
			log.Printf("Redis unreachable, continuing without cache: %v", err)
			redisCache.Close()
			redisCache = nil
		} else {
			taskService = services.NewCachedTaskService(taskService, redisCache)
			log.Println("Redis cache enabled")
		}
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit)
	}

	var roller *worker.Roller
	if cfg.Worker.Enabled {
		roller = worker.NewRoller(db, cfg.Worker)
		roller.Start()
	}

	router := handlers.NewRouter(cfg, db, authService, taskService, tokens, limiter)

	server := &http.Server{
		Addr:         cfg.GetServerAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Printf("Server listening on %s (%s)", server.Addr, cfg.Server.Environment)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}

	if roller != nil {
		roller.Stop()
	}
	if limiter != nil {
		limiter.Stop()
	}
	if redisCache != nil {
		redisCache.Close()
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Println("Server stopped")
}
