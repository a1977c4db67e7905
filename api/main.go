package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	ai "github.com/prasetyoadi/warung-assistant/internal/ai"
	"github.com/prasetyoadi/warung-assistant/internal/auth"
	cart "github.com/prasetyoadi/warung-assistant/internal/cart"
	"github.com/prasetyoadi/warung-assistant/internal/config"
	"github.com/prasetyoadi/warung-assistant/internal/db"
	api "github.com/prasetyoadi/warung-assistant/internal/http"
	"github.com/prasetyoadi/warung-assistant/internal/http/handlers"
	rl "github.com/prasetyoadi/warung-assistant/internal/http/rate_limiter"
	models "github.com/prasetyoadi/warung-assistant/internal/models"
	"github.com/prasetyoadi/warung-assistant/internal/redissvc"
	"github.com/prasetyoadi/warung-assistant/internal/repo"
)

var ctx = context.Background()

// @title Warung Assistant API
// @version 1.0
// @description Storefront search, AI voice/photo assistant and admin dashboard for a small-shop product catalog.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	auth.SetSecret(cfg.JWTSecret)

	go rl.StartVisitorCleanupLoop()

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("could not connect to Redis: %v", err)
	}
	defer rdb.Close()
	handlers.SetRedisService(redissvc.NewRedisService(rdb, ctx))

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("could not connect to database: ", err)
	}
	defer database.Close()

	productRepo := repo.NewPostgresProductRepository(database)
	settingRepo := repo.NewPostgresSettingRepository(database)
	userRepo := repo.NewPostgresUserRepository(database)

	handlers.SetProductRepo(productRepo)
	handlers.SetSettingRepo(settingRepo)
	handlers.SetScanLogRepo(repo.NewPostgresScanLogRepository(database))
	handlers.SetUserRepo(userRepo)

	handlers.SetAIProvider(ai.NewProvider(settingRepo, cfg.GeminiAPIKey, cfg.GeminiModel, nil))
	handlers.SetCartStore(cart.NewRedisStore(rdb))

	seedAdmin(userRepo, cfg.AdminUsername, cfg.AdminPassword)

	r := api.NewRouter()
	addr := ":" + cfg.Port
	log.Printf("server running on %s", addr)
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatal(err)
	}
}

// seedAdmin makes sure the configured dashboard account exists.
func seedAdmin(users repo.UserRepository, username, password string) {
	if _, err := users.GetByUsername(username); err == nil {
		return
	} else if !errors.Is(err, repo.ErrUserNotFound) {
		log.Printf("admin lookup failed: %v", err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("could not hash admin password: %v", err)
		return
	}

	now := time.Now()
	if _, err := users.CreateUser(models.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}); err != nil {
		log.Printf("could not seed admin user: %v", err)
	}
}
