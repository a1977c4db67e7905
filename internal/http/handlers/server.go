package handlers

import (
	"context"

	ai "github.com/prasetyoadi/warung-assistant/internal/ai"
	cart "github.com/prasetyoadi/warung-assistant/internal/cart"
	"github.com/prasetyoadi/warung-assistant/internal/redissvc"
	repo "github.com/prasetyoadi/warung-assistant/internal/repo"
	search "github.com/prasetyoadi/warung-assistant/internal/search"
	"github.com/redis/go-redis/v9"
)

var (
	productRepo  repo.ProductRepository
	settingRepo  repo.SettingRepository
	scanLogRepo  repo.ScanLogRepository
	userRepo     repo.UserRepository
	searchEngine *search.Engine
	aiProvider   *ai.Provider
	cartStore    cart.Store

	Rdb *redis.Client
	Ctx context.Context
)

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
	searchEngine = search.NewEngine(r)
}

func SetSettingRepo(r repo.SettingRepository) {
	settingRepo = r
}

func SetScanLogRepo(r repo.ScanLogRepository) {
	scanLogRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetAIProvider(p *ai.Provider) {
	aiProvider = p
}

func SetCartStore(s cart.Store) {
	cartStore = s
}

func SetRedisService(rs *redissvc.RedisService) {
	Rdb = rs.Rdb()
	Ctx = rs.Ctx()
}
