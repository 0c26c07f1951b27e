package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/lixenwraith/astar-grid/api"
	"github.com/lixenwraith/astar-grid/api/i"
	searchapi "github.com/lixenwraith/astar-grid/api/search"
	"github.com/lixenwraith/astar-grid/cache"
	"github.com/lixenwraith/astar-grid/config"
)

const memoryCacheEntries = 1024

// initCache connects to Redis when configured, falling back to an in-process cache
func initCache(cfg config.Config) (cache.ResultCache, func()) {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if cfg.RedisAddr == "" {
		log.Printf("[APP] [INFO] no redis address, using in-process cache")
		return cache.NewMemory(memoryCacheEntries, ttl), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[APP] [WARN] redis ping failed, using in-process cache: %v", err)
		_ = client.Close()
		return cache.NewMemory(memoryCacheEntries, ttl), func() {}
	}

	log.Printf("[APP] [INFO] connected to redis at %s", cfg.RedisAddr)
	return cache.NewRedis(client, cfg.CacheTTLSeconds), func() { _ = client.Close() }
}

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	resultCache, closeCache := initCache(cfg)
	defer closeCache()

	router := api.NewRouter(api.Config{
		Addr:        cfg.HTTPAddr,
		BaseURL:     cfg.BaseURL,
		Controllers: []i.Controller{searchapi.NewSearchController(resultCache, cfg.MaxCells)},
	})
	log.Printf("[APP] [INFO] listening on %s%s", cfg.HTTPAddr, cfg.BaseURL)

	if err := router.Run(); err != nil {
		log.Printf("[APP] [ERROR] starting server: %v", err)
		closeCache()
		os.Exit(1)
	}
}
