package main

import (
	"log"

	"github.com/ivasik-k7/leetcode-stats/internal/api"
	"github.com/ivasik-k7/leetcode-stats/internal/config"
	"github.com/ivasik-k7/leetcode-stats/internal/leetcode"
	"github.com/ivasik-k7/leetcode-stats/internal/stats"
)

type app struct {
	config   *config.Config
	handlers *api.Handlers
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lc := leetcode.New(cfg.LeetCode.GraphQLEndpoint, cfg.LeetCode.HTTPTimeout)

	svc := stats.NewService(lc)
	cache := api.NewCache(cfg.Cache.TTL)
	handlers := api.NewHandlers(svc, cache)

	app := &app{
		config:   cfg,
		handlers: handlers,
	}

	log.Printf("listening on :%d (upstream=%s)", cfg.Server.Port, cfg.LeetCode.GraphQLEndpoint)

	log.Fatal(app.serve())
}
