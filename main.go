package main

import (
	"bid-tracker/internal/bidtracker"
	"bid-tracker/internal/config"
	"bid-tracker/internal/metrics"
	"bid-tracker/internal/repository"
	"bid-tracker/internal/server"
	"bid-tracker/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load config", map[string]any{"error": err.Error()})
	}

	if err := utils.ConfigureLogger(cfg.Log.Level); err != nil {
		utils.Fatal("invalid log level", map[string]any{"level": cfg.Log.Level, "error": err.Error()})
	}
	gin.SetMode(cfg.Server.Mode)

	repo := repository.NewMemoryRepo()

	prepopulateItems(repo, cfg)

	tracker, err := bidtracker.New(repo)
	if err != nil {
		utils.Fatal("failed to create tracker", map[string]any{"error": err.Error()})
	}

	router := server.SetupRouter(tracker, metrics.New())

	utils.Info("starting auction server", map[string]any{
		"address": cfg.Address(),
		"items":   len(cfg.Items),
	})
	if err := router.Run(cfg.Address()); err != nil {
		utils.Fatal("failed to start server", map[string]any{"error": err.Error()})
	}
}

// prepopulateItems adds the configured catalogue to the in-memory repo
func prepopulateItems(repo *repository.MemoryRepo, cfg *config.Config) {
	for _, item := range cfg.Items {
		repo.AddItem(item)
	}
}
