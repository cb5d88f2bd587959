package main

import (
	"go.uber.org/zap"

	"github.com/hakikifaturrahman/simlog/internal/seed"
	"github.com/hakikifaturrahman/simlog/pkg/config"
	"github.com/hakikifaturrahman/simlog/pkg/database"
	"github.com/hakikifaturrahman/simlog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logger.InitLogger(cfg)
	log := logger.GetLogger()

	if err := database.InitDB(cfg); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	log.Info("Seeding database...", zap.String("dir", cfg.Seed.Dir))
	if err := seed.Load(database.GetDB(), cfg.Seed.Dir); err != nil {
		log.Fatal("Seeding failed", zap.Error(err))
	}
	log.Info("Database seeded successfully")
}
