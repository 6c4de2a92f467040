package main

import (
	"context"
	"log"

	"cfachievements/internal/achievement"
	"cfachievements/internal/achievement/rules"
	"cfachievements/internal/config"
	"cfachievements/internal/database"
	"cfachievements/internal/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGormConnection(database.Config{
		Driver:   cfg.Database.Driver,
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
		SSLMode:  cfg.Database.SSLMode,
		Path:     cfg.Database.Path,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	repos := database.NewRepos(db)

	registry := achievement.NewRegistry()
	rules.RegisterAll(ctx, registry, repos)
	log.Printf("Registered %d achievements", len(registry.Achievements()))

	stats, err := achievement.Evaluate(ctx, registry, repos.Users)
	if err != nil {
		log.Fatalf("Evaluation failed: %v", err)
	}

	users := report.Assemble(stats, cfg.Report.IconURLBase)
	if err := report.WriteJSON(cfg.Report.OutputPath, users); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	log.Printf("Wrote %d users to %s", len(users), cfg.Report.OutputPath)
}
