package main

import (
	"log"
	"net/http"

	"cfachievements/internal/config"
	"cfachievements/internal/report"
	"cfachievements/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	users, err := report.ReadJSON(cfg.Report.OutputPath)
	if err != nil {
		log.Fatalf("Failed to load report: %v", err)
	}

	router := server.NewRouter(users, cfg.Server.IconsDir)
	log.Printf("Achievement server starting on port %s (%d users)", cfg.Server.HTTPPort, len(users))
	if err := http.ListenAndServe(":"+cfg.Server.HTTPPort, router); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
