package main

import (
	"context"
	"flag"
	"log"

	"cfachievements/internal/cfapi"
	"cfachievements/internal/config"
	"cfachievements/internal/database"
	"cfachievements/internal/fetcher"
	"cfachievements/internal/staging"

	"github.com/redis/go-redis/v9"
)

func main() {
	users := flag.Bool("users", false, "download rated users")
	contests := flag.Bool("contests", false, "download contests")
	standings := flag.Bool("standings", false, "download standings")
	hacks := flag.Bool("hacks", false, "download hacks")
	ratingChanges := flag.Bool("rating-changes", false, "download rating changes")
	submissions := flag.Bool("submissions", false, "download submissions")
	flag.Parse()

	if !*users && !*contests && !*standings && !*hacks && !*ratingChanges && !*submissions {
		log.Fatal("Nothing to download; pass at least one of -users -contests -standings -hacks -rating-changes -submissions")
	}

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

	if err := db.AutoMigrate(); err != nil {
		log.Fatalf("Failed to run auto-migration: %v", err)
	}

	repos := database.NewRepos(db)
	client := cfapi.New(cfg.API.BaseURL, cfg.API.Cooldown)
	ctx := context.Background()

	// Dependency order: users and contests first, everything else
	// references them.
	if *users {
		run(ctx, fetcher.NewUsersFetcher(client, repos.Users, cfg.Ingest.UserInsertBatchSize), "users")
	}
	if *contests {
		run(ctx, fetcher.NewContestsFetcher(client, repos.Contests), "contests")
	}
	if *standings {
		run(ctx, fetcher.NewStandingsFetcher(client, repos, cfg.Ingest.StoreBatchSize), "standings")
	}
	if *hacks {
		run(ctx, fetcher.NewHacksFetcher(client, repos), "hacks")
	}
	if *ratingChanges {
		run(ctx, fetcher.NewRatingChangesFetcher(client, repos), "rating-changes")
	}
	if *submissions {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := staging.NewRedisStore(redisClient)
		run(ctx, fetcher.NewSubmissionsFetcher(client, repos, store, cfg.Ingest.SubmissionPageSize, cfg.Ingest.StoreBatchSize), "submissions")
	}

	log.Print("Done")
}

type runner interface {
	Run(ctx context.Context) (*fetcher.Summary, error)
}

func run(ctx context.Context, f runner, phase string) {
	if _, err := f.Run(ctx); err != nil {
		log.Fatalf("Ingestion phase %s failed: %v", phase, err)
	}
}
