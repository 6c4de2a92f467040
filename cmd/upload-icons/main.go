package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"cfachievements/internal/config"

	storage_go "github.com/supabase-community/storage-go"
)

const cacheMaxAge = "public, max-age=86400"

func main() {
	iconsDir := flag.String("dir", "icons", "directory of SVG icon assets")
	overwrite := flag.Bool("overwrite", false, "overwrite existing objects")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Storage.URL == "" || cfg.Storage.ServiceKey == "" {
		log.Fatal("STORAGE_URL and STORAGE_SERVICE_KEY must be set")
	}

	client := storage_go.NewClient(cfg.Storage.URL, cfg.Storage.ServiceKey, nil)

	entries, err := os.ReadDir(*iconsDir)
	if err != nil {
		log.Fatalf("Failed to read icons directory: %v", err)
	}

	contentType := "image/svg+xml"
	cacheControl := cacheMaxAge
	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".svg" {
			continue
		}

		path := filepath.Join(*iconsDir, entry.Name())
		file, err := os.Open(path)
		if err != nil {
			log.Fatalf("Failed to open %s: %v", path, err)
		}

		_, err = client.UploadFile(cfg.Storage.Bucket, entry.Name(), file, storage_go.FileOptions{
			ContentType:  &contentType,
			CacheControl: &cacheControl,
			Upsert:       overwrite,
		})
		file.Close()
		if err != nil {
			log.Fatalf("Failed to upload %s: %v", entry.Name(), err)
		}
		log.Printf("Uploaded %s", entry.Name())
		uploaded++
	}

	log.Printf("Uploaded %d icons to bucket %s", uploaded, cfg.Storage.Bucket)
}
