package main

import (
	"context"
	"log"
	"os"

	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"

	"github.com/zaheerabbaspac-hue/PAC/internal/config"
	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
	"github.com/zaheerabbaspac-hue/PAC/internal/server"
	"github.com/zaheerabbaspac-hue/PAC/pkg/database"
	"github.com/zaheerabbaspac-hue/PAC/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Profile{},
		&entity.Class{},
		&entity.Section{},
		&entity.AttendanceRecord{},
		&entity.Homework{},
		&entity.Notice{},
		&entity.FeeRecord{},
		&entity.LeaveRequest{},
		&entity.GalleryImage{},
		&entity.Setting{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if err := server.SeedSuperAdmin(context.Background(), db); err != nil {
		log.Fatalf("failed to seed super admin: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Printf("WARNING: redis unreachable, realtime and token revocation disabled: %v", err)
			rdb = nil
		}
	}

	var meili meilisearch.ServiceManager
	if cfg.MeiliMasterKey != "" {
		meili = meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}

	var imageStore storage.ImageStorage
	if os.Getenv("CLOUDINARY_URL") != "" {
		imageStore, err = storage.NewCloudinaryStorage()
		if err != nil {
			log.Printf("WARNING: image storage disabled: %v", err)
		}
	}

	srv := server.New(cfg, db, rdb, meili, imageStore)
	if err := srv.Run(); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
