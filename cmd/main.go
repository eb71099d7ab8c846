package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/zohaibkhan/booking-calendar-backend/config"
	"github.com/zohaibkhan/booking-calendar-backend/database"
	"github.com/zohaibkhan/booking-calendar-backend/internal/event"
	"github.com/zohaibkhan/booking-calendar-backend/routes"
	"github.com/zohaibkhan/booking-calendar-backend/utils"
)

// @title Booking Calendar API
// @version 1.0
// @description Date-keyed booking and events calendar service
func main() {
	cfg := config.Load()

	// Redis backs the events store and/or the rate limiter when configured
	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatalf("❌ Redis init failed: %v", err)
		}
		cancel()
		log.Println("✅ Redis connected")
	}

	var repo event.Repository
	switch cfg.EventsBackend {
	case "postgres":
		db := database.Connect(cfg)
		if err := db.AutoMigrate(&event.EventDay{}); err != nil {
			log.Fatalf("❌ DB AutoMigrate failed: %v", err)
		}
		repo = event.NewPostgresRepository(db)
	case "redis":
		if rdb == nil {
			log.Fatal("❌ EVENTS_BACKEND=redis requires REDIS_ADDR")
		}
		repo = event.NewRedisRepository(rdb)
	case "file":
		repo = event.NewFileRepository(cfg.EventsFilePath)
	default:
		log.Fatalf("❌ Unknown EVENTS_BACKEND %q (want file, postgres or redis)", cfg.EventsBackend)
	}

	// Identity verification: Firebase in production, HS256 dev tokens as a
	// local fallback
	if err := utils.InitFirebase(cfg); err != nil {
		if cfg.AuthDevSecret != "" {
			log.Printf("⚠️ Firebase unavailable (%v), using AUTH_DEV_SECRET token verification", err)
		} else {
			log.Printf("⚠️ Firebase initialization failed: %v", err)
			log.Println("⚠️ No verifier configured; all API requests will be rejected")
		}
	}

	utils.InitializeKafka(cfg)
	defer utils.CloseKafka()

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Content-Length", "X-Requested-With", "Cache-Control", "Pragma"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Setup(router, cfg, repo, rdb)

	fmt.Printf("🚀 Server starting on port %s\n", cfg.Port)
	fmt.Printf("🗓  Events backend: %s\n", cfg.EventsBackend)
	if utils.IsFirebaseEnabled() {
		fmt.Println("✅ Firebase token verification enabled")
	}
	if utils.IsKafkaEnabled() {
		fmt.Printf("✅ Change feed publishing to %s\n", cfg.KafkaTopic)
	}

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
