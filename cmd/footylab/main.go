package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ironforge/footylab/internal/api/rest"
	"github.com/ironforge/footylab/internal/api/websocket"
	"github.com/ironforge/footylab/internal/cache"
	"github.com/ironforge/footylab/internal/config"
	"github.com/ironforge/footylab/internal/genjob"
	"github.com/ironforge/footylab/internal/publisher"
	"github.com/ironforge/footylab/internal/store"
)

const (
	serviceName    = "footylab"
	serviceVersion = "1.0.0"
)

func main() {
	log.Printf("Starting %s v%s - Synthetic League Dashboard", serviceName, serviceVersion)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := store.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	log.Println("✓ Connected to database")

	// Run migrations
	if err := db.RunMigrations(); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// Initialize Redis client with retry logic
	var redisCache *cache.RedisCache
	maxRetries := 30
	retryDelay := 2 * time.Second

	log.Println("Connecting to Redis...")
	for i := 0; i < maxRetries; i++ {
		redisCache, err = cache.NewRedisCache(cfg.RedisURL)
		if err == nil {
			break
		}

		if i < maxRetries-1 {
			log.Printf("Redis connection attempt %d/%d failed: %v (retrying in %v)", i+1, maxRetries, err, retryDelay)
			time.Sleep(retryDelay)
		} else {
			log.Fatalf("Failed to connect to Redis after %d attempts: %v", maxRetries, err)
		}
	}
	defer redisCache.Close()

	log.Println("✓ Connected to Redis")

	redisPublisher := publisher.NewRedisStreamPublisher(redisCache.Client())
	log.Println("✓ Redis publisher initialized")

	// WebSocket server is also a regeneration notifier, so build it first.
	wsServer := websocket.NewServer(db)

	// Initialize the regeneration job service
	genService := genjob.NewService(db, log.Default(), redisPublisher, redisCache, wsServer)

	// Generate the initial dataset if the store is empty
	bootCtx, bootCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	loaded, err := db.HasDataset(bootCtx, cfg.Season)
	if err != nil {
		bootCancel()
		log.Fatalf("Failed to check for existing dataset: %v", err)
	}
	if !loaded {
		log.Printf("No dataset for %s; generating %d clubs...", cfg.Season, cfg.NumClubs)
		ds, err := genService.RunNow(bootCtx, genjob.Request{
			Seed:     cfg.Seed,
			NumClubs: cfg.NumClubs,
			Season:   cfg.Season,
		})
		if err != nil {
			bootCancel()
			log.Fatalf("Failed to generate initial dataset: %v", err)
		}
		log.Printf("✓ Initial dataset generated (run %s, seed %d)", ds.RunID, ds.Seed)
	} else {
		if run, err := db.LatestRun(bootCtx); err == nil {
			log.Printf("✓ Dataset for %s already loaded (run %s, seed %d, generated %s)",
				cfg.Season, run.RunID, run.Seed, run.GeneratedAt.Format(time.RFC3339))
		} else {
			log.Printf("✓ Dataset for %s already loaded", cfg.Season)
		}
	}
	bootCancel()

	genService.Start()
	log.Println("✓ Regeneration service started")

	// Initialize REST API server
	restServer := rest.NewServer(cfg.RESTPort, db, redisCache, genService)
	go func() {
		log.Printf("Starting REST API server on port %s", cfg.RESTPort)
		if err := restServer.Start(); err != nil {
			log.Printf("REST server error: %v", err)
		}
	}()

	log.Printf("✓ REST API server listening on :%s", cfg.RESTPort)

	go func() {
		log.Printf("Starting WebSocket server on port %s", cfg.WSPort)
		if err := wsServer.Start(cfg.WSPort); err != nil {
			log.Printf("WebSocket server error: %v", err)
		}
	}()

	log.Printf("✓ WebSocket server listening on :%s", cfg.WSPort)
	log.Printf("✓ Footylab v%s started successfully", serviceVersion)
	log.Printf("  REST API: http://0.0.0.0:%s", cfg.RESTPort)
	log.Printf("  WebSocket: ws://0.0.0.0:%s", cfg.WSPort)

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down footylab gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := genService.Shutdown(shutdownCtx); err != nil {
		log.Printf("Regeneration service shutdown error: %v", err)
	}
	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("REST API server shutdown error: %v", err)
	}
	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("WebSocket server shutdown error: %v", err)
	}

	log.Println("Footylab stopped")
}
