package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"interviewflow/internal/cache"
	"interviewflow/internal/config"
	"interviewflow/internal/registry"
	"interviewflow/internal/repository"
	"interviewflow/internal/service"
	"interviewflow/internal/transport/rest"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("started")
	ctx := context.Background()

	cfg := config.Load()
	log.Printf("AI Config:")
	log.Printf("  Model:   %s", cfg.AI.Model)
	log.Printf("  Timeout: %dms", cfg.AI.TimeoutMS)
	if cfg.AI.IsEnabled() {
		log.Println("  API Key: configured")
	} else {
		log.Println("  API Key: NOT SET (every AI call will use local fallbacks)")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database("interviewflow")

	// Redis connection
	redisAddr := cfg.RedisURI
	// Remove redis:// prefix if present
	if len(redisAddr) > 8 && redisAddr[:8] == "redis://" {
		redisAddr = redisAddr[8:]
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: redisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Initialize repositories
	resumeRepo := repository.NewResumeRepo(db)
	trackerRepo := repository.NewTrackerRepo(db)

	// Initialize history store
	historyStore := cache.NewHistoryCache(rdb)

	// Initialize services
	groq := service.NewGroqClient(&cfg.AI)
	sessions := registry.NewRegistry()
	orchestrator := service.NewOrchestrator(sessions, groq, groq, groq)
	orchestrator.SetHistoryStore(historyStore)

	historySvc := service.NewHistoryService(historyStore)
	resumeSvc := service.NewResumeService(resumeRepo, cfg.DataDir)
	trackerSvc := service.NewTrackerService(trackerRepo)

	// Create router with container
	container := &rest.Container{
		Orchestrator:   orchestrator,
		HistoryService: historySvc,
		ResumeService:  resumeSvc,
		TrackerService: trackerSvc,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /api/interview/start")
		log.Println("  POST /api/interview/{sessionId}/answer")
		log.Println("  POST /api/interview/{sessionId}/telemetry")
		log.Println("  POST /api/interview/{sessionId}/end")
		log.Println("  GET  /api/interview/history")
		log.Println("  GET  /api/dashboard/stats")
		log.Println("  POST/GET /api/resume")
		log.Println("  GET/POST /api/tracker")
		log.Println("  WS   /api/ws/interview/{sessionId}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
