package main

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"sheet_relay/internal/app/di"
	"sheet_relay/internal/app/router"
	pifhandler "sheet_relay/internal/feature/piflist/transport/handler"
	pifusecase "sheet_relay/internal/feature/piflist/usecase"
	relayhandler "sheet_relay/internal/feature/relay/transport/handler"
	relayusecase "sheet_relay/internal/feature/relay/usecase"
	symbolhandler "sheet_relay/internal/feature/symbolcache/transport/handler"
	symbolusecase "sheet_relay/internal/feature/symbolcache/usecase"
	"sheet_relay/internal/platform/externalapi/gas"
	infraredis "sheet_relay/internal/platform/redis"
	"sheet_relay/internal/shared/ratelimiter"
)

func main() {
	// Load .env for local development
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// Redis is optional; without it the symbol snapshot lives in process memory
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Using in-memory symbol store.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Outbound Apps Script client
	cfg := gas.LoadConfig()
	if cfg.ForwardURL == "" {
		log.Println("[WARN] GAS_FORWARD_URL is not set. Forward requests must carry destinationOverride.")
	}
	gasClient := di.NewGasClient(cfg)

	// Apps Script enforces per-minute quotas on web app invocations
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)

	// Store
	snapshotStore := di.NewSnapshotStore(rdb)

	// Usecase
	relayUC := relayusecase.NewRelayUsecase(gasClient, cfg.ForwardURL, limiter)
	pifUC := pifusecase.NewPifUsecase(gasClient)
	symbolUC := symbolusecase.NewSymbolUsecase(snapshotStore)

	// Handler
	relayH := relayhandler.NewRelayHandler(relayUC)
	pifH := pifhandler.NewPifHandler(pifUC)
	symbolH := symbolhandler.NewSymbolHandler(symbolUC)

	// Router
	r := router.NewRouter(relayH, pifH, symbolH)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
