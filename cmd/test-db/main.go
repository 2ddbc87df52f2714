// Command test-db checks connectivity to the backing stores using the same
// configuration the server loads.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/Piyushpg25/Authentication-system/internal/config"
	"github.com/Piyushpg25/Authentication-system/internal/infrastructure/database"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, _, err := database.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("mongo: %v", err)
	}
	defer client.Disconnect(ctx)
	fmt.Printf("mongo ok: %s/%s\n", cfg.MongoURI, cfg.MongoDatabase)

	if cfg.OTPLimitEnabled {
		rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()
		if err := database.PingRedis(ctx, rdb); err != nil {
			log.Fatalf("redis: %v", err)
		}
		fmt.Printf("redis ok: %s\n", cfg.RedisAddr)
	} else {
		fmt.Println("redis skipped: otp limiter disabled")
	}
}
