// Command session issues a bearer token for a member so that age-based fares
// can be exercised without the login service.
//
//	go run ./cmd/session -member 7 -age 15
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/subway-path-service/internal/config"
	"github.com/subway-path-service/internal/domain"
	"github.com/subway-path-service/internal/pkg/logger"
	"github.com/subway-path-service/internal/repository/cache"
	"go.uber.org/zap"
)

func main() {
	memberID := flag.Int64("member", 0, "member id")
	age := flag.Int("age", -1, "member age")
	ttl := flag.Duration("ttl", 0, "session lifetime (defaults to SESSION_TTL)")
	flag.Parse()

	if *memberID <= 0 || *age < 0 {
		fmt.Fprintln(os.Stderr, "usage: session -member <id> -age <years> [-ttl 1h]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	redisClient, err := cache.NewRedis(cfg, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()

	lifetime := cfg.Session.TTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	token, err := cache.NewSessionRepository(redisClient).Create(ctx, domain.LoginMember{ID: *memberID, Age: *age}, lifetime)
	if err != nil {
		log.Fatal("Failed to create session", zap.Error(err))
	}

	fmt.Println(token)
}
