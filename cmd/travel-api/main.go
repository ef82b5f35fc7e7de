package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"

	goTravel "github.com/MrEthical07/goTravel"
	"github.com/MrEthical07/goTravel/httpapi"
)

type appConfig struct {
	HTTPAddr      string `envconfig:"HTTP_ADDR" default:":8080"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:""`
	RedisPrefix   string `envconfig:"REDIS_PREFIX" default:"ts"`
	SeedDemoUsers bool   `envconfig:"SEED_DEMO_USERS" default:"false"`
}

func main() {
	_ = godotenv.Load(".env")

	var cfg appConfig
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatal(err)
	}

	engineCfg := goTravel.DefaultConfig()
	engineCfg.Session.RedisPrefix = cfg.RedisPrefix

	builder := goTravel.New().
		WithConfig(engineCfg).
		WithAuditSink(goTravel.NewJSONWriterSink(os.Stderr))

	if cfg.RedisAddr != "" {
		builder = builder.WithRedis(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	}

	engine, err := builder.Build()
	if err != nil {
		log.Fatal(err)
	}
	defer engine.Close()

	if cfg.SeedDemoUsers {
		seedDemoUsers(engine)
	}

	server := httpapi.NewServer(engine)
	if err := server.Router().Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}

// seedDemoUsers registers the two well-known demo accounts. Accounts log in
// normally afterwards; no sessions are pre-issued.
func seedDemoUsers(engine *goTravel.Engine) {
	ctx := context.Background()

	demo := []goTravel.RegisterRequest{
		{
			Name:     "Admin User",
			Email:    "admin@example.com",
			Password: "adminpass",
			Role:     "Admin",
		},
		{
			Name:     "John Doe",
			Email:    "john.doe@example.com",
			Password: "password123",
			Role:     "User",
		},
	}

	for _, req := range demo {
		if _, err := engine.Register(ctx, req); err != nil {
			log.Printf("travel-api: demo user %s not seeded: %v", req.Email, err)
		}
	}

	log.Print("travel-api: demo users loaded")
}
