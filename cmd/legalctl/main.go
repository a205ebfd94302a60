// Command legalctl is an operator helper for the legal pages service.
//
//	legalctl seed    create a draft for every legal page that does not exist yet
//	legalctl token   print an admin bearer token signed with JWT_SECRET
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ibradi0157/mon-blog/internal/app"
	"github.com/ibradi0157/mon-blog/internal/config"
	"github.com/ibradi0157/mon-blog/internal/legal/service"
	"github.com/ibradi0157/mon-blog/internal/tokens"
	"github.com/ibradi0157/mon-blog/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: legalctl seed|token")
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	logger.Init(os.Getenv("LOG_LEVEL"))
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}

	switch os.Args[1] {
	case "seed":
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := seed(ctx, cfg); err != nil {
			logger.Fatalf("seed failed: %v", err)
		}
	case "token":
		tok, err := tokens.GenerateAccessToken(cfg.JWT.Secret, tokens.Subject{
			Sub:   "legalctl",
			Name:  "legalctl",
			Roles: []string{cfg.Admin.Role},
		}, cfg.JWT.AccessTokenTTL)
		if err != nil {
			logger.Fatalf("token: %v", err)
		}
		fmt.Println(tok)
	default:
		usage()
	}
}

func seed(ctx context.Context, cfg *config.Config) error {
	var rdb *redis.Client
	if cfg.Storage.Driver == config.DriverRedis {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr(), Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		defer rdb.Close()
	}
	be, err := app.OpenBackend(ctx, cfg, rdb)
	if err != nil {
		return err
	}
	defer be.Close()

	created, err := service.Seed(ctx, service.New(be.Repo))
	if err != nil {
		return err
	}
	if len(created) == 0 {
		logger.Infof("all legal pages already exist; nothing to seed")
		return nil
	}
	for _, slug := range created {
		logger.Infof("seeded draft legal page %q", slug)
	}
	return nil
}
