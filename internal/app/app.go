package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ibradi0157/mon-blog/internal/config"
	"github.com/ibradi0157/mon-blog/internal/database"
	"github.com/ibradi0157/mon-blog/internal/legal/repository"
	"github.com/ibradi0157/mon-blog/internal/oidc"
	"github.com/ibradi0157/mon-blog/internal/storage"
	"github.com/ibradi0157/mon-blog/internal/tokens"
	"github.com/ibradi0157/mon-blog/pkg/logger"
	"github.com/ibradi0157/mon-blog/pkg/middleware"
	"github.com/redis/go-redis/v9"
)

// Backend is an opened storage driver.
type Backend struct {
	Repo  repository.Repository
	Ping  func(ctx context.Context) error
	Close func()
}

// OpenBackend connects the repository selected by STORAGE_DRIVER. rdb may be
// nil unless the redis driver is selected.
func OpenBackend(ctx context.Context, cfg *config.Config, rdb *redis.Client) (*Backend, error) {
	noop := func() {}
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.Warnf("using in-memory legal page storage; content is lost on restart")
		return &Backend{Repo: repository.NewMemoryRepo(), Ping: func(context.Context) error { return nil }, Close: noop}, nil

	case config.DriverMongo:
		client, err := database.ConnectMongoRetry(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout, 5)
		if err != nil {
			return nil, err
		}
		col := client.Database(cfg.MongoDB.Database).Collection(cfg.MongoDB.Collection)
		repo, err := repository.NewMongoRepo(ctx, col)
		if err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &Backend{
			Repo:  repo,
			Ping:  func(ctx context.Context) error { return client.Ping(ctx, nil) },
			Close: func() { _ = client.Disconnect(context.Background()) },
		}, nil

	case config.DriverPostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, err
		}
		if cfg.Postgres.Migrate {
			if err := database.Migrate(ctx, pool); err != nil {
				pool.Close()
				return nil, err
			}
		}
		return &Backend{Repo: repository.NewPostgresRepo(pool), Ping: pool.Ping, Close: pool.Close}, nil

	case config.DriverRedis:
		if rdb == nil {
			return nil, fmt.Errorf("redis driver selected but no redis client is available")
		}
		return &Backend{
			Repo:  repository.NewRedisRepo(rdb, cfg.Redis.KeyPrefix),
			Ping:  func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
			Close: noop,
		}, nil

	case config.DriverMinIO:
		mc := cfg.MinIO
		objects, err := storage.NewMinIOStorage(ctx, &mc)
		if err != nil {
			return nil, err
		}
		return &Backend{Repo: repository.NewObjectRepo(objects, mc.Prefix), Ping: objects.Ping, Close: noop}, nil
	}
	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// BuildVerifier picks how admin tokens are checked: Keycloak when
// configured, then the shared JWT secret, then (opt-in) unverified claims.
// It returns nil when none is available.
func BuildVerifier(ctx context.Context, cfg *config.Config) (middleware.Verifier, string) {
	if cfg.Keycloak.URL != "" && cfg.Keycloak.ClientID != "" {
		ver, err := oidc.NewKeycloakVerifier(ctx, cfg.Keycloak)
		if err == nil {
			return ver, "keycloak"
		}
		logger.Warnf("failed to initialize OIDC verifier: %v", err)
	}
	if strings.TrimSpace(cfg.JWT.Secret) != "" {
		return tokens.NewHMACVerifier(cfg.JWT.Secret), "jwt"
	}
	if cfg.Admin.AllowInsecure {
		logger.Warn("enabling insecure token verifier (integration mode)")
		return oidc.NewInsecureVerifier(), "insecure"
	}
	return nil, "none"
}
