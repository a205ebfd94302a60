package app

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/ibradi0157/mon-blog/internal/config"
	"github.com/ibradi0157/mon-blog/internal/legal"
	"github.com/ibradi0157/mon-blog/internal/legal/repository"
	"github.com/ibradi0157/mon-blog/internal/legal/service"
	"github.com/ibradi0157/mon-blog/internal/oidc"
	"github.com/ibradi0157/mon-blog/internal/tokens"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenBackend_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverMemory}}
	be, err := OpenBackend(context.Background(), cfg, nil)
	require.NoError(t, err)
	defer be.Close()

	assert.IsType(t, &repository.MemoryRepo{}, be.Repo)
	assert.NoError(t, be.Ping(context.Background()))
}

func TestOpenBackend_Redis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: config.DriverRedis},
		Redis:   config.RedisConfig{KeyPrefix: "blog:"},
	}
	be, err := OpenBackend(context.Background(), cfg, rdb)
	require.NoError(t, err)
	defer be.Close()
	require.NoError(t, be.Ping(context.Background()))

	svc := service.New(be.Repo)
	_, err = svc.Upsert(context.Background(), legal.SlugTerms, legal.Content{Title: "Terms", Body: "<p>t</p>"})
	require.NoError(t, err)
	assert.True(t, mr.Exists("blog:page:terms"))
}

func TestOpenBackend_RedisWithoutClient(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.DriverRedis}}
	_, err := OpenBackend(context.Background(), cfg, nil)
	assert.Error(t, err)
}

func TestOpenBackend_UnknownDriver(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: "sqlite"}}
	_, err := OpenBackend(context.Background(), cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestBuildVerifier(t *testing.T) {
	ctx := context.Background()

	ver, kind := BuildVerifier(ctx, &config.Config{JWT: config.JWTConfig{Secret: "s3cret"}})
	assert.Equal(t, "jwt", kind)
	assert.IsType(t, &tokens.HMACVerifier{}, ver)

	ver, kind = BuildVerifier(ctx, &config.Config{Admin: config.AdminConfig{AllowInsecure: true}})
	assert.Equal(t, "insecure", kind)
	assert.IsType(t, &oidc.InsecureVerifier{}, ver)

	ver, kind = BuildVerifier(ctx, &config.Config{})
	assert.Equal(t, "none", kind)
	assert.Nil(t, ver)
}
