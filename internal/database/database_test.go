package database

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMigrationsEmbedded(t *testing.T) {
	entries, err := fs.ReadDir(embedMigrations, "migrations")
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	b, err := fs.ReadFile(embedMigrations, "migrations/"+entries[0].Name())
	require.NoError(t, err)
	sql := string(b)
	require.Contains(t, sql, "-- +goose Up")
	require.Contains(t, sql, "-- +goose Down")
	require.True(t, strings.Contains(sql, "slug       TEXT NOT NULL UNIQUE"), "slug uniqueness lives in the schema")
}

func TestConnectMongoRetryHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ConnectMongoRetry(ctx, "mongodb://127.0.0.1:1", 50*time.Millisecond, 3)
	require.Error(t, err)
}
