package repository

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/ibradi0157/mon-blog/internal/database"
	"github.com/stretchr/testify/require"
)

// Runs against a real server when MONGODB_URI is set, in a throwaway
// collection.
func TestMongoRepo(t *testing.T) {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		t.Skip("MONGODB_URI not set")
	}
	ctx := context.Background()
	client, err := database.ConnectMongo(ctx, uri, 10*time.Second)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(context.Background()) })

	col := client.Database("monblog_test").Collection("legal_pages_" + uuid.NewString()[:8])
	t.Cleanup(func() { _ = col.Drop(context.Background()) })

	repo, err := NewMongoRepo(ctx, col)
	require.NoError(t, err)
	testRepository(t, repo)
}
