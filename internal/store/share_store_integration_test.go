//go:build integration

package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"watchthis/sharing/internal/database"
	"watchthis/sharing/internal/models"
)

// newPostgresStore starts a throwaway PostgreSQL container and returns a
// migrated store on top of it.
func newPostgresStore(t *testing.T) *ShareStore {
	t.Helper()
	ctx := context.Background()

	// PostgreSQL logs "ready" once during bootstrap and once when it accepts
	// external connections.
	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("sharing_test"),
		postgres.WithUsername("sharing"),
		postgres.WithPassword("sharing"),
		testcontainers.WithWaitStrategyAndDeadline(2*time.Minute,
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort("5432/tcp"),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := database.Open(database.Config{Driver: database.DriverPostgres, URL: dsn, MaxOpenConns: 5, MaxIdleConns: 2}, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() { _ = database.Close(db) })

	return NewShareStore(db, WithClock(stepClock()))
}

func TestPostgresShareLifecycle(t *testing.T) {
	s := newPostgresStore(t)
	ctx := context.Background()

	share, err := s.Create(ctx, NewShare{MediaID: "media-1", FromUserID: alice, ToUserID: bob, Message: "  hi  "})
	require.NoError(t, err)
	assert.Equal(t, "hi", *share.Message)

	watched, err := s.Update(ctx, share.ID, ShareUpdate{Status: statusPtr(models.StatusWatched)})
	require.NoError(t, err)
	require.NotNil(t, watched.WatchedAt)

	archived, err := s.Update(ctx, share.ID, ShareUpdate{Status: statusPtr(models.StatusArchived)})
	require.NoError(t, err)
	assert.True(t, watched.WatchedAt.Equal(*archived.WatchedAt))

	mustCreate(t, s, alice, carol)
	stats, err := s.StatsByField(ctx, FieldFromUser, alice)
	require.NoError(t, err)
	assert.Equal(t, StatusCounts{Pending: 1, Archived: 1, Total: 2}, stats)

	page, err := s.ListByField(ctx, FieldFromUser, alice, ListOptions{Page: 1, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, page.Items, 1)
	assert.True(t, page.HasNext)

	require.NoError(t, s.Delete(ctx, share.ID))
	_, err = s.FindByID(ctx, share.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	require.NoError(t, s.Ping(ctx))
}
