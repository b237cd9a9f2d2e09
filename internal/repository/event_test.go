package repository

import (
	"context"
	"testing"
	"time"

	"octoview/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_ListRecentByUser(t *testing.T) {
	db := openTestDB(t)
	users := NewUserRepository(db)
	events := NewEventRepository(db)
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Second)

	// Inserted out of chronological order on purpose.
	persisted, err := users.Reconcile(ctx, fixtureUser("octocat", 583231, now), []models.Event{
		fixtureEvent("2001", now.Add(-3*time.Hour)),
		fixtureEvent("2003", now.Add(-1*time.Hour)),
		fixtureEvent("2002", now.Add(-2*time.Hour)),
	})
	require.NoError(t, err)

	t.Run("Orders newest first and applies limit", func(t *testing.T) {
		recent, err := events.ListRecentByUser(ctx, persisted.ID, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, "2003", recent[0].GitHubID)
		assert.Equal(t, "2002", recent[1].GitHubID)
	})

	t.Run("Scoped to the given user", func(t *testing.T) {
		other, err := users.Reconcile(ctx, fixtureUser("hubot", 480938, now), []models.Event{
			fixtureEvent("3001", now),
		})
		require.NoError(t, err)

		recent, err := events.ListRecentByUser(ctx, other.ID, 10)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, "3001", recent[0].GitHubID)
	})

	t.Run("Unknown user yields empty slice", func(t *testing.T) {
		recent, err := events.ListRecentByUser(ctx, 9999, 10)
		require.NoError(t, err)
		assert.Empty(t, recent)
	})
}
