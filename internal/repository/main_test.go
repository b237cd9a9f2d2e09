package repository

import (
	"testing"
	"time"

	"octoview/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB gives each test an isolated in-memory database with the full
// schema migrated.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Event{}))

	return db
}

func strPtr(s string) *string {
	return &s
}

func fixtureUser(login string, githubID int64, refreshedAt time.Time) *models.User {
	return &models.User{
		GitHubID:        githubID,
		Login:           login,
		Name:            strPtr("The Octocat"),
		AvatarURL:       strPtr("https://avatars.githubusercontent.com/u/583231"),
		PublicRepos:     8,
		Followers:       1000,
		LastRefreshedAt: refreshedAt,
	}
}

func fixtureEvent(githubID string, createdAt time.Time) models.Event {
	return models.Event{
		GitHubID:       githubID,
		Type:           "PushEvent",
		RepoID:         42,
		RepoName:       "octocat/hello-world",
		RepoURL:        "https://api.github.com/repos/octocat/hello-world",
		Public:         true,
		CommitCount:    1,
		EventCreatedAt: createdAt,
	}
}
