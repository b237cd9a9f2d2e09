// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"octoview/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedOptions controls how much demo data is generated.
type SeedOptions struct {
	Users         int
	EventsPerUser int
	// DryRun builds entities without writing to the database.
	DryRun bool
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	rng  *rand.Rand
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{
		db:     db,
		opts:   opts,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		nextID: 1000,
	}
}

// BuildUser constructs a synced-looking profile without persisting it.
// Optional override functions may modify the generated user.
func (f *Factory) BuildUser(overrides ...func(*models.User)) *models.User {
	login := fmt.Sprintf("%s-%d", gofakeit.Username(), gofakeit.Number(100, 999))
	name := gofakeit.Name()
	avatar := fmt.Sprintf("https://avatars.githubusercontent.com/u/%d", gofakeit.Number(1, 9999999))
	htmlURL := "https://github.com/" + login
	bio := gofakeit.Sentence(8)
	location := gofakeit.City()
	company := gofakeit.Company()
	blog := gofakeit.URL()

	// Spread refresh times so some profiles are fresh and some are stale.
	refreshedAgo := time.Duration(f.rng.Intn(180)) * time.Minute

	user := &models.User{
		GitHubID:        int64(gofakeit.Number(1000, 99999999)),
		Login:           login,
		Name:            &name,
		AvatarURL:       &avatar,
		HTMLURL:         &htmlURL,
		Bio:             &bio,
		Location:        &location,
		Company:         &company,
		Blog:            &blog,
		PublicRepos:     gofakeit.Number(0, 200),
		PublicGists:     gofakeit.Number(0, 50),
		Followers:       gofakeit.Number(0, 5000),
		Following:       gofakeit.Number(0, 500),
		LastRefreshedAt: time.Now().Add(-refreshedAgo),
	}

	for _, override := range overrides {
		override(user)
	}
	return user
}

// BuildPushEvent constructs a push event for the given user without
// persisting it.
func (f *Factory) BuildPushEvent(user *models.User, overrides ...func(*models.Event)) *models.Event {
	repoName := fmt.Sprintf("%s/%s", user.Login, gofakeit.Word())
	hoursBack := f.rng.Intn(72)
	minsBack := f.rng.Intn(60)

	event := &models.Event{
		GitHubID:       uuid.NewString(),
		UserID:         user.ID,
		Type:           "PushEvent",
		RepoID:         int64(gofakeit.Number(1000, 99999999)),
		RepoName:       repoName,
		RepoURL:        "https://api.github.com/repos/" + repoName,
		Public:         true,
		CommitCount:    gofakeit.Number(1, 10),
		EventCreatedAt: time.Now().Add(-time.Duration(hoursBack)*time.Hour - time.Duration(minsBack)*time.Minute),
	}

	for _, override := range overrides {
		override(event)
	}
	return event
}

// CreateUser persists a generated user.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := f.BuildUser(overrides...)
	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser %s (no DB write)", user.Login)
		return user, nil
	}
	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateEventsBatch persists multiple events in a single DB call.
func (f *Factory) CreateEventsBatch(events []*models.Event) error {
	if len(events) == 0 {
		return nil
	}
	if f.opts.DryRun {
		for _, ev := range events {
			f.nextID++
			ev.ID = f.nextID
		}
		log.Printf("[dry-run] CreateEventsBatch: %d events (no DB write)", len(events))
		return nil
	}
	return f.db.Create(&events).Error
}
