// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"

	"octoview/internal/models"
	"octoview/internal/observability"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userMutableColumns are the profile attributes a refresh may overwrite.
// github_id and login are deliberately absent: the upstream numeric id is
// written once on create and never changed, so an upstream identity swap
// cannot corrupt history.
var userMutableColumns = []string{
	"name",
	"avatar_url",
	"html_url",
	"bio",
	"location",
	"company",
	"blog",
	"twitter_username",
	"public_repos",
	"public_gists",
	"followers",
	"following",
	"last_refreshed_at",
	"updated_at",
}

// UserRepository defines persistence operations for synced GitHub profiles.
type UserRepository interface {
	// GetByLogin returns the stored profile for a login (case-insensitive),
	// or (nil, nil) when no profile exists.
	GetByLogin(ctx context.Context, login string) (*models.User, error)

	// Reconcile merges a freshly fetched profile and its filtered events
	// into the store as a single transaction: the profile is upserted keyed
	// by login, events are inserted keyed by their GitHub event id with
	// conflicts ignored. Returns the persisted profile row.
	Reconcile(ctx context.Context, user *models.User, events []models.Event) (*models.User, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("LOWER(login) = LOWER(?)", login).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Reconcile(ctx context.Context, user *models.User, events []models.Event) (*models.User, error) {
	var persisted models.User

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "login"}},
			DoUpdates: clause.AssignmentColumns(userMutableColumns),
		}).Create(user).Error; err != nil {
			return err
		}

		// Re-read inside the transaction: on the conflict path the driver
		// is not guaranteed to populate the existing row's id.
		if err := tx.Where("LOWER(login) = LOWER(?)", user.Login).First(&persisted).Error; err != nil {
			return err
		}

		if len(events) == 0 {
			return nil
		}

		for i := range events {
			events[i].UserID = persisted.ID
		}

		// Events are immutable: a conflicting id means we already hold the
		// event, so the insert is a no-op rather than an update.
		res := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "github_id"}},
			DoNothing: true,
		}).Create(&events)
		if res.Error != nil {
			return res.Error
		}
		observability.EventsPersisted.Add(float64(res.RowsAffected))
		return nil
	})
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	return &persisted, nil
}
