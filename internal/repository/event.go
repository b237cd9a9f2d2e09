package repository

import (
	"context"

	"octoview/internal/models"

	"gorm.io/gorm"
)

// EventRepository defines read operations for persisted activity events.
// Event writes only happen through UserRepository.Reconcile.
type EventRepository interface {
	// ListRecentByUser returns up to limit events for a user, newest first
	// by the upstream creation timestamp.
	ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.Event, error)
}

type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository returns a new EventRepository implementation.
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) ListRecentByUser(ctx context.Context, userID uint, limit int) ([]models.Event, error) {
	events := make([]models.Event, 0, limit)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("event_created_at DESC").
		Limit(limit).
		Find(&events).Error
	if err != nil {
		return nil, models.NewInternalError(err)
	}
	return events, nil
}
