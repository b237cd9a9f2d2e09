package models

import (
	"time"
)

// EventTypeUnknown is stored when the upstream record carries no event type.
const EventTypeUnknown = "unknown"

// Event is a persisted GitHub activity event belonging to a User.
//
// Events are immutable: once a row exists for a GitHubID it is never updated
// or deleted by the sync layer. Re-ingesting the same event id is a no-op,
// which makes event ingestion idempotent.
type Event struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	GitHubID string `gorm:"column:github_id;uniqueIndex;not null" json:"github_id"`
	UserID   uint   `gorm:"not null;index" json:"-"`

	Type     string `gorm:"not null" json:"type"`
	RepoID   int64  `gorm:"not null" json:"repo_id"`
	RepoName string `gorm:"not null" json:"repo_name"`
	RepoURL  string `gorm:"column:repo_url" json:"repo_url"`
	Public   bool   `gorm:"not null;default:false" json:"public"`

	Action      *string `json:"action,omitempty"`
	CommitCount int     `gorm:"not null;default:0" json:"commit_count"`

	// EventCreatedAt is the upstream creation timestamp, used for the
	// newest-first ordering of a user's recent activity.
	EventCreatedAt time.Time `gorm:"not null;index" json:"event_created_at"`

	CreatedAt time.Time `json:"-"`
}
