// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// User is the locally persisted copy of a GitHub user profile.
//
// GitHubID is the upstream numeric id. It is written once when the row is
// created and never changed afterwards, even if a refresh reports a different
// id for the same login. It is indexed but not unique: a renamed GitHub
// account legitimately surfaces the same id under a new login, which syncs
// as a separate profile. Login holds the canonical casing returned by
// GitHub; lookups compare case-insensitively.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"-"`
	GitHubID int64  `gorm:"column:github_id;index;not null" json:"github_id"`
	Login    string `gorm:"uniqueIndex;not null" json:"login"`

	Name            *string `json:"name,omitempty"`
	AvatarURL       *string `gorm:"column:avatar_url" json:"avatar_url,omitempty"`
	HTMLURL         *string `gorm:"column:html_url" json:"html_url,omitempty"`
	Bio             *string `json:"bio,omitempty"`
	Location        *string `json:"location,omitempty"`
	Company         *string `json:"company,omitempty"`
	Blog            *string `json:"blog,omitempty"`
	TwitterUsername *string `json:"twitter_username,omitempty"`

	PublicRepos int `gorm:"not null;default:0" json:"public_repos"`
	PublicGists int `gorm:"not null;default:0" json:"public_gists"`
	Followers   int `gorm:"not null;default:0" json:"followers"`
	Following   int `gorm:"not null;default:0" json:"following"`

	// LastRefreshedAt marks the last successful sync against the GitHub API.
	// The zero value means the profile has never been refreshed.
	LastRefreshedAt time.Time `json:"last_refreshed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Events []Event `gorm:"foreignKey:UserID" json:"events,omitempty"`
}
