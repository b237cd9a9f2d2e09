// Package service contains the business logic sitting between the HTTP
// handlers and the repositories and GitHub client.
package service

import "time"

const (
	// ProfileTTL is how long a synced profile is served without consulting
	// the GitHub API.
	ProfileTTL = time.Hour

	// RecentEventsLimit caps how many push events are kept and served per
	// user.
	RecentEventsLimit = 10

	// PushEventType is the only event type the activity feed surfaces.
	PushEventType = "PushEvent"
)

// IsFresh reports whether a profile refreshed at lastRefreshedAt is still
// servable at now without an upstream fetch. A zero lastRefreshedAt means the
// profile has never been refreshed and is always stale. A profile exactly
// ProfileTTL old is stale.
func IsFresh(lastRefreshedAt, now time.Time) bool {
	if lastRefreshedAt.IsZero() {
		return false
	}
	return now.Sub(lastRefreshedAt) < ProfileTTL
}
