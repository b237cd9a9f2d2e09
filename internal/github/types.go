package github

import (
	"time"
)

// User is the portion of the GitHub /users/:username response we care about.
// GitHub returns a much larger object; we only unmarshal the fields we need.
type User struct {
	ID              int64   `json:"id"`
	Login           string  `json:"login"`
	Name            *string `json:"name"`
	AvatarURL       *string `json:"avatar_url"`
	HTMLURL         *string `json:"html_url"`
	Bio             *string `json:"bio"`
	Location        *string `json:"location"`
	Company         *string `json:"company"`
	Blog            *string `json:"blog"`
	TwitterUsername *string `json:"twitter_username"`
	PublicRepos     int     `json:"public_repos"`
	PublicGists     int     `json:"public_gists"`
	Followers       int     `json:"followers"`
	Following       int     `json:"following"`
}

// Event is a single entry from the /users/:username/events/public feed.
// GitHub returns the feed newest-first.
type Event struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Repo      EventRepo    `json:"repo"`
	Payload   EventPayload `json:"payload"`
	Public    bool         `json:"public"`
	CreatedAt time.Time    `json:"created_at"`
}

// EventRepo identifies the repository an event belongs to. URL is the API
// URL (https://api.github.com/repos/...); clients rewrite it for display.
type EventRepo struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// EventPayload carries the event-type-specific fields we surface.
// Size is the number of commits in a push.
type EventPayload struct {
	Action string `json:"action"`
	Size   int    `json:"size"`
}

// Gist is an entry from the /users/:username/gists listing.
type Gist struct {
	ID          string              `json:"id"`
	Description string              `json:"description"`
	HTMLURL     string              `json:"html_url"`
	Public      bool                `json:"public"`
	Comments    int                 `json:"comments"`
	Files       map[string]GistFile `json:"files"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// GistFile describes one file of a gist.
type GistFile struct {
	Filename string `json:"filename"`
	Language string `json:"language"`
	RawURL   string `json:"raw_url"`
	Size     int64  `json:"size"`
}
