package models

import (
	"time"
)

// Gist is a summary of a public GitHub gist. Gists are served as an uncached
// pass-through from the GitHub API and are never persisted.
type Gist struct {
	ID          string     `json:"id"`
	Description string     `json:"description"`
	HTMLURL     string     `json:"html_url"`
	Public      bool       `json:"public"`
	Comments    int        `json:"comments"`
	Files       []GistFile `json:"files"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// GistFile describes a single file within a gist.
type GistFile struct {
	Filename string `json:"filename"`
	Language string `json:"language"`
	RawURL   string `json:"raw_url"`
	Size     int64  `json:"size"`
}
