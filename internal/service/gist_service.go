package service

import (
	"context"
	"sort"

	"octoview/internal/github"
	"octoview/internal/models"
)

// GistService serves public gists as an uncached pass-through from the
// GitHub API. Gists are never persisted.
type GistService struct {
	github github.Client
}

func NewGistService(gh github.Client) *GistService {
	return &GistService{github: gh}
}

// GetUserGists returns the public gists for a username.
func (s *GistService) GetUserGists(ctx context.Context, username string) ([]models.Gist, error) {
	login, err := validateLogin(username)
	if err != nil {
		return nil, err
	}

	gists, err := s.github.ListGists(ctx, login)
	if err != nil {
		return nil, err
	}

	out := make([]models.Gist, 0, len(gists))
	for _, g := range gists {
		out = append(out, mapGist(g))
	}
	return out, nil
}

func mapGist(g github.Gist) models.Gist {
	files := make([]models.GistFile, 0, len(g.Files))
	for _, f := range g.Files {
		files = append(files, models.GistFile{
			Filename: f.Filename,
			Language: f.Language,
			RawURL:   f.RawURL,
			Size:     f.Size,
		})
	}
	// The upstream files object is a map, so impose a stable order.
	sort.Slice(files, func(i, j int) bool { return files[i].Filename < files[j].Filename })

	return models.Gist{
		ID:          g.ID,
		Description: g.Description,
		HTMLURL:     g.HTMLURL,
		Public:      g.Public,
		Comments:    g.Comments,
		Files:       files,
		CreatedAt:   g.CreatedAt,
		UpdatedAt:   g.UpdatedAt,
	}
}
