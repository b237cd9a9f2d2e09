// Package github wraps the GitHub REST API endpoints the application consumes.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"octoview/internal/models"
	"octoview/internal/observability"

	"github.com/go-resty/resty/v2"
)

// gistPageSize matches the page size the product has always requested.
const gistPageSize = 100

// Client fetches user profiles, public activity events and gists from GitHub.
// A "not found" login and rejected credentials are surfaced as distinct
// typed errors; every other failure is a generic upstream error.
type Client interface {
	GetUser(ctx context.Context, login string) (*User, error)
	ListPublicEvents(ctx context.Context, login string) ([]Event, error)
	ListGists(ctx context.Context, login string) ([]Gist, error)
}

type client struct {
	rest *resty.Client
}

// NewClient creates a GitHub API client. token may be empty, in which case
// requests are unauthenticated and subject to GitHub's low anonymous rate
// limit.
func NewClient(baseURL, token string) Client {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", "octoview")

	if token != "" {
		rc.SetAuthToken(token)
	}

	return &client{rest: rc}
}

func (c *client) GetUser(ctx context.Context, login string) (*User, error) {
	var user User
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&user).
		Get("/users/" + url.PathEscape(login))
	if err := c.check("user", login, resp, err); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *client) ListPublicEvents(ctx context.Context, login string) ([]Event, error) {
	var events []Event
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&events).
		Get("/users/" + url.PathEscape(login) + "/events/public")
	if err := c.check("events", login, resp, err); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *client) ListGists(ctx context.Context, login string) ([]Gist, error) {
	var gists []Gist
	resp, err := c.rest.R().
		SetContext(ctx).
		SetResult(&gists).
		SetQueryParam("per_page", fmt.Sprintf("%d", gistPageSize)).
		Get("/users/" + url.PathEscape(login) + "/gists")
	if err := c.check("gists", login, resp, err); err != nil {
		return nil, err
	}
	return gists, nil
}

// check maps a resty response to the error taxonomy and records metrics.
func (c *client) check(endpoint, login string, resp *resty.Response, err error) error {
	if err != nil {
		observability.GitHubRequests.WithLabelValues(endpoint, "error").Inc()
		return models.NewUpstreamError(err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		observability.GitHubRequests.WithLabelValues(endpoint, "not_found").Inc()
		return models.NewNotFoundError("GitHub user", login)
	case resp.StatusCode() == http.StatusUnauthorized:
		observability.GitHubRequests.WithLabelValues(endpoint, "unauthorized").Inc()
		return models.NewUnauthorizedError("GitHub API rejected credentials")
	case resp.IsError():
		observability.GitHubRequests.WithLabelValues(endpoint, "error").Inc()
		return models.NewUpstreamError(fmt.Errorf("GitHub API returned status %d", resp.StatusCode()))
	}

	observability.GitHubRequests.WithLabelValues(endpoint, "ok").Inc()
	return nil
}
