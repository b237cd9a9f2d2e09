package server

import (
	"octoview/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserActivity handles GET /api/users/:username
// @Summary Get user profile and recent activity
// @Description Returns the GitHub profile and up to 10 recent push events for a user. Served from the store when fresh, refreshed from the GitHub API otherwise.
// @Tags users
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {object} models.User
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /users/{username} [get]
func (s *Server) GetUserActivity(c *fiber.Ctx) error {
	user, err := s.syncService.GetUserActivity(c.UserContext(), c.Params("username"))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(user)
}

// GetUserGists handles GET /api/users/:username/gists
// @Summary List a user's public gists
// @Description Returns the public gists for a user straight from the GitHub API. Gists are never persisted.
// @Tags users
// @Produce json
// @Param username path string true "GitHub login"
// @Success 200 {array} models.Gist
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 502 {object} models.ErrorResponse
// @Router /users/{username}/gists [get]
func (s *Server) GetUserGists(c *fiber.Ctx) error {
	gists, err := s.gistService.GetUserGists(c.UserContext(), c.Params("username"))
	if err != nil {
		return models.RespondWithError(c, mapServiceError(err), err)
	}

	return c.JSON(gists)
}
