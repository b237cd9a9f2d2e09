package server

import (
	"errors"

	"octoview/internal/models"

	"github.com/gofiber/fiber/v2"
)

// mapServiceError translates an error from the service layer into an HTTP
// status. Upstream failures and rejected GitHub credentials both surface as
// 502: the client's request was fine, the dependency behind us was not.
func mapServiceError(err error) int {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case models.ErrCodeValidation:
			return fiber.StatusBadRequest
		case models.ErrCodeNotFound:
			return fiber.StatusNotFound
		case models.ErrCodeUnauthorized, models.ErrCodeUpstream:
			return fiber.StatusBadGateway
		}
	}
	return fiber.StatusInternalServerError
}
