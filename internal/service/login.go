package service

import (
	"regexp"
	"strings"

	"octoview/internal/models"
)

// GitHub logins are alphanumeric with single interior hyphens, up to 39
// characters.
const maxLoginLength = 39

var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9]+(-[a-zA-Z0-9]+)*$`)

// validateLogin trims and checks a username from the request path. It returns
// the trimmed login or a validation error; nothing downstream is touched for
// an invalid login.
func validateLogin(username string) (string, error) {
	login := strings.TrimSpace(username)
	if login == "" {
		return "", models.NewValidationError("Username is required")
	}
	if len(login) > maxLoginLength {
		return "", models.NewValidationError("Username must be 39 characters or fewer")
	}
	if !loginPattern.MatchString(login) {
		return "", models.NewValidationError("Username may only contain alphanumeric characters and single hyphens")
	}
	return login, nil
}
