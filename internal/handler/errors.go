package handler

import (
	"errors"
	"net/http"

	"github.com/books-app/backend/internal/service"
	"github.com/gin-gonic/gin"
)

// respondError translates a service failure into its HTTP status.
// Unrecognized errors are infrastructure failures and map to 500 with a
// generic body.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := "Something went wrong"

	switch {
	case errors.Is(err, service.ErrMissingFields):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, service.ErrRequesterNotFound):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, service.ErrNotAdministrator),
		errors.Is(err, service.ErrInvalidMail),
		errors.Is(err, service.ErrIncorrectPassword),
		errors.Is(err, service.ErrIncorrectCode):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, service.ErrBookNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrCodeNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, service.ErrEmailExists),
		errors.Is(err, service.ErrUsernameExists):
		status, message = http.StatusConflict, err.Error()
	}

	c.JSON(status, gin.H{"message": message})
}
