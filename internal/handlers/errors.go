package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/themebuilder/internal/library"
	"github.com/thatcatcamp/themebuilder/internal/themes"
)

// statusFor maps domain errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, themes.ErrInvalidInput),
		errors.Is(err, library.ErrInvalidName),
		errors.Is(err, library.ErrOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, library.ErrNotFound), errors.Is(err, errUnknownPreset):
		return http.StatusNotFound
	case errors.Is(err, library.ErrDuplicate):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// respondError writes a JSON error. Internal errors are logged, not echoed.
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		c.Error(err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
