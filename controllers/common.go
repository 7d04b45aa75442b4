package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"parkpalace-backend/services"
	"parkpalace-backend/utils"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// respondServiceError maps domain errors onto HTTP statuses. Unexpected
// errors are logged server-side and surfaced as fallbackMessage so
// persistence details never leak to callers.
func respondServiceError(c *gin.Context, err error, fallbackMessage string) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.JSONError(c, http.StatusBadRequest, ve.Message)
	case services.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, "Invalid credentials")
	default:
		log.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
		utils.JSONError(c, http.StatusInternalServerError, fallbackMessage)
	}
}

// parseID reads a positive integer path parameter. Non-numeric ids behave
// like unknown ids (404), mirroring typed route converters.
func parseID(c *gin.Context, param string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
