package handler

import (
	"errors"
	"net/http"

	"hackathon-portal/internal/logger"
	"hackathon-portal/internal/service"

	"github.com/gin-gonic/gin"
)

// fail maps service errors onto the response taxonomy: validation 400,
// permission 403, missing 404, everything else a generic 500. Authorization
// failures deliberately carry no detail.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotPermitted):
		c.JSON(http.StatusForbidden, gin.H{"error": "not permitted"})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		logger.Error("request.failed", "path", c.Request.URL.Path, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "something went wrong"})
	}
}
