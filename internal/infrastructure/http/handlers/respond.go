// Package handlers provides the gin HTTP handlers for the planning API
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apperrors "github.com/lutongbahay/v2/pkg/errors"
)

// respondError writes an error response. AppErrors map to their HTTP
// status; anything else is a 500 with a generic body.
func respondError(c *gin.Context, err error) {
	requestID := c.GetHeader("X-Request-ID")

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode(), apperrors.ToErrorResponse(appErr, requestID))
		return
	}

	c.JSON(http.StatusInternalServerError, apperrors.ToErrorResponse(
		apperrors.NewInternalError("unexpected error"), requestID,
	))
}

// pathUUID parses a UUID path parameter, writing a 400 on failure
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("invalid "+name))
		return uuid.Nil, false
	}
	return id, true
}
