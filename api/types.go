package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"products-backend/service"

	"github.com/gin-gonic/gin"
)

// bindBody decodes the request body into a DTO pointer. An empty body or a
// JSON null yields a nil dto, which the services reject as a missing dto.
// Malformed JSON is answered directly with a 400.
func bindBody[T any](c *gin.Context) (*T, bool) {
	var dto *T
	if c.Request.ContentLength != 0 {
		if err := json.NewDecoder(c.Request.Body).Decode(&dto); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return nil, false
		}
	}
	return dto, true
}

// parseID returns nil when the path segment is not an unsigned integer; the
// services report a nil id as a missing one.
func parseID(raw string) *uint {
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	id := uint(n)
	return &id
}

// writeError maps service error kinds onto HTTP statuses. Anything
// unlabelled is a 500.
func writeError(c *gin.Context, err error) {
	var serr *service.Error
	if errors.As(err, &serr) {
		switch serr.Kind {
		case service.KindBadRequest:
			c.JSON(http.StatusBadRequest, gin.H{"error": serr.Message})
			return
		case service.KindNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": serr.Message})
			return
		}
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
