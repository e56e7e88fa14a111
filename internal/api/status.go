package api

import (
	"errors"   // Error kind matching
	"net/http" // HTTP status codes

	"bank_backend/internal/domain" // Error kinds

	"github.com/gin-gonic/gin" // Gin web framework
)

// statusOf maps an internal error kind to its wire status. The mapping is
// deliberately lossy: the API has always reported 401 for both
// referential-integrity violations and rejected balance operations, and 204
// for deletes that matched nothing.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotPermitted):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrNoEffect):
		return http.StatusNoContent
	}
	return http.StatusInternalServerError
}

// fail ends the request with the mapped status code and no body; clients
// receive only status codes on every non-GET and error path.
func fail(c *gin.Context, err error) {
	c.Status(statusOf(err))
}
