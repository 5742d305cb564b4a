package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/petgroom/scheduler/internal/httperr"
)

// respondError maps usecase business errors onto the HTTP taxonomy.
// Anything untyped is an internal failure and must not leak details.
func respondError(c *gin.Context, err error) {
	be, ok := httperr.AsBusiness(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Internal server error")
		return
	}

	status := http.StatusBadRequest
	switch be.Code {
	case "customer_not_found", "pet_not_found", "staff_not_found",
		"schedule_not_found", "user_not_found":
		status = http.StatusNotFound
	case "time_conflict", "email_in_use":
		status = http.StatusConflict
	case "invalid_credentials":
		status = http.StatusUnauthorized
	case "forbidden":
		status = http.StatusForbidden
	}

	httperr.Write(c, status, be.Code, be.Message)
}
