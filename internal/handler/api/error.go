package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/httperr"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/middleware"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/shared"
)

// respondUsecaseError maps the usecase error taxonomy onto HTTP. Conflicts
// carry the blocking booking id when known; policy violations carry the
// reason and the fee the caller would have to acknowledge.
func respondUsecaseError(c *gin.Context, err error) {
	var conflict *shared.ConflictError
	var policy *shared.PolicyViolationError

	switch {
	case errors.Is(err, shared.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", nil)
	case errors.Is(err, shared.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errors.Is(err, shared.ErrSeriesNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Series not found", nil)
	case errors.Is(err, shared.ErrServiceNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Service not found", nil)
	case errors.As(err, &conflict):
		detail := gin.H{}
		if conflict.ConflictingBookingID != uuid.Nil {
			detail["conflicting_booking_id"] = conflict.ConflictingBookingID
		}
		if conflict.Reason != "" {
			detail["reason"] = conflict.Reason
		}
		httperr.AbortWithError(c, http.StatusConflict, err, "Slot is not available", detail)
	case errors.As(err, &policy):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Policy violation", gin.H{
			"reason":    policy.Reason,
			"fee_cents": policy.FeeCents,
		})
	case errors.Is(err, shared.ErrUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Temporarily unavailable, retry later", nil)
	case errors.Is(err, shared.ErrQueryTimeout):
		httperr.AbortWithError(c, http.StatusGatewayTimeout, err, "Query timed out", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

func actorID(c *gin.Context) (uuid.UUID, bool) {
	id, ok := middleware.GetActorID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errors.New("missing actor in context"), "Internal server error", nil)
		return uuid.Nil, false
	}
	return id, true
}
