package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/dto/response"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/httperr"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

const (
	defaultSlotMinutes       = 30
	defaultAvailabilityRange = 7 * 24 * time.Hour
)

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
}

func NewAvailabilityHandler(qs queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: qs}
}

func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}

	from, to, err := parseTimeRange(c, defaultAvailabilityRange)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
		return
	}

	slotMinutes := defaultSlotMinutes
	if raw := c.Query("slot_minutes"); raw != "" {
		slotMinutes, err = strconv.Atoi(raw)
		if err != nil || slotMinutes <= 0 {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot_minutes", nil)
			return
		}
	}

	var staffID *uuid.UUID
	if raw := c.Query("staff_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid staff ID format", nil)
			return
		}
		staffID = &parsed
	}

	slots, err := h.queries.ListSlots(c.Request.Context(), queries.ListSlotsParams{
		ProviderID:   providerID,
		StaffID:      staffID,
		From:         from,
		To:           to,
		SlotDuration: time.Duration(slotMinutes) * time.Minute,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlots(slots))
}
