package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/dto/request"
	resdto "github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/dto/response"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/httperr"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

const defaultListWindow = 30 * 24 * time.Hour

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
	}
}

func (h *BookingHandler) CreateBooking(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), req.ToParams(providerID))
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusCreated, providerID, id)
}

func (h *BookingHandler) GetBooking(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	h.respondWithBooking(c, http.StatusOK, providerID, id)
}

func (h *BookingHandler) ListBookings(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}

	from, to, err := parseTimeRange(c, defaultListWindow)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid time range", nil)
		return
	}

	items, err := h.queries.ListByProvider(c.Request.Context(), providerID, from, to)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}
	c.JSON(http.StatusOK, response)
}

func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	h.applyTransition(c, h.commands.Confirm)
}

func (h *BookingHandler) StartBooking(c *gin.Context) {
	h.applyTransition(c, h.commands.Start)
}

func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.applyTransition(c, h.commands.Complete)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.CancelBookingRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
			return
		}
	}

	err = h.commands.Cancel(c.Request.Context(), commands.CancelBookingParams{
		ProviderID: providerID,
		BookingID:  id,
		Reason:     req.GetReason(),
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusOK, providerID, id)
}

func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	var req reqdto.RescheduleBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	newID, err := h.commands.Reschedule(c.Request.Context(), commands.RescheduleBookingParams{
		ProviderID: providerID,
		BookingID:  id,
		NewStartAt: req.NewStartAt,
	})
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusCreated, providerID, newID)
}

func (h *BookingHandler) applyTransition(c *gin.Context, apply func(ctx context.Context, providerID, id uuid.UUID) error) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid booking ID format", nil)
		return
	}

	if err := apply(c.Request.Context(), providerID, id); err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.respondWithBooking(c, http.StatusOK, providerID, id)
}

func (h *BookingHandler) respondWithBooking(c *gin.Context, status int, providerID, id uuid.UUID) {
	view, err := h.queries.GetByID(c.Request.Context(), providerID, id)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromBookingView(view))
}

// parseTimeRange reads the optional from/to query params (RFC3339), falling
// back to a window starting now.
func parseTimeRange(c *gin.Context, defaultWindow time.Duration) (time.Time, time.Time, error) {
	from := time.Now().UTC()
	to := from.Add(defaultWindow)

	if raw := c.Query("from"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
		to = from.Add(defaultWindow)
	}
	if raw := c.Query("to"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed
	}
	return from, to, nil
}
