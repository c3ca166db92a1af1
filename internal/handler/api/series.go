package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/dto/request"
	resdto "github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/dto/response"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/handler/httperr"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/commands"
	"github.com/hmsaeedsiddiqui/wiwihood-sub007/internal/usecase/queries"
)

type SeriesHandler struct {
	commands commands.SeriesCommands
	queries  queries.SeriesQueries
}

func NewSeriesHandler(cmds commands.SeriesCommands, qs queries.SeriesQueries) *SeriesHandler {
	return &SeriesHandler{
		commands: cmds,
		queries:  qs,
	}
}

func (h *SeriesHandler) CreateSeries(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}

	var req reqdto.CreateSeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams(providerID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	id, err := h.commands.Create(c.Request.Context(), params)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.respondWithSeries(c, http.StatusCreated, providerID, id)
}

func (h *SeriesHandler) GetSeries(c *gin.Context) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid series ID format", nil)
		return
	}

	h.respondWithSeries(c, http.StatusOK, providerID, id)
}

func (h *SeriesHandler) PauseSeries(c *gin.Context) {
	h.applyTransition(c, h.commands.Pause)
}

func (h *SeriesHandler) ResumeSeries(c *gin.Context) {
	h.applyTransition(c, h.commands.Resume)
}

func (h *SeriesHandler) EndSeries(c *gin.Context) {
	h.applyTransition(c, h.commands.End)
}

func (h *SeriesHandler) applyTransition(c *gin.Context, apply func(ctx context.Context, providerID, id uuid.UUID) error) {
	providerID, ok := actorID(c)
	if !ok {
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid series ID format", nil)
		return
	}

	if err := apply(c.Request.Context(), providerID, id); err != nil {
		respondUsecaseError(c, err)
		return
	}

	h.respondWithSeries(c, http.StatusOK, providerID, id)
}

func (h *SeriesHandler) respondWithSeries(c *gin.Context, status int, providerID, id uuid.UUID) {
	view, err := h.queries.GetByID(c.Request.Context(), providerID, id)
	if err != nil {
		respondUsecaseError(c, err)
		return
	}
	c.JSON(status, resdto.FromSeriesView(view))
}
