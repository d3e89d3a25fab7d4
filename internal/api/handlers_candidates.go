package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmfurtado/rhpulse/internal/domain/dto"
	"github.com/gmfurtado/rhpulse/internal/service"
)

// ListCandidates handles GET /api/v1/candidates requests.
//
// ListCandidates godoc
// @Summary      List candidates
// @Description  Returns candidates with their days-in-process counter, optionally per posting
// @Tags         candidates
// @Produce      json
// @Param        posting_id  query     string  false  "Filter by posting"
// @Success      200         {array}   dto.CandidateListItem
// @Failure      500         {object}  dto.ErrorResponse
// @Router       /api/v1/candidates [get]
func (h *Handler) ListCandidates(c *gin.Context) {
	out, err := h.candidates.List(c.Request.Context(), c.Query("posting_id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list candidates", err))
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetCandidateTimeline handles GET /api/v1/candidates/:id/timeline requests.
//
// GetCandidateTimeline godoc
// @Summary      Get a candidate's stage timeline
// @Description  Reconstructs how many days the candidate spent in each pipeline stage
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  dto.TimelineResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/candidates/{id}/timeline [get]
func (h *Handler) GetCandidateTimeline(c *gin.Context) {
	out, err := h.candidates.Timeline(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build timeline", err))
		return
	}
	if out == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("candidate not found", nil))
		return
	}
	c.JSON(http.StatusOK, out)
}

// ChangeCandidateStatus handles POST /api/v1/candidates/:id/status requests.
//
// ChangeCandidateStatus godoc
// @Summary      Move a candidate to a new pipeline stage
// @Description  Updates the status, appends the history entry and notifies the HR inbox
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id      path      string                   true  "Candidate ID"
// @Param        change  body      dto.StatusChangeRequest  true  "Target stage"
// @Success      204     "No Content"
// @Failure      400     {object}  dto.ErrorResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/candidates/{id}/status [post]
func (h *Handler) ChangeCandidateStatus(c *gin.Context) {
	var req dto.StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid status payload", err))
		return
	}

	err := h.candidates.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status, req.Note)
	switch {
	case errors.Is(err, service.ErrInvalidStage):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown pipeline stage", err))
	case errors.Is(err, sql.ErrNoRows):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("candidate not found", nil))
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to change status", err))
	default:
		c.Status(http.StatusNoContent)
	}
}
