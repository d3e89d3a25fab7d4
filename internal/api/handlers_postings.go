package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gmfurtado/rhpulse/internal/domain/dto"
	"github.com/gmfurtado/rhpulse/internal/service"
)

// ListPostings handles GET /api/v1/postings requests.
//
// ListPostings godoc
// @Summary      List job postings
// @Description  Returns postings newest first, each with its business-day expiry outlook
// @Tags         postings
// @Produce      json
// @Param        status  query     string  false  "Filter by lifecycle status" example(Aberta)
// @Success      200     {array}   dto.PostingResponse
// @Failure      500     {object}  dto.ErrorResponse
// @Router       /api/v1/postings [get]
func (h *Handler) ListPostings(c *gin.Context) {
	out, err := h.postings.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list postings", err))
		return
	}
	c.JSON(http.StatusOK, out)
}

// GetPosting handles GET /api/v1/postings/:id requests.
//
// GetPosting godoc
// @Summary      Get a job posting
// @Description  Returns one posting with its business-day expiry outlook
// @Tags         postings
// @Produce      json
// @Param        id   path      string  true  "Posting ID"
// @Success      200  {object}  dto.PostingResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/postings/{id} [get]
func (h *Handler) GetPosting(c *gin.Context) {
	out, err := h.postings.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch posting", err))
		return
	}
	if out == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("posting not found", nil))
		return
	}
	c.JSON(http.StatusOK, out)
}

// CreatePosting handles POST /api/v1/postings requests.
//
// CreatePosting godoc
// @Summary      Create a job posting
// @Description  Registers a draft posting; an approved "abertura" request opens it
// @Tags         postings
// @Accept       json
// @Produce      json
// @Param        posting  body      dto.PostingRequest  true  "Posting payload"
// @Success      201      {object}  dto.PostingResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/postings [post]
func (h *Handler) CreatePosting(c *gin.Context) {
	var req dto.PostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid posting payload", err))
		return
	}
	if !validExpiry(req.ExpiresAt) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid expires_at format, expected YYYY-MM-DD", nil))
		return
	}

	out, err := h.postings.Create(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create posting", err))
		return
	}
	c.JSON(http.StatusCreated, out)
}

// UpdatePosting handles PUT /api/v1/postings/:id requests.
//
// UpdatePosting godoc
// @Summary      Update a job posting
// @Tags         postings
// @Accept       json
// @Produce      json
// @Param        id       path      string              true  "Posting ID"
// @Param        posting  body      dto.PostingRequest  true  "Posting payload"
// @Success      200      {object}  dto.PostingResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      500      {object}  dto.ErrorResponse
// @Router       /api/v1/postings/{id} [put]
func (h *Handler) UpdatePosting(c *gin.Context) {
	var req dto.PostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid posting payload", err))
		return
	}
	if !validExpiry(req.ExpiresAt) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid expires_at format, expected YYYY-MM-DD", nil))
		return
	}

	out, err := h.postings.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to update posting", err))
		return
	}
	if out == nil {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("posting not found", nil))
		return
	}
	c.JSON(http.StatusOK, out)
}

// DeletePosting handles DELETE /api/v1/postings/:id requests.
//
// DeletePosting godoc
// @Summary      Delete a job posting
// @Description  Removes a posting that is not open for applications
// @Tags         postings
// @Produce      json
// @Param        id   path  string  true  "Posting ID"
// @Success      204  "No Content"
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/v1/postings/{id} [delete]
func (h *Handler) DeletePosting(c *gin.Context) {
	err := h.postings.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, service.ErrPostingActive) {
		c.JSON(http.StatusConflict, dto.NewErrorResponse("posting is still open for applications", err))
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to delete posting", err))
		return
	}
	c.Status(http.StatusNoContent)
}

// validExpiry accepts an empty deadline or a parseable YYYY-MM-DD date.
func validExpiry(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
