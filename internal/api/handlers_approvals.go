package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gmfurtado/rhpulse/internal/domain/dto"
	"github.com/gmfurtado/rhpulse/internal/service"
	"github.com/gmfurtado/rhpulse/internal/storage"
)

// roleHeader carries the caller's back-office role, injected by the upstream
// identity proxy. Authentication itself is outside this service.
const roleHeader = "X-User-Role"

// CreateApproval handles POST /api/v1/approvals requests.
//
// CreateApproval godoc
// @Summary      Open an approval request
// @Description  Routes the request to the role responsible for its kind
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        approval  body      dto.ApprovalCreateRequest  true  "Approval payload"
// @Success      201       {object}  dto.ApprovalResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      500       {object}  dto.ErrorResponse
// @Router       /api/v1/approvals [post]
func (h *Handler) CreateApproval(c *gin.Context) {
	var req dto.ApprovalCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid approval payload", err))
		return
	}

	out, err := h.approvals.Request(c.Request.Context(), req)
	switch {
	case errors.Is(err, service.ErrUnknownKind):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unknown approval kind", err))
	case errors.Is(err, service.ErrPostingNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("posting not found", nil))
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to create approval", err))
	default:
		c.JSON(http.StatusCreated, dto.ApprovalResponse{ApprovalRequest: *out})
	}
}

// ListPendingApprovals handles GET /api/v1/approvals requests.
//
// ListPendingApprovals godoc
// @Summary      List pending approvals
// @Description  Returns the pending queue, optionally restricted to one role's inbox
// @Tags         approvals
// @Produce      json
// @Param        role  query     string  false  "Required role" example(gestor)
// @Success      200   {array}   dto.ApprovalResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/v1/approvals [get]
func (h *Handler) ListPendingApprovals(c *gin.Context) {
	out, err := h.approvals.ListPending(c.Request.Context(), c.Query("role"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to list approvals", err))
		return
	}
	c.JSON(http.StatusOK, out)
}

// DecideApproval handles POST /api/v1/approvals/:id/decision requests.
//
// DecideApproval godoc
// @Summary      Decide a pending approval
// @Description  Approves or rejects a pending request; the caller's role must match the routing
// @Tags         approvals
// @Accept       json
// @Produce      json
// @Param        id        path      string                       true  "Approval ID"
// @Param        X-User-Role  header  string                      true  "Caller role" example(gestor)
// @Param        decision  body      dto.ApprovalDecisionRequest  true  "Decision payload"
// @Success      200       {object}  dto.ApprovalResponse
// @Failure      400       {object}  dto.ErrorResponse
// @Failure      403       {object}  dto.ErrorResponse
// @Failure      404       {object}  dto.ErrorResponse
// @Failure      409       {object}  dto.ErrorResponse
// @Failure      500       {object}  dto.ErrorResponse
// @Router       /api/v1/approvals/{id}/decision [post]
func (h *Handler) DecideApproval(c *gin.Context) {
	var req dto.ApprovalDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid decision payload", err))
		return
	}

	role := c.GetHeader(roleHeader)
	if role == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("missing X-User-Role header", nil))
		return
	}

	out, err := h.approvals.Decide(c.Request.Context(), c.Param("id"), role, req)
	switch {
	case errors.Is(err, service.ErrWrongRole):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("role not allowed to decide this request", err))
	case errors.Is(err, storage.ErrAlreadyDecided):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("approval already decided", err))
	case errors.Is(err, sql.ErrNoRows):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("approval not found", nil))
	case err != nil:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to decide approval", err))
	default:
		c.JSON(http.StatusOK, dto.ApprovalResponse{ApprovalRequest: *out})
	}
}
