package support

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"studenthub/internal/pkg/response"
	"studenthub/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary File a support request
// @Tags Support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateSupportRequest true "Ticket"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401 {object} map[string]interface{}
// @Router /support [post]
func (h *Handler) Create(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	var req CreateSupportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fields)
		return
	}

	ticket, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create support request")
		return
	}

	response.Success(c, http.StatusCreated, ticket)
}

// ListMine godoc
// @Summary List the caller's support requests
// @Tags Support
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /support [get]
func (h *Handler) ListMine(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	tickets, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list support requests")
		return
	}

	response.Success(c, http.StatusOK, tickets)
}

// Get godoc
// @Summary Get one support request
// @Description Owner or admin only.
// @Tags Support
// @Produce json
// @Security BearerAuth
// @Param requestId path int true "Request ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404 {object} map[string]interface{}
// @Router /support/{requestId} [get]
func (h *Handler) Get(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	id, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request id")
		return
	}

	ticket, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load support request")
		}
		return
	}

	response.Success(c, http.StatusOK, ticket)
}

// List godoc
// @Summary List all support requests
// @Tags Support
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter: open, in_progress, resolved or closed"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403 {object} map[string]interface{}
// @Router /admin/support [get]
func (h *Handler) List(c *gin.Context) {
	status := Status(c.Query("status"))
	switch status {
	case "", StatusOpen, StatusInProgress, StatusResolved, StatusClosed:
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown status")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	tickets, total, err := h.service.List(c.Request.Context(), status, page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list support requests")
		return
	}

	response.SuccessList(c, http.StatusOK, tickets, page, limit, total)
}

// UpdateStatus godoc
// @Summary Update a support request's status
// @Tags Support
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path int true "Request ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,409 {object} map[string]interface{}
// @Router /admin/support/{requestId}/status [patch]
func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("requestId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fields)
		return
	}

	ticket, err := h.service.UpdateStatus(c.Request.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrRequestNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrRequestClosed):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to update support request")
		}
		return
	}

	response.Success(c, http.StatusOK, ticket)
}

func mustUserID(c *gin.Context) string {
	v, exists := c.Get("user_id")
	if !exists {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return ""
	}
	id, ok := v.(string)
	if !ok || id == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid user id")
		return ""
	}
	return id
}
