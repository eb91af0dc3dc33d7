package ai

import (
	"errors"
	"net/http"

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

// Chat godoc
// @Summary Ask the study assistant
// @Description Proxies the conversation to the configured model provider.
// @Tags Assistant
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ChatRequest true "Conversation"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,502,503 {object} map[string]interface{}
// @Router /ai/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fields)
		return
	}

	msg, err := h.service.Chat(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotConfigured):
			response.Error(c, http.StatusServiceUnavailable, "AI_DISABLED", "assistant is not available")
		case errors.Is(err, ErrUpstream):
			response.Error(c, http.StatusBadGateway, "UPSTREAM_ERROR", "assistant did not answer")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "chat failed")
		}
		return
	}

	response.Success(c, http.StatusOK, ChatResponse{Message: *msg})
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
