package star

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"studenthub/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Add godoc
// @Summary Star a material
// @Tags Starred
// @Produce json
// @Security BearerAuth
// @Param fileId path string true "File ID"
// @Success 201 {object} map[string]interface{}
// @Failure 401,404,409 {object} map[string]interface{}
// @Router /starred/{fileId} [post]
func (h *Handler) Add(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	s, err := h.service.Star(c.Request.Context(), userID, c.Param("fileId"))
	if err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrAlreadyStarred):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to star file")
		}
		return
	}

	response.Success(c, http.StatusCreated, s)
}

// Remove godoc
// @Summary Unstar a material
// @Tags Starred
// @Produce json
// @Security BearerAuth
// @Param fileId path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401,404 {object} map[string]interface{}
// @Router /starred/{fileId} [delete]
func (h *Handler) Remove(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	if err := h.service.Unstar(c.Request.Context(), userID, c.Param("fileId")); err != nil {
		if errors.Is(err, ErrStarNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to unstar file")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "unstarred"})
}

// List godoc
// @Summary List my starred materials
// @Tags Starred
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /starred [get]
func (h *Handler) List(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	stars, err := h.service.List(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list starred files")
		return
	}

	response.Success(c, http.StatusOK, stars)
}

// Check godoc
// @Summary Check whether a material is starred
// @Tags Starred
// @Produce json
// @Security BearerAuth
// @Param fileId path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /starred/{fileId}/check [get]
func (h *Handler) Check(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	starred, err := h.service.IsStarred(c.Request.Context(), userID, c.Param("fileId"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to check star")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"starred": starred})
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
