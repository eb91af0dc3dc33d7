package course

import (
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

// List godoc
// @Summary List courses
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{}
// @Router /courses [get]
func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	courses, total, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list courses")
		return
	}

	response.SuccessList(c, http.StatusOK, courses, page, limit, total)
}

// Get godoc
// @Summary Get one course
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /courses/{courseId} [get]
func (h *Handler) Get(c *gin.Context) {
	course, err := h.service.Get(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		if err == ErrCourseNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "course not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load course")
		return
	}

	response.Success(c, http.StatusOK, course)
}

// Create godoc
// @Summary Create a course (admin)
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,403,409 {object} map[string]interface{}
// @Router /courses [post]
func (h *Handler) Create(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	var req CreateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", details)
		return
	}

	course, err := h.service.Create(c.Request.Context(), userID, &req)
	if err != nil {
		if err == ErrCodeTaken {
			response.Error(c, http.StatusConflict, "CONFLICT", "course code already in use")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create course")
		return
	}

	response.Success(c, http.StatusCreated, course)
}

// Update godoc
// @Summary Update a course (admin)
// @Tags Courses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404 {object} map[string]interface{}
// @Router /courses/{courseId} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if details := validator.Validate(req); details != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", details)
		return
	}

	course, err := h.service.Update(c.Request.Context(), c.Param("courseId"), &req)
	if err != nil {
		if err == ErrCourseNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "course not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to update course")
		return
	}

	response.Success(c, http.StatusOK, course)
}

// Delete godoc
// @Summary Delete a course (admin)
// @Tags Courses
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401,403,404 {object} map[string]interface{}
// @Router /courses/{courseId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("courseId")); err != nil {
		if err == ErrCourseNotFound {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "course not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to delete course")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
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
