package comment

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

// List godoc
// @Summary List a course's comments
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401,404 {object} map[string]interface{}
// @Router /courses/{courseId}/comments [get]
func (h *Handler) List(c *gin.Context) {
	comments, err := h.service.List(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list comments")
		return
	}

	response.Success(c, http.StatusOK, comments)
}

// Create godoc
// @Summary Post a comment on a course
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param request body CreateCommentRequest true "Comment"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,404 {object} map[string]interface{}
// @Router /courses/{courseId}/comments [post]
func (h *Handler) Create(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fields)
		return
	}

	comment, err := h.service.Create(c.Request.Context(), c.Param("courseId"), userID, req)
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to create comment")
		return
	}

	response.Success(c, http.StatusCreated, comment)
}

// Delete godoc
// @Summary Delete a comment
// @Description Author or admin only.
// @Tags Comments
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "Comment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404 {object} map[string]interface{}
// @Router /comments/{commentId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), commentID, userID); err != nil {
		switch {
		case errors.Is(err, ErrCommentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to delete comment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}

// Report godoc
// @Summary Report a comment for moderation
// @Tags Comments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param commentId path int true "Comment ID"
// @Param request body ReportRequest true "Reason"
// @Success 201 {object} map[string]interface{}
// @Failure 400,401,404,409 {object} map[string]interface{}
// @Router /comments/{commentId}/report [post]
func (h *Handler) Report(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var req ReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fields)
		return
	}

	report, err := h.service.Report(c.Request.Context(), commentID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrCommentNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrOwnComment):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		case errors.Is(err, ErrAlreadyReported):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to report comment")
		}
		return
	}

	response.Success(c, http.StatusCreated, report)
}

// ListReports godoc
// @Summary List moderation reports
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter: open, dismissed or resolved"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403 {object} map[string]interface{}
// @Router /admin/reports [get]
func (h *Handler) ListReports(c *gin.Context) {
	status := ReportStatus(c.Query("status"))
	switch status {
	case "", ReportStatusOpen, ReportStatusDismissed, ReportStatusResolved:
	default:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "unknown report status")
		return
	}

	reports, err := h.service.ListReports(c.Request.Context(), status)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list reports")
		return
	}

	response.Success(c, http.StatusOK, reports)
}

// DismissReport godoc
// @Summary Dismiss a report, keeping the comment
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param reportId path int true "Report ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,409 {object} map[string]interface{}
// @Router /admin/reports/{reportId}/dismiss [post]
func (h *Handler) DismissReport(c *gin.Context) {
	adminID := mustUserID(c)
	if adminID == "" {
		return
	}

	reportID, ok := parseID(c, "reportId")
	if !ok {
		return
	}

	report, err := h.service.Dismiss(c.Request.Context(), reportID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, ErrReportNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrReportClosed):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to dismiss report")
		}
		return
	}

	response.Success(c, http.StatusOK, report)
}

// ResolveReport godoc
// @Summary Resolve a report, removing the comment
// @Tags Moderation
// @Produce json
// @Security BearerAuth
// @Param reportId path int true "Report ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404,409 {object} map[string]interface{}
// @Router /admin/reports/{reportId}/resolve [post]
func (h *Handler) ResolveReport(c *gin.Context) {
	adminID := mustUserID(c)
	if adminID == "" {
		return
	}

	reportID, ok := parseID(c, "reportId")
	if !ok {
		return
	}

	report, err := h.service.Resolve(c.Request.Context(), reportID, adminID)
	if err != nil {
		switch {
		case errors.Is(err, ErrReportNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrReportClosed):
			response.Error(c, http.StatusConflict, "CONFLICT", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to resolve report")
		}
		return
	}

	response.Success(c, http.StatusOK, report)
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid "+param)
		return 0, false
	}
	return id, true
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
