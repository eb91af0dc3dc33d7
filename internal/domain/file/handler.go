package file

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

// Upload godoc
// @Summary Upload a course material
// @Description Multipart upload: "file" part plus optional "description" field.
// @Tags Files
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param file formData file true "File to upload"
// @Param description formData string false "Description"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,404,500 {object} map[string]interface{}
// @Router /courses/{courseId}/files [post]
func (h *Handler) Upload(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "no file provided")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "could not read upload")
		return
	}
	defer f.Close()

	record, err := h.service.Ingest(c.Request.Context(), c.Param("courseId"), userID, IngestInput{
		Reader:      f,
		Filename:    fileHeader.Filename,
		MimeType:    fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Description: c.PostForm("description"),
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyFile):
			response.Error(c, http.StatusBadRequest, "EMPTY_FILE", err.Error())
		case errors.Is(err, ErrFileTooLarge):
			response.Error(c, http.StatusBadRequest, "PAYLOAD_TOO_LARGE", err.Error())
		case errors.Is(err, ErrInvalidMimeType):
			response.Error(c, http.StatusBadRequest, "UNSUPPORTED_MEDIA_TYPE", err.Error())
		case errors.Is(err, ErrCourseNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrStorageWrite):
			response.Error(c, http.StatusInternalServerError, "STORAGE_WRITE_FAILED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "upload failed")
		}
		return
	}

	response.Success(c, http.StatusOK, record)
}

// Delete godoc
// @Summary Delete a course material
// @Description Owner or admin only. The stored object is removed best-effort.
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param fileId path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401,403,404,500 {object} map[string]interface{}
// @Router /courses/{courseId}/files/{fileId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	err := h.service.Remove(c.Request.Context(), c.Param("courseId"), c.Param("fileId"), userID)
	if err != nil {
		switch {
		case errors.Is(err, ErrFileNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
		case errors.Is(err, ErrNotOwner):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", err.Error())
		case errors.Is(err, ErrDeleteFailed):
			response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "delete failed")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "deleted"})
}

// List godoc
// @Summary List a course's materials
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401,404 {object} map[string]interface{}
// @Router /courses/{courseId}/files [get]
func (h *Handler) List(c *gin.Context) {
	files, err := h.service.ListByCourse(c.Request.Context(), c.Param("courseId"))
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list files")
		return
	}

	response.Success(c, http.StatusOK, files)
}

// GetByID godoc
// @Summary Get one material's metadata
// @Tags Files
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param fileId path string true "File ID"
// @Success 200 {object} map[string]interface{}
// @Failure 401,404 {object} map[string]interface{}
// @Router /courses/{courseId}/files/{fileId} [get]
func (h *Handler) GetByID(c *gin.Context) {
	record, err := h.service.Get(c.Request.Context(), c.Param("courseId"), c.Param("fileId"))
	if err != nil {
		if errors.Is(err, ErrFileNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to load file")
		return
	}

	response.Success(c, http.StatusOK, record)
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
