package file

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the course-file endpoints. All of them require an
// authenticated requester.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	files := r.Group("/courses/:courseId/files")
	{
		files.POST("", h.Upload)
		files.GET("", h.List)
		files.GET("/:fileId", h.GetByID)
		files.DELETE("/:fileId", h.Delete)
	}
}
