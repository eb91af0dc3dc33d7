package comment

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses/:courseId/comments", h.List)
	rg.POST("/courses/:courseId/comments", h.Create)

	comments := rg.Group("/comments")
	{
		comments.DELETE("/:commentId", h.Delete)
		comments.POST("/:commentId/report", h.Report)
	}
}

// RegisterAdminRoutes mounts the moderation endpoints. The group is expected
// to carry the admin guard already.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	{
		reports.GET("", h.ListReports)
		reports.POST("/:reportId/dismiss", h.DismissReport)
		reports.POST("/:reportId/resolve", h.ResolveReport)
	}
}
