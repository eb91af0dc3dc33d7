package course

import "github.com/gin-gonic/gin"

// RegisterRoutes wires the catalog endpoints. Write operations are gated by
// the adminOnly middleware; reads are open to any authenticated requester.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, adminOnly gin.HandlerFunc) {
	courses := rg.Group("/courses")
	{
		courses.GET("", h.List)
		courses.GET("/:courseId", h.Get)
		courses.POST("", adminOnly, h.Create)
		courses.PUT("/:courseId", adminOnly, h.Update)
		courses.DELETE("/:courseId", adminOnly, h.Delete)
	}
}
