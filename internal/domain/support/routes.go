package support

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	sup := rg.Group("/support")
	{
		sup.POST("", h.Create)
		sup.GET("", h.ListMine)
		sup.GET("/:requestId", h.Get)
	}
}

// RegisterAdminRoutes mounts the ticket management endpoints. The group is
// expected to carry the admin guard already.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	sup := rg.Group("/support")
	{
		sup.GET("", h.List)
		sup.PATCH("/:requestId/status", h.UpdateStatus)
	}
}
