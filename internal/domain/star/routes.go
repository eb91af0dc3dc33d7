package star

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	starred := rg.Group("/starred")
	{
		starred.GET("", h.List)
		starred.POST("/:fileId", h.Add)
		starred.DELETE("/:fileId", h.Remove)
		starred.GET("/:fileId/check", h.Check)
	}
}
