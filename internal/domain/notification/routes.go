package notification

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	notif := rg.Group("/notifications")
	{
		notif.GET("", h.List)
		notif.GET("/unread-count", h.UnreadCount)
		notif.POST("/:notificationId/read", h.MarkRead)
		notif.POST("/read-all", h.MarkAllRead)
		notif.DELETE("/:notificationId", h.Delete)
	}
}

// RegisterAdminRoutes mounts the announcement endpoint. The group is
// expected to carry the admin guard already.
func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.POST("/notifications", h.Announce)
}

// RegisterStream mounts the WebSocket feed outside the auth middleware;
// the handler authenticates via ?token= itself.
func (h *Handler) RegisterStream(r gin.IRoutes) {
	r.GET("/ws/notifications", h.Stream)
}
