package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"studenthub/internal/pkg/jwt"
	"studenthub/internal/pkg/logger"
	"studenthub/internal/pkg/response"
	"studenthub/internal/pkg/validator"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // Allow all origins (configure in prod)
}

type Handler struct {
	service    *Service
	jwtService *jwt.Service
}

func NewHandler(service *Service, jwtService *jwt.Service) *Handler {
	return &Handler{service: service, jwtService: jwtService}
}

// List получает список уведомлений текущего пользователя.
// @Summary		Получить уведомления
// @Description	Возвращает последние уведомления пользователя и количество непрочитанных.
// @Tags		Уведомления
// @Security	BearerAuth
// @Param		limit	query	int	false	"Максимальное количество уведомлений (по умолчанию 20, макс 100)"
// @Success		200	{object}	ListResponse
// @Failure		401	{object}	map[string]interface{}
// @Router		/notifications [get]
func (h *Handler) List(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	limit := 20
	if s := c.Query("limit"); s != "" {
		if v, err := strconv.Atoi(s); err == nil && v > 0 {
			limit = v
		}
	}

	list, unread, err := h.service.List(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to list notifications")
		return
	}

	response.Success(c, http.StatusOK, ListResponse{
		Notifications: list,
		UnreadCount:   unread,
	})
}

// UnreadCount получает количество непрочитанных уведомлений.
// @Summary		Количество непрочитанных
// @Tags		Уведомления
// @Security	BearerAuth
// @Success		200	{object}	UnreadCountResponse
// @Failure		401	{object}	map[string]interface{}
// @Router		/notifications/unread-count [get]
func (h *Handler) UnreadCount(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	unread, err := h.service.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to count notifications")
		return
	}

	response.Success(c, http.StatusOK, UnreadCountResponse{UnreadCount: unread})
}

// MarkRead отмечает уведомление как прочитанное.
// @Summary		Отметить как прочитанное
// @Tags		Уведомления
// @Security	BearerAuth
// @Param		notificationId	path	int	true	"ID уведомления"
// @Success		200	{object}	map[string]interface{}
// @Failure		400,401,404	{object}	map[string]interface{}
// @Router		/notifications/{notificationId}/read [post]
func (h *Handler) MarkRead(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	id, err := strconv.ParseInt(c.Param("notificationId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid notification id")
		return
	}

	if err := h.service.MarkRead(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to mark as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "read"})
}

// MarkAllRead отмечает все уведомления пользователя как прочитанные.
// @Summary		Отметить все как прочитанные
// @Tags		Уведомления
// @Security	BearerAuth
// @Success		200	{object}	map[string]interface{}
// @Failure		401	{object}	map[string]interface{}
// @Router		/notifications/read-all [post]
func (h *Handler) MarkAllRead(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	if err := h.service.MarkAllRead(c.Request.Context(), userID); err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to mark as read")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "all_read"})
}

// Delete удаляет уведомление пользователя.
// @Summary		Удалить уведомление
// @Tags		Уведомления
// @Security	BearerAuth
// @Param		notificationId	path	int	true	"ID уведомления"
// @Success		200	{object}	map[string]interface{}
// @Failure		400,401,404	{object}	map[string]interface{}
// @Router		/notifications/{notificationId} [delete]
func (h *Handler) Delete(c *gin.Context) {
	userID := mustUserID(c)
	if userID == "" {
		return
	}

	id, err := strconv.ParseInt(c.Param("notificationId"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid notification id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, userID); err != nil {
		if errors.Is(err, ErrNotificationNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to delete notification")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"status": "deleted"})
}

// Announce godoc
// @Summary Send an announcement to one user or to everyone
// @Tags Notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AnnounceRequest true "Announcement"
// @Success 200 {object} map[string]interface{}
// @Failure 400,401,403,404 {object} map[string]interface{}
// @Router /admin/notifications [post]
func (h *Handler) Announce(c *gin.Context) {
	var req AnnounceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "validation failed", fields)
		return
	}

	recipients, err := h.service.Announce(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrRecipientNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "failed to send announcement")
		return
	}

	response.Success(c, http.StatusOK, AnnounceResponse{Recipients: recipients})
}

// Stream opens the live notification feed.
//
// Endpoint: GET /ws/notifications?token=JWT_TOKEN
//
// Браузерный WebSocket не умеет ставить заголовки, поэтому токен идёт
// через query parameter.
func (h *Handler) Stream(c *gin.Context) {
	userID := streamUserID(c, h.jwtService)
	if userID == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "user_id", userID, "error", err)
		return
	}

	logger.Debug("notification stream opened", "user_id", userID)
	h.service.hub.ServeWS(conn, userID) // blocks until disconnect
	logger.Debug("notification stream closed", "user_id", userID)
}

func streamUserID(c *gin.Context, jwtService *jwt.Service) string {
	if v, ok := c.Get("user_id"); ok {
		if id, ok := v.(string); ok && id != "" {
			return id
		}
	}

	token := c.Query("token")
	if token == "" || jwtService == nil {
		return ""
	}
	claims, err := jwtService.ValidateToken(token)
	if err != nil {
		return ""
	}
	return claims.UserID()
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
