package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/odacaict/domee.ro/middleware"
	"github.com/odacaict/domee.ro/services/notification"
)

// NotificationHandler exposes the in-app notification feed.
type NotificationHandler struct {
	Svc notification.NotificationService
}

func (h *NotificationHandler) GetMyNotifications(c *gin.Context) {
	list, err := h.Svc.GetUserNotifications(c.GetString(middleware.CtxUserID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": list})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Marked as read"})
}

func (h *NotificationHandler) ClearAll(c *gin.Context) {
	if err := h.Svc.ClearAll(c.GetString(middleware.CtxUserID)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notifications cleared"})
}
