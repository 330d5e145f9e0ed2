package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/services"
	"github.com/yeremiapane/staff-portal/utils"
	"gorm.io/gorm"
)

type NotificationController struct {
	DB      *gorm.DB
	Service *services.NotificationService
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{
		DB:      db,
		Service: services.NewNotificationService(db),
	}
}

// GetMyNotifications -> notifikasi milik user yang login, terbaru dulu
func (nc *NotificationController) GetMyNotifications(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	notifs := nc.Service.ListForUser(userID, limit)

	utils.RespondJSON(c, http.StatusOK, "My notifications", gin.H{
		"notifications": notifs,
		"unread":        nc.Service.UnreadCount(userID),
	})
}

// GetUnreadCount -> badge counter
func (nc *NotificationController) GetUnreadCount(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Unread count", gin.H{
		"unread": nc.Service.UnreadCount(userID),
	})
}

// MarkAsRead -> idempotent; hanya pemilik notifikasi yang boleh
func (nc *NotificationController) MarkAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	idStr := c.Param("notif_id")
	id, _ := strconv.Atoi(idStr)

	var notif models.Notification
	if err := nc.DB.First(&notif, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	if notif.UserID != userID {
		utils.RespondError(c, http.StatusForbidden, errors.New("notification belongs to another user"))
		return
	}

	nc.Service.MarkRead(notif.ID)
	utils.RespondJSON(c, http.StatusOK, "Notification marked as read", gin.H{"notif_id": notif.ID})
}

// MarkAllAsRead -> set semua unread milik user; partial failure ditoleransi
func (nc *NotificationController) MarkAllAsRead(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("user id not found in context"))
		return
	}

	nc.Service.MarkAllRead(userID)
	utils.RespondJSON(c, http.StatusOK, "All notifications marked as read", gin.H{
		"unread": nc.Service.UnreadCount(userID),
	})
}

// GetAllNotifications -> listing untuk Admin
func (nc *NotificationController) GetAllNotifications(c *gin.Context) {
	var notifs []models.Notification
	if err := nc.DB.Preload("User").Order("created_at DESC").Find(&notifs).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "All notifications", notifs)
}

// currentUserID -> ambil user_id yang diset auth middleware
func currentUserID(c *gin.Context) (uint, bool) {
	userIDInterface, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, ok := userIDInterface.(uint)
	return userID, ok
}
