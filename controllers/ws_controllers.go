package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/yeremiapane/staff-portal/hub"
	"github.com/yeremiapane/staff-portal/services"
	"github.com/yeremiapane/staff-portal/utils"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Sesuaikan dengan kebutuhan keamanan
	},
}

// NotificationStreamHandler -> endpoint WebSocket untuk live notification.
// Koneksi terdaftar atas nama user yang login; ditutup dan dilepas saat
// read loop berakhir.
func NotificationStreamHandler(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}

	ws, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}

	hub.RegisterClient(ws, userID)

	// Kirim jumlah unread saat connect supaya badge langsung terisi
	if db := utils.GetDB(); db != nil {
		svc := services.NewNotificationService(db)
		hub.PushUnreadCount(userID, svc.UnreadCount(userID))
	}

	// Baca pesan hanya untuk mendeteksi disconnect
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}

	hub.UnregisterClient(ws, userID)
}
