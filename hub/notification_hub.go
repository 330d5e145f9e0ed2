package hub

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/yeremiapane/staff-portal/models"
)

// Event types
const (
	EventNotification = "notification"
	EventUnreadCount  = "unread_count"
)

type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// NotificationHub menampung koneksi websocket per user. Satu user boleh punya
// lebih dari satu koneksi (mis. dua tab browser).
type NotificationHub struct {
	clients map[uint]map[*websocket.Conn]bool // user id -> connections
	mutex   sync.Mutex
}

var notifHub = NotificationHub{
	clients: make(map[uint]map[*websocket.Conn]bool),
}

// RegisterClient -> menambahkan connection untuk satu user
func RegisterClient(conn *websocket.Conn, userID uint) {
	notifHub.mutex.Lock()
	defer notifHub.mutex.Unlock()
	if notifHub.clients[userID] == nil {
		notifHub.clients[userID] = make(map[*websocket.Conn]bool)
	}
	notifHub.clients[userID][conn] = true
}

// UnregisterClient -> melepaskan connection dan menutupnya
func UnregisterClient(conn *websocket.Conn, userID uint) {
	notifHub.mutex.Lock()
	defer notifHub.mutex.Unlock()
	if conns, ok := notifHub.clients[userID]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(notifHub.clients, userID)
		}
	}
	conn.Close()
}

// PushNotification -> kirim notifikasi baru ke semua koneksi milik penerima
func PushNotification(userID uint, notif models.Notification) {
	push(userID, Message{
		Event: EventNotification,
		Data:  notif,
	})
}

// PushUnreadCount -> kirim jumlah unread terbaru ke penerima
func PushUnreadCount(userID uint, count int64) {
	push(userID, Message{
		Event: EventUnreadCount,
		Data:  map[string]int64{"unread": count},
	})
}

// push -> fungsi internal untuk mengirim pesan ke satu user
func push(userID uint, msg Message) {
	notifHub.mutex.Lock()
	defer notifHub.mutex.Unlock()

	conns, ok := notifHub.clients[userID]
	if !ok || len(conns) == 0 {
		return
	}

	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Error marshaling message: %v", err)
		return
	}

	for conn := range conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			log.Printf("Error sending message to user %d: %v", userID, err)
			continue
		}
	}
}
