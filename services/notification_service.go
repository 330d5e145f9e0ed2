package services

import (
	"time"

	"github.com/yeremiapane/staff-portal/hub"
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
	"gorm.io/gorm"
)

const defaultNotificationLimit = 20

type NotificationService struct {
	DB *gorm.DB
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	return &NotificationService{DB: db}
}

// NotificationInput -> payload create; field opsional diisi sesuai tipe
type NotificationInput struct {
	UserID        uint
	Type          string
	Title         string
	Message       string
	LeaveID       *uint
	TaskID        *uint
	ApplicantName string
}

// Create menyimpan satu notifikasi. Best-effort: kalau store gagal, cukup
// dicatat di log dan tidak menggagalkan aksi workflow yang memicunya.
func (ns *NotificationService) Create(input NotificationInput) {
	notif := models.Notification{
		UserID:        input.UserID,
		Type:          input.Type,
		Title:         input.Title,
		Message:       input.Message,
		LeaveID:       input.LeaveID,
		TaskID:        input.TaskID,
		ApplicantName: input.ApplicantName,
		Read:          false,
		CreatedAt:     time.Now(),
	}

	if err := ns.DB.Create(&notif).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to create notification for user %d: %v", input.UserID, err)
		return
	}

	// Push ke koneksi live milik penerima (no-op kalau tidak ada)
	hub.PushNotification(notif.UserID, notif)
	ns.pushUnreadCount(notif.UserID)
}

// ListForUser -> notifikasi terbaru lebih dulu; slice kosong saat error
func (ns *NotificationService) ListForUser(userID uint, limit int) []models.Notification {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	var notifs []models.Notification
	if err := ns.DB.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&notifs).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to list notifications for user %d: %v", userID, err)
		return []models.Notification{}
	}
	return notifs
}

// MarkRead menandai satu notifikasi sudah dibaca. Idempotent: panggilan kedua
// pada id yang sama tidak punya efek apa pun.
func (ns *NotificationService) MarkRead(id uint) {
	var notif models.Notification
	if err := ns.DB.First(&notif, id).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to load notification %d: %v", id, err)
		return
	}
	if notif.Read {
		return
	}

	if err := ns.DB.Model(&models.Notification{}).
		Where("id = ?", id).
		Update("is_read", true).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to mark notification %d as read: %v", id, err)
		return
	}

	ns.pushUnreadCount(notif.UserID)
}

// MarkAllRead menandai semua notifikasi unread milik satu user. Tiap baris
// di-update sendiri-sendiri; kegagalan satu baris tidak membatalkan sisanya.
func (ns *NotificationService) MarkAllRead(userID uint) {
	var ids []uint
	if err := ns.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Pluck("id", &ids).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to list unread notifications for user %d: %v", userID, err)
		return
	}

	for _, id := range ids {
		if err := ns.DB.Model(&models.Notification{}).
			Where("id = ?", id).
			Update("is_read", true).Error; err != nil {
			utils.ErrorLogger.Printf("Failed to mark notification %d as read: %v", id, err)
		}
	}

	if len(ids) > 0 {
		ns.pushUnreadCount(userID)
	}
}

// UnreadCount -> jumlah unread untuk badge counter
func (ns *NotificationService) UnreadCount(userID uint) int64 {
	var count int64
	if err := ns.DB.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error; err != nil {
		utils.ErrorLogger.Printf("Failed to count unread notifications for user %d: %v", userID, err)
		return 0
	}
	return count
}

func (ns *NotificationService) pushUnreadCount(userID uint) {
	hub.PushUnreadCount(userID, ns.UnreadCount(userID))
}
