package models

import (
	"time"
)

const (
	NotifLeaveApplication    = "leave_application"
	NotifLeaveRecommendation = "leave_recommendation"
	NotifLeaveApproval       = "leave_approval"
	NotifLeaveRejection      = "leave_rejection"
	NotifTaskAssigned        = "task_assigned"
)

// Notification dimiliki satu penerima; hanya flag Read yang boleh berubah.
// LeaveID/TaskID/ApplicantName diisi sesuai tipe notifikasi.
type Notification struct {
	ID            uint   `gorm:"primaryKey"`
	UserID        uint   `gorm:"not null;index"`
	User          User   `gorm:"foreignKey:UserID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Type          string `gorm:"type:varchar(50);not null"`
	Title         string `gorm:"type:varchar(100);not null"`
	Message       string `gorm:"type:text;not null"`
	LeaveID       *uint
	TaskID        *uint
	ApplicantName string    `gorm:"type:varchar(255)"`
	Read          bool      `gorm:"column:is_read;not null;default:false;index"` // 'read' reserved di MySQL
	CreatedAt     time.Time `gorm:"not null"`
}
