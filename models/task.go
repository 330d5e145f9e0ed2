package models

import "time"

const (
	TaskStatusOpen       = "open"
	TaskStatusInProgress = "in_progress"
	TaskStatusDone       = "done"
)

type Task struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"type:varchar(255);not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	AssigneeID  *uint  `gorm:"index" json:"assignee_id,omitempty"`
	Assignee    *User  `gorm:"foreignKey:AssigneeID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"assignee,omitempty"`
	CreatedByID uint   `gorm:"not null" json:"created_by_id"`
	CreatedBy   User   `gorm:"foreignKey:CreatedByID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"created_by"`
	Status      string `gorm:"type:varchar(20);not null;default:'open'" json:"status"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}
