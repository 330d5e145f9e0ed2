package models

import "time"

// Status cuti hanya boleh maju: pending -> recommended -> approved,
// atau pending/recommended -> rejected. approved dan rejected terminal.
const (
	LeaveStatusPending     = "pending"
	LeaveStatusRecommended = "recommended"
	LeaveStatusApproved    = "approved"
	LeaveStatusRejected    = "rejected"
)

type LeaveApplication struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	ApplicantID     uint      `gorm:"not null;index" json:"applicant_id"`
	Applicant       User      `gorm:"foreignKey:ApplicantID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"applicant"`
	LeaveType       string    `gorm:"type:varchar(50);not null" json:"leave_type"` // casual, sick, annual, dst.
	LeaveDays       int       `gorm:"not null" json:"leave_days"`
	StartDate       time.Time `gorm:"not null" json:"start_date"`
	EndDate         time.Time `gorm:"not null" json:"end_date"`
	Reason          string    `gorm:"type:text" json:"reason"`
	ActingOfficer   string    `gorm:"type:varchar(255)" json:"acting_officer"`
	RecommenderID   uint      `gorm:"not null;index" json:"recommender_id"`
	ApproverID      uint      `gorm:"not null;index" json:"approver_id"`
	Status          string    `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	RecommendedBy   *uint     `json:"recommended_by,omitempty"`
	RecommendedAt   *time.Time `json:"recommended_at,omitempty"`
	RecommendRemark string     `gorm:"type:text" json:"recommend_remark,omitempty"`
	ApprovedBy      *uint      `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	ApprovalRemark  string     `gorm:"type:text" json:"approval_remark,omitempty"`
	RejectionReason string     `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`
}

// IsTerminal -> tidak ada transisi lagi setelah approved/rejected
func (l *LeaveApplication) IsTerminal() bool {
	return l.Status == LeaveStatusApproved || l.Status == LeaveStatusRejected
}
