package models

import "time"

// Role constants -> dipakai untuk routing approval cuti
const (
	RoleAdmin          = "admin"
	RoleStaff          = "staff"
	RoleDivisionCC     = "division_cc"
	RoleDivisionalHead = "divisional_head"
	RoleHOD            = "hod"
)

type User struct {
	ID         uint   `gorm:"primaryKey"`
	Name       string `gorm:"type:varchar(255); not null"`
	Email      string `gorm:"type:varchar(255); unique;not null"`
	Password   string `gorm:"type:varchar(255); not null" json:"-"`
	Role       string `gorm:"type:varchar(50); not null"`
	DivisionID *uint
	Division   *Division `gorm:"foreignKey:DivisionID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	StaffType  string    `gorm:"type:varchar(100)"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsApproverRole -> role yang boleh memberi keputusan akhir
func IsApproverRole(role string) bool {
	return role == RoleDivisionalHead || role == RoleHOD
}
