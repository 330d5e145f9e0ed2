package models

import "time"

// Division menyimpan rantai approval: CC merekomendasikan, Head memutuskan
type Division struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"type:varchar(255);unique;not null"`
	CCID      *uint
	CC        *User `gorm:"foreignKey:CCID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	HeadID    *uint
	Head      *User `gorm:"foreignKey:HeadID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
