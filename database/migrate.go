package database

import (
	"github.com/yeremiapane/staff-portal/models"
	"github.com/yeremiapane/staff-portal/utils"
	"gorm.io/gorm"
)

// Migrate menjalankan AutoMigrate untuk semua model
func Migrate(db *gorm.DB) error {
	// Kolom legacy notifications.data (JSON bebas) sudah diganti kolom
	// bertipe per jenis notifikasi; hapus kalau masih ada
	if db.Migrator().HasColumn(&models.Notification{}, "data") {
		if err := db.Migrator().DropColumn(&models.Notification{}, "data"); err != nil {
			utils.ErrorLogger.Printf("Error dropping notifications.data column: %v", err)
		}
	}

	err := db.AutoMigrate(
		&models.Division{},
		&models.User{},
		&models.LeaveApplication{},
		&models.Notification{},
		&models.Task{},
	)
	if err != nil {
		return err
	}

	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
