package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func get(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// DSN merakit data source name MySQL dari environment
func DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		get("DB_USER", "root"),
		get("DB_PASSWORD", ""),
		get("DB_HOST", "127.0.0.1"),
		get("DB_PORT", "3306"),
		get("DB_NAME", "staff_portal"),
	)
}

// InitDB membuka koneksi database utama
func InitDB() (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(DSN()), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return db, nil
}
