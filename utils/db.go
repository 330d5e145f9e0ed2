package utils

import (
	"sync"

	"gorm.io/gorm"
)

var (
	db   *gorm.DB
	once sync.Once
	mu   sync.RWMutex
)

// InitDB menyimpan koneksi utama; panggilan berikutnya diabaikan
func InitDB(database *gorm.DB) {
	once.Do(func() {
		db = database
	})
}

// GetDB -> koneksi yang diset InitDB; nil sebelum inisialisasi
func GetDB() *gorm.DB {
	mu.RLock()
	defer mu.RUnlock()
	return db
}
