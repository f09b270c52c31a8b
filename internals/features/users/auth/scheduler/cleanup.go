package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"lecats_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah lewat
// exp-nya, sekali sehari. Baris yang belum kedaluwarsa tetap ditahan.
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@daily", func() {
		log.Println("[CLEANUP] Menjalankan pembersihan token_blacklist...")

		res := db.Where("expired_at < ?", time.Now().UTC()).
			Delete(&model.TokenBlacklist{})
		if res.Error != nil {
			log.Printf("[CLEANUP ERROR] Gagal hapus token: %v", res.Error)
			return
		}
		log.Printf("[CLEANUP] %d token kadaluarsa dihapus", res.RowsAffected)
	})
	if err != nil {
		log.Printf("[CLEANUP ERROR] Gagal mendaftarkan job: %v", err)
	}

	c.Start()
	return c
}
