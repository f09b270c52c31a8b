package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret string

	// Seed admin: kredensial bootstrap dari ENV, tidak punya baris user di DB.
	// Sengaja dipertahankan sebagai escape hatch awal (bukan bug).
	SeedAdminEmail    string
	SeedAdminPassword string

	// Folder penyimpanan file excuse (blob store lokal)
	UploadDir string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SeedAdminEmail = GetEnv("SEED_ADMIN_EMAIL", "admin@example.com")
	SeedAdminPassword = GetEnv("SEED_ADMIN_PASSWORD", "admin123")
	UploadDir = GetEnv("UPLOAD_DIR", "uploads")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}

	if err := os.MkdirAll(UploadDir, 0o755); err != nil {
		log.Printf("❌ Gagal membuat folder upload %q: %v", UploadDir, err)
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}
