package configs

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	AppEnv            string
	JWTSecret         string
	BackendBaseURL    string
	CertOutputDir     string
	CertPublicBaseURL string
	CertFontPath      string
	CertBackgroundDir string
	MidtransServerKey string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ No .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded!")
		}
	} else {
		log.Println("🚀 Running in Railway, using system ENV")
	}

	AppEnv = GetEnvOrDefault("APP_ENV", "development")
	JWTSecret = GetEnv("JWT_SECRET")
	BackendBaseURL = GetEnvOrDefault("BACKEND_BASE_URL", "http://localhost:3000")
	CertOutputDir = GetEnvOrDefault("CERT_OUTPUT_DIR", "./public/certificates")
	CertPublicBaseURL = GetEnvOrDefault("CERT_PUBLIC_BASE_URL", "http://localhost:3000/public/certificates")
	CertFontPath = GetEnv("CERT_FONT_PATH")
	CertBackgroundDir = GetEnvOrDefault("CERT_BACKGROUND_DIR", "./assets/certificates")
	MidtransServerKey = GetEnv("MIDTRANS_SERVER_KEY")

	if JWTSecret == "" {
		log.Println("⚠️ JWT_SECRET not set — session sync will accept unsigned tokens (dev only)")
	} else {
		log.Println("✅ JWT_SECRET loaded.")
	}
	if MidtransServerKey == "" {
		log.Println("⚠️ MIDTRANS_SERVER_KEY not set — checkout endpoint disabled")
	}
}

func GetEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func GetEnvOrDefault(key, def string) string {
	if v := GetEnv(key); v != "" {
		return v
	}
	return def
}

// IsProduction reports whether the app runs with production hardening
// (secure cookies etc).
func IsProduction() bool {
	return strings.EqualFold(AppEnv, "production")
}
