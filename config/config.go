package config

import (
	"encoding/base64"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port          string
	MONGOSTRING   string
	PASETO_SECRET string
	CheckInURL    string
	UploadDir     string
	// WorkRule adalah pola hari kerja kantor dalam format RRULE (RFC 5545),
	// dipakai laporan bulanan untuk menghitung hari kerja efektif.
	WorkRule string
	Office   OfficeGeofence
	Timezone *time.Location
}

// OfficeGeofence adalah batas kantor berbentuk lingkaran. Dibaca sekali saat
// startup dan tidak pernah berubah selama proses berjalan.
type OfficeGeofence struct {
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
}

// LoadConfig loads configuration from .env file
func LoadConfig() *AppConfig {
	err := godotenv.Load()
	if err != nil {
		log.Printf("Warning: Error loading .env file (might not exist in production): %v", err)
	}

	secretBase64 := getEnv("PASETO_SECRET", "default_paseto_secret_base64_mustbe32bytes_")

	// Lakukan decoding untuk validasi panjang byte
	secretBytes, err := base64.URLEncoding.DecodeString(secretBase64)
	if err != nil {
		log.Fatalf("PASETO_SECRET in .env is not a valid Base64 URL-encoded string: %v", err)
	}

	if len(secretBytes) != 32 {
		log.Fatalf("PASETO_SECRET (decoded) must be exactly 32 bytes long. Current length: %d", len(secretBytes))
	}

	tzName := getEnv("TIMEZONE", "Asia/Jakarta")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		log.Fatalf("TIMEZONE '%s' tidak valid: %v", tzName, err)
	}

	return &AppConfig{
		Port:          getEnv("PORT", "3000"),
		MONGOSTRING:   getEnv("MONGOSTRING", ""),
		PASETO_SECRET: secretBase64,
		CheckInURL:    getEnv("CHECKIN_URL", "http://localhost:5173/dashboard"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		WorkRule:      getEnv("WORK_RRULE", "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"),
		Office: OfficeGeofence{
			Latitude:     getEnvFloat("OFFICE_LAT", -6.200000),
			Longitude:    getEnvFloat("OFFICE_LON", 106.816666),
			RadiusMeters: getEnvFloat("OFFICE_RADIUS", 100),
		},
		Timezone: loc,
	}
}

// Helper function to get environment variable or fallback to default
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Fatalf("%s harus berupa angka, dapat '%s': %v", key, value, err)
	}
	return parsed
}
