package util

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"
)

// GenerateBase64Key generates a secure 32-byte key and returns it as base64 URL-encoded
func GenerateBase64Key(size int) (string, error) {
	if size != 32 {
		return "", fmt.Errorf("PASETO v2 local requires a 32-byte key")
	}

	key := make([]byte, size)
	_, err := rand.Read(key)
	if err != nil {
		return "", fmt.Errorf("failed to generate random key: %w", err)
	}

	return base64.URLEncoding.EncodeToString(key), nil
}

// StartOfDay memotong timestamp ke tengah malam pada zona waktu kantor.
// Semua perbandingan "hari ini" di sistem memakai hasil fungsi ini.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// MonthRange mengembalikan [tanggal 1 bulan itu, tanggal 1 bulan berikutnya)
// pada zona waktu kantor. Batas atas eksklusif supaya query rentang tidak
// tergantung jumlah hari dalam bulan.
func MonthRange(year, month int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}
