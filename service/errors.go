package service

import (
	"errors"
	"fmt"
	"time"
)

// Kesalahan yang dikembalikan AttendanceService. Handler yang memetakan ke
// status HTTP dan pesan untuk client; tidak ada yang fatal bagi proses.
var (
	// ErrMissingCoordinates: request tanpa latitude/longitude.
	ErrMissingCoordinates = errors.New("latitude dan longitude wajib diisi")

	// ErrOutOfBounds: koordinat valid tetapi berada di luar geofence kantor.
	ErrOutOfBounds = errors.New("berada di luar radius kantor")

	// ErrNoActiveSignIn: sign-out tanpa sign-in terbuka hari ini. Menutupi
	// dua kasus sekaligus: belum sign-in, atau sudah sign-out.
	ErrNoActiveSignIn = errors.New("tidak ada sign-in aktif untuk hari ini")

	// ErrInvalidPeriod: rentang tanggal atau bulan yang diminta tidak masuk akal.
	ErrInvalidPeriod = errors.New("periode yang diminta tidak valid")
)

// AlreadySignedInError adalah konflik idempotensi sign-in. Waktu sign-in
// sebelumnya disertakan supaya client bisa menampilkannya alih-alih retry.
type AlreadySignedInError struct {
	LastSignIn time.Time
}

func (e *AlreadySignedInError) Error() string {
	return fmt.Sprintf("sudah sign-in hari ini pada %s", e.LastSignIn.Format(time.RFC3339))
}
