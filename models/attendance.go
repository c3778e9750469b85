package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status kehadiran harian. Nilainya selalu turunan dari ada/tidaknya sign_in
// dan sign_out (lihat DeriveStatus); field yang tersimpan hanyalah cache.
const (
	StatusAbsent  = "absent"
	StatusPartial = "partial"
	StatusPresent = "present"
)

// GeoLocation adalah koordinat perangkat saat melakukan absensi. Accuracy
// (meter) disimpan apa adanya untuk audit, tidak dipakai dalam keputusan
// geofence.
type GeoLocation struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	Accuracy  float64 `json:"accuracy,omitempty" bson:"accuracy,omitempty"`
}

// AttendanceEvent adalah satu kejadian sign-in atau sign-out.
type AttendanceEvent struct {
	Time     time.Time   `json:"time" bson:"time"`
	Location GeoLocation `json:"location" bson:"location"`
}

// Attendance adalah catatan kehadiran satu user untuk satu hari kalender.
// Date dinormalisasi ke tengah malam zona waktu kantor dan menjadi kunci
// identitas bersama user_id (indeks unik uniq_user_per_day).
type Attendance struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Date      time.Time          `json:"date" bson:"date"`
	SignIn    *AttendanceEvent   `json:"sign_in,omitempty" bson:"sign_in,omitempty"`
	SignOut   *AttendanceEvent   `json:"sign_out,omitempty" bson:"sign_out,omitempty"`
	Status    string             `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// DeriveStatus menghitung status dari keberadaan sign-in/sign-out.
// present hanya jika keduanya ada, partial jika baru sign-in, selain itu absent.
func DeriveStatus(signIn, signOut *AttendanceEvent) string {
	switch {
	case signIn != nil && signOut != nil:
		return StatusPresent
	case signIn != nil:
		return StatusPartial
	default:
		return StatusAbsent
	}
}

// RefreshStatus menyegarkan cache status agar tidak pernah menyimpang dari
// aturan turunannya.
func (a *Attendance) RefreshStatus() {
	a.Status = DeriveStatus(a.SignIn, a.SignOut)
}

// AttendancePayload adalah body request sign-in/sign-out. Latitude dan
// longitude pointer supaya nilai 0 tetap terbaca sebagai "diisi".
type AttendancePayload struct {
	Latitude  *float64 `json:"latitude" validate:"required,latitude"`
	Longitude *float64 `json:"longitude" validate:"required,longitude"`
	Accuracy  float64  `json:"accuracy" validate:"omitempty,min=0"`
}

// UserAttendanceGroup adalah satu baris tampilan admin: satu user beserta
// seluruh catatan kehadirannya dalam rentang tanggal yang diminta.
type UserAttendanceGroup struct {
	UserID     primitive.ObjectID `json:"user_id" bson:"user_id"`
	Name       string             `json:"name" bson:"name"`
	Email      string             `json:"email" bson:"email"`
	Attendance []Attendance       `json:"attendance" bson:"attendance"`
}

// AttendanceWithUser adalah satu catatan kehadiran yang sudah digabung dengan
// detail user, dipakai tampilan "hari ini" di dashboard admin.
type AttendanceWithUser struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id"`
	Date      time.Time          `json:"date" bson:"date"`
	SignIn    *AttendanceEvent   `json:"sign_in,omitempty" bson:"sign_in,omitempty"`
	SignOut   *AttendanceEvent   `json:"sign_out,omitempty" bson:"sign_out,omitempty"`
	Status    string             `json:"status" bson:"status"`
	UserName  string             `json:"user_name" bson:"user_name"`
	UserEmail string             `json:"user_email" bson:"user_email"`
	UserPhoto string             `json:"user_photo,omitempty" bson:"user_photo,omitempty"`
}
