package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Holiday adalah hari libur nasional dari API eksternal.
type Holiday struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// UserStatusCount adalah hasil agregasi jumlah catatan per user per status.
type UserStatusCount struct {
	UserID  primitive.ObjectID `json:"user_id" bson:"user_id"`
	Name    string             `json:"name" bson:"name"`
	Email   string             `json:"email" bson:"email"`
	Present int64              `json:"present" bson:"present"`
	Partial int64              `json:"partial" bson:"partial"`
}

// MonthlyUserSummary adalah satu baris laporan bulanan per karyawan.
type MonthlyUserSummary struct {
	UserID         primitive.ObjectID `json:"user_id"`
	Name           string             `json:"name"`
	Email          string             `json:"email"`
	PresentDays    int64              `json:"present_days"`
	PartialDays    int64              `json:"partial_days"`
	AttendanceRate float64            `json:"attendance_rate"`
}

// MonthlyReport menggabungkan hari kerja efektif (pola kerja kantor dikurangi
// hari libur nasional) dengan rekap kehadiran tiap karyawan.
type MonthlyReport struct {
	Year        int                  `json:"year"`
	Month       int                  `json:"month"`
	WorkingDays int                  `json:"working_days"`
	Holidays    []Holiday            `json:"holidays"`
	Users       []MonthlyUserSummary `json:"users"`
}
