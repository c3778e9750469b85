package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name,omitempty"`
	Email        string             `json:"email" bson:"email,omitempty"`
	Password     string             `json:"-" bson:"password,omitempty"`
	Role         string             `json:"role" bson:"role,omitempty"`
	Position     string             `json:"position" bson:"position,omitempty"`
	Photo        string             `json:"photo" bson:"photo,omitempty"`
	IsFirstLogin bool               `json:"is_first_login" bson:"is_first_login,omitempty"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type UserRegisterPayload struct {
	Name     string `json:"name" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=50,hasuppercase"`
	Role     string `json:"role" validate:"required,oneof=admin karyawan"`
	Position string `json:"position"`
	Photo    string `json:"photo" validate:"omitempty,url"`
}

type UserLoginPayload struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserUpdatePayload struct {
	Name     string `json:"name,omitempty" validate:"omitempty,min=3,max=100"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Position string `json:"position,omitempty"`
	Photo    string `json:"photo,omitempty" validate:"omitempty,url"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50,hasuppercase"`
}

// Claims adalah identitas hasil verifikasi token PASETO yang ditaruh di
// c.Locals("user") oleh middleware auth.
type Claims struct {
	UserID       primitive.ObjectID `json:"user_id"`
	Email        string             `json:"email"`
	Role         string             `json:"role"`
	IsFirstLogin bool               `json:"is_first_login"`
}

// DashboardStats adalah ringkasan kehadiran hari ini untuk dashboard admin.
type DashboardStats struct {
	TotalKaryawan int64 `json:"total_karyawan"`
	HadirPenuh    int64 `json:"hadir_penuh"`
	MasihBekerja  int64 `json:"masih_bekerja"`
	BelumHadir    int64 `json:"belum_hadir"`
}
