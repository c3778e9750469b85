package models

type RegisterSuccessResponse struct {
	Message string `json:"message" example:"User berhasil didaftarkan (oleh admin)"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

type LoginSuccessResponse struct {
	Message      string `json:"message" example:"Login berhasil"`
	Token        string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID       string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	Role         string `json:"role" example:"karyawan"`
	IsFirstLogin bool   `json:"is_first_login" example:"true"`
}

type SignInSuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Berhasil sign-in"`
}

type SignOutSuccessResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Berhasil sign-out"`
}

type AlreadySignedInResponse struct {
	Success        bool   `json:"success" example:"false"`
	Message        string `json:"message" example:"Anda sudah sign-in hari ini"`
	Code           string `json:"code" example:"ALREADY_SIGNED_IN"`
	LastSignInTime string `json:"last_sign_in_time" example:"2024-03-01T09:00:00+07:00"`
}

type OutOfBoundsResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Anda harus berada di area kantor untuk sign-in"`
	Code    string `json:"code" example:"OUT_OF_BOUNDS"`
}

type ChangePasswordSuccessResponse struct {
	Message string `json:"message" example:"Password berhasil diubah."`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Token tidak valid atau tidak ada"`
}

type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Akses ditolak. Hak akses admin diperlukan"`
}

type NotFoundErrorResponse struct {
	Error string `json:"error" example:"User tidak ditemukan"`
}

type LogoutSuccessResponse struct {
	Message string `json:"message" example:"Logout berhasil. Silakan hapus token dari sisi client."`
}
