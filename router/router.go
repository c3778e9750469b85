package router

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"Sistem-Absensi-Geofence/config"
	"Sistem-Absensi-Geofence/config/middleware"
	_ "Sistem-Absensi-Geofence/docs"
	"Sistem-Absensi-Geofence/handlers"
	"Sistem-Absensi-Geofence/pkg/paseto"
	"Sistem-Absensi-Geofence/repository"
	"Sistem-Absensi-Geofence/service"
)

func SetupRoutes(app *fiber.App, cfg *config.AppConfig) {
	log.Println("Memulai pendaftaran rute aplikasi...")

	// Inisialisasi Repositories
	userRepo := repository.NewUserRepository()
	attendanceRepo := repository.NewAttendanceRepository()

	// Inisialisasi Services
	attendanceService := service.NewAttendanceService(attendanceRepo, cfg.Office, cfg.Timezone)
	adminService := service.NewAdminAttendanceService(attendanceRepo, userRepo, cfg.Timezone, cfg.WorkRule)

	pasetoMaker, err := paseto.NewPasetoMaker()
	if err != nil {
		log.Fatalf("Gagal menginisialisasi PASETO maker: %v", err)
	}

	// Inisialisasi Handlers
	authHandler := handlers.NewAuthHandler(userRepo)
	userHandler := handlers.NewUserHandler(userRepo, cfg.UploadDir)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService, cfg.Timezone)
	adminAttendanceHandler := handlers.NewAdminAttendanceHandler(adminService, cfg.Timezone, cfg.CheckInURL)

	// Health check & Docs
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Sistem Absensi Geofence API",
			"status":  "running",
			"docs":    "/docs/index.html",
		})
	})
	app.Get("/docs/*", swagger.HandlerDefault)
	app.Static("/uploads", cfg.UploadDir)

	// API v1 group
	api := app.Group("/api/v1")

	// Authentication routes
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(pasetoMaker), authHandler.Logout)

	// User routes
	protectedUserGroup := api.Group("/users", middleware.AuthMiddleware(pasetoMaker))
	protectedUserGroup.Post("/change-password", authHandler.ChangePassword)
	protectedUserGroup.Get("/:id", userHandler.GetUserByID)
	protectedUserGroup.Put("/:id", userHandler.UpdateUser)
	protectedUserGroup.Post("/:id/upload-photo", userHandler.UploadProfilePhoto)

	// Rute kehadiran karyawan: sign-in/sign-out dijaga geofence di service
	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware(pasetoMaker))
	attendanceGroup.Post("/sign-in", attendanceHandler.SignIn)
	attendanceGroup.Post("/sign-out", attendanceHandler.SignOut)
	attendanceGroup.Get("/my-history", attendanceHandler.GetMyAttendanceHistory)
	attendanceGroup.Get("/holidays", adminAttendanceHandler.GetHolidays)

	// Admin routes
	adminGroup := api.Group("/admin", middleware.AuthMiddleware(pasetoMaker), middleware.AdminMiddleware())
	adminGroup.Post("/register", authHandler.Register)
	adminGroup.Get("/users", userHandler.GetAllUsers)
	adminGroup.Delete("/users/:id", userHandler.DeleteUser)
	adminGroup.Get("/dashboard-stats", adminAttendanceHandler.GetDashboardStats)
	adminGroup.Get("/attendance", adminAttendanceHandler.GetAllAttendance)
	adminGroup.Get("/attendance/today", adminAttendanceHandler.GetTodayAttendance)
	adminGroup.Get("/attendance/monthly-report", adminAttendanceHandler.GetMonthlyReport)
	adminGroup.Get("/attendance/check-in-qr", adminAttendanceHandler.GenerateCheckInQR)

	log.Println("Semua rute aplikasi berhasil didaftarkan.")
	log.Println("Routes yang tersedia:")
	log.Println("- POST /api/v1/auth/login")
	log.Println("- POST /api/v1/auth/logout (protected)")
	log.Println("- POST /api/v1/users/change-password (protected)")
	log.Println("- GET /api/v1/users/:id (protected)")
	log.Println("- PUT /api/v1/users/:id (protected)")
	log.Println("- POST /api/v1/users/:id/upload-photo (protected)")
	log.Println("- POST /api/v1/attendance/sign-in (protected)")
	log.Println("- POST /api/v1/attendance/sign-out (protected)")
	log.Println("- GET /api/v1/attendance/my-history (protected)")
	log.Println("- GET /api/v1/attendance/holidays (protected)")
	log.Println("- POST /api/v1/admin/register (admin only)")
	log.Println("- GET /api/v1/admin/users (admin only)")
	log.Println("- DELETE /api/v1/admin/users/:id (admin only)")
	log.Println("- GET /api/v1/admin/dashboard-stats (admin only)")
	log.Println("- GET /api/v1/admin/attendance (admin only)")
	log.Println("- GET /api/v1/admin/attendance/today (admin only)")
	log.Println("- GET /api/v1/admin/attendance/monthly-report (admin only)")
	log.Println("- GET /api/v1/admin/attendance/check-in-qr (admin only)")
	log.Println("Swagger documentation tersedia di: /docs/index.html")
}
