package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	qrcode "github.com/skip2/go-qrcode"

	"Sistem-Absensi-Geofence/models"
	util "Sistem-Absensi-Geofence/pkg/utils"
	"Sistem-Absensi-Geofence/service"
)

// AdminAttendanceHandler melayani tampilan kehadiran lintas user untuk admin.
type AdminAttendanceHandler struct {
	adminService *service.AdminAttendanceService
	loc          *time.Location
	checkInURL   string
}

func NewAdminAttendanceHandler(adminService *service.AdminAttendanceService, loc *time.Location, checkInURL string) *AdminAttendanceHandler {
	return &AdminAttendanceHandler{
		adminService: adminService,
		loc:          loc,
		checkInURL:   checkInURL,
	}
}

// GetAllAttendance godoc
// @Summary Laporan Kehadiran Per Rentang Tanggal
// @Description Mengambil catatan kehadiran seluruh user pada rentang tanggal inklusif, dikelompokkan per user dan diurutkan nama ascending. User tanpa catatan pada rentang itu tidak dimunculkan.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param start_date query string true "Tanggal awal (2006-01-02)"
// @Param end_date query string true "Tanggal akhir (2006-01-02)"
// @Success 200 {array} models.UserAttendanceGroup
// @Failure 400 {object} models.ErrorResponse "Format atau urutan tanggal salah"
// @Failure 500 {object} models.ErrorResponse "Gagal aggregation"
// @Router /admin/attendance [get]
func (h *AdminAttendanceHandler) GetAllAttendance(c *fiber.Ctx) error {
	layout := "2006-01-02"

	startDate, err := time.ParseInLocation(layout, c.Query("start_date"), h.loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format start_date tidak valid, gunakan YYYY-MM-DD"})
	}
	endDate, err := time.ParseInLocation(layout, c.Query("end_date"), h.loc)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Format end_date tidak valid, gunakan YYYY-MM-DD"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	groups, err := h.adminService.ListAttendance(ctx, startDate, endDate)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "end_date tidak boleh sebelum start_date"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil laporan kehadiran"})
	}

	return c.Status(fiber.StatusOK).JSON(groups)
}

// GetTodayAttendance godoc
// @Summary Kehadiran Hari Ini
// @Description Mengambil seluruh catatan kehadiran hari ini beserta detail user, urut waktu sign-in.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AttendanceWithUser
// @Failure 500 {object} models.ErrorResponse "Gagal aggregation"
// @Router /admin/attendance/today [get]
func (h *AdminAttendanceHandler) GetTodayAttendance(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	attendanceList, err := h.adminService.TodayAttendance(ctx, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil daftar kehadiran"})
	}

	if attendanceList == nil {
		return c.Status(fiber.StatusOK).JSON([]models.AttendanceWithUser{})
	}

	return c.Status(fiber.StatusOK).JSON(attendanceList)
}

// GetDashboardStats godoc
// @Summary Ringkasan Dashboard
// @Description Ringkasan kehadiran hari ini: total karyawan, hadir penuh, masih bekerja, belum hadir.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.DashboardStats
// @Failure 500 {object} models.ErrorResponse "Gagal menghitung statistik"
// @Router /admin/dashboard-stats [get]
func (h *AdminAttendanceHandler) GetDashboardStats(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	stats, err := h.adminService.DashboardStats(ctx, time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menghitung statistik dashboard"})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

// GetMonthlyReport godoc
// @Summary Laporan Bulanan
// @Description Rekap kehadiran satu bulan: hari kerja efektif dari pola kerja kantor dikurangi hari libur nasional, plus jumlah hadir per karyawan.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param year query int false "Tahun (default tahun berjalan)"
// @Param month query int false "Bulan 1-12 (default bulan berjalan)"
// @Success 200 {object} models.MonthlyReport
// @Failure 400 {object} models.ErrorResponse "Periode tidak valid"
// @Failure 500 {object} models.ErrorResponse "Gagal menyusun laporan"
// @Router /admin/attendance/monthly-report [get]
func (h *AdminAttendanceHandler) GetMonthlyReport(c *fiber.Ctx) error {
	now := time.Now().In(h.loc)
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	report, err := h.adminService.MonthlyReport(ctx, year, month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bulan atau tahun tidak valid"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal menyusun laporan bulanan", "details": err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

// GenerateCheckInQR godoc
// @Summary QR Poster Check-In
// @Description Membuat gambar QR berisi URL halaman check-in untuk dipasang di pintu kantor. Memindai QR hanya membuka aplikasi client; pencatatan kehadiran tetap melalui pemeriksaan geofence.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string,qr_code_image=string,check_in_url=string}
// @Failure 500 {object} models.ErrorResponse "Gagal membuat gambar QR"
// @Router /admin/attendance/check-in-qr [get]
func (h *AdminAttendanceHandler) GenerateCheckInQR(c *fiber.Ctx) error {
	png, err := qrcode.Encode(h.checkInURL, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal membuat gambar QR Code."})
	}

	encodedString := base64.StdEncoding.EncodeToString(png)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "QR Code berhasil dibuat",
		"qr_code_image": "data:image/png;base64," + encodedString,
		"check_in_url":  h.checkInURL,
	})
}

// GetHolidays godoc
// @Summary Hari Libur Nasional
// @Description Mengambil daftar hari libur nasional untuk kalender kehadiran di frontend.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param year query string false "Tahun (default tahun berjalan)"
// @Success 200 {array} models.Holiday
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil data hari libur"
// @Router /attendance/holidays [get]
func (h *AdminAttendanceHandler) GetHolidays(c *fiber.Ctx) error {
	year := c.Query("year")
	if year == "" {
		year = time.Now().In(h.loc).Format("2006")
	}

	holidaysData, err := util.GetExternalHolidaysForFrontend(year)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil data hari libur", "details": err.Error()})
	}
	if holidaysData == nil {
		holidaysData = []models.Holiday{}
	}
	return c.Status(fiber.StatusOK).JSON(holidaysData)
}
