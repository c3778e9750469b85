package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"Sistem-Absensi-Geofence/models"
	util "Sistem-Absensi-Geofence/pkg/utils"
	"Sistem-Absensi-Geofence/service"
)

type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	loc               *time.Location
}

func NewAttendanceHandler(attendanceService *service.AttendanceService, loc *time.Location) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		loc:               loc,
	}
}

func (h *AttendanceHandler) parsePayload(c *fiber.Ctx) (*models.AttendancePayload, error) {
	var payload models.AttendancePayload
	if err := c.BodyParser(&payload); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Payload tidak valid: " + err.Error(),
		})
	}
	if errs := util.ValidateStruct(payload); errs != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Latitude dan longitude wajib diisi",
			"errors":  errs,
		})
	}
	return &payload, nil
}

// SignIn godoc
// @Summary Sign In Kehadiran
// @Description Mencatat sign-in kehadiran hari ini. Hanya berhasil jika perangkat berada dalam radius kantor dan user belum sign-in hari ini.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body models.AttendancePayload true "Koordinat perangkat"
// @Success 200 {object} models.SignInSuccessResponse "Berhasil sign-in"
// @Failure 400 {object} models.AlreadySignedInResponse "Koordinat kurang, di luar radius, atau sudah sign-in"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 500 {object} models.ErrorResponse "Kesalahan persistensi"
// @Router /attendance/sign-in [post]
func (h *AttendanceHandler) SignIn(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	payload, errResp := h.parsePayload(c)
	if payload == nil {
		return errResp
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err := h.attendanceService.SignIn(ctx, claims.UserID, payload, time.Now())
	if err == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Berhasil sign-in",
		})
	}

	var alreadySignedIn *service.AlreadySignedInError
	switch {
	case errors.Is(err, service.ErrMissingCoordinates):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Latitude dan longitude wajib diisi",
		})
	case errors.Is(err, service.ErrOutOfBounds):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Anda harus berada di area kantor untuk sign-in",
			"code":    "OUT_OF_BOUNDS",
		})
	case errors.As(err, &alreadySignedIn):
		resp := fiber.Map{
			"success": false,
			"message": "Anda sudah sign-in hari ini",
			"code":    "ALREADY_SIGNED_IN",
		}
		if !alreadySignedIn.LastSignIn.IsZero() {
			resp["last_sign_in_time"] = alreadySignedIn.LastSignIn.In(h.loc)
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan sign-in, coba lagi",
		})
	}
}

// SignOut godoc
// @Summary Sign Out Kehadiran
// @Description Mencatat sign-out pada catatan kehadiran hari ini yang masih terbuka.
// @Tags Attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param location body models.AttendancePayload true "Koordinat perangkat"
// @Success 200 {object} models.SignOutSuccessResponse "Berhasil sign-out"
// @Failure 400 {object} models.ErrorResponse "Koordinat kurang atau tidak ada sign-in aktif"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 403 {object} models.OutOfBoundsResponse "Di luar radius kantor"
// @Failure 500 {object} models.ErrorResponse "Kesalahan persistensi"
// @Router /attendance/sign-out [post]
func (h *AttendanceHandler) SignOut(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	payload, errResp := h.parsePayload(c)
	if payload == nil {
		return errResp
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	err := h.attendanceService.SignOut(ctx, claims.UserID, payload, time.Now())
	if err == nil {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"success": true,
			"message": "Berhasil sign-out",
		})
	}

	switch {
	case errors.Is(err, service.ErrMissingCoordinates):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Latitude dan longitude wajib diisi",
		})
	case errors.Is(err, service.ErrOutOfBounds):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"success": false,
			"message": "Anda harus berada di area kantor untuk sign-out",
			"code":    "OUT_OF_BOUNDS",
		})
	case errors.Is(err, service.ErrNoActiveSignIn):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Tidak ada sign-in aktif untuk hari ini",
			"code":    "NO_ACTIVE_SIGN_IN",
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"message": "Gagal menyimpan sign-out, coba lagi",
		})
	}
}

// GetMyAttendanceHistory godoc
// @Summary Riwayat Kehadiran Saya
// @Description Mengambil catatan kehadiran user yang sedang login untuk satu bulan, urut tanggal naik.
// @Tags Attendance
// @Produce json
// @Security BearerAuth
// @Param year query int false "Tahun (default tahun berjalan)"
// @Param month query int false "Bulan 1-12 (default bulan berjalan)"
// @Success 200 {array} models.Attendance
// @Failure 400 {object} models.ErrorResponse "Periode tidak valid"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Tidak terautentikasi"
// @Failure 500 {object} models.ErrorResponse "Gagal mengambil riwayat"
// @Router /attendance/my-history [get]
func (h *AttendanceHandler) GetMyAttendanceHistory(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Tidak terautentikasi atau klaim token tidak valid"})
	}

	now := time.Now().In(h.loc)
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	history, err := h.attendanceService.GetHistory(ctx, claims.UserID, year, month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidPeriod) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Bulan atau tahun tidak valid"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Gagal mengambil riwayat kehadiran"})
	}

	return c.Status(fiber.StatusOK).JSON(history)
}
