package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Geofence/config"
	"Sistem-Absensi-Geofence/models"
	util "Sistem-Absensi-Geofence/pkg/utils"
	"Sistem-Absensi-Geofence/repository"
)

// AttendanceService menjalankan mesin status kehadiran harian:
//
//	ABSENT -> PARTIAL -> PRESENT (final untuk hari itu)
//
// Transisi satu arah per hari kalender; sign-out mensyaratkan sign-in di hari
// yang sama. Geofence dan zona waktu di-inject saat startup dan tidak berubah.
type AttendanceService struct {
	repo   repository.AttendanceRepository
	office config.OfficeGeofence
	loc    *time.Location
}

func NewAttendanceService(repo repository.AttendanceRepository, office config.OfficeGeofence, loc *time.Location) *AttendanceService {
	return &AttendanceService{
		repo:   repo,
		office: office,
		loc:    loc,
	}
}

func (s *AttendanceService) checkPayload(payload *models.AttendancePayload) (*models.GeoLocation, error) {
	if payload == nil || payload.Latitude == nil || payload.Longitude == nil {
		return nil, ErrMissingCoordinates
	}
	coords := &models.GeoLocation{
		Latitude:  *payload.Latitude,
		Longitude: *payload.Longitude,
		Accuracy:  payload.Accuracy,
	}
	if !util.IsWithinRadius(coords.Latitude, coords.Longitude, s.office.Latitude, s.office.Longitude, s.office.RadiusMeters) {
		return nil, ErrOutOfBounds
	}
	return coords, nil
}

// SignIn membuat catatan kehadiran hari ini untuk user. Idempotensi per hari
// dijamin oleh insert kondisional di store (indeks unik user_id+date), bukan
// oleh pengecekan aplikasi; pembacaan ulang setelah konflik hanya untuk
// melaporkan waktu sign-in yang sudah tercatat.
func (s *AttendanceService) SignIn(ctx context.Context, userID primitive.ObjectID, payload *models.AttendancePayload, now time.Time) error {
	coords, err := s.checkPayload(payload)
	if err != nil {
		return err
	}

	day := util.StartOfDay(now, s.loc)
	record := &models.Attendance{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Date:   day,
		SignIn: &models.AttendanceEvent{
			Time:     now,
			Location: *coords,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	record.RefreshStatus()

	err = s.repo.InsertSignIn(ctx, record)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrDuplicateRecord) {
		return fmt.Errorf("sign-in gagal: %w", err)
	}

	existing, findErr := s.repo.FindByUserAndDate(ctx, userID, day)
	if findErr == nil && existing != nil && existing.SignIn != nil {
		return &AlreadySignedInError{LastSignIn: existing.SignIn.Time}
	}
	return &AlreadySignedInError{}
}

// SignOut menutup catatan hari ini. Pencarian dan mutasinya satu operasi store
// atomik, jadi dua sign-out bersamaan tidak mungkin dua-duanya berhasil.
func (s *AttendanceService) SignOut(ctx context.Context, userID primitive.ObjectID, payload *models.AttendancePayload, now time.Time) error {
	coords, err := s.checkPayload(payload)
	if err != nil {
		return err
	}

	day := util.StartOfDay(now, s.loc)
	event := &models.AttendanceEvent{
		Time:     now,
		Location: *coords,
	}

	updated, err := s.repo.CompleteSignOut(ctx, userID, day, event)
	if err != nil {
		return fmt.Errorf("sign-out gagal: %w", err)
	}
	if !updated {
		return ErrNoActiveSignIn
	}
	return nil
}

// GetHistory mengembalikan catatan user pada satu bulan, urut tanggal naik.
// Slice kosong bukan error.
func (s *AttendanceService) GetHistory(ctx context.Context, userID primitive.ObjectID, year, month int) ([]models.Attendance, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidPeriod
	}

	start, end := util.MonthRange(year, month, s.loc)
	return s.repo.FindByUserInRange(ctx, userID, start, end)
}
