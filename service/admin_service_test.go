package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Geofence/models"
)

// recordingAdminRepo membungkus fake dasar dan merekam argumen rentang yang
// diteruskan service ke store, plus hasil kalengan untuk pipeline agregasi.
type recordingAdminRepo struct {
	*fakeAttendanceRepo

	lastStart time.Time
	lastEnd   time.Time

	groups       []models.UserAttendanceGroup
	statusCounts []models.UserStatusCount
}

func (r *recordingAdminRepo) ListGroupedByUser(_ context.Context, start, end time.Time) ([]models.UserAttendanceGroup, error) {
	r.lastStart = start
	r.lastEnd = end
	return r.groups, nil
}

func (r *recordingAdminRepo) CountStatusByUser(_ context.Context, start, end time.Time) ([]models.UserStatusCount, error) {
	r.lastStart = start
	r.lastEnd = end
	return r.statusCounts, nil
}

const weekdayRule = "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"

func newTestAdminService(repo *recordingAdminRepo) *AdminAttendanceService {
	return NewAdminAttendanceService(repo, nil, wib, weekdayRule)
}

func TestListAttendanceMenormalkanRentang(t *testing.T) {
	repo := &recordingAdminRepo{
		fakeAttendanceRepo: newFakeAttendanceRepo(),
		groups: []models.UserAttendanceGroup{
			{UserID: primitive.NewObjectID(), Name: "Alice", Email: "alice@gmail.com"},
			{UserID: primitive.NewObjectID(), Name: "Bob", Email: "bob@gmail.com"},
		},
	}
	svc := newTestAdminService(repo)

	// Timestamp dengan jam; service harus memotongnya ke tengah malam.
	start := time.Date(2026, 8, 1, 10, 30, 0, 0, wib)
	end := time.Date(2026, 8, 28, 23, 59, 0, 0, wib)

	groups, err := svc.ListAttendance(context.Background(), start, end)
	require.NoError(t, err)

	assert.True(t, repo.lastStart.Equal(time.Date(2026, 8, 1, 0, 0, 0, 0, wib)))
	assert.True(t, repo.lastEnd.Equal(time.Date(2026, 8, 28, 0, 0, 0, 0, wib)))

	require.Len(t, groups, 2)
	assert.Equal(t, "Alice", groups[0].Name)
	assert.Equal(t, "Bob", groups[1].Name)
}

func TestListAttendanceSatuHari(t *testing.T) {
	repo := &recordingAdminRepo{fakeAttendanceRepo: newFakeAttendanceRepo()}
	svc := newTestAdminService(repo)

	sama := time.Date(2026, 8, 28, 12, 0, 0, 0, wib)
	_, err := svc.ListAttendance(context.Background(), sama, sama)
	require.NoError(t, err)
	assert.True(t, repo.lastStart.Equal(repo.lastEnd))
}

func TestListAttendanceRentangTerbalik(t *testing.T) {
	repo := &recordingAdminRepo{fakeAttendanceRepo: newFakeAttendanceRepo()}
	svc := newTestAdminService(repo)

	start := time.Date(2026, 8, 28, 0, 0, 0, 0, wib)
	end := time.Date(2026, 8, 1, 0, 0, 0, 0, wib)

	_, err := svc.ListAttendance(context.Background(), start, end)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestMonthlyReportHariKerja(t *testing.T) {
	userID := primitive.NewObjectID()
	repo := &recordingAdminRepo{
		fakeAttendanceRepo: newFakeAttendanceRepo(),
		statusCounts: []models.UserStatusCount{
			{UserID: userID, Name: "Budi Santoso", Email: "budi@gmail.com", Present: 18, Partial: 2},
		},
	}
	svc := newTestAdminService(repo)
	svc.holidayFn = func(year string) (map[string]bool, error) {
		assert.Equal(t, "2025", year)
		// Tahun Baru jatuh di hari Rabu.
		return map[string]bool{"2025-01-01": true}, nil
	}

	report, err := svc.MonthlyReport(context.Background(), 2025, 1)
	require.NoError(t, err)

	// Januari 2025 punya 23 hari kerja Senin-Jumat, minus 1 libur = 22.
	assert.Equal(t, 22, report.WorkingDays)
	require.Len(t, report.Holidays, 1)
	assert.Equal(t, "2025-01-01", report.Holidays[0].Date)

	require.Len(t, report.Users, 1)
	assert.Equal(t, "Budi Santoso", report.Users[0].Name)
	assert.Equal(t, int64(18), report.Users[0].PresentDays)
	assert.Equal(t, int64(2), report.Users[0].PartialDays)
	assert.InDelta(t, 20.0/22.0, report.Users[0].AttendanceRate, 1e-9)
}

func TestMonthlyReportTetapJalanTanpaDataLibur(t *testing.T) {
	repo := &recordingAdminRepo{fakeAttendanceRepo: newFakeAttendanceRepo()}
	svc := newTestAdminService(repo)
	svc.holidayFn = func(string) (map[string]bool, error) {
		return nil, errors.New("API libur tidak bisa dihubungi")
	}

	report, err := svc.MonthlyReport(context.Background(), 2025, 1)
	require.NoError(t, err)

	// Tanpa data libur, seluruh hari kerja kalender dihitung.
	assert.Equal(t, 23, report.WorkingDays)
	assert.Empty(t, report.Holidays)
}

func TestMonthlyReportPeriodeTidakValid(t *testing.T) {
	repo := &recordingAdminRepo{fakeAttendanceRepo: newFakeAttendanceRepo()}
	svc := newTestAdminService(repo)

	_, err := svc.MonthlyReport(context.Background(), 2025, 13)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.MonthlyReport(context.Background(), 2025, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
