package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"Sistem-Absensi-Geofence/config"
	"Sistem-Absensi-Geofence/models"
	"Sistem-Absensi-Geofence/repository"
)

// fakeAttendanceRepo meniru perilaku store yang relevan untuk service:
// keunikan (user_id, date) ditegakkan saat insert, dan sign-out adalah
// satu mutasi terkondisi. Aman dipakai dari banyak goroutine.
type fakeAttendanceRepo struct {
	mu      sync.Mutex
	records map[string]*models.Attendance
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[string]*models.Attendance)}
}

func recordKey(userID primitive.ObjectID, date time.Time) string {
	return userID.Hex() + "|" + date.UTC().Format(time.RFC3339)
}

func (f *fakeAttendanceRepo) InsertSignIn(_ context.Context, attendance *models.Attendance) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := recordKey(attendance.UserID, attendance.Date)
	if _, exists := f.records[key]; exists {
		return repository.ErrDuplicateRecord
	}
	salinan := *attendance
	f.records[key] = &salinan
	return nil
}

func (f *fakeAttendanceRepo) FindByUserAndDate(_ context.Context, userID primitive.ObjectID, date time.Time) (*models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, exists := f.records[recordKey(userID, date)]
	if !exists {
		return nil, nil
	}
	salinan := *record
	return &salinan, nil
}

func (f *fakeAttendanceRepo) CompleteSignOut(_ context.Context, userID primitive.ObjectID, date time.Time, event *models.AttendanceEvent) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	record, exists := f.records[recordKey(userID, date)]
	if !exists || record.SignIn == nil || record.SignOut != nil {
		return false, nil
	}
	record.SignOut = event
	record.Status = models.StatusPresent
	record.UpdatedAt = time.Now()
	return true, nil
}

func (f *fakeAttendanceRepo) FindByUserInRange(_ context.Context, userID primitive.ObjectID, start, end time.Time) ([]models.Attendance, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	results := []models.Attendance{}
	for _, record := range f.records {
		if record.UserID != userID {
			continue
		}
		if record.Date.Before(start) || !record.Date.Before(end) {
			continue
		}
		results = append(results, *record)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Date.Before(results[j].Date)
	})
	return results, nil
}

func (f *fakeAttendanceRepo) ListGroupedByUser(_ context.Context, _, _ time.Time) ([]models.UserAttendanceGroup, error) {
	return []models.UserAttendanceGroup{}, nil
}

func (f *fakeAttendanceRepo) ListByDateWithUserDetails(_ context.Context, _ time.Time) ([]models.AttendanceWithUser, error) {
	return []models.AttendanceWithUser{}, nil
}

func (f *fakeAttendanceRepo) CountStatusByUser(_ context.Context, _, _ time.Time) ([]models.UserStatusCount, error) {
	return []models.UserStatusCount{}, nil
}

func (f *fakeAttendanceRepo) CountByStatusOnDate(_ context.Context, date time.Time, status string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var total int64
	for _, record := range f.records {
		if record.Date.Equal(date) && record.Status == status {
			total++
		}
	}
	return total, nil
}

var wib = time.FixedZone("WIB", 7*3600)

var testOffice = config.OfficeGeofence{
	Latitude:     -6.175392,
	Longitude:    106.827153,
	RadiusMeters: 100,
}

func newTestAttendanceService() (*AttendanceService, *fakeAttendanceRepo) {
	repo := newFakeAttendanceRepo()
	return NewAttendanceService(repo, testOffice, wib), repo
}

func insideOfficePayload() *models.AttendancePayload {
	lat := testOffice.Latitude
	lng := testOffice.Longitude
	return &models.AttendancePayload{Latitude: &lat, Longitude: &lng, Accuracy: 10}
}

func outsideOfficePayload() *models.AttendancePayload {
	// Sekitar 5 km dari kantor.
	lat := testOffice.Latitude + 0.045
	lng := testOffice.Longitude
	return &models.AttendancePayload{Latitude: &lat, Longitude: &lng, Accuracy: 10}
}

func TestSignInBerhasil(t *testing.T) {
	svc, repo := newTestAttendanceService()
	userID := primitive.NewObjectID()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, wib)

	err := svc.SignIn(context.Background(), userID, insideOfficePayload(), now)
	require.NoError(t, err)

	record, err := repo.FindByUserAndDate(context.Background(), userID, time.Date(2026, 8, 28, 0, 0, 0, 0, wib))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.StatusPartial, record.Status)
	require.NotNil(t, record.SignIn)
	assert.True(t, record.SignIn.Time.Equal(now))
	assert.Nil(t, record.SignOut)
}

func TestSignInTanpaKoordinat(t *testing.T) {
	svc, _ := newTestAttendanceService()
	now := time.Now()

	err := svc.SignIn(context.Background(), primitive.NewObjectID(), &models.AttendancePayload{}, now)
	assert.ErrorIs(t, err, ErrMissingCoordinates)

	lat := testOffice.Latitude
	err = svc.SignIn(context.Background(), primitive.NewObjectID(), &models.AttendancePayload{Latitude: &lat}, now)
	assert.ErrorIs(t, err, ErrMissingCoordinates)
}

func TestSignInDiLuarRadius(t *testing.T) {
	svc, repo := newTestAttendanceService()
	userID := primitive.NewObjectID()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, wib)

	err := svc.SignIn(context.Background(), userID, outsideOfficePayload(), now)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Percobaan yang ditolak tidak boleh meninggalkan catatan apa pun.
	record, err := repo.FindByUserAndDate(context.Background(), userID, time.Date(2026, 8, 28, 0, 0, 0, 0, wib))
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestSignInDuaKaliDiHariYangSama(t *testing.T) {
	svc, _ := newTestAttendanceService()
	userID := primitive.NewObjectID()
	pertama := time.Date(2026, 8, 28, 8, 30, 0, 0, wib)
	kedua := time.Date(2026, 8, 28, 10, 15, 0, 0, wib)

	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), pertama))

	err := svc.SignIn(context.Background(), userID, insideOfficePayload(), kedua)
	var conflict *AlreadySignedInError
	require.ErrorAs(t, err, &conflict)
	assert.True(t, conflict.LastSignIn.Equal(pertama), "konflik harus melaporkan waktu sign-in pertama")
}

func TestSignInHariBerbedaDiizinkan(t *testing.T) {
	svc, _ := newTestAttendanceService()
	userID := primitive.NewObjectID()

	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), time.Date(2026, 8, 27, 9, 0, 0, 0, wib)))
	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), time.Date(2026, 8, 28, 9, 0, 0, 0, wib)))
}

func TestSignOutTanpaSignIn(t *testing.T) {
	svc, _ := newTestAttendanceService()

	err := svc.SignOut(context.Background(), primitive.NewObjectID(), insideOfficePayload(), time.Date(2026, 8, 28, 17, 0, 0, 0, wib))
	assert.ErrorIs(t, err, ErrNoActiveSignIn)
}

func TestSignOutDuaKali(t *testing.T) {
	svc, _ := newTestAttendanceService()
	userID := primitive.NewObjectID()

	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), time.Date(2026, 8, 28, 9, 0, 0, 0, wib)))
	require.NoError(t, svc.SignOut(context.Background(), userID, insideOfficePayload(), time.Date(2026, 8, 28, 17, 0, 0, 0, wib)))

	err := svc.SignOut(context.Background(), userID, insideOfficePayload(), time.Date(2026, 8, 28, 17, 5, 0, 0, wib))
	assert.ErrorIs(t, err, ErrNoActiveSignIn)
}

func TestSignOutDiLuarRadius(t *testing.T) {
	svc, repo := newTestAttendanceService()
	userID := primitive.NewObjectID()

	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), time.Date(2026, 8, 28, 9, 0, 0, 0, wib)))

	err := svc.SignOut(context.Background(), userID, outsideOfficePayload(), time.Date(2026, 8, 28, 17, 0, 0, 0, wib))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Catatan tetap partial, sign-out berikutnya dari dalam kantor masih bisa.
	record, err := repo.FindByUserAndDate(context.Background(), userID, time.Date(2026, 8, 28, 0, 0, 0, 0, wib))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.StatusPartial, record.Status)
	assert.Nil(t, record.SignOut)
}

func TestAlurSatuHariPenuh(t *testing.T) {
	svc, repo := newTestAttendanceService()
	userID := primitive.NewObjectID()
	masuk := time.Date(2026, 8, 28, 9, 0, 0, 0, wib)
	pulang := time.Date(2026, 8, 28, 17, 0, 0, 0, wib)

	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), masuk))
	require.NoError(t, svc.SignOut(context.Background(), userID, insideOfficePayload(), pulang))

	record, err := repo.FindByUserAndDate(context.Background(), userID, time.Date(2026, 8, 28, 0, 0, 0, 0, wib))
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, models.StatusPresent, record.Status)
	require.NotNil(t, record.SignIn)
	require.NotNil(t, record.SignOut)
	assert.True(t, record.SignIn.Time.Equal(masuk))
	assert.True(t, record.SignOut.Time.Equal(pulang))
}

func TestSignInSerentakHanyaSatuBerhasil(t *testing.T) {
	svc, _ := newTestAttendanceService()
	userID := primitive.NewObjectID()
	now := time.Date(2026, 8, 28, 9, 0, 0, 0, wib)

	const goroutines = 20
	errs := make([]error, goroutines)
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			errs[idx] = svc.SignIn(context.Background(), userID, insideOfficePayload(), now)
		}(i)
	}
	wg.Wait()

	berhasil := 0
	konflik := 0
	for _, err := range errs {
		switch {
		case err == nil:
			berhasil++
		default:
			var conflict *AlreadySignedInError
			if errors.As(err, &conflict) {
				konflik++
			}
		}
	}

	assert.Equal(t, 1, berhasil, "tepat satu sign-in yang boleh berhasil")
	assert.Equal(t, goroutines-1, konflik)
}

func TestGetHistoryUrutDanTerbatasBulan(t *testing.T) {
	svc, _ := newTestAttendanceService()
	userID := primitive.NewObjectID()

	// Dua catatan di Agustus (dimasukkan tidak urut), satu di Juli.
	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), time.Date(2026, 8, 20, 9, 0, 0, 0, wib)))
	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), time.Date(2026, 8, 3, 9, 0, 0, 0, wib)))
	require.NoError(t, svc.SignIn(context.Background(), userID, insideOfficePayload(), time.Date(2026, 7, 15, 9, 0, 0, 0, wib)))

	history, err := svc.GetHistory(context.Background(), userID, 2026, 8)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, 3, history[0].Date.Day())
	assert.Equal(t, 20, history[1].Date.Day())
}

func TestGetHistoryBulanKosong(t *testing.T) {
	svc, _ := newTestAttendanceService()

	history, err := svc.GetHistory(context.Background(), primitive.NewObjectID(), 2026, 2)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestGetHistoryPeriodeTidakValid(t *testing.T) {
	svc, _ := newTestAttendanceService()
	userID := primitive.NewObjectID()

	_, err := svc.GetHistory(context.Background(), userID, 2026, 0)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.GetHistory(context.Background(), userID, 2026, 13)
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = svc.GetHistory(context.Background(), userID, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}
