package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/teambition/rrule-go"

	"Sistem-Absensi-Geofence/models"
	util "Sistem-Absensi-Geofence/pkg/utils"
	"Sistem-Absensi-Geofence/repository"
)

// AdminAttendanceService membangun tampilan kehadiran lintas user untuk admin.
// Hanya membaca, tidak pernah memutasi catatan kehadiran.
type AdminAttendanceService struct {
	attendanceRepo repository.AttendanceRepository
	userRepo       *repository.UserRepository
	loc            *time.Location
	workRule       string
	holidayFn      func(year string) (map[string]bool, error)
}

func NewAdminAttendanceService(attendanceRepo repository.AttendanceRepository, userRepo *repository.UserRepository, loc *time.Location, workRule string) *AdminAttendanceService {
	return &AdminAttendanceService{
		attendanceRepo: attendanceRepo,
		userRepo:       userRepo,
		loc:            loc,
		workRule:       workRule,
		holidayFn:      util.GetHolidayMap,
	}
}

// ListAttendance mengembalikan catatan seluruh user pada rentang tanggal
// inklusif, dikelompokkan per user dan diurutkan nama ascending (perbandingan
// byte, case-sensitive). User tanpa catatan pada rentang itu tidak muncul;
// ini perilaku laporan "user aktif saja" yang dipertahankan dari sistem lama.
func (s *AdminAttendanceService) ListAttendance(ctx context.Context, start, end time.Time) ([]models.UserAttendanceGroup, error) {
	startDay := util.StartOfDay(start, s.loc)
	endDay := util.StartOfDay(end, s.loc)
	if endDay.Before(startDay) {
		return nil, ErrInvalidPeriod
	}

	return s.attendanceRepo.ListGroupedByUser(ctx, startDay, endDay)
}

// TodayAttendance mengembalikan catatan hari ini beserta detail user, urut
// waktu sign-in.
func (s *AdminAttendanceService) TodayAttendance(ctx context.Context, now time.Time) ([]models.AttendanceWithUser, error) {
	return s.attendanceRepo.ListByDateWithUserDetails(ctx, util.StartOfDay(now, s.loc))
}

// DashboardStats menghitung ringkasan kehadiran hari ini.
func (s *AdminAttendanceService) DashboardStats(ctx context.Context, now time.Time) (*models.DashboardStats, error) {
	today := util.StartOfDay(now, s.loc)

	totalKaryawan, err := s.userRepo.CountUsersByRole(ctx, "karyawan")
	if err != nil {
		return nil, err
	}

	present, err := s.attendanceRepo.CountByStatusOnDate(ctx, today, models.StatusPresent)
	if err != nil {
		return nil, err
	}

	partial, err := s.attendanceRepo.CountByStatusOnDate(ctx, today, models.StatusPartial)
	if err != nil {
		return nil, err
	}

	belumHadir := totalKaryawan - present - partial
	if belumHadir < 0 {
		belumHadir = 0
	}

	return &models.DashboardStats{
		TotalKaryawan: totalKaryawan,
		HadirPenuh:    present,
		MasihBekerja:  partial,
		BelumHadir:    belumHadir,
	}, nil
}

// MonthlyReport merekap kehadiran satu bulan: hari kerja efektif dihitung dari
// pola kerja kantor (RRULE) dikurangi hari libur nasional, lalu digabung
// dengan jumlah hadir penuh/parsial tiap karyawan.
func (s *AdminAttendanceService) MonthlyReport(ctx context.Context, year, month int) (*models.MonthlyReport, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, ErrInvalidPeriod
	}

	start, next := util.MonthRange(year, month, s.loc)
	lastDay := next.AddDate(0, 0, -1)

	workingDays, holidays, err := s.workingDaysIn(start, lastDay)
	if err != nil {
		return nil, fmt.Errorf("gagal menghitung hari kerja: %w", err)
	}

	counts, err := s.attendanceRepo.CountStatusByUser(ctx, start, lastDay)
	if err != nil {
		return nil, err
	}

	users := make([]models.MonthlyUserSummary, 0, len(counts))
	for _, c := range counts {
		summary := models.MonthlyUserSummary{
			UserID:      c.UserID,
			Name:        c.Name,
			Email:       c.Email,
			PresentDays: c.Present,
			PartialDays: c.Partial,
		}
		if workingDays > 0 {
			summary.AttendanceRate = float64(c.Present+c.Partial) / float64(workingDays)
		}
		users = append(users, summary)
	}

	return &models.MonthlyReport{
		Year:        year,
		Month:       month,
		WorkingDays: workingDays,
		Holidays:    holidays,
		Users:       users,
	}, nil
}

func (s *AdminAttendanceService) workingDaysIn(start, end time.Time) (int, []models.Holiday, error) {
	rOption, err := rrule.StrToROption(s.workRule)
	if err != nil {
		return 0, nil, fmt.Errorf("pola hari kerja tidak valid: %w", err)
	}
	rOption.Dtstart = start

	rr, err := rrule.NewRRule(*rOption)
	if err != nil {
		return 0, nil, fmt.Errorf("pola hari kerja tidak valid: %w", err)
	}

	ruleSet := rrule.Set{}
	ruleSet.RRule(rr)

	holidayMap, err := s.holidayFn(strconv.Itoa(start.Year()))
	if err != nil {
		// Laporan tetap berguna tanpa data libur; jangan gagalkan request.
		holidayMap = map[string]bool{}
	}

	workingDays := 0
	var holidays []models.Holiday
	for _, instance := range ruleSet.Between(start, end, true) {
		dateStr := instance.Format("2006-01-02")
		if holidayMap[dateStr] {
			holidays = append(holidays, models.Holiday{Date: dateStr})
			continue
		}
		workingDays++
	}

	return workingDays, holidays, nil
}
