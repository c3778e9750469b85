package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Sistem-Absensi-Geofence/config"
	"Sistem-Absensi-Geofence/models"
)

// ErrDuplicateRecord berarti sudah ada catatan kehadiran untuk pasangan
// (user, hari) tersebut; pemicunya indeks unik uniq_user_per_day.
var ErrDuplicateRecord = errors.New("catatan kehadiran untuk hari ini sudah ada")

type AttendanceRepository interface {
	// InsertSignIn menyimpan catatan baru berisi sign-in. Insert ini sekaligus
	// pemeriksaan idempotensi: tabrakan dengan indeks unik (user_id, date)
	// dikembalikan sebagai ErrDuplicateRecord, bukan ditangani dengan
	// find-lalu-insert.
	InsertSignIn(ctx context.Context, attendance *models.Attendance) error

	FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*models.Attendance, error)

	// CompleteSignOut mengisi sign_out pada catatan hari itu dalam satu
	// UpdateOne atomik. Filternya mensyaratkan sign_in sudah ada dan sign_out
	// belum ada; false berarti tidak ada catatan terbuka yang cocok.
	CompleteSignOut(ctx context.Context, userID primitive.ObjectID, date time.Time, event *models.AttendanceEvent) (bool, error)

	FindByUserInRange(ctx context.Context, userID primitive.ObjectID, start, end time.Time) ([]models.Attendance, error)

	// ListGroupedByUser mengembalikan seluruh catatan pada rentang [start, end]
	// (inklusif) dikelompokkan per user dan diurutkan nama ascending. User
	// tanpa catatan pada rentang itu tidak muncul.
	ListGroupedByUser(ctx context.Context, start, end time.Time) ([]models.UserAttendanceGroup, error)

	ListByDateWithUserDetails(ctx context.Context, date time.Time) ([]models.AttendanceWithUser, error)
	CountStatusByUser(ctx context.Context, start, end time.Time) ([]models.UserStatusCount, error)
	CountByStatusOnDate(ctx context.Context, date time.Time, status string) (int64, error)
}

type attendanceRepository struct {
	attendanceCollection *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		attendanceCollection: config.GetCollection(config.AttendanceCollection),
	}
}

func (r *attendanceRepository) InsertSignIn(ctx context.Context, attendance *models.Attendance) error {
	_, err := r.attendanceCollection.InsertOne(ctx, attendance)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateRecord
		}
		return fmt.Errorf("gagal menyimpan catatan sign-in: %w", err)
	}
	return nil
}

func (r *attendanceRepository) FindByUserAndDate(ctx context.Context, userID primitive.ObjectID, date time.Time) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{"user_id": userID, "date": date}

	err := r.attendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("gagal mencari absensi berdasarkan user dan tanggal: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) CompleteSignOut(ctx context.Context, userID primitive.ObjectID, date time.Time, event *models.AttendanceEvent) (bool, error) {
	filter := bson.M{
		"user_id":  userID,
		"date":     date,
		"sign_in":  bson.M{"$exists": true},
		"sign_out": bson.M{"$exists": false},
	}
	update := bson.M{
		"$set": bson.M{
			"sign_out":   event,
			"status":     models.StatusPresent,
			"updated_at": time.Now(),
		},
	}

	res, err := r.attendanceCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("gagal update sign-out absensi: %w", err)
	}
	return res.ModifiedCount > 0, nil
}

func (r *attendanceRepository) FindByUserInRange(ctx context.Context, userID primitive.ObjectID, start, end time.Time) ([]models.Attendance, error) {
	filter := bson.M{
		"user_id": userID,
		"date":    bson.M{"$gte": start, "$lt": end},
	}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})

	cursor, err := r.attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("gagal mencari riwayat absensi user: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode riwayat absensi: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) ListGroupedByUser(ctx context.Context, start, end time.Time) ([]models.UserAttendanceGroup, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "date", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lte", Value: end}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "attendance", Value: bson.D{{Key: "$push", Value: "$$ROOT"}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "user_id", Value: "$_id"},
			{Key: "name", Value: "$userDetails.name"},
			{Key: "email", Value: "$userDetails.email"},
			{Key: "attendance", Value: 1},
		}}},
		// Urutan nama memakai perbandingan byte bawaan BSON (case-sensitive).
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation untuk laporan kehadiran admin: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.UserAttendanceGroup
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode hasil aggregation laporan kehadiran: %w", err)
	}

	if len(results) == 0 {
		return []models.UserAttendanceGroup{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) ListByDateWithUserDetails(ctx context.Context, date time.Time) ([]models.AttendanceWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "date", Value: date}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "user_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "sign_in", Value: 1},
			{Key: "sign_out", Value: 1},
			{Key: "status", Value: 1},
			{Key: "user_name", Value: "$userDetails.name"},
			{Key: "user_email", Value: "$userDetails.email"},
			{Key: "user_photo", Value: "$userDetails.photo"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "sign_in.time", Value: 1}}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation untuk daftar kehadiran hari ini: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode hasil aggregation kehadiran: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithUser{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) CountStatusByUser(ctx context.Context, start, end time.Time) ([]models.UserStatusCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "date", Value: bson.D{{Key: "$gte", Value: start}, {Key: "$lte", Value: end}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$user_id"},
			{Key: "present", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{bson.D{{Key: "$eq", Value: bson.A{"$status", models.StatusPresent}}}, 1, 0}},
			}}}},
			{Key: "partial", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{bson.D{{Key: "$eq", Value: bson.A{"$status", models.StatusPartial}}}, 1, 0}},
			}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "userDetails"},
		}}},
		{{Key: "$unwind", Value: "$userDetails"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "user_id", Value: "$_id"},
			{Key: "name", Value: "$userDetails.name"},
			{Key: "email", Value: "$userDetails.email"},
			{Key: "present", Value: 1},
			{Key: "partial", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "name", Value: 1}}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("gagal aggregation rekap status kehadiran: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.UserStatusCount
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("gagal decode rekap status kehadiran: %w", err)
	}

	if len(results) == 0 {
		return []models.UserStatusCount{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) CountByStatusOnDate(ctx context.Context, date time.Time, status string) (int64, error) {
	total, err := r.attendanceCollection.CountDocuments(ctx, bson.M{"date": date, "status": status})
	if err != nil {
		return 0, fmt.Errorf("gagal menghitung kehadiran status %s: %w", status, err)
	}
	return total, nil
}
