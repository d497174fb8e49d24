package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/attendance"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type attendanceDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Date      time.Time `bson:"date"`
	CheckIn   time.Time `bson:"checkin_time"`
	CheckOut  time.Time `bson:"checkout_time"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d attendanceDocument) toEntity() attendance.Record {
	return attendance.Record{
		ID:        d.ID,
		UserID:    d.UserID,
		Date:      dateutil.Day(d.Date.UTC()),
		CheckIn:   d.CheckIn,
		CheckOut:  d.CheckOut,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type attendanceRepository struct {
	coll *mongo.Collection
}

func NewAttendanceRepository(db *mongo.Database) attendance.AttendanceRepository {
	return &attendanceRepository{coll: db.Collection(attendancesCollection)}
}

func (r *attendanceRepository) Create(ctx context.Context, rec attendance.Record) (attendance.Record, error) {
	if rec.ID == "" {
		rec.ID = newID()
	}
	rec.Date = dateutil.Day(rec.Date)
	ts := now()
	rec.CreatedAt, rec.UpdatedAt = ts, ts

	doc := attendanceDocument{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Date:      rec.Date,
		CheckIn:   rec.CheckIn,
		CheckOut:  rec.CheckOut,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return attendance.Record{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Record{}, err
	}
	return rec, nil
}

func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, day time.Time) (attendance.Record, error) {
	var doc attendanceDocument
	err := r.coll.FindOne(ctx, bson.M{"user_id": userID, "date": dateutil.Day(day)}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, err
	}
	return doc.toEntity(), nil
}

func (r *attendanceRepository) UpdateCheckOut(ctx context.Context, id string, checkOut time.Time) (attendance.Record, error) {
	update := bson.M{"$set": bson.M{"checkout_time": checkOut, "updated_at": now()}}

	var doc attendanceDocument
	if err := r.coll.FindOneAndUpdate(ctx, byID(id), update, afterUpdate()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return attendance.Record{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Record{}, err
	}
	return doc.toEntity(), nil
}

func (r *attendanceRepository) ListByUser(ctx context.Context, userID string) ([]attendance.Record, error) {
	return r.findMany(ctx, bson.M{"user_id": userID})
}

func (r *attendanceRepository) List(ctx context.Context) ([]attendance.Record, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *attendanceRepository) findMany(ctx context.Context, filter bson.M) ([]attendance.Record, error) {
	opts := options.Find().SetSort(bson.D{{Key: "checkin_time", Value: 1}, {Key: "_id", Value: 1}})
	docs, err := findAll[attendanceDocument](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, err
	}
	records := make([]attendance.Record, len(docs))
	for i, d := range docs {
		records[i] = d.toEntity()
	}
	return records, nil
}
