package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/holiday"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type holidayDocument struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Date        time.Time `bson:"date"`
	Type        string    `bson:"type"`
	Description string    `bson:"description,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func (d holidayDocument) toEntity() holiday.Holiday {
	return holiday.Holiday{
		ID:          d.ID,
		Name:        d.Name,
		Date:        dateutil.Day(d.Date.UTC()),
		Type:        holiday.Type(d.Type),
		Description: d.Description,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type holidayRepository struct {
	coll *mongo.Collection
}

func NewHolidayRepository(db *mongo.Database) holiday.HolidayRepository {
	return &holidayRepository{coll: db.Collection(holidaysCollection)}
}

func (r *holidayRepository) findOne(ctx context.Context, filter bson.M) (holiday.Holiday, error) {
	var doc holidayDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		}
		return holiday.Holiday{}, err
	}
	return doc.toEntity(), nil
}

func (r *holidayRepository) findMany(ctx context.Context, filter bson.M) ([]holiday.Holiday, error) {
	docs, err := findAll[holidayDocument](ctx, r.coll, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, err
	}
	holidays := make([]holiday.Holiday, len(docs))
	for i, d := range docs {
		holidays[i] = d.toEntity()
	}
	return holidays, nil
}

func (r *holidayRepository) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	if h.ID == "" {
		h.ID = newID()
	}
	h.Date = dateutil.Day(h.Date)
	ts := now()
	h.CreatedAt, h.UpdatedAt = ts, ts

	doc := holidayDocument{
		ID:          h.ID,
		Name:        h.Name,
		Date:        h.Date,
		Type:        string(h.Type),
		Description: h.Description,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return holiday.Holiday{}, holiday.ErrDuplicateDate
		}
		return holiday.Holiday{}, err
	}
	return h, nil
}

func (r *holidayRepository) GetByID(ctx context.Context, id string) (holiday.Holiday, error) {
	return r.findOne(ctx, byID(id))
}

func (r *holidayRepository) GetByDate(ctx context.Context, day time.Time) (holiday.Holiday, error) {
	return r.findOne(ctx, bson.M{"date": dateutil.Day(day)})
}

func (r *holidayRepository) ListBetween(ctx context.Context, from, to time.Time) ([]holiday.Holiday, error) {
	return r.findMany(ctx, bson.M{"date": bson.M{"$gte": dateutil.Day(from), "$lte": dateutil.Day(to)}})
}

func (r *holidayRepository) List(ctx context.Context) ([]holiday.Holiday, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *holidayRepository) Update(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	update := bson.M{"$set": bson.M{
		"name":        h.Name,
		"date":        dateutil.Day(h.Date),
		"type":        string(h.Type),
		"description": h.Description,
		"updated_at":  now(),
	}}

	var updated holidayDocument
	err := r.coll.FindOneAndUpdate(ctx, byID(h.ID), update, afterUpdate()).Decode(&updated)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return holiday.Holiday{}, holiday.ErrHolidayNotFound
		case mongo.IsDuplicateKeyError(err):
			return holiday.Holiday{}, holiday.ErrDuplicateDate
		}
		return holiday.Holiday{}, err
	}
	return updated.toEntity(), nil
}

func (r *holidayRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return holiday.ErrHolidayNotFound
	}
	return nil
}
