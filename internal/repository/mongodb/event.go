package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/event"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type eventDocument struct {
	ID          string    `bson:"_id"`
	Title       string    `bson:"title"`
	Description string    `bson:"description,omitempty"`
	Date        time.Time `bson:"date"`
	Time        string    `bson:"time,omitempty"`
	Location    string    `bson:"location,omitempty"`
	Type        string    `bson:"type"`
	CreatedBy   string    `bson:"created_by,omitempty"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

func toEventDocument(e event.Event) eventDocument {
	return eventDocument{
		ID:          e.ID,
		Title:       e.Title,
		Description: e.Description,
		Date:        dateutil.Day(e.Date),
		Time:        e.Time,
		Location:    e.Location,
		Type:        string(e.Type),
		CreatedBy:   e.CreatedBy,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func (d eventDocument) toEntity() event.Event {
	return event.Event{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		Date:        dateutil.Day(d.Date.UTC()),
		Time:        d.Time,
		Location:    d.Location,
		Type:        event.Type(d.Type),
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type eventRepository struct {
	coll *mongo.Collection
}

func NewEventRepository(db *mongo.Database) event.EventRepository {
	return &eventRepository{coll: db.Collection(eventsCollection)}
}

func (r *eventRepository) Create(ctx context.Context, e event.Event) (event.Event, error) {
	if e.ID == "" {
		e.ID = newID()
	}
	ts := now()
	e.CreatedAt, e.UpdatedAt = ts, ts

	doc := toEventDocument(e)
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return event.Event{}, err
	}
	return doc.toEntity(), nil
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (event.Event, error) {
	var doc eventDocument
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, err
	}
	return doc.toEntity(), nil
}

func (r *eventRepository) List(ctx context.Context) ([]event.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time", Value: 1}})
	docs, err := findAll[eventDocument](ctx, r.coll, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	events := make([]event.Event, len(docs))
	for i, d := range docs {
		events[i] = d.toEntity()
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, e event.Event) (event.Event, error) {
	update := bson.M{"$set": bson.M{
		"title":       e.Title,
		"description": e.Description,
		"date":        dateutil.Day(e.Date),
		"time":        e.Time,
		"location":    e.Location,
		"type":        string(e.Type),
		"updated_at":  now(),
	}}

	var doc eventDocument
	if err := r.coll.FindOneAndUpdate(ctx, byID(e.ID), update, afterUpdate()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return event.Event{}, event.ErrEventNotFound
		}
		return event.Event{}, err
	}
	return doc.toEntity(), nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return event.ErrEventNotFound
	}
	return nil
}
