package mongodb

import (
	"context"
	"errors"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/leave"
	"github.com/hrconsole/hr-console-backend/internal/pkg/dateutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type leaveDocument struct {
	ID        string    `bson:"_id"`
	UserID    string    `bson:"user_id"`
	Reason    string    `bson:"reason"`
	FromDate  time.Time `bson:"from_date"`
	ToDate    time.Time `bson:"to_date"`
	Status    string    `bson:"status"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d leaveDocument) toEntity() leave.LeaveRequest {
	return leave.LeaveRequest{
		ID:        d.ID,
		UserID:    d.UserID,
		Reason:    d.Reason,
		FromDate:  dateutil.Day(d.FromDate.UTC()),
		ToDate:    dateutil.Day(d.ToDate.UTC()),
		Status:    leave.Status(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type leaveRequestRepository struct {
	coll *mongo.Collection
}

func NewLeaveRequestRepository(db *mongo.Database) leave.LeaveRequestRepository {
	return &leaveRequestRepository{coll: db.Collection(leavesCollection)}
}

func (r *leaveRequestRepository) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	if request.ID == "" {
		request.ID = newID()
	}
	request.FromDate, request.ToDate = dateutil.Day(request.FromDate), dateutil.Day(request.ToDate)
	ts := now()
	request.CreatedAt, request.UpdatedAt = ts, ts

	doc := leaveDocument{
		ID:        request.ID,
		UserID:    request.UserID,
		Reason:    request.Reason,
		FromDate:  request.FromDate,
		ToDate:    request.ToDate,
		Status:    string(request.Status),
		CreatedAt: request.CreatedAt,
		UpdatedAt: request.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return leave.LeaveRequest{}, err
	}
	return request, nil
}

func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	var doc leaveDocument
	if err := r.coll.FindOne(ctx, byID(id)).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return doc.toEntity(), nil
}

func (r *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return r.findMany(ctx, bson.M{"user_id": userID})
}

func (r *leaveRequestRepository) List(ctx context.Context) ([]leave.LeaveRequest, error) {
	return r.findMany(ctx, bson.M{})
}

func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, id string, status leave.Status) (leave.LeaveRequest, error) {
	update := bson.M{"$set": bson.M{"status": string(status), "updated_at": now()}}

	var doc leaveDocument
	if err := r.coll.FindOneAndUpdate(ctx, byID(id), update, afterUpdate()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveRequest{}, err
	}
	return doc.toEntity(), nil
}

func (r *leaveRequestRepository) findMany(ctx context.Context, filter bson.M) ([]leave.LeaveRequest, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	docs, err := findAll[leaveDocument](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, err
	}
	leaves := make([]leave.LeaveRequest, len(docs))
	for i, d := range docs {
		leaves[i] = d.toEntity()
	}
	return leaves, nil
}
