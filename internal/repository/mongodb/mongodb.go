// Package mongodb implements the repositories on MongoDB. Documents use a
// string _id holding a UUIDv7 so ids look the same across stores.
package mongodb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection       = "users"
	holidaysCollection    = "holidays"
	attendancesCollection = "attendances"
	leavesCollection      = "leave_requests"
	eventsCollection      = "events"
	teamsCollection       = "teams"
)

// EnsureIndexes creates the unique indexes the repositories rely on for
// conflict detection. Creating an existing index is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email_lower", Value: 1}}, Options: options.Index().SetUnique(true).SetName("users_email_key")},
			{Keys: bson.D{{Key: "role", Value: 1}}},
		},
		holidaysCollection: {
			{Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true).SetName("holidays_date_key")},
		},
		attendancesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}}, Options: options.Index().SetUnique(true).SetName("attendances_user_id_date_key")},
		},
		leavesCollection: {
			{Keys: bson.D{{Key: "user_id", Value: 1}}},
		},
		eventsCollection: {
			{Keys: bson.D{{Key: "date", Value: 1}}},
		},
		teamsCollection: {
			{Keys: bson.D{{Key: "name_lower", Value: 1}}, Options: options.Index().SetUnique(true).SetName("teams_team_name_key")},
			{Keys: bson.D{{Key: "member_ids", Value: 1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("create indexes on %s: %w", collection, err)
		}
	}
	return nil
}

func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// now is truncated to milliseconds, the precision BSON dates keep.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func byID(id string) bson.M {
	return bson.M{"_id": id}
}

func afterUpdate() *options.FindOneAndUpdateOptions {
	return options.FindOneAndUpdate().SetReturnDocument(options.After)
}

// findAll decodes every document matched by filter into docs.
func findAll[T any](ctx context.Context, coll *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}
