package mongodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/user"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type userDocument struct {
	ID           string                `bson:"_id"`
	Name         string                `bson:"name"`
	Email        string                `bson:"email"`
	EmailLower   string                `bson:"email_lower"`
	PasswordHash string                `bson:"password_hash"`
	Role         string                `bson:"role"`
	Phone        string                `bson:"phone"`
	Position     string                `bson:"position"`
	Profile      *user.EmployeeProfile `bson:"profile,omitempty"`
	CreatedAt    time.Time             `bson:"created_at"`
	UpdatedAt    time.Time             `bson:"updated_at"`
}

func toUserDocument(u user.User) userDocument {
	return userDocument{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		EmailLower:   strings.ToLower(u.Email),
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		Phone:        u.Phone,
		Position:     u.Position,
		Profile:      u.Profile,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (d userDocument) toEntity() user.User {
	return user.User{
		ID:           d.ID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         user.Role(d.Role),
		Phone:        d.Phone,
		Position:     d.Position,
		Profile:      d.Profile,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}
}

type userRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) user.UserRepository {
	return &userRepository{coll: db.Collection(usersCollection)}
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (user.User, error) {
	var doc userDocument
	if err := r.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return user.User{}, user.ErrUserNotFound
		}
		return user.User{}, err
	}
	return doc.toEntity(), nil
}

func (r *userRepository) findMany(ctx context.Context, filter bson.M) ([]user.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})
	docs, err := findAll[userDocument](ctx, r.coll, filter, opts)
	if err != nil {
		return nil, err
	}
	users := make([]user.User, len(docs))
	for i, d := range docs {
		users[i] = d.toEntity()
	}
	return users, nil
}

func (r *userRepository) Create(ctx context.Context, newUser user.User) (user.User, error) {
	if newUser.ID == "" {
		newUser.ID = newID()
	}
	ts := now()
	newUser.CreatedAt, newUser.UpdatedAt = ts, ts

	if _, err := r.coll.InsertOne(ctx, toUserDocument(newUser)); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, err
	}
	return newUser, nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (user.User, error) {
	return r.findOne(ctx, byID(id))
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findOne(ctx, bson.M{"email_lower": strings.ToLower(email)})
}

func (r *userRepository) ListByIDs(ctx context.Context, ids []string) ([]user.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.findMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *userRepository) ListByRoles(ctx context.Context, roles ...user.Role) ([]user.User, error) {
	names := make([]string, len(roles))
	for i, role := range roles {
		names[i] = string(role)
	}
	return r.findMany(ctx, bson.M{"role": bson.M{"$in": names}})
}

func (r *userRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	doc := toUserDocument(u)
	update := bson.M{"$set": bson.M{
		"name":          doc.Name,
		"email":         doc.Email,
		"email_lower":   doc.EmailLower,
		"password_hash": doc.PasswordHash,
		"role":          doc.Role,
		"phone":         doc.Phone,
		"position":      doc.Position,
		"profile":       doc.Profile,
		"updated_at":    now(),
	}}

	var updated userDocument
	err := r.coll.FindOneAndUpdate(ctx, byID(u.ID), update, afterUpdate()).Decode(&updated)
	if err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return user.User{}, user.ErrUserNotFound
		case mongo.IsDuplicateKeyError(err):
			return user.User{}, user.ErrUserEmailExists
		}
		return user.User{}, err
	}
	return updated.toEntity(), nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return user.ErrUserNotFound
	}
	return nil
}

func (r *userRepository) DeleteByRole(ctx context.Context, role user.Role) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{"role": string(role)})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
