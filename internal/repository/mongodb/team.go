package mongodb

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/hrconsole/hr-console-backend/internal/domain/team"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type teamDocument struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"team_name"`
	NameLower string    `bson:"name_lower"`
	MemberIDs []string  `bson:"member_ids"`
	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func (d teamDocument) toEntity() team.Team {
	return team.Team{
		ID:        d.ID,
		Name:      d.Name,
		MemberIDs: d.MemberIDs,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type teamRepository struct {
	coll *mongo.Collection
}

func NewTeamRepository(db *mongo.Database) team.TeamRepository {
	return &teamRepository{coll: db.Collection(teamsCollection)}
}

func members(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}

func (r *teamRepository) findOne(ctx context.Context, filter bson.M, opts ...*options.FindOneOptions) (team.Team, error) {
	var doc teamDocument
	if err := r.coll.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return team.Team{}, team.ErrTeamNotFound
		}
		return team.Team{}, err
	}
	return doc.toEntity(), nil
}

func (r *teamRepository) Create(ctx context.Context, t team.Team) (team.Team, error) {
	if t.ID == "" {
		t.ID = newID()
	}
	t.MemberIDs = members(t.MemberIDs)
	ts := now()
	t.CreatedAt, t.UpdatedAt = ts, ts

	doc := teamDocument{
		ID:        t.ID,
		Name:      t.Name,
		NameLower: strings.ToLower(t.Name),
		MemberIDs: t.MemberIDs,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, err
	}
	return t, nil
}

func (r *teamRepository) GetByID(ctx context.Context, id string) (team.Team, error) {
	return r.findOne(ctx, byID(id))
}

func (r *teamRepository) GetByMember(ctx context.Context, userID string) (team.Team, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "team_name", Value: 1}})
	return r.findOne(ctx, bson.M{"member_ids": userID}, opts)
}

func (r *teamRepository) List(ctx context.Context) ([]team.Team, error) {
	docs, err := findAll[teamDocument](ctx, r.coll, bson.M{}, options.Find().SetSort(bson.D{{Key: "team_name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	teams := make([]team.Team, len(docs))
	for i, d := range docs {
		teams[i] = d.toEntity()
	}
	return teams, nil
}

func (r *teamRepository) Update(ctx context.Context, t team.Team) (team.Team, error) {
	update := bson.M{"$set": bson.M{
		"team_name":  t.Name,
		"name_lower": strings.ToLower(t.Name),
		"member_ids": members(t.MemberIDs),
		"updated_at": now(),
	}}

	var doc teamDocument
	if err := r.coll.FindOneAndUpdate(ctx, byID(t.ID), update, afterUpdate()).Decode(&doc); err != nil {
		switch {
		case errors.Is(err, mongo.ErrNoDocuments):
			return team.Team{}, team.ErrTeamNotFound
		case mongo.IsDuplicateKeyError(err):
			return team.Team{}, team.ErrTeamNameExists
		}
		return team.Team{}, err
	}
	return doc.toEntity(), nil
}

func (r *teamRepository) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, byID(id))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return team.ErrTeamNotFound
	}
	return nil
}

func (r *teamRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
