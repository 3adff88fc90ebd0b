package mongodb

import (
	"context"
	stderrors "errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/domain/user"
	"github.com/messagenode/messagenode/internal/ports/repository"
)

const usersCollection = "users"

type UserStore struct {
	col *mongo.Collection
}

var _ repository.UserStore = (*UserStore)(nil)

func NewUserStore(db *mongo.Database) *UserStore {
	return &UserStore{col: db.Collection(usersCollection)}
}

func (s *UserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	stored := *u
	if stored.Posts == nil {
		stored.Posts = []primitive.ObjectID{}
	}

	res, err := s.col.InsertOne(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	stored.ID = id
	return &stored, nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	if err := s.col.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, domerr.ErrNoDocument
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (s *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	var u user.User
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, domerr.ErrNoDocument
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (s *UserStore) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$push": bson.M{"posts": postID}},
	)
	if err != nil {
		return fmt.Errorf("add post reference: %w", err)
	}
	if res.MatchedCount == 0 {
		return domerr.ErrNoDocument
	}
	return nil
}

func (s *UserStore) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"posts": postID}},
	)
	if err != nil {
		return fmt.Errorf("remove post reference: %w", err)
	}
	if res.MatchedCount == 0 {
		return domerr.ErrNoDocument
	}
	return nil
}

func (s *UserStore) UpdateStatus(ctx context.Context, userID primitive.ObjectID, status string) error {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return fmt.Errorf("update status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domerr.ErrNoDocument
	}
	return nil
}
