package mongodb

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/domain/post"
	"github.com/messagenode/messagenode/internal/ports/repository"
)

const postsCollection = "posts"

type PostStore struct {
	col *mongo.Collection
	now func() time.Time
}

var _ repository.PostStore = (*PostStore)(nil)

func NewPostStore(db *mongo.Database) *PostStore {
	return &PostStore{col: db.Collection(postsCollection), now: time.Now}
}

func (s *PostStore) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	stored := *p
	now := s.now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	res, err := s.col.InsertOne(ctx, &stored)
	if err != nil {
		return nil, fmt.Errorf("insert post: %w", err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	stored.ID = id
	return &stored, nil
}

func (s *PostStore) GetByID(ctx context.Context, id primitive.ObjectID) (*post.Post, error) {
	var p post.Post
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if stderrors.Is(err, mongo.ErrNoDocuments) {
			return nil, domerr.ErrNoDocument
		}
		return nil, fmt.Errorf("find post by id: %w", err)
	}
	return &p, nil
}

func (s *PostStore) Count(ctx context.Context) (int, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return int(n), nil
}

func (s *PostStore) ListPage(ctx context.Context, skip, limit int) ([]*post.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	cursor, err := s.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cursor.Close(ctx)

	var posts []*post.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (s *PostStore) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	updated := *p
	updated.UpdatedAt = s.now().UTC()

	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": updated.ID},
		bson.M{"$set": bson.M{
			"title":     updated.Title,
			"content":   updated.Content,
			"imageUrl":  updated.ImageURL,
			"updatedAt": updated.UpdatedAt,
		}},
	)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	if res.MatchedCount == 0 {
		return nil, domerr.ErrNoDocument
	}
	return &updated, nil
}

func (s *PostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domerr.ErrNoDocument
	}
	return nil
}
