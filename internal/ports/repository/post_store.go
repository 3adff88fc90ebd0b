package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/messagenode/messagenode/internal/domain/post"
)

// PostStore is the persistence port for posts. Timestamps are owned by
// the store: Create stamps CreatedAt and UpdatedAt, Update refreshes
// UpdatedAt.
type PostStore interface {
	Create(ctx context.Context, p *post.Post) (*post.Post, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*post.Post, error)
	// Count returns the total number of posts, independent of any page
	// fetch.
	Count(ctx context.Context) (int, error)
	// ListPage returns posts sorted by creation time descending,
	// skipping skip documents and returning at most limit.
	ListPage(ctx context.Context, skip, limit int) ([]*post.Post, error)
	// Update overwrites title, content and image reference.
	Update(ctx context.Context, p *post.Post) (*post.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}
