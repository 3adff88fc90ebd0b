package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/messagenode/messagenode/internal/domain/user"
)

// UserStore is the persistence port for accounts.
//
// Rules: context first, missing documents surface as
// errors.ErrNoDocument (driver errors never leak), and there are no
// optional parameters, only explicit methods.
type UserStore interface {
	// Create persists a new account and returns it with the
	// store-assigned identifier filled in.
	Create(ctx context.Context, u *user.User) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*user.User, error)
	// AddPost appends a post reference to the account's collection.
	AddPost(ctx context.Context, userID, postID primitive.ObjectID) error
	// RemovePost drops a post reference from the account's collection.
	RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error
	UpdateStatus(ctx context.Context, userID primitive.ObjectID, status string) error
}
