// Package graph implements the GraphQL contract: one resolver method
// per query and mutation, composing validation, authorization, the
// stores and the identity primitives.
package graph

import (
	"context"
	stderrors "errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/events"
	"github.com/messagenode/messagenode/internal/middleware"
	"github.com/messagenode/messagenode/internal/ports/crypto"
	"github.com/messagenode/messagenode/internal/ports/repository"
)

// postsPerPage is the fixed page size of getPosts.
const postsPerPage = 2

// ImageCleaner removes the image asset a deleted post referenced.
type ImageCleaner interface {
	Remove(imageRef string)
}

// Deps are the collaborators the resolver composes.
type Deps struct {
	Users  repository.UserStore
	Posts  repository.PostStore
	Hasher crypto.PasswordHasher
	Tokens crypto.TokenSigner
	Images ImageCleaner
	Events events.Publisher
	Log    *logrus.Logger
}

// Resolver serves as the dependency container for all resolver
// methods.
type Resolver struct {
	users  repository.UserStore
	posts  repository.PostStore
	hasher crypto.PasswordHasher
	tokens crypto.TokenSigner
	images ImageCleaner
	events events.Publisher
	log    *logrus.Logger
}

func NewResolver(d Deps) *Resolver {
	if d.Events == nil {
		d.Events = events.NoopPublisher{}
	}
	if d.Log == nil {
		d.Log = logrus.New()
	}
	return &Resolver{
		users:  d.Users,
		posts:  d.Posts,
		hasher: d.Hasher,
		tokens: d.Tokens,
		images: d.Images,
		events: d.Events,
		log:    d.Log,
	}
}

// caller enforces the authorization gate every protected operation
// starts with: an unauthenticated identity fails before any store
// access.
func (r *Resolver) caller(ctx context.Context) (primitive.ObjectID, error) {
	ident := middleware.FromContext(ctx)
	if !ident.Authenticated {
		return primitive.NilObjectID, domerr.Unauthenticated("user is not authenticated")
	}
	id, err := primitive.ObjectIDFromHex(ident.UserID)
	if err != nil {
		return primitive.NilObjectID, domerr.Unauthenticated("user is not authenticated")
	}
	return id, nil
}

func isNoDocument(err error) bool {
	return stderrors.Is(err, domerr.ErrNoDocument)
}
