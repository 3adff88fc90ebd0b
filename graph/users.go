package graph

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/domain/user"
	"github.com/messagenode/messagenode/internal/ports/crypto"
	"github.com/messagenode/messagenode/internal/validate"
)

type userInput struct {
	Email    string
	Name     string
	Password string
}

// CreateUser registers a new account. Open to unauthenticated callers.
func (r *Resolver) CreateUser(ctx context.Context, args struct{ UserInput userInput }) (*userResolver, error) {
	in := args.UserInput

	if violations := validate.UserInput(in.Email, in.Password); len(violations) > 0 {
		return nil, domerr.InvalidInput(violations)
	}

	_, err := r.users.GetByEmail(ctx, in.Email)
	if err == nil {
		return nil, domerr.Conflict("user already exists")
	}
	if !isNoDocument(err) {
		return nil, fmt.Errorf("look up existing user: %w", err)
	}

	hash, err := r.hasher.Hash(ctx, in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	stored, err := r.users.Create(ctx, &user.User{
		Email:        in.Email,
		Name:         in.Name,
		PasswordHash: hash,
		Status:       user.DefaultStatus,
		Posts:        []primitive.ObjectID{},
	})
	if err != nil {
		return nil, fmt.Errorf("store user: %w", err)
	}

	r.log.WithField("user_id", stored.ID.Hex()).Info("user registered")
	return &userResolver{r: r, user: stored}, nil
}

// LogIn checks the credentials and issues an access token. The two
// failure branches are distinct checks but both answer 401 so a caller
// cannot probe which emails exist.
func (r *Resolver) LogIn(ctx context.Context, args struct{ Email, Password string }) (*authResolver, error) {
	u, err := r.users.GetByEmail(ctx, args.Email)
	if err != nil {
		if isNoDocument(err) {
			return nil, domerr.Unauthenticated("user could not be found")
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	match, err := r.hasher.Verify(ctx, args.Password, u.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("verify password: %w", err)
	}
	if !match {
		return nil, domerr.Unauthenticated("password does not match")
	}

	token, _, err := r.tokens.Sign(ctx, crypto.Claims{UserID: u.ID.Hex(), Email: u.Email})
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &authResolver{token: token, userID: u.ID.Hex()}, nil
}
