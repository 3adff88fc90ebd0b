package graph

import (
	"context"
	"fmt"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/domain/user"
)

// GetStatus returns the caller's own account.
func (r *Resolver) GetStatus(ctx context.Context) (*userResolver, error) {
	u, err := r.callerAccount(ctx)
	if err != nil {
		return nil, err
	}
	return &userResolver{r: r, user: u}, nil
}

// UpdateStatus overwrites the caller's status line. The content is
// free text and deliberately unvalidated.
func (r *Resolver) UpdateStatus(ctx context.Context, args struct{ Status string }) (*userResolver, error) {
	u, err := r.callerAccount(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.users.UpdateStatus(ctx, u.ID, args.Status); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	u.Status = args.Status
	return &userResolver{r: r, user: u}, nil
}

func (r *Resolver) callerAccount(ctx context.Context) (*user.User, error) {
	callerID, err := r.caller(ctx)
	if err != nil {
		return nil, err
	}
	u, err := r.users.GetByID(ctx, callerID)
	if err != nil {
		if isNoDocument(err) {
			return nil, domerr.NotFound("user not found")
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}
	return u, nil
}
