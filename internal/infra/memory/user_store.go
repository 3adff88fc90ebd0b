// Package memory is the in-process store backend. It backs local
// development runs and the resolver tests; semantics mirror the mongo
// backend, including ErrNoDocument on missing lookups.
package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/domain/user"
	"github.com/messagenode/messagenode/internal/ports/repository"
)

type UserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID]*user.User
}

var _ repository.UserStore = (*UserStore)(nil)

func NewUserStore() *UserStore {
	return &UserStore{users: make(map[primitive.ObjectID]*user.User)}
}

func (s *UserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := cloneUser(u)
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	if stored.Posts == nil {
		stored.Posts = []primitive.ObjectID{}
	}
	s.users[stored.ID] = stored
	return cloneUser(stored), nil
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domerr.ErrNoDocument
}

func (s *UserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, domerr.ErrNoDocument
	}
	return cloneUser(u), nil
}

func (s *UserStore) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domerr.ErrNoDocument
	}
	u.Posts = append(u.Posts, postID)
	return nil
}

func (s *UserStore) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domerr.ErrNoDocument
	}
	kept := u.Posts[:0]
	for _, ref := range u.Posts {
		if ref != postID {
			kept = append(kept, ref)
		}
	}
	u.Posts = kept
	return nil
}

func (s *UserStore) UpdateStatus(ctx context.Context, userID primitive.ObjectID, status string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return domerr.ErrNoDocument
	}
	u.Status = status
	return nil
}

func cloneUser(u *user.User) *user.User {
	c := *u
	c.Posts = append([]primitive.ObjectID(nil), u.Posts...)
	return &c
}
