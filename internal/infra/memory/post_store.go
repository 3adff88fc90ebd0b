package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/domain/post"
	"github.com/messagenode/messagenode/internal/ports/repository"
)

type PostStore struct {
	mu    sync.RWMutex
	posts map[primitive.ObjectID]*post.Post
	now   func() time.Time
}

var _ repository.PostStore = (*PostStore)(nil)

func NewPostStore() *PostStore {
	return &PostStore{posts: make(map[primitive.ObjectID]*post.Post), now: time.Now}
}

// WithClock replaces the timestamp source. Tests only.
func (s *PostStore) WithClock(now func() time.Time) *PostStore {
	s.now = now
	return s
}

func (s *PostStore) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := clonePost(p)
	if stored.ID.IsZero() {
		stored.ID = primitive.NewObjectID()
	}
	now := s.now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	s.posts[stored.ID] = stored
	return clonePost(stored), nil
}

func (s *PostStore) GetByID(ctx context.Context, id primitive.ObjectID) (*post.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.posts[id]
	if !ok {
		return nil, domerr.ErrNoDocument
	}
	return clonePost(p), nil
}

func (s *PostStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts), nil
}

func (s *PostStore) ListPage(ctx context.Context, skip, limit int) ([]*post.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]*post.Post, 0, len(s.posts))
	for _, p := range s.posts {
		all = append(all, clonePost(p))
	}
	// Newest first; object id breaks creation-time ties.
	sort.Slice(all, func(i, j int) bool {
		if !all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].CreatedAt.After(all[j].CreatedAt)
		}
		return all[i].ID.Hex() > all[j].ID.Hex()
	})

	if skip < 0 {
		skip = 0
	}
	if skip >= len(all) {
		return nil, nil
	}
	end := skip + limit
	if limit <= 0 || end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (s *PostStore) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, ok := s.posts[p.ID]
	if !ok {
		return nil, domerr.ErrNoDocument
	}
	stored.Title = p.Title
	stored.Content = p.Content
	stored.ImageURL = p.ImageURL
	stored.UpdatedAt = s.now().UTC()
	return clonePost(stored), nil
}

func (s *PostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.posts[id]; !ok {
		return domerr.ErrNoDocument
	}
	delete(s.posts, id)
	return nil
}

func clonePost(p *post.Post) *post.Post {
	c := *p
	return &c
}
