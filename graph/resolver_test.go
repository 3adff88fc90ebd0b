package graph

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"sync/atomic"
	"testing"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/domain/post"
	"github.com/messagenode/messagenode/internal/domain/user"
	"github.com/messagenode/messagenode/internal/events"
	"github.com/messagenode/messagenode/internal/infra/memory"
	"github.com/messagenode/messagenode/internal/middleware"
	"github.com/messagenode/messagenode/internal/ports/crypto"
	"github.com/messagenode/messagenode/internal/ports/repository"
)

// --- MOCKS ---

// fakeHasher avoids the argon2 cost in resolver tests; the real hasher
// has its own tests.
type fakeHasher struct{}

func (fakeHasher) Hash(ctx context.Context, password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Verify(ctx context.Context, password, encodedHash string) (bool, error) {
	return encodedHash == "hashed:"+password, nil
}

// countingUserStore wraps the memory store and counts every access, so
// tests can assert the authorization gate fires before any store call.
type countingUserStore struct {
	inner repository.UserStore
	ops   *atomic.Int64
}

func (s *countingUserStore) Create(ctx context.Context, u *user.User) (*user.User, error) {
	s.ops.Add(1)
	return s.inner.Create(ctx, u)
}

func (s *countingUserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	s.ops.Add(1)
	return s.inner.GetByEmail(ctx, email)
}

func (s *countingUserStore) GetByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	s.ops.Add(1)
	return s.inner.GetByID(ctx, id)
}

func (s *countingUserStore) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	s.ops.Add(1)
	return s.inner.AddPost(ctx, userID, postID)
}

func (s *countingUserStore) RemovePost(ctx context.Context, userID, postID primitive.ObjectID) error {
	s.ops.Add(1)
	return s.inner.RemovePost(ctx, userID, postID)
}

func (s *countingUserStore) UpdateStatus(ctx context.Context, userID primitive.ObjectID, status string) error {
	s.ops.Add(1)
	return s.inner.UpdateStatus(ctx, userID, status)
}

type countingPostStore struct {
	inner repository.PostStore
	ops   *atomic.Int64
}

func (s *countingPostStore) Create(ctx context.Context, p *post.Post) (*post.Post, error) {
	s.ops.Add(1)
	return s.inner.Create(ctx, p)
}

func (s *countingPostStore) GetByID(ctx context.Context, id primitive.ObjectID) (*post.Post, error) {
	s.ops.Add(1)
	return s.inner.GetByID(ctx, id)
}

func (s *countingPostStore) Count(ctx context.Context) (int, error) {
	s.ops.Add(1)
	return s.inner.Count(ctx)
}

func (s *countingPostStore) ListPage(ctx context.Context, skip, limit int) ([]*post.Post, error) {
	s.ops.Add(1)
	return s.inner.ListPage(ctx, skip, limit)
}

func (s *countingPostStore) Update(ctx context.Context, p *post.Post) (*post.Post, error) {
	s.ops.Add(1)
	return s.inner.Update(ctx, p)
}

func (s *countingPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	s.ops.Add(1)
	return s.inner.Delete(ctx, id)
}

type cleanerSpy struct {
	removed []string
}

func (c *cleanerSpy) Remove(imageRef string) {
	c.removed = append(c.removed, imageRef)
}

type eventRecorder struct {
	recorded []events.PostEvent
}

func (r *eventRecorder) Publish(ctx context.Context, key string, value interface{}) error {
	ev, ok := value.(events.PostEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", value)
	}
	r.recorded = append(r.recorded, ev)
	return nil
}

func (r *eventRecorder) Close() error { return nil }

// --- FIXTURE ---

type fixture struct {
	t         *testing.T
	users     *countingUserStore
	posts     *countingPostStore
	cleaner   *cleanerSpy
	published *eventRecorder
	signer    *crypto.JWTSigner
	clock     time.Time
	resolver  *Resolver
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		t:         t,
		cleaner:   &cleanerSpy{},
		published: &eventRecorder{},
		signer:    crypto.NewJWTSigner([]byte("test-secret")),
		clock:     time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	ops := &atomic.Int64{}
	f.users = &countingUserStore{inner: memory.NewUserStore(), ops: ops}
	f.posts = &countingPostStore{
		inner: memory.NewPostStore().WithClock(func() time.Time { return f.clock }),
		ops:   ops,
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	f.resolver = NewResolver(Deps{
		Users:  f.users,
		Posts:  f.posts,
		Hasher: fakeHasher{},
		Tokens: f.signer,
		Images: f.cleaner,
		Events: f.published,
		Log:    log,
	})
	return f
}

func (f *fixture) storeOps() int64 { return f.users.ops.Load() }

func (f *fixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

// registerUser creates an account through the resolver and returns the
// stored entity.
func (f *fixture) registerUser(email, name, password string) *user.User {
	f.t.Helper()
	res, err := f.resolver.CreateUser(context.Background(), struct{ UserInput userInput }{
		UserInput: userInput{Email: email, Name: name, Password: password},
	})
	require.NoError(f.t, err)
	return res.user
}

// asUser returns a context carrying the authenticated identity of u.
func (f *fixture) asUser(u *user.User) context.Context {
	return middleware.WithIdentity(context.Background(), middleware.Identity{
		Authenticated: true,
		UserID:        u.ID.Hex(),
		Email:         u.Email,
	})
}

func (f *fixture) createPost(ctx context.Context, title, content, image string) *postResolver {
	f.t.Helper()
	res, err := f.resolver.CreatePost(ctx, struct{ PostInput postInput }{
		PostInput: postInput{Title: title, Content: content, ImageURL: &image},
	})
	require.NoError(f.t, err)
	return res
}

func requireKind(t *testing.T, err error, sentinel *domerr.Error) *domerr.Error {
	t.Helper()
	require.Error(t, err)
	require.True(t, stderrors.Is(err, sentinel), "got %v", err)
	var de *domerr.Error
	require.True(t, stderrors.As(err, &de))
	return de
}

// --- REGISTRATION ---

func TestCreateUser_AggregatesViolations(t *testing.T) {
	tests := []struct {
		name       string
		email      string
		password   string
		wantFields []string
	}{
		{name: "bad email", email: "nope", password: "secret", wantFields: []string{"email"}},
		{name: "short password", email: "jane@example.com", password: "abcd", wantFields: []string{"password"}},
		{name: "both violated", email: "nope", password: "abc", wantFields: []string{"email", "password"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			_, err := f.resolver.CreateUser(context.Background(), struct{ UserInput userInput }{
				UserInput: userInput{Email: tc.email, Name: "Jane", Password: tc.password},
			})
			de := requireKind(t, err, domerr.ErrInvalidInput)
			assert.Equal(t, 422, de.Code)
			require.Len(t, de.Data, len(tc.wantFields))
			for i, field := range tc.wantFields {
				assert.Equal(t, field, de.Data[i].Field)
			}
		})
	}
}

func TestCreateUser_StoresScrubbedAccount(t *testing.T) {
	f := newFixture(t)

	res, err := f.resolver.CreateUser(context.Background(), struct{ UserInput userInput }{
		UserInput: userInput{Email: "jane@example.com", Name: "Jane", Password: "secret"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, string(res.ID()))
	assert.Equal(t, "Jane", res.Name())
	assert.Equal(t, user.DefaultStatus, res.Status())
	assert.Nil(t, res.Password(), "the secret must never reach the wire")
	posts, err := res.Posts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, posts)

	stored, err := f.users.GetByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)
	assert.Equal(t, "hashed:secret", stored.PasswordHash, "only the hash is persisted")
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	f := newFixture(t)
	first := f.registerUser("jane@example.com", "Jane", "secret")

	_, err := f.resolver.CreateUser(context.Background(), struct{ UserInput userInput }{
		UserInput: userInput{Email: "jane@example.com", Name: "Impostor", Password: "othersecret"},
	})
	requireKind(t, err, domerr.ErrConflict)

	// The first account is unaffected.
	stored, err := f.users.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane", stored.Name)
	assert.Equal(t, "hashed:secret", stored.PasswordHash)
}

// --- LOG IN ---

func TestLogIn_IssuesVerifiableToken(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")

	res, err := f.resolver.LogIn(context.Background(), struct{ Email, Password string }{
		Email: "jane@example.com", Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), res.UserID())

	claims, err := f.signer.Verify(context.Background(), res.Token())
	require.NoError(t, err)
	assert.Equal(t, u.ID.Hex(), claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestLogIn_BothFailureBranchesAnswer401(t *testing.T) {
	f := newFixture(t)
	f.registerUser("jane@example.com", "Jane", "secret")

	_, err := f.resolver.LogIn(context.Background(), struct{ Email, Password string }{
		Email: "nobody@example.com", Password: "secret",
	})
	de := requireKind(t, err, domerr.ErrUnauthenticated)
	assert.Equal(t, 401, de.Code)

	_, err = f.resolver.LogIn(context.Background(), struct{ Email, Password string }{
		Email: "jane@example.com", Password: "wrong",
	})
	de = requireKind(t, err, domerr.ErrUnauthenticated)
	assert.Equal(t, 401, de.Code)
}

// --- AUTHORIZATION GATE ---

func TestProtectedOperations_RejectUnauthenticatedBeforeStoreAccess(t *testing.T) {
	image := "images/x.png"
	id := graphql.ID(primitive.NewObjectID().Hex())

	ops := map[string]func(r *Resolver, ctx context.Context) error{
		"createPost": func(r *Resolver, ctx context.Context) error {
			_, err := r.CreatePost(ctx, struct{ PostInput postInput }{
				PostInput: postInput{Title: "fine title", Content: "long enough content", ImageURL: &image},
			})
			return err
		},
		"getPosts": func(r *Resolver, ctx context.Context) error {
			_, err := r.GetPosts(ctx, struct{ Page *int32 }{})
			return err
		},
		"getSinglePost": func(r *Resolver, ctx context.Context) error {
			_, err := r.GetSinglePost(ctx, struct{ ID graphql.ID }{ID: id})
			return err
		},
		"updatePost": func(r *Resolver, ctx context.Context) error {
			_, err := r.UpdatePost(ctx, struct {
				ID        graphql.ID
				PostInput postInput
			}{ID: id, PostInput: postInput{Title: "fine title", Content: "long enough content"}})
			return err
		},
		"deletePost": func(r *Resolver, ctx context.Context) error {
			_, err := r.DeletePost(ctx, struct{ ID graphql.ID }{ID: id})
			return err
		},
		"getStatus": func(r *Resolver, ctx context.Context) error {
			_, err := r.GetStatus(ctx)
			return err
		},
		"updateStatus": func(r *Resolver, ctx context.Context) error {
			_, err := r.UpdateStatus(ctx, struct{ Status string }{Status: "hi"})
			return err
		},
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			err := op(f.resolver, context.Background())
			requireKind(t, err, domerr.ErrUnauthenticated)
			assert.Zero(t, f.storeOps(), "the gate must fire before any store access")
		})
	}
}

// --- POST CREATION ---

func TestCreatePost_Success(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")

	res := f.createPost(f.asUser(u), "fine title", "long enough content", "images/cat.png")

	assert.Equal(t, "fine title", res.Title())
	assert.Equal(t, "long enough content", res.Content())
	assert.Equal(t, "images/cat.png", res.ImageURL())
	assert.Equal(t, u.ID.Hex(), string(res.Creator().ID()))
	assert.Equal(t, f.clock.Format(time.RFC3339), res.CreatedAt())
	assert.Equal(t, res.CreatedAt(), res.UpdatedAt())

	// The reference landed in the creator's collection.
	stored, err := f.users.GetByID(context.Background(), u.ID)
	require.NoError(t, err)
	require.Len(t, stored.Posts, 1)
	assert.Equal(t, stored.Posts[0].Hex(), string(res.ID()))

	require.Len(t, f.published.recorded, 1)
	assert.Equal(t, events.TypePostCreated, f.published.recorded[0].Type)
	assert.Equal(t, string(res.ID()), f.published.recorded[0].PostID)
}

func TestCreatePost_ValidatesInput(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")

	_, err := f.resolver.CreatePost(f.asUser(u), struct{ PostInput postInput }{
		PostInput: postInput{Title: "abc", Content: "short"},
	})
	de := requireKind(t, err, domerr.ErrInvalidInput)
	require.Len(t, de.Data, 3)
	assert.Equal(t, "title", de.Data[0].Field)
	assert.Equal(t, "content", de.Data[1].Field)
	assert.Equal(t, "imageUrl", de.Data[2].Field)
}

func TestCreatePost_VanishedAccount(t *testing.T) {
	f := newFixture(t)
	ghost := &user.User{ID: primitive.NewObjectID(), Email: "ghost@example.com"}
	image := "images/x.png"

	_, err := f.resolver.CreatePost(f.asUser(ghost), struct{ PostInput postInput }{
		PostInput: postInput{Title: "fine title", Content: "long enough content", ImageURL: &image},
	})
	requireKind(t, err, domerr.ErrUnauthenticated)
}

// failingUserStore makes the owner-link write fail.
type failingUserStore struct {
	repository.UserStore
}

func (s *failingUserStore) AddPost(ctx context.Context, userID, postID primitive.ObjectID) error {
	return stderrors.New("write failed")
}

func TestCreatePost_CompensatesFailedLinkWrite(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")

	broken := NewResolver(Deps{
		Users:  &failingUserStore{UserStore: f.users},
		Posts:  f.posts,
		Hasher: fakeHasher{},
		Tokens: f.signer,
		Images: f.cleaner,
		Events: f.published,
		Log:    discardLogger(),
	})

	image := "images/x.png"
	_, err := broken.CreatePost(f.asUser(u), struct{ PostInput postInput }{
		PostInput: postInput{Title: "fine title", Content: "long enough content", ImageURL: &image},
	})
	require.Error(t, err)

	// The compensating delete removed the orphan.
	count, err := f.posts.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

// --- PAGINATED LISTING ---

func TestGetPosts_Pagination(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")
	ctx := f.asUser(u)

	var ids []string
	for i := 1; i <= 5; i++ {
		res := f.createPost(ctx, fmt.Sprintf("post %d", i), "long enough content", "images/x.png")
		ids = append(ids, string(res.ID()))
		f.advance(time.Minute)
	}

	page2 := int32(2)
	res, err := f.resolver.GetPosts(ctx, struct{ Page *int32 }{Page: &page2})
	require.NoError(t, err)

	assert.Equal(t, int32(5), res.Total())
	require.Len(t, res.Posts(), 2)
	// Newest first: page 2 holds the posts ranked third and fourth.
	assert.Equal(t, ids[2], string(res.Posts()[0].ID()))
	assert.Equal(t, ids[1], string(res.Posts()[1].ID()))

	// Every page entry has its creator populated.
	assert.Equal(t, "Jane", res.Posts()[0].Creator().Name())
}

func TestGetPosts_PageDefaultsToOne(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")
	ctx := f.asUser(u)

	var newest string
	for i := 1; i <= 3; i++ {
		res := f.createPost(ctx, fmt.Sprintf("post %d", i), "long enough content", "images/x.png")
		newest = string(res.ID())
		f.advance(time.Minute)
	}

	zero := int32(0)
	for name, page := range map[string]*int32{"nil": nil, "zero": &zero} {
		t.Run(name, func(t *testing.T) {
			res, err := f.resolver.GetPosts(ctx, struct{ Page *int32 }{Page: page})
			require.NoError(t, err)
			require.Len(t, res.Posts(), 2)
			assert.Equal(t, newest, string(res.Posts()[0].ID()))
		})
	}
}

// --- SINGLE FETCH ---

func TestGetSinglePost(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")
	ctx := f.asUser(u)
	created := f.createPost(ctx, "fine title", "long enough content", "images/x.png")

	res, err := f.resolver.GetSinglePost(ctx, struct{ ID graphql.ID }{ID: created.ID()})
	require.NoError(t, err)
	assert.Equal(t, "fine title", res.Title())
	assert.Equal(t, "Jane", res.Creator().Name())

	_, err = f.resolver.GetSinglePost(ctx, struct{ ID graphql.ID }{
		ID: graphql.ID(primitive.NewObjectID().Hex()),
	})
	de := requireKind(t, err, domerr.ErrNotFound)
	assert.Equal(t, 404, de.Code)

	_, err = f.resolver.GetSinglePost(ctx, struct{ ID graphql.ID }{ID: "not-a-hex-id"})
	requireKind(t, err, domerr.ErrNotFound)
}

// --- UPDATE ---

func TestUpdatePost_OwnershipAndValidation(t *testing.T) {
	f := newFixture(t)
	owner := f.registerUser("jane@example.com", "Jane", "secret")
	other := f.registerUser("john@example.com", "John", "secret")
	created := f.createPost(f.asUser(owner), "fine title", "long enough content", "images/old.png")
	createdAt := created.CreatedAt()

	input := postInput{Title: "new title", Content: "new long content"}

	// A non-creator is rejected.
	_, err := f.resolver.UpdatePost(f.asUser(other), struct {
		ID        graphql.ID
		PostInput postInput
	}{ID: created.ID(), PostInput: input})
	de := requireKind(t, err, domerr.ErrUnauthorized)
	assert.Equal(t, 401, de.Code)

	// The creator with a three-character title fails validation.
	_, err = f.resolver.UpdatePost(f.asUser(owner), struct {
		ID        graphql.ID
		PostInput postInput
	}{ID: created.ID(), PostInput: postInput{Title: "abc", Content: "new long content"}})
	requireKind(t, err, domerr.ErrInvalidInput)

	// Minimum lengths succeed and refresh the updated timestamp.
	f.advance(time.Hour)
	res, err := f.resolver.UpdatePost(f.asUser(owner), struct {
		ID        graphql.ID
		PostInput postInput
	}{ID: created.ID(), PostInput: postInput{Title: "abcd", Content: "1234567890"}})
	require.NoError(t, err)
	assert.Equal(t, "abcd", res.Title())
	assert.Equal(t, createdAt, res.CreatedAt())
	assert.True(t, res.UpdatedAt() > res.CreatedAt())
}

func TestUpdatePost_AbsentImageKeepsCurrent(t *testing.T) {
	f := newFixture(t)
	owner := f.registerUser("jane@example.com", "Jane", "secret")
	created := f.createPost(f.asUser(owner), "fine title", "long enough content", "images/old.png")

	res, err := f.resolver.UpdatePost(f.asUser(owner), struct {
		ID        graphql.ID
		PostInput postInput
	}{ID: created.ID(), PostInput: postInput{Title: "new title", Content: "new long content"}})
	require.NoError(t, err)
	assert.Equal(t, "images/old.png", res.ImageURL())

	next := "images/new.png"
	res, err = f.resolver.UpdatePost(f.asUser(owner), struct {
		ID        graphql.ID
		PostInput postInput
	}{ID: created.ID(), PostInput: postInput{Title: "new title", Content: "new long content", ImageURL: &next}})
	require.NoError(t, err)
	assert.Equal(t, "images/new.png", res.ImageURL())
}

func TestUpdatePost_Missing(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")

	_, err := f.resolver.UpdatePost(f.asUser(u), struct {
		ID        graphql.ID
		PostInput postInput
	}{ID: graphql.ID(primitive.NewObjectID().Hex()), PostInput: postInput{Title: "fine title", Content: "long enough content"}})
	requireKind(t, err, domerr.ErrNotFound)
}

// --- DELETE ---

func TestDeletePost(t *testing.T) {
	f := newFixture(t)
	owner := f.registerUser("jane@example.com", "Jane", "secret")
	other := f.registerUser("john@example.com", "John", "secret")
	ctx := f.asUser(owner)
	created := f.createPost(ctx, "fine title", "long enough content", "images/doomed.png")

	// A non-creator is rejected and nothing is removed.
	_, err := f.resolver.DeletePost(f.asUser(other), struct{ ID graphql.ID }{ID: created.ID()})
	requireKind(t, err, domerr.ErrUnauthorized)
	assert.Empty(t, f.cleaner.removed)

	ok, err := f.resolver.DeletePost(ctx, struct{ ID graphql.ID }{ID: created.ID()})
	require.NoError(t, err)
	assert.True(t, ok)

	// The post is gone.
	_, err = f.resolver.GetSinglePost(ctx, struct{ ID graphql.ID }{ID: created.ID()})
	requireKind(t, err, domerr.ErrNotFound)

	// Its reference left the creator's collection.
	stored, err := f.users.GetByID(context.Background(), owner.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Posts)

	// The image asset was handed to the cleaner.
	assert.Equal(t, []string{"images/doomed.png"}, f.cleaner.removed)

	deleted := f.published.recorded[len(f.published.recorded)-1]
	assert.Equal(t, events.TypePostDeleted, deleted.Type)
	assert.Equal(t, string(created.ID()), deleted.PostID)
}

// --- STATUS ---

func TestStatusReadAndWrite(t *testing.T) {
	f := newFixture(t)
	u := f.registerUser("jane@example.com", "Jane", "secret")
	ctx := f.asUser(u)

	res, err := f.resolver.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, user.DefaultStatus, res.Status())
	assert.Nil(t, res.Password())

	updated, err := f.resolver.UpdateStatus(ctx, struct{ Status string }{Status: "shipping it"})
	require.NoError(t, err)
	assert.Equal(t, "shipping it", updated.Status())

	res, err = f.resolver.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "shipping it", res.Status())
}

func TestStatus_VanishedAccount(t *testing.T) {
	f := newFixture(t)
	ghost := &user.User{ID: primitive.NewObjectID()}

	_, err := f.resolver.GetStatus(f.asUser(ghost))
	requireKind(t, err, domerr.ErrNotFound)
}

// --- SCHEMA ---

// The SDL and the resolver methods must agree; MustParseSchema panics
// on any mismatch.
func TestSchemaMatchesResolver(t *testing.T) {
	f := newFixture(t)
	require.NotPanics(t, func() {
		graphql.MustParseSchema(Schema, f.resolver)
	})
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
