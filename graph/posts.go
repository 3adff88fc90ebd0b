package graph

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"go.mongodb.org/mongo-driver/bson/primitive"

	domerr "github.com/messagenode/messagenode/internal/domain/errors"
	"github.com/messagenode/messagenode/internal/domain/post"
	"github.com/messagenode/messagenode/internal/domain/user"
	"github.com/messagenode/messagenode/internal/events"
	"github.com/messagenode/messagenode/internal/validate"
)

type postInput struct {
	Title    string
	Content  string
	ImageURL *string
}

// CreatePost stores a new post and links it into the creator's post
// collection. The two writes are sequential, not transactional; when
// the link write fails the post insert is compensated with a
// best-effort delete so no orphan survives the request.
func (r *Resolver) CreatePost(ctx context.Context, args struct{ PostInput postInput }) (*postResolver, error) {
	callerID, err := r.caller(ctx)
	if err != nil {
		return nil, err
	}

	in := args.PostInput
	imageURL := ""
	if in.ImageURL != nil {
		imageURL = *in.ImageURL
	}
	violations := validate.PostInput(in.Title, in.Content)
	violations = append(violations, validate.ImageRef(imageURL)...)
	if len(violations) > 0 {
		return nil, domerr.InvalidInput(violations)
	}

	creator, err := r.users.GetByID(ctx, callerID)
	if err != nil {
		if isNoDocument(err) {
			// The token was valid but the backing account is gone.
			return nil, domerr.Unauthenticated("user not found")
		}
		return nil, fmt.Errorf("look up creator: %w", err)
	}

	stored, err := r.posts.Create(ctx, &post.Post{
		Title:     in.Title,
		Content:   in.Content,
		ImageURL:  imageURL,
		CreatorID: creator.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("store post: %w", err)
	}

	if err := r.users.AddPost(ctx, creator.ID, stored.ID); err != nil {
		if delErr := r.posts.Delete(ctx, stored.ID); delErr != nil {
			r.log.WithError(delErr).WithField("post_id", stored.ID.Hex()).
				Error("compensating delete failed, post is orphaned")
		}
		return nil, fmt.Errorf("link post to creator: %w", err)
	}
	creator.Posts = append(creator.Posts, stored.ID)

	r.publish(ctx, events.PostEvent{
		Type:      events.TypePostCreated,
		PostID:    stored.ID.Hex(),
		CreatorID: creator.ID.Hex(),
		Title:     stored.Title,
		At:        time.Now().UTC(),
	})

	return &postResolver{r: r, post: stored, creator: creator}, nil
}

// GetPosts returns one fixed-size page of posts, newest first, plus
// the independently counted total. The count and the page fetch are
// two separate queries, so the total can be stale under concurrent
// writes.
func (r *Resolver) GetPosts(ctx context.Context, args struct{ Page *int32 }) (*postPageResolver, error) {
	if _, err := r.caller(ctx); err != nil {
		return nil, err
	}

	page := 1
	if args.Page != nil && *args.Page > 0 {
		page = int(*args.Page)
	}

	total, err := r.posts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}

	posts, err := r.posts.ListPage(ctx, (page-1)*postsPerPage, postsPerPage)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	resolved, err := r.populate(ctx, posts)
	if err != nil {
		return nil, err
	}
	return &postPageResolver{posts: resolved, total: int32(total)}, nil
}

// GetSinglePost returns one post with its creator populated.
func (r *Resolver) GetSinglePost(ctx context.Context, args struct{ ID graphql.ID }) (*postResolver, error) {
	if _, err := r.caller(ctx); err != nil {
		return nil, err
	}

	p, err := r.postByID(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	creator, err := r.users.GetByID(ctx, p.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("populate creator of post %s: %w", p.ID.Hex(), err)
	}
	return &postResolver{r: r, post: p, creator: creator}, nil
}

// UpdatePost overwrites title and content after an ownership check;
// the image reference changes only when the input carries one.
func (r *Resolver) UpdatePost(ctx context.Context, args struct {
	ID        graphql.ID
	PostInput postInput
}) (*postResolver, error) {
	callerID, err := r.caller(ctx)
	if err != nil {
		return nil, err
	}

	p, err := r.postByID(ctx, args.ID)
	if err != nil {
		return nil, err
	}
	creator, err := r.ownedBy(ctx, p, callerID)
	if err != nil {
		if stderrors.Is(err, domerr.ErrUnauthorized) {
			return nil, domerr.Unauthorized("user is not authorized to edit this post")
		}
		return nil, err
	}

	in := args.PostInput
	if violations := validate.PostInput(in.Title, in.Content); len(violations) > 0 {
		return nil, domerr.InvalidInput(violations)
	}

	p.Title = in.Title
	p.Content = in.Content
	// An absent image reference means "keep the current image".
	if in.ImageURL != nil && *in.ImageURL != "" {
		p.ImageURL = *in.ImageURL
	}

	updated, err := r.posts.Update(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	return &postResolver{r: r, post: updated, creator: creator}, nil
}

// DeletePost removes a post, its image asset and its reference in the
// creator's collection. Image cleanup is best-effort; the reference
// unlink is the second, non-transactional write and its failure is
// surfaced, not swallowed.
func (r *Resolver) DeletePost(ctx context.Context, args struct{ ID graphql.ID }) (bool, error) {
	callerID, err := r.caller(ctx)
	if err != nil {
		return false, err
	}

	p, err := r.postByID(ctx, args.ID)
	if err != nil {
		return false, err
	}
	creator, err := r.ownedBy(ctx, p, callerID)
	if err != nil {
		if stderrors.Is(err, domerr.ErrUnauthorized) {
			return false, domerr.Unauthorized("user is not authorized to delete this post")
		}
		return false, err
	}

	r.images.Remove(p.ImageURL)

	if err := r.posts.Delete(ctx, p.ID); err != nil {
		return false, fmt.Errorf("delete post: %w", err)
	}
	if err := r.users.RemovePost(ctx, creator.ID, p.ID); err != nil {
		r.log.WithError(err).WithFields(map[string]interface{}{
			"post_id": p.ID.Hex(),
			"user_id": creator.ID.Hex(),
		}).Error("post deleted but reference unlink failed, needs reconciliation")
		return false, fmt.Errorf("unlink post from creator: %w", err)
	}

	r.publish(ctx, events.PostEvent{
		Type:      events.TypePostDeleted,
		PostID:    p.ID.Hex(),
		CreatorID: creator.ID.Hex(),
		At:        time.Now().UTC(),
	})

	return true, nil
}

// postByID parses the wire identifier and loads the post. A malformed
// identifier reads as a missing post, same as the store answer.
func (r *Resolver) postByID(ctx context.Context, id graphql.ID) (*post.Post, error) {
	oid, err := primitive.ObjectIDFromHex(string(id))
	if err != nil {
		return nil, domerr.NotFound("post could not be found")
	}
	p, err := r.posts.GetByID(ctx, oid)
	if err != nil {
		if isNoDocument(err) {
			return nil, domerr.NotFound("post could not be found")
		}
		return nil, fmt.Errorf("look up post: %w", err)
	}
	return p, nil
}

// ownedBy resolves the post's creator and compares identifiers as
// strings. Both mutating paths use this one strategy.
func (r *Resolver) ownedBy(ctx context.Context, p *post.Post, callerID primitive.ObjectID) (*user.User, error) {
	creator, err := r.users.GetByID(ctx, p.CreatorID)
	if err != nil {
		return nil, fmt.Errorf("resolve creator: %w", err)
	}
	if creator.ID.Hex() != callerID.Hex() {
		return nil, domerr.ErrUnauthorized
	}
	return creator, nil
}

// populate resolves the creator of every post in the page, fetching
// each account once.
func (r *Resolver) populate(ctx context.Context, posts []*post.Post) ([]*postResolver, error) {
	creators := make(map[primitive.ObjectID]*user.User)
	resolved := make([]*postResolver, 0, len(posts))
	for _, p := range posts {
		creator, ok := creators[p.CreatorID]
		if !ok {
			var err error
			creator, err = r.users.GetByID(ctx, p.CreatorID)
			if err != nil {
				return nil, fmt.Errorf("populate creator of post %s: %w", p.ID.Hex(), err)
			}
			creators[p.CreatorID] = creator
		}
		resolved = append(resolved, &postResolver{r: r, post: p, creator: creator})
	}
	return resolved, nil
}

func (r *Resolver) publish(ctx context.Context, ev events.PostEvent) {
	if err := r.events.Publish(ctx, ev.PostID, ev); err != nil {
		r.log.WithError(err).WithField("post_id", ev.PostID).Warn("could not publish post event")
	}
}
