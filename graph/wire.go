package graph

import (
	"context"
	"fmt"
	"time"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/messagenode/messagenode/internal/domain/post"
	"github.com/messagenode/messagenode/internal/domain/user"
)

// The wire types whitelist what leaves the API. Every field of the
// schema maps to exactly one method here; raw entities are never
// spread onto the wire, so the password hash cannot leak.

type postResolver struct {
	r       *Resolver
	post    *post.Post
	creator *user.User
}

func (p *postResolver) ID() graphql.ID    { return graphql.ID(p.post.ID.Hex()) }
func (p *postResolver) Title() string     { return p.post.Title }
func (p *postResolver) Content() string   { return p.post.Content }
func (p *postResolver) ImageURL() string  { return p.post.ImageURL }
func (p *postResolver) CreatedAt() string { return p.post.CreatedAt.UTC().Format(time.RFC3339) }
func (p *postResolver) UpdatedAt() string { return p.post.UpdatedAt.UTC().Format(time.RFC3339) }

func (p *postResolver) Creator() *userResolver {
	return &userResolver{r: p.r, user: p.creator}
}

type userResolver struct {
	r    *Resolver
	user *user.User
}

func (u *userResolver) ID() graphql.ID { return graphql.ID(u.user.ID.Hex()) }
func (u *userResolver) Name() string   { return u.user.Name }
func (u *userResolver) Email() string  { return u.user.Email }
func (u *userResolver) Status() string { return u.user.Status }

// Password always resolves to null. The field exists for contract
// compatibility; the stored hash is not wire data.
func (u *userResolver) Password() *string { return nil }

// Posts resolves the account's post references. Dangling references
// (see the two-write sequences on create and delete) are skipped, not
// failed, so one inconsistent link cannot break every account read.
func (u *userResolver) Posts(ctx context.Context) ([]*postResolver, error) {
	resolved := make([]*postResolver, 0, len(u.user.Posts))
	for _, ref := range u.user.Posts {
		p, err := u.r.posts.GetByID(ctx, ref)
		if err != nil {
			if isNoDocument(err) {
				u.r.log.WithField("post_id", ref.Hex()).Debug("skipping dangling post reference")
				continue
			}
			return nil, fmt.Errorf("resolve post reference %s: %w", ref.Hex(), err)
		}
		resolved = append(resolved, &postResolver{r: u.r, post: p, creator: u.user})
	}
	return resolved, nil
}

type authResolver struct {
	token  string
	userID string
}

func (a *authResolver) Token() string  { return a.token }
func (a *authResolver) UserID() string { return a.userID }

type postPageResolver struct {
	posts []*postResolver
	total int32
}

func (p *postPageResolver) Posts() []*postResolver { return p.posts }
func (p *postPageResolver) Total() int32           { return p.total }
