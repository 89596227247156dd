package models

import (
	"time"

	"github.com/google/uuid"

	identity "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
)

// Like and SavedPost share the toggle idiom: a unique (post, user) pair that
// a second call deletes instead of duplicating.

type Like struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	PostID uuid.UUID `bun:",notnull,type:uuid,unique:likes_post_user"`
	Post   *Post     `bun:"rel:belongs-to,join:post_id=id"`

	UserID uuid.UUID      `bun:",notnull,type:uuid,unique:likes_post_user"`
	User   *identity.User `bun:"rel:belongs-to,join:user_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type SavedPost struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	PostID uuid.UUID `bun:",notnull,type:uuid,unique:saved_post_user"`
	Post   *Post     `bun:"rel:belongs-to,join:post_id=id"`

	UserID uuid.UUID      `bun:",notnull,type:uuid,unique:saved_post_user"`
	User   *identity.User `bun:"rel:belongs-to,join:user_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// Follow is a directed edge between two users.
type Follow struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	FollowerID uuid.UUID      `bun:",notnull,type:uuid,unique:follow_pair"`
	Follower   *identity.User `bun:"rel:belongs-to,join:follower_id=id"`

	FollowingID uuid.UUID      `bun:",notnull,type:uuid,unique:follow_pair"`
	Following   *identity.User `bun:"rel:belongs-to,join:following_id=id"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
