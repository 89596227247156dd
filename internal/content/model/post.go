package models

import (
	"time"

	"github.com/google/uuid"

	identity "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
)

const (
	MaxTitleLen = 75
	MaxBodyLen  = 1000
)

type Post struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserID uuid.UUID      `bun:",notnull,type:uuid"`
	User   *identity.User `bun:"rel:belongs-to,join:user_id=id"`

	Title string `bun:",notnull"`
	Body  string `bun:",notnull"`

	// Posts may live on the main feed (nil) or inside an approved subforum.
	SubforumID *uuid.UUID `bun:",nullzero,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

type Comment struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	PostID uuid.UUID `bun:",notnull,type:uuid"`
	Post   *Post     `bun:"rel:belongs-to,join:post_id=id"`

	UserID uuid.UUID      `bun:",notnull,type:uuid"`
	User   *identity.User `bun:"rel:belongs-to,join:user_id=id"`

	Body string `bun:",notnull"`

	// Copied from the parent post so subforum stats can count comments
	// without a join.
	SubforumID *uuid.UUID `bun:",nullzero,type:uuid"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
