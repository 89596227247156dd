package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	identity "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
)

type Status string

const (
	StatusDraft    Status = "draft"
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusArchived Status = "archived"
)

type Subforum struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Name is unique case-insensitively; the repository enforces it with a
	// lower(name) lookup before insert.
	Name        string `bun:",unique,notnull"`
	Description string `bun:",notnull"`
	Rules       string `bun:",nullzero"`

	CreatorID uuid.UUID      `bun:",notnull,type:uuid"`
	Creator   *identity.User `bun:"rel:belongs-to,join:creator_id=id"`

	Status Status `bun:",notnull,default:'pending'"`
	Banner string `bun:",nullzero"`

	// Denormalized caches, not authoritative. Mutated in the same
	// transaction as the row that changes them.
	PostCount       int `bun:",notnull,default:0"`
	SubscriberCount int `bun:",notnull,default:0"`

	Tags []*SubforumTag `bun:"m2m:subforum_tag_links,join:Subforum=Tag"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// TokenFingerprint binds approval-link tokens to the current status: once the
// subforum is approved or rejected the link stops working.
func (s *Subforum) TokenFingerprint() string {
	return fmt.Sprintf("status=%s", s.Status)
}

type SubforumTag struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	Name        string `bun:",unique,notnull"`
	Description string `bun:",nullzero"`
	Color       string `bun:",nullzero"`
}

type SubforumTagLink struct {
	SubforumID uuid.UUID    `bun:",pk,type:uuid"`
	Subforum   *Subforum    `bun:"rel:belongs-to,join:subforum_id=id"`
	TagID      uuid.UUID    `bun:",pk,type:uuid"`
	Tag        *SubforumTag `bun:"rel:belongs-to,join:tag_id=id"`
}
