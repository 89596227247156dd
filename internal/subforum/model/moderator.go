package models

import (
	"time"

	"github.com/google/uuid"

	identity "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
)

type ModeratorRole string

const (
	ModeratorCreator ModeratorRole = "creator"
	ModeratorFull    ModeratorRole = "moderator"
	ModeratorJunior  ModeratorRole = "junior_mod"
)

type SubforumModerator struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	SubforumID uuid.UUID `bun:",notnull,type:uuid,unique:moderator_subforum_user"`
	Subforum   *Subforum `bun:"rel:belongs-to,join:subforum_id=id"`

	UserID uuid.UUID      `bun:",notnull,type:uuid,unique:moderator_subforum_user"`
	User   *identity.User `bun:"rel:belongs-to,join:user_id=id"`

	Role ModeratorRole `bun:",notnull,default:'moderator'"`

	AssignedByID uuid.UUID      `bun:",nullzero,type:uuid"`
	AssignedBy   *identity.User `bun:"rel:belongs-to,join:assigned_by_id=id"`
	AssignedAt   time.Time      `bun:",nullzero,notnull,default:current_timestamp"`

	CanDeletePosts bool `bun:",notnull,default:false"`
	CanBanUsers    bool `bun:",notnull,default:false"`
	CanEditRules   bool `bun:",notnull,default:false"`
}
