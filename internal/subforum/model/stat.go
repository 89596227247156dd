package models

import (
	"time"

	"github.com/google/uuid"
)

// SubforumStat is recomputed wholesale on demand, never incrementally
// maintained.
type SubforumStat struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	SubforumID uuid.UUID `bun:",notnull,type:uuid,unique"`
	Subforum   *Subforum `bun:"rel:belongs-to,join:subforum_id=id"`

	PostsToday    int `bun:",notnull,default:0"`
	PostsThisWeek int `bun:",notnull,default:0"`
	TotalPosts    int `bun:",notnull,default:0"`

	CommentsToday int `bun:",notnull,default:0"`
	TotalComments int `bun:",notnull,default:0"`

	ActiveUsersThisWeek int `bun:",notnull,default:0"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
