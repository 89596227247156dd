package models

import (
	"time"

	"github.com/google/uuid"

	identity "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
)

type SubforumSubscription struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	UserID uuid.UUID      `bun:",notnull,type:uuid,unique:subscription_user_subforum"`
	User   *identity.User `bun:"rel:belongs-to,join:user_id=id"`

	SubforumID uuid.UUID `bun:",notnull,type:uuid,unique:subscription_user_subforum"`
	Subforum   *Subforum `bun:"rel:belongs-to,join:subforum_id=id"`

	ReceiveNotifications bool `bun:",notnull,default:true"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
