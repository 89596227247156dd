package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique handle (used for login and identity)
	Username string `bun:",unique,notnull"`

	Email        string `bun:",unique,notnull"`
	PasswordHash string `bun:",notnull"`

	// Accounts start inactive and stay that way until the email
	// verification link is followed.
	IsActive bool `bun:",notnull,default:false"`
	IsStaff  bool `bun:",notnull,default:false"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// TokenFingerprint summarizes the state an activation token is bound to.
// Flipping IsActive or changing the password invalidates outstanding tokens.
func (u *User) TokenFingerprint() string {
	return fmt.Sprintf("active=%t;pw=%s", u.IsActive, u.PasswordHash)
}
