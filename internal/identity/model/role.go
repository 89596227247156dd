package models

import (
	"github.com/google/uuid"
)

type RoleKind string

const (
	RoleStudent RoleKind = "student"
	RoleFaculty RoleKind = "faculty"
)

type Student struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id"`

	Major          string `bun:",notnull"`
	Classification string `bun:",notnull"`
	Bio            string `bun:",nullzero"`
	ProfilePicture string `bun:",nullzero"`
}

type Faculty struct {
	UserID uuid.UUID `bun:",pk,type:uuid"`
	User   *User     `bun:"rel:belongs-to,join:user_id=id"`

	Department     string `bun:",notnull"`
	Bio            string `bun:",nullzero"`
	ProfilePicture string `bun:",nullzero"`
}

// Role is the tagged variant carried alongside a User: exactly one of Student
// or Faculty is set, matching Kind.
type Role struct {
	Kind    RoleKind
	Student *Student
	Faculty *Faculty
}

func (r *Role) ProfilePicture() string {
	switch r.Kind {
	case RoleStudent:
		return r.Student.ProfilePicture
	case RoleFaculty:
		return r.Faculty.ProfilePicture
	}
	return ""
}

func (r *Role) Bio() string {
	switch r.Kind {
	case RoleStudent:
		return r.Student.Bio
	case RoleFaculty:
		return r.Faculty.Bio
	}
	return ""
}
