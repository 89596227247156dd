package identity

import (
	"github.com/google/uuid"
)

// NOTE: commands travel from handler to usecase,
// DTOs travel from usecase to handler.

type RegisterCommand struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"pass2"`
	Role            string `json:"role"`

	// student fields
	Major          string `json:"major"`
	Classification string `json:"classification"`

	// faculty fields
	Department string `json:"department"`
}

type ResetPasswordCommand struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
	Confirm     string `json:"confirm"`
}

type UpdateProfileCommand struct {
	Bio            *string `json:"bio"`
	ProfilePicture *string `json:"profile_picture"`
	Major          *string `json:"major"`
	Classification *string `json:"classification"`
	Department     *string `json:"department"`
}

type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
	Role     string    `json:"role,omitempty"`
	IsStaff  bool      `json:"is_staff,omitempty"`
}

// SettingsDTO mirrors the settings page payload: common fields plus the
// attributes of whichever role the user holds.
type SettingsDTO struct {
	Role           string `json:"role"`
	Bio            string `json:"bio"`
	ProfilePicture string `json:"profile_picture"`
	Major          string `json:"major,omitempty"`
	Classification string `json:"classification,omitempty"`
	Department     string `json:"department,omitempty"`
}

type LoginResponse struct {
	Message string   `json:"message"`
	Access  string   `json:"access"`
	Refresh string   `json:"refresh"`
	User    *UserDTO `json:"user"`
}
