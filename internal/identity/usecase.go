package identity

import (
	"context"

	"github.com/google/uuid"
)

type UserUsecase interface {
	// Register creates an inactive user plus its role row and fires the
	// verification email. The returned identity cannot log in yet.
	Register(ctx context.Context, cmd RegisterCommand) (*UserDTO, error)

	// Activate verifies a state-bound token and flips the active flag.
	// Every failure mode collapses to false; retrying is safe.
	Activate(ctx context.Context, uidb64, token string) bool

	// Login authenticates and issues the access/refresh bearer pair.
	// Unknown, wrong-password and inactive accounts are indistinguishable.
	Login(ctx context.Context, username, password string) (*LoginResponse, error)

	// Refresh trades a valid refresh token for a fresh pair.
	Refresh(ctx context.Context, refreshToken string) (*LoginResponse, error)

	Delete(ctx context.Context, userID uuid.UUID) error
	ResetPassword(ctx context.Context, userID uuid.UUID, cmd ResetPasswordCommand) error

	GetSettings(ctx context.Context, userID uuid.UUID) (*SettingsDTO, error)
	UpdateSettings(ctx context.Context, userID uuid.UUID, cmd UpdateProfileCommand) error
}
