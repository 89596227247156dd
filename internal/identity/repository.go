package identity

import (
	"context"

	"github.com/google/uuid"

	models "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
)

type UserRepository interface {
	// CreateUserWithRole inserts the user and its Student or Faculty row in
	// one transaction.
	CreateUserWithRole(ctx context.Context, user *models.User, role *models.Role) error

	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error

	// DeleteUser hard-deletes the user; dependent rows cascade.
	DeleteUser(ctx context.Context, userID uuid.UUID) error

	GetRole(ctx context.Context, userID uuid.UUID) (*models.Role, error)
	UpdateStudent(ctx context.Context, student *models.Student) error
	UpdateFaculty(ctx context.Context, faculty *models.Faculty) error
}
