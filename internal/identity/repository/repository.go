package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var ErrUserNotFound = errors.New("user not found")

func NewUserRepository(db *bun.DB, logger logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *UserRepository) CreateUserWithRole(ctx context.Context, user *models.User, role *models.Role) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(user).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "identityRepo.CreateUserWithRole.InsertUser")
		}

		switch role.Kind {
		case models.RoleStudent:
			role.Student.UserID = user.ID
			if _, err := tx.NewInsert().Model(role.Student).Exec(ctx); err != nil {
				return errors.Wrap(err, "identityRepo.CreateUserWithRole.InsertStudent")
			}
		case models.RoleFaculty:
			role.Faculty.UserID = user.ID
			if _, err := tx.NewInsert().Model(role.Faculty).Exec(ctx); err != nil {
				return errors.Wrap(err, "identityRepo.CreateUserWithRole.InsertFaculty")
			}
		}
		return nil
	})
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "identityRepo.GetUserByID.Scan")
	}
	return user, nil
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	user := new(models.User)
	err := r.db.NewSelect().Model(user).Where("username = ?", username).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "identityRepo.GetUserByUsername.Scan")
	}
	return user, nil
}

func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	count, err := r.db.NewSelect().Model((*models.User)(nil)).Where("username = ?", username).Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "identityRepo.UsernameExists.Count")
	}
	return count > 0, nil
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	count, err := r.db.NewSelect().Model((*models.User)(nil)).Where("lower(email) = lower(?)", email).Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "identityRepo.EmailExists.Count")
	}
	return count > 0, nil
}

func (r *UserRepository) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("is_active = ?", active).
		Set("updated_at = current_timestamp").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "identityRepo.SetActive.Update")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	res, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("password_hash = ?", passwordHash).
		Set("updated_at = current_timestamp").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "identityRepo.UpdatePassword.Update")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	res, err := r.db.NewDelete().Model((*models.User)(nil)).Where("id = ?", userID).Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "identityRepo.DeleteUser.Delete")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepository) GetRole(ctx context.Context, userID uuid.UUID) (*models.Role, error) {
	student := new(models.Student)
	err := r.db.NewSelect().Model(student).Where("user_id = ?", userID).Scan(ctx)
	if err == nil {
		return &models.Role{Kind: models.RoleStudent, Student: student}, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrap(err, "identityRepo.GetRole.ScanStudent")
	}

	faculty := new(models.Faculty)
	err = r.db.NewSelect().Model(faculty).Where("user_id = ?", userID).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "identityRepo.GetRole.ScanFaculty")
	}
	return &models.Role{Kind: models.RoleFaculty, Faculty: faculty}, nil
}

func (r *UserRepository) UpdateStudent(ctx context.Context, student *models.Student) error {
	_, err := r.db.NewUpdate().
		Model(student).
		Column("major", "classification", "bio", "profile_picture").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "identityRepo.UpdateStudent.Update")
	}
	return nil
}

func (r *UserRepository) UpdateFaculty(ctx context.Context, faculty *models.Faculty) error {
	_, err := r.db.NewUpdate().
		Model(faculty).
		Column("department", "bio", "profile_picture").
		WherePK().
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "identityRepo.UpdateFaculty.Update")
	}
	return nil
}
