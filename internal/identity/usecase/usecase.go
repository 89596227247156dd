package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	"github.com/AriqGChowdhury/WSU-Forum/internal/identity"
	models "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	"github.com/AriqGChowdhury/WSU-Forum/internal/identity/repository"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/tokens"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/utils"
)

const bcryptCost = 14

// VerificationSender delivers the account activation email. Delivery is
// fire-and-forget; implementations never surface failures.
type VerificationSender interface {
	SendVerification(user *models.User)
}

type UserUsecase struct {
	repo     identity.UserRepository
	logger   logger.Logger
	config   config.Config
	tokens   *tokens.Generator
	notifier VerificationSender
}

func NewUserUsecase(repo identity.UserRepository, logger logger.Logger, config config.Config, tokens *tokens.Generator, notifier VerificationSender) *UserUsecase {
	return &UserUsecase{repo: repo, logger: logger, config: config, tokens: tokens, notifier: notifier}
}

func (uc *UserUsecase) Register(ctx context.Context, cmd identity.RegisterCommand) (*identity.UserDTO, error) {
	if err := uc.validateRegistration(cmd); err != nil {
		return nil, err
	}

	if exists, err := uc.repo.UsernameExists(ctx, cmd.Username); err != nil {
		uc.logger.Error("database error checking username", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrUsernameTaken
	}

	if exists, err := uc.repo.EmailExists(ctx, cmd.Email); err != nil {
		uc.logger.Error("database error checking email", "err", err)
		return nil, errors.Internal("internal server error")
	} else if exists {
		return nil, errors.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcryptCost)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return nil, errors.Internal("internal server error")
	}

	u := &models.User{
		Username:     cmd.Username,
		Email:        cmd.Email,
		PasswordHash: string(hash),
		IsActive:     false,
	}
	role := buildRole(cmd)

	if err := uc.repo.CreateUserWithRole(ctx, u, role); err != nil {
		uc.logger.Errorf("error while saving user in db: %v", err)
		return nil, errors.Wrap(errors.CodeInternal, "registration failed", err)
	}

	uc.notifier.SendVerification(u)

	return &identity.UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     string(role.Kind),
	}, nil
}

func (uc *UserUsecase) validateRegistration(cmd identity.RegisterCommand) error {
	if cmd.Username == "" {
		return errors.InvalidArg("username is required")
	}
	if !hasInstitutionalDomain(cmd.Email, uc.config.Forum.EmailDomain) {
		return errors.ErrInvalidEmailDomain
	}
	if cmd.Password == "" || cmd.Password != cmd.ConfirmPassword {
		return errors.ErrPasswordMismatch
	}
	switch strings.ToLower(cmd.Role) {
	case string(models.RoleStudent):
		if cmd.Major == "" || cmd.Classification == "" {
			return errors.ErrMissingRoleFields
		}
	case string(models.RoleFaculty):
		if cmd.Department == "" {
			return errors.ErrMissingRoleFields
		}
	default:
		return errors.ErrUnknownRole
	}
	return nil
}

func hasInstitutionalDomain(email, domain string) bool {
	_, got, found := strings.Cut(email, "@")
	return found && strings.EqualFold(got, domain)
}

func buildRole(cmd identity.RegisterCommand) *models.Role {
	if strings.EqualFold(cmd.Role, string(models.RoleFaculty)) {
		return &models.Role{
			Kind:    models.RoleFaculty,
			Faculty: &models.Faculty{Department: cmd.Department},
		}
	}
	return &models.Role{
		Kind:    models.RoleStudent,
		Student: &models.Student{Major: cmd.Major, Classification: cmd.Classification},
	}
}

// Activate flips the account to active. Every failure (bad encoding, unknown
// user, stale or tampered token) collapses to false so the endpoint stays
// safe to retry.
func (uc *UserUsecase) Activate(ctx context.Context, uidb64, token string) bool {
	raw, err := tokens.DecodeID(uidb64)
	if err != nil {
		return false
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		return false
	}

	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return false
	}

	if !uc.tokens.Check(u.ID.String(), u.TokenFingerprint(), token) {
		return false
	}

	if err := uc.repo.SetActive(ctx, u.ID, true); err != nil {
		uc.logger.Error("failed to activate user", "user_id", u.ID, "err", err)
		return false
	}
	return true
}

func (uc *UserUsecase) Login(ctx context.Context, username, password string) (*identity.LoginResponse, error) {
	u, err := uc.repo.GetUserByUsername(ctx, username)
	if err != nil {
		// unknown usernames and wrong passwords must be indistinguishable
		return nil, errors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, errors.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, errors.ErrInactiveAccount
	}

	return uc.issueTokens(u)
}

func (uc *UserUsecase) Refresh(ctx context.Context, refreshToken string) (*identity.LoginResponse, error) {
	claims, err := utils.ParseRefreshToken(refreshToken, uc.config)
	if err != nil {
		return nil, errors.ErrInvalidRefreshToken
	}

	u, err := uc.repo.GetUserByID(ctx, claims.UserID)
	if err != nil || !u.IsActive {
		return nil, errors.ErrInvalidRefreshToken
	}

	return uc.issueTokens(u)
}

func (uc *UserUsecase) issueTokens(u *models.User) (*identity.LoginResponse, error) {
	access, refresh, err := utils.GenerateJWTToken(u.ID, u.IsStaff, uc.config)
	if err != nil {
		uc.logger.Error("failed to issue tokens", "user_id", u.ID, "err", err)
		return nil, errors.Internal("error while creating tokens")
	}
	return &identity.LoginResponse{
		Message: "success",
		Access:  access,
		Refresh: refresh,
		User: &identity.UserDTO{
			ID:       u.ID,
			Username: u.Username,
			IsStaff:  u.IsStaff,
		},
	}, nil
}

func (uc *UserUsecase) Delete(ctx context.Context, userID uuid.UUID) error {
	err := uc.repo.DeleteUser(ctx, userID)
	if err != nil {
		if stderrors.Is(err, repository.ErrUserNotFound) {
			return errors.ErrUserNotFound
		}
		uc.logger.Error("failed to delete user", "user_id", userID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *UserUsecase) ResetPassword(ctx context.Context, userID uuid.UUID, cmd identity.ResetPasswordCommand) error {
	u, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return errors.ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.OldPassword)) != nil {
		return errors.ErrWrongPassword
	}
	if cmd.NewPassword == "" || cmd.NewPassword != cmd.Confirm {
		return errors.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.NewPassword), bcryptCost)
	if err != nil {
		uc.logger.Error("failed to hash password", "err", err)
		return errors.Internal("internal server error")
	}
	if err := uc.repo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		uc.logger.Error("failed to update password", "user_id", userID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *UserUsecase) GetSettings(ctx context.Context, userID uuid.UUID) (*identity.SettingsDTO, error) {
	role, err := uc.repo.GetRole(ctx, userID)
	if err != nil {
		return nil, errors.ErrUserNotFound
	}

	dto := &identity.SettingsDTO{
		Role:           string(role.Kind),
		Bio:            role.Bio(),
		ProfilePicture: role.ProfilePicture(),
	}
	switch role.Kind {
	case models.RoleStudent:
		dto.Major = role.Student.Major
		dto.Classification = role.Student.Classification
	case models.RoleFaculty:
		dto.Department = role.Faculty.Department
	}
	return dto, nil
}

func (uc *UserUsecase) UpdateSettings(ctx context.Context, userID uuid.UUID, cmd identity.UpdateProfileCommand) error {
	role, err := uc.repo.GetRole(ctx, userID)
	if err != nil {
		return errors.ErrUserNotFound
	}

	switch role.Kind {
	case models.RoleStudent:
		s := role.Student
		applyString(&s.Bio, cmd.Bio)
		applyString(&s.ProfilePicture, cmd.ProfilePicture)
		applyString(&s.Major, cmd.Major)
		applyString(&s.Classification, cmd.Classification)
		if err := uc.repo.UpdateStudent(ctx, s); err != nil {
			uc.logger.Error("failed to update student profile", "user_id", userID, "err", err)
			return errors.Internal("internal server error")
		}
	case models.RoleFaculty:
		f := role.Faculty
		applyString(&f.Bio, cmd.Bio)
		applyString(&f.ProfilePicture, cmd.ProfilePicture)
		applyString(&f.Department, cmd.Department)
		if err := uc.repo.UpdateFaculty(ctx, f); err != nil {
			uc.logger.Error("failed to update faculty profile", "user_id", userID, "err", err)
			return errors.Internal("internal server error")
		}
	}
	return nil
}

func applyString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
