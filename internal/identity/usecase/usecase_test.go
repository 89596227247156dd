package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	"github.com/AriqGChowdhury/WSU-Forum/internal/identity"
	"github.com/AriqGChowdhury/WSU-Forum/internal/identity/mocks"
	models "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	"github.com/AriqGChowdhury/WSU-Forum/internal/identity/repository"
	appErrors "github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/tokens"
)

type stubNotifier struct {
	sent []*models.User
}

func (s *stubNotifier) SendVerification(u *models.User) {
	s.sent = append(s.sent, u)
}

func testConfig() config.Config {
	return config.Config{
		JWT: config.JWT{
			Secret:           "test-secret",
			ExpiredIn:        300,
			RefreshExpiredIn: 3600,
		},
		Forum: config.Forum{
			EmailDomain: "wayne.edu",
		},
	}
}

func newTestUsecase(t *testing.T) (*UserUsecase, *mocks.MockUserRepository, *stubNotifier) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockUserRepository(ctrl)
	notifier := &stubNotifier{}
	uc := &UserUsecase{
		repo:     mockRepo,
		config:   testConfig(),
		tokens:   tokens.NewGenerator("token-secret", time.Hour),
		notifier: notifier,
	}
	return uc, mockRepo, notifier
}

func validRegisterCommand() identity.RegisterCommand {
	return identity.RegisterCommand{
		Username:        "warrior",
		Email:           "warrior@wayne.edu",
		Password:        "hunter2hunter2",
		ConfirmPassword: "hunter2hunter2",
		Role:            "student",
		Major:           "Computer Science",
		Classification:  "Senior",
	}
}

func TestUserUsecase_Register(t *testing.T) {
	t.Run("happy path - student registered inactive", func(t *testing.T) {
		uc, mockRepo, notifier := newTestUsecase(t)

		g := mockRepo.EXPECT()
		g.UsernameExists(gomock.Any(), "warrior").Return(false, nil)
		g.EmailExists(gomock.Any(), "warrior@wayne.edu").Return(false, nil)
		g.CreateUserWithRole(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u *models.User, role *models.Role) error {
				assert.False(t, u.IsActive)
				assert.Equal(t, models.RoleStudent, role.Kind)
				require.NotNil(t, role.Student)
				assert.Equal(t, "Computer Science", role.Student.Major)
				u.ID = uuid.New()
				return nil
			})

		dto, err := uc.Register(context.Background(), validRegisterCommand())
		require.NoError(t, err)
		assert.Equal(t, "warrior", dto.Username)
		assert.Equal(t, "student", dto.Role)
		assert.Len(t, notifier.sent, 1)
	})

	t.Run("sad path - wrong email domain, no user row", func(t *testing.T) {
		uc, _, notifier := newTestUsecase(t)

		cmd := validRegisterCommand()
		cmd.Email = "warrior@gmail.com"

		_, err := uc.Register(context.Background(), cmd)
		if !errors.Is(err, appErrors.ErrInvalidEmailDomain) {
			t.Errorf("expected ErrInvalidEmailDomain, got %v", err)
		}
		assert.Empty(t, notifier.sent)
	})

	t.Run("sad path - password mismatch", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)

		cmd := validRegisterCommand()
		cmd.ConfirmPassword = "something else"

		_, err := uc.Register(context.Background(), cmd)
		if !errors.Is(err, appErrors.ErrPasswordMismatch) {
			t.Errorf("expected ErrPasswordMismatch, got %v", err)
		}
	})

	t.Run("sad path - student without major", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)

		cmd := validRegisterCommand()
		cmd.Major = ""

		_, err := uc.Register(context.Background(), cmd)
		if !errors.Is(err, appErrors.ErrMissingRoleFields) {
			t.Errorf("expected ErrMissingRoleFields, got %v", err)
		}
	})

	t.Run("sad path - username taken", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().UsernameExists(gomock.Any(), "warrior").Return(true, nil)

		_, err := uc.Register(context.Background(), validRegisterCommand())
		if !errors.Is(err, appErrors.ErrUsernameTaken) {
			t.Errorf("expected ErrUsernameTaken, got %v", err)
		}
	})
}

func TestUserUsecase_Activate(t *testing.T) {
	userID := uuid.New()
	inactive := &models.User{
		ID:           userID,
		Username:     "warrior",
		PasswordHash: "hash",
		IsActive:     false,
	}

	t.Run("happy path - valid token activates", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		uidb64 := tokens.EncodeID(userID.String())
		token := uc.tokens.Make(userID.String(), inactive.TokenFingerprint())

		g := mockRepo.EXPECT()
		g.GetUserByID(gomock.Any(), userID).Return(inactive, nil)
		g.SetActive(gomock.Any(), userID, true).Return(nil)

		assert.True(t, uc.Activate(context.Background(), uidb64, token))
	})

	t.Run("sad path - token dead after activation", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		uidb64 := tokens.EncodeID(userID.String())
		token := uc.tokens.Make(userID.String(), inactive.TokenFingerprint())

		// the same account, now active: fingerprint changed, token is stale
		activated := &models.User{
			ID:           userID,
			Username:     "warrior",
			PasswordHash: "hash",
			IsActive:     true,
		}
		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(activated, nil)

		assert.False(t, uc.Activate(context.Background(), uidb64, token))
	})

	t.Run("sad path - garbage uidb64", func(t *testing.T) {
		uc, _, _ := newTestUsecase(t)
		assert.False(t, uc.Activate(context.Background(), "!!not-base64!!", "whatever"))
	})

	t.Run("sad path - unknown user", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).
			Return(nil, repository.ErrUserNotFound)

		uidb64 := tokens.EncodeID(userID.String())
		assert.False(t, uc.Activate(context.Background(), uidb64, "whatever"))
	})
}

func TestUserUsecase_Login(t *testing.T) {
	userID := uuid.New()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	activeUser := &models.User{
		ID:           userID,
		Username:     "warrior",
		PasswordHash: string(hash),
		IsActive:     true,
	}

	t.Run("happy path - token pair issued", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "warrior").Return(activeUser, nil)

		resp, err := uc.Login(context.Background(), "warrior", "hunter2hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Access)
		assert.NotEmpty(t, resp.Refresh)
		require.NotNil(t, resp.User)
		assert.Equal(t, userID, resp.User.ID)
	})

	t.Run("sad path - unknown user", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "nobody").
			Return(nil, repository.ErrUserNotFound)

		_, err := uc.Login(context.Background(), "nobody", "hunter2hunter2")
		if !errors.Is(err, appErrors.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("sad path - wrong password", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "warrior").Return(activeUser, nil)

		_, err := uc.Login(context.Background(), "warrior", "wrong")
		if !errors.Is(err, appErrors.ErrInvalidCredentials) {
			t.Errorf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("sad path - inactive account message matches invalid credentials", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		inactive := &models.User{
			ID:           userID,
			Username:     "warrior",
			PasswordHash: string(hash),
			IsActive:     false,
		}
		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "warrior").Return(inactive, nil)

		_, err := uc.Login(context.Background(), "warrior", "hunter2hunter2")
		require.Error(t, err)
		// the response body must not reveal that the account exists
		assert.Equal(t, appErrors.ErrInvalidCredentials.Error(), err.Error())
	})
}

func TestUserUsecase_Refresh(t *testing.T) {
	userID := uuid.New()
	activeUser := &models.User{ID: userID, Username: "warrior", IsActive: true}

	t.Run("happy path - refresh rotates pair", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "warrior").Return(&models.User{
			ID:           userID,
			Username:     "warrior",
			PasswordHash: mustHash(t, "pw"),
			IsActive:     true,
		}, nil)
		first, err := uc.Login(context.Background(), "warrior", "pw")
		require.NoError(t, err)

		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(activeUser, nil)
		second, err := uc.Refresh(context.Background(), first.Refresh)
		require.NoError(t, err)
		assert.NotEmpty(t, second.Access)
	})

	t.Run("sad path - access token rejected as refresh", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		mockRepo.EXPECT().GetUserByUsername(gomock.Any(), "warrior").Return(&models.User{
			ID:           userID,
			Username:     "warrior",
			PasswordHash: mustHash(t, "pw"),
			IsActive:     true,
		}, nil)
		first, err := uc.Login(context.Background(), "warrior", "pw")
		require.NoError(t, err)

		_, err = uc.Refresh(context.Background(), first.Access)
		if !errors.Is(err, appErrors.ErrInvalidRefreshToken) {
			t.Errorf("expected ErrInvalidRefreshToken, got %v", err)
		}
	})
}

func TestUserUsecase_ResetPassword(t *testing.T) {
	userID := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		u := &models.User{ID: userID, PasswordHash: mustHash(t, "old-password")}
		g := mockRepo.EXPECT()
		g.GetUserByID(gomock.Any(), userID).Return(u, nil)
		g.UpdatePassword(gomock.Any(), userID, gomock.Any()).Return(nil)

		err := uc.ResetPassword(context.Background(), userID, identity.ResetPasswordCommand{
			OldPassword: "old-password",
			NewPassword: "new-password",
			Confirm:     "new-password",
		})
		require.NoError(t, err)
	})

	t.Run("sad path - wrong old password", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		u := &models.User{ID: userID, PasswordHash: mustHash(t, "old-password")}
		mockRepo.EXPECT().GetUserByID(gomock.Any(), userID).Return(u, nil)

		err := uc.ResetPassword(context.Background(), userID, identity.ResetPasswordCommand{
			OldPassword: "nope",
			NewPassword: "new-password",
			Confirm:     "new-password",
		})
		if !errors.Is(err, appErrors.ErrWrongPassword) {
			t.Errorf("expected ErrWrongPassword, got %v", err)
		}
	})
}

func TestUserUsecase_UpdateSettings(t *testing.T) {
	userID := uuid.New()

	t.Run("student fields applied selectively", func(t *testing.T) {
		uc, mockRepo, _ := newTestUsecase(t)

		role := &models.Role{
			Kind: models.RoleStudent,
			Student: &models.Student{
				UserID:         userID,
				Major:          "Computer Science",
				Classification: "Junior",
				Bio:            "old bio",
			},
		}
		newBio := "new bio"

		g := mockRepo.EXPECT()
		g.GetRole(gomock.Any(), userID).Return(role, nil)
		g.UpdateStudent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *models.Student) error {
				assert.Equal(t, "new bio", s.Bio)
				// untouched fields keep their values
				assert.Equal(t, "Computer Science", s.Major)
				return nil
			})

		err := uc.UpdateSettings(context.Background(), userID, identity.UpdateProfileCommand{Bio: &newBio})
		require.NoError(t, err)
	})
}

func mustHash(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}
