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

	"github.com/AriqGChowdhury/WSU-Forum/internal/content"
	identitymodels "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	"github.com/AriqGChowdhury/WSU-Forum/internal/subforum"
	models "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/model"
	"github.com/AriqGChowdhury/WSU-Forum/internal/subforum/mocks"
	"github.com/AriqGChowdhury/WSU-Forum/internal/subforum/repository"
	appErrors "github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/tokens"
)

type stubUsers struct {
	users map[uuid.UUID]*identitymodels.User
}

func (s *stubUsers) GetUserByID(_ context.Context, id uuid.UUID) (*identitymodels.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, errors.New("user not found")
}

type stubPosts struct {
	posts []content.PostDTO
	total int

	gotLimit  int
	gotOffset int
}

func (s *stubPosts) ListPostsBySubforum(_ context.Context, _ uuid.UUID, limit, offset int) ([]content.PostDTO, error) {
	s.gotLimit = limit
	s.gotOffset = offset
	return s.posts, nil
}

func (s *stubPosts) CountPostsBySubforum(_ context.Context, _ uuid.UUID) (int, error) {
	return s.total, nil
}

type stubNotifier struct {
	pending []*models.Subforum
}

func (s *stubNotifier) SendSubforumPending(sf *models.Subforum) {
	s.pending = append(s.pending, sf)
}

type fixture struct {
	uc       *SubforumUsecase
	repo     *mocks.MockSubforumRepository
	users    *stubUsers
	posts    *stubPosts
	notifier *stubNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockSubforumRepository(ctrl)
	users := &stubUsers{users: map[uuid.UUID]*identitymodels.User{}}
	posts := &stubPosts{}
	notifier := &stubNotifier{}
	uc := &SubforumUsecase{
		repo:     mockRepo,
		posts:    posts,
		users:    users,
		tokens:   tokens.NewGenerator("token-secret", time.Hour),
		notifier: notifier,
		now:      time.Now,
	}
	return &fixture{uc: uc, repo: mockRepo, users: users, posts: posts, notifier: notifier}
}

func approvedSubforum(id, creatorID uuid.UUID) *models.Subforum {
	return &models.Subforum{
		ID:        id,
		Name:      "golang",
		CreatorID: creatorID,
		Status:    models.StatusApproved,
	}
}

func TestSubforumUsecase_Create(t *testing.T) {
	creatorID := uuid.New()

	t.Run("happy path - pending status and creator moderator", func(t *testing.T) {
		f := newFixture(t)

		g := f.repo.EXPECT()
		g.NameExists(gomock.Any(), "golang").Return(false, nil)
		g.CreateSubforum(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sf *models.Subforum, tagIDs []uuid.UUID, mod *models.SubforumModerator, stat *models.SubforumStat) error {
				assert.Equal(t, models.StatusPending, sf.Status)
				assert.Equal(t, creatorID, mod.UserID)
				assert.Equal(t, models.ModeratorCreator, mod.Role)
				assert.True(t, mod.CanDeletePosts)
				assert.True(t, mod.CanBanUsers)
				assert.True(t, mod.CanEditRules)
				sf.ID = uuid.New()
				return nil
			})
		g.ListModerators(gomock.Any(), gomock.Any()).Return(nil, nil)
		g.IsSubscribed(gomock.Any(), creatorID, gomock.Any()).Return(false, nil)

		dto, err := f.uc.Create(context.Background(), creatorID, subforum.CreateSubforumCommand{
			Name:        "golang",
			Description: "all things go",
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", dto.Status)
		assert.Len(t, f.notifier.pending, 1)
	})

	t.Run("sad path - duplicate name", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().NameExists(gomock.Any(), "golang").Return(true, nil)

		_, err := f.uc.Create(context.Background(), creatorID, subforum.CreateSubforumCommand{
			Name:        "golang",
			Description: "all things go",
		})
		if !errors.Is(err, appErrors.ErrSubforumNameTaken) {
			t.Errorf("expected ErrSubforumNameTaken, got %v", err)
		}
		assert.Empty(t, f.notifier.pending)
	})

	t.Run("sad path - missing description", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Create(context.Background(), creatorID, subforum.CreateSubforumCommand{Name: "golang"})
		require.Error(t, err)
	})
}

func TestSubforumUsecase_Subscribe(t *testing.T) {
	userID := uuid.New()
	subforumID := uuid.New()

	t.Run("sad path - pending subforum rejected", func(t *testing.T) {
		f := newFixture(t)

		pending := approvedSubforum(subforumID, uuid.New())
		pending.Status = models.StatusPending
		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).Return(pending, nil)

		_, err := f.uc.Subscribe(context.Background(), userID, subforumID)
		if !errors.Is(err, appErrors.ErrSubforumNotApproved) {
			t.Errorf("expected ErrSubforumNotApproved, got %v", err)
		}
	})

	t.Run("duplicate subscribe reports already_subscribed", func(t *testing.T) {
		f := newFixture(t)

		sf := approvedSubforum(subforumID, uuid.New())
		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(sf, nil).Times(2)
		gomock.InOrder(
			g.Subscribe(gomock.Any(), gomock.Any()).Return(true, nil),
			g.Subscribe(gomock.Any(), gomock.Any()).Return(false, nil),
		)

		first, err := f.uc.Subscribe(context.Background(), userID, subforumID)
		require.NoError(t, err)
		assert.True(t, first.Subscribed)
		assert.False(t, first.AlreadySubscribed)

		second, err := f.uc.Subscribe(context.Background(), userID, subforumID)
		require.NoError(t, err)
		assert.True(t, second.Subscribed)
		assert.True(t, second.AlreadySubscribed)
	})

	t.Run("sad path - unsubscribe without subscription", func(t *testing.T) {
		f := newFixture(t)

		sf := approvedSubforum(subforumID, uuid.New())
		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(sf, nil)
		g.Unsubscribe(gomock.Any(), userID, subforumID).Return(repository.ErrNotSubscribed)

		err := f.uc.Unsubscribe(context.Background(), userID, subforumID)
		if !errors.Is(err, appErrors.ErrNotSubscribed) {
			t.Errorf("expected ErrNotSubscribed, got %v", err)
		}
	})
}

func TestSubforumUsecase_Report(t *testing.T) {
	reporterID := uuid.New()
	subforumID := uuid.New()

	t.Run("sad path - second pending report rejected", func(t *testing.T) {
		f := newFixture(t)

		sf := approvedSubforum(subforumID, uuid.New())
		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(sf, nil)
		g.HasPendingReport(gomock.Any(), subforumID, reporterID).Return(true, nil)

		_, err := f.uc.Report(context.Background(), reporterID, subforumID, subforum.ReportCommand{Reason: "spam"})
		if !errors.Is(err, appErrors.ErrDuplicateReport) {
			t.Errorf("expected ErrDuplicateReport, got %v", err)
		}
	})

	t.Run("happy path - different subforum is fine", func(t *testing.T) {
		f := newFixture(t)

		otherID := uuid.New()
		f.users.users[reporterID] = &identitymodels.User{ID: reporterID, Username: "warrior"}

		sf := approvedSubforum(otherID, uuid.New())
		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), otherID).Return(sf, nil)
		g.HasPendingReport(gomock.Any(), otherID, reporterID).Return(false, nil)
		g.CreateReport(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r *models.SubforumReport) error {
				assert.Equal(t, models.ReportPending, r.Status)
				assert.Equal(t, models.ReasonSpam, r.Reason)
				r.ID = uuid.New()
				return nil
			})

		dto, err := f.uc.Report(context.Background(), reporterID, otherID, subforum.ReportCommand{Reason: "spam"})
		require.NoError(t, err)
		assert.Equal(t, "pending", dto.Status)
		assert.Equal(t, "warrior", dto.Reporter)
	})

	t.Run("sad path - unknown reason", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.uc.Report(context.Background(), reporterID, subforumID, subforum.ReportCommand{Reason: "i just hate it"})
		if !errors.Is(err, appErrors.ErrInvalidReportReason) {
			t.Errorf("expected ErrInvalidReportReason, got %v", err)
		}
	})
}

func TestSubforumUsecase_ListPosts(t *testing.T) {
	subforumID := uuid.New()

	t.Run("out-of-range page clamps to last", func(t *testing.T) {
		f := newFixture(t)
		f.posts.total = 45

		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).
			Return(approvedSubforum(subforumID, uuid.New()), nil)

		page, err := f.uc.ListPosts(context.Background(), uuid.Nil, subforumID, 99, 20)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Page)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 45, page.TotalPosts)
		assert.Equal(t, 40, f.posts.gotOffset)
	})

	t.Run("zero per_page falls back to default", func(t *testing.T) {
		f := newFixture(t)
		f.posts.total = 5

		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).
			Return(approvedSubforum(subforumID, uuid.New()), nil)

		page, err := f.uc.ListPosts(context.Background(), uuid.Nil, subforumID, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, defaultPerPage, page.PerPage)
	})

	t.Run("sad path - pending subforum hidden from non-staff", func(t *testing.T) {
		f := newFixture(t)

		pending := approvedSubforum(subforumID, uuid.New())
		pending.Status = models.StatusPending
		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).Return(pending, nil)

		_, err := f.uc.ListPosts(context.Background(), uuid.New(), subforumID, 1, 20)
		if !errors.Is(err, appErrors.ErrSubforumNotFound) {
			t.Errorf("expected ErrSubforumNotFound, got %v", err)
		}
	})
}

func TestSubforumUsecase_Get(t *testing.T) {
	subforumID := uuid.New()

	t.Run("happy path - approved subforum visible to anonymous", func(t *testing.T) {
		f := newFixture(t)

		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(approvedSubforum(subforumID, uuid.New()), nil)
		g.ListModerators(gomock.Any(), subforumID).Return(nil, nil)

		dto, err := f.uc.Get(context.Background(), uuid.Nil, subforumID)
		require.NoError(t, err)
		assert.Equal(t, "golang", dto.Name)
	})

	t.Run("sad path - pending subforum reads as not found to non-staff", func(t *testing.T) {
		f := newFixture(t)
		viewerID := uuid.New()
		f.users.users[viewerID] = &identitymodels.User{ID: viewerID, IsStaff: false}

		pending := approvedSubforum(subforumID, uuid.New())
		pending.Status = models.StatusPending
		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).Return(pending, nil)

		_, err := f.uc.Get(context.Background(), viewerID, subforumID)
		if !errors.Is(err, appErrors.ErrSubforumNotFound) {
			t.Errorf("expected ErrSubforumNotFound, got %v", err)
		}
	})

	t.Run("happy path - staff see pending subforums", func(t *testing.T) {
		f := newFixture(t)
		staffID := uuid.New()
		f.users.users[staffID] = &identitymodels.User{ID: staffID, IsStaff: true}

		pending := approvedSubforum(subforumID, uuid.New())
		pending.Status = models.StatusPending

		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(pending, nil)
		g.ListModerators(gomock.Any(), subforumID).Return(nil, nil)
		g.IsSubscribed(gomock.Any(), staffID, subforumID).Return(false, nil)

		dto, err := f.uc.Get(context.Background(), staffID, subforumID)
		require.NoError(t, err)
		assert.Equal(t, string(models.StatusPending), dto.Status)
	})
}

func TestSubforumUsecase_ApproveByToken(t *testing.T) {
	subforumID := uuid.New()

	t.Run("happy path then replay fails", func(t *testing.T) {
		f := newFixture(t)

		pending := approvedSubforum(subforumID, uuid.New())
		pending.Status = models.StatusPending

		uidb64 := tokens.EncodeID(subforumID.String())
		token := f.uc.tokens.Make(subforumID.String(), pending.TokenFingerprint())

		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(pending, nil)
		g.UpdateStatus(gomock.Any(), subforumID, models.StatusApproved).Return(nil)

		assert.True(t, f.uc.ApproveByToken(context.Background(), uidb64, token))

		// the same link a second time: status changed, token is stale
		approved := approvedSubforum(subforumID, uuid.New())
		g.GetByID(gomock.Any(), subforumID).Return(approved, nil)
		assert.False(t, f.uc.ApproveByToken(context.Background(), uidb64, token))
	})

	t.Run("sad path - garbage token", func(t *testing.T) {
		f := newFixture(t)

		pending := approvedSubforum(subforumID, uuid.New())
		pending.Status = models.StatusPending
		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).Return(pending, nil)

		uidb64 := tokens.EncodeID(subforumID.String())
		assert.False(t, f.uc.ApproveByToken(context.Background(), uidb64, "not-a-token"))
	})
}

func TestSubforumUsecase_AdminDecide(t *testing.T) {
	adminID := uuid.New()
	subforumID := uuid.New()

	t.Run("sad path - non-staff rejected", func(t *testing.T) {
		f := newFixture(t)
		f.users.users[adminID] = &identitymodels.User{ID: adminID, IsStaff: false}

		_, err := f.uc.AdminDecide(context.Background(), adminID, subforumID, subforum.AdminDecision{Action: "approve"})
		if !errors.Is(err, appErrors.ErrAdminOnly) {
			t.Errorf("expected ErrAdminOnly, got %v", err)
		}
	})

	t.Run("sad path - unknown action", func(t *testing.T) {
		f := newFixture(t)
		f.users.users[adminID] = &identitymodels.User{ID: adminID, IsStaff: true}

		_, err := f.uc.AdminDecide(context.Background(), adminID, subforumID, subforum.AdminDecision{Action: "maybe"})
		if !errors.Is(err, appErrors.ErrUnknownAdminAction) {
			t.Errorf("expected ErrUnknownAdminAction, got %v", err)
		}
	})

	t.Run("sad path - rejected subforum cannot be approved later", func(t *testing.T) {
		f := newFixture(t)
		f.users.users[adminID] = &identitymodels.User{ID: adminID, IsStaff: true}

		rejected := approvedSubforum(subforumID, uuid.New())
		rejected.Status = models.StatusRejected
		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).Return(rejected, nil)

		_, err := f.uc.AdminDecide(context.Background(), adminID, subforumID, subforum.AdminDecision{Action: "approve"})
		require.Error(t, err)
		appErr := appErrors.AsAppError(err)
		assert.Equal(t, appErrors.CodeFailedPrecondition, appErr.Code)
	})

	t.Run("happy path - reject", func(t *testing.T) {
		f := newFixture(t)
		f.users.users[adminID] = &identitymodels.User{ID: adminID, IsStaff: true}

		pending := approvedSubforum(subforumID, uuid.New())
		pending.Status = models.StatusPending

		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(pending, nil)
		g.UpdateStatus(gomock.Any(), subforumID, models.StatusRejected).Return(nil)
		g.ListModerators(gomock.Any(), subforumID).Return(nil, nil)
		g.IsSubscribed(gomock.Any(), adminID, subforumID).Return(false, nil)

		dto, err := f.uc.AdminDecide(context.Background(), adminID, subforumID, subforum.AdminDecision{Action: "reject"})
		require.NoError(t, err)
		assert.Equal(t, "rejected", dto.Status)
	})
}

func TestSubforumUsecase_AddModerator(t *testing.T) {
	creatorID := uuid.New()
	subforumID := uuid.New()
	targetID := uuid.New()

	t.Run("sad path - random user cannot appoint", func(t *testing.T) {
		f := newFixture(t)

		actorID := uuid.New()
		f.users.users[actorID] = &identitymodels.User{ID: actorID}
		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).
			Return(approvedSubforum(subforumID, creatorID), nil)

		_, err := f.uc.AddModerator(context.Background(), actorID, subforumID, subforum.AddModeratorCommand{UserID: targetID})
		if !errors.Is(err, appErrors.ErrNotModerator) {
			t.Errorf("expected ErrNotModerator, got %v", err)
		}
	})

	t.Run("sad path - duplicate moderator", func(t *testing.T) {
		f := newFixture(t)
		f.users.users[targetID] = &identitymodels.User{ID: targetID, Username: "target"}

		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(approvedSubforum(subforumID, creatorID), nil)
		g.GetModerator(gomock.Any(), subforumID, targetID).
			Return(&models.SubforumModerator{SubforumID: subforumID, UserID: targetID}, nil)

		_, err := f.uc.AddModerator(context.Background(), creatorID, subforumID, subforum.AddModeratorCommand{UserID: targetID})
		if !errors.Is(err, appErrors.ErrAlreadyModerator) {
			t.Errorf("expected ErrAlreadyModerator, got %v", err)
		}
	})

	t.Run("happy path - creator appoints junior mod", func(t *testing.T) {
		f := newFixture(t)
		f.users.users[creatorID] = &identitymodels.User{ID: creatorID, Username: "creator"}
		f.users.users[targetID] = &identitymodels.User{ID: targetID, Username: "target"}

		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(approvedSubforum(subforumID, creatorID), nil)
		g.GetModerator(gomock.Any(), subforumID, targetID).Return(nil, repository.ErrModeratorNotFound)
		g.AddModerator(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, m *models.SubforumModerator) error {
				assert.Equal(t, models.ModeratorJunior, m.Role)
				assert.Equal(t, creatorID, m.AssignedByID)
				m.ID = uuid.New()
				return nil
			})

		dto, err := f.uc.AddModerator(context.Background(), creatorID, subforumID, subforum.AddModeratorCommand{
			UserID: targetID,
			Role:   "junior_mod",
		})
		require.NoError(t, err)
		assert.Equal(t, "junior_mod", dto.Role)
		assert.Equal(t, "creator", dto.AssignedBy)
	})
}

func TestSubforumUsecase_RecomputeStats(t *testing.T) {
	subforumID := uuid.New()
	fixed := time.Date(2025, time.March, 14, 15, 0, 0, 0, time.UTC)

	t.Run("clock is passed through untouched", func(t *testing.T) {
		f := newFixture(t)
		f.uc.WithClock(func() time.Time { return fixed })

		stat := &models.SubforumStat{
			SubforumID:          subforumID,
			PostsToday:          2,
			PostsThisWeek:       7,
			TotalPosts:          40,
			CommentsToday:       3,
			TotalComments:       90,
			ActiveUsersThisWeek: 5,
			UpdatedAt:           fixed,
		}
		g := f.repo.EXPECT()
		g.GetByID(gomock.Any(), subforumID).Return(approvedSubforum(subforumID, uuid.New()), nil)
		g.RecomputeStats(gomock.Any(), subforumID, fixed).Return(stat, nil)

		dto, err := f.uc.RecomputeStats(context.Background(), uuid.Nil, subforumID)
		require.NoError(t, err)
		assert.Equal(t, 2, dto.PostsToday)
		assert.Equal(t, 7, dto.PostsThisWeek)
		assert.Equal(t, 40, dto.TotalPosts)
		assert.Equal(t, 5, dto.ActiveUsersThisWeek)
		assert.Equal(t, fixed, dto.UpdatedAt)
	})

	t.Run("sad path - unknown subforum", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).
			Return(nil, repository.ErrSubforumNotFound)

		_, err := f.uc.RecomputeStats(context.Background(), uuid.Nil, subforumID)
		if !errors.Is(err, appErrors.ErrSubforumNotFound) {
			t.Errorf("expected ErrSubforumNotFound, got %v", err)
		}
	})

	t.Run("sad path - pending subforum hidden from non-staff", func(t *testing.T) {
		f := newFixture(t)

		pending := approvedSubforum(subforumID, uuid.New())
		pending.Status = models.StatusPending
		f.repo.EXPECT().GetByID(gomock.Any(), subforumID).Return(pending, nil)

		_, err := f.uc.RecomputeStats(context.Background(), uuid.New(), subforumID)
		if !errors.Is(err, appErrors.ErrSubforumNotFound) {
			t.Errorf("expected ErrSubforumNotFound, got %v", err)
		}
	})
}

func TestSubforumUsecase_List(t *testing.T) {
	t.Run("regular viewer sees approved only", func(t *testing.T) {
		f := newFixture(t)

		viewerID := uuid.New()
		f.users.users[viewerID] = &identitymodels.User{ID: viewerID}

		f.repo.EXPECT().List(gomock.Any(), []models.Status{models.StatusApproved}).Return(nil, nil)

		_, err := f.uc.List(context.Background(), viewerID)
		require.NoError(t, err)
	})

	t.Run("staff sees every status", func(t *testing.T) {
		f := newFixture(t)

		staffID := uuid.New()
		f.users.users[staffID] = &identitymodels.User{ID: staffID, IsStaff: true}

		f.repo.EXPECT().List(gomock.Any(), gomock.Nil()).Return(nil, nil)

		_, err := f.uc.List(context.Background(), staffID)
		require.NoError(t, err)
	})
}
