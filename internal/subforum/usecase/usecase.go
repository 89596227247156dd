package usecase

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AriqGChowdhury/WSU-Forum/config"
	"github.com/AriqGChowdhury/WSU-Forum/internal/content"
	identitymodels "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	"github.com/AriqGChowdhury/WSU-Forum/internal/subforum"
	models "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/model"
	"github.com/AriqGChowdhury/WSU-Forum/internal/subforum/repository"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/tokens"
)

const (
	defaultPerPage = 20
	maxPerPage     = 100
	trendingWindow = 7 * 24 * time.Hour
	maxModerators  = 5
)

// PostSource reads post listings. The content usecase satisfies it; the
// narrow interface keeps this package off content's internals.
type PostSource interface {
	ListPostsBySubforum(ctx context.Context, subforumID uuid.UUID, limit, offset int) ([]content.PostDTO, error)
	CountPostsBySubforum(ctx context.Context, subforumID uuid.UUID) (int, error)
}

// UserSource resolves users for staff checks. The identity repository
// satisfies it.
type UserSource interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*identitymodels.User, error)
}

// PendingNotifier emails the admin when a subforum enters the approval
// queue. Delivery is fire-and-forget; implementations never surface
// failures.
type PendingNotifier interface {
	SendSubforumPending(sf *models.Subforum)
}

type SubforumUsecase struct {
	repo     subforum.SubforumRepository
	posts    PostSource
	users    UserSource
	logger   logger.Logger
	config   config.Config
	tokens   *tokens.Generator
	notifier PendingNotifier
	now      func() time.Time
}

func NewSubforumUsecase(repo subforum.SubforumRepository, posts PostSource, users UserSource, logger logger.Logger, config config.Config, tokens *tokens.Generator, notifier PendingNotifier) *SubforumUsecase {
	return &SubforumUsecase{
		repo:     repo,
		posts:    posts,
		users:    users,
		logger:   logger,
		config:   config,
		tokens:   tokens,
		notifier: notifier,
		now:      time.Now,
	}
}

// WithClock fixes the time source. Tests only.
func (uc *SubforumUsecase) WithClock(now func() time.Time) *SubforumUsecase {
	uc.now = now
	return uc
}

func (uc *SubforumUsecase) Create(ctx context.Context, creatorID uuid.UUID, cmd subforum.CreateSubforumCommand) (*subforum.SubforumDTO, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.InvalidArg("name is required")
	}
	if strings.TrimSpace(cmd.Description) == "" {
		return nil, errors.InvalidArg("description is required")
	}

	exists, err := uc.repo.NameExists(ctx, name)
	if err != nil {
		uc.logger.Error("database error checking subforum name", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if exists {
		return nil, errors.ErrSubforumNameTaken
	}

	sf := &models.Subforum{
		Name:        name,
		Description: strings.TrimSpace(cmd.Description),
		Rules:       cmd.Rules,
		Banner:      cmd.Banner,
		CreatorID:   creatorID,
		Status:      models.StatusPending,
	}
	creatorMod := &models.SubforumModerator{
		UserID:         creatorID,
		Role:           models.ModeratorCreator,
		AssignedByID:   creatorID,
		CanDeletePosts: true,
		CanBanUsers:    true,
		CanEditRules:   true,
	}
	stat := &models.SubforumStat{}

	if err := uc.repo.CreateSubforum(ctx, sf, cmd.TagIDs, creatorMod, stat); err != nil {
		uc.logger.Errorf("error while saving subforum in db: %v", err)
		return nil, errors.Wrap(errors.CodeInternal, "subforum creation failed", err)
	}

	uc.notifier.SendSubforumPending(sf)

	return uc.toDTO(ctx, sf, creatorID), nil
}

func (uc *SubforumUsecase) List(ctx context.Context, viewerID uuid.UUID) ([]subforum.SubforumDTO, error) {
	statuses := []models.Status{models.StatusApproved}
	if uc.isStaff(ctx, viewerID) {
		statuses = nil
	}
	subforums, err := uc.repo.List(ctx, statuses)
	if err != nil {
		uc.logger.Error("failed to list subforums", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.toDTOs(ctx, subforums, viewerID), nil
}

func (uc *SubforumUsecase) Get(ctx context.Context, viewerID, id uuid.UUID) (*subforum.SubforumDTO, error) {
	sf, err := uc.getVisibleSubforum(ctx, viewerID, id)
	if err != nil {
		return nil, err
	}
	return uc.toDTO(ctx, sf, viewerID), nil
}

func (uc *SubforumUsecase) ListTrending(ctx context.Context, viewerID uuid.UUID, limit int) ([]subforum.SubforumDTO, error) {
	if limit <= 0 {
		limit = 5
	}
	subforums, err := uc.repo.ListTrending(ctx, uc.now().Add(-trendingWindow), limit)
	if err != nil {
		uc.logger.Error("failed to list trending subforums", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.toDTOs(ctx, subforums, viewerID), nil
}

func (uc *SubforumUsecase) ListTags(ctx context.Context) ([]subforum.TagDTO, error) {
	tags, err := uc.repo.ListTags(ctx)
	if err != nil {
		uc.logger.Error("failed to list tags", "err", err)
		return nil, errors.Internal("internal server error")
	}
	dtos := make([]subforum.TagDTO, 0, len(tags))
	for _, t := range tags {
		dtos = append(dtos, subforum.TagDTO{ID: t.ID, Name: t.Name, Description: t.Description, Color: t.Color})
	}
	return dtos, nil
}

func (uc *SubforumUsecase) ListPosts(ctx context.Context, viewerID, id uuid.UUID, page, perPage int) (*subforum.PaginatedPostsDTO, error) {
	if _, err := uc.getVisibleSubforum(ctx, viewerID, id); err != nil {
		return nil, err
	}

	if perPage <= 0 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	total, err := uc.posts.CountPostsBySubforum(ctx, id)
	if err != nil {
		return nil, err
	}
	totalPages := (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}

	// out-of-range pages clamp instead of erroring
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	posts, err := uc.posts.ListPostsBySubforum(ctx, id, perPage, (page-1)*perPage)
	if err != nil {
		return nil, err
	}

	return &subforum.PaginatedPostsDTO{
		Posts:      posts,
		Page:       page,
		PerPage:    perPage,
		TotalPosts: total,
		TotalPages: totalPages,
	}, nil
}

func (uc *SubforumUsecase) Subscribe(ctx context.Context, userID, id uuid.UUID) (*subforum.SubscribeDTO, error) {
	sf, err := uc.getSubforum(ctx, id)
	if err != nil {
		return nil, err
	}
	if sf.Status != models.StatusApproved {
		return nil, errors.ErrSubforumNotApproved
	}

	created, err := uc.repo.Subscribe(ctx, &models.SubforumSubscription{UserID: userID, SubforumID: id})
	if err != nil {
		uc.logger.Error("failed to subscribe", "subforum_id", id, "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &subforum.SubscribeDTO{Subscribed: true, AlreadySubscribed: !created}, nil
}

func (uc *SubforumUsecase) Unsubscribe(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := uc.getSubforum(ctx, id); err != nil {
		return err
	}
	if err := uc.repo.Unsubscribe(ctx, userID, id); err != nil {
		if stderrors.Is(err, repository.ErrNotSubscribed) {
			return errors.ErrNotSubscribed
		}
		uc.logger.Error("failed to unsubscribe", "subforum_id", id, "user_id", userID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *SubforumUsecase) Report(ctx context.Context, reporterID, id uuid.UUID, cmd subforum.ReportCommand) (*subforum.ReportDTO, error) {
	reason := models.ReportReason(cmd.Reason)
	if !models.ValidReportReason(reason) {
		return nil, errors.ErrInvalidReportReason
	}

	sf, err := uc.getSubforum(ctx, id)
	if err != nil {
		return nil, err
	}
	if sf.Status != models.StatusApproved {
		return nil, errors.ErrSubforumNotApproved
	}

	pending, err := uc.repo.HasPendingReport(ctx, id, reporterID)
	if err != nil {
		uc.logger.Error("database error checking pending report", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if pending {
		return nil, errors.ErrDuplicateReport
	}

	report := &models.SubforumReport{
		SubforumID: id,
		ReporterID: reporterID,
		Reason:     reason,
		Details:    cmd.Details,
		Status:     models.ReportPending,
	}
	if err := uc.repo.CreateReport(ctx, report); err != nil {
		uc.logger.Error("failed to create report", "subforum_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}

	reporter := ""
	if u, err := uc.users.GetUserByID(ctx, reporterID); err == nil {
		reporter = u.Username
	}

	return &subforum.ReportDTO{
		ID:           report.ID,
		SubforumID:   sf.ID,
		SubforumName: sf.Name,
		Reporter:     reporter,
		Reason:       string(report.Reason),
		Details:      report.Details,
		Status:       string(report.Status),
		CreatedAt:    report.CreatedAt,
	}, nil
}

func (uc *SubforumUsecase) ListModerators(ctx context.Context, id uuid.UUID) ([]subforum.ModeratorDTO, error) {
	if _, err := uc.getSubforum(ctx, id); err != nil {
		return nil, err
	}
	mods, err := uc.repo.ListModerators(ctx, id)
	if err != nil {
		uc.logger.Error("failed to list moderators", "subforum_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}

	dtos := make([]subforum.ModeratorDTO, 0, len(mods))
	for _, m := range mods {
		dto := subforum.ModeratorDTO{
			ID:             m.ID,
			Role:           string(m.Role),
			AssignedAt:     m.AssignedAt,
			CanDeletePosts: m.CanDeletePosts,
			CanBanUsers:    m.CanBanUsers,
			CanEditRules:   m.CanEditRules,
		}
		if m.User != nil {
			dto.User = content.UserSummary{ID: m.User.ID, Username: m.User.Username}
		}
		if m.AssignedBy != nil {
			dto.AssignedBy = m.AssignedBy.Username
		}
		dtos = append(dtos, dto)
	}
	return dtos, nil
}

func (uc *SubforumUsecase) AddModerator(ctx context.Context, actorID, id uuid.UUID, cmd subforum.AddModeratorCommand) (*subforum.ModeratorDTO, error) {
	role := models.ModeratorRole(cmd.Role)
	if role == "" {
		role = models.ModeratorFull
	}
	if role != models.ModeratorFull && role != models.ModeratorJunior {
		return nil, errors.ErrInvalidModeratorRole
	}

	sf, err := uc.getSubforum(ctx, id)
	if err != nil {
		return nil, err
	}

	// only staff or the subforum creator may appoint moderators
	if sf.CreatorID != actorID && !uc.isStaff(ctx, actorID) {
		return nil, errors.ErrNotModerator
	}

	if _, err := uc.users.GetUserByID(ctx, cmd.UserID); err != nil {
		return nil, errors.ErrUserNotFound
	}

	if _, err := uc.repo.GetModerator(ctx, id, cmd.UserID); err == nil {
		return nil, errors.ErrAlreadyModerator
	} else if !stderrors.Is(err, repository.ErrModeratorNotFound) {
		uc.logger.Error("database error checking moderator", "err", err)
		return nil, errors.Internal("internal server error")
	}

	mod := &models.SubforumModerator{
		SubforumID:     id,
		UserID:         cmd.UserID,
		Role:           role,
		AssignedByID:   actorID,
		CanDeletePosts: cmd.CanDeletePosts,
		CanBanUsers:    cmd.CanBanUsers,
		CanEditRules:   cmd.CanEditRules,
	}
	if err := uc.repo.AddModerator(ctx, mod); err != nil {
		uc.logger.Error("failed to add moderator", "subforum_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}

	dto := &subforum.ModeratorDTO{
		ID:             mod.ID,
		Role:           string(mod.Role),
		AssignedAt:     mod.AssignedAt,
		CanDeletePosts: mod.CanDeletePosts,
		CanBanUsers:    mod.CanBanUsers,
		CanEditRules:   mod.CanEditRules,
	}
	if u, err := uc.users.GetUserByID(ctx, cmd.UserID); err == nil {
		dto.User = content.UserSummary{ID: u.ID, Username: u.Username}
	}
	if actor, err := uc.users.GetUserByID(ctx, actorID); err == nil {
		dto.AssignedBy = actor.Username
	}
	return dto, nil
}

// ApproveByToken handles the admin email link. Every failure collapses to
// false so the link page never leaks why a token did not work.
func (uc *SubforumUsecase) ApproveByToken(ctx context.Context, uidb64, token string) bool {
	raw, err := tokens.DecodeID(uidb64)
	if err != nil {
		return false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return false
	}

	sf, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return false
	}
	if sf.Status != models.StatusPending {
		return false
	}
	if !uc.tokens.Check(sf.ID.String(), sf.TokenFingerprint(), token) {
		return false
	}

	if err := uc.repo.UpdateStatus(ctx, sf.ID, models.StatusApproved); err != nil {
		uc.logger.Error("failed to approve subforum", "subforum_id", sf.ID, "err", err)
		return false
	}
	return true
}

func (uc *SubforumUsecase) AdminDecide(ctx context.Context, adminID, id uuid.UUID, decision subforum.AdminDecision) (*subforum.SubforumDTO, error) {
	if !uc.isStaff(ctx, adminID) {
		return nil, errors.ErrAdminOnly
	}

	var status models.Status
	switch strings.ToLower(decision.Action) {
	case "approve":
		status = models.StatusApproved
	case "reject":
		status = models.StatusRejected
	default:
		return nil, errors.ErrUnknownAdminAction
	}

	sf, err := uc.getSubforum(ctx, id)
	if err != nil {
		return nil, err
	}
	// rejection is terminal; an already-decided subforum cannot move again
	if sf.Status != models.StatusPending {
		return nil, errors.FailedPrecondition("subforum is not awaiting review")
	}

	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		uc.logger.Error("failed to update subforum status", "subforum_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	sf.Status = status
	return uc.toDTO(ctx, sf, adminID), nil
}

func (uc *SubforumUsecase) ListPending(ctx context.Context, adminID uuid.UUID) ([]subforum.SubforumDTO, error) {
	if !uc.isStaff(ctx, adminID) {
		return nil, errors.ErrAdminOnly
	}
	subforums, err := uc.repo.List(ctx, []models.Status{models.StatusPending})
	if err != nil {
		uc.logger.Error("failed to list pending subforums", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.toDTOs(ctx, subforums, adminID), nil
}

func (uc *SubforumUsecase) RecomputeStats(ctx context.Context, viewerID, id uuid.UUID) (*subforum.StatsDTO, error) {
	if _, err := uc.getVisibleSubforum(ctx, viewerID, id); err != nil {
		return nil, err
	}

	stat, err := uc.repo.RecomputeStats(ctx, id, uc.now())
	if err != nil {
		if stderrors.Is(err, repository.ErrSubforumNotFound) {
			return nil, errors.ErrSubforumNotFound
		}
		uc.logger.Error("failed to recompute stats", "subforum_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &subforum.StatsDTO{
		SubforumID:          stat.SubforumID,
		PostsToday:          stat.PostsToday,
		PostsThisWeek:       stat.PostsThisWeek,
		TotalPosts:          stat.TotalPosts,
		CommentsToday:       stat.CommentsToday,
		TotalComments:       stat.TotalComments,
		ActiveUsersThisWeek: stat.ActiveUsersThisWeek,
		UpdatedAt:           stat.UpdatedAt,
	}, nil
}

func (uc *SubforumUsecase) getSubforum(ctx context.Context, id uuid.UUID) (*models.Subforum, error) {
	sf, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		if stderrors.Is(err, repository.ErrSubforumNotFound) {
			return nil, errors.ErrSubforumNotFound
		}
		uc.logger.Error("failed to load subforum", "subforum_id", id, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return sf, nil
}

// getVisibleSubforum hides non-approved subforums from everyone but staff.
// A pending or rejected subforum is indistinguishable from a missing one.
func (uc *SubforumUsecase) getVisibleSubforum(ctx context.Context, viewerID, id uuid.UUID) (*models.Subforum, error) {
	sf, err := uc.getSubforum(ctx, id)
	if err != nil {
		return nil, err
	}
	if sf.Status != models.StatusApproved && !uc.isStaff(ctx, viewerID) {
		return nil, errors.ErrSubforumNotFound
	}
	return sf, nil
}

func (uc *SubforumUsecase) isStaff(ctx context.Context, userID uuid.UUID) bool {
	if userID == uuid.Nil {
		return false
	}
	u, err := uc.users.GetUserByID(ctx, userID)
	if err != nil {
		return false
	}
	return u.IsStaff
}

func (uc *SubforumUsecase) toDTOs(ctx context.Context, subforums []models.Subforum, viewerID uuid.UUID) []subforum.SubforumDTO {
	dtos := make([]subforum.SubforumDTO, 0, len(subforums))
	for i := range subforums {
		dtos = append(dtos, *uc.toDTO(ctx, &subforums[i], viewerID))
	}
	return dtos
}

func (uc *SubforumUsecase) toDTO(ctx context.Context, sf *models.Subforum, viewerID uuid.UUID) *subforum.SubforumDTO {
	dto := &subforum.SubforumDTO{
		ID:              sf.ID,
		Name:            sf.Name,
		Description:     sf.Description,
		Rules:           sf.Rules,
		Status:          string(sf.Status),
		Banner:          sf.Banner,
		PostCount:       sf.PostCount,
		SubscriberCount: sf.SubscriberCount,
		Moderators:      []content.UserSummary{},
		Tags:            make([]subforum.TagDTO, 0, len(sf.Tags)),
		CreatedAt:       sf.CreatedAt,
	}
	if sf.Creator != nil {
		dto.Creator = content.UserSummary{ID: sf.Creator.ID, Username: sf.Creator.Username}
	}
	for _, t := range sf.Tags {
		dto.Tags = append(dto.Tags, subforum.TagDTO{ID: t.ID, Name: t.Name, Description: t.Description, Color: t.Color})
	}

	mods, err := uc.repo.ListModerators(ctx, sf.ID)
	if err != nil {
		uc.logger.Warn("failed to load moderators", "subforum_id", sf.ID, "err", err)
	}
	for _, m := range mods {
		if m.UserID == viewerID {
			dto.IsModerator = true
		}
		if m.User != nil && len(dto.Moderators) < maxModerators {
			dto.Moderators = append(dto.Moderators, content.UserSummary{ID: m.User.ID, Username: m.User.Username})
		}
	}

	if viewerID != uuid.Nil {
		subscribed, err := uc.repo.IsSubscribed(ctx, viewerID, sf.ID)
		if err != nil {
			uc.logger.Warn("failed to check subscription", "subforum_id", sf.ID, "err", err)
		}
		dto.IsSubscribed = subscribed
	}
	return dto
}
