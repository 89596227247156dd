package subforum

import (
	"context"

	"github.com/google/uuid"
)

type SubforumUsecase interface {
	// Create starts the approval workflow: the subforum lands in pending,
	// the creator becomes its creator-role moderator with full permission
	// flags, and the admin recipient is notified.
	Create(ctx context.Context, creatorID uuid.UUID, cmd CreateSubforumCommand) (*SubforumDTO, error)

	// List shows approved subforums; staff additionally see every status.
	// Get, ListPosts and RecomputeStats apply the same visibility rule:
	// a non-approved subforum reads as not found to non-staff viewers.
	List(ctx context.Context, viewerID uuid.UUID) ([]SubforumDTO, error)
	Get(ctx context.Context, viewerID, id uuid.UUID) (*SubforumDTO, error)
	ListTrending(ctx context.Context, viewerID uuid.UUID, limit int) ([]SubforumDTO, error)
	ListTags(ctx context.Context) ([]TagDTO, error)

	// ListPosts paginates; out-of-range pages clamp to the first or last
	// page instead of erroring.
	ListPosts(ctx context.Context, viewerID, id uuid.UUID, page, perPage int) (*PaginatedPostsDTO, error)

	Subscribe(ctx context.Context, userID, id uuid.UUID) (*SubscribeDTO, error)
	Unsubscribe(ctx context.Context, userID, id uuid.UUID) error

	Report(ctx context.Context, reporterID, id uuid.UUID, cmd ReportCommand) (*ReportDTO, error)

	ListModerators(ctx context.Context, id uuid.UUID) ([]ModeratorDTO, error)
	AddModerator(ctx context.Context, actorID, id uuid.UUID, cmd AddModeratorCommand) (*ModeratorDTO, error)

	// ApproveByToken is the email-link path; every failure collapses to
	// false, mirroring account activation.
	ApproveByToken(ctx context.Context, uidb64, token string) bool

	// AdminDecide applies approve or reject. Reject is terminal: there is
	// no resubmission path.
	AdminDecide(ctx context.Context, adminID, id uuid.UUID, decision AdminDecision) (*SubforumDTO, error)
	ListPending(ctx context.Context, adminID uuid.UUID) ([]SubforumDTO, error)

	RecomputeStats(ctx context.Context, viewerID, id uuid.UUID) (*StatsDTO, error)
}
