package subforum

import (
	"context"
	"time"

	"github.com/google/uuid"

	models "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/model"
)

type SubforumRepository interface {
	// CreateSubforum inserts the subforum, its creator moderator row, its
	// tag links and an empty stat row in one transaction.
	CreateSubforum(ctx context.Context, sf *models.Subforum, tagIDs []uuid.UUID, creatorMod *models.SubforumModerator, stat *models.SubforumStat) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.Subforum, error)
	NameExists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context, statuses []models.Status) ([]models.Subforum, error)
	ListTrending(ctx context.Context, since time.Time, limit int) ([]models.Subforum, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) error

	ListTags(ctx context.Context) ([]models.SubforumTag, error)

	IsSubscribed(ctx context.Context, userID, subforumID uuid.UUID) (bool, error)
	// Subscribe reports created=false when the pair already exists; the
	// counter is only bumped on creation, in the same transaction.
	Subscribe(ctx context.Context, sub *models.SubforumSubscription) (created bool, err error)
	// Unsubscribe decrements subscriber_count, floored at zero.
	Unsubscribe(ctx context.Context, userID, subforumID uuid.UUID) error

	HasPendingReport(ctx context.Context, subforumID, reporterID uuid.UUID) (bool, error)
	CreateReport(ctx context.Context, report *models.SubforumReport) error

	GetModerator(ctx context.Context, subforumID, userID uuid.UUID) (*models.SubforumModerator, error)
	ListModerators(ctx context.Context, subforumID uuid.UUID) ([]models.SubforumModerator, error)
	AddModerator(ctx context.Context, mod *models.SubforumModerator) error

	// RecomputeStats recounts every window from the posts and comments
	// tables and overwrites the stat row.
	RecomputeStats(ctx context.Context, subforumID uuid.UUID, now time.Time) (*models.SubforumStat, error)
}
