package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	contentmodels "github.com/AriqGChowdhury/WSU-Forum/internal/content/model"
	models "github.com/AriqGChowdhury/WSU-Forum/internal/subforum/model"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
)

type SubforumRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrSubforumNotFound  = errors.New("subforum not found")
	ErrModeratorNotFound = errors.New("moderator not found")
	ErrNotSubscribed     = errors.New("subscription not found")
)

func NewSubforumRepository(db *bun.DB, logger logger.Logger) *SubforumRepository {
	return &SubforumRepository{
		db:     db,
		logger: &logger,
	}
}

func (r *SubforumRepository) CreateSubforum(ctx context.Context, sf *models.Subforum, tagIDs []uuid.UUID, creatorMod *models.SubforumModerator, stat *models.SubforumStat) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(sf).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "subforumRepo.CreateSubforum.Insert")
		}

		creatorMod.SubforumID = sf.ID
		if _, err := tx.NewInsert().Model(creatorMod).Exec(ctx); err != nil {
			return errors.Wrap(err, "subforumRepo.CreateSubforum.InsertCreatorModerator")
		}

		if len(tagIDs) > 0 {
			links := make([]models.SubforumTagLink, 0, len(tagIDs))
			for _, tagID := range tagIDs {
				links = append(links, models.SubforumTagLink{SubforumID: sf.ID, TagID: tagID})
			}
			if _, err := tx.NewInsert().Model(&links).Exec(ctx); err != nil {
				return errors.Wrap(err, "subforumRepo.CreateSubforum.InsertTagLinks")
			}
		}

		stat.SubforumID = sf.ID
		if _, err := tx.NewInsert().Model(stat).Exec(ctx); err != nil {
			return errors.Wrap(err, "subforumRepo.CreateSubforum.InsertStat")
		}
		return nil
	})
}

func (r *SubforumRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Subforum, error) {
	sf := new(models.Subforum)
	err := r.db.NewSelect().
		Model(sf).
		Relation("Creator").
		Relation("Tags").
		Where("subforum.id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSubforumNotFound
		}
		return nil, errors.Wrap(err, "subforumRepo.GetByID.Scan")
	}
	return sf, nil
}

func (r *SubforumRepository) NameExists(ctx context.Context, name string) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*models.Subforum)(nil)).
		Where("lower(name) = lower(?)", name).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "subforumRepo.NameExists.Count")
	}
	return count > 0, nil
}

func (r *SubforumRepository) List(ctx context.Context, statuses []models.Status) ([]models.Subforum, error) {
	var subforums []models.Subforum
	query := r.db.NewSelect().
		Model(&subforums).
		Relation("Creator").
		Relation("Tags").
		Order("subforum.created_at DESC")
	if len(statuses) > 0 {
		query = query.Where("subforum.status IN (?)", bun.In(statuses))
	}
	if err := query.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "subforumRepo.List.Scan")
	}
	return subforums, nil
}

func (r *SubforumRepository) ListTrending(ctx context.Context, since time.Time, limit int) ([]models.Subforum, error) {
	var subforums []models.Subforum
	err := r.db.NewSelect().
		Model(&subforums).
		Relation("Creator").
		Relation("Tags").
		Where("subforum.status = ?", models.StatusApproved).
		OrderExpr("(SELECT count(*) FROM posts AS p WHERE p.subforum_id = subforum.id AND p.created_at >= ?) DESC", since).
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "subforumRepo.ListTrending.Scan")
	}
	return subforums, nil
}

func (r *SubforumRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status models.Status) error {
	res, err := r.db.NewUpdate().
		Model((*models.Subforum)(nil)).
		Set("status = ?", status).
		Set("updated_at = current_timestamp").
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "subforumRepo.UpdateStatus.Update")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrSubforumNotFound
	}
	return nil
}

func (r *SubforumRepository) ListTags(ctx context.Context) ([]models.SubforumTag, error) {
	var tags []models.SubforumTag
	err := r.db.NewSelect().Model(&tags).Order("name ASC").Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "subforumRepo.ListTags.Scan")
	}
	return tags, nil
}

func (r *SubforumRepository) IsSubscribed(ctx context.Context, userID, subforumID uuid.UUID) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*models.SubforumSubscription)(nil)).
		Where("user_id = ? AND subforum_id = ?", userID, subforumID).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "subforumRepo.IsSubscribed.Count")
	}
	return count > 0, nil
}

func (r *SubforumRepository) Subscribe(ctx context.Context, sub *models.SubforumSubscription) (bool, error) {
	created := false
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		count, err := tx.NewSelect().
			Model((*models.SubforumSubscription)(nil)).
			Where("user_id = ? AND subforum_id = ?", sub.UserID, sub.SubforumID).
			Count(ctx)
		if err != nil {
			return errors.Wrap(err, "subforumRepo.Subscribe.Count")
		}
		if count > 0 {
			return nil
		}

		if _, err := tx.NewInsert().Model(sub).Returning("*").Exec(ctx); err != nil {
			return errors.Wrap(err, "subforumRepo.Subscribe.Insert")
		}
		_, err = tx.NewUpdate().
			Model((*models.Subforum)(nil)).
			Set("subscriber_count = subscriber_count + 1").
			Where("id = ?", sub.SubforumID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "subforumRepo.Subscribe.BumpCount")
		}
		created = true
		return nil
	})
	return created, err
}

func (r *SubforumRepository) Unsubscribe(ctx context.Context, userID, subforumID uuid.UUID) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.SubforumSubscription)(nil)).
			Where("user_id = ? AND subforum_id = ?", userID, subforumID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "subforumRepo.Unsubscribe.Delete")
		}
		if affected, _ := res.RowsAffected(); affected == 0 {
			return ErrNotSubscribed
		}

		// floor at zero: a drifted counter must never go negative
		_, err = tx.NewUpdate().
			Model((*models.Subforum)(nil)).
			Set("subscriber_count = GREATEST(subscriber_count - 1, 0)").
			Where("id = ?", subforumID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "subforumRepo.Unsubscribe.DropCount")
		}
		return nil
	})
}

func (r *SubforumRepository) HasPendingReport(ctx context.Context, subforumID, reporterID uuid.UUID) (bool, error) {
	count, err := r.db.NewSelect().
		Model((*models.SubforumReport)(nil)).
		Where("subforum_id = ? AND reporter_id = ? AND status = ?",
			subforumID, reporterID, models.ReportPending).
		Count(ctx)
	if err != nil {
		return false, errors.Wrap(err, "subforumRepo.HasPendingReport.Count")
	}
	return count > 0, nil
}

func (r *SubforumRepository) CreateReport(ctx context.Context, report *models.SubforumReport) error {
	_, err := r.db.NewInsert().Model(report).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "subforumRepo.CreateReport.Insert")
	}
	return nil
}

func (r *SubforumRepository) GetModerator(ctx context.Context, subforumID, userID uuid.UUID) (*models.SubforumModerator, error) {
	mod := new(models.SubforumModerator)
	err := r.db.NewSelect().
		Model(mod).
		Where("subforum_id = ? AND user_id = ?", subforumID, userID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrModeratorNotFound
		}
		return nil, errors.Wrap(err, "subforumRepo.GetModerator.Scan")
	}
	return mod, nil
}

func (r *SubforumRepository) ListModerators(ctx context.Context, subforumID uuid.UUID) ([]models.SubforumModerator, error) {
	var mods []models.SubforumModerator
	err := r.db.NewSelect().
		Model(&mods).
		Relation("User").
		Relation("AssignedBy").
		Where("subforum_moderator.subforum_id = ?", subforumID).
		Order("subforum_moderator.assigned_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "subforumRepo.ListModerators.Scan")
	}
	return mods, nil
}

func (r *SubforumRepository) AddModerator(ctx context.Context, mod *models.SubforumModerator) error {
	_, err := r.db.NewInsert().Model(mod).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "subforumRepo.AddModerator.Insert")
	}
	return nil
}

func (r *SubforumRepository) RecomputeStats(ctx context.Context, subforumID uuid.UUID, now time.Time) (*models.SubforumStat, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	week := now.AddDate(0, 0, -7)

	stat := new(models.SubforumStat)
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Subforum)(nil)).
			Where("id = ?", subforumID).
			Count(ctx)
		if err != nil {
			return errors.Wrap(err, "subforumRepo.RecomputeStats.CheckSubforum")
		}
		if exists == 0 {
			return ErrSubforumNotFound
		}

		posts := tx.NewSelect().Model((*contentmodels.Post)(nil)).Where("subforum_id = ?", subforumID)
		if stat.TotalPosts, err = posts.Count(ctx); err != nil {
			return errors.Wrap(err, "subforumRepo.RecomputeStats.TotalPosts")
		}

		postsToday := tx.NewSelect().Model((*contentmodels.Post)(nil)).
			Where("subforum_id = ? AND created_at >= ?", subforumID, today)
		if stat.PostsToday, err = postsToday.Count(ctx); err != nil {
			return errors.Wrap(err, "subforumRepo.RecomputeStats.PostsToday")
		}

		postsWeek := tx.NewSelect().Model((*contentmodels.Post)(nil)).
			Where("subforum_id = ? AND created_at >= ?", subforumID, week)
		if stat.PostsThisWeek, err = postsWeek.Count(ctx); err != nil {
			return errors.Wrap(err, "subforumRepo.RecomputeStats.PostsThisWeek")
		}

		comments := tx.NewSelect().Model((*contentmodels.Comment)(nil)).Where("subforum_id = ?", subforumID)
		if stat.TotalComments, err = comments.Count(ctx); err != nil {
			return errors.Wrap(err, "subforumRepo.RecomputeStats.TotalComments")
		}

		commentsToday := tx.NewSelect().Model((*contentmodels.Comment)(nil)).
			Where("subforum_id = ? AND created_at >= ?", subforumID, today)
		if stat.CommentsToday, err = commentsToday.Count(ctx); err != nil {
			return errors.Wrap(err, "subforumRepo.RecomputeStats.CommentsToday")
		}

		err = tx.NewRaw(
			"SELECT count(DISTINCT user_id) FROM comments WHERE subforum_id = ? AND created_at >= ?",
			subforumID, week).Scan(ctx, &stat.ActiveUsersThisWeek)
		if err != nil {
			return errors.Wrap(err, "subforumRepo.RecomputeStats.ActiveUsers")
		}

		stat.SubforumID = subforumID
		stat.UpdatedAt = now
		_, err = tx.NewInsert().
			Model(stat).
			On("CONFLICT (subforum_id) DO UPDATE").
			Set("posts_today = EXCLUDED.posts_today").
			Set("posts_this_week = EXCLUDED.posts_this_week").
			Set("total_posts = EXCLUDED.total_posts").
			Set("comments_today = EXCLUDED.comments_today").
			Set("total_comments = EXCLUDED.total_comments").
			Set("active_users_this_week = EXCLUDED.active_users_this_week").
			Set("updated_at = EXCLUDED.updated_at").
			Returning("*").
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "subforumRepo.RecomputeStats.Upsert")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return stat, nil
}
