package repository

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	"github.com/AriqGChowdhury/WSU-Forum/internal/content"
	models "github.com/AriqGChowdhury/WSU-Forum/internal/content/model"
	identitymodels "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
)

type ContentRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrCommentNotFound  = errors.New("comment not found")
	ErrSubforumNotFound = errors.New("subforum not found")
)

func NewContentRepository(db *bun.DB, logger logger.Logger) *ContentRepository {
	return &ContentRepository{
		db:     db,
		logger: &logger,
	}
}

const (
	likeCountExpr    = "(SELECT count(*) FROM likes AS l WHERE l.post_id = post.id) AS like_count"
	commentCountExpr = "(SELECT count(*) FROM comments AS c WHERE c.post_id = post.id) AS comment_count"
	subforumNameExpr = "COALESCE((SELECT s.name FROM subforums AS s WHERE s.id = post.subforum_id), '') AS subforum_name"
)

func (r *ContentRepository) postQuery(posts *[]models.PostWithCounts) *bun.SelectQuery {
	return r.db.NewSelect().
		Model(posts).
		ModelTableExpr("posts AS post").
		ColumnExpr("post.*").
		ColumnExpr(likeCountExpr).
		ColumnExpr(commentCountExpr).
		ColumnExpr(subforumNameExpr).
		Relation("User")
}

func (r *ContentRepository) CreatePost(ctx context.Context, post *models.Post) error {
	return r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().Model(post).Returning("*").Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "contentRepo.CreatePost.Insert")
		}
		if post.SubforumID != nil {
			_, err = tx.ExecContext(ctx,
				"UPDATE subforums SET post_count = post_count + 1 WHERE id = ?", *post.SubforumID)
			if err != nil {
				return errors.Wrap(err, "contentRepo.CreatePost.BumpPostCount")
			}
		}
		return nil
	})
}

func (r *ContentRepository) GetPostByID(ctx context.Context, id uuid.UUID) (*models.PostWithCounts, error) {
	var posts []models.PostWithCounts
	err := r.postQuery(&posts).Where("post.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.GetPostByID.Scan")
	}
	if len(posts) == 0 {
		return nil, ErrPostNotFound
	}
	return &posts[0], nil
}

func (r *ContentRepository) ListPosts(ctx context.Context, viewerID uuid.UUID, q content.ListPostsQuery) ([]models.PostWithCounts, error) {
	var posts []models.PostWithCounts
	query := r.postQuery(&posts).Order("post.created_at DESC")

	if q.SubforumID != nil {
		query = query.Where("post.subforum_id = ?", *q.SubforumID)
	}
	if q.SubscribedOnly {
		query = query.Where(
			"post.subforum_id IN (SELECT sub.subforum_id FROM subforum_subscriptions AS sub WHERE sub.user_id = ?)",
			viewerID)
	}
	if q.Limit > 0 {
		query = query.Limit(q.Limit).Offset(q.Offset)
	}

	if err := query.Scan(ctx); err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListPosts.Scan")
	}
	return posts, nil
}

func (r *ContentRepository) ListPostsBySubforum(ctx context.Context, subforumID uuid.UUID, limit, offset int) ([]models.PostWithCounts, error) {
	var posts []models.PostWithCounts
	err := r.postQuery(&posts).
		Where("post.subforum_id = ?", subforumID).
		Order("post.created_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListPostsBySubforum.Scan")
	}
	return posts, nil
}

func (r *ContentRepository) CountPostsBySubforum(ctx context.Context, subforumID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().
		Model((*models.Post)(nil)).
		Where("subforum_id = ?", subforumID).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "contentRepo.CountPostsBySubforum.Count")
	}
	return count, nil
}

func (r *ContentRepository) DeletePost(ctx context.Context, postID, ownerID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*models.Post)(nil)).
		Where("id = ? AND user_id = ?", postID, ownerID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "contentRepo.DeletePost.Delete")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrPostNotFound
	}
	return nil
}

func (r *ContentRepository) SubforumStatus(ctx context.Context, subforumID uuid.UUID) (string, error) {
	var status string
	err := r.db.NewRaw("SELECT status FROM subforums WHERE id = ?", subforumID).Scan(ctx, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrSubforumNotFound
		}
		return "", errors.Wrap(err, "contentRepo.SubforumStatus.Scan")
	}
	return status, nil
}

func (r *ContentRepository) AddComment(ctx context.Context, comment *models.Comment) error {
	_, err := r.db.NewInsert().Model(comment).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "contentRepo.AddComment.Insert")
	}
	return nil
}

func (r *ContentRepository) ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.NewSelect().
		Model(&comments).
		Relation("User").
		Where("comment.post_id = ?", postID).
		Order("comment.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListCommentsByPost.Scan")
	}
	return comments, nil
}

func (r *ContentRepository) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	res, err := r.db.NewDelete().
		Model((*models.Comment)(nil)).
		Where("id = ?", commentID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "contentRepo.DeleteComment.Delete")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrCommentNotFound
	}
	return nil
}

func (r *ContentRepository) ListLikesByPost(ctx context.Context, postID uuid.UUID) ([]models.Like, error) {
	var likes []models.Like
	err := r.db.NewSelect().
		Model(&likes).
		Relation("User").
		Where("post_id = ?", postID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListLikesByPost.Scan")
	}
	return likes, nil
}

func (r *ContentRepository) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	added := false
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.Like)(nil)).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "contentRepo.ToggleLike.Delete")
		}
		if affected, _ := res.RowsAffected(); affected > 0 {
			return nil
		}
		like := &models.Like{UserID: userID, PostID: postID}
		if _, err := tx.NewInsert().Model(like).Exec(ctx); err != nil {
			return errors.Wrap(err, "contentRepo.ToggleLike.Insert")
		}
		added = true
		return nil
	})
	return added, err
}

func (r *ContentRepository) ToggleSave(ctx context.Context, userID, postID uuid.UUID) (bool, error) {
	added := false
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.SavedPost)(nil)).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "contentRepo.ToggleSave.Delete")
		}
		if affected, _ := res.RowsAffected(); affected > 0 {
			return nil
		}
		saved := &models.SavedPost{UserID: userID, PostID: postID}
		if _, err := tx.NewInsert().Model(saved).Exec(ctx); err != nil {
			return errors.Wrap(err, "contentRepo.ToggleSave.Insert")
		}
		added = true
		return nil
	})
	return added, err
}

func (r *ContentRepository) ToggleFollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	added := false
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		res, err := tx.NewDelete().
			Model((*models.Follow)(nil)).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Exec(ctx)
		if err != nil {
			return errors.Wrap(err, "contentRepo.ToggleFollow.Delete")
		}
		if affected, _ := res.RowsAffected(); affected > 0 {
			return nil
		}
		follow := &models.Follow{FollowerID: followerID, FollowingID: followingID}
		if _, err := tx.NewInsert().Model(follow).Exec(ctx); err != nil {
			return errors.Wrap(err, "contentRepo.ToggleFollow.Insert")
		}
		added = true
		return nil
	})
	return added, err
}

func (r *ContentRepository) ListPostsByUser(ctx context.Context, userID uuid.UUID) ([]models.PostWithCounts, error) {
	var posts []models.PostWithCounts
	err := r.postQuery(&posts).
		Where("post.user_id = ?", userID).
		Order("post.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListPostsByUser.Scan")
	}
	return posts, nil
}

func (r *ContentRepository) ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.NewSelect().
		Model(&comments).
		Relation("User").
		Where("comment.user_id = ?", userID).
		Order("comment.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListCommentsByUser.Scan")
	}
	return comments, nil
}

func (r *ContentRepository) ListSavedPosts(ctx context.Context, userID uuid.UUID) ([]models.PostWithCounts, error) {
	var posts []models.PostWithCounts
	err := r.postQuery(&posts).
		Where("post.id IN (SELECT sp.post_id FROM saved_posts AS sp WHERE sp.user_id = ?)", userID).
		Order("post.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListSavedPosts.Scan")
	}
	return posts, nil
}

func (r *ContentRepository) ListFollowing(ctx context.Context, userID uuid.UUID) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.NewSelect().
		Model(&follows).
		Relation("Following").
		Where("follow.follower_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListFollowing.Scan")
	}
	return follows, nil
}

func (r *ContentRepository) ListFollowers(ctx context.Context, userID uuid.UUID) ([]models.Follow, error) {
	var follows []models.Follow
	err := r.db.NewSelect().
		Model(&follows).
		Relation("Follower").
		Where("follow.following_id = ?", userID).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ListFollowers.Scan")
	}
	return follows, nil
}

func (r *ContentRepository) SearchUsers(ctx context.Context, query string) ([]identitymodels.User, error) {
	var users []identitymodels.User
	err := r.db.NewSelect().
		Model(&users).
		Where("username ILIKE ?", "%"+query+"%").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.SearchUsers.Scan")
	}
	return users, nil
}

func (r *ContentRepository) SearchPosts(ctx context.Context, query string) ([]models.PostWithCounts, error) {
	pattern := "%" + query + "%"
	var posts []models.PostWithCounts
	err := r.postQuery(&posts).
		Join("JOIN users AS author ON author.id = post.user_id").
		Where("post.title ILIKE ? OR post.body ILIKE ? OR author.username ILIKE ?",
			pattern, pattern, pattern).
		Order("post.created_at DESC").
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.SearchPosts.Scan")
	}
	return posts, nil
}

func (r *ContentRepository) SearchSubforums(ctx context.Context, query string) ([]content.SubforumSummary, error) {
	var results []content.SubforumSummary
	err := r.db.NewRaw(
		"SELECT id, name, description FROM subforums WHERE name ILIKE ? AND status = 'approved'",
		"%"+query+"%").Scan(ctx, &results)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.SearchSubforums.Scan")
	}
	return results, nil
}

func (r *ContentRepository) ProfilePictures(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error) {
	pictures := make(map[uuid.UUID]string, len(userIDs))
	if len(userIDs) == 0 {
		return pictures, nil
	}

	var students []identitymodels.Student
	err := r.db.NewSelect().
		Model(&students).
		Where("user_id IN (?)", bun.In(userIDs)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ProfilePictures.ScanStudents")
	}
	for _, s := range students {
		pictures[s.UserID] = s.ProfilePicture
	}

	var faculty []identitymodels.Faculty
	err = r.db.NewSelect().
		Model(&faculty).
		Where("user_id IN (?)", bun.In(userIDs)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "contentRepo.ProfilePictures.ScanFaculty")
	}
	for _, f := range faculty {
		pictures[f.UserID] = f.ProfilePicture
	}

	return pictures, nil
}
