package content

import (
	"context"

	"github.com/google/uuid"

	models "github.com/AriqGChowdhury/WSU-Forum/internal/content/model"
	identitymodels "github.com/AriqGChowdhury/WSU-Forum/internal/identity/model"
)

type ContentRepository interface {
	// CreatePost inserts the post and, when it targets a subforum, bumps
	// that subforum's post_count in the same transaction.
	CreatePost(ctx context.Context, post *models.Post) error
	GetPostByID(ctx context.Context, id uuid.UUID) (*models.PostWithCounts, error)
	ListPosts(ctx context.Context, viewerID uuid.UUID, q ListPostsQuery) ([]models.PostWithCounts, error)
	ListPostsBySubforum(ctx context.Context, subforumID uuid.UUID, limit, offset int) ([]models.PostWithCounts, error)
	CountPostsBySubforum(ctx context.Context, subforumID uuid.UUID) (int, error)
	DeletePost(ctx context.Context, postID, ownerID uuid.UUID) error

	// SubforumStatus reads the status column directly; content stays
	// below the subforum component in the dependency order.
	SubforumStatus(ctx context.Context, subforumID uuid.UUID) (string, error)

	AddComment(ctx context.Context, comment *models.Comment) error
	ListCommentsByPost(ctx context.Context, postID uuid.UUID) ([]models.Comment, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error
	ListLikesByPost(ctx context.Context, postID uuid.UUID) ([]models.Like, error)

	// The toggle idiom: create the pair if absent, delete it if present.
	// The boolean reports whether the pair now exists.
	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	ToggleSave(ctx context.Context, userID, postID uuid.UUID) (bool, error)
	ToggleFollow(ctx context.Context, followerID, followingID uuid.UUID) (bool, error)

	ListPostsByUser(ctx context.Context, userID uuid.UUID) ([]models.PostWithCounts, error)
	ListCommentsByUser(ctx context.Context, userID uuid.UUID) ([]models.Comment, error)
	ListSavedPosts(ctx context.Context, userID uuid.UUID) ([]models.PostWithCounts, error)
	ListFollowing(ctx context.Context, userID uuid.UUID) ([]models.Follow, error)
	ListFollowers(ctx context.Context, userID uuid.UUID) ([]models.Follow, error)

	SearchUsers(ctx context.Context, query string) ([]identitymodels.User, error)
	SearchPosts(ctx context.Context, query string) ([]models.PostWithCounts, error)
	SearchSubforums(ctx context.Context, query string) ([]SubforumSummary, error)

	// ProfilePictures resolves avatars for a batch of users across both
	// role tables.
	ProfilePictures(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]string, error)
}
