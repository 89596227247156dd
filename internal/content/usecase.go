package content

import (
	"context"

	"github.com/google/uuid"
)

type ContentUsecase interface {
	// CreatePost rejects subforum targets that are not approved.
	CreatePost(ctx context.Context, authorID uuid.UUID, cmd CreatePostCommand) (*PostDTO, error)
	ListPosts(ctx context.Context, viewerID uuid.UUID, q ListPostsQuery) ([]PostDTO, error)
	ListPostsBySubforum(ctx context.Context, subforumID uuid.UUID, limit, offset int) ([]PostDTO, error)
	CountPostsBySubforum(ctx context.Context, subforumID uuid.UUID) (int, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*SinglePostDTO, error)
	// DeletePost is owner-only.
	DeletePost(ctx context.Context, postID, ownerID uuid.UUID) error

	AddComment(ctx context.Context, userID, postID uuid.UUID, body string) (*CommentDTO, error)
	DeleteComment(ctx context.Context, commentID uuid.UUID) error

	ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*ToggleDTO, error)
	ToggleSave(ctx context.Context, userID, postID uuid.UUID) (*ToggleDTO, error)
	// ToggleFollow rejects self-follow.
	ToggleFollow(ctx context.Context, followerID, targetID uuid.UUID) (*ToggleDTO, error)

	// GetProfile returns a user's posts, comments, follow edges and,
	// when includeSaved is set, their saved posts.
	GetProfile(ctx context.Context, userID uuid.UUID, includeSaved bool) (*ProfileDTO, error)

	// Search matches case-insensitive substrings over usernames, post
	// titles/bodies/authors and subforum names. An empty query returns
	// three empty result sets.
	Search(ctx context.Context, query string) (*SearchResults, error)
}
