package usecase

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/google/uuid"

	"github.com/AriqGChowdhury/WSU-Forum/internal/content"
	models "github.com/AriqGChowdhury/WSU-Forum/internal/content/model"
	"github.com/AriqGChowdhury/WSU-Forum/internal/content/repository"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/errors"
	"github.com/AriqGChowdhury/WSU-Forum/pkg/logger"
)

type ContentUsecase struct {
	repo   content.ContentRepository
	logger logger.Logger
}

func NewContentUsecase(repo content.ContentRepository, logger logger.Logger) *ContentUsecase {
	return &ContentUsecase{repo: repo, logger: logger}
}

func (uc *ContentUsecase) CreatePost(ctx context.Context, authorID uuid.UUID, cmd content.CreatePostCommand) (*content.PostDTO, error) {
	title := strings.TrimSpace(cmd.Title)
	body := strings.TrimSpace(cmd.Body)
	if title == "" {
		return nil, errors.ErrEmptyTitle
	}
	if body == "" {
		return nil, errors.ErrEmptyBody
	}
	if len(title) > models.MaxTitleLen {
		return nil, errors.ErrTitleTooLong
	}
	if len(body) > models.MaxBodyLen {
		return nil, errors.ErrBodyTooLong
	}

	if cmd.SubforumID != nil {
		status, err := uc.repo.SubforumStatus(ctx, *cmd.SubforumID)
		if err != nil {
			if stderrors.Is(err, repository.ErrSubforumNotFound) {
				return nil, errors.ErrSubforumNotFound
			}
			uc.logger.Error("database error checking subforum", "err", err)
			return nil, errors.Internal("internal server error")
		}
		if status != "approved" {
			return nil, errors.ErrSubforumNotApproved
		}
	}

	post := &models.Post{
		UserID:     authorID,
		Title:      title,
		Body:       body,
		SubforumID: cmd.SubforumID,
	}
	if err := uc.repo.CreatePost(ctx, post); err != nil {
		uc.logger.Error("failed to create post", "err", err)
		return nil, errors.Internal("internal server error")
	}

	created, err := uc.repo.GetPostByID(ctx, post.ID)
	if err != nil {
		uc.logger.Error("failed to reload created post", "post_id", post.ID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	dto := uc.toPostDTO(ctx, []models.PostWithCounts{*created})
	return &dto[0], nil
}

func (uc *ContentUsecase) ListPosts(ctx context.Context, viewerID uuid.UUID, q content.ListPostsQuery) ([]content.PostDTO, error) {
	posts, err := uc.repo.ListPosts(ctx, viewerID, q)
	if err != nil {
		uc.logger.Error("failed to list posts", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.toPostDTO(ctx, posts), nil
}

func (uc *ContentUsecase) ListPostsBySubforum(ctx context.Context, subforumID uuid.UUID, limit, offset int) ([]content.PostDTO, error) {
	posts, err := uc.repo.ListPostsBySubforum(ctx, subforumID, limit, offset)
	if err != nil {
		uc.logger.Error("failed to list subforum posts", "subforum_id", subforumID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.toPostDTO(ctx, posts), nil
}

func (uc *ContentUsecase) CountPostsBySubforum(ctx context.Context, subforumID uuid.UUID) (int, error) {
	count, err := uc.repo.CountPostsBySubforum(ctx, subforumID)
	if err != nil {
		uc.logger.Error("failed to count subforum posts", "subforum_id", subforumID, "err", err)
		return 0, errors.Internal("internal server error")
	}
	return count, nil
}

func (uc *ContentUsecase) GetPost(ctx context.Context, postID uuid.UUID) (*content.SinglePostDTO, error) {
	post, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		if stderrors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.ErrPostNotFound
		}
		uc.logger.Error("failed to load post", "post_id", postID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	comments, err := uc.repo.ListCommentsByPost(ctx, postID)
	if err != nil {
		uc.logger.Error("failed to load comments", "post_id", postID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	likes, err := uc.repo.ListLikesByPost(ctx, postID)
	if err != nil {
		uc.logger.Error("failed to load likes", "post_id", postID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	dto := &content.SinglePostDTO{
		PostDTO:  uc.toPostDTO(ctx, []models.PostWithCounts{*post})[0],
		Comments: toCommentDTO(comments),
		Likes:    make([]content.LikeDTO, 0, len(likes)),
	}
	for _, l := range likes {
		like := content.LikeDTO{ID: l.ID, CreatedAt: l.CreatedAt}
		if l.User != nil {
			like.Username = l.User.Username
		}
		dto.Likes = append(dto.Likes, like)
	}
	return dto, nil
}

func (uc *ContentUsecase) DeletePost(ctx context.Context, postID, ownerID uuid.UUID) error {
	err := uc.repo.DeletePost(ctx, postID, ownerID)
	if err != nil {
		if stderrors.Is(err, repository.ErrPostNotFound) {
			return errors.ErrPostNotFound
		}
		uc.logger.Error("failed to delete post", "post_id", postID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *ContentUsecase) AddComment(ctx context.Context, userID, postID uuid.UUID, body string) (*content.CommentDTO, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errors.ErrEmptyBody
	}
	if len(body) > models.MaxBodyLen {
		return nil, errors.ErrBodyTooLong
	}

	post, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		if stderrors.Is(err, repository.ErrPostNotFound) {
			return nil, errors.ErrPostNotFound
		}
		uc.logger.Error("failed to load post", "post_id", postID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	comment := &models.Comment{
		PostID: postID,
		UserID: userID,
		Body:   body,
		// subforum ref rides along from the parent post
		SubforumID: post.SubforumID,
	}
	if err := uc.repo.AddComment(ctx, comment); err != nil {
		uc.logger.Error("failed to add comment", "post_id", postID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &content.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Body:      comment.Body,
		CreatedAt: comment.CreatedAt,
	}, nil
}

func (uc *ContentUsecase) DeleteComment(ctx context.Context, commentID uuid.UUID) error {
	err := uc.repo.DeleteComment(ctx, commentID)
	if err != nil {
		if stderrors.Is(err, repository.ErrCommentNotFound) {
			return errors.ErrCommentNotFound
		}
		uc.logger.Error("failed to delete comment", "comment_id", commentID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *ContentUsecase) ToggleLike(ctx context.Context, userID, postID uuid.UUID) (*content.ToggleDTO, error) {
	if err := uc.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	added, err := uc.repo.ToggleLike(ctx, userID, postID)
	if err != nil {
		uc.logger.Error("failed to toggle like", "post_id", postID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &content.ToggleDTO{Added: added}, nil
}

func (uc *ContentUsecase) ToggleSave(ctx context.Context, userID, postID uuid.UUID) (*content.ToggleDTO, error) {
	if err := uc.ensurePost(ctx, postID); err != nil {
		return nil, err
	}
	added, err := uc.repo.ToggleSave(ctx, userID, postID)
	if err != nil {
		uc.logger.Error("failed to toggle save", "post_id", postID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &content.ToggleDTO{Added: added}, nil
}

func (uc *ContentUsecase) ToggleFollow(ctx context.Context, followerID, targetID uuid.UUID) (*content.ToggleDTO, error) {
	if followerID == targetID {
		return nil, errors.ErrSelfFollow
	}
	added, err := uc.repo.ToggleFollow(ctx, followerID, targetID)
	if err != nil {
		uc.logger.Error("failed to toggle follow", "target_id", targetID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &content.ToggleDTO{Added: added}, nil
}

func (uc *ContentUsecase) ensurePost(ctx context.Context, postID uuid.UUID) error {
	_, err := uc.repo.GetPostByID(ctx, postID)
	if err != nil {
		if stderrors.Is(err, repository.ErrPostNotFound) {
			return errors.ErrPostNotFound
		}
		uc.logger.Error("failed to load post", "post_id", postID, "err", err)
		return errors.Internal("internal server error")
	}
	return nil
}

func (uc *ContentUsecase) GetProfile(ctx context.Context, userID uuid.UUID, includeSaved bool) (*content.ProfileDTO, error) {
	posts, err := uc.repo.ListPostsByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load profile posts", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	comments, err := uc.repo.ListCommentsByUser(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load profile comments", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	following, err := uc.repo.ListFollowing(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load following", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}
	followers, err := uc.repo.ListFollowers(ctx, userID)
	if err != nil {
		uc.logger.Error("failed to load followers", "user_id", userID, "err", err)
		return nil, errors.Internal("internal server error")
	}

	profile := &content.ProfileDTO{
		Posts:       uc.toPostDTO(ctx, posts),
		CommentedOn: toCommentDTO(comments),
		Following:   toFollowEdges(following, true),
		Followers:   toFollowEdges(followers, false),
	}

	if includeSaved {
		saved, err := uc.repo.ListSavedPosts(ctx, userID)
		if err != nil {
			uc.logger.Error("failed to load saved posts", "user_id", userID, "err", err)
			return nil, errors.Internal("internal server error")
		}
		profile.Saved = uc.toPostDTO(ctx, saved)
	}
	return profile, nil
}

func (uc *ContentUsecase) Search(ctx context.Context, query string) (*content.SearchResults, error) {
	results := &content.SearchResults{
		People:    []content.UserSummary{},
		Posts:     []content.PostDTO{},
		Subforums: []content.SubforumSummary{},
	}

	// An empty query matches everything as a substring; return nothing
	// instead of dumping every table.
	query = strings.TrimSpace(query)
	if query == "" {
		return results, nil
	}

	users, err := uc.repo.SearchUsers(ctx, query)
	if err != nil {
		uc.logger.Error("user search failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	for _, u := range users {
		results.People = append(results.People, content.UserSummary{ID: u.ID, Username: u.Username})
	}

	posts, err := uc.repo.SearchPosts(ctx, query)
	if err != nil {
		uc.logger.Error("post search failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	results.Posts = uc.toPostDTO(ctx, posts)

	subforums, err := uc.repo.SearchSubforums(ctx, query)
	if err != nil {
		uc.logger.Error("subforum search failed", "err", err)
		return nil, errors.Internal("internal server error")
	}
	results.Subforums = subforums

	return results, nil
}

func (uc *ContentUsecase) toPostDTO(ctx context.Context, posts []models.PostWithCounts) []content.PostDTO {
	authorIDs := make([]uuid.UUID, 0, len(posts))
	seen := make(map[uuid.UUID]bool, len(posts))
	for _, p := range posts {
		if !seen[p.UserID] {
			seen[p.UserID] = true
			authorIDs = append(authorIDs, p.UserID)
		}
	}

	pictures, err := uc.repo.ProfilePictures(ctx, authorIDs)
	if err != nil {
		// avatars are decoration; the listing is still useful without them
		uc.logger.Warn("failed to resolve profile pictures", "err", err)
		pictures = map[uuid.UUID]string{}
	}

	dtos := make([]content.PostDTO, 0, len(posts))
	for _, p := range posts {
		dto := content.PostDTO{
			ID:             p.ID,
			Title:          p.Title,
			Body:           p.Body,
			SubforumID:     p.SubforumID,
			SubforumName:   p.SubforumName,
			LikeAmt:        p.LikeCount,
			CommentAmt:     p.CommentCount,
			ProfilePicture: pictures[p.UserID],
			CreatedAt:      p.CreatedAt,
			UpdatedAt:      p.UpdatedAt,
		}
		if p.User != nil {
			dto.Username = p.User.Username
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

func toCommentDTO(comments []models.Comment) []content.CommentDTO {
	dtos := make([]content.CommentDTO, 0, len(comments))
	for _, c := range comments {
		dto := content.CommentDTO{
			ID:        c.ID,
			PostID:    c.PostID,
			Body:      c.Body,
			CreatedAt: c.CreatedAt,
		}
		if c.User != nil {
			dto.Username = c.User.Username
		}
		dtos = append(dtos, dto)
	}
	return dtos
}

func toFollowEdges(follows []models.Follow, following bool) []content.FollowEdgeDTO {
	edges := make([]content.FollowEdgeDTO, 0, len(follows))
	for _, f := range follows {
		edge := content.FollowEdgeDTO{CreatedAt: f.CreatedAt}
		if following && f.Following != nil {
			edge.User = content.UserSummary{ID: f.Following.ID, Username: f.Following.Username}
		} else if !following && f.Follower != nil {
			edge.User = content.UserSummary{ID: f.Follower.ID, Username: f.Follower.Username}
		}
		edges = append(edges, edge)
	}
	return edges
}
